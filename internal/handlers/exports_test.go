package handlers

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"example.com/equilibria/backend/internal/models"
)

// TestWriteExpensesCSV проверяет формат выгрузки расходов.
func TestWriteExpensesCSV(t *testing.T) {
	description := "lunch"
	date := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	expenses := []models.Expense{
		{
			ID:            uuid.New(),
			Amount:        12.5,
			Category:      "food",
			Description:   &description,
			Date:          date,
			PaymentMethod: "card",
			CreatedAt:     date,
		},
		{
			ID:            uuid.New(),
			Amount:        100,
			Category:      "transport",
			Date:          date,
			PaymentMethod: "cash",
			CreatedAt:     date,
		},
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writeExpensesCSV(writer, expenses); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	writer.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}

	if lines[0] != "id,amount,category,description,date,payment_method,created_at" {
		t.Fatalf("unexpected header: %s", lines[0])
	}

	if !strings.Contains(lines[1], "12.50,food,lunch") {
		t.Fatalf("unexpected first row: %s", lines[1])
	}

	// Пустое описание выгружается пустой ячейкой.
	if !strings.Contains(lines[2], "100.00,transport,,") {
		t.Fatalf("unexpected second row: %s", lines[2])
	}
}

// TestFormatAmount проверяет формат сумм с двумя знаками.
func TestFormatAmount(t *testing.T) {
	if got := formatAmount(12.5); got != "12.50" {
		t.Fatalf("expected 12.50, got %s", got)
	}

	if got := formatAmount(0); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}
