package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/models"
	"example.com/equilibria/backend/internal/repository"
)

const timeLayout = time.RFC3339

type ExportHandler struct {
	Expenses *repository.ExpenseRepository
	Entries  *repository.JournalRepository
}

// NewExportHandler создает обработчик выгрузки данных.
func NewExportHandler(expenses *repository.ExpenseRepository, entries *repository.JournalRepository) *ExportHandler {
	return &ExportHandler{Expenses: expenses, Entries: entries}
}

// ExportExpensesCSV выгружает расходы пользователя в CSV-файл.
func (h *ExportHandler) ExportExpensesCSV(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	expenses, err := h.Expenses.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return serverError(c)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writeExpensesCSV(writer, expenses); err != nil {
		return serverError(c)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "expenses-" + time.Now().Format("2006-01-02") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExpensesJSON выгружает расходы пользователя в JSON-файл.
func (h *ExportHandler) ExportExpensesJSON(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	expenses, err := h.Expenses.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return serverError(c)
	}

	filename := "expenses-" + time.Now().Format("2006-01-02") + ".json"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, expenses)
}

// ExportJournalJSON выгружает записи дневника вместе с анализом в JSON-файл.
func (h *ExportHandler) ExportJournalJSON(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	entries, err := h.Entries.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return serverError(c)
	}

	filename := "journal-" + time.Now().Format("2006-01-02") + ".json"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, entries)
}

func writeExpensesCSV(writer *csv.Writer, expenses []models.Expense) error {
	header := []string{
		"id",
		"amount",
		"category",
		"description",
		"date",
		"payment_method",
		"created_at",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, expense := range expenses {
		description := ""
		if expense.Description != nil {
			description = *expense.Description
		}
		record := []string{
			expense.ID.String(),
			formatAmount(expense.Amount),
			expense.Category,
			description,
			expense.Date.Format(timeLayout),
			expense.PaymentMethod,
			expense.CreatedAt.Format(timeLayout),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
