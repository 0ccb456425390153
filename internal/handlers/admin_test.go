package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestContext(t *testing.T, target string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

// TestParsePaginationDefaults проверяет значения по умолчанию.
func TestParsePaginationDefaults(t *testing.T) {
	c := newTestContext(t, "/admin/users")

	limit, offset, err := parsePagination(c, 50, 200)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if limit != 50 || offset != 0 {
		t.Fatalf("expected 50/0, got %d/%d", limit, offset)
	}
}

// TestParsePaginationClamp проверяет ограничение limit сверху.
func TestParsePaginationClamp(t *testing.T) {
	c := newTestContext(t, "/admin/users?limit=1000&offset=20")

	limit, offset, err := parsePagination(c, 50, 200)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if limit != 200 || offset != 20 {
		t.Fatalf("expected 200/20, got %d/%d", limit, offset)
	}
}

// TestParsePaginationInvalid проверяет ошибки на мусорных значениях.
func TestParsePaginationInvalid(t *testing.T) {
	if _, _, err := parsePagination(newTestContext(t, "/admin/users?limit=abc"), 50, 200); err == nil {
		t.Fatal("expected error for invalid limit")
	}

	if _, _, err := parsePagination(newTestContext(t, "/admin/users?limit=0"), 50, 200); err == nil {
		t.Fatal("expected error for zero limit")
	}

	if _, _, err := parsePagination(newTestContext(t, "/admin/users?offset=-1"), 50, 200); err == nil {
		t.Fatal("expected error for negative offset")
	}
}

// TestOptionalIntQuery проверяет разбор необязательных числовых параметров.
func TestOptionalIntQuery(t *testing.T) {
	value, err := optionalIntQuery(newTestContext(t, "/budgets?month=3"), "month")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if value == nil || *value != 3 {
		t.Fatalf("expected 3, got %v", value)
	}

	value, err = optionalIntQuery(newTestContext(t, "/budgets"), "month")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil for missing param, got %d", *value)
	}

	if _, err := optionalIntQuery(newTestContext(t, "/budgets?month=abc"), "month"); err == nil {
		t.Fatal("expected error for invalid param")
	}
}
