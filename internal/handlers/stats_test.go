package handlers

import "testing"

// TestResolveTrendDaysDefault проверяет значение по умолчанию.
func TestResolveTrendDaysDefault(t *testing.T) {
	if days := resolveTrendDays(""); days != defaultMoodTrendDays {
		t.Fatalf("expected %d, got %d", defaultMoodTrendDays, days)
	}
}

// TestResolveTrendDaysInvalid проверяет откат к умолчанию при мусоре.
func TestResolveTrendDaysInvalid(t *testing.T) {
	if days := resolveTrendDays("abc"); days != defaultMoodTrendDays {
		t.Fatalf("expected %d, got %d", defaultMoodTrendDays, days)
	}

	if days := resolveTrendDays("0"); days != defaultMoodTrendDays {
		t.Fatalf("expected %d, got %d", defaultMoodTrendDays, days)
	}

	if days := resolveTrendDays("-3"); days != defaultMoodTrendDays {
		t.Fatalf("expected %d, got %d", defaultMoodTrendDays, days)
	}
}

// TestResolveTrendDaysClamp проверяет ограничение сверху.
func TestResolveTrendDaysClamp(t *testing.T) {
	if days := resolveTrendDays("365"); days != maxMoodTrendDays {
		t.Fatalf("expected %d, got %d", maxMoodTrendDays, days)
	}

	if days := resolveTrendDays("30"); days != 30 {
		t.Fatalf("expected 30, got %d", days)
	}
}
