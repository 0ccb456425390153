package analysis

import (
	"reflect"
	"strings"
	"testing"
)

// TestAnalyzeEmptyContent проверяет нейтральный результат для пустого текста.
func TestAnalyzeEmptyContent(t *testing.T) {
	analyzer := NewAnalyzerWithSeed(1)

	result := analyzer.Analyze("")

	if result.WordCount != 0 {
		t.Fatalf("expected word count 0, got %d", result.WordCount)
	}
	if result.Sentiment != 0 {
		t.Fatalf("expected sentiment 0, got %f", result.Sentiment)
	}
	if result.MoodRating != 5.0 {
		t.Fatalf("expected mood rating 5.0, got %f", result.MoodRating)
	}
	if !reflect.DeepEqual(result.KeyThemes, []string{"general", "daily", "reflection"}) {
		t.Fatalf("unexpected themes: %v", result.KeyThemes)
	}
}

// TestAnalyzePositiveContent проверяет положительный сентимент.
func TestAnalyzePositiveContent(t *testing.T) {
	analyzer := NewAnalyzerWithSeed(1)

	result := analyzer.Analyze("I am happy and grateful, great success today")

	if result.WordCount != 8 {
		t.Fatalf("expected word count 8, got %d", result.WordCount)
	}
	if result.Sentiment <= 0 {
		t.Fatalf("expected positive sentiment, got %f", result.Sentiment)
	}
	if result.MoodRating <= 5 {
		t.Fatalf("expected mood rating above 5, got %f", result.MoodRating)
	}
}

// TestAnalyzeNegativeContent проверяет нижнюю границу moodRating.
func TestAnalyzeNegativeContent(t *testing.T) {
	analyzer := NewAnalyzerWithSeed(1)

	result := analyzer.Analyze("sad angry exhausted")

	if result.Sentiment != -1 {
		t.Fatalf("expected sentiment -1, got %f", result.Sentiment)
	}
	if result.MoodRating != 1 {
		t.Fatalf("expected mood rating 1, got %f", result.MoodRating)
	}
}

// TestAnalyzeClampInvariant проверяет диапазоны на разных входах.
func TestAnalyzeClampInvariant(t *testing.T) {
	analyzer := NewAnalyzerWithSeed(7)

	inputs := []string{
		"",
		"happy",
		"sad",
		strings.Repeat("happy ", 50),
		strings.Repeat("terrible ", 50),
		"a plain sentence about nothing in particular",
	}

	for _, input := range inputs {
		result := analyzer.Analyze(input)
		if result.MoodRating < 1 || result.MoodRating > 10 {
			t.Fatalf("mood rating out of range for %q: %f", input, result.MoodRating)
		}
		if result.Sentiment < -1 || result.Sentiment > 1 {
			t.Fatalf("sentiment out of range for %q: %f", input, result.Sentiment)
		}
		if len(result.KeyThemes) > 3 {
			t.Fatalf("too many themes for %q: %v", input, result.KeyThemes)
		}
	}
}

// TestAnalyzeWordCount проверяет подсчет слов по пробельным разделителям.
func TestAnalyzeWordCount(t *testing.T) {
	analyzer := NewAnalyzerWithSeed(1)

	result := analyzer.Analyze("  one\ttwo \n three  ")
	if result.WordCount != 3 {
		t.Fatalf("expected word count 3, got %d", result.WordCount)
	}
}

// TestAnalyzeThemesOrder проверяет порядок и лимит тем.
func TestAnalyzeThemesOrder(t *testing.T) {
	analyzer := NewAnalyzerWithSeed(1)

	result := analyzer.Analyze("stress at work hurts my health and family and goals")

	want := []string{"work", "family", "health"}
	if !reflect.DeepEqual(result.KeyThemes, want) {
		t.Fatalf("expected %v, got %v", want, result.KeyThemes)
	}
}

// TestAnalyzeThemeSubstring проверяет поиск темы как подстроки.
func TestAnalyzeThemeSubstring(t *testing.T) {
	analyzer := NewAnalyzerWithSeed(1)

	result := analyzer.Analyze("networking all day")

	if !reflect.DeepEqual(result.KeyThemes, []string{"work"}) {
		t.Fatalf("expected substring match on work, got %v", result.KeyThemes)
	}
}

// TestAnalyzeDeterministicWithSeed проверяет повторяемость при одном seed.
func TestAnalyzeDeterministicWithSeed(t *testing.T) {
	first := NewAnalyzerWithSeed(42).Analyze("an ordinary day")
	second := NewAnalyzerWithSeed(42).Analyze("an ordinary day")

	if first.MoodLabel != second.MoodLabel {
		t.Fatalf("expected same label, got %s and %s", first.MoodLabel, second.MoodLabel)
	}
	if first.Insights != second.Insights {
		t.Fatalf("expected same insights, got %s and %s", first.Insights, second.Insights)
	}
}

// TestAnalyzeSummaryFormat проверяет шаблон summary.
func TestAnalyzeSummaryFormat(t *testing.T) {
	analyzer := NewAnalyzerWithSeed(3)

	result := analyzer.Analyze("just another day")

	want := "Entry with 3 words showing " + strings.ToLower(result.MoodLabel) + " mood"
	if result.Summary != want {
		t.Fatalf("expected %q, got %q", want, result.Summary)
	}
}
