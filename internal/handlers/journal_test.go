package handlers

import (
	"testing"

	"example.com/equilibria/backend/internal/models"
)

// TestMoodScoreFromComputed проверяет приоритет свежего анализа.
func TestMoodScoreFromComputed(t *testing.T) {
	computed := &models.AIAnalysis{MoodRating: 8.5}
	supplied := &models.AIAnalysis{MoodRating: 3.0}

	score := moodScoreFrom(computed, supplied)
	if score == nil || *score != 8.5 {
		t.Fatalf("expected computed score 8.5, got %v", score)
	}
}

// TestMoodScoreFromSupplied проверяет откат на анализ из запроса.
func TestMoodScoreFromSupplied(t *testing.T) {
	supplied := &models.AIAnalysis{MoodRating: 3.0}

	score := moodScoreFrom(nil, supplied)
	if score == nil || *score != 3.0 {
		t.Fatalf("expected supplied score 3.0, got %v", score)
	}
}

// TestMoodScoreFromEmpty проверяет nil без какого-либо анализа.
func TestMoodScoreFromEmpty(t *testing.T) {
	if score := moodScoreFrom(nil, nil); score != nil {
		t.Fatalf("expected nil, got %v", *score)
	}
}
