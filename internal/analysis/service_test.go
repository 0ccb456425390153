package analysis

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeClient struct {
	response string
	err      error
}

func (c *fakeClient) Complete(ctx context.Context, system, prompt string) (string, []byte, error) {
	if c.err != nil {
		return "", nil, c.err
	}
	return c.response, []byte(c.response), nil
}

// TestAnalyzeEntryWithoutClient проверяет чисто эвристический путь.
func TestAnalyzeEntryWithoutClient(t *testing.T) {
	service := NewService(nil, "", "", NewAnalyzerWithSeed(1))

	result, call := service.AnalyzeEntry(context.Background(), "a fine day")

	if call.Attempted {
		t.Fatal("expected no provider call")
	}
	if result.WordCount != 3 {
		t.Fatalf("expected word count 3, got %d", result.WordCount)
	}
}

// TestAnalyzeEntryProviderMerge проверяет наложение ответа провайдера.
func TestAnalyzeEntryProviderMerge(t *testing.T) {
	client := &fakeClient{response: `{"summary":"A calm day overall.","moodRating":12,"moodLabel":"peaceful","keyThemes":["rest","nature","walks","extra"],"insights":"Keep taking walks."}`}
	service := NewService(client, "gemini", "gemini-1.5-flash", NewAnalyzerWithSeed(1))

	result, call := service.AnalyzeEntry(context.Background(), "a walk in the park")

	if !call.Attempted || call.Err != nil {
		t.Fatalf("expected successful provider call, got %+v", call)
	}
	if result.Summary != "A calm day overall." {
		t.Fatalf("unexpected summary: %s", result.Summary)
	}
	if result.MoodRating != 10 {
		t.Fatalf("expected clamped mood rating 10, got %f", result.MoodRating)
	}
	if result.MoodLabel != "peaceful" {
		t.Fatalf("unexpected label: %s", result.MoodLabel)
	}
	if !reflect.DeepEqual(result.KeyThemes, []string{"rest", "nature", "walks"}) {
		t.Fatalf("expected themes capped at 3, got %v", result.KeyThemes)
	}
	// Счетчик слов и сентимент всегда локальные.
	if result.WordCount != 5 {
		t.Fatalf("expected local word count 5, got %d", result.WordCount)
	}
}

// TestAnalyzeEntryProviderError проверяет откат на эвристику при ошибке.
func TestAnalyzeEntryProviderError(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	service := NewService(client, "groq", "llama-3.1-8b-instant", NewAnalyzerWithSeed(1))

	result, call := service.AnalyzeEntry(context.Background(), "a fine day")

	if !call.Attempted || call.Err == nil {
		t.Fatal("expected failed provider call")
	}
	if result.WordCount != 3 {
		t.Fatalf("expected heuristic result, got %+v", result)
	}
	if result.Summary == "" {
		t.Fatal("expected heuristic summary")
	}
}

// TestAnalyzeEntryProviderGarbage проверяет откат при нечитаемом ответе.
func TestAnalyzeEntryProviderGarbage(t *testing.T) {
	client := &fakeClient{response: "not json at all"}
	service := NewService(client, "gemini", "gemini-1.5-flash", NewAnalyzerWithSeed(1))

	result, call := service.AnalyzeEntry(context.Background(), "a fine day")

	if call.Err == nil {
		t.Fatal("expected parse error recorded")
	}
	if result.WordCount != 3 {
		t.Fatalf("expected heuristic result, got %+v", result)
	}
}

// TestExtractJSONCodeFence проверяет извлечение JSON из code fence.
func TestExtractJSONCodeFence(t *testing.T) {
	input := "```json\n{\"summary\":\"ok\"}\n```"

	got := extractJSON(input)
	if got != `{"summary":"ok"}` {
		t.Fatalf("unexpected extraction: %s", got)
	}
}
