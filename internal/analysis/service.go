package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"example.com/equilibria/backend/internal/models"
)

// Service выдает анализ записи дневника. Если настроен LLM-провайдер,
// summary/настроение/темы запрашиваются у него, при любой ошибке сервис
// молча откатывается на локальную эвристику. Счетчик слов и сентимент
// всегда считаются локально.
type Service struct {
	client   Client
	provider string
	model    string
	analyzer *Analyzer
}

// ProviderCall описывает обращение к LLM-провайдеру для журналирования.
type ProviderCall struct {
	Attempted bool
	Provider  string
	Model     string
	Prompt    string
	Raw       []byte
	Err       error
}

type providerAnalysis struct {
	Summary    string   `json:"summary"`
	MoodRating float64  `json:"moodRating"`
	MoodLabel  string   `json:"moodLabel"`
	KeyThemes  []string `json:"keyThemes"`
	Insights   string   `json:"insights"`
}

// NewService создает сервис анализа. Если client равен nil,
// используется только эвристика.
func NewService(client Client, provider, model string, analyzer *Analyzer) *Service {
	return &Service{
		client:   client,
		provider: provider,
		model:    model,
		analyzer: analyzer,
	}
}

// AnalyzeEntry возвращает анализ текста и сведения об обращении к провайдеру.
func (s *Service) AnalyzeEntry(ctx context.Context, content string) (models.AIAnalysis, ProviderCall) {
	local := s.analyzer.Analyze(content)

	if s.client == nil {
		return local, ProviderCall{}
	}

	call := ProviderCall{
		Attempted: true,
		Provider:  s.provider,
		Model:     s.model,
		Prompt:    buildAnalysisPrompt(content),
	}

	responseText, raw, err := s.client.Complete(ctx, analysisSystemPrompt, call.Prompt)
	call.Raw = raw
	if err != nil {
		call.Err = err
		return local, call
	}

	var parsed providerAnalysis
	if err := parseJSON(responseText, &parsed); err != nil {
		call.Err = err
		return local, call
	}

	return mergeProviderAnalysis(local, parsed), call
}

const analysisSystemPrompt = "You are a journaling assistant. Respond with JSON only, without extra text."

func buildAnalysisPrompt(content string) string {
	return fmt.Sprintf(`Analyze this journal entry and return JSON.

Requirements:
- Output JSON only, no code fences, no extra text.
- Schema:
{
  "summary": string,
  "moodRating": number,
  "moodLabel": string,
  "keyThemes": [string],
  "insights": string
}
- summary: a concise 2-3 sentence summary of the main points.
- moodRating: 1-10 where 1 is very negative and 10 is very positive.
- moodLabel: a single word describing the overall mood.
- keyThemes: up to 3 key themes or topics mentioned.
- insights: a brief reflection about the entry, 1-2 sentences.

Journal Entry:
%s`, content)
}

// mergeProviderAnalysis накладывает ответ провайдера на локальный анализ,
// подставляя значения по умолчанию и обрезая диапазоны.
func mergeProviderAnalysis(local models.AIAnalysis, parsed providerAnalysis) models.AIAnalysis {
	merged := local

	if summary := strings.TrimSpace(parsed.Summary); summary != "" {
		merged.Summary = summary
	}

	if parsed.MoodRating > 0 {
		merged.MoodRating = round1(clamp(1, 10, parsed.MoodRating))
	}

	if label := strings.TrimSpace(parsed.MoodLabel); label != "" {
		merged.MoodLabel = label
	}

	themes := make([]string, 0, 3)
	for _, theme := range parsed.KeyThemes {
		trimmed := strings.TrimSpace(theme)
		if trimmed == "" {
			continue
		}
		themes = append(themes, trimmed)
		if len(themes) == 3 {
			break
		}
	}
	if len(themes) > 0 {
		merged.KeyThemes = themes
	}

	if insights := strings.TrimSpace(parsed.Insights); insights != "" {
		merged.Insights = insights
	}

	return merged
}

func parseJSON(input string, target interface{}) error {
	payload := extractJSON(input)
	if payload == "" {
		return errors.New("ai response does not contain json")
	}

	return json.Unmarshal([]byte(payload), target)
}

func extractJSON(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimPrefix(strings.TrimSpace(trimmed), "json")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimSpace(trimmed)
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return trimmed[start : end+1]
}
