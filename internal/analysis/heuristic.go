package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"example.com/equilibria/backend/internal/models"
)

const (
	moodVeryPositive = "very_positive"
	moodPositive     = "positive"
	moodNeutral      = "neutral"
	moodNegative     = "negative"
	moodVeryNegative = "very_negative"
)

var positiveWords = []string{
	"happy", "great", "good", "excellent", "wonderful", "amazing", "love",
	"joy", "success", "achievement", "grateful", "blessed", "excited",
	"motivated", "inspired",
}

var negativeWords = []string{
	"sad", "bad", "terrible", "awful", "hate", "angry", "frustrated",
	"disappointed", "worried", "anxious", "stressed", "tired", "exhausted",
}

// Корзина very_positive недостижима при текущих порогах: оба верхних
// порога ведут в positive.
var moodLabels = map[string][]string{
	moodVeryPositive: {"Excited", "Happy", "Grateful", "Accomplished"},
	moodPositive:     {"Content", "Satisfied", "Hopeful", "Motivated"},
	moodNeutral:      {"Neutral", "Calm", "Focused", "Contemplative"},
	moodNegative:     {"Concerned", "Frustrated", "Tired", "Stressed"},
	moodVeryNegative: {"Sad", "Angry", "Anxious", "Overwhelmed"},
}

var commonThemes = []string{
	"work", "family", "health", "learning", "creativity", "relationships",
	"goals", "reflection", "challenges", "success", "growth", "stress",
	"happiness", "productivity",
}

var defaultThemes = []string{"general", "daily", "reflection"}

var insightChoices = []string{
	"Showing positive emotional patterns",
	"Demonstrating resilience and growth mindset",
	"Strong focus on personal development",
	"Balanced perspective on challenges",
	"High engagement with daily activities",
	"Reflective and self-aware writing style",
}

// Analyzer вычисляет эвристический анализ текста записи: счетчик слов,
// сентимент по спискам слов и выбор подписи/инсайта. Случайность выбора
// изолирована в seed, чтобы тесты были детерминированными.
type Analyzer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAnalyzer создает анализатор со случайным seed.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithSeed(time.Now().UnixNano())
}

// NewAnalyzerWithSeed создает анализатор с заданным seed.
func NewAnalyzerWithSeed(seed int64) *Analyzer {
	return &Analyzer{rng: rand.New(rand.NewSource(seed))}
}

// Analyze строит AIAnalysis по тексту записи. Пустой текст дает
// нейтральный результат с нулевым счетчиком слов.
func (a *Analyzer) Analyze(content string) models.AIAnalysis {
	words := strings.Fields(content)
	wordCount := len(words)

	positiveCount := 0
	negativeCount := 0
	for _, word := range words {
		lowered := strings.ToLower(word)
		if containsWord(positiveWords, lowered) {
			positiveCount++
		}
		if containsWord(negativeWords, lowered) {
			negativeCount++
		}
	}

	divisor := wordCount
	if divisor < 1 {
		divisor = 1
	}

	sentiment := clamp(-1, 1, float64(positiveCount-negativeCount)/float64(divisor))
	moodRating := clamp(1, 10, 5+sentiment*5)

	moodCategory := moodNeutral
	switch {
	case sentiment > 0.3:
		moodCategory = moodPositive
	case sentiment > 0.1:
		moodCategory = moodPositive
	case sentiment < -0.3:
		moodCategory = moodVeryNegative
	case sentiment < -0.1:
		moodCategory = moodNegative
	}

	moodLabel := a.pick(moodLabels[moodCategory])

	keyThemes := matchThemes(content)

	return models.AIAnalysis{
		Summary:    fmt.Sprintf("Entry with %d words showing %s mood", wordCount, strings.ToLower(moodLabel)),
		MoodRating: round1(moodRating),
		MoodLabel:  moodLabel,
		KeyThemes:  keyThemes,
		Insights:   a.pick(insightChoices),
		Sentiment:  round2(sentiment),
		WordCount:  wordCount,
	}
}

func (a *Analyzer) pick(options []string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return options[a.rng.Intn(len(options))]
}

func matchThemes(content string) []string {
	lowered := strings.ToLower(content)

	found := make([]string, 0, 3)
	for _, theme := range commonThemes {
		if strings.Contains(lowered, theme) {
			found = append(found, theme)
			if len(found) == 3 {
				break
			}
		}
	}

	if len(found) == 0 {
		return append([]string(nil), defaultThemes...)
	}

	return found
}

func containsWord(list []string, word string) bool {
	for _, item := range list {
		if item == word {
			return true
		}
	}
	return false
}

func clamp(min, max, value float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
