package analysis

import "context"

const defaultMaxTokens = 1024

// Client абстрагирует транспорт к LLM-провайдеру. Анализ записи всегда одноходовый:
// системная инструкция плюс текст записи, ответом ожидается JSON.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, []byte, error)
}

func resolveMaxTokens(value int) int {
	if value > 0 {
		return value
	}

	return defaultMaxTokens
}
