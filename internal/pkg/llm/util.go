package llm

import (
	"context"
	"errors"
	log "log/slog"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

var ErrNotConfigured = errors.New("llm not configured")
var ErrEmptyResponse = errors.New("llm returned no choices")

func readPrompt(file string, fallback string) string {
	data, err := os.ReadFile(file)
	if err != nil || strings.TrimSpace(string(data)) == "" {
		log.Warn("读取prompt文件失败，使用内置prompt", "file", file, "err", err)
		return fallback
	}
	return string(data)
}

func fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if llmClient == nil {
		return nil, ErrNotConfigured
	}
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}
	log.InfoContext(ctx, "正在请求AI大模型")
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(textModel),
		llms.WithTemperature(temp),
	)
}

// firstChoice 取第一个候选的文本
func firstChoice(resp *llms.ContentResponse) (string, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := strings.TrimSpace(resp.Choices[0].Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

// stripCodeFence 去掉模型返回的 markdown 代码块标记
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
