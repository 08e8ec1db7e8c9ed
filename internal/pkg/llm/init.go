package llm

import (
	"Manorakshak/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

var textModel string
var temperature float64

var reportPrompt string
var suggestionsPrompt string
var summaryPrompt string

// InitLLM 初始化大模型客户端，ApiKey 为空时跳过
func InitLLM(cfg config.LLMConfig) error {
	if cfg.ApiKey == "" {
		log.Warn("未配置AI大模型，报告接口使用固定模板")
		return nil
	}

	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm
	textModel = cfg.TextModel
	temperature = cfg.Temperature
	if cfg.Concurrency > 0 {
		setTextWeight(cfg.Concurrency)
	}

	// 从prompt txt文件中读取prompt
	reportPrompt = readPrompt("./prompts/report.txt", defaultReportPrompt)
	suggestionsPrompt = readPrompt("./prompts/suggestions.txt", defaultSuggestionsPrompt)
	summaryPrompt = readPrompt("./prompts/summary.txt", defaultSummaryPrompt)

	return nil
}

// Enabled 大模型是否可用
func Enabled() bool {
	return llmClient != nil
}
