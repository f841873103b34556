package llm

import (
	"Inkwell/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

// InitLLM connects the OpenAI-compatible chat model used by the reader
// assistant.
func InitLLM() error {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("LLM initialization failed", "err", err)
		return err
	}

	llmClient = llm
	return nil
}
