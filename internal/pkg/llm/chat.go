package llm

import (
	"Inkwell/internal/api/config"
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
)

const assistantPrompt = `You are the reading assistant for a publishing
platform. Answer questions about the publication's articles concisely.
If a question is unrelated to the publication, say so politely.`

// ChatTurn is one prior message in a conversation, oldest first.
type ChatTurn struct {
	FromUser bool
	Content  string
}

// Complete runs a single chat completion with the stored history as
// context and returns the assistant's reply.
func Complete(ctx context.Context, history []ChatTurn, question string) (string, error) {
	if llmClient == nil {
		return "", errors.New("llm client is not initialized")
	}

	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(assistantPrompt)},
	})
	for _, turn := range history {
		role := llms.ChatMessageTypeAI
		if turn.FromUser {
			role = llms.ChatMessageTypeHuman
		}
		messages = append(messages, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(turn.Content)},
		})
	}
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(question)},
	})

	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.Model),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Content, nil
}
