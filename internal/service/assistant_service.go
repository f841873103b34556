package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/llm"
	"Inkwell/internal/pkg/mongo"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

const assistantHistoryLimit = 20

type AssistantService interface {
	// Chat answers one question, threading the stored conversation
	// history into the prompt. An empty conversation id starts a new
	// conversation.
	Chat(ctx context.Context, userID uint64, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error)
}

type AssistantServiceImpl struct {
	messageRepo mongo.AssistantMessageRepo
}

func NewAssistantService(messageRepo mongo.AssistantMessageRepo) AssistantService {
	return &AssistantServiceImpl{messageRepo: messageRepo}
}

func (s *AssistantServiceImpl) Chat(ctx context.Context, userID uint64, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error) {
	convID := req.ConversationID
	if convID == "" {
		convID = uuid.NewString()
	} else if _, err := uuid.Parse(convID); err != nil {
		return nil, ErrConversationInvalid
	}

	history, err := s.messageRepo.GetHistory(ctx, convID, userID, assistantHistoryLimit)
	if err != nil {
		log.ErrorContext(ctx, "load assistant history failed", "conversation", convID, "err", err)
		return nil, UnExpectedError
	}

	turns := make([]llm.ChatTurn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, llm.ChatTurn{FromUser: msg.FromUser, Content: msg.Content})
	}

	answer, err := llm.Complete(ctx, turns, req.Question)
	if err != nil {
		log.ErrorContext(ctx, "assistant completion failed", "conversation", convID, "err", err)
		return nil, UnExpectedError
	}

	// History persistence is best-effort; a failed save loses context
	// for the next turn but not the answer.
	if err := s.messageRepo.SaveMessage(ctx, &mongo.AssistantMessage{
		ConversationID: convID,
		UserID:         userID,
		FromUser:       true,
		Content:        req.Question,
	}); err != nil {
		log.WarnContext(ctx, "save question failed", "conversation", convID, "err", err)
	}
	if err := s.messageRepo.SaveMessage(ctx, &mongo.AssistantMessage{
		ConversationID: convID,
		UserID:         userID,
		FromUser:       false,
		Content:        answer,
	}); err != nil {
		log.WarnContext(ctx, "save answer failed", "conversation", convID, "err", err)
	}

	return &dto.AssistantChatResponse{
		Success:        true,
		ConversationID: convID,
		Answer:         answer,
	}, nil
}
