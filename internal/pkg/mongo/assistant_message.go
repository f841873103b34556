package mongo

import (
	"time"
)

// AssistantMessage is one turn of a user's assistant conversation.
type AssistantMessage struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversationId"`
	UserID         uint64    `bson:"user_id" json:"userId"`
	FromUser       bool      `bson:"from_user" json:"fromUser"`
	Content        string    `bson:"content" json:"content"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}
