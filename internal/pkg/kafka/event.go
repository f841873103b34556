package kafka

import (
	"time"
)

const (
	EventCommentCreated        = "comment.created"
	EventSubscriptionActivated = "subscription.activated"
)

// EngagementEvent is the payload on the engagement topic. Producers fill
// only the fields their event type needs.
type EngagementEvent struct {
	Type       string    `json:"type"`
	PostID     uint64    `json:"postId,omitempty"`
	PostTitle  string    `json:"postTitle,omitempty"`
	ActorID    uint64    `json:"actorId,omitempty"`
	ActorName  string    `json:"actorName,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
