package dto

// SimpleResponse is for operations whose only payload is the outcome.
type SimpleResponse struct {
	Success bool `json:"success"`
}

type UploadResponse struct {
	Success      bool   `json:"success"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// BillingWebhookRequest is the payment provider's callback payload.
type BillingWebhookRequest struct {
	Type       string `json:"type" binding:"required,max=64"`
	CustomerID string `json:"customerId" binding:"required,max=128"`
}

// PushSubscribeRequest mirrors the browser PushSubscription JSON.
type PushSubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url,max=512"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required,max=255"`
		Auth   string `json:"auth" binding:"required,max=255"`
	} `json:"keys" binding:"required"`
}

type AssistantChatRequest struct {
	ConversationID string `json:"conversationId" binding:"omitempty,max=64"`
	Question       string `json:"question" binding:"required,max=2000"`
}

type AssistantChatResponse struct {
	Success        bool   `json:"success"`
	ConversationID string `json:"conversationId"`
	Answer         string `json:"answer"`
}
