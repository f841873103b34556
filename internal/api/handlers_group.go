package api

import (
	"Inkwell/internal/api/handler"
	"Inkwell/internal/service"
)

// HandlersGroup bundles everything the router needs.
type HandlersGroup struct {
	Content      *handler.ContentHandler
	Admin        *handler.AdminHandler
	Assistant    *handler.AssistantHandler
	Notification *handler.NotificationHandler
	Auth         *handler.AuthHandler
	Billing      *handler.BillingHandler

	AuthService service.AuthService
	UserService service.UserService
}
