// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"horizon/internal/delivery/http/middleware"
	"horizon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SessionHandler  *handler.SessionHandler
	PresenceHandler *handler.PresenceHandler
	NoteHandler     *handler.NoteHandler
	ChatHandler     *handler.ChatHandler
	ReminderHandler *handler.ReminderHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	sessionHandler  *handler.SessionHandler
	presenceHandler *handler.PresenceHandler
	noteHandler     *handler.NoteHandler
	chatHandler     *handler.ChatHandler
	reminderHandler *handler.ReminderHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		sessionHandler:  params.SessionHandler,
		presenceHandler: params.PresenceHandler,
		noteHandler:     params.NoteHandler,
		chatHandler:     params.ChatHandler,
		reminderHandler: params.ReminderHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes; everything here works without a session
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/magic-link", r.authHandler.RequestMagicLink)
		authGroup.GET("/magic-link/qr", r.authHandler.MagicLinkQR)
		authGroup.GET("/magic-link/consume", r.authHandler.ConsumeMagicLink)
		authGroup.POST("/password-reset", r.authHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.authHandler.ConfirmPasswordReset)
	}

	// Everything below requires a live session cookie
	authed := e.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/me", r.authHandler.Me)

		sessionGroup := authed.Group("/sessions")
		sessionGroup.GET("", r.sessionHandler.ListSessions)
		sessionGroup.DELETE("/:id", r.sessionHandler.RevokeSession)
		sessionGroup.POST("/revoke-others", r.sessionHandler.RevokeOtherSessions)
		sessionGroup.POST("/revoke-all", r.sessionHandler.RevokeAllSessions)

		presenceGroup := authed.Group("/presence")
		presenceGroup.POST("/heartbeat", r.presenceHandler.Heartbeat)
		presenceGroup.POST("/query", r.presenceHandler.QueryPresence)

		noteGroup := authed.Group("/notes")
		noteGroup.POST("", r.noteHandler.CreateNote)
		noteGroup.GET("", r.noteHandler.ListNotes)
		noteGroup.GET("/:id", r.noteHandler.GetNote)
		noteGroup.PUT("/:id", r.noteHandler.UpdateNote)
		noteGroup.DELETE("/:id", r.noteHandler.DeleteNote)

		threadGroup := authed.Group("/threads")
		threadGroup.POST("", r.chatHandler.CreateThread)
		threadGroup.GET("", r.chatHandler.ListThreads)
		threadGroup.GET("/:id", r.chatHandler.GetThread)
		threadGroup.POST("/:id/messages", r.chatHandler.PostMessage)
		threadGroup.GET("/:id/messages", r.chatHandler.ListMessages)
		threadGroup.GET("/:id/stream", r.chatHandler.StreamMessages)

		reminderGroup := authed.Group("/reminders")
		reminderGroup.POST("", r.reminderHandler.CreateReminder)
		reminderGroup.GET("", r.reminderHandler.ListReminders)
		reminderGroup.GET("/:id", r.reminderHandler.GetReminder)
		reminderGroup.PUT("/:id", r.reminderHandler.UpdateReminder)
		reminderGroup.DELETE("/:id", r.reminderHandler.DeleteReminder)

		deviceGroup := authed.Group("/devices")
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/fcm-token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
