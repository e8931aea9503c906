// Package http adapts transport requests onto the signup service. Handlers
// stay thin: parse, delegate, map the outcome. Whether a sign-up landed on
// an available or a full sheet is not their concern; both are success.
package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"session-signup/services"
)

// NewServer wires the signup routes into a Fiber app. The app is returned
// unstarted; the caller owns Listen and Shutdown.
func NewServer(log *slog.Logger, signupService services.ISignupService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "session-signup",
		DisableStartupMessage: true,
	})

	handler := NewSignupHandler(log, signupService)

	app.Post("/sessions", handler.CreateSheet)
	app.Get("/sessions", handler.ListSheets)
	app.Post("/sessions/:id/close", handler.CloseSignup)
	app.Get("/sessions/:id/signups", handler.ListSignups)
	app.Post("/sessions/:id/signups/:attendee", handler.SignUp)
	app.Delete("/sessions/:id/signups/:attendee", handler.CancelSignUp)
	app.Get("/sessions/:id/signups/:attendee", handler.IsSignedUp)

	return app
}
