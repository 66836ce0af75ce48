package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/auth"
)

// Register wires every route onto the app. Score and profile sit behind the
// bearer-token gate.
func (h *Handlers) Register(app *fiber.App, jwtSecret string) {
	requireAuth := auth.RequireAuth(jwtSecret)

	app.Post("/signup", h.HandleSignup)
	app.Post("/login", h.HandleLogin)
	app.Post("/forgot-password", h.HandleForgotPassword)
	app.Post("/reset-password/:id/:token", h.HandleResetPassword)

	app.Put("/score", requireAuth, h.HandleUpdateScore)
	app.Get("/user/profile", requireAuth, h.HandleProfile)

	app.Get("/leaderboard", h.HandleLeaderboard)
	app.Get("/question", h.HandleGetQuestion)
}
