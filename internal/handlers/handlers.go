// Package handlers contains the fiber HTTP handlers. They parse requests,
// call the services and map service errors onto HTTP statuses.
package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/auth"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/ranking"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/service"
)

// Handlers bundles the HTTP handlers for all routes.
type Handlers struct {
	auth     *service.AuthService
	score    *service.ScoreService
	question *service.QuestionService
}

// NewHandlers creates a new handlers instance.
func NewHandlers(authSvc *service.AuthService, scoreSvc *service.ScoreService, questionSvc *service.QuestionService) *Handlers {
	return &Handlers{auth: authSvc, score: scoreSvc, question: questionSvc}
}

// HandleSignup handles POST /signup
func (h *Handlers) HandleSignup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	err := h.auth.Signup(c.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "user already existed",
		})
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidEmail):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	case err != nil:
		log.Printf("Error signing up: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  true,
		"message": "user record registered",
	})
}

// HandleLogin handles POST /login
func (h *Handlers) HandleLogin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	token, err := h.auth.Login(c.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User not found",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid password",
		})
	case err != nil:
		log.Printf("Error logging in: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		MaxAge:   int(auth.SessionTokenTTL.Seconds()),
	})
	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Login successful",
		"token":   token,
	})
}

// HandleUpdateScore handles PUT /score (authenticated). The score field is a
// delta added to the chosen difficulty's counter.
func (h *Handlers) HandleUpdateScore(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No token provided",
		})
	}

	var req struct {
		Level string `json:"level"`
		Score int    `json:"score"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	score, err := h.score.ApplyDelta(c.Context(), identity.UserID, req.Level, req.Score)
	switch {
	case errors.Is(err, ranking.ErrInvalidLevel), errors.Is(err, service.ErrInvalidDelta):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	case err != nil:
		log.Printf("Error updating score: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"status": true,
		"score":  score,
	})
}

// HandleLeaderboard handles GET /leaderboard
func (h *Handlers) HandleLeaderboard(c *fiber.Ctx) error {
	board, err := h.score.GetLeaderboard(c.Context())
	if err != nil {
		log.Printf("Error getting leaderboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(board)
}

// HandleProfile handles GET /user/profile (authenticated)
func (h *Handlers) HandleProfile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "No token provided",
		})
	}

	profile, err := h.score.GetProfile(c.Context(), identity.UserID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	case err != nil:
		log.Printf("Error getting profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.JSON(profile)
}

// HandleForgotPassword handles POST /forgot-password
func (h *Handlers) HandleForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	err := h.auth.ForgotPassword(c.Context(), req.Email)
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid email address",
		})
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	case err != nil:
		log.Printf("Error sending reset email: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to send reset email",
		})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Password reset link sent to your email",
	})
}

// HandleResetPassword handles POST /reset-password/:id/:token
func (h *Handlers) HandleResetPassword(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	err := h.auth.ResetPassword(c.Context(), c.Params("id"), c.Params("token"), req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	case errors.Is(err, service.ErrInvalidResetToken), errors.Is(err, service.ErrMissingFields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	case err != nil:
		log.Printf("Error resetting password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Password reset successful",
	})
}

// HandleGetQuestion handles GET /question
func (h *Handlers) HandleGetQuestion(c *fiber.Ctx) error {
	q, err := h.question.FetchAndStore(c.Context())
	if err != nil {
		log.Printf("Error fetching puzzle: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(q)
}
