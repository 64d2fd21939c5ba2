package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alwantayf_backend/internals/configs"
	"alwantayf_backend/internals/features/users/auth/dto"
	"alwantayf_backend/internals/features/users/auth/service"
	helper "alwantayf_backend/internals/helpers"
	authMiddleware "alwantayf_backend/internals/middlewares/auth"
)

var validateAuth = validator.New()

const (
	refreshTokenCookie = "sb-refresh-token"
	sessionMaxAge      = 7 * 24 * time.Hour
)

// AuthGateway is the subset of the GoTrue client the handlers use.
type AuthGateway interface {
	SignInWithPassword(ctx context.Context, email, password string) (*service.Session, error)
	GetUser(ctx context.Context, accessToken string) (*service.User, error)
	SignOut(ctx context.Context, accessToken string) error
}

type AuthController struct {
	Gateway AuthGateway
}

func NewAuthController(gw AuthGateway) *AuthController {
	return &AuthController{Gateway: gw}
}

// =============================
// 🔑 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Email and password required")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Email and password required")
	}

	session, err := ctrl.Gateway.SignInWithPassword(c.UserContext(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Login failed", err.Error())
	}

	setSessionCookie(c, authMiddleware.AccessTokenCookie, session.AccessToken, sessionMaxAge)
	setSessionCookie(c, refreshTokenCookie, session.RefreshToken, sessionMaxAge)

	log.Printf("[INFO] login successful for %s", session.User.Email)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user": dto.LoginUser{
			ID:    session.User.ID,
			Email: session.User.Email,
		},
	})
}

// =============================
// 🚪 Logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(authMiddleware.AccessTokenCookie); token != "" {
		if err := ctrl.Gateway.SignOut(c.UserContext(), token); err != nil {
			log.Printf("[WARN] upstream sign-out failed: %v", err)
		}
	}

	clearSessionCookie(c, authMiddleware.AccessTokenCookie)
	clearSessionCookie(c, refreshTokenCookie)

	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// =============================
// 👤 Me
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	token := c.Cookies(authMiddleware.AccessTokenCookie)
	if token == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "No token found")
	}

	user, err := ctrl.Gateway.GetUser(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid token")
		}
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Auth check failed", err.Error())
	}

	return c.JSON(fiber.Map{"user": user})
}

func setSessionCookie(c *fiber.Ctx, name, value string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
