package handlers

import (
	"errors"

	"taxpal/internal/dto"
	"taxpal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Signup godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup fields"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string
// @Router /api/users/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "name, email, password are required",
		})
	}

	resp, err := h.authService.Signup(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "User with same email or name already exists",
			})
		}
		h.logger.Error("Signup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Signup failed",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login godoc
// @Summary Authenticate a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string
// @Router /api/users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}
		h.logger.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Login failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(resp)
}

// GetMe godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/me [get]
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	resp, err := h.authService.GetMe(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		h.logger.Error("GetMe failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.JSON(resp)
}

// ForgotPassword godoc
// @Summary Request a password-reset OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email required",
		})
	}

	devOTP, err := h.authService.ForgotPassword(c.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		case errors.Is(err, service.ErrMailDelivery):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to send OTP email",
			})
		default:
			h.logger.Error("ForgotPassword failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to generate OTP",
				"error":   err.Error(),
			})
		}
	}

	if devOTP != "" {
		return c.JSON(fiber.Map{"message": "OTP generated (dev mode)", "otp": devOTP})
	}
	return c.JSON(fiber.Map{"message": "OTP sent to your email"})
}

// VerifyOTP godoc
// @Summary Verify a password-reset OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Email and OTP"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/users/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "email and otp required",
		})
	}

	if err := h.authService.VerifyOTP(c.Context(), req.Email, req.OTP); err != nil {
		msg := "Invalid or expired OTP"
		if errors.Is(err, service.ErrNoOTPRequested) {
			msg = "No OTP requested"
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	return c.JSON(fiber.Map{"message": "OTP verified"})
}

// ResetPassword godoc
// @Summary Reset password using a verified OTP
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email, OTP and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/users/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "email, otp, newPassword are required",
		})
	}

	if err := h.authService.ResetPassword(c.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrNoOTPRequested):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "No OTP requested",
			})
		case errors.Is(err, service.ErrInvalidOTP):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid or expired OTP",
			})
		default:
			h.logger.Error("ResetPassword failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Reset failed",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{"message": "Password reset successful"})
}
