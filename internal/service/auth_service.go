package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"taxpal/internal/dto"
	"taxpal/internal/models"
	"taxpal/internal/repository"
	"taxpal/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user with same email or name already exists")
	ErrNoOTPRequested     = errors.New("no OTP requested")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrMailDelivery       = errors.New("failed to send OTP email")
)

const otpTTL = 10 * time.Minute

type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *auth.JWTManager
	mailer     *Mailer
	logger     *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, jwtManager *auth.JWTManager, mailer *Mailer, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		mailer:     mailer,
		logger:     logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	existing, _ := s.userRepo.GetByEmailOrName(ctx, req.Email, req.Name)
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Country:   req.Country,
		Income:    req.Income,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID.String(), user.Name, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User: dto.UserResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.String(), user.Name, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (s *AuthService) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return &dto.UserResponse{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		Country: user.Country,
		Income:  user.Income,
	}, nil
}

// ForgotPassword stores a short-lived 4-digit OTP for the user and mails it.
// Without SMTP configured the OTP is returned so dev setups keep working.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (devOTP string, err error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrUserNotFound
	}

	otp := fmt.Sprintf("%04d", rand.Intn(9000)+1000)
	expires := time.Now().Add(otpTTL)
	user.OTP = otp
	user.OTPExpires = &expires
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	if s.mailer.Enabled() {
		if err := s.mailer.SendOTP(email, otp); err != nil {
			s.logger.Error("Mail send error", zap.Error(err))
			return "", ErrMailDelivery
		}
		return "", nil
	}

	s.logger.Info("OTP generated (dev mode)", zap.String("email", email))
	return otp, nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || user.OTP == "" || user.OTPExpires == nil {
		return ErrNoOTPRequested
	}
	if user.OTP != otp || user.OTPExpires.Before(time.Now()) {
		return ErrInvalidOTP
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil || user.OTP == "" || user.OTPExpires == nil {
		return ErrNoOTPRequested
	}
	if user.OTP != req.OTP || user.OTPExpires.Before(time.Now()) {
		return ErrInvalidOTP
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.OTP = ""
	user.OTPExpires = nil
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}
