package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fireguard-api/internal/data/entity"
	"fireguard-api/internal/data/repository"
	"fireguard-api/internal/dto/request"
	"fireguard-api/internal/dto/response"
	"fireguard-api/pkg/mailer"
	"fireguard-api/pkg/token"
	"fireguard-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Verify(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *token.Service
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *token.Service,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Existence check. Advisory only: the unique indexes are the real
	// guard against a concurrent registration slipping past this read.
	existingUser, err := s.repo.User.FindByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		s.log.Error("Failed to check existing user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check existing user")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("user with this email or username already exists")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Pending verification code
	code := utils.GenerateVerificationCode()
	codeExpiry := time.Now().Add(time.Duration(s.config.Verification.CodeExpiryMinutes) * time.Minute)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:                 req.Email,
		Username:              req.Username,
		FullName:              req.FullName,
		PasswordHash:          hashedPassword,
		Role:                  entity.RoleUser,
		IsVerified:            false,
		VerificationCode:      &code,
		VerificationExpiresAt: &codeExpiry,
	}

	// 5. Save user; a racing duplicate insert gets the same error as the
	// existence check above
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("user with this email or username already exists")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 6. Dispatch verification email (async, best-effort; the account exists
	// even if delivery fails)
	go s.sendVerificationEmail(user.Email, code)

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := &response.RegisterResponse{
		UserID: user.ID.String(),
	}
	if s.config.App.DevMode {
		resp.VerificationCode = code
	}

	return resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// 3. Unknown email and wrong password produce the identical error, so a
	// caller cannot enumerate accounts
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 4. Issue token
	signed, _, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.AuthResponse{
		Token: signed,
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) Verify(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Match and consume the code in one conditional update; at most one
	// request per code can get a row back
	user, err := s.repo.User.ConsumeVerificationCode(ctx, req.Email, req.VerificationCode)
	if err != nil {
		s.log.Error("Failed to consume verification code", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to verify code")
	}
	if user == nil {
		s.log.Warn("Verification code mismatch", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid verification code")
	}

	// 3. Issue token for the now-verified account
	signed, _, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("Email verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		Token: signed,
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) sendVerificationEmail(email, code string) {
	if err := s.mail.SendVerificationCode(email, code); err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", email))
	}
}
