package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fireguard-api/internal/dto/request"
	"fireguard-api/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	loginFn    func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	verifyFn   func(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error)
}

func (s *stubAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) Verify(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error) {
	return s.verifyFn(ctx, req)
}

func doJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validRegisterBody = `{"fullName":"Alice Example","username":"alice","email":"alice@example.com","password":"secret123"}`

func TestRegister_Success(t *testing.T) {
	service := &stubAuthService{
		registerFn: func(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			return &response.RegisterResponse{
				UserID:           "4d7a2c1e-0000-0000-0000-000000000001",
				VerificationCode: "123456",
			}, nil
		},
	}
	handler := NewAuthHandler(service, zap.NewNop())

	rec := doJSON(t, handler.Register, validRegisterBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, "User created successfully", body["message"])
	assert.Equal(t, "4d7a2c1e-0000-0000-0000-000000000001", body["userId"])
	assert.Equal(t, "123456", body["verificationCode"])
}

func TestRegister_InvalidBody(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	rec := doJSON(t, handler.Register, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, rec)["error"])
}

func TestRegister_MissingFields(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	rec := doJSON(t, handler.Register, `{"email":"alice@example.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "All fields are required", body["error"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "Password")
}

func TestRegister_Duplicate(t *testing.T) {
	service := &stubAuthService{
		registerFn: func(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
			return nil, fmt.Errorf("user with this email or username already exists")
		},
	}
	handler := NewAuthHandler(service, zap.NewNop())

	rec := doJSON(t, handler.Register, validRegisterBody)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "already exists")
}

func TestRegister_InternalError(t *testing.T) {
	service := &stubAuthService{
		registerFn: func(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
			return nil, fmt.Errorf("failed to create account")
		},
	}
	handler := NewAuthHandler(service, zap.NewNop())

	rec := doJSON(t, handler.Register, validRegisterBody)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, rec)["error"])
}

func TestLogin_Success(t *testing.T) {
	service := &stubAuthService{
		loginFn: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return &response.AuthResponse{
				Token: "signed.jwt.token",
				User: response.UserResponse{
					ID:         "4d7a2c1e-0000-0000-0000-000000000001",
					Email:      req.Email,
					Username:   "alice",
					FullName:   "Alice Example",
					Role:       "user",
					IsVerified: true,
					CreatedAt:  time.Now(),
					UpdatedAt:  time.Now(),
				},
			}, nil
		},
	}
	handler := NewAuthHandler(service, zap.NewNop())

	rec := doJSON(t, handler.Login, `{"email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "signed.jwt.token", body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "Alice Example", user["fullName"])
	assert.Equal(t, true, user["isVerified"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service := &stubAuthService{
		loginFn: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return nil, fmt.Errorf("invalid credentials")
		},
	}
	handler := NewAuthHandler(service, zap.NewNop())

	rec := doJSON(t, handler.Login, `{"email":"alice@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decodeBody(t, rec)["error"])
}

func TestVerify_Success(t *testing.T) {
	service := &stubAuthService{
		verifyFn: func(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error) {
			assert.Equal(t, "123456", req.VerificationCode)
			return &response.AuthResponse{
				Token: "signed.jwt.token",
				User:  response.UserResponse{IsVerified: true},
			}, nil
		},
	}
	handler := NewAuthHandler(service, zap.NewNop())

	rec := doJSON(t, handler.Verify, `{"email":"alice@example.com","verificationCode":"123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Email verified successfully", body["message"])
	assert.Equal(t, "signed.jwt.token", body["token"])
}

func TestVerify_InvalidCode(t *testing.T) {
	service := &stubAuthService{
		verifyFn: func(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error) {
			return nil, fmt.Errorf("invalid verification code")
		},
	}
	handler := NewAuthHandler(service, zap.NewNop())

	rec := doJSON(t, handler.Verify, `{"email":"alice@example.com","verificationCode":"654321"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid verification code", decodeBody(t, rec)["error"])
}

func TestVerify_MalformedCodeRejectedBeforeService(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	rec := doJSON(t, handler.Verify, `{"email":"alice@example.com","verificationCode":"12ab56"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and verification code are required", decodeBody(t, rec)["error"])
}
