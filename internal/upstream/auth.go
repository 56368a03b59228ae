package upstream

import (
	"context"
	"net/http"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// LoginRequest is the JSON login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the platform's answer to a successful login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	Role         string `json:"role"`
}

// RegisterRequest is the customer self-registration payload. The platform
// forces the customer role for public registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// TailorRegisterRequest is the tailor application payload.
type TailorRegisterRequest struct {
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	YearsExperience int    `json:"years_experience,omitempty"`
	Specialization  string `json:"specialization,omitempty"`
}

// MessageResponse is the platform's generic acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var out TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login/json", "", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a customer account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", req, nil)
}

// Me returns the profile of the token's owner.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var out domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterTailor submits a tailor application for admin review.
func (c *Client) RegisterTailor(ctx context.Context, req TailorRegisterRequest) (*MessageResponse, error) {
	var out MessageResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/tailor-registration/register", "", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
