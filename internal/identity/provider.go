// Package identity integrates the external identity provider. The backend
// never stores credentials itself: session tokens are verified against the
// provider secret and user profiles (including the role) are fetched from
// the provider API on every request.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"limoapi/internal/domain"
)

// RoleAdmin is the role value carried in provider user metadata that unlocks
// admin routes.
const RoleAdmin = "admin"

// User is the resolved identity attached to authenticated requests.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// Provider resolves bearer credentials into users.
type Provider interface {
	// VerifyToken checks a session token and returns the subject id.
	VerifyToken(ctx context.Context, token string) (string, error)
	// FetchUser loads the subject's profile and role metadata.
	FetchUser(ctx context.Context, userID string) (User, error)
}

// TokenProvider verifies HS256 session tokens locally with the provider
// secret and fetches profiles over HTTP, one call per request.
type TokenProvider struct {
	SecretKey string
	APIURL    string
	Client    *http.Client
}

func NewTokenProvider(secretKey, apiURL string) *TokenProvider {
	return &TokenProvider{
		SecretKey: secretKey,
		APIURL:    apiURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *TokenProvider) VerifyToken(_ context.Context, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(p.SecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.UnauthorizedError{Msg: "invalid authentication token", Err: err}
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.UnauthorizedError{Msg: "invalid authentication token", Err: err}
	}
	return sub, nil
}

// providerUser mirrors the provider's user payload.
type providerUser struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PublicMetadata struct {
		Role string `json:"role"`
	} `json:"public_metadata"`
}

func (p *TokenProvider) FetchUser(ctx context.Context, userID string) (User, error) {
	url := p.APIURL + "/v1/users/" + userID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return User{}, domain.DependencyError{Msg: "identity provider request failed", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+p.SecretKey)

	resp, err := p.client().Do(req)
	if err != nil {
		return User{}, domain.DependencyError{Msg: "identity provider unreachable", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return User{}, domain.UnauthorizedError{Msg: "user not found"}
	case resp.StatusCode != http.StatusOK:
		return User{}, domain.DependencyError{
			Msg: fmt.Sprintf("identity provider returned status %d", resp.StatusCode),
		}
	}

	var pu providerUser
	if err := json.NewDecoder(resp.Body).Decode(&pu); err != nil {
		return User{}, domain.DependencyError{Msg: "identity provider response malformed", Err: err}
	}

	role := pu.PublicMetadata.Role
	if role == "" {
		role = "user"
	}
	return User{
		ID:        pu.ID,
		Email:     pu.Email,
		FirstName: pu.FirstName,
		LastName:  pu.LastName,
		Role:      role,
	}, nil
}

func (p *TokenProvider) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return http.DefaultClient
}
