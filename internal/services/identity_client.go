package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"resto/internal/models/response_models"
	"resto/pkg/utils"
)

// IdentityClientInterface is the identity-provider contract: password
// sign-in, bearer token validation, and a health probe. Users live
// entirely in the provider; this service only reads the claims.
type IdentityClientInterface interface {
	SignInWithPassword(ctx context.Context, email, password string) (response_models.LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (response_models.AuthUser, error)
	Health(ctx context.Context) error
	Configured() bool
}

// SupabaseIdentityClient talks to the Supabase auth (GoTrue) REST API.
// When SUPABASE_JWT_SECRET is set, bearer tokens are verified locally
// instead of a network round trip per request.
type SupabaseIdentityClient struct {
	HTTP      *http.Client
	BaseURL   string
	AnonKey   string
	JWTSecret string
}

func NewSupabaseIdentityClient() *SupabaseIdentityClient {
	return &SupabaseIdentityClient{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		BaseURL:   strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		AnonKey:   strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
		JWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
	}
}

func (c *SupabaseIdentityClient) Configured() bool {
	return c.BaseURL != "" && c.AnonKey != ""
}

type gotrueUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	AppMetadata struct {
		Roles json.RawMessage `json:"roles"`
	} `json:"app_metadata"`
}

// parseRoles accepts either a JSON array of strings or a single string,
// which is how provider metadata shows up in the wild.
func parseRoles(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && strings.TrimSpace(single) != "" {
		return []string{strings.TrimSpace(single)}
	}
	return nil
}

func (u gotrueUser) authUser() response_models.AuthUser {
	return response_models.NewAuthUser(u.ID, u.Email, parseRoles(u.AppMetadata.Roles))
}

func (c *SupabaseIdentityClient) SignInWithPassword(ctx context.Context, email, password string) (response_models.LoginResponse, error) {
	if !c.Configured() {
		return response_models.LoginResponse{}, utils.ErrIdentityNotConfigured
	}

	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	url := c.BaseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return response_models.LoginResponse{}, err
	}
	req.Header.Set("apikey", c.AnonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrIdentityUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized ||
		resp.StatusCode == http.StatusUnprocessableEntity {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}
	if resp.StatusCode/100 != 2 {
		return response_models.LoginResponse{}, utils.ErrIdentityUnavailable
	}

	var body struct {
		AccessToken string     `json:"access_token"`
		ExpiresIn   int        `json:"expires_in"`
		User        gotrueUser `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return response_models.LoginResponse{}, utils.ErrIdentityUnavailable
	}
	if body.User.ID == "" {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{
		Token:     body.AccessToken,
		ExpiresIn: body.ExpiresIn,
		User:      body.User.authUser(),
	}, nil
}

func (c *SupabaseIdentityClient) ValidateToken(ctx context.Context, token string) (response_models.AuthUser, error) {
	if c.JWTSecret != "" {
		return c.validateLocally(token)
	}
	return c.validateRemotely(ctx, token)
}

func (c *SupabaseIdentityClient) validateLocally(token string) (response_models.AuthUser, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return response_models.AuthUser{}, utils.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return response_models.AuthUser{}, utils.ErrUnauthorized
	}
	email, _ := claims["email"].(string)

	var roles []string
	if meta, ok := claims["app_metadata"].(map[string]interface{}); ok {
		switch v := meta["roles"].(type) {
		case []interface{}:
			for _, r := range v {
				if s, ok := r.(string); ok {
					roles = append(roles, s)
				}
			}
		case string:
			if strings.TrimSpace(v) != "" {
				roles = []string{strings.TrimSpace(v)}
			}
		}
	}

	return response_models.NewAuthUser(sub, email, roles), nil
}

func (c *SupabaseIdentityClient) validateRemotely(ctx context.Context, token string) (response_models.AuthUser, error) {
	if !c.Configured() {
		return response_models.AuthUser{}, utils.ErrIdentityNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return response_models.AuthUser{}, err
	}
	req.Header.Set("apikey", c.AnonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return response_models.AuthUser{}, utils.ErrIdentityUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return response_models.AuthUser{}, utils.ErrUnauthorized
	}
	if resp.StatusCode/100 != 2 {
		return response_models.AuthUser{}, utils.ErrIdentityUnavailable
	}

	var user gotrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return response_models.AuthUser{}, utils.ErrIdentityUnavailable
	}
	if user.ID == "" {
		return response_models.AuthUser{}, utils.ErrUnauthorized
	}
	return user.authUser(), nil
}

func (c *SupabaseIdentityClient) Health(ctx context.Context) error {
	if !c.Configured() {
		return utils.ErrIdentityNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/auth/v1/health", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.AnonKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return utils.ErrIdentityUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: %s", utils.ErrIdentityUnavailable, resp.Status)
	}
	return nil
}
