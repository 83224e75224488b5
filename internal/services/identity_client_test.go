package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"resto/pkg/utils"
)

func newTestIdentityClient(server *httptest.Server) *SupabaseIdentityClient {
	return &SupabaseIdentityClient{
		HTTP:    server.Client(),
		BaseURL: server.URL,
		AnonKey: "anon-key",
	}
}

func TestSignInWithPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %q", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("apikey = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token":"jwt-token",
			"expires_in":3600,
			"user":{"id":"user-1","email":"a@b.nl","app_metadata":{"roles":["admin"]}}
		}`))
	}))
	defer server.Close()

	client := newTestIdentityClient(server)
	got, err := client.SignInWithPassword(context.Background(), "a@b.nl", "secret")
	if err != nil {
		t.Fatalf("SignInWithPassword: %v", err)
	}
	if got.Token != "jwt-token" || got.ExpiresIn != 3600 {
		t.Errorf("login = %+v", got)
	}
	if !got.User.IsAdmin {
		t.Error("admin role should set IsAdmin")
	}
}

func TestSignInWithPasswordRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client := newTestIdentityClient(server)
	_, err := client.SignInWithPassword(context.Background(), "a@b.nl", "wrong")
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestSignInNotConfigured(t *testing.T) {
	client := &SupabaseIdentityClient{HTTP: http.DefaultClient}
	_, err := client.SignInWithPassword(context.Background(), "a@b.nl", "secret")
	if !errors.Is(err, utils.ErrIdentityNotConfigured) {
		t.Errorf("got %v, want ErrIdentityNotConfigured", err)
	}
}

func TestValidateTokenLocally(t *testing.T) {
	secret := "local-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"email": "a@b.nl",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"app_metadata": map[string]interface{}{
			"roles": []string{"admin"},
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	client := &SupabaseIdentityClient{JWTSecret: secret}
	got, err := client.ValidateToken(context.Background(), signed)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if got.ID != "user-1" || got.Email != "a@b.nl" || !got.IsAdmin {
		t.Errorf("user = %+v", got)
	}
}

func TestValidateTokenLocallyBadSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	client := &SupabaseIdentityClient{JWTSecret: "local-secret"}
	if _, err := client.ValidateToken(context.Background(), signed); !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestValidateTokenLocallyExpired(t *testing.T) {
	secret := "local-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	client := &SupabaseIdentityClient{JWTSecret: secret}
	if _, err := client.ValidateToken(context.Background(), signed); !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestValidateTokenRemotely(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer the-token" {
			t.Errorf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-1","email":"a@b.nl","app_metadata":{"roles":"admin"}}`))
	}))
	defer server.Close()

	client := newTestIdentityClient(server)
	got, err := client.ValidateToken(context.Background(), "the-token")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !got.IsAdmin {
		t.Error("single-string role should still set IsAdmin")
	}
}

func TestValidateTokenRemotelyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestIdentityClient(server)
	if _, err := client.ValidateToken(context.Background(), "bad"); !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestParseRoles(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`["admin","editor"]`, 2},
		{`"admin"`, 1},
		{`""`, 0},
		{`42`, 0},
		{``, 0},
	}
	for _, tc := range cases {
		if got := parseRoles([]byte(tc.in)); len(got) != tc.want {
			t.Errorf("parseRoles(%q) = %v, want %d roles", tc.in, got, tc.want)
		}
	}
}
