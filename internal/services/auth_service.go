package services

import (
	"context"
	"log"
	"time"

	"resto/internal/models/request_models"
	"resto/internal/models/response_models"
	"resto/pkg/memcache"
	"resto/pkg/utils"
)

// SessionTTL bounds how long a session cookie stays valid.
const SessionTTL = 7 * 24 * time.Hour

type AuthServiceInterface interface {
	// Login delegates the credential check to the identity provider and,
	// on success, opens a server-side session. Returns the provider's
	// access token plus the opaque session token for the cookie.
	Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, string, error)

	Logout(sessionToken string)
}

type AuthService struct {
	identity IdentityClientInterface
	sessions memcache.SessionStore
}

func NewAuthService(identity IdentityClientInterface, sessions memcache.SessionStore) AuthServiceInterface {
	return &AuthService{
		identity: identity,
		sessions: sessions,
	}
}

func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, string, error) {
	login, err := a.identity.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return response_models.LoginResponse{}, "", err
	}

	sessionToken, err := utils.GenerateSecureToken(32)
	if err != nil {
		log.Printf("Error generating session token: %v", err)
		return response_models.LoginResponse{}, "", err
	}
	a.sessions.Set(sessionToken, login.User, SessionTTL)

	return login, sessionToken, nil
}

func (a *AuthService) Logout(sessionToken string) {
	if sessionToken != "" {
		a.sessions.Delete(sessionToken)
	}
}
