package auth_fx

import (
	"go.uber.org/fx"

	"resto/internal/services"
	mem "resto/pkg/memcache"
	"resto/pkg/middleware"
)

var Module = fx.Provide(
	provideIdentityClient, provideAuthService, provideAuthGate)

func provideIdentityClient() services.IdentityClientInterface {
	return services.NewSupabaseIdentityClient()
}

func provideAuthService(identity services.IdentityClientInterface, sessions mem.SessionStore) services.AuthServiceInterface {
	return services.NewAuthService(identity, sessions)
}

func provideAuthGate(sessions mem.SessionStore, identity services.IdentityClientInterface) *middleware.AuthGate {
	return middleware.NewAuthGate(sessions, identity)
}
