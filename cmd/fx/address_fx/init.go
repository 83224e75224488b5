package address_fx

import (
	"go.uber.org/fx"

	"resto/internal/services"
)

var Module = fx.Provide(
	provideLookupCache, provideAddressLookup)

func provideLookupCache() services.LookupCache {
	return services.NewInMemoryLookupCache()
}

func provideAddressLookup(cache services.LookupCache) services.AddressLookupServiceInterface {
	return services.NewPdokClient(cache)
}
