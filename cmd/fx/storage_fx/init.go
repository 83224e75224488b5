package storage_fx

import (
	"go.uber.org/fx"

	"resto/internal/services"
)

var Module = fx.Provide(
	provideStorageClient, provideUploadService)

func provideStorageClient() services.StorageClientInterface {
	return services.NewSupabaseStorageClient()
}

func provideUploadService(storage services.StorageClientInterface) services.UploadServiceInterface {
	return services.NewUploadService(storage)
}
