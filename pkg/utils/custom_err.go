package utils

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrAddressNotFound  = errors.New("address not found")

	ErrInvalidTagKind  = errors.New("tag kind must be cuisine or vibe")
	ErrMissingFields   = errors.New("required fields missing")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrEmptyUploadBody = errors.New("empty upload body")

	ErrUnauthorized       = errors.New("not authenticated")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrIdentityNotConfigured = errors.New("identity provider not configured")
	ErrIdentityUnavailable   = errors.New("identity provider unavailable")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrLookupUpstream        = errors.New("address lookup upstream failed")

	ErrDatabaseError = errors.New("database error")
)
