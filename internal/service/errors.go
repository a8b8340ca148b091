package service

import "errors"

// Sentinel errors shared by the services. Handlers map these onto HTTP
// status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not authorized to access this resource")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrProfileExists      = errors.New("user already has a profile")
	ErrProfileMissing     = errors.New("user profile not found")
	ErrInvalidRole        = errors.New("only user messages can be sent")
)
