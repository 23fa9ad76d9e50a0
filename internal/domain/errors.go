package domain

import "errors"

var (
	ErrFileRead         = errors.New("file read failed")
	ErrValidation       = errors.New("image and prompt required")
	ErrNoImageReturned  = errors.New("no image data returned")
	ErrGenerationFailed = errors.New("generation failed")
	ErrEditInFlight     = errors.New("edit already in flight")
	ErrNoSession        = errors.New("session not found")
	ErrNoResult         = errors.New("no result available")
)
