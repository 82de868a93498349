package apperr

import "errors"

var (
	ErrParsing       = errors.New("parsing failed")
	ErrPackaging     = errors.New("packaging failed")
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidFormat = errors.New("invalid file format")
	ErrConfiguration = errors.New("invalid configuration")
	ErrConversion    = errors.New("conversion failed")
)
