package fxfont

import "errors"

// Conversion errors. Functions in this package wrap them with the offending
// value, so callers should test with errors.Is.
var (
	ErrMissingCharset           = errors.New("'charset' attribute is required and missing")
	ErrUnknownCharset           = errors.New("unknown character set")
	ErrInvalidGridSize          = errors.New("size of grid unspecified or invalid")
	ErrInsufficientGridCapacity = errors.New("not enough elements in grid")
	ErrUnknownFlag              = errors.New("unknown flag")
	ErrInvalidSize              = errors.New("invalid size, expected WxH")
	ErrInvalidParam             = errors.New("invalid parameter value")
	ErrUnknownParam             = errors.New("unknown parameter")
	ErrGlyphTooWide             = errors.New("glyph too wide for width table")
	ErrFieldOverflow            = errors.New("header field out of range")
	ErrMalformedRecord          = errors.New("malformed font record")
	ErrGlyphNotFound            = errors.New("glyph not in font")
)
