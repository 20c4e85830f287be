package idx2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput    = errors.New("index CSV content cannot be empty")
	ErrInputNotFound = errors.New("index CSV file not found")
	ErrMalformedRow  = errors.New("malformed index row")
	ErrReadInput     = errors.New("failed to read index CSV file")
	ErrOutputExists  = errors.New("output file already exists")
	ErrWriteOutput   = errors.New("failed to write document")

	// Page layout validation errors.
	ErrInvalidMargin  = errors.New("invalid margin")
	ErrInvalidColumns = errors.New("invalid column count")

	// Text style validation errors.
	ErrInvalidFontSize = errors.New("invalid font size")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidIndent   = errors.New("invalid hanging indent")
	ErrEmptyFontName   = errors.New("font name cannot be empty")
)
