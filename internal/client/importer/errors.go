package importer

import "errors"

var (
	// ErrInsufficientData means the text has no header or no data row.
	ErrInsufficientData = errors.New("nothing to import: need a header line and at least one data line")

	// Mapping errors, returned when a user-supplied mapping is checked.
	ErrColumnOutOfRange = errors.New("column index out of range")
	ErrUnknownField     = errors.New("unknown target field")
	ErrPasswordUnmapped = errors.New("password column is not mapped")
)
