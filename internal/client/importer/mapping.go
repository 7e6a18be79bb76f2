package importer

import (
	"fmt"
	"strings"
)

// Ignored marks a target field that takes no column.
const Ignored = -1

// TargetField is one of the four slots an imported record fills.
type TargetField string

const (
	FieldService  TargetField = "service"
	FieldUsername TargetField = "username"
	FieldPassword TargetField = "password"
	FieldNotes    TargetField = "notes"
)

// TargetFields lists the target fields in display order.
var TargetFields = []TargetField{FieldService, FieldUsername, FieldPassword, FieldNotes}

// ParseTargetField resolves a case-insensitive field name.
func ParseTargetField(s string) (TargetField, error) {
	f := TargetField(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TargetFields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// FieldMapping maps every target field to a column index or Ignored.
//
// Two fields may point at the same column. The zero value maps everything
// to column 0; use NewFieldMapping for an all-ignored mapping.
type FieldMapping struct {
	Service  int `json:"service"`
	Username int `json:"username"`
	Password int `json:"password"`
	Notes    int `json:"notes"`
}

// NewFieldMapping returns a mapping with every field ignored.
func NewFieldMapping() FieldMapping {
	return FieldMapping{Service: Ignored, Username: Ignored, Password: Ignored, Notes: Ignored}
}

// Get returns the column index for field, or Ignored for an unknown field.
func (m FieldMapping) Get(field TargetField) int {
	switch field {
	case FieldService:
		return m.Service
	case FieldUsername:
		return m.Username
	case FieldPassword:
		return m.Password
	case FieldNotes:
		return m.Notes
	}
	return Ignored
}

// Set points field at index after checking Ignored <= index < columns.
// The receiver is left untouched when the check fails.
func (m *FieldMapping) Set(field TargetField, index, columns int) error {
	if err := checkIndex(field, index, columns); err != nil {
		return err
	}

	switch field {
	case FieldService:
		m.Service = index
	case FieldUsername:
		m.Username = index
	case FieldPassword:
		m.Password = index
	case FieldNotes:
		m.Notes = index
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Validate checks every index against a header with the given column count.
func (m FieldMapping) Validate(columns int) error {
	for _, f := range TargetFields {
		if err := checkIndex(f, m.Get(f), columns); err != nil {
			return err
		}
	}
	return nil
}

// RequirePassword reports ErrPasswordUnmapped when no column feeds the
// password field. Such a mapping would accept no rows at all.
func (m FieldMapping) RequirePassword() error {
	if m.Password == Ignored {
		return ErrPasswordUnmapped
	}
	return nil
}

func (m FieldMapping) String() string {
	return fmt.Sprintf("service=%d username=%d password=%d notes=%d",
		m.Service, m.Username, m.Password, m.Notes)
}

func checkIndex(field TargetField, index, columns int) error {
	if index < Ignored || index >= columns {
		return fmt.Errorf("%w: %s=%d (columns: %d)", ErrColumnOutOfRange, field, index, columns)
	}
	return nil
}
