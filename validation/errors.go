// Package validation defines the errors produced while reading, writing and interpreting game data documents.
package validation

import (
	"fmt"

	"github.com/speakeasy-api/gamexml/errors"
)

const (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.Error("xml is not well-formed")
	// ErrSchemaMismatch is matched by every *SchemaMismatchError.
	ErrSchemaMismatch = errors.Error("schema mismatch")
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.Error("invalid value format")
)

// ParseError represents malformed XML and the location where decoding stopped.
type ParseError struct {
	Line    int
	Column  int
	Offset  int64
	Message string
}

var _ error = (*ParseError)(nil)

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, ErrParse, e.Message)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// MemberKind classifies the member of an element a SchemaMismatchError refers to.
type MemberKind string

const (
	MemberAttribute MemberKind = "attribute"
	MemberElement   MemberKind = "element"
	MemberText      MemberKind = "text"
	MemberRoot      MemberKind = "root"
)

// SchemaMismatchError reports a member that the shape requires but the document lacks, or an unexpected member in strict mode.
type SchemaMismatchError struct {
	// Path is the location of the element owning the member, for example /base/widgets/widget[2].
	Path   string
	Member string
	Kind   MemberKind
	// Unexpected is set when the member is present but not part of the shape.
	Unexpected bool
	Line       int
	Column     int
}

var _ error = (*SchemaMismatchError)(nil)

func (e *SchemaMismatchError) Error() string {
	verb := "missing required"
	if e.Unexpected {
		verb = "unexpected"
	}
	if e.Kind == MemberRoot {
		return fmt.Sprintf("[%d:%d] %s: expected root element %s, got %s", e.Line, e.Column, ErrSchemaMismatch, e.Member, e.Path)
	}
	if e.Kind == MemberText {
		return fmt.Sprintf("[%d:%d] %s: %s text on %s", e.Line, e.Column, ErrSchemaMismatch, verb, e.Path)
	}
	return fmt.Sprintf("[%d:%d] %s: %s %s %q on %s", e.Line, e.Column, ErrSchemaMismatch, verb, e.Kind, e.Member, e.Path)
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// GetLineNumber returns the source line or -1 when the member has no source position.
func (e *SchemaMismatchError) GetLineNumber() int {
	if e.Line == 0 {
		return -1
	}
	return e.Line
}

// GetColumnNumber returns the source column or -1 when the member has no source position.
func (e *SchemaMismatchError) GetColumnNumber() int {
	if e.Column == 0 {
		return -1
	}
	return e.Column
}

// FormatError reports a string-typed value that could not be coerced into its convenience type.
type FormatError struct {
	Field    string
	Value    string
	Expected string
}

var _ error = (*FormatError)(nil)

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s value %q is not a valid %s", ErrFormat, e.Field, e.Value, e.Expected)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NewFormatError creates a FormatError for field.
func NewFormatError(field, value, expected string) *FormatError {
	return &FormatError{Field: field, Value: value, Expected: expected}
}
