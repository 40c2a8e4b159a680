package validation_test

import (
	"fmt"
	"testing"

	"github.com/speakeasy-api/gamexml/validation"
	"github.com/stretchr/testify/require"
)

func TestErrors_Is_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "parse error",
			err:      &validation.ParseError{Line: 1, Column: 5, Message: "unexpected EOF"},
			sentinel: validation.ErrParse,
		},
		{
			name:     "schema mismatch",
			err:      &validation.SchemaMismatchError{Path: "/base", Member: "type", Kind: validation.MemberAttribute},
			sentinel: validation.ErrSchemaMismatch,
		},
		{
			name:     "format error",
			err:      validation.NewFormatError("id", "abc", "integer"),
			sentinel: validation.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("outer: %w", tt.err), tt.sentinel)
		})
	}
}

func TestSchemaMismatchError_Error_Success(t *testing.T) {
	t.Parallel()

	missing := &validation.SchemaMismatchError{Path: "/base/def[1]", Member: "name", Kind: validation.MemberAttribute, Line: 3, Column: 4}
	require.Equal(t, `[3:4] schema mismatch: missing required attribute "name" on /base/def[1]`, missing.Error())

	unexpected := &validation.SchemaMismatchError{Path: "/base", Member: "extra", Kind: validation.MemberElement, Unexpected: true, Line: 2, Column: 2}
	require.Equal(t, `[2:2] schema mismatch: unexpected element "extra" on /base`, unexpected.Error())

	root := &validation.SchemaMismatchError{Path: "other", Member: "base", Kind: validation.MemberRoot, Line: 1, Column: 1}
	require.Equal(t, "[1:1] schema mismatch: expected root element base, got other", root.Error())
}

func TestSortErrors_Success(t *testing.T) {
	t.Parallel()

	other := fmt.Errorf("something else")
	late := &validation.SchemaMismatchError{Path: "/b", Member: "x", Line: 10, Column: 1}
	early := &validation.SchemaMismatchError{Path: "/a", Member: "y", Line: 2, Column: 7}
	sameLine := &validation.SchemaMismatchError{Path: "/a", Member: "z", Line: 2, Column: 3}

	errs := []error{other, late, early, sameLine}
	validation.SortErrors(errs)

	require.Equal(t, []error{sameLine, early, late, other}, errs)
}
