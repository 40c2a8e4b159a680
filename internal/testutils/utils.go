// Package testutils holds helpers shared by the family round-trip tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/speakeasy-api/gamexml/diff"
	"github.com/stretchr/testify/require"
)

// ReadFixture reads a file from the testdata directory of the package under test.
func ReadFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err, "failed to read fixture %s", name)
	return data
}

// RequireStructurallyEqual fails the test with the diff report when actual differs structurally from expected.
func RequireStructurallyEqual(t *testing.T, expected, actual []byte, opts ...diff.Option) {
	t.Helper()

	report, err := diff.Compare(expected, actual, opts...)
	require.NoError(t, err)
	require.True(t, report.IsStructurallyEqual(), "documents differ:\n%s", report.String())
}

// RequireDiff compares the documents and returns the report, failing only when either is malformed.
func RequireDiff(t *testing.T, expected, actual []byte, opts ...diff.Option) *diff.Report {
	t.Helper()

	report, err := diff.Compare(expected, actual, opts...)
	require.NoError(t, err)
	return report
}
