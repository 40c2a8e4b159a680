package validation

import (
	"errors"
	"slices"
)

// SortErrors sorts the provided errors by line and column number lowest to highest.
// Schema mismatches are ordered first; any other error keeps its original relative order after them.
func SortErrors(allErrors []error) {
	if len(allErrors) == 0 {
		return
	}

	var mismatchErrs []*SchemaMismatchError
	var otherErrs []error
	for _, err := range allErrors {
		var mErr *SchemaMismatchError
		if errors.As(err, &mErr) {
			mismatchErrs = append(mismatchErrs, mErr)
		} else {
			otherErrs = append(otherErrs, err)
		}
	}

	slices.SortStableFunc(mismatchErrs, compareMismatchErrors)

	idx := 0
	for _, mErr := range mismatchErrs {
		allErrors[idx] = mErr
		idx++
	}
	for _, err := range otherErrs {
		allErrors[idx] = err
		idx++
	}
}

func compareMismatchErrors(a, b *SchemaMismatchError) int {
	if a.GetLineNumber() != b.GetLineNumber() {
		return a.GetLineNumber() - b.GetLineNumber()
	}
	if a.GetColumnNumber() != b.GetColumnNumber() {
		return a.GetColumnNumber() - b.GetColumnNumber()
	}
	if a.Path != b.Path {
		if a.Path < b.Path {
			return -1
		}
		return 1
	}
	if a.Member < b.Member {
		return -1
	}
	if a.Member > b.Member {
		return 1
	}
	return 0
}
