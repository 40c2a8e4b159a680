// Package values converts between the string-typed members of presence models and the typed
// members of convenience views.
//
// Presence maps onto nil-ness: an absent member becomes a nil pointer and a nil pointer becomes an
// absent member. An absent member therefore carries no value through a view: mapping it back yields
// the zero member, which is also the form Deserialize and Node.Clear produce. Numbers are kept in their source spelling until an accessor asks for them, so
// untouched values are written back byte for byte. Booleans are canonicalised to "true"/"false".
package values

import (
	"strconv"
	"strings"

	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/pointer"
	"github.com/speakeasy-api/gamexml/validation"
	"golang.org/x/text/cases"
)

var (
	trueSpellings  = []string{"true", "1", "yes", "on"}
	falseSpellings = []string{"false", "0", "no", "off"}
)

// String returns the value of a present member, or nil when it is absent. The value held by an
// absent member is not carried over.
func String(n marshaller.Node[string]) *string {
	if !n.Present {
		return nil
	}
	return pointer.From(n.Value)
}

// StringNode returns a present member holding *p, or an absent member when p is nil.
func StringNode(p *string) marshaller.Node[string] {
	if p == nil {
		return marshaller.Node[string]{}
	}
	return marshaller.NewNode(*p)
}

// ParseBool interprets the boolean spellings found in game data files, ignoring case.
func ParseBool(s string) (value bool, ok bool) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	for _, t := range trueSpellings {
		if folded == t {
			return true, true
		}
	}
	for _, f := range falseSpellings {
		if folded == f {
			return false, true
		}
	}
	return false, false
}

// FormatBool returns the canonical spelling of b.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// Bool converts a boolean member. An absent member is nil; an unrecognised spelling is a *validation.FormatError.
func Bool(field string, n marshaller.Node[string]) (*bool, error) {
	if !n.Present {
		return nil, nil
	}
	b, ok := ParseBool(n.Value)
	if !ok {
		return nil, validation.NewFormatError(field, n.Value, "boolean")
	}
	return pointer.From(b), nil
}

// BoolNode returns a present member with the canonical spelling of *p, or an absent member when p is nil.
func BoolNode(p *bool) marshaller.Node[string] {
	if p == nil {
		return marshaller.Node[string]{}
	}
	return marshaller.NewNode(FormatBool(*p))
}

// Int parses an integer value. Absent values are 0; malformed values are a *validation.FormatError.
func Int(field string, p *string) (int, error) {
	if p == nil {
		return 0, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(*p))
	if err != nil {
		return 0, validation.NewFormatError(field, *p, "integer")
	}
	return v, nil
}

// IntOrZero parses an integer value, returning 0 when it is absent or malformed.
func IntOrZero(p *string) int {
	v, err := Int("", p)
	if err != nil {
		return 0
	}
	return v
}

// Float parses a floating point value. Absent values are 0; malformed values are a *validation.FormatError.
func Float(field string, p *string) (float64, error) {
	if p == nil {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*p), 64)
	if err != nil {
		return 0, validation.NewFormatError(field, *p, "number")
	}
	return v, nil
}

// FormatInt returns the canonical spelling of v.
func FormatInt(v int) *string {
	return pointer.From(strconv.Itoa(v))
}

// FormatFloat returns the shortest fixed-point spelling of v, e.g. 0.5 or 12.
func FormatFloat(v float64) *string {
	return pointer.From(strconv.FormatFloat(v, 'f', -1, 64))
}
