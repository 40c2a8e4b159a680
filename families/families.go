// Package families registers the game data families the module knows how to map, so tools can
// pick the presence model of a document by family name or by file name.
package families

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/speakeasy-api/gamexml/bannericons"
	bannericonsCore "github.com/speakeasy-api/gamexml/bannericons/core"
	"github.com/speakeasy-api/gamexml/combatparams"
	combatparamsCore "github.com/speakeasy-api/gamexml/combatparams/core"
	"github.com/speakeasy-api/gamexml/errors"
	"github.com/speakeasy-api/gamexml/itemmodifiers"
	itemmodifiersCore "github.com/speakeasy-api/gamexml/itemmodifiers/core"
	"github.com/speakeasy-api/gamexml/looknfeel"
	looknfeelCore "github.com/speakeasy-api/gamexml/looknfeel/core"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/sequencedmap"
)

const (
	// ErrUnknownFamily is returned when no family matches a name or file.
	ErrUnknownFamily = errors.Error("unknown family")
)

// Family describes how to decode one kind of game data file.
type Family struct {
	// Name is the identifier used on the command line, e.g. looknfeel.
	Name string
	// FileName is the name the game gives the file, e.g. looknfeel.xml.
	FileName string
	// RootName is the name of the root element.
	RootName string

	deserialize func(ctx context.Context, data []byte) (marshaller.RootElement, error)
	throughView func(m marshaller.RootElement) (marshaller.RootElement, error)
}

// Deserialize decodes data into the presence model of the family.
func (f *Family) Deserialize(ctx context.Context, data []byte) (marshaller.RootElement, error) {
	return f.deserialize(ctx, data)
}

// ThroughView maps a presence model of the family onto its view and back again.
func (f *Family) ThroughView(m marshaller.RootElement) (marshaller.RootElement, error) {
	return f.throughView(m)
}

type rootPtr[T any] interface {
	*T
	marshaller.RootElement
}

func newFamily[T any, PT rootPtr[T], V any](name, fileName string, fromCore func(*T) (*V, error), toCore func(*V) *T) *Family {
	return &Family{
		Name:     name,
		FileName: fileName,
		RootName: PT(new(T)).XMLName(),
		deserialize: func(ctx context.Context, data []byte) (marshaller.RootElement, error) {
			m, err := marshaller.Deserialize[T, PT](ctx, data)
			if err != nil {
				return nil, err
			}
			return PT(m), nil
		},
		throughView: func(m marshaller.RootElement) (marshaller.RootElement, error) {
			c, ok := m.(PT)
			if !ok {
				return nil, ErrUnknownFamily.Wrapf("%T is not a %s model", m, name)
			}
			v, err := fromCore(c)
			if err != nil {
				return nil, err
			}
			return PT(toCore(v)), nil
		},
	}
}

func infallible[C, V any](fn func(*C) *V) func(*C) (*V, error) {
	return func(c *C) (*V, error) { return fn(c), nil }
}

var registry = sequencedmap.New(
	sequencedmap.NewElem("bannericons", newFamily[bannericonsCore.BannerIcons](
		"bannericons", bannericons.FileName, bannericons.FromCore, bannericons.ToCore)),
	sequencedmap.NewElem("combatparams", newFamily[combatparamsCore.CombatParameters](
		"combatparams", combatparams.FileName, infallible(combatparams.FromCore), combatparams.ToCore)),
	sequencedmap.NewElem("itemmodifiers", newFamily[itemmodifiersCore.ItemModifiers](
		"itemmodifiers", itemmodifiers.FileName, infallible(itemmodifiers.FromCore), itemmodifiers.ToCore)),
	sequencedmap.NewElem("looknfeel", newFamily[looknfeelCore.Looknfeel](
		"looknfeel", looknfeel.FileName, looknfeel.FromCore, looknfeel.ToCore)),
)

// All returns the registered families ordered by name.
func All() []*Family {
	return slices.Collect(registry.Values())
}

// Names returns the names of the registered families.
func Names() []string {
	return slices.Collect(registry.Keys())
}

// Lookup returns the family registered under name.
func Lookup(name string) (*Family, error) {
	f, ok := registry.Get(name)
	if !ok {
		return nil, ErrUnknownFamily.Wrapf("%q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// ForFile returns the family whose game file name matches the base name of path, ignoring case.
func ForFile(path string) (*Family, error) {
	base := filepath.Base(path)
	for f := range registry.Values() {
		if strings.EqualFold(f.FileName, base) {
			return f, nil
		}
	}
	return nil, ErrUnknownFamily.Wrapf("no family for file %s", base)
}
