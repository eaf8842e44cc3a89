package theme

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Palette is an ordered light-to-dark swatch sequence derived from one base
// colour. Index 0 is the lightest swatch. Immutable once built.
type Palette struct {
	Name     string
	Swatches []colorful.Color
}

// Registry holds the generated palettes for one run, keyed by name. It is
// built once per generation and read-only afterwards.
type Registry struct {
	palettes map[string]Palette
}

// BuildRegistry parses every configured base colour and expands it into a
// ramp. Returns an InvalidColorError naming the offending key if a base
// colour fails to parse; no partial registry is produced.
func BuildRegistry(configs map[string]PaletteConfig) (*Registry, error) {
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)

	reg := &Registry{palettes: make(map[string]Palette, len(configs))}
	for _, name := range names {
		pc := configs[name]
		base, err := colour.ParseHex(pc.Base)
		if err != nil {
			return nil, &InvalidColorError{Key: name, Value: pc.Base, Err: err}
		}
		label := pc.Name
		if label == "" {
			label = name
		}
		reg.palettes[name] = Palette{Name: label, Swatches: colour.BuildRamp(base)}
	}
	return reg, nil
}

// Get returns the palette stored under name, or a PaletteNotFoundError.
func (r *Registry) Get(name string) (Palette, error) {
	p, ok := r.palettes[name]
	if !ok {
		return Palette{}, &PaletteNotFoundError{Name: name}
	}
	return p, nil
}

// Has reports whether a palette is stored under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.palettes[name]
	return ok
}

// Names returns all palette keys in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extras returns the additional semantic palette keys, i.e. everything
// except neutral and accent, in sorted order.
func (r *Registry) Extras() []string {
	var extras []string
	for _, name := range r.Names() {
		if name == PaletteNeutral || name == PaletteAccent {
			continue
		}
		extras = append(extras, name)
	}
	return extras
}
