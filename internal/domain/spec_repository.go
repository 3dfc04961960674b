package domain

import (
	"bytes"
	"fmt"

	"github.com/mouse-blink/marks/internal/adapter"
	m "github.com/mouse-blink/marks/internal/model"
)

// specRepository joins the spec store with the codec.
type specRepository struct {
	store adapter.SpecStore
}

func newSpecRepository(store adapter.SpecStore) *specRepository {
	return &specRepository{store: store}
}

// LoadRaw returns the spec file location and its unparsed text.
func (r *specRepository) LoadRaw(source m.Path) (m.Path, []byte, error) {
	specPath, err := r.store.Locate(source)
	if err != nil {
		return "", nil, err
	}

	data, err := r.store.Read(specPath)
	if err != nil {
		return "", nil, fmt.Errorf("read spec for %s: %w", source, err)
	}

	return specPath, data, nil
}

// Load parses the spec of source, creating an empty one on first use.
func (r *specRepository) Load(source m.Path) (m.MarkSpec, error) {
	_, data, err := r.LoadRaw(source)
	if err != nil {
		return m.MarkSpec{}, err
	}

	spec, err := ParseSpec(bytes.NewReader(data))
	if err != nil {
		return m.MarkSpec{}, fmt.Errorf("parse spec for %s: %w", source, err)
	}

	return spec, nil
}

// Save optimizes spec and writes it as the spec of source.
func (r *specRepository) Save(source m.Path, spec m.MarkSpec) error {
	specPath, err := r.store.Locate(source)
	if err != nil {
		return err
	}

	spec.Optimize()

	if err := r.store.Write(specPath, []byte(FormatSpec(spec))); err != nil {
		return fmt.Errorf("write spec for %s: %w", source, err)
	}

	return nil
}
