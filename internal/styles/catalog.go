package styles

import (
	"errors"
	"fmt"
)

// Catalog is the ordered set of styles on the landing page.
type Catalog struct {
	styles []*Style
	bySlug map[string]*Style
}

// NewCatalog indexes styles by slug and validates them.
func NewCatalog(styles ...*Style) (*Catalog, error) {
	c := &Catalog{
		styles: styles,
		bySlug: make(map[string]*Style, len(styles)),
	}
	var errs []error
	for _, s := range styles {
		if _, dup := c.bySlug[s.Slug]; dup {
			errs = append(errs, fmt.Errorf("duplicate style slug %q", s.Slug))
			continue
		}
		c.bySlug[s.Slug] = s
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

var defaultCatalog = mustCatalog(
	QueenAnne,
	Craftsman,
	TudorRevival,
	ClassicalRevival,
	MediterraneanRevival,
	MinimalTraditional,
	Ranch,
)

func mustCatalog(styles ...*Style) *Catalog {
	c, err := NewCatalog(styles...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalog of seven styles.
func Default() *Catalog {
	return defaultCatalog
}

// All returns the styles in landing-page order.
func (c *Catalog) All() []*Style {
	out := make([]*Style, len(c.styles))
	copy(out, c.styles)
	return out
}

// Len returns the number of styles.
func (c *Catalog) Len() int {
	return len(c.styles)
}

// BySlug returns the style served under /styles/{slug}.
func (c *Catalog) BySlug(slug string) (*Style, error) {
	s, ok := c.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, slug)
	}
	return s, nil
}
