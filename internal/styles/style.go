// Package styles is the catalog of architectural styles shown on the site.
//
// A Style's diagram is a list of layers in paint order. A layer is either
// static drawing or a Feature: the clickable region, its annotations and the
// paragraph that explains it, authored as one record. The description mapping
// of a page is derived from those layers, so a region without a description,
// or a description without a region, cannot be written down.
package styles

import (
	"errors"
	"fmt"
	"strings"

	"archstyles/internal/diagram"
	"archstyles/pkg/selection"
)

var (
	ErrUnknownStyle   = errors.New("unknown style")
	ErrUnknownFeature = errors.New("unknown feature")
)

// FeatureID names one annotated region of a style's diagram.
type FeatureID string

// Feature is a clickable part of an elevation and what it teaches.
type Feature struct {
	ID FeatureID
	// Title overrides the heading derived from ID.
	Title       string
	Description string
	// Hit lists the invisible rectangles that receive clicks.
	Hit    []diagram.Rect
	Shapes []diagram.Shape
	Labels []diagram.Label
}

// Heading is the panel title: Title, or the id title-cased word by word.
func (f *Feature) Heading() string {
	if f.Title != "" {
		return f.Title
	}
	words := strings.Split(string(f.ID), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Layer is one step of the paint order.
type Layer struct {
	Shapes  []diagram.Shape
	Feature *Feature
}

// Static wraps non-interactive shapes in a layer.
func Static(shapes ...diagram.Shape) Layer {
	return Layer{Shapes: shapes}
}

// Region wraps a feature in a layer.
func Region(f *Feature) Layer {
	return Layer{Feature: f}
}

// Diagram is the elevation drawing of a style.
type Diagram struct {
	Patterns []diagram.Pattern
	Layers   []Layer
}

// Style is the static content of one style page.
type Style struct {
	Slug    string
	Name    string
	Era     string
	Summary string
	Icon    string
	Prose   []string
	Diagram Diagram
}

// Title is the page heading.
func (s *Style) Title() string {
	return s.Name + " Style"
}

// Path is the page's URL path.
func (s *Style) Path() string {
	return "/styles/" + s.Slug
}

// Features returns the features in paint order.
func (s *Style) Features() []*Feature {
	var out []*Feature
	for _, l := range s.Diagram.Layers {
		if l.Feature != nil {
			out = append(out, l.Feature)
		}
	}
	return out
}

// Feature looks up a feature by id.
func (s *Style) Feature(id FeatureID) (*Feature, error) {
	for _, f := range s.Features() {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrUnknownFeature, s.Slug, id)
}

// Panel builds the page's selection panel with nothing selected.
func (s *Style) Panel() (selection.Panel[FeatureID, *Feature], error) {
	features := s.Features()
	entries := make([]selection.Entry[FeatureID, *Feature], 0, len(features))
	for _, f := range features {
		entries = append(entries, selection.Entry[FeatureID, *Feature]{Key: f.ID, Value: f})
	}
	p, err := selection.New(entries...)
	if err != nil {
		return p, fmt.Errorf("style %s: %w", s.Slug, err)
	}
	return p, nil
}

// Validate checks the authoring rules a page relies on.
func (s *Style) Validate() error {
	var errs []error
	if s.Slug == "" || s.Name == "" || s.Era == "" || s.Summary == "" {
		errs = append(errs, fmt.Errorf("style %q: slug, name, era and summary are required", s.Slug))
	}
	features := s.Features()
	if len(features) == 0 {
		errs = append(errs, fmt.Errorf("style %s: no features", s.Slug))
	}
	for _, f := range features {
		if f.ID == "" {
			errs = append(errs, fmt.Errorf("style %s: feature with empty id", s.Slug))
		}
		if strings.TrimSpace(f.Description) == "" {
			errs = append(errs, fmt.Errorf("style %s: feature %s has no description", s.Slug, f.ID))
		}
		if len(f.Hit) == 0 {
			errs = append(errs, fmt.Errorf("style %s: feature %s has no hit area", s.Slug, f.ID))
		}
	}
	if _, err := s.Panel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
