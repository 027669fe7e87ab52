package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archstyles/internal/styles"
	"archstyles/internal/viewmodel"
)

func regionByID(t *testing.T, e viewmodel.Explorer, id string) *viewmodel.Region {
	t.Helper()
	for _, l := range e.Diagram.Layers {
		if l.Region != nil && l.Region.ID == id {
			return l.Region
		}
	}
	t.Fatalf("region %q not found", id)
	return nil
}

func TestServerLinks(t *testing.T) {
	var l ServerLinks
	assert.Equal(t, "/", l.Index())
	assert.Equal(t, "/styles/ranch", l.Style("ranch", ""))
	assert.Equal(t, "/styles/ranch?feature=attached-garage", l.Style("ranch", "attached-garage"))
	assert.Equal(t, "/styles/ranch/explorer", l.Fragment("ranch", ""))
	assert.Equal(t, "/styles/ranch/explorer?feature=tile-roof", l.Fragment("ranch", "tile-roof"))
	assert.Equal(t, "/static/site.css", l.Static("site.css"))
}

func TestStaticLinks(t *testing.T) {
	l := StaticLinks{Base: "/docs/"}
	assert.Equal(t, "/docs/", l.Index())
	assert.Equal(t, "/docs/styles/ranch/", l.Style("ranch", ""))
	assert.Equal(t, "/docs/styles/ranch/attached-garage/", l.Style("ranch", "attached-garage"))
	assert.Empty(t, l.Fragment("ranch", "attached-garage"))
	assert.Equal(t, "/docs/static/site.css", l.Static("site.css"))

	assert.Equal(t, "/", StaticLinks{}.Index())
}

func TestIndexPage(t *testing.T) {
	page := IndexPage(styles.Default(), ServerLinks{})
	require.Len(t, page.Cards, 7)
	assert.Equal(t, Title, page.Title)

	seen := map[string]bool{}
	for _, c := range page.Cards {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Href)
		assert.False(t, seen[c.Href], "duplicate href %s", c.Href)
		seen[c.Href] = true
	}
	assert.Equal(t, "Queen Anne", page.Cards[0].Name)
	assert.Equal(t, "/styles/queen-anne", page.Cards[0].Href)
	assert.Equal(t, "Ranch", page.Cards[6].Name)
}

func TestSelection(t *testing.T) {
	p, err := Selection(styles.Ranch, "")
	require.NoError(t, err)
	_, _, ok := p.Selected()
	assert.False(t, ok)

	p, err = Selection(styles.Ranch, "attached-garage")
	require.NoError(t, err)
	assert.True(t, p.IsSelected("attached-garage"))

	_, err = Selection(styles.Ranch, "turret")
	assert.True(t, errors.Is(err, styles.ErrUnknownFeature))
}

func TestStylePageEmptySelection(t *testing.T) {
	p, err := Selection(styles.Ranch, "")
	require.NoError(t, err)

	page := StylePage(styles.Ranch, p, ServerLinks{})
	assert.Equal(t, "Ranch Style", page.Title)
	assert.Equal(t, "1940s-1970s", page.Era)
	assert.Equal(t, "/", page.HomeHref)
	assert.False(t, page.Explorer.Panel.Visible)

	garage := regionByID(t, page.Explorer, "attached-garage")
	assert.False(t, garage.Selected)
	assert.Equal(t, "/styles/ranch?feature=attached-garage", garage.Href)
	assert.Equal(t, "/styles/ranch/explorer?feature=attached-garage", garage.HxGet)
	assert.NotEmpty(t, garage.Hit)
}

func TestStylePageToggleTargets(t *testing.T) {
	p, err := Selection(styles.Ranch, "attached-garage")
	require.NoError(t, err)

	e := Explorer(styles.Ranch, p, ServerLinks{})
	require.True(t, e.Panel.Visible)
	assert.Equal(t, "Attached Garage", e.Panel.Heading)
	assert.Contains(t, e.Panel.Description, "The attached garage became a standard feature of Ranch homes")
	assert.Equal(t, "/styles/ranch", e.Panel.CloseHref)

	// The selected region links back to the empty state.
	garage := regionByID(t, e, "attached-garage")
	assert.True(t, garage.Selected)
	assert.Equal(t, "/styles/ranch", garage.Href)

	// Any other region replaces the selection.
	windows := regionByID(t, e, "large-windows")
	assert.False(t, windows.Selected)
	assert.Equal(t, "/styles/ranch?feature=large-windows", windows.Href)
}

func TestExplorerStaticLinks(t *testing.T) {
	p, err := Selection(styles.Craftsman, "exposed-rafters")
	require.NoError(t, err)

	e := Explorer(styles.Craftsman, p, StaticLinks{})
	r := regionByID(t, e, "exposed-rafters")
	assert.Equal(t, "/styles/craftsman/", r.Href)
	assert.Empty(t, r.HxGet)
	assert.NotEmpty(t, e.Diagram.Patterns)
}

func TestExplorerOneRegionPerFeature(t *testing.T) {
	for _, s := range styles.Default().All() {
		p, err := Selection(s, "")
		require.NoError(t, err)
		e := Explorer(s, p, ServerLinks{})

		var ids []string
		for _, l := range e.Diagram.Layers {
			if l.Region != nil {
				ids = append(ids, l.Region.ID)
			}
		}
		assert.Len(t, ids, len(s.Features()), s.Slug)
	}
}

func TestLayout(t *testing.T) {
	l := Layout("Ranch Style", ServerLinks{})
	assert.Equal(t, "/static/site.css", l.Stylesheet)
	assert.True(t, l.HTMX)

	l = Layout("Ranch Style", StaticLinks{Base: "/site"})
	assert.Equal(t, "/site/static/site.css", l.Stylesheet)
	assert.False(t, l.HTMX)
}
