package site

import (
	"net/url"
	"strings"

	"archstyles/internal/styles"
)

// Links decides the URLs a rendered page points at. The server and the
// static export lay the same pages out differently.
type Links interface {
	Index() string
	Style(slug string, feature styles.FeatureID) string
	// Fragment is the htmx endpoint for the explorer, or "" when the
	// deployment has none.
	Fragment(slug string, feature styles.FeatureID) string
	Static(name string) string
}

// ServerLinks carries the selection in the query string.
type ServerLinks struct{}

func (ServerLinks) Index() string {
	return "/"
}

func (ServerLinks) Style(slug string, feature styles.FeatureID) string {
	return withFeature("/styles/"+slug, feature)
}

func (ServerLinks) Fragment(slug string, feature styles.FeatureID) string {
	return withFeature("/styles/"+slug+"/explorer", feature)
}

func (ServerLinks) Static(name string) string {
	return "/static/" + name
}

func withFeature(path string, feature styles.FeatureID) string {
	if feature == "" {
		return path
	}
	return path + "?" + url.Values{"feature": {string(feature)}}.Encode()
}

// StaticLinks points at directory indexes written by the exporter:
// /styles/{slug}/ and /styles/{slug}/{feature}/.
type StaticLinks struct {
	// Base is prepended to every path, e.g. "/docs" for a project page.
	Base string
}

func (l StaticLinks) Index() string {
	return l.base() + "/"
}

func (l StaticLinks) Style(slug string, feature styles.FeatureID) string {
	p := l.base() + "/styles/" + url.PathEscape(slug) + "/"
	if feature != "" {
		p += url.PathEscape(string(feature)) + "/"
	}
	return p
}

func (StaticLinks) Fragment(string, styles.FeatureID) string {
	return ""
}

func (l StaticLinks) Static(name string) string {
	return l.base() + "/static/" + name
}

func (l StaticLinks) base() string {
	return strings.TrimRight(l.Base, "/")
}
