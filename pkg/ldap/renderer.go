package ldap

import (
	"fmt"
	"strings"
)

// Renderer renders the LDAP client configuration files from the settings
// snapshots in a Store. Every render fetches fresh snapshots; a Renderer
// holds no state of its own.
type Renderer struct {
	store Store
}

// NewRenderer can be used to instantiate a new Renderer on top of a Store.
func NewRenderer(store Store) (r *Renderer) {
	return &Renderer{
		store: store,
	}
}

// uris builds one URI per hostname, in input order, space joined.
func uris(mode SSLMode, hostnames []string) string {
	var parts []string
	for _, hostname := range hostnames {
		parts = append(parts, fmt.Sprintf("%s://%s", mode.URIScheme(), hostname))
	}
	return strings.Join(parts, " ")
}

// stripScheme removes a leading ldap:// or ldaps:// from an idmap url, so
// the scheme can be re-derived from the configured ssl mode.
func stripScheme(url string) string {
	url = strings.TrimPrefix(url, "ldaps://")
	url = strings.TrimPrefix(url, "ldap://")
	return url
}
