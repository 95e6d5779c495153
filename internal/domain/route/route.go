// Package route contains the application's route table and the navigation
// guard that gates access to routes based on the tab's session state.
package route

import (
	"net/url"
	"regexp"
	"strings"
)

// Access is the authentication requirement of a route.
type Access int

const (
	// Public routes are reachable regardless of session state.
	Public Access = iota
	// RequiresAuth routes are only reachable with an authenticated session.
	RequiresAuth
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case RequiresAuth:
		return "requires_auth"
	default:
		return "unknown"
	}
}

// QueryInputs maps query parameters to view inputs.
type QueryInputs func(q url.Values) map[string]string

// Descriptor is one entry of the route table.
type Descriptor struct {
	// Name uniquely identifies the route.
	Name string
	// Pattern is a path pattern with optional named segments, e.g. "/your-games/{userId}".
	Pattern string
	// View identifies the template rendered for the route.
	View string
	// Access is the authentication requirement.
	Access Access
	// PathInputs passes named path segments through to the view.
	PathInputs bool
	// Query maps query parameters to view inputs; nil means none.
	Query QueryInputs
}

var segmentPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)(?:\.\.\.)?\}`)

// Params returns the named path segments in pattern order.
func (d Descriptor) Params() []string {
	matches := segmentPattern.FindAllStringSubmatch(d.Pattern, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Inputs resolves the view inputs for a request to this route.
// pathValue looks up a named path segment (e.g. (*http.Request).PathValue).
func (d Descriptor) Inputs(pathValue func(string) string, q url.Values) map[string]string {
	in := map[string]string{}
	if d.PathInputs && pathValue != nil {
		for _, name := range d.Params() {
			in[name] = pathValue(name)
		}
	}
	if d.Query != nil {
		for k, v := range d.Query(q) {
			in[k] = v
		}
	}
	return in
}

// MuxPattern returns the pattern registered on a net/http ServeMux.
// The root path is anchored so it does not act as a catch-all.
func (d Descriptor) MuxPattern() string {
	if d.Pattern == "/" {
		return "/{$}"
	}
	return d.Pattern
}

// IsZero reports whether d is the zero Descriptor.
func (d Descriptor) IsZero() bool {
	return d.Name == "" && d.Pattern == ""
}

// SelectQuery returns a QueryInputs that copies the named parameters, trimmed.
// Missing parameters are omitted.
func SelectQuery(names ...string) QueryInputs {
	return func(q url.Values) map[string]string {
		out := make(map[string]string, len(names))
		for _, n := range names {
			if v := strings.TrimSpace(q.Get(n)); v != "" {
				out[n] = v
			}
		}
		return out
	}
}
