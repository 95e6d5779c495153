package route

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrInvalidTable is returned when a route table fails its consistency check.
var ErrInvalidTable = errors.New("invalid route table")

// Table is an immutable, ordered set of route descriptors with a designated
// public landing route that authentication failures redirect to.
type Table struct {
	routes    []Descriptor
	byName    map[string]int
	byPattern map[string]int
	landing   string
	matcher   *http.ServeMux
}

// NewTable validates and builds a route table.
// It fails when names or patterns are empty or duplicated, or when the landing
// route is missing or requires authentication.
func NewTable(landing string, routes ...Descriptor) (*Table, error) {
	t := &Table{
		routes:    make([]Descriptor, 0, len(routes)),
		byName:    make(map[string]int, len(routes)),
		byPattern: make(map[string]int, len(routes)),
		landing:   landing,
		matcher:   http.NewServeMux(),
	}

	for _, d := range routes {
		if err := t.add(d); err != nil {
			return nil, err
		}
	}

	idx, ok := t.byName[landing]
	if !ok {
		return nil, fmt.Errorf("%w: landing route %q is not defined", ErrInvalidTable, landing)
	}
	if t.routes[idx].Access != Public {
		return nil, fmt.Errorf("%w: landing route %q must be public", ErrInvalidTable, landing)
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on an invalid table.
func MustNewTable(landing string, routes ...Descriptor) *Table {
	t, err := NewTable(landing, routes...)
	if err != nil {
		panic(err) //nolint:forbidigo // Static route tables are checked at startup.
	}
	return t
}

func (t *Table) add(d Descriptor) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: route with pattern %q has no name", ErrInvalidTable, d.Pattern)
	}
	if _, dup := t.byName[d.Name]; dup {
		return fmt.Errorf("%w: duplicate route name %q", ErrInvalidTable, d.Name)
	}
	if !strings.HasPrefix(d.Pattern, "/") {
		return fmt.Errorf("%w: route %q pattern %q must start with /", ErrInvalidTable, d.Name, d.Pattern)
	}
	if _, dup := t.byPattern[d.MuxPattern()]; dup {
		return fmt.Errorf("%w: duplicate route pattern %q", ErrInvalidTable, d.Pattern)
	}
	if d.Access != Public && d.Access != RequiresAuth {
		return fmt.Errorf("%w: route %q has unknown access %d", ErrInvalidTable, d.Name, int(d.Access))
	}

	if err := t.register(d); err != nil {
		return fmt.Errorf("%w: route %q: %w", ErrInvalidTable, d.Name, err)
	}

	t.byName[d.Name] = len(t.routes)
	t.byPattern[d.MuxPattern()] = len(t.routes)
	t.routes = append(t.routes, d)
	return nil
}

// register adds the pattern to the internal matcher; ServeMux panics on
// malformed or conflicting patterns, which is surfaced as an error.
func (t *Table) register(d Descriptor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	t.matcher.Handle("GET "+d.MuxPattern(), http.NotFoundHandler())
	return nil
}

// Routes returns a copy of the descriptors in declaration order.
func (t *Table) Routes() []Descriptor {
	out := make([]Descriptor, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup returns the descriptor with the given name.
func (t *Table) Lookup(name string) (Descriptor, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return t.routes[idx], true
}

// Landing returns the public route that authentication failures redirect to.
func (t *Table) Landing() Descriptor {
	d, _ := t.Lookup(t.landing)
	return d
}

// Match returns the descriptor whose pattern matches path, using the same
// most-specific-pattern rules as net/http.ServeMux.
func (t *Table) Match(path string) (Descriptor, bool) {
	if path == "" {
		return Descriptor{}, false
	}
	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Path: path}, Host: "localhost"}
	_, pattern := t.matcher.Handler(req)
	pattern = strings.TrimPrefix(pattern, "GET ")
	idx, ok := t.byPattern[pattern]
	if !ok {
		return Descriptor{}, false
	}
	return t.routes[idx], true
}

// URL builds the path for a named route, substituting path segments from params.
// Values are path-escaped. A missing parameter is an error.
func (t *Table) URL(name string, params map[string]string) (string, error) {
	d, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}

	var missing []string
	path := segmentPattern.ReplaceAllStringFunc(d.Pattern, func(seg string) string {
		key := segmentPattern.FindStringSubmatch(seg)[1]
		v, present := params[key]
		if !present || v == "" {
			missing = append(missing, key)
			return seg
		}
		return url.PathEscape(v)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("route %q: missing params %s", name, strings.Join(missing, ", "))
	}
	return path, nil
}

// URLOrLanding is like URL but falls back to the landing path when the route cannot be built.
func (t *Table) URLOrLanding(name string, params map[string]string) string {
	u, err := t.URL(name, params)
	if err != nil {
		return t.Landing().Pattern
	}
	return u
}
