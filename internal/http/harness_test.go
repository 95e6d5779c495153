package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/net/html"

	"github.com/boardgamehub/boardgame-ui/internal/adapters/memory"
	"github.com/boardgamehub/boardgame-ui/internal/domain/session"
	"github.com/boardgamehub/boardgame-ui/internal/mocks"
	"github.com/boardgamehub/boardgame-ui/internal/service"
)

// routerHarness wires NewRouter to gomock backends and in-memory session storage.
type routerHarness struct {
	users   *mocks.MockUserAccountAPI
	games   *mocks.MockGameAPI
	copies  *mocks.MockGameCopyAPI
	events  *mocks.MockEventAPI
	regs    *mocks.MockEventRegistrationAPI
	reviews *mocks.MockReviewAPI
	borrows *mocks.MockBorrowRequestAPI

	storage *memory.SessionStorage
	handler http.Handler
}

func newRouterHarness(t *testing.T) *routerHarness {
	t.Helper()
	skipIfNoTemplates(t)

	ctrl := gomock.NewController(t)
	h := &routerHarness{
		users:   mocks.NewMockUserAccountAPI(ctrl),
		games:   mocks.NewMockGameAPI(ctrl),
		copies:  mocks.NewMockGameCopyAPI(ctrl),
		events:  mocks.NewMockEventAPI(ctrl),
		regs:    mocks.NewMockEventRegistrationAPI(ctrl),
		reviews: mocks.NewMockReviewAPI(ctrl),
		borrows: mocks.NewMockBorrowRequestAPI(ctrl),
		storage: memory.NewSessionStorage(memory.SessionStorageOptions{IdleTTL: time.Hour}),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler, err := NewRouter(RouterServices{
		Storage:  h.storage,
		Accounts: service.NewAccountService(service.AccountServiceOptions{Users: h.users}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			APIs: service.DashboardAPIs{
				Users:          h.users,
				Registrations:  h.regs,
				Events:         h.events,
				BorrowRequests: h.borrows,
				GameCopies:     h.copies,
			},
			Logger:  logger,
			Shuffle: func(int, func(i, j int)) {},
		}),
		Games: service.NewGameCopyService(service.GameCopyServiceOptions{Copies: h.copies, Logger: logger}),
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{
			Games:   h.games,
			Reviews: h.reviews,
			Logger:  logger,
		}),
		Events: service.NewEventBoardService(service.EventBoardServiceOptions{
			Events:        h.events,
			Registrations: h.regs,
			Now:           func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
		}),
		Lending:    service.NewLendingService(h.borrows),
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     logger,
	})
	require.NoError(t, err)
	h.handler = handler
	return h
}

// browser returns a fresh client with its own tab and CSRF cookies.
func (h *routerHarness) browser(t *testing.T) *testBrowser {
	t.Helper()
	return &testBrowser{t: t, h: h, cookies: map[string]*http.Cookie{}}
}

// testBrowser replays cookies between requests like a single browser tab.
type testBrowser struct {
	t       *testing.T
	h       *routerHarness
	cookies map[string]*http.Cookie
}

func (b *testBrowser) do(r *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.h.handler.ServeHTTP(w, r)
	for _, c := range w.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return w
}

func (b *testBrowser) get(path string, headers ...string) *httptest.ResponseRecorder {
	b.t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	return b.do(r)
}

// post submits a form with the tab's CSRF token, loading the landing page
// first when no token has been issued yet.
func (b *testBrowser) post(path string, form url.Values, headers ...string) *httptest.ResponseRecorder {
	b.t.Helper()
	if _, ok := b.cookies[DefaultCSRFCookieName]; !ok {
		b.get("/secure")
	}
	if form == nil {
		form = url.Values{}
	}
	form.Set(csrfFormField, b.cookies[DefaultCSRFCookieName].Value)
	r := newFormRequest(http.MethodPost, path, form)
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	return b.do(r)
}

// signIn binds id to the browser's tab scope directly in storage.
func (b *testBrowser) signIn(id int64) {
	b.t.Helper()
	if _, ok := b.cookies[TabCookieName]; !ok {
		b.get("/secure")
	}
	scope := b.cookies[TabCookieName].Value
	require.NoError(b.t, b.h.storage.Set(context.Background(), scope, session.IdentifierKey, strconv.FormatInt(id, 10)))
}

// identifier returns the session identifier stored for the browser's tab.
func (b *testBrowser) identifier() (string, bool) {
	b.t.Helper()
	c, ok := b.cookies[TabCookieName]
	if !ok {
		return "", false
	}
	v, err := b.h.storage.Get(context.Background(), c.Value, session.IdentifierKey)
	if err != nil {
		return "", false
	}
	return v, true
}

type httpNode = html.Node

const textNodeType = html.TextNode

func newFormRequest(method, path string, form url.Values) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// parseHTML parses a response body, failing the test on malformed markup.
func parseHTML(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

// findAll returns every element node matching pred in document order.
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// formActions lists the action attribute of every form in the document.
func formActions(doc *html.Node) []string {
	var actions []string
	for _, f := range findAll(doc, func(n *html.Node) bool { return n.Data == "form" }) {
		actions = append(actions, attr(f, "action"))
	}
	return actions
}

// hiddenValue returns the value of the first hidden input called name inside n.
func hiddenValue(n *html.Node, name string) string {
	inputs := findAll(n, func(n *html.Node) bool {
		return n.Data == "input" && attr(n, "type") == "hidden" && attr(n, "name") == name
	})
	if len(inputs) == 0 {
		return ""
	}
	return attr(inputs[0], "value")
}
