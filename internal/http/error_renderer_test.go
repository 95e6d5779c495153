package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

// mockRenderer captures the data passed to it for testing.
type mockRenderer struct {
	called bool
	data   map[string]any
}

func (m *mockRenderer) render(_ http.ResponseWriter, _ *http.Request, data map[string]any) {
	m.called = true
	m.data = data
}

func renderErrorForTest(t *testing.T, opts ErrorOpts) (*httptest.ResponseRecorder, *mockRenderer) {
	t.Helper()
	m := &mockRenderer{}
	w := httptest.NewRecorder()
	opts.W = w
	opts.R = httptest.NewRequest(http.MethodPost, "/add-game/7", nil)
	opts.Renderer = m.render
	opts.PageMeta = pageMeta(PageAddGame, "Add a Game")
	RenderError(opts)
	require.True(t, m.called)
	return w, m
}

func TestRenderError_FieldErrorsOnly(t *testing.T) {
	w, m := renderErrorForTest(t, ErrorOpts{
		FieldErrors: map[string]string{"title": "Title is required."},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, errMsgFixBelow, m.data["ErrorMessage"])
	assert.Equal(t, map[string]string{"title": "Title is required."}, m.data["Errors"])
}

func TestRenderError_ValidationFieldMovesToField(t *testing.T) {
	w, m := renderErrorForTest(t, ErrorOpts{
		Err: apperrors.ValidationField("title", "You already own this game."),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, errMsgFixBelow, m.data["ErrorMessage"])
	assert.Equal(t, map[string]string{"title": "You already own this game."}, m.data["Errors"])
}

func TestRenderError_StatusAndMessageByCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.Validation("bad date"), http.StatusOK, "bad date"},
		{"not found", apperrors.NotFound("game not found"), http.StatusNotFound, "game not found"},
		{"conflict", apperrors.Conflict("event is full"), http.StatusConflict, "event is full"},
		{"unauthorized", apperrors.Unauthorized(""), http.StatusUnauthorized, errMsgForbidden},
		{"unavailable", apperrors.FromStatus(http.StatusBadGateway, ""), http.StatusBadGateway, errMsgBackend},
		{"timeout", apperrors.FromContext(context.DeadlineExceeded, "load"), http.StatusGatewayTimeout, errMsgTimeout},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, errMsgTryAgain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, m := renderErrorForTest(t, ErrorOpts{Err: tt.err})
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, m.data["ErrorMessage"])
			assert.Equal(t, true, m.data["Error"])
		})
	}
}

func TestRenderError_StatusOverride(t *testing.T) {
	w, _ := renderErrorForTest(t, ErrorOpts{
		Err:        apperrors.Unauthorized("Invalid account ID or password."),
		StatusCode: http.StatusTeapot,
	})
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRenderError_EchoesFormAndData(t *testing.T) {
	_, m := renderErrorForTest(t, ErrorOpts{
		Err:  apperrors.Validation("nope"),
		Form: url.Values{"title": {"Catan"}, "password": {"x"}},
		Data: map[string]any{"Titles": []string{"Catan"}},
	})

	assert.Equal(t, map[string]string{"title": "Catan"}, m.data["Form"])
	assert.Equal(t, []string{"Catan"}, m.data["Titles"])
}

func TestRenderError_NilRenderer(t *testing.T) {
	w := httptest.NewRecorder()
	RenderError(ErrorOpts{W: w, R: httptest.NewRequest(http.MethodGet, "/", nil)})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDetermineErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, DetermineErrorStatus(nil))
	assert.Equal(t, http.StatusOK, DetermineErrorStatus(apperrors.Validation("x")))
	assert.Equal(t, http.StatusConflict, DetermineErrorStatus(apperrors.Conflict("x")))
}
