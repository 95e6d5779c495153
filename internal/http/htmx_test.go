package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Hx-Request", "true")
	assert.True(t, IsHTMX(r))
	assert.True(t, WantsPartial(r))

	r.Header.Set("Hx-History-Restore-Request", "true")
	assert.True(t, IsHistoryRestore(r))
	assert.False(t, WantsPartial(r), "history restore renders the full page")

	r2 := httptest.NewRequest(http.MethodGet, "/x", nil)
	assert.False(t, IsHTMX(r2))
	assert.False(t, WantsPartial(r2))
}

func TestSetHXTrigger(t *testing.T) {
	w := httptest.NewRecorder()
	SetHXTrigger(w, "showToast", map[string]string{"message": "Saved", "type": "success"})

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get("Hx-Trigger")), &got))
	assert.Equal(t, "Saved", got["showToast"]["message"])

	w2 := httptest.NewRecorder()
	SetHXTrigger(w2, "refresh", nil)
	assert.JSONEq(t, `{"refresh":true}`, w2.Header().Get("Hx-Trigger"))
}

func TestRedirectAfterAction(t *testing.T) {
	t.Run("plain form", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		redirectAfterAction(w, r, "/")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("htmx", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.Header.Set("Hx-Request", "true")
		w := httptest.NewRecorder()
		redirectAfterAction(w, r, "/")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "/", w.Header().Get("Hx-Redirect"))
		assert.Empty(t, w.Header().Get("Location"))
	})
}
