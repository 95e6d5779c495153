package httpx

import (
	"os"
	"testing"

	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
)

// skipIfNoTemplates skips tests that render pages when the template tree is absent.
func skipIfNoTemplates(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping integration test")
	}
}

// newTestUIHandlers builds UIHandlers over the source templates with no backends.
func newTestUIHandlers(t *testing.T) *UIHandlers {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
	}
	return &UIHandlers{T: tr, Routes: route.DefaultTable()}
}
