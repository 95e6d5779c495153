package httpx

import (
	"context"
	"net/http"
)

// GameCatalog lists the shared catalog, optionally filtered by category.
func (h *UIHandlers) GameCatalog(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: pageMeta(PageGameCatalog, "Game Catalog"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			category := ViewInputs(ctx)["category"]
			data["Category"] = category
			cat, err := h.Catalog.Load(ctx, category)
			if err != nil {
				return err
			}
			data["Catalog"] = cat
			return nil
		},
	})
}
