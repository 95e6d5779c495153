package httpx

import (
	"context"
	"net/http"

	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

func updateAccountMeta() PageMeta { return pageMeta(PageUpdateAccount, "Update Account") }

// UpdateAccountPage renders the account form prefilled with the member's profile.
func (h *UIHandlers) UpdateAccountPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: updateAccountMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			userID, ok := currentUserID(r)
			if !ok {
				return apperrors.Unauthorized(errMsgForbidden)
			}
			acct, err := h.Accounts.Profile(ctx, userID)
			if err != nil {
				return err
			}
			data["Form"] = map[string]string{
				"name":        acct.Name,
				"email":       acct.Email,
				"accountType": string(acct.AccountType),
			}
			return nil
		},
	})
}

// UpdateAccount replaces the member's account details.
func (h *UIHandlers) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		h.failAction(w, r, apperrors.Unauthorized(errMsgForbidden))
		return
	}
	req, fieldErrors, ok := h.parseAccountForm(w, r)
	if !ok {
		return
	}
	if len(fieldErrors) > 0 {
		h.renderAccountFormError(w, r, updateAccountMeta(), accountFormError{Fields: fieldErrors})
		return
	}
	if _, err := h.Accounts.Update(r.Context(), userID, req); err != nil {
		h.renderAccountFormError(w, r, updateAccountMeta(), accountFormError{Err: err})
		return
	}
	redirectAfterAction(w, r, h.urlFor(route.UserSettings, nil))
}

// UserSettingsPage shows the member's profile with account actions.
func (h *UIHandlers) UserSettingsPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: pageMeta(PageUserSettings, "Settings"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			userID, ok := currentUserID(r)
			if !ok {
				return apperrors.Unauthorized(errMsgForbidden)
			}
			acct, err := h.Accounts.Profile(ctx, userID)
			if err != nil {
				return err
			}
			data["Account"] = acct
			data["UpdateURL"] = h.urlFor(route.UpdateAccount, nil)
			return nil
		},
	})
}

// DeleteAccount removes the member's account and ends the tab's session.
func (h *UIHandlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		h.failAction(w, r, apperrors.Unauthorized(errMsgForbidden))
		return
	}
	if err := h.Accounts.Delete(r.Context(), userID); err != nil {
		h.failAction(w, r, err)
		return
	}
	if holder, ok := HolderFromContext(r.Context()); ok {
		if err := holder.ClearIdentifier(r.Context()); err != nil {
			h.logger().WarnContext(r.Context(), "clearing session after account deletion failed", "error", err)
		}
	}
	redirectAfterAction(w, r, h.urlFor(route.Secure, nil))
}
