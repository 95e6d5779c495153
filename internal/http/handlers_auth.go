package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
	"github.com/boardgamehub/boardgame-ui/internal/http/validation"
)

const (
	maxNameLen     = 255
	maxPasswordLen = 128

	errMsgBadCredentials = "Invalid account ID or password."
)

// LoginPage renders the sign-in form.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{Meta: loginMeta()})
}

func loginMeta() PageMeta { return pageMeta(PageLogin, "Sign In") }

// Login checks the account ID and password against the backend and, on
// success, stores the account ID as the tab's session identifier.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, apperrors.Validation("invalid form submission"))
		return
	}
	form := r.PostForm

	fv := validation.New().
		Validate("accountId", form.Get("accountId"), validation.PositiveID("Account ID")).
		Validate("password", form.Get("password"), validation.Required("Password", maxPasswordLen))
	if !fv.Valid() {
		RenderError(ErrorOpts{
			W: w, R: r, FieldErrors: fv.Errors(),
			Renderer: h.renderForm, PageMeta: loginMeta(),
			Form: form,
		})
		return
	}

	acct, err := h.Accounts.Login(r.Context(), form.Get("accountId"), form.Get("password"))
	if err != nil {
		h.logger().InfoContext(r.Context(), "login failed", slog.Any("error", err))
		if apperrors.IsNotFound(err) || apperrors.IsUnauthorized(err) || apperrors.IsValidation(err) {
			err = apperrors.Unauthorized(errMsgBadCredentials)
		}
		RenderError(ErrorOpts{
			W: w, R: r, Err: err,
			Renderer: h.renderForm, PageMeta: loginMeta(),
			Form: form,
		})
		return
	}

	if !h.signIn(w, r, acct.ID) {
		return
	}
	redirectAfterAction(w, r, h.urlFor(route.Home, nil))
}

// signIn binds id to a new tab scope and drops the pre-login one, so a scope
// issued before authentication never carries an identity.
// It reports false after writing an error response.
func (h *UIHandlers) signIn(w http.ResponseWriter, r *http.Request, id int64) bool {
	ctx := r.Context()
	holder, ok := HolderFromContext(ctx)
	if !ok {
		h.failAction(w, r, apperrors.Internal("session is not available"))
		return false
	}
	fresh := holder.Rebind(uuid.NewString())
	if err := fresh.SetIdentifier(ctx, strconv.FormatInt(id, 10)); err != nil {
		h.failAction(w, r, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "could not start session"))
		return false
	}
	if err := holder.Discard(ctx); err != nil {
		h.logger().WarnContext(ctx, "dropping pre-login session scope failed", slog.Any("error", err))
	}
	setTabCookie(w, r, tabCookieParams{Name: TabCookieName, Domain: h.CookieDomain, Scope: fresh.Scope()})
	h.logger().InfoContext(ctx, "signed in", slog.Int64("user_account_id", id))
	return true
}

// Logout clears the tab's session identifier, drops the rest of the tab's
// state and returns to the sign-in page.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if holder, ok := HolderFromContext(ctx); ok {
		if err := holder.ClearIdentifier(ctx); err != nil {
			h.failAction(w, r, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "could not end session"))
			return
		}
		if err := holder.Discard(ctx); err != nil {
			h.logger().WarnContext(ctx, "dropping session scope failed", slog.Any("error", err))
		}
	}
	redirectAfterAction(w, r, h.urlFor(route.Login, nil))
}

func createAccountMeta() PageMeta { return pageMeta(PageCreateAccount, "Create Account") }

// CreateAccountPage renders the registration form.
func (h *UIHandlers) CreateAccountPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{Meta: createAccountMeta()})
}

// CreateAccount registers a new member and signs them in.
func (h *UIHandlers) CreateAccount(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors, ok := h.parseAccountForm(w, r)
	if !ok {
		return
	}
	if len(fieldErrors) > 0 {
		h.renderAccountFormError(w, r, createAccountMeta(), accountFormError{Fields: fieldErrors})
		return
	}

	acct, err := h.Accounts.Register(r.Context(), req)
	if err != nil {
		h.renderAccountFormError(w, r, createAccountMeta(), accountFormError{Err: err})
		return
	}

	if !h.signIn(w, r, acct.ID) {
		return
	}
	redirectAfterAction(w, r, h.urlFor(route.Home, nil))
}

// parseAccountForm reads the shared create/update account form.
func (h *UIHandlers) parseAccountForm(
	w http.ResponseWriter,
	r *http.Request,
) (model.UserAccountRequest, map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, apperrors.Validation("invalid form submission"))
		return model.UserAccountRequest{}, nil, false
	}
	form := r.PostForm

	fv := validation.New().
		Validate("name", form.Get("name"), validation.Required("Name", maxNameLen)).
		Validate("email", form.Get("email"), validation.Email("Email")).
		Validate("password", form.Get("password"), validation.Required("Password", maxPasswordLen)).
		Validate("accountType", form.Get("accountType"),
			validation.OneOf("Account type", []string{string(model.AccountTypeGameOwner), string(model.AccountTypePlayer)}))

	req := model.UserAccountRequest{
		Name:        form.Get("name"),
		Email:       form.Get("email"),
		Password:    form.Get("password"),
		AccountType: model.AccountType(form.Get("accountType")),
	}
	return req, fv.Errors(), true
}

type accountFormError struct {
	Fields map[string]string
	Err    error
}

func (h *UIHandlers) renderAccountFormError(w http.ResponseWriter, r *http.Request, meta PageMeta, e accountFormError) {
	RenderError(ErrorOpts{
		W: w, R: r, Err: e.Err, FieldErrors: e.Fields,
		Renderer: h.renderForm, PageMeta: meta,
		Form: r.PostForm,
	})
}
