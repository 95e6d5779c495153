package httpx

import (
	"net/http"
	"net/url"

	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

const (
	errMsgFixBelow  = "Please fix the errors below."
	errMsgTryAgain  = "An error occurred. Please try again."
	errMsgTimeout   = "Request timed out. Please try again."
	errMsgCanceled  = "Request was canceled."
	errMsgBackend   = "The board game service is unavailable. Please try again later."
	errMsgForbidden = "You are not allowed to do that."
)

// ErrorRenderer is a function that renders a page template with the given data.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// ErrorOpts contains all options needed to re-render a form after a failed action.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is the error that occurred (optional when only FieldErrors are set)
	Err error
	// FieldErrors maps form field names to messages
	FieldErrors map[string]string
	Renderer    ErrorRenderer
	PageMeta    PageMeta
	// Form is echoed back so the user does not retype it.
	Form url.Values
	// Data is merged into the template data (select options, ids, ...)
	Data map[string]any
	// StatusCode overrides the derived status; 0 derives it from Err.
	StatusCode int
}

// DetermineErrorStatus maps an error to the status used when re-rendering a form.
// Field-level problems keep 200 so htmx swaps the form back in.
func DetermineErrorStatus(err error) int {
	if err == nil || apperrors.IsValidation(err) {
		return http.StatusOK
	}
	return apperrors.HTTPStatus(err)
}

// RenderError re-renders a page with field errors and a general error message.
// AppError validation errors with a Field are attached to that field.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)
	for k, v := range opts.Data {
		builder.With(k, v)
	}
	if opts.Form != nil {
		builder.WithForm(opts.Form)
	}

	generalError := processError(opts.Err, &opts.FieldErrors)
	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}
	switch {
	case generalError != "":
		builder.WithError(generalError)
	case len(opts.FieldErrors) > 0:
		builder.WithError(errMsgFixBelow)
	}

	status := opts.StatusCode
	if status == 0 {
		status = DetermineErrorStatus(opts.Err)
	}
	if status != http.StatusOK {
		opts.W.Header().Set("Content-Type", "text/html; charset=utf-8")
		opts.W.WriteHeader(status)
	}

	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError returns a user-facing message for err, moving field-scoped
// validation errors into fieldErrors.
func processError(err error, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}

	if field := apperrors.GetField(err); field != "" && apperrors.IsValidation(err) {
		if *fieldErrors == nil {
			*fieldErrors = make(map[string]string)
		}
		(*fieldErrors)[field] = apperrors.Message(err)
		return errMsgFixBelow
	}

	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeNotFound, apperrors.ErrCodeConflict:
		return apperrors.Message(err)
	case apperrors.ErrCodeUnauthorized:
		if msg := apperrors.Message(err); msg != "" {
			return msg
		}
		return errMsgForbidden
	case apperrors.ErrCodeTimeout:
		return errMsgTimeout
	case apperrors.ErrCodeCanceled:
		return errMsgCanceled
	case apperrors.ErrCodeUnavailable:
		return errMsgBackend
	default:
		return errMsgTryAgain
	}
}
