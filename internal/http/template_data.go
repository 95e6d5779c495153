package httpx

import (
	"net/http"
	"net/url"
	"strings"
)

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// WithNotice sets a one-line confirmation shown above the page content.
func (b *TemplateDataBuilder) WithNotice(msg string) *TemplateDataBuilder {
	if msg != "" {
		b.data["Notice"] = msg
	}
	return b
}

// WithForm exposes submitted form values to the template as Form.<field>.
// Password fields are never echoed back.
func (b *TemplateDataBuilder) WithForm(values url.Values) *TemplateDataBuilder {
	form := make(map[string]string, len(values))
	for k := range values {
		if strings.Contains(strings.ToLower(k), "password") || k == csrfFormField {
			continue
		}
		form[k] = strings.TrimSpace(values.Get(k))
	}
	b.data["Form"] = form
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	if _, ok := b.data["Errors"]; !ok {
		b.data["Errors"] = map[string]string{}
	}
	if _, ok := b.data["Form"]; !ok {
		b.data["Form"] = map[string]string{}
	}
	return b.data
}
