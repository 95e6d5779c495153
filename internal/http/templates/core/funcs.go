package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
)

const maxStars = 5

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"contains":     strings.Contains,
		"truncateText": TruncateText,
		"accountLabel": AccountLabel,
		"statusClass":  StatusClass,
		"stars":        Stars,
		"rating":       func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"sortArrow":    SortArrow,
		"gameStatuses": model.GameStatuses,
		"accountTypes": func() []model.AccountType { return []model.AccountType{model.AccountTypePlayer, model.AccountTypeGameOwner} },
		"dict":         Dict,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped above.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// Dict builds a map from alternating keys and values so partials can take
// several arguments.
func Dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict requires an even number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// AccountLabel returns the display label of an account type string.
func AccountLabel(t any) string {
	switch v := t.(type) {
	case model.AccountType:
		return v.Label()
	case string:
		return model.AccountType(v).Label()
	default:
		return ""
	}
}

// StatusClass maps game, request and participation statuses to badge classes.
func StatusClass(status any) string {
	switch strings.ToUpper(fmt.Sprint(status)) {
	case "AVAILABLE", "ACCEPTED", "ATTEND":
		return "badge-success"
	case "BORROWED", "PENDING":
		return "badge-warning"
	case "DAMAGED", "DECLINED", "ABSENT":
		return "badge-danger"
	default:
		return "badge-light"
	}
}

// Stars renders a 1-5 rating as filled and empty stars.
func Stars(rating any) string {
	n := 0
	switch v := rating.(type) {
	case int:
		n = v
	case float64:
		n = int(v + 0.5)
	}
	n = max(0, min(n, maxStars))
	return strings.Repeat("★", n) + strings.Repeat("☆", maxStars-n)
}

// SortArrow returns the indicator for a column given the active sort key and direction.
func SortArrow(activeKey string, desc bool, column string) string {
	if activeKey != column {
		return ""
	}
	if desc {
		return "▼"
	}
	return "▲"
}

// TruncateText truncates a string to a maximum number of runes (not bytes).
// Adds an ellipsis (…) when truncated.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen > 1 {
		return string(runes[:maxLen-1]) + "…"
	}
	return string(runes[:1])
}
