package upstream

import (
	"encoding/json"
	"net/http"
	"strings"

	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
)

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
	Loc []any  `json:"loc"`
}

// classify maps an upstream error response onto the error taxonomy.
func classify(status int, raw []byte) *appErrors.Error {
	detail := extractDetail(raw)

	var base *appErrors.Error
	switch {
	case status == http.StatusUnauthorized:
		base = appErrors.ErrUnauthorized
	case status == http.StatusForbidden:
		base = appErrors.ErrForbidden
	case status == http.StatusNotFound:
		base = appErrors.ErrNotFound
	case status == http.StatusConflict:
		base = appErrors.ErrConflict
	case status >= http.StatusInternalServerError:
		base = appErrors.ErrUpstreamUnavailable
	default:
		base = appErrors.ErrUpstreamRejected
	}

	out := appErrors.Clone(base, "")
	out.Detail = detail
	if base == appErrors.ErrUpstreamRejected {
		out.Status = status
	}
	return out
}

func extractDetail(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return text
	}
	var items []validationItem
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
