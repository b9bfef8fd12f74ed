package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
)

const notificationKey = "response_notification"

// Notification types shown by the dashboards.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *appErrors.Error       `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// Notification is a transient, auto-dismissing message for the dashboard.
type Notification struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Text           string `json:"text"`
	DismissAfterMs int64  `json:"dismiss_after_ms"`
}

// Notify records a notification to be attached to the response meta.
func Notify(c *gin.Context, kind, text string, dismissAfter time.Duration) {
	if c == nil || text == "" {
		return
	}
	c.Set(notificationKey, Notification{
		ID:             uuid.NewString(),
		Type:           kind,
		Text:           text,
		DismissAfterMs: dismissAfter.Milliseconds(),
	})
}

// JSON sends a success response with optional metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	attachNotification(c, &envelope)
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Error: appErr}
	attachNotification(c, &envelope)
	c.JSON(appErr.Status, envelope)
}

// Fail reports err together with an error notification carrying text.
// Upstream detail and local precondition messages take priority over text.
func Fail(c *gin.Context, err error, text string, dismissAfter time.Duration) {
	if appErr := appErrors.FromError(err); appErr != nil {
		switch {
		case appErr.Detail != "":
			text = appErr.Detail
		case appErr.Code == appErrors.ErrPreconditionFailed.Code, appErr.Code == appErrors.ErrInFlight.Code:
			text = appErr.Message
		}
	}
	Notify(c, NotificationError, text, dismissAfter)
	Error(c, err)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func attachNotification(c *gin.Context, envelope *Envelope) {
	value, ok := c.Get(notificationKey)
	if !ok {
		return
	}
	n, ok := value.(Notification)
	if !ok {
		return
	}
	if envelope.Meta == nil {
		envelope.Meta = map[string]interface{}{}
	}
	envelope.Meta["notification"] = n
}
