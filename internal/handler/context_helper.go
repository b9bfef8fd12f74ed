package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/middleware"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/response"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// Notices sets how long mutation notifications stay on screen.
type Notices struct {
	DismissAfter     time.Duration
	ConfirmedBooking time.Duration
}

// DefaultNotices matches the dashboards' built-in timings.
var DefaultNotices = Notices{DismissAfter: 3 * time.Second, ConfirmedBooking: 4 * time.Second}

func (n Notices) success(c *gin.Context, text string) {
	response.Notify(c, response.NotificationSuccess, text, n.DismissAfter)
}

func (n Notices) fail(c *gin.Context, err error, text string) {
	response.Fail(c, err, text, n.DismissAfter)
}

func sessionFrom(c *gin.Context) *session.Session {
	return middleware.SessionFrom(c)
}

func bindJSON(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "invalid request body")
	}
	return nil
}

var queryValidator = validator.New()

func bindQuery(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindQuery(dest); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "invalid query parameters")
	}
	if err := queryValidator.Struct(dest); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return nil
}

func intParam(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s must be a number", name))
	}
	return v, nil
}

func sendFile(c *gin.Context, file *dto.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
