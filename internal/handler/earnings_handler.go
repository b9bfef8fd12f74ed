package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/pkg/response"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

type earningsService interface {
	Overview(ctx context.Context, sess *session.Session) (*dto.EarningsOverview, error)
	RequestWithdrawal(ctx context.Context, sess *session.Session, req models.WithdrawalRequest) (*models.Withdrawal, error)
}

// EarningsHandler serves tutor earnings and withdrawals.
type EarningsHandler struct {
	service earningsService
	notices Notices
}

// NewEarningsHandler constructs handler.
func NewEarningsHandler(svc earningsService, notices Notices) *EarningsHandler {
	return &EarningsHandler{service: svc, notices: notices}
}

// Overview godoc
// @Summary Earnings stats and withdrawal history
// @Tags Earnings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.EarningsOverview}
// @Router /earnings [get]
func (h *EarningsHandler) Overview(c *gin.Context) {
	out, err := h.service.Overview(c.Request.Context(), sessionFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// RequestWithdrawal godoc
// @Summary Request a withdrawal
// @Tags Earnings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.WithdrawalRequest true "Withdrawal"
// @Success 201 {object} response.Envelope{data=models.Withdrawal}
// @Failure 412 {object} response.Envelope
// @Router /earnings/withdrawals [post]
func (h *EarningsHandler) RequestWithdrawal(c *gin.Context) {
	var req models.WithdrawalRequest
	if err := bindJSON(c, &req); err != nil {
		h.notices.fail(c, err, "Invalid withdrawal request")
		return
	}
	out, err := h.service.RequestWithdrawal(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		h.notices.fail(c, err, "Failed to request withdrawal")
		return
	}
	h.notices.success(c, "Withdrawal request submitted!")
	response.JSON(c, http.StatusCreated, out)
}
