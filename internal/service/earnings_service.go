package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// EarningsService exposes tutor earnings and withdrawals.
type EarningsService struct {
	bind      MarketplaceBinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEarningsService constructs the service.
func NewEarningsService(bind MarketplaceBinder, validate *validator.Validate, logger *zap.Logger) *EarningsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EarningsService{bind: bind, validator: validate, logger: logger}
}

// Overview loads stats and withdrawal history together.
func (s *EarningsService) Overview(ctx context.Context, sess *session.Session) (*dto.EarningsOverview, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	api := s.bind(sess)
	out := &dto.EarningsOverview{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Stats, err = api.GetTutorStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Withdrawals, err = api.ListWithdrawals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if out.Withdrawals == nil {
		out.Withdrawals = []models.Withdrawal{}
	}
	return out, nil
}

// RequestWithdrawal checks the request against the current balance before
// forwarding it.
func (s *EarningsService) RequestWithdrawal(ctx context.Context, sess *session.Session, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	req.PaymentDetails = strings.TrimSpace(req.PaymentDetails)
	if req.Amount <= 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "enter a valid amount")
	}
	if req.PaymentDetails == "" {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "enter payment details")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	api := s.bind(sess)
	stats, err := api.GetTutorStats(ctx)
	if err != nil {
		return nil, err
	}
	if req.Amount > stats.AvailableBalance {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, fmt.Sprintf("amount exceeds available balance of %.2f %s", stats.AvailableBalance, stats.Currency))
	}
	return api.RequestWithdrawal(ctx, req)
}
