package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

const identityKeyPrefix = "identity:"

// IdentityService resolves the account behind a token whose claims carry
// only the subject.
type IdentityService struct {
	bind   MarketplaceBinder
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

// NewIdentityService constructs the service.
func NewIdentityService(bind MarketplaceBinder, cache *CacheService, ttl time.Duration, logger *zap.Logger) *IdentityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdentityService{bind: bind, cache: cache, ttl: ttl, logger: logger}
}

// Resolve returns the marketplace account for sess. subject keys the cache.
func (s *IdentityService) Resolve(ctx context.Context, sess *session.Session, subject string) (*models.User, error) {
	if _, ok := sess.Token(); !ok {
		return nil, appErrors.ErrUnauthorized
	}
	var user models.User
	load := func(ctx context.Context) error {
		u, err := s.bind(sess).Me(ctx)
		if err != nil {
			return err
		}
		user = *u
		return nil
	}
	subject = strings.ToLower(strings.TrimSpace(subject))
	var err error
	if subject == "" {
		err = load(ctx)
	} else {
		err = s.cache.Remember(ctx, identityKeyPrefix+subject, s.ttl, &user, load)
	}
	if err != nil {
		return nil, err
	}
	if user.ID == "" || !session.Role(user.Role).Valid() {
		s.logger.Warn("marketplace returned incomplete identity", zap.String("subject", subject))
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unable to resolve account")
	}
	return &user, nil
}
