package memory

import (
	"context"
	"time"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CachedPolicyRepository decorates a RefundPolicyRepository with a short
// in-process TTL. Policies change rarely and are read on every
// eligibility check, so a few minutes of staleness is acceptable here
// (unlike the dashboard aggregates, which are always recomputed).
type CachedPolicyRepository struct {
	inner contract.RefundPolicyRepository
	cache *cache.Cache
}

func NewCachedPolicyRepository(inner contract.RefundPolicyRepository) *CachedPolicyRepository {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &CachedPolicyRepository{
		inner: inner,
		cache: c,
	}
}

func (r *CachedPolicyRepository) FindForEvent(ctx context.Context, eventId uuid.UUID) (*entity.RefundPolicy, error) {
	key := eventId.String()
	if x, found := r.cache.Get(key); found {
		return x.(*entity.RefundPolicy), nil
	}

	policy, err := r.inner.FindForEvent(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if policy != nil {
		r.cache.Set(key, policy, cache.DefaultExpiration)
	}
	return policy, nil
}
