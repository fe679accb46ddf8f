package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"groupbuy-service/internal/domain/listing"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyDraft = "listing:draft:%s"

	DefaultTTL = 15 * time.Minute
)

var errTokenCollision = errs.New("draft token collided with an existing key")

// RedisDraftStore keeps drafts in Redis so any API instance can redeem a
// token minted by another one.
type RedisDraftStore struct {
	rdb   redis.Cmdable
	ttl   time.Duration
	clock clock.Clock
}

func NewRedisDraftStore(rdb redis.Cmdable, ttl time.Duration, clk clock.Clock) *RedisDraftStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisDraftStore{rdb: rdb, ttl: ttl, clock: clk}
}

func (s *RedisDraftStore) Mint(ctx context.Context, draft listing.Draft) (string, time.Time, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return "", time.Time{}, errs.Wrap(err, "encode listing draft")
	}

	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, fmt.Sprintf(keyDraft, token), payload, s.ttl).Result()
	if err != nil {
		return "", time.Time{}, infra.WrapRepoErr("failed to store listing draft", err)
	}
	if !ok {
		return "", time.Time{}, errTokenCollision
	}
	return token, s.clock.Now().Add(s.ttl), nil
}

// Redeem uses GETDEL, so two concurrent redeems of one token cannot both succeed.
func (s *RedisDraftStore) Redeem(ctx context.Context, token string) (listing.Draft, error) {
	if _, err := uuid.Parse(token); err != nil {
		return listing.Draft{}, listing.ErrDraftTokenNotFound
	}

	raw, err := s.rdb.GetDel(ctx, fmt.Sprintf(keyDraft, token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return listing.Draft{}, listing.ErrDraftTokenNotFound
		}
		return listing.Draft{}, infra.WrapRepoErr("failed to redeem listing draft", err)
	}

	var draft listing.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return listing.Draft{}, errs.Wrap(err, "decode listing draft")
	}
	return draft, nil
}
