//go:build unit || e2e

// Package fakeuow is an in-memory shared.UnitOfWork. Within calls are
// serialized to stand in for the row lock LoadForUpdate takes in Postgres.
package fakeuow

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/domain/listing"
	"groupbuy-service/internal/domain/review"
	"groupbuy-service/internal/domain/user"
	"groupbuy-service/internal/infra"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInjected = errors.New("injected failure")

type UoW struct {
	mu sync.Mutex

	GroupBuyRows map[uuid.UUID]*groupbuy.GroupBuy
	StatsRows    map[uuid.UUID]*review.RatingStats
	ListingRows  map[uuid.UUID]*listing.Listing
	UserRows     map[string]*shared.UserCredentials
	ReviewRows   []*review.Review
	reviewers    map[uuid.UUID]map[uuid.UUID]time.Time

	// FailOn makes the named write return ErrInjected, e.g. "groupbuy.save".
	FailOn map[string]bool

	Commits   int
	Rollbacks int
	LastLogin map[uuid.UUID]time.Time
}

func New() *UoW {
	return &UoW{
		GroupBuyRows: map[uuid.UUID]*groupbuy.GroupBuy{},
		StatsRows:    map[uuid.UUID]*review.RatingStats{},
		ListingRows:  map[uuid.UUID]*listing.Listing{},
		UserRows:     map[string]*shared.UserCredentials{},
		reviewers:    map[uuid.UUID]map[uuid.UUID]time.Time{},
		FailOn:       map[string]bool{},
		LastLogin:    map[uuid.UUID]time.Time{},
	}
}

func (u *UoW) PutGroupBuy(g *groupbuy.GroupBuy) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.GroupBuyRows[g.ID()] = g
}

func (u *UoW) PutStats(s *review.RatingStats) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.StatsRows[s.UserID()] = s
}

func (u *UoW) PutUser(c *shared.UserCredentials) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.UserRows[c.Email] = c
}

func (u *UoW) GroupBuy(id uuid.UUID) *groupbuy.GroupBuy {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.GroupBuyRows[id]
}

func (u *UoW) Stats(userID uuid.UUID) *review.RatingStats {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.StatsRows[userID]
}

func (u *UoW) Reviews() []*review.Review {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]*review.Review(nil), u.ReviewRows...)
}

// Within restores the maps when fn fails. Aggregates mutated in place before
// the failure are not restored.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.snapshot()
	if err := fn(ctx, &tx{u: u}); err != nil {
		u.restore(snapshot)
		u.Rollbacks++
		return err
	}
	u.Commits++
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *UoW) CommandReads() shared.CommandReads { return reads{u: u} }

type state struct {
	groupBuys map[uuid.UUID]*groupbuy.GroupBuy
	stats     map[uuid.UUID]*review.RatingStats
	listings  map[uuid.UUID]*listing.Listing
	users     map[string]*shared.UserCredentials
	reviews   []*review.Review
	reviewers map[uuid.UUID]map[uuid.UUID]time.Time
}

func (u *UoW) snapshot() state {
	reviewers := make(map[uuid.UUID]map[uuid.UUID]time.Time, len(u.reviewers))
	for k, v := range u.reviewers {
		reviewers[k] = maps.Clone(v)
	}
	return state{
		groupBuys: maps.Clone(u.GroupBuyRows),
		stats:     maps.Clone(u.StatsRows),
		listings:  maps.Clone(u.ListingRows),
		users:     maps.Clone(u.UserRows),
		reviews:   append([]*review.Review(nil), u.ReviewRows...),
		reviewers: reviewers,
	}
}

func (u *UoW) restore(s state) {
	u.GroupBuyRows = s.groupBuys
	u.StatsRows = s.stats
	u.ListingRows = s.listings
	u.UserRows = s.users
	u.ReviewRows = s.reviews
	u.reviewers = s.reviewers
}

func (u *UoW) fail(op string) error {
	if u.FailOn[op] {
		return ErrInjected
	}
	return nil
}

type tx struct{ u *UoW }

func (t *tx) GroupBuys() shared.GroupBuyRepository      { return groupBuys{t.u} }
func (t *tx) Reviews() shared.ReviewRepository          { return reviews{t.u} }
func (t *tx) RatingStats() shared.RatingStatsRepository { return stats{t.u} }
func (t *tx) Listings() shared.ListingRepository        { return listings{t.u} }
func (t *tx) Users() shared.UserRepository              { return users{t.u} }
func (t *tx) DB() sqlc.DBTX                             { return nil }

type groupBuys struct{ u *UoW }

func (r groupBuys) Create(_ context.Context, _ sqlc.DBTX, g *groupbuy.GroupBuy) error {
	if err := r.u.fail("groupbuy.create"); err != nil {
		return err
	}
	r.u.GroupBuyRows[g.ID()] = g
	return nil
}

func (r groupBuys) LoadForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*groupbuy.GroupBuy, error) {
	g, ok := r.u.GroupBuyRows[id]
	if !ok {
		return nil, groupbuy.ErrGroupBuyNotFound
	}
	return g, nil
}

func (r groupBuys) Save(_ context.Context, _ sqlc.DBTX, g *groupbuy.GroupBuy) error {
	if err := r.u.fail("groupbuy.save"); err != nil {
		return err
	}
	r.u.GroupBuyRows[g.ID()] = g
	return nil
}

func (r groupBuys) RecordReviewer(_ context.Context, _ sqlc.DBTX, purchaseRequestID, reviewerID uuid.UUID, at time.Time) error {
	set, ok := r.u.reviewers[purchaseRequestID]
	if !ok {
		set = map[uuid.UUID]time.Time{}
		r.u.reviewers[purchaseRequestID] = set
	}
	if _, dup := set[reviewerID]; dup {
		return groupbuy.ErrAlreadyReviewed
	}
	set[reviewerID] = at
	return nil
}

type reviews struct{ u *UoW }

func (r reviews) Create(_ context.Context, _ sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	if err := r.u.fail("review.create"); err != nil {
		return uuid.Nil, err
	}
	r.u.ReviewRows = append(r.u.ReviewRows, rev)
	return rev.ID(), nil
}

type stats struct{ u *UoW }

func (r stats) Create(_ context.Context, _ sqlc.DBTX, s *review.RatingStats) error {
	r.u.StatsRows[s.UserID()] = s
	return nil
}

func (r stats) LoadForUpdate(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (*review.RatingStats, error) {
	s, ok := r.u.StatsRows[userID]
	if !ok {
		return nil, review.ErrStatsNotFound
	}
	// hand out a copy so a rolled back transaction leaves the stored row alone
	return review.ReconstructRatingStats(s.UserID(), s.TotalRating(), s.ReviewCount(), s.CompletedGroupBuys(), s.UpdatedAt()), nil
}

func (r stats) Save(_ context.Context, _ sqlc.DBTX, s *review.RatingStats) error {
	if err := r.u.fail("stats.save"); err != nil {
		return err
	}
	r.u.StatsRows[s.UserID()] = s
	return nil
}

type listings struct{ u *UoW }

func (r listings) Create(_ context.Context, _ sqlc.DBTX, l *listing.Listing) error {
	if err := r.u.fail("listing.create"); err != nil {
		return err
	}
	r.u.ListingRows[l.ID()] = l
	return nil
}

type users struct{ u *UoW }

func (r users) Create(_ context.Context, _ sqlc.DBTX, usr *user.User) (uuid.UUID, error) {
	email := usr.Email().Value()
	if _, dup := r.u.UserRows[email]; dup {
		return uuid.Nil, infra.WrapRepoErr("create user", errors.New("unique_violation"), infra.KindDuplicateKey)
	}
	r.u.UserRows[email] = &shared.UserCredentials{
		ID:           usr.ID(),
		Email:        email,
		PasswordHash: usr.PasswordHash(),
		Role:         usr.Role().String(),
		IsActive:     usr.IsActive(),
	}
	return usr.ID(), nil
}

func (r users) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	if err := r.u.fail("user.last_login"); err != nil {
		return err
	}
	r.u.LastLogin[userID] = at
	return nil
}

type reads struct{ u *UoW }

func (r reads) lock() func() {
	r.u.mu.Lock()
	return r.u.mu.Unlock
}

func (r reads) GroupBuyOrganizer(_ context.Context, groupBuyID uuid.UUID) (uuid.UUID, error) {
	defer r.lock()()
	g, ok := r.u.GroupBuyRows[groupBuyID]
	if !ok {
		return uuid.Nil, groupbuy.ErrGroupBuyNotFound
	}
	return g.OrganizerID(), nil
}

func (r reads) UserCredentialsByEmail(_ context.Context, email string) (*shared.UserCredentials, error) {
	defer r.lock()()
	c, ok := r.u.UserRows[email]
	if !ok {
		return nil, infra.WrapRepoErr("user credentials", nil, infra.KindNotFound)
	}
	cp := *c
	return &cp, nil
}
