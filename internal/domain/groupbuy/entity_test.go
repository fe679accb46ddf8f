//go:build unit

package groupbuy_test

import (
	"strings"
	"testing"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.GroupBuyBuilder)
	errIs  error
}

func TestGroupBuy(t *testing.T) {
	t.Run("organizer is the first member", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder()
		g, err := groupbuy.NewGroupBuy(b.ListingID, b.OrganizerID, 3, b.Now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, g.ID())
		assert.Equal(t, []uuid.UUID{b.OrganizerID}, g.Participants())
		assert.Equal(t, 1, g.CurrentParticipants())
		assert.Equal(t, groupbuy.StatusOpen, g.Status())
		assert.Nil(t, g.PurchaseRequest())
	})

	t.Run("capacity below two is rejected", func(t *testing.T) {
		_, err := groupbuy.NewGroupBuy(uuid.New(), uuid.New(), 1, time.Now())
		require.ErrorIs(t, err, groupbuy.ErrInvalidCapacity)
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})

	t.Run("build cases", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "three members fit in four seats",
				mutate: func(b *builder.GroupBuyBuilder) {},
			},
			{
				name:   "exact capacity",
				mutate: func(b *builder.GroupBuyBuilder) { b.MaxParticipants = 4 },
			},
			{
				name:   "one member too many",
				mutate: func(b *builder.GroupBuyBuilder) { b.MaxParticipants = 3 },
				errIs:  groupbuy.ErrGroupBuyFull,
			},
			{
				name: "same member twice",
				mutate: func(b *builder.GroupBuyBuilder) {
					b.Members = []uuid.UUID{b.Members[0], b.Members[0]}
				},
				errIs: groupbuy.ErrAlreadyMember,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewGroupBuyBuilder().With(tc.mutate)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	b := builder.NewGroupBuyBuilder()
	pending, err := b.BuildWithPurchaseRequest()
	require.NoError(t, err)
	done, err := builder.NewGroupBuyBuilder().BuildCompleted()
	require.NoError(t, err)

	tests := []struct {
		name    string
		current int
		max     int
		pr      *groupbuy.PurchaseRequest
		want    groupbuy.Status
	}{
		{"open below capacity", 2, 4, nil, groupbuy.StatusOpen},
		{"full at capacity", 4, 4, nil, groupbuy.StatusFull},
		{"purchasing while request runs", 4, 4, pending.PurchaseRequest(), groupbuy.StatusPurchasing},
		{"purchasing even when not full", 2, 4, pending.PurchaseRequest(), groupbuy.StatusPurchasing},
		{"completed once request completes", 4, 4, done.PurchaseRequest(), groupbuy.StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, groupbuy.DeriveStatus(tt.current, tt.max, tt.pr))
		})
	}
}

func TestJoin(t *testing.T) {
	t.Run("filling the last seat makes it full", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder()
		b.Members = b.Members[:2]
		g, err := b.BuildDomain()
		require.NoError(t, err)
		require.Equal(t, groupbuy.StatusOpen, g.Status())

		require.NoError(t, g.Join(uuid.New(), b.Now))
		assert.Equal(t, groupbuy.StatusFull, g.Status())
		assert.Equal(t, 4, g.CurrentParticipants())
	})

	t.Run("completed group buy is closed", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder()
		b.MaxParticipants = 5
		g, err := b.BuildCompleted()
		require.NoError(t, err)

		err = g.Join(uuid.New(), b.Now)
		require.ErrorIs(t, err, groupbuy.ErrGroupBuyClosed)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))
	})

	t.Run("late joiner is not added to a running request", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder()
		b.MaxParticipants = 5
		g, err := b.BuildWithPurchaseRequest()
		require.NoError(t, err)

		late := uuid.New()
		require.NoError(t, g.Join(late, b.Now))
		assert.True(t, g.IsMember(late))
		assert.Len(t, g.PurchaseRequest().Participants(), 3)

		_, err = g.Apply(groupbuy.SubmitPayment{UserID: late}, b.Now)
		require.ErrorIs(t, err, groupbuy.ErrNotParticipant)
	})
}

func TestStartPurchaseRequest(t *testing.T) {
	usd := func(t *testing.T, amount string) groupbuy.Money {
		t.Helper()
		m, err := groupbuy.NewMoney(decimal.RequireFromString(amount), "USD")
		require.NoError(t, err)
		return m
	}

	t.Run("creates awaiting_payments with every other member unpaid", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder()
		g, err := b.BuildDomain()
		require.NoError(t, err)

		pr, err := g.StartPurchaseRequest(b.OrganizerID, usd(t, "10.00"), b.Deadline, "  Pickup at 6pm  ", b.Now)
		require.NoError(t, err)

		assert.Equal(t, groupbuy.PurchaseAwaitingPayments, pr.Status())
		assert.Equal(t, groupbuy.StatusPurchasing, g.Status())
		assert.Equal(t, "Pickup at 6pm", pr.Message())
		assert.Equal(t, "USD 10.00", pr.Amount().String())
		require.Len(t, pr.Participants(), 3)
		for i, p := range pr.Participants() {
			assert.Equal(t, b.Members[i], p.UserID())
			assert.False(t, p.Paid())
			assert.Equal(t, groupbuy.ParticipantUnpaid, p.Status())
			assert.Nil(t, p.PaidAt())
		}
	})

	tests := []struct {
		name    string
		actor   func(b *builder.GroupBuyBuilder) uuid.UUID
		amount  string
		offset  time.Duration
		message string
		prep    func(t *testing.T, g *groupbuy.GroupBuy, b *builder.GroupBuyBuilder)
		errIs   error
		class   error
	}{
		{
			name:   "non organizer",
			actor:  func(b *builder.GroupBuyBuilder) uuid.UUID { return b.Members[0] },
			amount: "10.00", offset: time.Hour,
			errIs: groupbuy.ErrNotOrganizer, class: errs.ErrForbidden,
		},
		{
			name:   "request already exists",
			actor:  func(b *builder.GroupBuyBuilder) uuid.UUID { return b.OrganizerID },
			amount: "10.00", offset: time.Hour,
			prep: func(t *testing.T, g *groupbuy.GroupBuy, b *builder.GroupBuyBuilder) {
				_, err := g.StartPurchaseRequest(b.OrganizerID, usd(t, "5.00"), b.Deadline, "", b.Now)
				require.NoError(t, err)
			},
			errIs: groupbuy.ErrPurchaseRequestExists, class: errs.ErrInvalidState,
		},
		{
			name:   "deadline in the past",
			actor:  func(b *builder.GroupBuyBuilder) uuid.UUID { return b.OrganizerID },
			amount: "10.00", offset: -time.Minute,
			errIs: groupbuy.ErrDeadlineInPast, class: errs.ErrInvalidArgument,
		},
		{
			name:   "deadline equal to now",
			actor:  func(b *builder.GroupBuyBuilder) uuid.UUID { return b.OrganizerID },
			amount: "10.00", offset: 0,
			errIs: groupbuy.ErrDeadlineInPast, class: errs.ErrInvalidArgument,
		},
		{
			name:    "message too long",
			actor:   func(b *builder.GroupBuyBuilder) uuid.UUID { return b.OrganizerID },
			amount:  "10.00",
			offset:  time.Hour,
			message: strings.Repeat("a", groupbuy.MaxMessageLength+1),
			errIs:   groupbuy.ErrMessageTooLong, class: errs.ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewGroupBuyBuilder()
			g, err := b.BuildDomain()
			require.NoError(t, err)
			if tt.prep != nil {
				tt.prep(t, g, b)
			}
			before := g.PurchaseRequest()

			_, err = g.StartPurchaseRequest(tt.actor(b), usd(t, tt.amount), b.Now.Add(tt.offset), tt.message, b.Now)
			require.ErrorIs(t, err, tt.errIs)
			assert.True(t, errs.Is(err, tt.class))
			assert.Same(t, before, g.PurchaseRequest())
		})
	}

	t.Run("organizer alone has nobody to collect from", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder()
		b.Members = nil
		g, err := b.BuildDomain()
		require.NoError(t, err)

		_, err = g.StartPurchaseRequest(b.OrganizerID, usd(t, "10.00"), b.Deadline, "", b.Now)
		require.ErrorIs(t, err, groupbuy.ErrNoParticipants)
		assert.Nil(t, g.PurchaseRequest())
	})

	t.Run("zero amount", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder()
		g, err := b.BuildDomain()
		require.NoError(t, err)

		zero := groupbuy.ReconstructMoney(decimal.Zero, "USD")
		_, err = g.StartPurchaseRequest(b.OrganizerID, zero, b.Deadline, "", b.Now)
		require.ErrorIs(t, err, groupbuy.ErrInvalidAmount)

		// 主催者でなければ金額より先に拒否される
		_, err = g.StartPurchaseRequest(b.Members[0], zero, b.Deadline, "", b.Now)
		require.ErrorIs(t, err, groupbuy.ErrNotOrganizer)
	})
}

func TestCanStartPurchaseRequest(t *testing.T) {
	b := builder.NewGroupBuyBuilder()
	g, err := b.BuildDomain()
	require.NoError(t, err)

	assert.NoError(t, g.CanStartPurchaseRequest(b.OrganizerID))
	assert.ErrorIs(t, g.CanStartPurchaseRequest(b.Members[0]), groupbuy.ErrNotOrganizer)
	assert.ErrorIs(t, g.CanStartPurchaseRequest(uuid.New()), groupbuy.ErrNotOrganizer)

	started, err := b.BuildWithPurchaseRequest()
	require.NoError(t, err)
	assert.ErrorIs(t, started.CanStartPurchaseRequest(b.OrganizerID), groupbuy.ErrPurchaseRequestExists)
}

func TestCanBeReviewedBy(t *testing.T) {
	b := builder.NewGroupBuyBuilder()
	done, err := b.BuildCompleted()
	require.NoError(t, err)

	t.Run("member reviews organizer", func(t *testing.T) {
		require.NoError(t, done.CanBeReviewedBy(b.Members[0], b.OrganizerID))
	})

	t.Run("organizer reviews member", func(t *testing.T) {
		require.NoError(t, done.CanBeReviewedBy(b.OrganizerID, b.Members[1]))
	})

	t.Run("self review", func(t *testing.T) {
		require.ErrorIs(t, done.CanBeReviewedBy(b.Members[0], b.Members[0]), groupbuy.ErrSelfReview)
	})

	t.Run("outsider", func(t *testing.T) {
		require.ErrorIs(t, done.CanBeReviewedBy(uuid.New(), b.OrganizerID), groupbuy.ErrNotMember)
		require.ErrorIs(t, done.CanBeReviewedBy(b.OrganizerID, uuid.New()), groupbuy.ErrNotMember)
	})

	t.Run("not completed yet", func(t *testing.T) {
		pending, err := builder.NewGroupBuyBuilder().BuildReadyForPurchase()
		require.NoError(t, err)
		err = pending.CanBeReviewedBy(pending.Participants()[1], pending.OrganizerID())
		require.ErrorIs(t, err, groupbuy.ErrNotCompleted)
	})

	t.Run("second review by the same reviewer", func(t *testing.T) {
		g, err := builder.NewGroupBuyBuilder().BuildCompleted()
		require.NoError(t, err)
		reviewer := g.Participants()[1]

		require.NoError(t, g.MarkReviewed(reviewer, time.Now()))
		assert.True(t, g.PurchaseRequest().HasReviewed(reviewer))

		err = g.MarkReviewed(reviewer, time.Now())
		require.ErrorIs(t, err, groupbuy.ErrAlreadyReviewed)
		assert.True(t, errs.Is(err, errs.ErrAlreadyDone))
	})
}
