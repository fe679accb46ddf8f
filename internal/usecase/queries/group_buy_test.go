//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/usecase/queries"
	"groupbuy-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGroupBuys struct {
	rows map[uuid.UUID]*groupbuy.GroupBuy
}

func (s stubGroupBuys) FindByID(_ context.Context, id uuid.UUID) (*groupbuy.GroupBuy, string, error) {
	g, ok := s.rows[id]
	if !ok {
		return nil, "", infra.WrapRepoErr("group buy", nil, infra.KindNotFound)
	}
	return g, "Rice 10kg", nil
}

type stubChat struct {
	gotLimit int32
}

func (s *stubChat) ListByGroupBuy(_ context.Context, groupBuyID uuid.UUID, limit int32) ([]*queries.ChatMessageView, error) {
	s.gotLimit = limit
	return []*queries.ChatMessageView{{ID: uuid.New(), GroupBuyID: groupBuyID, SenderID: "system"}}, nil
}

func TestGroupBuyQueries_Get(t *testing.T) {
	b := builder.NewGroupBuyBuilder()
	g, err := b.BuildReadyForPurchase()
	require.NoError(t, err)

	// one hour past the deadline
	clk := clock.NewMockClock(b.Deadline.Add(time.Hour))
	q := queries.NewGroupBuyQueries(stubGroupBuys{rows: map[uuid.UUID]*groupbuy.GroupBuy{g.ID(): g}}, &stubChat{}, clk)

	t.Run("view carries derived counters", func(t *testing.T) {
		view, err := q.Get(context.Background(), g.ID())
		require.NoError(t, err)

		assert.Equal(t, "Rice 10kg", view.ListingName)
		assert.Equal(t, groupbuy.StatusPurchasing.String(), view.Status)
		assert.Equal(t, 4, view.CurrentParticipants)
		require.NotNil(t, view.PurchaseRequest)
		assert.Equal(t, groupbuy.PurchaseReadyForPurchase.String(), view.PurchaseRequest.Status)
		assert.Equal(t, 3, view.PurchaseRequest.PaidCount)
		// overdue only applies while payments are still being collected
		assert.False(t, view.PurchaseRequest.IsOverdue)
		for _, p := range view.PurchaseRequest.Participants {
			assert.True(t, p.Paid)
			assert.NotNil(t, p.PaidAt)
		}
	})

	t.Run("unpaid request past its deadline is overdue", func(t *testing.T) {
		open, err := builder.NewGroupBuyBuilder().BuildWithPurchaseRequest()
		require.NoError(t, err)
		q := queries.NewGroupBuyQueries(stubGroupBuys{rows: map[uuid.UUID]*groupbuy.GroupBuy{open.ID(): open}}, &stubChat{}, clk)

		view, err := q.Get(context.Background(), open.ID())
		require.NoError(t, err)
		assert.True(t, view.PurchaseRequest.IsOverdue)
	})

	t.Run("not found is classified", func(t *testing.T) {
		_, err := q.Get(context.Background(), uuid.New())
		assert.ErrorIs(t, err, queries.ErrGroupBuyNotFound)
	})
}

func TestGroupBuyQueries_ListChatMessages(t *testing.T) {
	b := builder.NewGroupBuyBuilder()
	g, err := b.BuildDomain()
	require.NoError(t, err)
	chat := &stubChat{}
	q := queries.NewGroupBuyQueries(stubGroupBuys{rows: map[uuid.UUID]*groupbuy.GroupBuy{g.ID(): g}}, chat, clock.NewMockClock(b.Now))

	cases := []struct {
		name      string
		limit     int
		wantLimit int32
	}{
		{"default when unset", 0, queries.DefaultListLimit},
		{"kept when in range", 5, 5},
		{"capped", 500, queries.MaxListLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msgs, err := q.ListChatMessages(context.Background(), g.ID(), b.Members[0], tc.limit)
			require.NoError(t, err)
			assert.Len(t, msgs, 1)
			assert.Equal(t, tc.wantLimit, chat.gotLimit)
		})
	}

	t.Run("organizer can read", func(t *testing.T) {
		_, err := q.ListChatMessages(context.Background(), g.ID(), b.OrganizerID, 0)
		assert.NoError(t, err)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		_, err := q.ListChatMessages(context.Background(), g.ID(), uuid.New(), 0)
		assert.ErrorIs(t, err, groupbuy.ErrNotMember)
	})
}
