//go:build unit

package commands_test

import (
	"context"
	"testing"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/usecase/commands"
	"groupbuy-service/tests/common/builder"
	"groupbuy-service/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJoinFixture(t *testing.T, b *builder.GroupBuyBuilder, build func() (*groupbuy.GroupBuy, error)) (*fakeuow.UoW, *recordingNotifier, commands.GroupBuyCommands, *groupbuy.GroupBuy) {
	t.Helper()
	g, err := build()
	require.NoError(t, err)
	uow := fakeuow.New()
	uow.PutGroupBuy(g)
	n := &recordingNotifier{}
	return uow, n, commands.NewGroupBuyUseCase(uow, clock.NewMockClock(b.Now), n, nil), g
}

func TestGroupBuyCommands_Join(t *testing.T) {
	t.Run("success: posts a membership notice", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder().WithMembers(1)
		uow, n, cmds, g := newJoinFixture(t, b, b.BuildDomain)
		newcomer := uuid.New()

		view, err := cmds.Join(context.Background(), g.ID(), newcomer)

		require.NoError(t, err)
		assert.Equal(t, 3, view.CurrentParticipants)
		assert.Equal(t, groupbuy.StatusOpen.String(), view.Status)
		assert.True(t, uow.GroupBuy(g.ID()).IsMember(newcomer))
		msgs := n.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, commands.ChatKindMembership, msgs[0].Kind)
		assert.Equal(t, "👋 A new participant joined (3/4).", msgs[0].Text)
	})

	t.Run("success: last seat announces a full group", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder().WithMembers(2)
		_, n, cmds, g := newJoinFixture(t, b, b.BuildDomain)

		view, err := cmds.Join(context.Background(), g.ID(), uuid.New())

		require.NoError(t, err)
		assert.Equal(t, groupbuy.StatusFull.String(), view.Status)
		assert.Contains(t, n.Messages()[0].Text, "Group buy is full")
	})

	t.Run("late joiner is not added to the running purchase request", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder().WithMembers(2)
		uow, _, cmds, g := newJoinFixture(t, b, b.BuildWithPurchaseRequest)
		late := uuid.New()

		_, err := cmds.Join(context.Background(), g.ID(), late)

		require.NoError(t, err)
		stored := uow.GroupBuy(g.ID())
		assert.True(t, stored.IsMember(late))
		assert.Len(t, stored.PurchaseRequest().Participants(), 2)
	})

	errCases := []struct {
		name    string
		members int
		build   func(b *builder.GroupBuyBuilder) (*groupbuy.GroupBuy, error)
		joiner  func(b *builder.GroupBuyBuilder) uuid.UUID
		wantErr error
	}{
		{
			name:    "already a member",
			members: 1,
			build:   (*builder.GroupBuyBuilder).BuildDomain,
			joiner:  func(b *builder.GroupBuyBuilder) uuid.UUID { return b.Members[0] },
			wantErr: groupbuy.ErrAlreadyMember,
		},
		{
			name:    "organizer joins again",
			members: 1,
			build:   (*builder.GroupBuyBuilder).BuildDomain,
			joiner:  func(b *builder.GroupBuyBuilder) uuid.UUID { return b.OrganizerID },
			wantErr: groupbuy.ErrAlreadyMember,
		},
		{
			name:    "full",
			members: 3,
			build:   (*builder.GroupBuyBuilder).BuildDomain,
			joiner:  func(*builder.GroupBuyBuilder) uuid.UUID { return uuid.New() },
			wantErr: groupbuy.ErrGroupBuyFull,
		},
		{
			name:    "completed",
			members: 2,
			build:   (*builder.GroupBuyBuilder).BuildCompleted,
			joiner:  func(*builder.GroupBuyBuilder) uuid.UUID { return uuid.New() },
			wantErr: groupbuy.ErrGroupBuyClosed,
		},
	}
	for _, tc := range errCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			b := builder.NewGroupBuyBuilder().WithMembers(tc.members)
			_, n, cmds, g := newJoinFixture(t, b, func() (*groupbuy.GroupBuy, error) { return tc.build(b) })

			_, err := cmds.Join(context.Background(), g.ID(), tc.joiner(b))

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, n.Messages())
		})
	}

	t.Run("error: unknown group buy", func(t *testing.T) {
		b := builder.NewGroupBuyBuilder()
		_, _, cmds, _ := newJoinFixture(t, b, b.BuildDomain)
		_, err := cmds.Join(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, groupbuy.ErrGroupBuyNotFound)
	})
}
