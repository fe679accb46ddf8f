//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/infra/repository"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"
	"groupbuy-service/internal/usecase/shared"
	"groupbuy-service/tests/common/builder"
	repositorymock "groupbuy-service/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var groupBuyCmpOpts = []cmp.Option{
	cmp.AllowUnexported(groupbuy.GroupBuy{}, groupbuy.PurchaseRequest{}, groupbuy.ParticipantPayment{}),
	cmp.Comparer(func(a, b groupbuy.Money) bool {
		return a.Amount().Equal(b.Amount()) && a.CurrencyCode() == b.CurrencyCode()
	}),
	cmpopts.EquateEmpty(),
}

// =============================================================================
// Create Tests
// =============================================================================

func TestGroupBuyRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockGroupBuyQueries, *groupbuy.GroupBuy, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: group buy row and organizer membership written",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries, g *groupbuy.GroupBuy, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().CreateGroupBuy(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateGroupBuyParams) error {
							assert.Equal(t, g.ID(), arg.ID)
							assert.Equal(t, "open", arg.Status)
							assert.Equal(t, int32(4), arg.MaxParticipants)
							return nil
						}),
					mock.EXPECT().AddGroupBuyParticipant(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.AddGroupBuyParticipantParams) error {
							assert.Equal(t, g.OrganizerID(), arg.UserID)
							assert.Equal(t, int32(0), arg.Position)
							return nil
						}),
				)
			},
		},
		{
			name: "error: unknown listing violates foreign key",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries, g *groupbuy.GroupBuy, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateGroupBuy(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries, g *groupbuy.GroupBuy, tx sqlc.DBTX) {
				mock.EXPECT().CreateGroupBuy(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: membership insert fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries, g *groupbuy.GroupBuy, tx sqlc.DBTX) {
				mock.EXPECT().CreateGroupBuy(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().AddGroupBuyParticipant(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGroupBuyQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewGroupBuyRepository(mockQueries)

			b := builder.NewGroupBuyBuilder()
			g, err := groupbuy.NewGroupBuy(b.ListingID, b.OrganizerID, b.MaxParticipants, b.Now)
			require.NoError(t, err)

			tc.setupMock(mockQueries, g, mockDB)

			actualError := repo.Create(ctx, mockDB, g)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Save / LoadForUpdate Tests
// =============================================================================

// savedRows collects what Create and Save write so it can be served back to
// LoadForUpdate.
type savedRows struct {
	groupBuy  sqlc.GroupBuys
	members   []sqlc.GroupBuyParticipants
	pr        *sqlc.PurchaseRequests
	payments  []sqlc.PurchaseRequestParticipants
	reviewers []uuid.UUID
}

func (s *savedRows) record(mock *repositorymock.MockGroupBuyQueries) {
	mock.EXPECT().CreateGroupBuy(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateGroupBuyParams) error {
			s.groupBuy = sqlc.GroupBuys(arg)
			return nil
		}).AnyTimes()
	mock.EXPECT().UpdateGroupBuy(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateGroupBuyParams) (int64, error) {
			s.groupBuy.Status = arg.Status
			s.groupBuy.UpdatedAt = arg.UpdatedAt
			return 1, nil
		}).AnyTimes()
	mock.EXPECT().AddGroupBuyParticipant(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.AddGroupBuyParticipantParams) error {
			for _, m := range s.members {
				if m.UserID == arg.UserID {
					return nil
				}
			}
			s.members = append(s.members, sqlc.GroupBuyParticipants(arg))
			return nil
		}).AnyTimes()
	mock.EXPECT().UpsertPurchaseRequest(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertPurchaseRequestParams) error {
			row := sqlc.PurchaseRequests(arg)
			s.pr = &row
			return nil
		}).AnyTimes()
	mock.EXPECT().UpsertPurchaseRequestParticipant(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertPurchaseRequestParticipantParams) error {
			row := sqlc.PurchaseRequestParticipants(arg)
			for i, p := range s.payments {
				if p.UserID == arg.UserID {
					s.payments[i] = row
					return nil
				}
			}
			s.payments = append(s.payments, row)
			return nil
		}).AnyTimes()
	mock.EXPECT().InsertPurchaseRequestReviewer(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertPurchaseRequestReviewerParams) (int64, error) {
			s.reviewers = append(s.reviewers, arg.ReviewerID)
			return 1, nil
		}).AnyTimes()
}

func (s *savedRows) serve(mock *repositorymock.MockGroupBuyQueries) {
	mock.EXPECT().GetGroupBuyForUpdate(gomock.Any(), gomock.Any(), s.groupBuy.ID).Return(s.groupBuy, nil)
	mock.EXPECT().ListGroupBuyParticipants(gomock.Any(), gomock.Any(), s.groupBuy.ID).Return(s.members, nil)
	if s.pr == nil {
		mock.EXPECT().GetPurchaseRequestByGroupBuy(gomock.Any(), gomock.Any(), s.groupBuy.ID).Return(sqlc.PurchaseRequests{}, pgx.ErrNoRows)
		return
	}
	mock.EXPECT().GetPurchaseRequestByGroupBuy(gomock.Any(), gomock.Any(), s.groupBuy.ID).Return(*s.pr, nil)
	mock.EXPECT().ListPurchaseRequestParticipants(gomock.Any(), gomock.Any(), s.pr.ID).Return(s.payments, nil)
	mock.EXPECT().ListPurchaseRequestReviewers(gomock.Any(), gomock.Any(), s.pr.ID).Return(s.reviewers, nil)
}

func TestGroupBuyRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name  string
		build func(*builder.GroupBuyBuilder) (*groupbuy.GroupBuy, error)
	}{
		{name: "open group buy without purchase request", build: (*builder.GroupBuyBuilder).BuildDomain},
		{name: "awaiting payments", build: (*builder.GroupBuyBuilder).BuildWithPurchaseRequest},
		{name: "ready for purchase", build: (*builder.GroupBuyBuilder).BuildReadyForPurchase},
		{name: "awaiting proof approval", build: (*builder.GroupBuyBuilder).BuildAwaitingApproval},
		{name: "completed", build: (*builder.GroupBuyBuilder).BuildCompleted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGroupBuyQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewGroupBuyRepository(mockQueries)

			want, err := tc.build(builder.NewGroupBuyBuilder())
			require.NoError(t, err)

			saved := &savedRows{}
			saved.record(mockQueries)
			require.NoError(t, repo.Create(ctx, mockDB, want))
			require.NoError(t, repo.Save(ctx, mockDB, want))
			saved.serve(mockQueries)

			got, err := repo.LoadForUpdate(ctx, mockDB, want.ID())
			require.NoError(t, err)

			if diff := cmp.Diff(want, got, groupBuyCmpOpts...); diff != "" {
				t.Errorf("loaded aggregate mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, want.Status(), got.Status())
		})
	}
}

func TestGroupBuyRepository_RoundTripWithReviewers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockGroupBuyQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewGroupBuyRepository(mockQueries)

	b := builder.NewGroupBuyBuilder()
	g, err := b.BuildCompleted()
	require.NoError(t, err)

	saved := &savedRows{}
	saved.record(mockQueries)
	require.NoError(t, repo.Create(ctx, mockDB, g))
	require.NoError(t, repo.Save(ctx, mockDB, g))

	reviewer := b.Members[0]
	require.NoError(t, g.MarkReviewed(reviewer, b.Now.Add(time.Hour)))
	require.NoError(t, repo.RecordReviewer(ctx, mockDB, g.PurchaseRequest().ID(), reviewer, b.Now.Add(time.Hour)))
	saved.serve(mockQueries)

	got, err := repo.LoadForUpdate(ctx, mockDB, g.ID())
	require.NoError(t, err)
	assert.True(t, got.PurchaseRequest().HasReviewed(reviewer))
	assert.False(t, got.PurchaseRequest().HasReviewed(b.Members[1]))
}

func TestGroupBuyRepository_LoadForUpdate_Errors(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	row := sqlc.GroupBuys{ID: id, Status: "open", MaxParticipants: 4}
	prRow := sqlc.PurchaseRequests{ID: uuid.New(), GroupBuyID: id}

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockGroupBuyQueries)
		expectErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "error: group buy not found",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().GetGroupBuyForUpdate(ctx, gomock.Any(), id).Return(sqlc.GroupBuys{}, pgx.ErrNoRows)
			},
			expectErr: groupbuy.ErrGroupBuyNotFound,
		},
		{
			name: "error: lock query fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().GetGroupBuyForUpdate(ctx, gomock.Any(), id).Return(sqlc.GroupBuys{}, errors.New("lock timeout"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: members query fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().GetGroupBuyForUpdate(ctx, gomock.Any(), id).Return(row, nil)
				mock.EXPECT().ListGroupBuyParticipants(ctx, gomock.Any(), id).Return(nil, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: purchase request query fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().GetGroupBuyForUpdate(ctx, gomock.Any(), id).Return(row, nil)
				mock.EXPECT().ListGroupBuyParticipants(ctx, gomock.Any(), id).Return(nil, nil)
				mock.EXPECT().GetPurchaseRequestByGroupBuy(ctx, gomock.Any(), id).Return(sqlc.PurchaseRequests{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: payments query fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().GetGroupBuyForUpdate(ctx, gomock.Any(), id).Return(row, nil)
				mock.EXPECT().ListGroupBuyParticipants(ctx, gomock.Any(), id).Return(nil, nil)
				mock.EXPECT().GetPurchaseRequestByGroupBuy(ctx, gomock.Any(), id).Return(prRow, nil)
				mock.EXPECT().ListPurchaseRequestParticipants(ctx, gomock.Any(), prRow.ID).Return(nil, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: reviewers query fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().GetGroupBuyForUpdate(ctx, gomock.Any(), id).Return(row, nil)
				mock.EXPECT().ListGroupBuyParticipants(ctx, gomock.Any(), id).Return(nil, nil)
				mock.EXPECT().GetPurchaseRequestByGroupBuy(ctx, gomock.Any(), id).Return(prRow, nil)
				mock.EXPECT().ListPurchaseRequestParticipants(ctx, gomock.Any(), prRow.ID).Return(nil, nil)
				mock.EXPECT().ListPurchaseRequestReviewers(ctx, gomock.Any(), prRow.ID).Return(nil, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGroupBuyQueries(ctrl)
			repo := repository.NewGroupBuyRepository(mockQueries)
			tc.setupMock(mockQueries)

			got, err := repo.LoadForUpdate(ctx, &mockDBTX{}, id)

			require.Error(t, err)
			assert.Nil(t, got)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			}
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			}
		})
	}
}

func TestGroupBuyRepository_Save_Errors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockGroupBuyQueries)
		expectErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "error: stale version",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().UpdateGroupBuy(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			expectErr: shared.ErrConcurrentModification,
		},
		{
			name: "error: update fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().UpdateGroupBuy(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: purchase request upsert fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().UpdateGroupBuy(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)
				mock.EXPECT().AddGroupBuyParticipant(ctx, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mock.EXPECT().UpsertPurchaseRequest(ctx, gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: payment upsert fails",
			setupMock: func(mock *repositorymock.MockGroupBuyQueries) {
				mock.EXPECT().UpdateGroupBuy(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)
				mock.EXPECT().AddGroupBuyParticipant(ctx, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mock.EXPECT().UpsertPurchaseRequest(ctx, gomock.Any(), gomock.Any()).Return(nil)
				mock.EXPECT().UpsertPurchaseRequestParticipant(ctx, gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGroupBuyQueries(ctrl)
			repo := repository.NewGroupBuyRepository(mockQueries)
			tc.setupMock(mockQueries)

			g, err := builder.NewGroupBuyBuilder().BuildWithPurchaseRequest()
			require.NoError(t, err)

			err = repo.Save(ctx, &mockDBTX{}, g)

			require.Error(t, err)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			}
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			}
		})
	}
}

// =============================================================================
// RecordReviewer Tests
// =============================================================================

func TestGroupBuyRepository_RecordReviewer(t *testing.T) {
	ctx := context.Background()
	prID, reviewerID := uuid.New(), uuid.New()
	at := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: reviewer recorded", affected: 1},
		{name: "error: reviewer already recorded", affected: 0, expectErr: groupbuy.ErrAlreadyReviewed},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGroupBuyQueries(ctrl)
			repo := repository.NewGroupBuyRepository(mockQueries)
			mockQueries.EXPECT().InsertPurchaseRequestReviewer(ctx, gomock.Any(), sqlc.InsertPurchaseRequestReviewerParams{
				PurchaseRequestID: prID,
				ReviewerID:        reviewerID,
				ReviewedAt:        pgconv.TimeToPgtype(at),
			}).Return(tc.affected, tc.dbErr)

			err := repo.RecordReviewer(ctx, &mockDBTX{}, prID, reviewerID, at)

			switch {
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			case tc.expectKind != "":
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
