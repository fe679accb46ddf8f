//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/domain/review"
	"groupbuy-service/internal/domain/user"
	"groupbuy-service/internal/handler/api"
	resdto "groupbuy-service/internal/handler/dto/response"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/usecase/commands"
	"groupbuy-service/internal/usecase/queries"
	"groupbuy-service/tests/common/builder"
	"groupbuy-service/tests/common/httptest"
	"groupbuy-service/tests/common/testutil"
	commandsmock "groupbuy-service/tests/mock/commands"
	queriesmock "groupbuy-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actorID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	s.router.POST("/reviews", fakeAuth(s.actorID), s.handler.Create)
	s.router.GET("/users/:id/reviews", s.handler.ListByUser)
	s.router.GET("/users/:id/rating", s.handler.RatingStats)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// fakeAuth stands in for RequireAuth: a request without an Authorization
// header is rejected, anything else is authenticated as userID.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	b := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.ReviewerID = s.actorID })
	reqBody := b.BuildCreateRequestDTO()
	reviewID := uuid.New()

	s.Run("success: 201 with review id", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), commands.SubmitReviewInput{
			ReviewedUserID: b.ReviewedUserID,
			GroupBuyID:     b.GroupBuyID,
			ReviewerID:     s.actorID,
			Rating:         b.Rating,
			Comment:        b.Comment,
		}).Return(&commands.SubmitReviewResult{ReviewID: reviewID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(reviewID.String(), body.ReviewID)
		s.Equal("Review submitted successfully", body.Message)
	})

	missing := []testCaseReview{
		{name: "missing field: reviewedUserId", mutate: testutil.Field("reviewedUserId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: groupBuyId", mutate: testutil.Field("groupBuyId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: reviewerId", mutate: testutil.Field("reviewerId", nil), expectCode: http.StatusBadRequest},
		{name: "malformed uuid", mutate: testutil.Field("groupBuyId", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range missing {
		s.Run(tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 403 when reviewerId is someone else", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reviewerId", uuid.NewString()))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "own behalf")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "rating out of range", err: review.ErrInvalidRating, expectCode: http.StatusBadRequest},
		{name: "reviewer is not a member", err: groupbuy.ErrNotMember, expectCode: http.StatusForbidden},
		{name: "group buy not found", err: groupbuy.ErrGroupBuyNotFound, expectCode: http.StatusNotFound},
		{name: "already reviewed", err: groupbuy.ErrAlreadyReviewed, expectCode: http.StatusConflict},
		{name: "unclassified failure", err: errs.New("connection reset"), expectCode: http.StatusInternalServerError, expectMsg: "Create review failed"},
	}
	for _, tc := range domainErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *ReviewHandlerTestSuite) TestListByUser() {
	userID := uuid.New()
	url := "/users/" + userID.String() + "/reviews"
	item := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.ReviewedUserID = userID }).BuildListItem()

	s.Run("success: first page with next cursor", func() {
		next := &queries.Cursor{After: queries.EncodeAfterCursor(item.CreatedAt, item.ID)}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), userID, &queries.Cursor{}, 1).
			Return([]*queries.ReviewListItem{item}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=1", nil, "")

		var body resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Reviews, 1)
		s.Equal(item.ID.String(), body.Reviews[0].ID)
		s.Equal(item.ReviewerName, body.Reviews[0].ReviewerName)
		s.Equal(next.After, body.NextCursor)
	})

	s.Run("success: cursor is forwarded", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), userID, &queries.Cursor{After: "abc"}, 0).
			Return([]*queries.ReviewListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc", nil, "")

		var body resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Reviews)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Wrap(queries.ErrInvalidCursor, "unknown cursor version")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("error: 400 on limit above maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=101", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed user id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/xyz/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReviewHandlerTestSuite) TestRatingStats() {
	b := builder.NewReviewBuilder()
	url := "/users/" + b.ReviewedUserID.String() + "/rating"

	s.Run("success", func() {
		stats := b.BuildRatingStatsView()
		s.mockQueries.EXPECT().GetRatingStats(gomock.Any(), b.ReviewedUserID).Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body queries.RatingStatsView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(stats.ReviewCount, body.ReviewCount)
		s.True(stats.ReviewRating.Equal(body.ReviewRating))
	})

	s.Run("error: 404 for unknown user", func() {
		s.mockQueries.EXPECT().GetRatingStats(gomock.Any(), b.ReviewedUserID).Return(nil, review.ErrStatsNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
