//go:build e2e

package groupbuy_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/domain/user"
	"groupbuy-service/internal/handler/dto/request"
	"groupbuy-service/internal/handler/dto/response"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/infra/uow"
	"groupbuy-service/internal/usecase/commands"
	"groupbuy-service/internal/usecase/queries"
	"groupbuy-service/tests/common/authtest"
	"groupbuy-service/tests/common/dbtest"
	"groupbuy-service/tests/common/httptest"
	"groupbuy-service/tests/e2e"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	purchaseRequestsURL = "/api/purchase-requests"
	uploadProofURL      = "/api/upload-proof"
	groupBuyURL         = "/api/group-buys/%s"
	joinURL             = "/api/group-buys/%s/join"
	messagesURL         = "/api/group-buys/%s/messages"
	ratingStatsURL      = "/api/users/%s/rating"
	listingDraftsURL    = "/api/listing-drafts"
	listingsURL         = "/api/listings"
)

// smallest byte sequence mimetype recognises as image/png
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type PurchaseFlowSuite struct {
	e2e.SharedSuite
}

func TestPurchaseFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PurchaseFlowSuite))
}

type party struct {
	groupBuyID  uuid.UUID
	organizerID uuid.UUID
	members     []uuid.UUID
	tokens      map[uuid.UUID]string
}

func (s *PurchaseFlowSuite) seedParty(prefix string, n, maxParticipants int) party {
	t := s.T()

	organizerEmail := prefix + "-organizer@example.com"
	organizerID := dbtest.CreateTestUser(t, s.DB, organizerEmail, string(user.RoleMember))
	tokens := map[uuid.UUID]string{
		organizerID: authtest.LoginUser(t, s.Router, organizerEmail, "password123"),
	}
	members := make([]uuid.UUID, 0, n)
	for i := range n {
		email := fmt.Sprintf("%s-member%d@example.com", prefix, i)
		id := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleMember))
		tokens[id] = authtest.LoginUser(t, s.Router, email, "password123")
		members = append(members, id)
	}

	return party{
		groupBuyID:  dbtest.CreateTestGroupBuy(t, s.DB, organizerID, members, maxParticipants),
		organizerID: organizerID,
		members:     members,
		tokens:      tokens,
	}
}

func (s *PurchaseFlowSuite) createPurchaseRequest(p party) *queries.PurchaseRequestView {
	t := s.T()
	body := request.CreatePurchaseRequestRequest{
		GroupBuyID:  p.groupBuyID,
		OrganizerID: p.organizerID,
		Amount:      decimal.RequireFromString("12.50"),
		Deadline:    time.Now().Add(48 * time.Hour),
		Message:     "Paying at the counter on Friday",
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseRequestsURL, body, p.tokens[p.organizerID])
	var res response.PurchaseRequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.NotNil(t, res.PurchaseRequest)
	return res.PurchaseRequest
}

func (s *PurchaseFlowSuite) act(p party, actor uuid.UUID, action groupbuy.ActionName, proof string) *nethttptest.ResponseRecorder {
	body := request.PurchaseRequestActionRequest{
		GroupBuyID:      p.groupBuyID,
		UserID:          actor,
		Action:          action.String(),
		ProofOfPurchase: proof,
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, purchaseRequestsURL, body, p.tokens[actor])
}

func (s *PurchaseFlowSuite) getGroupBuy(id uuid.UUID) *queries.GroupBuyView {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(groupBuyURL, id), nil, "")
	var res response.GroupBuyResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	require.NotNil(s.T(), res.GroupBuy)
	return res.GroupBuy
}

func performUpload(t *testing.T, router *gin.Engine, fields map[string]string, content []byte, token string) *nethttptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if content != nil {
		fw, err := mw.CreateFormFile("file", "receipt.bin")
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := nethttptest.NewRequest(http.MethodPost, uploadProofURL, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *PurchaseFlowSuite) TestFullPurchaseFlow() {
	s.Run("支払いから承認まで完了し、主催者の完了数が増える", func() {
		t := s.T()
		p := s.seedParty("flow", 3, 4)

		// 1. 購入リクエスト作成
		pr := s.createPurchaseRequest(p)
		assert.Equal(t, string(groupbuy.PurchaseAwaitingPayments), pr.Status)
		assert.Len(t, pr.Participants, 3)
		assert.True(t, decimal.RequireFromString("12.50").Equal(pr.Amount))
		assert.Equal(t, "USD", pr.Currency)
		assert.Equal(t, string(groupbuy.StatusPurchasing), s.getGroupBuy(p.groupBuyID).Status)

		// 2. 全メンバーが同時に支払う
		var wg sync.WaitGroup
		codes := make([]int, len(p.members))
		for i, m := range p.members {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = s.act(p, m, groupbuy.ActionSubmitPayment, "").Code
			}()
		}
		wg.Wait()
		for _, code := range codes {
			require.Equal(t, http.StatusOK, code)
		}

		view := s.getGroupBuy(p.groupBuyID)
		require.NotNil(t, view.PurchaseRequest)
		assert.Equal(t, string(groupbuy.PurchaseReadyForPurchase), view.PurchaseRequest.Status)
		assert.Equal(t, 3, view.PurchaseRequest.PaidCount)

		// 3. 主催者が購入証明をアップロード
		uw := performUpload(t, s.Router, map[string]string{
			"groupBuyId":  p.groupBuyID.String(),
			"organizerId": p.organizerID.String(),
		}, pngHeader, p.tokens[p.organizerID])
		var uploaded response.UploadProofResponse
		httptest.AssertSuccessResponse(t, uw, http.StatusOK, &uploaded)
		require.True(t, uploaded.Success)
		require.Contains(t, uploaded.URL, "/uploads/payments/")

		// アップロードされたファイルが配信されること
		fw := httptest.PerformRequest(t, s.Router, http.MethodGet, uploaded.URL, nil, "")
		require.Equal(t, http.StatusOK, fw.Code)
		assert.Equal(t, pngHeader, fw.Body.Bytes())

		w := s.act(p, p.organizerID, groupbuy.ActionUploadOrganizerProof, uploaded.URL)
		var res response.PurchaseRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, string(groupbuy.PurchaseAwaitingProofApproval), res.PurchaseRequest.Status)
		require.NotNil(t, res.PurchaseRequest.OrganizerProof)
		assert.Equal(t, uploaded.URL, *res.PurchaseRequest.OrganizerProof)

		// 4. 却下しても全体のステータスは戻らない
		w = s.act(p, p.members[0], groupbuy.ActionRejectPurchase, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, string(groupbuy.PurchaseAwaitingProofApproval), res.PurchaseRequest.Status)
		rejected, ok := lo.Find(res.PurchaseRequest.Participants, func(v queries.ParticipantPaymentView) bool {
			return v.UserID == p.members[0]
		})
		require.True(t, ok)
		assert.Equal(t, string(groupbuy.ParticipantRejected), rejected.Status)

		// 5. 全員が承認すると完了
		for _, m := range p.members {
			w = s.act(p, m, groupbuy.ActionApprovePurchase, "")
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		}
		assert.Equal(t, string(groupbuy.PurchaseCompleted), res.PurchaseRequest.Status)
		assert.Equal(t, 3, res.PurchaseRequest.ApprovedCount)
		assert.Equal(t, string(groupbuy.StatusCompleted), s.getGroupBuy(p.groupBuyID).Status)

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingStatsURL, p.organizerID), nil, "")
		var stats queries.RatingStatsView
		httptest.AssertSuccessResponse(t, sw, http.StatusOK, &stats)
		assert.Equal(t, 1, stats.CompletedGroupBuys)

		// 完了後の操作は拒否される
		w = s.act(p, p.members[1], groupbuy.ActionApprovePurchase, "")
		require.Equal(t, http.StatusConflict, w.Code)

		// 6. 各操作につきチャットメッセージが一件ずつ残る
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(messagesURL, p.groupBuyID), nil, p.tokens[p.members[2]])
		var msgs response.ChatMessagesResponse
		httptest.AssertSuccessResponse(t, mw, http.StatusOK, &msgs)
		// create + 3 payments + proof + reject + 3 approvals
		require.Len(t, msgs.Messages, 9)
		for _, m := range msgs.Messages {
			assert.Equal(t, commands.SystemSenderID, m.SenderID)
		}
		kinds := lo.CountValuesBy(msgs.Messages, func(m *queries.ChatMessageView) string { return m.Kind })
		assert.Equal(t, map[string]int{
			commands.ChatKindPurchaseRequest: 1,
			commands.ChatKindPurchaseUpdate:  8,
		}, kinds)
	})
}

func (s *PurchaseFlowSuite) TestCreatePurchaseRequest() {
	s.Run("主催者以外は作成できない", func() {
		t := s.T()
		p := s.seedParty("notorg", 2, 4)
		member := p.members[0]

		body := request.CreatePurchaseRequestRequest{
			GroupBuyID:  p.groupBuyID,
			OrganizerID: member,
			Amount:      decimal.RequireFromString("5"),
			Deadline:    time.Now().Add(time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseRequestsURL, body, p.tokens[member])
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "only the organizer")

		// 権限チェックが金額チェックより先
		body.Amount = decimal.Zero
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseRequestsURL, body, p.tokens[member])
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "only the organizer")
	})

	s.Run("three-decimal currency is stored without rounding", func() {
		t := s.T()
		p := s.seedParty("kwd", 1, 4)

		body := request.CreatePurchaseRequestRequest{
			GroupBuyID:  p.groupBuyID,
			OrganizerID: p.organizerID,
			Amount:      decimal.RequireFromString("1.005"),
			Currency:    "KWD",
			Deadline:    time.Now().Add(time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseRequestsURL, body, p.tokens[p.organizerID])
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		pr := s.getGroupBuy(p.groupBuyID).PurchaseRequest
		require.NotNil(t, pr)
		assert.Equal(t, "KWD", pr.Currency)
		assert.True(t, decimal.RequireFromString("1.005").Equal(pr.Amount), "got %s", pr.Amount)
	})

	s.Run("二重作成は409", func() {
		t := s.T()
		p := s.seedParty("twice", 1, 4)
		s.createPurchaseRequest(p)

		body := request.CreatePurchaseRequestRequest{
			GroupBuyID:  p.groupBuyID,
			OrganizerID: p.organizerID,
			Amount:      decimal.RequireFromString("5"),
			Deadline:    time.Now().Add(time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseRequestsURL, body, p.tokens[p.organizerID])
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already has a purchase request")
	})

	s.Run("入力検証", func() {
		t := s.T()
		p := s.seedParty("validate", 1, 4)

		tests := []struct {
			name    string
			mutate  func(*request.CreatePurchaseRequestRequest)
			status  int
			message string
		}{
			{
				name:    "期限が過去",
				mutate:  func(r *request.CreatePurchaseRequestRequest) { r.Deadline = time.Now().Add(-time.Hour) },
				status:  http.StatusBadRequest,
				message: "deadline",
			},
			{
				name:    "金額がゼロ",
				mutate:  func(r *request.CreatePurchaseRequestRequest) { r.Amount = decimal.Zero },
				status:  http.StatusBadRequest,
				message: "amount",
			},
			{
				name:    "金額が上限以上",
				mutate:  func(r *request.CreatePurchaseRequestRequest) { r.Amount = decimal.New(1, 11) },
				status:  http.StatusBadRequest,
				message: "exceeds the supported maximum",
			},
			{
				name:    "未知の通貨",
				mutate:  func(r *request.CreatePurchaseRequestRequest) { r.Currency = "ZZZ" },
				status:  http.StatusBadRequest,
				message: "currency",
			},
			{
				name:    "存在しないグループ購入",
				mutate:  func(r *request.CreatePurchaseRequestRequest) { r.GroupBuyID = uuid.New() },
				status:  http.StatusNotFound,
				message: "not found",
			},
		}
		for _, tt := range tests {
			body := request.CreatePurchaseRequestRequest{
				GroupBuyID:  p.groupBuyID,
				OrganizerID: p.organizerID,
				Amount:      decimal.RequireFromString("5"),
				Deadline:    time.Now().Add(time.Hour),
			}
			tt.mutate(&body)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseRequestsURL, body, p.tokens[p.organizerID])
			httptest.AssertErrorResponse(t, w, tt.status, tt.message)
		}

		// 失敗した作成では何も残らない
		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM purchase_requests").Scan(&count))
		assert.Zero(t, count)
	})
}

func (s *PurchaseFlowSuite) TestApplyAction() {
	s.Run("同じメンバーの同時支払いは一度だけ成功する", func() {
		t := s.T()
		p := s.seedParty("doublepay", 2, 4)
		s.createPurchaseRequest(p)
		payer := p.members[0]

		const attempts = 5
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = s.act(p, payer, groupbuy.ActionSubmitPayment, "").Code
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, lo.Count(codes, http.StatusOK))
		assert.Equal(t, attempts-1, lo.Count(codes, http.StatusConflict))

		view := s.getGroupBuy(p.groupBuyID)
		assert.Equal(t, 1, view.PurchaseRequest.PaidCount)
		assert.Equal(t, string(groupbuy.PurchaseAwaitingPayments), view.PurchaseRequest.Status)
	})

	s.Run("エラーケース", func() {
		t := s.T()
		p := s.seedParty("errors", 2, 4)
		s.createPurchaseRequest(p)

		tests := []struct {
			name   string
			actor  uuid.UUID
			action string
			status int
		}{
			{name: "未知のアクション", actor: p.members[0], action: "refund", status: http.StatusBadRequest},
			{name: "主催者は支払い対象ではない", actor: p.organizerID, action: "submit_payment", status: http.StatusForbidden},
			{name: "支払い前の承認", actor: p.members[0], action: "approve_purchase", status: http.StatusConflict},
			{name: "支払い前の証明アップロード", actor: p.organizerID, action: "upload_organizer_proof", status: http.StatusConflict},
		}
		for _, tt := range tests {
			body := request.PurchaseRequestActionRequest{
				GroupBuyID:      p.groupBuyID,
				UserID:          tt.actor,
				Action:          tt.action,
				ProofOfPurchase: "/uploads/payments/receipt.png",
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, purchaseRequestsURL, body, p.tokens[tt.actor])
			assert.Equal(t, tt.status, w.Code, "%s: %s", tt.name, w.Body.String())
		}
	})

	s.Run("他人になりすました操作は403", func() {
		t := s.T()
		p := s.seedParty("spoof", 2, 4)
		s.createPurchaseRequest(p)

		body := request.PurchaseRequestActionRequest{
			GroupBuyID: p.groupBuyID,
			UserID:     p.members[0],
			Action:     groupbuy.ActionSubmitPayment.String(),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, purchaseRequestsURL, body, p.tokens[p.members[1]])
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "own behalf")
	})

	s.Run("購入リクエストがない場合は404", func() {
		t := s.T()
		p := s.seedParty("nopr", 1, 4)

		w := s.act(p, p.members[0], groupbuy.ActionSubmitPayment, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "no active purchase request")
	})
}

func (s *PurchaseFlowSuite) TestUploadProof() {
	s.Run("主催者以外はアップロードできない", func() {
		t := s.T()
		p := s.seedParty("upload-forbidden", 1, 4)
		member := p.members[0]

		w := performUpload(t, s.Router, map[string]string{
			"groupBuyId":  p.groupBuyID.String(),
			"organizerId": member.String(),
		}, pngHeader, p.tokens[member])
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "only the organizer")
	})

	s.Run("画像かPDF以外は拒否", func() {
		t := s.T()
		p := s.seedParty("upload-type", 1, 4)

		w := performUpload(t, s.Router, map[string]string{
			"groupBuyId":  p.groupBuyID.String(),
			"organizerId": p.organizerID.String(),
		}, []byte("just some plain text"), p.tokens[p.organizerID])
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "only images and PDF")
	})

	s.Run("ファイルなしは400", func() {
		t := s.T()
		p := s.seedParty("upload-missing", 1, 4)

		w := performUpload(t, s.Router, map[string]string{
			"groupBuyId":  p.groupBuyID.String(),
			"organizerId": p.organizerID.String(),
		}, nil, p.tokens[p.organizerID])
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "File is required")
	})
}

func (s *PurchaseFlowSuite) TestGroupBuySnapshotRead() {
	s.Run("読み取りは一つの読み取り専用スナップショットで行われる", func() {
		t := s.T()
		u := uow.NewPostgresUoW(s.DB, sqlc.New())

		var isolation, readOnly string
		err := u.WithinReadOnly(t.Context(), func(ctx context.Context, db sqlc.DBTX) error {
			if err := db.QueryRow(ctx, "SHOW transaction_isolation").Scan(&isolation); err != nil {
				return err
			}
			return db.QueryRow(ctx, "SHOW transaction_read_only").Scan(&readOnly)
		})
		require.NoError(t, err)
		assert.Equal(t, "repeatable read", isolation)
		assert.Equal(t, "on", readOnly)
	})

	s.Run("a commit during the read does not leak into the view", func() {
		t := s.T()
		p := s.seedParty("snapshot", 2, 4)
		s.createPurchaseRequest(p)
		u := uow.NewPostgresUoW(s.DB, sqlc.New())

		var before, after int
		err := u.WithinReadOnly(t.Context(), func(ctx context.Context, db sqlc.DBTX) error {
			const paid = "SELECT count(*) FROM purchase_request_participants WHERE paid"
			if err := db.QueryRow(ctx, paid).Scan(&before); err != nil {
				return err
			}
			w := s.act(p, p.members[0], groupbuy.ActionSubmitPayment, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			return db.QueryRow(ctx, paid).Scan(&after)
		})
		require.NoError(t, err)
		assert.Zero(t, before)
		assert.Zero(t, after)
		assert.Equal(t, 1, s.getGroupBuy(p.groupBuyID).PurchaseRequest.PaidCount)
	})
}

func (s *PurchaseFlowSuite) TestJoinAndMessages() {
	s.Run("参加すると満員になり、それ以上は参加できない", func() {
		t := s.T()
		p := s.seedParty("join", 1, 3)

		joinerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "joiner@example.com", string(user.RoleMember))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(joinURL, p.groupBuyID), nil, joinerToken)
		var res response.GroupBuyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, 3, res.GroupBuy.CurrentParticipants)
		assert.Equal(t, string(groupbuy.StatusFull), res.GroupBuy.Status)

		// 二回目の参加
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(joinURL, p.groupBuyID), nil, joinerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already joined")

		lateToken := authtest.CreateAndLogin(t, s.DB, s.Router, "late@example.com", string(user.RoleMember))
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(joinURL, p.groupBuyID), nil, lateToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "full")

		// 参加者はメッセージを読める
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(messagesURL, p.groupBuyID), nil, joinerToken)
		var msgs response.ChatMessagesResponse
		httptest.AssertSuccessResponse(t, mw, http.StatusOK, &msgs)
		require.Len(t, msgs.Messages, 1)
		assert.Equal(t, commands.ChatKindMembership, msgs.Messages[0].Kind)

		// 参加していないユーザーは読めない
		mw = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(messagesURL, p.groupBuyID), nil, lateToken)
		require.Equal(t, http.StatusForbidden, mw.Code)
	})

	s.Run("存在しないグループ購入は404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(groupBuyURL, uuid.New()), nil, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *PurchaseFlowSuite) TestListingDraftToken() {
	s.Run("下書きトークンからリストとグループ購入を作成でき、トークンは一度しか使えない", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", string(user.RoleMember))
		token := authtest.LoginUser(t, s.Router, "lister@example.com", "password123")

		draft := request.CreateListingDraftRequest{
			Name:            "Rice 10kg",
			Category:        "food",
			PricePerUnit:    decimal.RequireFromString("30.00"),
			DiscountedPrice: decimal.RequireFromString("24.00"),
			MinPeople:       2,
			MaxPeople:       6,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingDraftsURL, draft, token)
		var minted response.ListingDraftResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &minted)
		require.NotEmpty(t, minted.Token)
		assert.True(t, minted.ExpiresAt.After(time.Now()))

		name := "Rice 10kg <b>bulk</b>"
		create := request.CreateListingRequest{Token: minted.Token, Name: &name, NumberOfPeople: 4}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, create, token)
		var created response.CreateListingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		view := s.getGroupBuy(uuid.MustParse(created.GroupBuyID))
		assert.Equal(t, userID, view.OrganizerID)
		assert.Equal(t, 4, view.MaxParticipants)
		assert.Equal(t, []uuid.UUID{userID}, view.Participants)
		assert.Equal(t, "Rice 10kg bulk", view.ListingName)

		// 価格は下書きのものが使われる
		var price decimal.Decimal
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT discounted_price FROM listings WHERE id = $1", created.ListingID).Scan(&price))
		assert.True(t, decimal.RequireFromString("24.00").Equal(price))

		// 再利用は404
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, create, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "invalid or expired")
	})

	s.Run("範囲外の人数でもトークンは消費される", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "range@example.com", string(user.RoleMember))

		draft := request.CreateListingDraftRequest{
			Name:         "Coffee beans",
			PricePerUnit: decimal.RequireFromString("18.00"),
			MinPeople:    2,
			MaxPeople:    3,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingDraftsURL, draft, token)
		var minted response.ListingDraftResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &minted)

		create := request.CreateListingRequest{Token: minted.Token, NumberOfPeople: 10}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, create, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "out of the allowed range")

		create.NumberOfPeople = 3
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, create, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
