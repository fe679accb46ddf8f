//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// password123
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts an active user with an empty rating stats row.
// The password is always "password123".
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, display_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
		return userID
	}

	_, err = db.Exec(ctx, "INSERT INTO user_rating_stats (user_id) VALUES ($1)", userID)
	require.NoError(t, err)
	return userID
}

func CreateTestListing(t *testing.T, db DBLike, createdBy uuid.UUID, numberOfPeople int) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO listings
		(id, name, price_per_unit, discounted_price, min_people, max_people, number_of_people, created_by)
		VALUES ($1, $2, 12.00, 9.50, 2, $3, $3, $4)`,
		listingID, "Test Listing", numberOfPeople, createdBy)
	require.NoError(t, err)
	return listingID
}

// CreateTestGroupBuy inserts a group buy organized by organizerID with the
// given members already joined. Status is full when members fill it.
func CreateTestGroupBuy(t *testing.T, db DBLike, organizerID uuid.UUID, members []uuid.UUID, maxParticipants int) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	listingID := CreateTestListing(t, db, organizerID, maxParticipants)
	groupBuyID := uuid.New()

	status := "open"
	if len(members)+1 >= maxParticipants {
		status = "full"
	}
	_, err := db.Exec(ctx, `INSERT INTO group_buys (id, listing_id, organizer_id, max_participants, status)
		VALUES ($1, $2, $3, $4, $5)`, groupBuyID, listingID, organizerID, maxParticipants, status)
	require.NoError(t, err)

	for i, id := range append([]uuid.UUID{organizerID}, members...) {
		_, err := db.Exec(ctx, `INSERT INTO group_buy_participants (group_buy_id, user_id, position)
			VALUES ($1, $2, $3)`, groupBuyID, id, i)
		require.NoError(t, err)
	}
	return groupBuyID
}

// CompleteTestGroupBuy attaches a completed purchase request where every
// member has paid and approved, and marks the group buy completed.
func CompleteTestGroupBuy(t *testing.T, db DBLike, groupBuyID, organizerID uuid.UUID, members []uuid.UUID) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	prID := uuid.New()
	now := time.Now().UTC()

	_, err := db.Exec(ctx, `INSERT INTO purchase_requests
		(id, group_buy_id, organizer_id, amount, currency, deadline, status, organizer_proof, organizer_proof_uploaded_at)
		VALUES ($1, $2, $3, 10.00, 'USD', $4, 'completed', '/uploads/payments/receipt.png', $5)`,
		prID, groupBuyID, organizerID, now.Add(24*time.Hour), now)
	require.NoError(t, err)

	for i, id := range members {
		_, err := db.Exec(ctx, `INSERT INTO purchase_request_participants
			(purchase_request_id, user_id, position, paid, paid_at, status, approved_at)
			VALUES ($1, $2, $3, true, $4, 'approved', $4)`, prID, id, i, now)
		require.NoError(t, err)
	}

	_, err = db.Exec(ctx, "UPDATE group_buys SET status = 'completed', version = version + 1 WHERE id = $1", groupBuyID)
	require.NoError(t, err)
	return prID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
