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

	"hall-allocation/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestUserPassword is the plain text of the hash every fixture user gets.
const TestUserPassword = "password123"

var testUserPasswordHash = sync.OnceValues(func() (string, error) {
	return password.NewBcryptHasher(bcrypt.MinCost).Hash(TestUserPassword)
})

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	var regNo *string
	if role == "student" {
		n := "REG-" + userID.String()[:8]
		regNo = &n
	}

	hash, err := testUserPasswordHash()
	require.NoError(t, err)

	ctx := context.Background()
	tag, err := db.Exec(ctx, `INSERT INTO users (id, full_name, email, password_hash, role, registration_number)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING`,
		userID, "Test "+role, email, hash, role, regNo)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestHall(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	hallID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO halls (id, name, location, capacity) VALUES ($1, $2, $3, $4)",
		hallID, name, "Block 1, Ground Floor", 120)
	require.NoError(t, err)
	return hallID
}

// HallStatus reads the stored status and allocated lecturer of a hall.
func HallStatus(t *testing.T, db DBLike, hallID uuid.UUID) (string, *uuid.UUID) {
	t.Helper()

	var (
		status     string
		lecturerID *uuid.UUID
	)
	err := db.QueryRow(context.Background(),
		"SELECT status, allocated_lecturer_id FROM halls WHERE id = $1", hallID).Scan(&status, &lecturerID)
	require.NoError(t, err)
	return status, lecturerID
}

func CountHallRequests(t *testing.T, db DBLike, hallID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM hall_requests WHERE hall_id = $1 AND status = $2", hallID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all application tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
