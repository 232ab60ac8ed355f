package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"blogapi/internal/common/security"
	"blogapi/internal/platform/database"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

const testJWTSecret = "service-test-secret"

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	require.NoError(t, database.EnsureSchema(context.Background(), db))

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestTokenManager() *security.TokenManager {
	return security.NewTokenManager([]byte(testJWTSecret), time.Hour)
}

func strPtr(s string) *string {
	return &s
}
