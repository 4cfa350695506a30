package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/imagefeed/internal/client/client"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

// ---- fake client ----

type fakeClient struct {
	ExchangeRet string
	ExchangeErr error

	ProfileRet *client.ProfileResponse
	ProfileErr error

	AvatarRet string
	AvatarErr error

	CloseErr error

	LastCode     string
	LastToken    string
	LastUserName string
	Closed       bool
}

func (f *fakeClient) ExchangeCode(_ context.Context, code string) (string, error) {
	f.LastCode = code
	return f.ExchangeRet, f.ExchangeErr
}

func (f *fakeClient) GetProfile(_ context.Context, accessToken string) (*client.ProfileResponse, error) {
	f.LastToken = accessToken
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) GetAvatarURL(_ context.Context, accessToken string, userName string) (string, error) {
	f.LastToken = accessToken
	f.LastUserName = userName
	return f.AvatarRet, f.AvatarErr
}

func (f *fakeClient) Close() error {
	f.Closed = true
	return f.CloseErr
}
