package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/orgchart/internal/config"
	"github.com/agenthands/orgchart/internal/core/model"
)

type mockSource struct {
	Rows     []model.HierarchyRow
	Err      error
	CloseErr error
	Closed   bool
}

func (m *mockSource) FetchRows(ctx context.Context) ([]model.HierarchyRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rows, nil
}

func (m *mockSource) Close(ctx context.Context) error {
	m.Closed = true
	return m.CloseErr
}

func TestFetch(t *testing.T) {
	src := &mockSource{Rows: []model.HierarchyRow{{NodeID: "A", Title: "CEO"}}}

	rows, err := Fetch(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.True(t, src.Closed)
}

func TestFetch_ClosesOnError(t *testing.T) {
	src := &mockSource{Err: &QueryError{Err: errors.New("boom")}}

	_, err := Fetch(context.Background(), src)
	assert.True(t, IsQueryError(err))
	assert.True(t, src.Closed)
}

func TestFetch_CloseError(t *testing.T) {
	src := &mockSource{CloseErr: errors.New("socket")}

	_, err := Fetch(context.Background(), src)
	assert.ErrorContains(t, err, "failed to close data source")
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("login failed")
	err := error(&ConnectionError{Err: cause})

	assert.True(t, IsConnectionError(err))
	assert.False(t, IsQueryError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection failed: login failed", err.Error())
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name       string
		db         config.DatabaseConfig
		wantDriver string
		wantDSN    string
	}{
		{
			name:       "sqlserver local",
			db:         config.DatabaseConfig{Driver: "sqlserver", Server: ".", Name: "SjDataModel", User: "sa", Password: "pw"},
			wantDriver: "sqlserver",
			wantDSN:    "sqlserver://sa:pw@localhost?database=SjDataModel",
		},
		{
			name:       "sqlserver with port",
			db:         config.DatabaseConfig{Driver: "sqlserver", Server: "db", Port: 1433, Name: "hr", User: "u", Password: "p"},
			wantDriver: "sqlserver",
			wantDSN:    "sqlserver://u:p@db:1433?database=hr",
		},
		{
			name:       "postgres defaults port",
			db:         config.DatabaseConfig{Driver: "postgres", Server: "pg", Name: "hr", User: "app", Password: "app"},
			wantDriver: "pgx",
			wantDSN:    "postgres://app:app@pg:5432/hr?sslmode=disable",
		},
		{
			name:       "sqlite file",
			db:         config.DatabaseConfig{Driver: "sqlite", Name: "hr.db"},
			wantDriver: "sqlite",
			wantDSN:    "hr.db",
		},
		{
			name:       "explicit dsn wins",
			db:         config.DatabaseConfig{Driver: "postgres", DSN: "postgres://x/y", Server: "ignored"},
			wantDriver: "pgx",
			wantDSN:    "postgres://x/y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverName, dsn, err := DSN(tt.db)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driverName)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}

	_, _, err := DSN(config.DatabaseConfig{Driver: "sqlite"})
	assert.Error(t, err)

	_, _, err = DSN(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
