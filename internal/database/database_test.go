package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("fails with invalid connection string", func(t *testing.T) {
		ctx := context.Background()
		pool, err := Connect(ctx, "invalid://connection")
		require.Error(t, err)
		require.Nil(t, pool)
	})

	t.Run("fails with unreachable host", func(t *testing.T) {
		ctx := context.Background()
		pool, err := Connect(ctx, "postgres://localhost:59999/nonexistent?connect_timeout=1")
		require.Error(t, err)
		require.Nil(t, pool)
	})

	t.Run("fails when context expires", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()

		pool, err := Connect(ctx, "postgres://localhost:59999/nonexistent?connect_timeout=1")
		require.Error(t, err)
		require.Nil(t, pool)
	})
}

// TestConnect_WithMalformedURL tests connection with various malformed URLs.
func TestConnect_WithMalformedURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing protocol", url: "localhost:5432/test"},
		{name: "invalid protocol", url: "http://localhost:5432/test"},
		{name: "invalid port", url: "postgres://localhost:notaport/test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := Connect(context.Background(), tt.url)
			require.Error(t, err)
			require.Nil(t, pool)
		})
	}
}

func TestConnect_WithValidConnection(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	var result int
	err = pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err)
	require.Equal(t, 1, result)
}
