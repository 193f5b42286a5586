package tracing_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/transport-sync/internal/config"
	"github.com/SergeyBogomolovv/transport-sync/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("disabled is a no-op", func(t *testing.T) {
		p, err := tracing.New(config.Tracing{})
		require.NoError(t, err)
		assert.NoError(t, p.Shutdown(context.Background()))
	})

	t.Run("enabled", func(t *testing.T) {
		p, err := tracing.New(config.Tracing{
			Enabled:     true,
			Endpoint:    "http://localhost:14268/api/traces",
			ServiceName: "transport-sync-test",
		})
		require.NoError(t, err)
		assert.NoError(t, p.Shutdown(context.Background()))
	})
}
