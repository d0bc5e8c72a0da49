package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestFromContext_FallsBackToGlobal ensures an empty context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithNameAndKV verifies that names and fields from the context reach the log entry.
func TestWithNameAndKV(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)

	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "resolver")
	ctx = WithKV(ctx, "root", "/src")

	InfoKV(ctx, "Resolved version", "version", "1.2.3")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "resolver", entries[0].LoggerName)
	require.Equal(t, "Resolved version", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "/src", fields["root"])
	require.Equal(t, "1.2.3", fields["version"])
}
