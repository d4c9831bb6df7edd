package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos/pkg/config"
	"cafepos/pkg/logger"
	"cafepos/pkg/printer"
	"cafepos/pkg/session"
)

func TestInMemoryBackends(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()
	var cfg config.Config

	c, closer, err := OpenCatalog(ctx, cfg, log)
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, 13, c.Len())
	assert.Equal(t, "1. Coffee - €1.50", c.MenuLines("€")[0])

	store, closer, err := OpenSessions(ctx, cfg, log)
	require.NoError(t, err)
	defer closer.Close()
	assert.IsType(t, &session.MemoryStore{}, store)

	q, closer, err := OpenPrinter(ctx, cfg, log)
	require.NoError(t, err)
	defer closer.Close()
	assert.IsType(t, printer.LogQueue{}, q)
}
