package soulbound

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/iov-one/soulbound/errors"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestChainID(t *testing.T) {
	ctx := context.Background()
	require.Panics(t, func() { GetChainID(ctx) })
	require.Panics(t, func() { WithChainID(ctx, "bad") })

	ctx = WithChainID(ctx, "reservation-test")
	require.Equal(t, "reservation-test", GetChainID(ctx))
	require.Panics(t, func() { WithChainID(ctx, "reservation-other") })
}

func TestBlockTime(t *testing.T) {
	ctx := context.Background()
	_, err := MustBlockTime(ctx)
	require.True(t, errors.ErrHuman.Is(err))

	now := time.Unix(1700000000, 0)
	ctx = WithBlockTime(ctx, now)
	got, err := MustBlockTime(ctx)
	require.NoError(t, err)
	require.Equal(t, now, got)
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, DefaultLogger, GetLogger(ctx))

	var buf bytes.Buffer
	logger := log.NewTMLogger(log.NewSyncWriter(&buf))
	ctx = WithLogger(ctx, logger)
	require.Equal(t, logger, GetLogger(ctx))

	ctx = WithLogInfo(ctx, "module", "admin")
	GetLogger(ctx).Info("proposal created")
	require.Contains(t, buf.String(), "module=admin")
	require.Contains(t, buf.String(), "proposal created")
}
