package app

import (
	"context"
	"testing"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/soulboundtest/assert"
	"github.com/iov-one/soulbound/store"
	"github.com/iov-one/soulbound/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &soulboundtest.Decorator{}
	c2 := &soulboundtest.Decorator{}
	var nilDecorator *soulboundtest.Decorator
	h := &soulboundtest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		nilDecorator,
		c2,
	).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &soulboundtest.Tx{}

	_, err := stack.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// a failing decorator stops the call before the handler
	c2.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 3, c1.CallCount())
	assert.Equal(t, 3, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainRecoversPanics(t *testing.T) {
	stack := ChainDecorators(utils.NewRecovery()).WithHandler(&soulboundtest.Handler{
		OnDeliver: func(soulbound.KVStore) { panic("boom") },
	})
	_, err := stack.Deliver(context.Background(), store.MemStore(), &soulboundtest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestChainAppend(t *testing.T) {
	c1 := &soulboundtest.Decorator{}
	c2 := &soulboundtest.Decorator{}
	base := ChainDecorators(c1)
	extended := base.Chain(c2)

	h := &soulboundtest.Handler{}
	_, err := base.WithHandler(h).Deliver(context.Background(), store.MemStore(), &soulboundtest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, 0, c2.CallCount())

	_, err = extended.WithHandler(h).Deliver(context.Background(), store.MemStore(), &soulboundtest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 1, c2.CallCount())
}
