/*
Package app contains standard implementations of a number of components.
It is the glue between the extensions and the store: a Router that
dispatches messages, a decorator chain builder, the wire transaction and
the App that delivers transactions against a versioned store.
*/
package app

import (
	"context"
	"time"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// App delivers transactions to a handler stack. Delivered state lives in a
// cache until Commit persists a new version.
type App struct {
	name        string
	logger      log.Logger
	store       *CommitStore
	decoder     soulbound.TxDecoder
	handler     soulbound.Handler
	initializer soulbound.Initializer
	chainID     string
	debug       bool
}

// New loads the latest state from given store. The chain id is read back
// if the store was initialized before.
func New(name string, store soulbound.CommitKVStore, decoder soulbound.TxDecoder, handler soulbound.Handler, init soulbound.Initializer) (*App, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	return &App{
		name:        name,
		logger:      log.NewNopLogger(),
		store:       cs,
		decoder:     decoder,
		handler:     handler,
		initializer: init,
		chainID:     chainID,
	}, nil
}

// WithLogger sets the logger on the App and returns it, to make it easy to
// chain in initialization.
func (a *App) WithLogger(logger log.Logger) *App {
	a.logger = logger
	return a
}

// WithDebug exposes full error details, including stack traces, in
// results.
func (a *App) WithDebug(debug bool) *App {
	a.debug = debug
	return a
}

// ChainID returns the chain id set at genesis, or an empty string for an
// uninitialized store.
func (a *App) ChainID() string {
	return a.chainID
}

// InitChain stores the chain id and runs all initializers on the genesis
// options. The result is committed.
func (a *App) InitChain(g Genesis) (soulbound.CommitID, error) {
	cache := a.store.DeliverStore().CacheWrap()
	if err := a.initChain(cache, g); err != nil {
		cache.Discard()
		return soulbound.CommitID{}, err
	}
	if err := cache.Write(); err != nil {
		return soulbound.CommitID{}, errors.Wrap(err, "write genesis state")
	}
	a.chainID = g.ChainID
	a.logger.Info("genesis loaded", "chain_id", g.ChainID)
	return a.store.Commit()
}

func (a *App) initChain(db soulbound.KVStore, g Genesis) error {
	if err := saveChainID(db, g.ChainID); err != nil {
		return err
	}
	if a.initializer == nil {
		return nil
	}
	opts := g.AppOptions
	if opts == nil {
		opts = soulbound.Options{}
	}
	if err := a.initializer.FromGenesis(opts, db); err != nil {
		return errors.Wrap(err, "genesis")
	}
	return nil
}

// CheckTx validates a transaction against the check cache without changing
// the delivered state.
func (a *App) CheckTx(now time.Time, txBytes []byte) (*soulbound.CheckResult, error) {
	tx, ctx, err := a.prepare(now, txBytes, "check_tx")
	if err != nil {
		return nil, err
	}
	res, err := a.handler.Check(ctx, a.store.CheckStore(), tx)
	return res, a.redact(err)
}

// DeliverTx executes a transaction. Its writes become visible to later
// transactions and are persisted on Commit. A failed transaction leaves no
// state behind.
func (a *App) DeliverTx(now time.Time, txBytes []byte) (*soulbound.DeliverResult, error) {
	tx, ctx, err := a.prepare(now, txBytes, "deliver_tx")
	if err != nil {
		return nil, err
	}
	cache := a.store.DeliverStore().CacheWrap()
	res, err := a.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, a.redact(err)
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write delivered state")
	}
	return res, nil
}

// Commit persists all delivered transactions as a new version.
func (a *App) Commit() (soulbound.CommitID, error) {
	id, err := a.store.Commit()
	if err != nil {
		return id, err
	}
	a.logger.Info("commit", "version", id.Version)
	return id, nil
}

// CommitInfo returns the latest persisted version.
func (a *App) CommitInfo() (soulbound.CommitID, error) {
	return a.store.CommitInfo()
}

// ReadStore returns a view that includes delivered but not yet committed
// state.
func (a *App) ReadStore() soulbound.ReadOnlyKVStore {
	return a.store.DeliverStore()
}

func (a *App) prepare(now time.Time, txBytes []byte, call string) (tx soulbound.Tx, ctx soulbound.Context, err error) {
	if a.chainID == "" {
		return nil, nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	tx, err = a.loadTx(txBytes)
	if err != nil {
		return nil, nil, err
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	ctx = soulbound.WithChainID(context.Background(), a.chainID)
	ctx = soulbound.WithBlockTime(ctx, now)
	ctx = soulbound.WithLogger(ctx, a.logger)
	ctx = soulbound.WithLogInfo(ctx, "app", a.name, "call", call, "path", msg.Path())
	return tx, ctx, nil
}

// loadTx calls the decoder, and capture any panics
func (a *App) loadTx(txBytes []byte) (tx soulbound.Tx, err error) {
	defer errors.Recover(&err)
	return a.decoder(txBytes)
}

// redact hides internal error details unless running in debug mode.
func (a *App) redact(err error) error {
	return errors.Redact(err, a.debug)
}
