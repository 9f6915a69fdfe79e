package admin

import (
	"context"
	"testing"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/store"
	"github.com/stretchr/testify/require"
)

// routes collects the registered handlers by path.
type routes map[string]soulbound.Handler

func (r routes) Handle(path string, h soulbound.Handler) {
	r[path] = h
}

// ledger is a test fixture with an initialized admin state.
type ledger struct {
	t      testing.TB
	db     soulbound.CacheableKVStore
	auth   *soulboundtest.CtxAuth
	routes routes
	admins []soulbound.Address
}

// newLedger initializes the admin state with all five signer slots taken.
func newLedger(t testing.TB) *ledger {
	t.Helper()
	l := &ledger{
		t:      t,
		db:     store.MemStore(),
		auth:   &soulboundtest.CtxAuth{Key: "admin"},
		routes: make(routes),
		admins: soulboundtest.NewAddresses(5),
	}
	RegisterRoutes(l.routes, l.auth)

	vice := make([][]byte, 0, 4)
	for _, a := range l.admins[1:] {
		vice = append(vice, a.Bytes())
	}
	_, err := l.deliver(l.admins[0], &InitMsg{
		WithdrawWallet: soulboundtest.NewAddress().Bytes(),
		PaymentMint:    soulboundtest.NewAddress().Bytes(),
		MintFee:        100,
		ViceAdmins:     vice,
	})
	require.NoError(t, err)
	return l
}

func (l *ledger) ctx(signer soulbound.Address) soulbound.Context {
	return l.auth.SetSigners(context.Background(), signer)
}

func (l *ledger) deliver(signer soulbound.Address, msg soulbound.Msg) (*soulbound.DeliverResult, error) {
	h, ok := l.routes[msg.Path()]
	require.True(l.t, ok, "no handler for %s", msg.Path())
	return h.Deliver(l.ctx(signer), l.db, &soulboundtest.Tx{Msg: msg})
}

func (l *ledger) check(signer soulbound.Address, msg soulbound.Msg) (*soulbound.CheckResult, error) {
	h, ok := l.routes[msg.Path()]
	require.True(l.t, ok, "no handler for %s", msg.Path())
	return h.Check(l.ctx(signer), l.db, &soulboundtest.Tx{Msg: msg})
}

func (l *ledger) state() *AdminState {
	l.t.Helper()
	s, err := NewBucket().Load(l.db)
	require.NoError(l.t, err)
	return s
}

func (l *ledger) update(fn func(*AdminState)) {
	l.t.Helper()
	s := l.state()
	fn(s)
	require.NoError(l.t, NewBucket().Save(l.db, s))
}
