package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/store"
	"github.com/iov-one/soulbound/x/admin"
	"github.com/stretchr/testify/require"
)

const (
	mintFee     = 100
	maxSupply   = 3
	mintStart   = 1000
	holderPrice = 10
	normalPrice = 25
)

type routes map[string]soulbound.Handler

func (r routes) Handle(path string, h soulbound.Handler) {
	r[path] = h
}

// ledger is a test fixture with an initialized admin state and a single
// collection.
type ledger struct {
	t          testing.TB
	db         soulbound.CacheableKVStore
	auth       *soulboundtest.CtxAuth
	routes     routes
	now        time.Time
	admin      soulbound.Address
	collection soulbound.Address
}

func newLedger(t testing.TB) *ledger {
	t.Helper()
	l := &ledger{
		t:          t,
		db:         store.MemStore(),
		auth:       &soulboundtest.CtxAuth{Key: "reservation"},
		routes:     make(routes),
		now:        time.Unix(2000, 0),
		admin:      soulboundtest.NewAddress(),
		collection: soulboundtest.NewAddress(),
	}
	admin.RegisterRoutes(l.routes, l.auth)
	RegisterRoutes(l.routes, l.auth)

	_, err := l.deliver(l.admin, &admin.InitMsg{
		WithdrawWallet:       soulboundtest.NewAddress().Bytes(),
		PaymentMint:          soulboundtest.NewAddress().Bytes(),
		MintFee:              mintFee,
		MaxSupply:            maxSupply,
		MintStartDate:        mintStart,
		DonglePriceNftHolder: holderPrice,
		DonglePriceNormal:    normalPrice,
	})
	require.NoError(t, err)
	_, err = l.deliver(l.admin, &CreateCollectionMsg{
		Mint:           l.collection.Bytes(),
		Name:           "Genesis Pass",
		Symbol:         "PASS",
		Uri:            "https://example.com/pass.json",
		AdminMintLimit: 1,
	})
	require.NoError(t, err)
	return l
}

func (l *ledger) ctx(signer soulbound.Address) soulbound.Context {
	ctx := soulbound.WithBlockTime(context.Background(), l.now)
	return l.auth.SetSigners(ctx, signer)
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

// mint issues a fresh token to owner and returns its mint.
func (l *ledger) mint(owner soulbound.Address) soulbound.Address {
	l.t.Helper()
	mint := soulboundtest.NewAddress()
	_, err := l.deliver(owner, l.mintMsg(mint))
	require.NoError(l.t, err)
	return mint
}

func (l *ledger) mintMsg(mint soulbound.Address) *MintNFTMsg {
	return &MintNFTMsg{
		Mint:       mint.Bytes(),
		Collection: l.collection.Bytes(),
		Name:       "Pass #1",
		Symbol:     "PASS",
		Uri:        "https://example.com/1.json",
	}
}

func (l *ledger) state() *admin.AdminState {
	l.t.Helper()
	s, err := admin.NewBucket().Load(l.db)
	require.NoError(l.t, err)
	return s
}

func (l *ledger) user(owner soulbound.Address) *User {
	l.t.Helper()
	u, err := NewUserBucket().Load(l.db, owner)
	require.NoError(l.t, err)
	return u
}

func (l *ledger) collectionRecord() *Collection {
	l.t.Helper()
	c, err := NewCollectionBucket().Load(l.db, l.collection)
	require.NoError(l.t, err)
	return c
}

func (l *ledger) updateState(fn func(*admin.AdminState)) {
	l.t.Helper()
	s := l.state()
	fn(s)
	require.NoError(l.t, admin.NewBucket().Save(l.db, s))
}
