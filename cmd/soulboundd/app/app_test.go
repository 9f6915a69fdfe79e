package app_test

import (
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/app"
	soulboundd "github.com/iov-one/soulbound/cmd/soulboundd/app"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/soulboundtest/assert"
	"github.com/iov-one/soulbound/x/admin"
	"github.com/iov-one/soulbound/x/reservation"
	"github.com/iov-one/soulbound/x/sigs"
	"github.com/stretchr/testify/require"
)

const chainID = "soulbound-test"

type fixture struct {
	t          *testing.T
	app        *app.App
	admins     []solana.PrivateKey
	collection soulbound.Address
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	admins := []solana.PrivateKey{
		soulboundtest.NewKey(),
		soulboundtest.NewKey(),
		soulboundtest.NewKey(),
	}
	gen, err := soulboundd.GenInitOptions(chainID, soulboundd.GenesisParams{
		SuperAdmin:           admins[0].PublicKey(),
		ViceAdmins:           []soulbound.Address{admins[1].PublicKey(), admins[2].PublicKey()},
		PaymentMint:          soulboundtest.NewAddress(),
		MintFee:              100,
		MaxSupply:            2,
		MintStartDate:        1000,
		DonglePriceNftHolder: 10,
		DonglePriceNormal:    25,
		PurchaseStarted:      true,
	})
	require.NoError(t, err)

	db, err := soulboundd.CommitKVStore("")
	require.NoError(t, err)
	a, err := soulboundd.Application("soulboundd-test", db)
	require.NoError(t, err)
	_, err = a.InitChain(gen)
	require.NoError(t, err)

	f := &fixture{t: t, app: a, admins: admins, now: time.Unix(2000, 0)}
	f.collection = soulboundtest.NewAddress()
	_, err = f.deliver(admins[0], &reservation.CreateCollectionMsg{
		Mint:   f.collection.Bytes(),
		Name:   "Reservation",
		Symbol: "RSV",
		Uri:    "https://example.com/collection.json",
	})
	require.NoError(t, err)
	_, err = a.Commit()
	require.NoError(t, err)
	return f
}

func (f *fixture) signed(key solana.PrivateKey, msg soulbound.Msg) []byte {
	f.t.Helper()
	tx, err := app.NewTx(msg)
	require.NoError(f.t, err)
	seq, err := sigs.NextSequence(f.app.ReadStore(), key.PublicKey())
	require.NoError(f.t, err)
	require.NoError(f.t, tx.Sign(key, chainID, seq))
	raw, err := tx.Encode()
	require.NoError(f.t, err)
	return raw
}

func (f *fixture) deliver(key solana.PrivateKey, msg soulbound.Msg) (*soulbound.DeliverResult, error) {
	return f.app.DeliverTx(f.now, f.signed(key, msg))
}

func (f *fixture) mintMsg() *reservation.MintNFTMsg {
	return &reservation.MintNFTMsg{
		Mint:       soulboundtest.NewAddress().Bytes(),
		Collection: f.collection.Bytes(),
		Name:       "Pass",
		Symbol:     "PASS",
		Uri:        "https://example.com/pass.json",
	}
}

func (f *fixture) state() *admin.AdminState {
	f.t.Helper()
	s, err := admin.NewBucket().Load(f.app.ReadStore())
	require.NoError(f.t, err)
	return s
}

func TestRouterRegistersEveryExtension(t *testing.T) {
	r := soulboundd.Router(soulboundd.Authenticator())
	assert.Equal(t, 17, r.Len())
}

func TestGenInitOptions(t *testing.T) {
	super := soulboundtest.NewAddress()

	_, err := soulboundd.GenInitOptions("", soulboundd.GenesisParams{SuperAdmin: super})
	assert.IsErr(t, errors.ErrEmpty, err)
	_, err = soulboundd.GenInitOptions(chainID, soulboundd.GenesisParams{})
	assert.IsErr(t, errors.ErrEmpty, err)
	_, err = soulboundd.GenInitOptions(chainID, soulboundd.GenesisParams{
		SuperAdmin: super,
		ViceAdmins: soulboundtest.NewAddresses(5),
	})
	assert.IsErr(t, errors.ErrInput, err)

	gen, err := soulboundd.GenInitOptions(chainID, soulboundd.GenesisParams{
		SuperAdmin:  super,
		PaymentMint: soulboundtest.NewAddress(),
	})
	require.NoError(t, err)
	assert.Equal(t, chainID, gen.ChainID)
	require.Contains(t, gen.AppOptions, "admin")
}

func TestReservationLifecycle(t *testing.T) {
	f := newFixture(t)
	holder := soulboundtest.NewKey()

	mint := f.mintMsg()
	res, err := f.deliver(holder, mint)
	require.NoError(t, err)
	assert.Equal(t, "100", res.Tag("amount"))
	assert.Equal(t, "1", res.Tag("reserved"))

	_, err = f.deliver(holder, f.mintMsg())
	assert.IsErr(t, reservation.ErrUserAlreadyHasNFT, err)

	_, err = f.deliver(holder, &reservation.TransferNFTMsg{
		Mint:      mint.Mint,
		Recipient: soulboundtest.NewAddress().Bytes(),
	})
	assert.IsErr(t, reservation.ErrSoulbound, err)

	res, err = f.deliver(holder, &reservation.PurchaseDongleMsg{})
	require.NoError(t, err)
	assert.Equal(t, "10", res.Tag("amount"))

	res, err = f.deliver(soulboundtest.NewKey(), &reservation.PurchaseDongleMsg{})
	require.NoError(t, err)
	assert.Equal(t, "25", res.Tag("amount"))

	_, err = f.deliver(holder, &reservation.BurnNFTMsg{Mint: mint.Mint})
	require.NoError(t, err)

	s := f.state()
	assert.Equal(t, uint64(135), s.VaultBalance)
	assert.Equal(t, uint64(0), s.ReservedCount)

	id, err := f.app.Commit()
	require.NoError(t, err)
	// genesis, collection, then the delivered block
	assert.Equal(t, int64(3), id.Version)
}

func TestSupplyIsShared(t *testing.T) {
	f := newFixture(t)

	_, err := f.deliver(f.admins[0], &reservation.BatchReserveMsg{Count: 2})
	require.NoError(t, err)
	_, err = f.deliver(soulboundtest.NewKey(), f.mintMsg())
	assert.IsErr(t, reservation.ErrMaxSupplyReached, err)

	// the failed mint left nothing behind
	assert.Equal(t, uint64(2), f.state().ReservedCount)
}

func TestMintBeforeStartDate(t *testing.T) {
	f := newFixture(t)
	f.now = time.Unix(999, 0)

	_, err := f.deliver(soulboundtest.NewKey(), f.mintMsg())
	assert.IsErr(t, reservation.ErrMintNotStarted, err)
}

func TestCheckDoesNotConsumeSequence(t *testing.T) {
	f := newFixture(t)
	key := soulboundtest.NewKey()

	// rejected in check, the sequence stays at zero
	f.now = time.Unix(999, 0)
	_, err := f.app.CheckTx(f.now, f.signed(key, f.mintMsg()))
	assert.IsErr(t, reservation.ErrMintNotStarted, err)

	f.now = time.Unix(2000, 0)
	_, err = f.app.CheckTx(f.now, f.signed(key, f.mintMsg()))
	require.NoError(t, err)
}
