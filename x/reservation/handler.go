package reservation

import (
	"strconv"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/x"
	"github.com/iov-one/soulbound/x/admin"
)

const (
	tagAction   = "action"
	tagSigner   = "signer"
	tagMint     = "nft_mint"
	tagOwner    = "owner"
	tagAmount   = "amount"
	tagReserved = "reserved"
)

// RegisterRoutes registers handlers for reservation message processing.
func RegisterRoutes(r soulbound.Registry, auth x.Authenticator) {
	b := newBuckets()
	r.Handle(pathCreateCollectionMsg, &CreateCollectionHandler{auth: auth, b: b})
	r.Handle(pathMintNFTMsg, &MintHandler{auth: auth, b: b})
	r.Handle(pathAdminMintNFTMsg, &AdminMintHandler{auth: auth, b: b})
	r.Handle(pathBatchReserveMsg, &BatchReserveHandler{auth: auth, b: b})
	r.Handle(pathBurnNFTMsg, &BurnHandler{auth: auth, b: b})
	r.Handle(pathUpdateNFTMetadataMsg, &MetadataHandler{auth: auth, b: b})
	r.Handle(pathPurchaseDongleMsg, &DongleHandler{auth: auth, b: b})
	r.Handle(pathTransferNFTMsg, TransferHandler{})
}

// mutation computes the records a message changes without writing them.
type mutation func(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*changes, *soulbound.DeliverResult, error)

func check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx, m mutation) (*soulbound.CheckResult, error) {
	_, res, err := m(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &soulbound.CheckResult{Log: res.Log}, nil
}

func deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx, b buckets, m mutation) (*soulbound.DeliverResult, error) {
	c, res, err := m(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := c.apply(db, b.admin); err != nil {
		return nil, err
	}
	return res, nil
}

func signer(ctx soulbound.Context, auth x.Authenticator) (soulbound.Address, error) {
	s := x.MainSigner(ctx, auth)
	if s == nil {
		return soulbound.Address{}, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return *s, nil
}

// CreateCollectionHandler registers a collection. Super admin only.
type CreateCollectionHandler struct {
	auth x.Authenticator
	b    buckets
}

var _ soulbound.Handler = (*CreateCollectionHandler)(nil)

func (h CreateCollectionHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.create)
}

func (h CreateCollectionHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.b, h.create)
}

func (h CreateCollectionHandler) create(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*changes, *soulbound.DeliverResult, error) {
	var msg CreateCollectionMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	_, caller, err := admin.LoadSuperAdmin(ctx, db, h.auth, h.b.admin)
	if err != nil {
		return nil, nil, err
	}
	now, err := soulbound.MustBlockTime(ctx)
	if err != nil {
		return nil, nil, err
	}
	switch ok, err := h.b.collections.Has(db, msg.Mint); {
	case err != nil:
		return nil, nil, err
	case ok:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "collection mint taken")
	}

	var c changes
	c.put(h.b.collections.ModelBucket, msg.Mint, &Collection{
		Name:           msg.Name,
		Symbol:         msg.Symbol,
		Uri:            msg.Uri,
		CreatedAt:      now.Unix(),
		Verified:       true,
		AdminMintLimit: msg.AdminMintLimit,
	})

	mint := addressString(msg.Mint)
	soulbound.GetLogger(ctx).Info("collection created",
		"signer", caller, "collection", mint, "name", msg.Name, "admin_mint_limit", msg.AdminMintLimit)
	return &c, &soulbound.DeliverResult{
		Data: msg.Mint,
		Log:  "collection created",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathCreateCollectionMsg},
			{Key: tagSigner, Value: caller.String()},
			{Key: "collection", Value: mint},
		},
	}, nil
}

// MintHandler reserves a soulbound token for the signer.
type MintHandler struct {
	auth x.Authenticator
	b    buckets
}

var _ soulbound.Handler = (*MintHandler)(nil)

func (h MintHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.mint)
}

func (h MintHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.b, h.mint)
}

func (h MintHandler) mint(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*changes, *soulbound.DeliverResult, error) {
	var msg MintNFTMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	state, err := h.b.admin.Load(db)
	if err != nil {
		return nil, nil, err
	}
	now, err := soulbound.MustBlockTime(ctx)
	if err != nil {
		return nil, nil, err
	}
	if now.Unix() < state.MintStartDate {
		return nil, nil, errors.Wrapf(ErrMintNotStarted, "starts at %d", state.MintStartDate)
	}
	c, err := h.b.issue(db, state, issuance{
		mint:       msg.Mint,
		collection: msg.Collection,
		owner:      caller,
		name:       msg.Name,
		symbol:     msg.Symbol,
		uri:        msg.Uri,
		mintedAt:   now.Unix(),
	})
	if err != nil {
		return nil, nil, err
	}
	if err := state.Deposit(state.MintFee); err != nil {
		return nil, nil, err
	}

	mint := addressString(msg.Mint)
	soulbound.GetLogger(ctx).Info("nft minted",
		"owner", caller, "nft_mint", mint, "fee", state.MintFee, "reserved", state.ReservedCount)
	return c, &soulbound.DeliverResult{
		Data: msg.Mint,
		Log:  "nft minted",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathMintNFTMsg},
			{Key: tagSigner, Value: caller.String()},
			{Key: tagMint, Value: mint},
			{Key: tagAmount, Value: strconv.FormatUint(state.MintFee, 10)},
			{Key: tagReserved, Value: strconv.FormatUint(state.ReservedCount, 10)},
		},
	}, nil
}

// AdminMintHandler issues a free token out of the collection admin quota.
type AdminMintHandler struct {
	auth x.Authenticator
	b    buckets
}

var _ soulbound.Handler = (*AdminMintHandler)(nil)

func (h AdminMintHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.mint)
}

func (h AdminMintHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.b, h.mint)
}

func (h AdminMintHandler) mint(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*changes, *soulbound.DeliverResult, error) {
	var msg AdminMintNFTMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	state, caller, err := admin.LoadSuperAdmin(ctx, db, h.auth, h.b.admin)
	if err != nil {
		return nil, nil, err
	}
	now, err := soulbound.MustBlockTime(ctx)
	if err != nil {
		return nil, nil, err
	}
	recipient, err := soulbound.MustAddressFromBytes(msg.Recipient)
	if err != nil {
		return nil, nil, errors.Wrap(err, "recipient")
	}
	c, err := h.b.issue(db, state, issuance{
		mint:       msg.Mint,
		collection: msg.Collection,
		owner:      recipient,
		name:       msg.Name,
		symbol:     msg.Symbol,
		uri:        msg.Uri,
		mintedAt:   now.Unix(),
		admin:      true,
	})
	if err != nil {
		return nil, nil, err
	}

	mint := addressString(msg.Mint)
	soulbound.GetLogger(ctx).Info("nft minted by admin",
		"signer", caller, "owner", recipient, "nft_mint", mint, "reserved", state.ReservedCount)
	return c, &soulbound.DeliverResult{
		Data: msg.Mint,
		Log:  "nft minted by admin",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathAdminMintNFTMsg},
			{Key: tagSigner, Value: caller.String()},
			{Key: tagOwner, Value: recipient.String()},
			{Key: tagMint, Value: mint},
			{Key: tagReserved, Value: strconv.FormatUint(state.ReservedCount, 10)},
		},
	}, nil
}

// issuance describes a token about to be created.
type issuance struct {
	mint       []byte
	collection []byte
	owner      soulbound.Address
	name       string
	symbol     string
	uri        string
	mintedAt   int64
	admin      bool
}

// issue books a reservation on the admin state and returns the records of
// the new token. The admin state itself is part of the returned changes.
func (b buckets) issue(db soulbound.ReadOnlyKVStore, state *admin.AdminState, in issuance) (*changes, error) {
	collection, err := soulbound.MustAddressFromBytes(in.collection)
	if err != nil {
		return nil, errors.Wrap(err, "collection")
	}
	col, err := b.collections.Load(db, collection)
	if err != nil {
		return nil, err
	}
	user, err := b.users.Load(db, in.owner)
	if err != nil {
		return nil, err
	}
	if user.HasNFT() {
		return nil, errors.Wrapf(ErrUserAlreadyHasNFT, "%s holds %s", in.owner, addressString(user.NftMint))
	}
	switch ok, err := b.nfts.Has(db, in.mint); {
	case err != nil:
		return nil, err
	case ok:
		return nil, errors.Wrap(errors.ErrDuplicate, "nft mint taken")
	}

	if in.admin {
		if col.AdminMintCount >= col.AdminMintLimit {
			return nil, errors.Wrapf(ErrAdminMintLimitReached, "%d of %d", col.AdminMintCount, col.AdminMintLimit)
		}
		if col.AdminMintCount, err = increment(col.AdminMintCount, "admin mint count"); err != nil {
			return nil, err
		}
	}
	if err := state.Reserve(1); err != nil {
		return nil, err
	}
	if col.MintedCount, err = increment(col.MintedCount, "minted count"); err != nil {
		return nil, err
	}
	user.NftMint = in.mint

	c := &changes{state: state}
	c.put(b.collections.ModelBucket, in.collection, col)
	c.put(b.users.ModelBucket, in.owner.Bytes(), user)
	c.put(b.nfts.ModelBucket, in.mint, &NFT{
		Owner:       in.owner.Bytes(),
		Collection:  in.collection,
		Name:        in.name,
		Symbol:      in.symbol,
		Uri:         in.uri,
		Frozen:      true,
		AdminMinted: in.admin,
		MintedAt:    in.mintedAt,
	})
	return c, nil
}

// BatchReserveHandler pays for several reservations at once.
type BatchReserveHandler struct {
	auth x.Authenticator
	b    buckets
}

var _ soulbound.Handler = (*BatchReserveHandler)(nil)

func (h BatchReserveHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.reserve)
}

func (h BatchReserveHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.b, h.reserve)
}

func (h BatchReserveHandler) reserve(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*changes, *soulbound.DeliverResult, error) {
	var msg BatchReserveMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	state, err := h.b.admin.Load(db)
	if err != nil {
		return nil, nil, err
	}
	fee, err := batchFee(state.MintFee, msg.Count)
	if err != nil {
		return nil, nil, err
	}
	if err := state.Reserve(msg.Count); err != nil {
		return nil, nil, err
	}
	if err := state.Deposit(fee); err != nil {
		return nil, nil, err
	}

	soulbound.GetLogger(ctx).Info("batch reserved",
		"signer", caller, "count", msg.Count, "fee", fee, "reserved", state.ReservedCount)
	return &changes{state: state}, &soulbound.DeliverResult{
		Log: strconv.FormatUint(msg.Count, 10) + " reserved",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathBatchReserveMsg},
			{Key: tagSigner, Value: caller.String()},
			{Key: tagAmount, Value: strconv.FormatUint(fee, 10)},
			{Key: tagReserved, Value: strconv.FormatUint(state.ReservedCount, 10)},
		},
	}, nil
}

// BurnHandler destroys a token. Only the owner can burn it.
type BurnHandler struct {
	auth x.Authenticator
	b    buckets
}

var _ soulbound.Handler = (*BurnHandler)(nil)

func (h BurnHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.burn)
}

func (h BurnHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.b, h.burn)
}

func (h BurnHandler) burn(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*changes, *soulbound.DeliverResult, error) {
	var msg BurnNFTMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	mint, err := soulbound.MustAddressFromBytes(msg.Mint)
	if err != nil {
		return nil, nil, err
	}
	nft, err := h.b.nfts.Load(db, mint)
	if err != nil {
		return nil, nil, err
	}
	if !nft.IsOwner(caller) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the token owner")
	}
	state, err := h.b.admin.Load(db)
	if err != nil {
		return nil, nil, err
	}
	if err := state.Release(); err != nil {
		return nil, nil, err
	}
	user, err := h.b.users.Load(db, caller)
	if err != nil {
		return nil, nil, err
	}
	user.NftMint = nil

	c := &changes{state: state}
	c.remove(h.b.nfts.ModelBucket, msg.Mint)
	c.put(h.b.users.ModelBucket, caller.Bytes(), user)

	soulbound.GetLogger(ctx).Info("nft burned",
		"owner", caller, "nft_mint", mint, "reserved", state.ReservedCount)
	return c, &soulbound.DeliverResult{
		Log: "nft burned",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathBurnNFTMsg},
			{Key: tagSigner, Value: caller.String()},
			{Key: tagMint, Value: mint.String()},
			{Key: tagReserved, Value: strconv.FormatUint(state.ReservedCount, 10)},
		},
	}, nil
}

// MetadataHandler replaces the metadata of a token. Super admin only.
type MetadataHandler struct {
	auth x.Authenticator
	b    buckets
}

var _ soulbound.Handler = (*MetadataHandler)(nil)

func (h MetadataHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.update)
}

func (h MetadataHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.b, h.update)
}

func (h MetadataHandler) update(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*changes, *soulbound.DeliverResult, error) {
	var msg UpdateNFTMetadataMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	_, caller, err := admin.LoadSuperAdmin(ctx, db, h.auth, h.b.admin)
	if err != nil {
		return nil, nil, err
	}
	mint, err := soulbound.MustAddressFromBytes(msg.Mint)
	if err != nil {
		return nil, nil, err
	}
	nft, err := h.b.nfts.Load(db, mint)
	if err != nil {
		return nil, nil, err
	}
	nft.Name = msg.Name
	nft.Symbol = msg.Symbol
	nft.Uri = msg.Uri

	var c changes
	c.put(h.b.nfts.ModelBucket, msg.Mint, nft)

	soulbound.GetLogger(ctx).Info("nft metadata updated", "signer", caller, "nft_mint", mint, "uri", msg.Uri)
	return &c, &soulbound.DeliverResult{
		Log: "nft metadata updated",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathUpdateNFTMetadataMsg},
			{Key: tagSigner, Value: caller.String()},
			{Key: tagMint, Value: mint.String()},
		},
	}, nil
}

// DongleHandler sells a dongle. Token holders pay the discounted price.
type DongleHandler struct {
	auth x.Authenticator
	b    buckets
}

var _ soulbound.Handler = (*DongleHandler)(nil)

func (h DongleHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.purchase)
}

func (h DongleHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.b, h.purchase)
}

func (h DongleHandler) purchase(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*changes, *soulbound.DeliverResult, error) {
	var msg PurchaseDongleMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	state, err := h.b.admin.Load(db)
	if err != nil {
		return nil, nil, err
	}
	if !state.PurchaseStarted {
		return nil, nil, errors.Wrap(ErrPurchaseNotStarted, "dongle sales closed")
	}
	user, err := h.b.users.Load(db, caller)
	if err != nil {
		return nil, nil, err
	}
	price := donglePrice(state, user)
	if err := state.Deposit(price); err != nil {
		return nil, nil, err
	}
	if user.DonglesPurchased, err = increment(user.DonglesPurchased, "dongles purchased"); err != nil {
		return nil, nil, err
	}

	c := &changes{state: state}
	c.put(h.b.users.ModelBucket, caller.Bytes(), user)

	soulbound.GetLogger(ctx).Info("dongle purchased",
		"buyer", caller, "price", price, "holder", user.HasNFT(), "purchased", user.DonglesPurchased)
	return c, &soulbound.DeliverResult{
		Log: "dongle purchased",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathPurchaseDongleMsg},
			{Key: tagSigner, Value: caller.String()},
			{Key: tagAmount, Value: strconv.FormatUint(price, 10)},
		},
	}, nil
}

// TransferHandler refuses every transfer.
type TransferHandler struct{}

var _ soulbound.Handler = TransferHandler{}

func (TransferHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return nil, refuseTransfer(tx)
}

func (TransferHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return nil, refuseTransfer(tx)
}

func refuseTransfer(tx soulbound.Tx) error {
	var msg TransferNFTMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	return errors.Wrapf(ErrSoulbound, "%s cannot be transferred", addressString(msg.Mint))
}

func addressString(raw []byte) string {
	a, err := soulbound.AddressFromBytes(raw)
	if err != nil || a == nil {
		return ""
	}
	return a.String()
}
