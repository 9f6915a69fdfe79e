package admin

import (
	"strconv"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/multisig"
	"github.com/iov-one/soulbound/x"
)

const (
	tagAction    = "action"
	tagSigner    = "signer"
	tagApprovals = "approvals"
	tagThreshold = "threshold"
	tagAmount    = "amount"
	tagWallet    = "withdraw_wallet"

	thresholdPending = "pending"
	thresholdReached = "reached"
)

// RegisterRoutes registers handlers for admin message processing.
func RegisterRoutes(r soulbound.Registry, auth x.Authenticator) {
	bucket := NewBucket()
	r.Handle(pathInitMsg, &InitHandler{auth: auth, bucket: bucket})
	r.Handle(pathUpdateConfigMsg, &UpdateConfigHandler{auth: auth, bucket: bucket})
	r.Handle(pathUpdateWithdrawWalletMsg, &WithdrawWalletHandler{auth: auth, bucket: bucket})
	r.Handle(pathCancelWithdrawWalletMsg, &CancelWithdrawWalletHandler{auth: auth, bucket: bucket})
	r.Handle(pathSetAdminWalletsMsg, &AdminWalletsHandler{auth: auth, bucket: bucket})
	r.Handle(pathCancelAdminWalletsMsg, &CancelAdminWalletsHandler{auth: auth, bucket: bucket})
	r.Handle(pathUpdatePaymentMintMsg, &PaymentMintHandler{auth: auth, bucket: bucket})
	r.Handle(pathWithdrawMsg, &WithdrawHandler{auth: auth, bucket: bucket})
	r.Handle(pathWithdrawAllMsg, &WithdrawHandler{auth: auth, bucket: bucket})
}

// mutation computes the next admin state without writing it. Check runs it
// and drops the result, Deliver saves it.
type mutation func(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error)

func check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx, m mutation) (*soulbound.CheckResult, error) {
	_, res, err := m(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &soulbound.CheckResult{Log: res.Log}, nil
}

func deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx, b Bucket, m mutation) (*soulbound.DeliverResult, error) {
	state, res, err := m(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := b.Save(db, state); err != nil {
		return nil, errors.Wrap(err, "save admin state")
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

// LoadSuperAdmin returns the admin state if the transaction was signed by
// the super admin.
func LoadSuperAdmin(ctx soulbound.Context, db soulbound.ReadOnlyKVStore, auth x.Authenticator, b Bucket) (*AdminState, soulbound.Address, error) {
	caller, err := signer(ctx, auth)
	if err != nil {
		return nil, caller, err
	}
	state, err := b.Load(db)
	if err != nil {
		return nil, caller, err
	}
	if !state.IsSuperAdmin(caller) {
		return nil, caller, errors.Wrap(errors.ErrUnauthorized, "super admin only")
	}
	return state, caller, nil
}

// InitHandler creates the admin state, making the signer the super admin.
type InitHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ soulbound.Handler = (*InitHandler)(nil)

func (h InitHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.init)
}

func (h InitHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.bucket, h.init)
}

func (h InitHandler) init(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error) {
	var msg InitMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	switch ok, err := h.bucket.Exists(db); {
	case err != nil:
		return nil, nil, err
	case ok:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "admin state already initialized")
	}

	state := &AdminState{
		WithdrawWallet:       msg.WithdrawWallet,
		PaymentMint:          msg.PaymentMint,
		MintFee:              msg.MintFee,
		MaxSupply:            msg.MaxSupply,
		MintStartDate:        msg.MintStartDate,
		DonglePriceNftHolder: msg.DonglePriceNftHolder,
		DonglePriceNormal:    msg.DonglePriceNormal,
	}
	wallets := make([][]byte, multisig.MaxSigners)
	wallets[0] = caller.Bytes()
	copy(wallets[1:], msg.ViceAdmins)
	registry, err := registryFromBytes(wallets)
	if err != nil {
		return nil, nil, errors.Wrap(err, "vice admins")
	}
	if err := registry.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "vice admins")
	}
	state.SetRegistry(registry)

	soulbound.GetLogger(ctx).Info("admin state initialized",
		"super_admin", caller, "delegates", registry.Len()-1)
	return state, &soulbound.DeliverResult{
		Log: "admin state initialized",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathInitMsg},
			{Key: tagSigner, Value: caller.String()},
		},
	}, nil
}

// UpdateConfigHandler changes the sale configuration.
type UpdateConfigHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ soulbound.Handler = (*UpdateConfigHandler)(nil)

func (h UpdateConfigHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.update)
}

func (h UpdateConfigHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.bucket, h.update)
}

func (h UpdateConfigHandler) update(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error) {
	var msg UpdateConfigMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	state, caller, err := LoadSuperAdmin(ctx, db, h.auth, h.bucket)
	if err != nil {
		return nil, nil, err
	}

	if v := msg.MaxSupply; v != nil {
		if v.Value != 0 && v.Value < state.ReservedCount {
			return nil, nil, errors.Wrapf(ErrInvalidMaxSupply, "%d reserved, got %d", state.ReservedCount, v.Value)
		}
		state.MaxSupply = v.Value
	}
	if v := msg.MintFee; v != nil {
		state.MintFee = v.Value
	}
	if v := msg.MintStartDate; v != nil {
		state.MintStartDate = v.Value
	}
	if v := msg.DonglePriceNftHolder; v != nil {
		state.DonglePriceNftHolder = v.Value
	}
	if v := msg.DonglePriceNormal; v != nil {
		state.DonglePriceNormal = v.Value
	}
	if v := msg.PurchaseStarted; v != nil {
		state.PurchaseStarted = v.Value
	}
	if msg.OgCollection != nil {
		state.OgCollection = msg.OgCollection
	}
	if msg.DongleProofCollection != nil {
		state.DongleProofCollection = msg.DongleProofCollection
	}

	soulbound.GetLogger(ctx).Info("configuration updated", "signer", caller)
	return state, &soulbound.DeliverResult{
		Log: "configuration updated",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathUpdateConfigMsg},
			{Key: tagSigner, Value: caller.String()},
		},
	}, nil
}

// WithdrawWalletHandler proposes or approves a new withdraw wallet.
type WithdrawWalletHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ soulbound.Handler = (*WithdrawWalletHandler)(nil)

func (h WithdrawWalletHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.approve)
}

func (h WithdrawWalletHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.bucket, h.approve)
}

func (h WithdrawWalletHandler) approve(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error) {
	state, registry, caller, err := loadMember(ctx, db, h.auth, h.bucket)
	if err != nil {
		return nil, nil, err
	}
	var msg UpdateWithdrawWalletMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	tracker, err := state.WithdrawTracker()
	if err != nil {
		return nil, nil, errors.Wrap(err, "withdraw proposal")
	}
	wallet, err := soulbound.MustAddressFromBytes(msg.Wallet)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrInvalidProposedValue, err.Error())
	}

	res, err := tracker.ProposeOrApprove(registry, caller, multisig.Wallet(wallet))
	if err != nil {
		return nil, nil, err
	}
	if res.Applied {
		state.WithdrawWallet = wallet.Bytes()
	}
	state.SetWithdrawTracker(tracker)

	logApproval(ctx, "withdraw wallet", res.Caller, res.Approvals, res.Created, res.Applied, "wallet", wallet)
	return state, approvalResult(pathUpdateWithdrawWalletMsg, caller, res.Approvals, res.Applied), nil
}

// CancelWithdrawWalletHandler drops the pending withdraw wallet proposal.
type CancelWithdrawWalletHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ soulbound.Handler = (*CancelWithdrawWalletHandler)(nil)

func (h CancelWithdrawWalletHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.cancel)
}

func (h CancelWithdrawWalletHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.bucket, h.cancel)
}

func (h CancelWithdrawWalletHandler) cancel(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error) {
	var msg CancelWithdrawWalletMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	state, registry, err := loadRegistry(db, h.bucket)
	if err != nil {
		return nil, nil, err
	}
	tracker, err := state.WithdrawTracker()
	if err != nil {
		return nil, nil, errors.Wrap(err, "withdraw proposal")
	}
	cancelled, err := tracker.Cancel(registry, caller)
	if err != nil {
		return nil, nil, err
	}
	state.SetWithdrawTracker(tracker)

	soulbound.GetLogger(ctx).Info("withdraw wallet proposal cancelled", "signer", caller, "wallet", cancelled)
	return state, cancelResult(pathCancelWithdrawWalletMsg, caller), nil
}

// AdminWalletsHandler proposes or approves a new signer set.
type AdminWalletsHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ soulbound.Handler = (*AdminWalletsHandler)(nil)

func (h AdminWalletsHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.approve)
}

func (h AdminWalletsHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.bucket, h.approve)
}

func (h AdminWalletsHandler) approve(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error) {
	state, registry, caller, err := loadMember(ctx, db, h.auth, h.bucket)
	if err != nil {
		return nil, nil, err
	}
	var msg SetAdminWalletsMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	proposed, err := msg.Registry()
	if err != nil {
		return nil, nil, err
	}
	tracker, err := state.AdminTracker()
	if err != nil {
		return nil, nil, errors.Wrap(err, "admin proposal")
	}

	res, err := tracker.ProposeOrApprove(registry, caller, proposed)
	if err != nil {
		return nil, nil, err
	}
	result := approvalResult(pathSetAdminWalletsMsg, caller, res.Approvals, res.Applied)
	// Approvals of a pending withdraw wallet proposal reference slots,
	// they are dropped only when a slot changes hands.
	if res.Applied && !res.Value.Equal(registry) {
		state.SetRegistry(res.Value)
		if len(state.PendingWithdrawWallet) != 0 {
			result.Tags = append(result.Tags, soulbound.Tag{Key: "withdraw_proposal", Value: "reset"})
		}
		state.SetWithdrawTracker(multisig.Tracker[multisig.Wallet]{})
	}
	state.SetAdminTracker(tracker)

	logApproval(ctx, "admin wallets", res.Caller, res.Approvals, res.Created, res.Applied, "super_admin", proposed.SuperAdmin)
	return state, result, nil
}

// CancelAdminWalletsHandler drops the pending signer set proposal.
type CancelAdminWalletsHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ soulbound.Handler = (*CancelAdminWalletsHandler)(nil)

func (h CancelAdminWalletsHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.cancel)
}

func (h CancelAdminWalletsHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.bucket, h.cancel)
}

func (h CancelAdminWalletsHandler) cancel(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error) {
	var msg CancelAdminWalletsMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	state, registry, err := loadRegistry(db, h.bucket)
	if err != nil {
		return nil, nil, err
	}
	tracker, err := state.AdminTracker()
	if err != nil {
		return nil, nil, errors.Wrap(err, "admin proposal")
	}
	cancelled, err := tracker.Cancel(registry, caller)
	if err != nil {
		return nil, nil, err
	}
	state.SetAdminTracker(tracker)

	soulbound.GetLogger(ctx).Info("admin wallets proposal cancelled", "signer", caller, "super_admin", cancelled.SuperAdmin)
	return state, cancelResult(pathCancelAdminWalletsMsg, caller), nil
}

// PaymentMintHandler switches the payment token. The vault must be empty.
type PaymentMintHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ soulbound.Handler = (*PaymentMintHandler)(nil)

func (h PaymentMintHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.update)
}

func (h PaymentMintHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.bucket, h.update)
}

func (h PaymentMintHandler) update(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error) {
	var msg UpdatePaymentMintMsg
	if err := soulbound.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	state, caller, err := LoadSuperAdmin(ctx, db, h.auth, h.bucket)
	if err != nil {
		return nil, nil, err
	}
	if state.VaultBalance != 0 {
		return nil, nil, errors.Wrapf(ErrVaultNotEmpty, "%d left", state.VaultBalance)
	}
	if string(state.PaymentMint) == string(msg.PaymentMint) {
		return nil, nil, errors.Wrap(ErrSamePaymentMint, "nothing to change")
	}
	old := state.PaymentMint
	state.PaymentMint = msg.PaymentMint

	soulbound.GetLogger(ctx).Info("payment mint updated",
		"signer", caller, "old", addressString(old), "new", addressString(msg.PaymentMint))
	return state, &soulbound.DeliverResult{
		Log: "payment mint updated",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: pathUpdatePaymentMintMsg},
			{Key: tagSigner, Value: caller.String()},
		},
	}, nil
}

// WithdrawHandler moves funds from the vault to the withdraw wallet. It
// serves both the partial and the full withdrawal.
type WithdrawHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ soulbound.Handler = (*WithdrawHandler)(nil)

func (h WithdrawHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return check(ctx, db, tx, h.withdraw)
}

func (h WithdrawHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return deliver(ctx, db, tx, h.bucket, h.withdraw)
}

func (h WithdrawHandler) withdraw(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*AdminState, *soulbound.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var (
		amount uint64
		all    bool
	)
	switch m := msg.(type) {
	case *WithdrawMsg:
		if err := m.Validate(); err != nil {
			return nil, nil, errors.Wrap(err, "invalid message")
		}
		amount = m.Amount
	case *WithdrawAllMsg:
		all = true
	default:
		return nil, nil, errors.Wrapf(errors.ErrType, "unexpected %T message", msg)
	}

	state, caller, err := LoadSuperAdmin(ctx, db, h.auth, h.bucket)
	if err != nil {
		return nil, nil, err
	}
	if all {
		amount = state.VaultBalance
	}
	switch {
	case amount == 0:
		return nil, nil, errors.Wrap(errors.ErrInsufficientAmount, "vault is empty")
	case amount > state.VaultBalance:
		return nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "vault holds %d, requested %d", state.VaultBalance, amount)
	}
	state.VaultBalance -= amount

	wallet := addressString(state.WithdrawWallet)
	soulbound.GetLogger(ctx).Info("vault withdrawal",
		"signer", caller, "amount", amount, "withdraw_wallet", wallet, "remaining", state.VaultBalance)
	return state, &soulbound.DeliverResult{
		Data: state.WithdrawWallet,
		Log:  "withdrawn " + strconv.FormatUint(amount, 10),
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: msg.Path()},
			{Key: tagSigner, Value: caller.String()},
			{Key: tagAmount, Value: strconv.FormatUint(amount, 10)},
			{Key: tagWallet, Value: wallet},
		},
	}, nil
}

func loadRegistry(db soulbound.ReadOnlyKVStore, b Bucket) (*AdminState, multisig.Registry, error) {
	state, err := b.Load(db)
	if err != nil {
		return nil, multisig.Registry{}, err
	}
	registry, err := state.Registry()
	if err != nil {
		return nil, multisig.Registry{}, errors.Wrap(err, "signer registry")
	}
	return state, registry, nil
}

// loadMember resolves the caller to a multisig slot. It runs before the
// message is validated.
func loadMember(ctx soulbound.Context, db soulbound.ReadOnlyKVStore, auth x.Authenticator, b Bucket) (*AdminState, multisig.Registry, soulbound.Address, error) {
	caller, err := signer(ctx, auth)
	if err != nil {
		return nil, multisig.Registry{}, caller, err
	}
	state, registry, err := loadRegistry(db, b)
	if err != nil {
		return nil, multisig.Registry{}, caller, err
	}
	if _, ok := registry.Resolve(caller); !ok {
		return nil, multisig.Registry{}, caller, errors.Wrapf(errors.ErrNotAuthorized, "%s is not a signer", caller)
	}
	return state, registry, caller, nil
}

func logApproval(ctx soulbound.Context, what string, slot multisig.Slot, approvals int, created, applied bool, keyvals ...interface{}) {
	logger := soulbound.GetLogger(ctx).With("slot", slot, "approvals", approvals, "required", multisig.RequiredApprovals)
	switch {
	case applied:
		logger.Info(what+" threshold reached", keyvals...)
	case created:
		logger.Info(what+" proposal created", keyvals...)
	default:
		logger.Info(what+" proposal approved", keyvals...)
	}
}

func approvalResult(path string, caller soulbound.Address, approvals int, applied bool) *soulbound.DeliverResult {
	threshold := thresholdPending
	if applied {
		threshold = thresholdReached
	}
	return &soulbound.DeliverResult{
		Log: strconv.Itoa(approvals) + "/" + strconv.Itoa(multisig.RequiredApprovals) + " approvals",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: path},
			{Key: tagSigner, Value: caller.String()},
			{Key: tagApprovals, Value: strconv.Itoa(approvals)},
			{Key: tagThreshold, Value: threshold},
		},
	}
}

func cancelResult(path string, caller soulbound.Address) *soulbound.DeliverResult {
	return &soulbound.DeliverResult{
		Log: "proposal cancelled",
		Tags: []soulbound.Tag{
			{Key: tagAction, Value: path},
			{Key: tagSigner, Value: caller.String()},
		},
	}
}

func addressString(raw []byte) string {
	a, err := soulbound.AddressFromBytes(raw)
	if err != nil || a == nil {
		return ""
	}
	return a.String()
}
