package multisig

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound/errors"
)

// Value is implemented by everything a Tracker can govern.
type Value[V any] interface {
	// Equal compares the whole value.
	Equal(V) bool
	// Validate returns an error if the value must not be proposed.
	Validate() error
}

// Wallet is a single governed address, for example the withdraw wallet.
type Wallet solana.PublicKey

// Validate rejects the zero key.
func (w Wallet) Validate() error {
	if solana.PublicKey(w).IsZero() {
		return errors.Wrap(errors.ErrInvalidProposedValue, "wallet required")
	}
	return nil
}

// Equal returns true if both wallets are the same address.
func (w Wallet) Equal(o Wallet) bool {
	return w == o
}

// String returns the base58 form of the wallet.
func (w Wallet) String() string {
	return solana.PublicKey(w).String()
}

var (
	_ Value[Wallet]   = Wallet{}
	_ Value[Registry] = Registry{}
)

// Tracker holds the single pending proposal of a governed field.
//
// The zero value is the idle state.
type Tracker[V Value[V]] struct {
	// Pending is the proposed value or nil when nothing is proposed.
	Pending *V
	// Approvals are the slots that approved Pending. Always empty when
	// Pending is nil.
	Approvals ApprovalSet
}

// Result describes the outcome of a successful ProposeOrApprove call.
type Result[V any] struct {
	// Caller is the slot of the signer that approved.
	Caller Slot
	// Approvals is the approval count after the call. When the value was
	// applied this is the count that reached the threshold.
	Approvals int
	// Created is true if this call opened the proposal.
	Created bool
	// Applied is true if the threshold was reached. The governed field
	// must be set to Value and the tracker is already idle again.
	Applied bool
	// Value is the proposed value.
	Value V
}

// IsPending returns true if a proposal awaits approvals.
func (t *Tracker[V]) IsPending() bool {
	return t.Pending != nil
}

// Reset returns the tracker to the idle state.
func (t *Tracker[V]) Reset() {
	t.Pending = nil
	t.Approvals.Clear()
}

// ProposeOrApprove records the caller's approval of value. The first call
// opens a proposal, following calls with an equal value add approvals. A call
// with a different value while a proposal is pending fails with
// ErrConflictingProposal.
//
// On error the tracker is left unchanged.
func (t *Tracker[V]) ProposeOrApprove(signers Registry, caller solana.PublicKey, value V) (Result[V], error) {
	slot, ok := signers.Resolve(caller)
	if !ok {
		return Result[V]{}, errors.Wrapf(errors.ErrNotAuthorized, "%s is not a signer", caller)
	}
	if err := value.Validate(); err != nil {
		return Result[V]{}, err
	}

	res := Result[V]{Caller: slot, Value: value}

	if t.Pending == nil {
		v := value
		t.Pending = &v
		t.Approvals.Clear()
		t.Approvals.Add(slot)
		res.Created = true
		res.Approvals = 1
		return res, nil
	}

	if !(*t.Pending).Equal(value) {
		return Result[V]{}, errors.Wrap(errors.ErrConflictingProposal, "cancel the pending proposal first")
	}
	if t.Approvals.Has(slot) {
		return Result[V]{}, errors.Wrapf(errors.ErrAlreadyApproved, "slot %d", slot)
	}

	t.Approvals.Add(slot)
	res.Approvals = t.Approvals.Len()
	if res.Approvals >= RequiredApprovals {
		res.Applied = true
		t.Reset()
	}
	return res, nil
}

// Cancel drops the pending proposal and all its approvals. Any signer may
// cancel. The cancelled value is returned.
func (t *Tracker[V]) Cancel(signers Registry, caller solana.PublicKey) (V, error) {
	var zero V
	if _, ok := signers.Resolve(caller); !ok {
		return zero, errors.Wrapf(errors.ErrNotAuthorized, "%s is not a signer", caller)
	}
	if t.Pending == nil {
		return zero, errors.Wrap(errors.ErrNoProposalPending, "nothing to cancel")
	}
	cancelled := *t.Pending
	t.Reset()
	return cancelled, nil
}
