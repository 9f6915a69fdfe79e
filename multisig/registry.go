package multisig

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound/errors"
)

const (
	// RequiredApprovals is the number of distinct signers that must
	// approve the same value before it is applied.
	RequiredApprovals = 3

	// Delegates is the number of delegate slots next to the super admin.
	Delegates = 4

	// MaxSigners is the total number of signer slots.
	MaxSigners = Delegates + 1
)

// Slot is the position of a signer in the registry. The super admin always
// holds slot 0.
type Slot uint8

// SuperAdminSlot is the slot of the super admin.
const SuperAdminSlot Slot = 0

// Registry is the ordered set of identities allowed to take part in a
// multisig decision.
type Registry struct {
	SuperAdmin solana.PublicKey
	// Delegates holds optional delegate identities. A nil entry is an
	// empty slot.
	Delegates [Delegates]*solana.PublicKey
}

// NewRegistry builds a registry from the wire layout, where wallets[0] is the
// super admin and the zero key marks an empty delegate slot.
func NewRegistry(wallets [MaxSigners]solana.PublicKey) Registry {
	r := Registry{SuperAdmin: wallets[0]}
	for i, w := range wallets[1:] {
		if w.IsZero() {
			continue
		}
		w := w
		r.Delegates[i] = &w
	}
	return r
}

// Wallets returns the wire layout of the registry. Empty delegate slots are
// returned as the zero key.
func (r Registry) Wallets() [MaxSigners]solana.PublicKey {
	var res [MaxSigners]solana.PublicKey
	res[0] = r.SuperAdmin
	for i, d := range r.Delegates {
		if d != nil {
			res[i+1] = *d
		}
	}
	return res
}

// Resolve returns the slot held by given identity.
func (r Registry) Resolve(id solana.PublicKey) (Slot, bool) {
	if id.IsZero() {
		return 0, false
	}
	if r.SuperAdmin.Equals(id) {
		return SuperAdminSlot, true
	}
	for i, d := range r.Delegates {
		if d != nil && d.Equals(id) {
			return Slot(i + 1), true
		}
	}
	return 0, false
}

// Has returns true if given slot is occupied.
func (r Registry) Has(s Slot) bool {
	switch {
	case s == SuperAdminSlot:
		return !r.SuperAdmin.IsZero()
	case int(s) < MaxSigners:
		return r.Delegates[s-1] != nil
	default:
		return false
	}
}

// Len returns the number of occupied slots.
func (r Registry) Len() int {
	n := 0
	for s := Slot(0); s < MaxSigners; s++ {
		if r.Has(s) {
			n++
		}
	}
	return n
}

// Validate returns ErrInvalidProposedValue if the super admin is empty, a
// delegate repeats the super admin or two delegates share an identity.
func (r Registry) Validate() error {
	if r.SuperAdmin.IsZero() {
		return errors.Field("SuperAdmin", errors.ErrInvalidProposedValue, "required")
	}
	var errs error
	for i, d := range r.Delegates {
		if d == nil {
			continue
		}
		name := fieldName(i)
		if d.IsZero() {
			errs = errors.AppendField(errs, name, errors.Wrap(errors.ErrInvalidProposedValue, "use an empty slot instead of the zero key"))
			continue
		}
		if d.Equals(r.SuperAdmin) {
			errs = errors.AppendField(errs, name, errors.Wrap(errors.ErrInvalidProposedValue, "delegate cannot be the super admin"))
			continue
		}
		for j := i + 1; j < Delegates; j++ {
			if r.Delegates[j] != nil && r.Delegates[j].Equals(*d) {
				errs = errors.AppendField(errs, name, errors.Wrapf(errors.ErrInvalidProposedValue, "duplicate of delegate %d", j+1))
				break
			}
		}
	}
	return errs
}

// Equal compares both registries slot by slot.
func (r Registry) Equal(o Registry) bool {
	return r.Wallets() == o.Wallets()
}

func fieldName(delegate int) string {
	return "Delegates." + string(rune('0'+delegate))
}
