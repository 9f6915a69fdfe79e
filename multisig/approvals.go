package multisig

import (
	"sort"

	"github.com/iov-one/soulbound/errors"
)

// ApprovalSet is the set of slots that approved a pending value. The zero
// value is an empty set ready to use.
type ApprovalSet struct {
	slots map[Slot]struct{}
}

// ApprovalsFromSlots rebuilds a set from its serialized form. Each slot must
// be in range and appear only once.
func ApprovalsFromSlots(slots []uint32) (ApprovalSet, error) {
	var set ApprovalSet
	for i, s := range slots {
		if s >= MaxSigners {
			return ApprovalSet{}, errors.Wrapf(errors.ErrInput, "approval %d: slot %d out of range", i, s)
		}
		if set.Has(Slot(s)) {
			return ApprovalSet{}, errors.Wrapf(errors.ErrDuplicate, "approval %d: slot %d", i, s)
		}
		set.Add(Slot(s))
	}
	return set, nil
}

// Add marks the slot as approved. It returns false if the slot was already
// present.
func (a *ApprovalSet) Add(s Slot) bool {
	if a.slots == nil {
		a.slots = make(map[Slot]struct{}, MaxSigners)
	}
	if _, ok := a.slots[s]; ok {
		return false
	}
	a.slots[s] = struct{}{}
	return true
}

// Has returns true if given slot approved.
func (a ApprovalSet) Has(s Slot) bool {
	_, ok := a.slots[s]
	return ok
}

// Len returns the number of approvals.
func (a ApprovalSet) Len() int {
	return len(a.slots)
}

// Clear removes all approvals.
func (a *ApprovalSet) Clear() {
	a.slots = nil
}

// Slots returns all approving slots in ascending order.
func (a ApprovalSet) Slots() []Slot {
	res := make([]Slot, 0, len(a.slots))
	for s := range a.slots {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Uint32s returns the serialized form of the set, as accepted by
// ApprovalsFromSlots.
func (a ApprovalSet) Uint32s() []uint32 {
	slots := a.Slots()
	if len(slots) == 0 {
		return nil
	}
	res := make([]uint32, len(slots))
	for i, s := range slots {
		res[i] = uint32(s)
	}
	return res
}
