package multisig

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/soulboundtest/assert"
	"github.com/stretchr/testify/require"
)

// fullRegistry returns a registry with all five slots taken together with the
// identities ordered by slot.
func fullRegistry() (Registry, []solana.PublicKey) {
	var wallets [MaxSigners]solana.PublicKey
	for i := range wallets {
		wallets[i] = soulboundtest.NewAddress()
	}
	return NewRegistry(wallets), wallets[:]
}

func TestProposeOrApprove(t *testing.T) {
	signers, ids := fullRegistry()
	w1 := Wallet(soulboundtest.NewAddress())
	w2 := Wallet(soulboundtest.NewAddress())

	type call struct {
		caller      solana.PublicKey
		value       Wallet
		wantErr     *errors.Error
		wantCount   int
		wantApplied bool
	}

	cases := map[string]struct {
		calls       []call
		wantPending *Wallet
		wantSlots   []Slot
	}{
		"first call opens a proposal": {
			calls: []call{
				{caller: ids[0], value: w1, wantCount: 1},
			},
			wantPending: &w1,
			wantSlots:   []Slot{0},
		},
		"three delegates apply without the super admin": {
			calls: []call{
				{caller: ids[4], value: w1, wantCount: 1},
				{caller: ids[1], value: w1, wantCount: 2},
				{caller: ids[3], value: w1, wantCount: 3, wantApplied: true},
			},
			wantPending: nil,
		},
		"duplicate approval keeps the count": {
			calls: []call{
				{caller: ids[0], value: w1, wantCount: 1},
				{caller: ids[0], value: w1, wantErr: errors.ErrAlreadyApproved},
			},
			wantPending: &w1,
			wantSlots:   []Slot{0},
		},
		"different value is a conflict": {
			calls: []call{
				{caller: ids[0], value: w1, wantCount: 1},
				{caller: ids[1], value: w2, wantErr: errors.ErrConflictingProposal},
			},
			wantPending: &w1,
			wantSlots:   []Slot{0},
		},
		"stranger is rejected": {
			calls: []call{
				{caller: soulboundtest.NewAddress(), value: w1, wantErr: errors.ErrNotAuthorized},
			},
			wantPending: nil,
		},
		"empty proposed wallet is rejected": {
			calls: []call{
				{caller: ids[0], value: Wallet{}, wantErr: errors.ErrInvalidProposedValue},
			},
			wantPending: nil,
		},
		"conflicting value is checked after authorization": {
			calls: []call{
				{caller: ids[0], value: w1, wantCount: 1},
				{caller: soulboundtest.NewAddress(), value: w2, wantErr: errors.ErrNotAuthorized},
			},
			wantPending: &w1,
			wantSlots:   []Slot{0},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var tr Tracker[Wallet]
			for i, c := range tc.calls {
				res, err := tr.ProposeOrApprove(signers, c.caller, c.value)
				if c.wantErr != nil {
					if !c.wantErr.Is(err) {
						t.Fatalf("call %d: want %q, got %+v", i, c.wantErr, err)
					}
					continue
				}
				require.NoErrorf(t, err, "call %d", i)
				require.Equalf(t, c.wantCount, res.Approvals, "call %d", i)
				require.Equalf(t, c.wantApplied, res.Applied, "call %d", i)
				require.Equal(t, c.value, res.Value)
			}

			if tc.wantPending == nil {
				require.False(t, tr.IsPending())
				require.Equal(t, 0, tr.Approvals.Len())
				return
			}
			require.True(t, tr.IsPending())
			require.Equal(t, *tc.wantPending, *tr.Pending)
			require.Equal(t, tc.wantSlots, tr.Approvals.Slots())
		})
	}
}

func TestAnyThreeSignersApply(t *testing.T) {
	signers, ids := fullRegistry()
	value := Wallet(soulboundtest.NewAddress())

	// Every ordered selection of three distinct slots.
	for a := 0; a < MaxSigners; a++ {
		for b := 0; b < MaxSigners; b++ {
			for c := 0; c < MaxSigners; c++ {
				if a == b || b == c || a == c {
					continue
				}
				var tr Tracker[Wallet]
				for i, slot := range []int{a, b, c} {
					res, err := tr.ProposeOrApprove(signers, ids[slot], value)
					require.NoError(t, err)
					require.Equal(t, i+1, res.Approvals)
					require.Equal(t, i == 2, res.Applied, "order %d %d %d", a, b, c)
					require.Equal(t, Slot(slot), res.Caller)
				}
				require.False(t, tr.IsPending())
				require.Equal(t, 0, tr.Approvals.Len())
			}
		}
	}
}

func TestProposeAfterCancel(t *testing.T) {
	signers, ids := fullRegistry()
	w1 := Wallet(soulboundtest.NewAddress())
	w2 := Wallet(soulboundtest.NewAddress())

	var tr Tracker[Wallet]
	_, err := tr.ProposeOrApprove(signers, ids[0], w1)
	assert.Nil(t, err)
	_, err = tr.ProposeOrApprove(signers, ids[1], w1)
	assert.Nil(t, err)

	_, err = tr.ProposeOrApprove(signers, ids[2], w2)
	assert.IsErr(t, errors.ErrConflictingProposal, err)

	// Cancel by a signer that did not take part in the proposal.
	cancelled, err := tr.Cancel(signers, ids[4])
	assert.Nil(t, err)
	require.Equal(t, w1, cancelled)
	require.False(t, tr.IsPending())
	require.Equal(t, 0, tr.Approvals.Len())

	res, err := tr.ProposeOrApprove(signers, ids[2], w2)
	assert.Nil(t, err)
	require.True(t, res.Created)
	require.Equal(t, 1, res.Approvals)
	require.Equal(t, []Slot{2}, tr.Approvals.Slots())
}

func TestCancel(t *testing.T) {
	signers, ids := fullRegistry()

	var tr Tracker[Wallet]
	_, err := tr.Cancel(signers, ids[0])
	assert.IsErr(t, errors.ErrNoProposalPending, err)

	_, err = tr.ProposeOrApprove(signers, ids[0], Wallet(soulboundtest.NewAddress()))
	assert.Nil(t, err)

	_, err = tr.Cancel(signers, soulboundtest.NewAddress())
	assert.IsErr(t, errors.ErrNotAuthorized, err)
	require.True(t, tr.IsPending(), "failed cancel must not change the state")

	for slot := range ids {
		var tr Tracker[Wallet]
		_, err := tr.ProposeOrApprove(signers, ids[0], Wallet(soulboundtest.NewAddress()))
		assert.Nil(t, err)
		_, err = tr.Cancel(signers, ids[slot])
		assert.Nil(t, err)
		require.False(t, tr.IsPending())
	}
}

func TestUnchangedValueNeedsThreshold(t *testing.T) {
	signers, ids := fullRegistry()

	// Proposing the registry that is already in place is a change like
	// any other.
	var tr Tracker[Registry]
	for i := 0; i < RequiredApprovals; i++ {
		res, err := tr.ProposeOrApprove(signers, ids[i], signers)
		assert.Nil(t, err)
		require.Equal(t, i == RequiredApprovals-1, res.Applied)
		require.True(t, res.Value.Equal(signers))
	}
	require.False(t, tr.IsPending())
}

func TestRegistryProposalEquality(t *testing.T) {
	signers, ids := fullRegistry()

	proposed := signers.Wallets()
	proposed[2] = soulboundtest.NewAddress()
	p1 := NewRegistry(proposed)
	proposed[4] = solana.PublicKey{}
	p2 := NewRegistry(proposed)

	var tr Tracker[Registry]
	_, err := tr.ProposeOrApprove(signers, ids[0], p1)
	assert.Nil(t, err)
	_, err = tr.ProposeOrApprove(signers, ids[1], p2)
	assert.IsErr(t, errors.ErrConflictingProposal, err)

	res, err := tr.ProposeOrApprove(signers, ids[1], NewRegistry(p1.Wallets()))
	assert.Nil(t, err)
	require.Equal(t, 2, res.Approvals)

	// Invalid admin sets never reach the state machine.
	dup := p1.Wallets()
	dup[1] = dup[0]
	_, err = tr.ProposeOrApprove(signers, ids[2], NewRegistry(dup))
	assert.IsErr(t, errors.ErrInvalidProposedValue, err)
	require.Equal(t, 2, tr.Approvals.Len())
}
