package admin

import (
	"testing"

	"github.com/gogo/protobuf/types"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/multisig"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/soulboundtest/assert"
	"github.com/iov-one/soulbound/store"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	l := newLedger(t)

	s := l.state()
	r, err := s.Registry()
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())
	require.True(t, s.IsSuperAdmin(l.admins[0]))
	require.Equal(t, uint64(100), s.MintFee)
	require.Empty(t, s.PendingWithdrawWallet)
	require.Empty(t, s.PendingAdminWallets)

	_, err = l.deliver(l.admins[1], &InitMsg{
		WithdrawWallet: soulboundtest.NewAddress().Bytes(),
		PaymentMint:    soulboundtest.NewAddress().Bytes(),
		MintFee:        1,
	})
	assert.IsErr(t, errors.ErrDuplicate, err)
}

func TestInitRejectsInvalidDelegates(t *testing.T) {
	admin := soulboundtest.NewAddress()
	d := soulboundtest.NewAddress()

	cases := map[string]struct {
		vice    [][]byte
		wantErr *errors.Error
	}{
		"no delegates": {
			vice: nil,
		},
		"sparse delegates": {
			vice: [][]byte{nil, d.Bytes()},
		},
		"duplicate delegate": {
			vice:    [][]byte{d.Bytes(), d.Bytes()},
			wantErr: errors.ErrInvalidProposedValue,
		},
		"delegate is the super admin": {
			vice:    [][]byte{admin.Bytes()},
			wantErr: errors.ErrInvalidProposedValue,
		},
		"too many delegates": {
			vice:    [][]byte{nil, nil, nil, nil, d.Bytes()},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			l := &ledger{t: t, db: store.MemStore(), auth: &soulboundtest.CtxAuth{Key: "init"}, routes: make(routes)}
			RegisterRoutes(l.routes, l.auth)
			_, err := l.deliver(admin, &InitMsg{
				WithdrawWallet: soulboundtest.NewAddress().Bytes(),
				PaymentMint:    soulboundtest.NewAddress().Bytes(),
				MintFee:        10,
				ViceAdmins:     tc.vice,
			})
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				ok, err := NewBucket().Exists(l.db)
				assert.Nil(t, err)
				require.False(t, ok)
				return
			}
			assert.Nil(t, err)
		})
	}
}

func TestWithdrawWalletMultisig(t *testing.T) {
	l := newLedger(t)
	w1 := soulboundtest.NewAddress()
	w2 := soulboundtest.NewAddress()
	before := l.state().WithdrawWallet

	res, err := l.deliver(l.admins[0], &UpdateWithdrawWalletMsg{Wallet: w1.Bytes()})
	assert.Nil(t, err)
	require.Equal(t, "1", res.Tag(tagApprovals))
	require.Equal(t, thresholdPending, res.Tag(tagThreshold))
	require.Equal(t, w1.Bytes(), l.state().PendingWithdrawWallet)
	require.Equal(t, []uint32{0}, l.state().WithdrawApprovals)

	// Same signer again.
	_, err = l.deliver(l.admins[0], &UpdateWithdrawWalletMsg{Wallet: w1.Bytes()})
	assert.IsErr(t, errors.ErrAlreadyApproved, err)
	require.Equal(t, []uint32{0}, l.state().WithdrawApprovals)

	// Different value while pending.
	_, err = l.deliver(l.admins[1], &UpdateWithdrawWalletMsg{Wallet: w2.Bytes()})
	assert.IsErr(t, errors.ErrConflictingProposal, err)

	// Stranger.
	_, err = l.deliver(soulboundtest.NewAddress(), &UpdateWithdrawWalletMsg{Wallet: w1.Bytes()})
	assert.IsErr(t, errors.ErrNotAuthorized, err)

	res, err = l.deliver(l.admins[2], &UpdateWithdrawWalletMsg{Wallet: w1.Bytes()})
	assert.Nil(t, err)
	require.Equal(t, "2", res.Tag(tagApprovals))
	require.Equal(t, before, l.state().WithdrawWallet)

	// Check must not persist anything.
	_, err = l.check(l.admins[3], &UpdateWithdrawWalletMsg{Wallet: w1.Bytes()})
	assert.Nil(t, err)
	require.Equal(t, []uint32{0, 2}, l.state().WithdrawApprovals)

	res, err = l.deliver(l.admins[3], &UpdateWithdrawWalletMsg{Wallet: w1.Bytes()})
	assert.Nil(t, err)
	require.Equal(t, thresholdReached, res.Tag(tagThreshold))

	s := l.state()
	require.Equal(t, w1.Bytes(), s.WithdrawWallet)
	require.Empty(t, s.PendingWithdrawWallet)
	require.Empty(t, s.WithdrawApprovals)
}

func TestCancelWithdrawWallet(t *testing.T) {
	l := newLedger(t)

	_, err := l.deliver(l.admins[2], &CancelWithdrawWalletMsg{})
	assert.IsErr(t, errors.ErrNoProposalPending, err)

	w1 := soulboundtest.NewAddress()
	_, err = l.deliver(l.admins[0], &UpdateWithdrawWalletMsg{Wallet: w1.Bytes()})
	assert.Nil(t, err)

	_, err = l.deliver(soulboundtest.NewAddress(), &CancelWithdrawWalletMsg{})
	assert.IsErr(t, errors.ErrNotAuthorized, err)

	// Any signer may cancel, not just the proposer.
	_, err = l.deliver(l.admins[4], &CancelWithdrawWalletMsg{})
	assert.Nil(t, err)
	s := l.state()
	require.Empty(t, s.PendingWithdrawWallet)
	require.Empty(t, s.WithdrawApprovals)

	w2 := soulboundtest.NewAddress()
	res, err := l.deliver(l.admins[1], &UpdateWithdrawWalletMsg{Wallet: w2.Bytes()})
	assert.Nil(t, err)
	require.Equal(t, "1", res.Tag(tagApprovals))
}

func TestWithdrawWalletValidation(t *testing.T) {
	l := newLedger(t)

	_, err := l.deliver(l.admins[0], &UpdateWithdrawWalletMsg{})
	assert.IsErr(t, errors.ErrInvalidProposedValue, err)

	// An invalid value from a stranger is reported as unauthorized.
	_, err = l.deliver(soulboundtest.NewAddress(), &UpdateWithdrawWalletMsg{})
	assert.IsErr(t, errors.ErrNotAuthorized, err)
}

func TestAdminWalletsMultisig(t *testing.T) {
	l := newLedger(t)

	next := soulboundtest.NewAddresses(2)
	proposed := [][]byte{
		next[0].Bytes(),
		l.admins[1].Bytes(),
		{},
		next[1].Bytes(),
		{},
	}

	// A pending withdraw wallet proposal is dropped once the signer set
	// changes.
	_, err := l.deliver(l.admins[4], &UpdateWithdrawWalletMsg{Wallet: soulboundtest.NewAddress().Bytes()})
	assert.Nil(t, err)

	for i, signer := range []soulbound.Address{l.admins[3], l.admins[0]} {
		res, err := l.deliver(signer, &SetAdminWalletsMsg{Wallets: proposed})
		assert.Nil(t, err)
		require.Equal(t, thresholdPending, res.Tag(tagThreshold), "approval %d", i)
	}

	conflicting := append([][]byte{}, proposed...)
	conflicting[4] = soulboundtest.NewAddress().Bytes()
	_, err = l.deliver(l.admins[1], &SetAdminWalletsMsg{Wallets: conflicting})
	assert.IsErr(t, errors.ErrConflictingProposal, err)

	res, err := l.deliver(l.admins[1], &SetAdminWalletsMsg{Wallets: proposed})
	assert.Nil(t, err)
	require.Equal(t, thresholdReached, res.Tag(tagThreshold))
	require.Equal(t, "reset", res.Tag("withdraw_proposal"))

	s := l.state()
	require.True(t, s.IsSuperAdmin(next[0]))
	require.False(t, s.IsSuperAdmin(l.admins[0]))
	require.Empty(t, s.PendingAdminWallets)
	require.Empty(t, s.AdminApprovals)
	require.Empty(t, s.PendingWithdrawWallet)
	require.Empty(t, s.WithdrawApprovals)

	r, err := s.Registry()
	assert.Nil(t, err)
	require.Equal(t, 3, r.Len())
	slot, ok := r.Resolve(next[1])
	require.True(t, ok)
	require.Equal(t, multisig.Slot(3), slot)

	// The previous super admin is no longer a signer.
	_, err = l.deliver(l.admins[0], &CancelAdminWalletsMsg{})
	assert.IsErr(t, errors.ErrNotAuthorized, err)
	_, err = l.deliver(next[0], &CancelAdminWalletsMsg{})
	assert.IsErr(t, errors.ErrNoProposalPending, err)
}

func TestAdminWalletsValidation(t *testing.T) {
	l := newLedger(t)
	a := soulboundtest.NewAddress()

	cases := map[string]struct {
		signer  soulbound.Address
		wallets [][]byte
		wantErr *errors.Error
	}{
		"empty super admin": {
			signer:  l.admins[0],
			wallets: [][]byte{{}, a.Bytes(), {}, {}, {}},
			wantErr: errors.ErrInvalidProposedValue,
		},
		"delegate equal to super admin": {
			signer:  l.admins[0],
			wallets: [][]byte{a.Bytes(), a.Bytes(), {}, {}, {}},
			wantErr: errors.ErrInvalidProposedValue,
		},
		"duplicate delegate": {
			signer:  l.admins[0],
			wallets: [][]byte{a.Bytes(), l.admins[1].Bytes(), {}, l.admins[1].Bytes(), {}},
			wantErr: errors.ErrInvalidProposedValue,
		},
		"wrong number of wallets": {
			signer:  l.admins[0],
			wallets: [][]byte{a.Bytes()},
			wantErr: errors.ErrInvalidProposedValue,
		},
		"stranger with an invalid set": {
			signer:  soulboundtest.NewAddress(),
			wallets: [][]byte{{}, {}, {}, {}, {}},
			wantErr: errors.ErrNotAuthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := l.deliver(tc.signer, &SetAdminWalletsMsg{Wallets: tc.wallets})
			assert.IsErr(t, tc.wantErr, err)
			require.Empty(t, l.state().PendingAdminWallets)
		})
	}
}

func TestUnchangedAdminSetNeedsThreshold(t *testing.T) {
	l := newLedger(t)
	current := append([][]byte{l.state().SuperAdmin}, l.state().ViceAdmins...)

	// Re-applying the same signers keeps a pending withdraw wallet proposal.
	wallet := soulboundtest.NewAddress()
	for _, signer := range l.admins[:2] {
		_, err := l.deliver(signer, &UpdateWithdrawWalletMsg{Wallet: wallet.Bytes()})
		assert.Nil(t, err)
	}

	for i := 0; i < multisig.RequiredApprovals; i++ {
		res, err := l.deliver(l.admins[i], &SetAdminWalletsMsg{Wallets: current})
		assert.Nil(t, err)
		require.Equal(t, i == multisig.RequiredApprovals-1, res.Tag(tagThreshold) == thresholdReached)
		require.Empty(t, res.Tag("withdraw_proposal"))
	}
	s := l.state()
	require.Empty(t, s.PendingAdminWallets)
	require.Empty(t, s.AdminApprovals)
	require.True(t, s.IsSuperAdmin(l.admins[0]))
	require.Equal(t, wallet.Bytes(), s.PendingWithdrawWallet)
	require.Equal(t, []uint32{0, 1}, s.WithdrawApprovals)

	res, err := l.deliver(l.admins[2], &UpdateWithdrawWalletMsg{Wallet: wallet.Bytes()})
	assert.Nil(t, err)
	require.Equal(t, thresholdReached, res.Tag(tagThreshold))
	require.Equal(t, wallet.Bytes(), l.state().WithdrawWallet)
}

func TestUpdateConfig(t *testing.T) {
	og := soulboundtest.NewAddress()

	cases := map[string]struct {
		reserved uint64
		signer   int
		stranger bool
		msg      *UpdateConfigMsg
		wantErr  *errors.Error
		check    func(t *testing.T, s *AdminState)
	}{
		"fee and start date": {
			msg: &UpdateConfigMsg{
				MintFee:       &types.UInt64Value{Value: 250},
				MintStartDate: &types.Int64Value{Value: 1700000000},
			},
			check: func(t *testing.T, s *AdminState) {
				require.Equal(t, uint64(250), s.MintFee)
				require.Equal(t, int64(1700000000), s.MintStartDate)
				require.Equal(t, uint64(0), s.MaxSupply, "absent fields are unchanged")
			},
		},
		"dongle sale": {
			msg: &UpdateConfigMsg{
				DonglePriceNftHolder: &types.UInt64Value{Value: 5},
				DonglePriceNormal:    &types.UInt64Value{Value: 9},
				PurchaseStarted:      &types.BoolValue{Value: true},
				OgCollection:         og.Bytes(),
			},
			check: func(t *testing.T, s *AdminState) {
				require.Equal(t, uint64(5), s.DonglePriceNftHolder)
				require.Equal(t, uint64(9), s.DonglePriceNormal)
				require.True(t, s.PurchaseStarted)
				require.Equal(t, og.Bytes(), s.OgCollection)
			},
		},
		"max supply below reserved": {
			reserved: 10,
			msg:      &UpdateConfigMsg{MaxSupply: &types.UInt64Value{Value: 9}},
			wantErr:  ErrInvalidMaxSupply,
		},
		"max supply equal to reserved": {
			reserved: 10,
			msg:      &UpdateConfigMsg{MaxSupply: &types.UInt64Value{Value: 10}},
			check: func(t *testing.T, s *AdminState) {
				require.Equal(t, uint64(10), s.MaxSupply)
			},
		},
		"unlimited supply": {
			reserved: 10,
			msg:      &UpdateConfigMsg{MaxSupply: &types.UInt64Value{Value: 0}},
		},
		"zero fee": {
			msg:     &UpdateConfigMsg{MintFee: &types.UInt64Value{}},
			wantErr: errors.ErrAmount,
		},
		"empty collection": {
			msg:     &UpdateConfigMsg{DongleProofCollection: []byte{}},
			wantErr: errors.ErrEmpty,
		},
		"nothing to change": {
			msg:     &UpdateConfigMsg{},
			wantErr: errors.ErrEmpty,
		},
		"delegate is not the super admin": {
			signer:  1,
			msg:     &UpdateConfigMsg{MintFee: &types.UInt64Value{Value: 1}},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			l := newLedger(t)
			l.update(func(s *AdminState) { s.ReservedCount = tc.reserved })

			_, err := l.deliver(l.admins[tc.signer], tc.msg)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			if tc.check != nil {
				tc.check(t, l.state())
			}
		})
	}
}

func TestUpdatePaymentMint(t *testing.T) {
	l := newLedger(t)
	current := l.state().PaymentMint
	next := soulboundtest.NewAddress()

	_, err := l.deliver(l.admins[0], &UpdatePaymentMintMsg{PaymentMint: current})
	assert.IsErr(t, ErrSamePaymentMint, err)

	_, err = l.deliver(l.admins[1], &UpdatePaymentMintMsg{PaymentMint: next.Bytes()})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	l.update(func(s *AdminState) { s.VaultBalance = 1 })
	_, err = l.deliver(l.admins[0], &UpdatePaymentMintMsg{PaymentMint: next.Bytes()})
	assert.IsErr(t, ErrVaultNotEmpty, err)

	l.update(func(s *AdminState) { s.VaultBalance = 0 })
	_, err = l.deliver(l.admins[0], &UpdatePaymentMintMsg{PaymentMint: next.Bytes()})
	assert.Nil(t, err)
	require.Equal(t, next.Bytes(), l.state().PaymentMint)
}

func TestWithdraw(t *testing.T) {
	cases := map[string]struct {
		vault       uint64
		signer      int
		msg         soulbound.Msg
		wantErr     *errors.Error
		wantBalance uint64
		wantAmount  string
	}{
		"partial": {
			vault:       500,
			msg:         &WithdrawMsg{Amount: 200},
			wantBalance: 300,
			wantAmount:  "200",
		},
		"whole vault": {
			vault:       500,
			msg:         &WithdrawMsg{Amount: 500},
			wantBalance: 0,
			wantAmount:  "500",
		},
		"too much": {
			vault:   500,
			msg:     &WithdrawMsg{Amount: 501},
			wantErr: errors.ErrInsufficientAmount,
		},
		"zero amount": {
			vault:   500,
			msg:     &WithdrawMsg{},
			wantErr: errors.ErrAmount,
		},
		"withdraw all": {
			vault:       42,
			msg:         &WithdrawAllMsg{},
			wantBalance: 0,
			wantAmount:  "42",
		},
		"withdraw all from an empty vault": {
			msg:     &WithdrawAllMsg{},
			wantErr: errors.ErrInsufficientAmount,
		},
		"delegate cannot withdraw": {
			vault:   10,
			signer:  2,
			msg:     &WithdrawAllMsg{},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			l := newLedger(t)
			l.update(func(s *AdminState) { s.VaultBalance = tc.vault })

			res, err := l.deliver(l.admins[tc.signer], tc.msg)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				require.Equal(t, tc.vault, l.state().VaultBalance)
				return
			}
			assert.Nil(t, err)
			require.Equal(t, tc.wantBalance, l.state().VaultBalance)
			require.Equal(t, tc.wantAmount, res.Tag(tagAmount))
			require.Equal(t, l.state().WithdrawWallet, res.Data)
		})
	}
}
