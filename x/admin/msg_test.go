package admin

import (
	"testing"

	"github.com/gogo/protobuf/types"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/soulboundtest/assert"
)

func TestMsgValidate(t *testing.T) {
	addr := soulboundtest.NewAddress().Bytes()

	cases := map[string]struct {
		msg       soulbound.Msg
		wantErrs  map[string]*errors.Error
		wantOther *errors.Error
	}{
		"valid init": {
			msg: &InitMsg{WithdrawWallet: addr, PaymentMint: addr, MintFee: 1},
			wantErrs: map[string]*errors.Error{
				"WithdrawWallet": nil,
				"PaymentMint":    nil,
				"MintFee":        nil,
			},
		},
		"init missing everything": {
			msg: &InitMsg{MintStartDate: -1},
			wantErrs: map[string]*errors.Error{
				"WithdrawWallet": errors.ErrEmpty,
				"PaymentMint":    errors.ErrEmpty,
				"MintFee":        errors.ErrAmount,
				"MintStartDate":  errors.ErrInput,
			},
		},
		"init with a malformed delegate": {
			msg: &InitMsg{WithdrawWallet: addr, PaymentMint: addr, MintFee: 1, ViceAdmins: [][]byte{addr, {1, 2, 3}}},
			wantErrs: map[string]*errors.Error{
				"ViceAdmins.0": nil,
				"ViceAdmins.1": errors.ErrInput,
			},
		},
		"config with a negative start date": {
			msg: &UpdateConfigMsg{MintStartDate: &types.Int64Value{Value: -5}},
			wantErrs: map[string]*errors.Error{
				"MintStartDate": errors.ErrInput,
			},
		},
		"withdraw wallet with a zero key": {
			msg: &UpdateWithdrawWalletMsg{Wallet: make([]byte, 32)},
			wantErrs: map[string]*errors.Error{
				"Wallet": errors.ErrInvalidProposedValue,
			},
		},
		"payment mint required": {
			msg: &UpdatePaymentMintMsg{},
			wantErrs: map[string]*errors.Error{
				"PaymentMint": errors.ErrEmpty,
			},
		},
		"admin wallets with a malformed key": {
			msg: &SetAdminWalletsMsg{Wallets: [][]byte{addr, {9}, {}, {}, {}}},
			wantErrs: map[string]*errors.Error{
				"Wallets.1": errors.ErrInvalidProposedValue,
			},
		},
		"cancel messages carry nothing": {
			msg: &CancelAdminWalletsMsg{},
		},
		"withdraw all carries nothing": {
			msg: &WithdrawAllMsg{},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantErrs {
				assert.FieldError(t, err, field, want)
			}
			if tc.wantErrs == nil {
				assert.Nil(t, err)
			}
		})
	}
}

func TestMsgPathsAreRegistered(t *testing.T) {
	for _, path := range []string{
		pathInitMsg,
		pathUpdateConfigMsg,
		pathUpdateWithdrawWalletMsg,
		pathCancelWithdrawWalletMsg,
		pathSetAdminWalletsMsg,
		pathCancelAdminWalletsMsg,
		pathUpdatePaymentMintMsg,
		pathWithdrawMsg,
		pathWithdrawAllMsg,
	} {
		msg, err := soulbound.NewMsg(path)
		assert.Nil(t, err)
		assert.Equal(t, path, msg.Path())
	}
}
