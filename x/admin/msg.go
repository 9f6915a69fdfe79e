package admin

import (
	"strconv"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/multisig"
)

func init() {
	soulbound.RegisterMsg(&InitMsg{})
	soulbound.RegisterMsg(&UpdateConfigMsg{})
	soulbound.RegisterMsg(&UpdateWithdrawWalletMsg{})
	soulbound.RegisterMsg(&CancelWithdrawWalletMsg{})
	soulbound.RegisterMsg(&SetAdminWalletsMsg{})
	soulbound.RegisterMsg(&CancelAdminWalletsMsg{})
	soulbound.RegisterMsg(&UpdatePaymentMintMsg{})
	soulbound.RegisterMsg(&WithdrawMsg{})
	soulbound.RegisterMsg(&WithdrawAllMsg{})
}

const (
	pathInitMsg                 = "admin/init"
	pathUpdateConfigMsg         = "admin/update_config"
	pathUpdateWithdrawWalletMsg = "admin/update_withdraw_wallet"
	pathCancelWithdrawWalletMsg = "admin/cancel_withdraw_wallet"
	pathSetAdminWalletsMsg      = "admin/set_admin_wallets"
	pathCancelAdminWalletsMsg   = "admin/cancel_admin_wallets"
	pathUpdatePaymentMintMsg    = "admin/update_payment_mint"
	pathWithdrawMsg             = "admin/withdraw"
	pathWithdrawAllMsg          = "admin/withdraw_all"
)

var _ soulbound.Msg = (*InitMsg)(nil)

func (InitMsg) Path() string { return pathInitMsg }

func (m *InitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "WithdrawWallet", requiredAddress(m.WithdrawWallet))
	errs = errors.AppendField(errs, "PaymentMint", requiredAddress(m.PaymentMint))
	if m.MintFee == 0 {
		errs = errors.AppendField(errs, "MintFee", errors.Wrap(errors.ErrAmount, "must be greater than 0"))
	}
	if m.MintStartDate < 0 {
		errs = errors.AppendField(errs, "MintStartDate", errors.Wrap(errors.ErrInput, "negative"))
	}
	if len(m.ViceAdmins) > multisig.Delegates {
		errs = errors.AppendField(errs, "ViceAdmins", errors.Wrapf(errors.ErrInput, "at most %d delegates", multisig.Delegates))
	}
	for i, raw := range m.ViceAdmins {
		if _, err := soulbound.AddressFromBytes(raw); err != nil {
			errs = errors.AppendField(errs, "ViceAdmins."+strconv.Itoa(i), err)
		}
	}
	return errs
}

var _ soulbound.Msg = (*UpdateConfigMsg)(nil)

func (UpdateConfigMsg) Path() string { return pathUpdateConfigMsg }

func (m *UpdateConfigMsg) Validate() error {
	var errs error
	if m.MintFee != nil && m.MintFee.Value == 0 {
		errs = errors.AppendField(errs, "MintFee", errors.Wrap(errors.ErrAmount, "must be greater than 0"))
	}
	if m.MintStartDate != nil && m.MintStartDate.Value < 0 {
		errs = errors.AppendField(errs, "MintStartDate", errors.Wrap(errors.ErrInput, "negative"))
	}
	if m.OgCollection != nil {
		errs = errors.AppendField(errs, "OgCollection", requiredAddress(m.OgCollection))
	}
	if m.DongleProofCollection != nil {
		errs = errors.AppendField(errs, "DongleProofCollection", requiredAddress(m.DongleProofCollection))
	}
	if errs == nil && m.IsEmpty() {
		return errors.Wrap(errors.ErrEmpty, "no configuration change")
	}
	return errs
}

// IsEmpty returns true if the message does not change anything.
func (m *UpdateConfigMsg) IsEmpty() bool {
	return m.MintFee == nil &&
		m.MaxSupply == nil &&
		m.MintStartDate == nil &&
		m.DonglePriceNftHolder == nil &&
		m.DonglePriceNormal == nil &&
		m.PurchaseStarted == nil &&
		m.OgCollection == nil &&
		m.DongleProofCollection == nil
}

var _ soulbound.Msg = (*UpdateWithdrawWalletMsg)(nil)

func (UpdateWithdrawWalletMsg) Path() string { return pathUpdateWithdrawWalletMsg }

func (m *UpdateWithdrawWalletMsg) Validate() error {
	if _, err := soulbound.MustAddressFromBytes(m.Wallet); err != nil {
		return errors.Field("Wallet", errors.ErrInvalidProposedValue, "%s", err)
	}
	return nil
}

var _ soulbound.Msg = (*CancelWithdrawWalletMsg)(nil)

func (CancelWithdrawWalletMsg) Path() string      { return pathCancelWithdrawWalletMsg }
func (m *CancelWithdrawWalletMsg) Validate() error { return nil }

var _ soulbound.Msg = (*SetAdminWalletsMsg)(nil)

func (SetAdminWalletsMsg) Path() string { return pathSetAdminWalletsMsg }

func (m *SetAdminWalletsMsg) Validate() error {
	if len(m.Wallets) != multisig.MaxSigners {
		return errors.Field("Wallets", errors.ErrInvalidProposedValue, "want %d wallets, got %d", multisig.MaxSigners, len(m.Wallets))
	}
	r, err := m.Registry()
	if err != nil {
		return err
	}
	return r.Validate()
}

// Registry returns the proposed signer set.
func (m *SetAdminWalletsMsg) Registry() (multisig.Registry, error) {
	var wallets [multisig.MaxSigners]soulbound.Address
	for i, raw := range m.Wallets {
		if i >= multisig.MaxSigners {
			break
		}
		a, err := soulbound.AddressFromBytes(raw)
		if err != nil {
			return multisig.Registry{}, errors.Field("Wallets."+strconv.Itoa(i), errors.ErrInvalidProposedValue, "%s", err)
		}
		if a != nil {
			wallets[i] = *a
		}
	}
	return multisig.NewRegistry(wallets), nil
}

var _ soulbound.Msg = (*CancelAdminWalletsMsg)(nil)

func (CancelAdminWalletsMsg) Path() string      { return pathCancelAdminWalletsMsg }
func (m *CancelAdminWalletsMsg) Validate() error { return nil }

var _ soulbound.Msg = (*UpdatePaymentMintMsg)(nil)

func (UpdatePaymentMintMsg) Path() string { return pathUpdatePaymentMintMsg }

func (m *UpdatePaymentMintMsg) Validate() error {
	return errors.Field("PaymentMint", requiredAddress(m.PaymentMint), "")
}

var _ soulbound.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string { return pathWithdrawMsg }

func (m *WithdrawMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Field("Amount", errors.ErrAmount, "must be greater than 0")
	}
	return nil
}

var _ soulbound.Msg = (*WithdrawAllMsg)(nil)

func (WithdrawAllMsg) Path() string      { return pathWithdrawAllMsg }
func (m *WithdrawAllMsg) Validate() error { return nil }

func requiredAddress(raw []byte) error {
	_, err := soulbound.MustAddressFromBytes(raw)
	return err
}
