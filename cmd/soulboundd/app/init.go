package app

import (
	"encoding/json"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/app"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/multisig"
)

// GenesisParams describes the ledger created at genesis.
type GenesisParams struct {
	SuperAdmin           soulbound.Address
	ViceAdmins           []soulbound.Address
	WithdrawWallet       soulbound.Address
	PaymentMint          soulbound.Address
	MintFee              uint64
	MaxSupply            uint64
	MintStartDate        int64
	DonglePriceNftHolder uint64
	DonglePriceNormal    uint64
	PurchaseStarted      bool
}

// GenInitOptions produces the genesis for a new chain. A zero withdraw
// wallet defaults to the super admin.
func GenInitOptions(chainID string, p GenesisParams) (app.Genesis, error) {
	if chainID == "" {
		return app.Genesis{}, errors.Wrap(errors.ErrEmpty, "chain id")
	}
	if soulbound.IsEmptyAddress(p.SuperAdmin) {
		return app.Genesis{}, errors.Wrap(errors.ErrEmpty, "super admin")
	}
	if len(p.ViceAdmins) > multisig.Delegates {
		return app.Genesis{}, errors.Wrapf(errors.ErrInput, "at most %d vice admins", multisig.Delegates)
	}
	withdraw := p.WithdrawWallet
	if soulbound.IsEmptyAddress(withdraw) {
		withdraw = p.SuperAdmin
	}
	vice := make([]string, 0, len(p.ViceAdmins))
	for _, a := range p.ViceAdmins {
		vice = append(vice, a.String())
	}

	section, err := json.Marshal(map[string]interface{}{
		"super_admin":             p.SuperAdmin.String(),
		"vice_admins":             vice,
		"withdraw_wallet":         withdraw.String(),
		"payment_mint":            p.PaymentMint.String(),
		"mint_fee":                p.MintFee,
		"max_supply":              p.MaxSupply,
		"mint_start_date":         p.MintStartDate,
		"dongle_price_nft_holder": p.DonglePriceNftHolder,
		"dongle_price_normal":     p.DonglePriceNormal,
		"purchase_started":        p.PurchaseStarted,
	})
	if err != nil {
		return app.Genesis{}, errors.Wrap(errors.ErrInput, err.Error())
	}
	return app.Genesis{
		ChainID:    chainID,
		AppOptions: soulbound.Options{"admin": section},
	}, nil
}
