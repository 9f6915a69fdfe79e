package admin

import (
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/multisig"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ soulbound.Initializer = (*Initializer)(nil)

// FromGenesis will parse the initial admin state from genesis and save it in
// the database. A genesis without the "admin" section leaves the ledger
// uninitialized, to be set up by an InitMsg.
func (*Initializer) FromGenesis(opts soulbound.Options, db soulbound.KVStore) error {
	var genesis *struct {
		SuperAdmin           string   `json:"super_admin"`
		ViceAdmins           []string `json:"vice_admins"`
		WithdrawWallet       string   `json:"withdraw_wallet"`
		PaymentMint          string   `json:"payment_mint"`
		MintFee              uint64   `json:"mint_fee"`
		MaxSupply            uint64   `json:"max_supply"`
		MintStartDate        int64    `json:"mint_start_date"`
		DonglePriceNftHolder uint64   `json:"dongle_price_nft_holder"`
		DonglePriceNormal    uint64   `json:"dongle_price_normal"`
		PurchaseStarted      bool     `json:"purchase_started"`
	}
	if err := opts.ReadOptions("admin", &genesis); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if genesis == nil {
		return nil
	}
	if len(genesis.ViceAdmins) > multisig.Delegates {
		return errors.Wrapf(errors.ErrInput, "at most %d vice admins", multisig.Delegates)
	}

	var wallets [multisig.MaxSigners]soulbound.Address
	admin, err := soulbound.ParseAddress(genesis.SuperAdmin)
	if err != nil {
		return errors.Wrap(err, "super admin")
	}
	wallets[0] = admin
	for i, s := range genesis.ViceAdmins {
		if s == "" {
			continue
		}
		a, err := soulbound.ParseAddress(s)
		if err != nil {
			return errors.Wrapf(err, "vice admin %d", i)
		}
		wallets[i+1] = a
	}
	withdraw, err := soulbound.ParseAddress(genesis.WithdrawWallet)
	if err != nil {
		return errors.Wrap(err, "withdraw wallet")
	}
	mint, err := soulbound.ParseAddress(genesis.PaymentMint)
	if err != nil {
		return errors.Wrap(err, "payment mint")
	}

	state := &AdminState{
		WithdrawWallet:       withdraw.Bytes(),
		PaymentMint:          mint.Bytes(),
		MintFee:              genesis.MintFee,
		MaxSupply:            genesis.MaxSupply,
		MintStartDate:        genesis.MintStartDate,
		DonglePriceNftHolder: genesis.DonglePriceNftHolder,
		DonglePriceNormal:    genesis.DonglePriceNormal,
		PurchaseStarted:      genesis.PurchaseStarted,
	}
	state.SetRegistry(multisig.NewRegistry(wallets))

	b := NewBucket()
	switch ok, err := b.Exists(db); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(errors.ErrDuplicate, "admin state already initialized")
	}
	if err := b.Save(db, state); err != nil {
		return errors.Wrap(err, "genesis admin state")
	}
	return nil
}
