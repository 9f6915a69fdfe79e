package reservation

import (
	"unicode/utf8"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

func init() {
	soulbound.RegisterMsg(&CreateCollectionMsg{})
	soulbound.RegisterMsg(&MintNFTMsg{})
	soulbound.RegisterMsg(&AdminMintNFTMsg{})
	soulbound.RegisterMsg(&BatchReserveMsg{})
	soulbound.RegisterMsg(&BurnNFTMsg{})
	soulbound.RegisterMsg(&UpdateNFTMetadataMsg{})
	soulbound.RegisterMsg(&PurchaseDongleMsg{})
	soulbound.RegisterMsg(&TransferNFTMsg{})
}

const (
	pathCreateCollectionMsg  = "reservation/create_collection"
	pathMintNFTMsg           = "reservation/mint_nft"
	pathAdminMintNFTMsg      = "reservation/admin_mint_nft"
	pathBatchReserveMsg      = "reservation/batch_reserve"
	pathBurnNFTMsg           = "reservation/burn_nft"
	pathUpdateNFTMetadataMsg = "reservation/update_nft_metadata"
	pathPurchaseDongleMsg    = "reservation/purchase_dongle"
	pathTransferNFTMsg       = "reservation/transfer_nft"
)

// Metadata length limits, counted in characters.
const (
	MaxNameLength   = 100
	MaxSymbolLength = 20
	MaxURILength    = 200
)

var _ soulbound.Msg = (*CreateCollectionMsg)(nil)

func (CreateCollectionMsg) Path() string { return pathCreateCollectionMsg }

func (m *CreateCollectionMsg) Validate() error {
	errs := errors.AppendField(nil, "Mint", requiredAddress(m.Mint))
	return errors.Append(errs, validateMetadata(m.Name, m.Symbol, m.Uri))
}

var _ soulbound.Msg = (*MintNFTMsg)(nil)

func (MintNFTMsg) Path() string { return pathMintNFTMsg }

func (m *MintNFTMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Mint", requiredAddress(m.Mint))
	errs = errors.AppendField(errs, "Collection", requiredAddress(m.Collection))
	return errors.Append(errs, validateMetadata(m.Name, m.Symbol, m.Uri))
}

var _ soulbound.Msg = (*AdminMintNFTMsg)(nil)

func (AdminMintNFTMsg) Path() string { return pathAdminMintNFTMsg }

func (m *AdminMintNFTMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Mint", requiredAddress(m.Mint))
	errs = errors.AppendField(errs, "Collection", requiredAddress(m.Collection))
	errs = errors.AppendField(errs, "Recipient", requiredAddress(m.Recipient))
	return errors.Append(errs, validateMetadata(m.Name, m.Symbol, m.Uri))
}

var _ soulbound.Msg = (*BatchReserveMsg)(nil)

func (BatchReserveMsg) Path() string { return pathBatchReserveMsg }

func (m *BatchReserveMsg) Validate() error {
	if m.Count == 0 {
		return errors.Field("Count", errors.ErrAmount, "must be greater than 0")
	}
	return nil
}

var _ soulbound.Msg = (*BurnNFTMsg)(nil)

func (BurnNFTMsg) Path() string { return pathBurnNFTMsg }

func (m *BurnNFTMsg) Validate() error {
	return errors.Field("Mint", requiredAddress(m.Mint), "")
}

var _ soulbound.Msg = (*UpdateNFTMetadataMsg)(nil)

func (UpdateNFTMetadataMsg) Path() string { return pathUpdateNFTMetadataMsg }

func (m *UpdateNFTMetadataMsg) Validate() error {
	errs := errors.AppendField(nil, "Mint", requiredAddress(m.Mint))
	return errors.Append(errs, validateMetadata(m.Name, m.Symbol, m.Uri))
}

var _ soulbound.Msg = (*PurchaseDongleMsg)(nil)

func (PurchaseDongleMsg) Path() string      { return pathPurchaseDongleMsg }
func (m *PurchaseDongleMsg) Validate() error { return nil }

var _ soulbound.Msg = (*TransferNFTMsg)(nil)

func (TransferNFTMsg) Path() string { return pathTransferNFTMsg }

func (m *TransferNFTMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Mint", requiredAddress(m.Mint))
	errs = errors.AppendField(errs, "Recipient", requiredAddress(m.Recipient))
	return errs
}

// validateMetadata requires all three fields and enforces their length
// limits.
func validateMetadata(name, symbol, uri string) error {
	var errs error
	errs = errors.AppendField(errs, "Name", checkText(name, MaxNameLength))
	errs = errors.AppendField(errs, "Symbol", checkText(symbol, MaxSymbolLength))
	errs = errors.AppendField(errs, "Uri", checkText(uri, MaxURILength))
	return errs
}

func checkText(s string, max int) error {
	switch n := utf8.RuneCountInString(s); {
	case n == 0:
		return errors.Wrap(ErrInvalidMetadata, "required")
	case n > max:
		return errors.Wrapf(ErrInvalidMetadata, "%d characters, at most %d allowed", n, max)
	}
	return nil
}

func requiredAddress(raw []byte) error {
	_, err := soulbound.MustAddressFromBytes(raw)
	return err
}
