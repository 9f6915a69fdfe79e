package admin

import (
	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/types"
)

// AdminState is the singleton configuration record of the ledger. It holds
// the signer registry, both multisig proposals and the payment vault.
//
// Delegates are stored as exactly four entries, an empty entry is an empty
// slot. An empty pending value means no proposal.
type AdminState struct {
	SuperAdmin            []byte   `protobuf:"bytes,1,opt,name=super_admin,json=superAdmin,proto3" json:"super_admin,omitempty"`
	ViceAdmins            [][]byte `protobuf:"bytes,2,rep,name=vice_admins,json=viceAdmins,proto3" json:"vice_admins,omitempty"`
	WithdrawWallet        []byte   `protobuf:"bytes,3,opt,name=withdraw_wallet,json=withdrawWallet,proto3" json:"withdraw_wallet,omitempty"`
	PendingWithdrawWallet []byte   `protobuf:"bytes,4,opt,name=pending_withdraw_wallet,json=pendingWithdrawWallet,proto3" json:"pending_withdraw_wallet,omitempty"`
	WithdrawApprovals     []uint32 `protobuf:"varint,5,rep,packed,name=withdraw_approvals,json=withdrawApprovals,proto3" json:"withdraw_approvals,omitempty"`
	PendingAdminWallets   [][]byte `protobuf:"bytes,6,rep,name=pending_admin_wallets,json=pendingAdminWallets,proto3" json:"pending_admin_wallets,omitempty"`
	AdminApprovals        []uint32 `protobuf:"varint,7,rep,packed,name=admin_approvals,json=adminApprovals,proto3" json:"admin_approvals,omitempty"`
	MintFee               uint64   `protobuf:"varint,8,opt,name=mint_fee,json=mintFee,proto3" json:"mint_fee,omitempty"`
	MaxSupply             uint64   `protobuf:"varint,9,opt,name=max_supply,json=maxSupply,proto3" json:"max_supply,omitempty"`
	ReservedCount         uint64   `protobuf:"varint,10,opt,name=reserved_count,json=reservedCount,proto3" json:"reserved_count,omitempty"`
	MintStartDate         int64    `protobuf:"varint,11,opt,name=mint_start_date,json=mintStartDate,proto3" json:"mint_start_date,omitempty"`
	DonglePriceNftHolder  uint64   `protobuf:"varint,12,opt,name=dongle_price_nft_holder,json=donglePriceNftHolder,proto3" json:"dongle_price_nft_holder,omitempty"`
	DonglePriceNormal     uint64   `protobuf:"varint,13,opt,name=dongle_price_normal,json=donglePriceNormal,proto3" json:"dongle_price_normal,omitempty"`
	PurchaseStarted       bool     `protobuf:"varint,14,opt,name=purchase_started,json=purchaseStarted,proto3" json:"purchase_started,omitempty"`
	OgCollection          []byte   `protobuf:"bytes,15,opt,name=og_collection,json=ogCollection,proto3" json:"og_collection,omitempty"`
	DongleProofCollection []byte   `protobuf:"bytes,16,opt,name=dongle_proof_collection,json=dongleProofCollection,proto3" json:"dongle_proof_collection,omitempty"`
	PaymentMint           []byte   `protobuf:"bytes,17,opt,name=payment_mint,json=paymentMint,proto3" json:"payment_mint,omitempty"`
	VaultBalance          uint64   `protobuf:"varint,18,opt,name=vault_balance,json=vaultBalance,proto3" json:"vault_balance,omitempty"`
}

func (m *AdminState) Reset()         { *m = AdminState{} }
func (m *AdminState) String() string { return proto.CompactTextString(m) }
func (*AdminState) ProtoMessage()    {}

// InitMsg creates the admin state. The signer becomes the super admin.
type InitMsg struct {
	WithdrawWallet       []byte   `protobuf:"bytes,1,opt,name=withdraw_wallet,json=withdrawWallet,proto3" json:"withdraw_wallet,omitempty"`
	PaymentMint          []byte   `protobuf:"bytes,2,opt,name=payment_mint,json=paymentMint,proto3" json:"payment_mint,omitempty"`
	MintFee              uint64   `protobuf:"varint,3,opt,name=mint_fee,json=mintFee,proto3" json:"mint_fee,omitempty"`
	MaxSupply            uint64   `protobuf:"varint,4,opt,name=max_supply,json=maxSupply,proto3" json:"max_supply,omitempty"`
	MintStartDate        int64    `protobuf:"varint,5,opt,name=mint_start_date,json=mintStartDate,proto3" json:"mint_start_date,omitempty"`
	DonglePriceNftHolder uint64   `protobuf:"varint,6,opt,name=dongle_price_nft_holder,json=donglePriceNftHolder,proto3" json:"dongle_price_nft_holder,omitempty"`
	DonglePriceNormal    uint64   `protobuf:"varint,7,opt,name=dongle_price_normal,json=donglePriceNormal,proto3" json:"dongle_price_normal,omitempty"`
	ViceAdmins           [][]byte `protobuf:"bytes,8,rep,name=vice_admins,json=viceAdmins,proto3" json:"vice_admins,omitempty"`
}

func (m *InitMsg) Reset()         { *m = InitMsg{} }
func (m *InitMsg) String() string { return proto.CompactTextString(m) }
func (*InitMsg) ProtoMessage()    {}

// UpdateConfigMsg changes any subset of the sale configuration. Absent
// fields are left unchanged.
type UpdateConfigMsg struct {
	MintFee               *types.UInt64Value `protobuf:"bytes,1,opt,name=mint_fee,json=mintFee,proto3" json:"mint_fee,omitempty"`
	MaxSupply             *types.UInt64Value `protobuf:"bytes,2,opt,name=max_supply,json=maxSupply,proto3" json:"max_supply,omitempty"`
	MintStartDate         *types.Int64Value  `protobuf:"bytes,3,opt,name=mint_start_date,json=mintStartDate,proto3" json:"mint_start_date,omitempty"`
	DonglePriceNftHolder  *types.UInt64Value `protobuf:"bytes,4,opt,name=dongle_price_nft_holder,json=donglePriceNftHolder,proto3" json:"dongle_price_nft_holder,omitempty"`
	DonglePriceNormal     *types.UInt64Value `protobuf:"bytes,5,opt,name=dongle_price_normal,json=donglePriceNormal,proto3" json:"dongle_price_normal,omitempty"`
	PurchaseStarted       *types.BoolValue   `protobuf:"bytes,6,opt,name=purchase_started,json=purchaseStarted,proto3" json:"purchase_started,omitempty"`
	OgCollection          []byte             `protobuf:"bytes,7,opt,name=og_collection,json=ogCollection,proto3" json:"og_collection,omitempty"`
	DongleProofCollection []byte             `protobuf:"bytes,8,opt,name=dongle_proof_collection,json=dongleProofCollection,proto3" json:"dongle_proof_collection,omitempty"`
}

func (m *UpdateConfigMsg) Reset()         { *m = UpdateConfigMsg{} }
func (m *UpdateConfigMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateConfigMsg) ProtoMessage()    {}

// UpdateWithdrawWalletMsg proposes or approves a new withdraw wallet.
type UpdateWithdrawWalletMsg struct {
	Wallet []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
}

func (m *UpdateWithdrawWalletMsg) Reset()         { *m = UpdateWithdrawWalletMsg{} }
func (m *UpdateWithdrawWalletMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateWithdrawWalletMsg) ProtoMessage()    {}

// CancelWithdrawWalletMsg drops the pending withdraw wallet proposal.
type CancelWithdrawWalletMsg struct{}

func (m *CancelWithdrawWalletMsg) Reset()         { *m = CancelWithdrawWalletMsg{} }
func (m *CancelWithdrawWalletMsg) String() string { return proto.CompactTextString(m) }
func (*CancelWithdrawWalletMsg) ProtoMessage()    {}

// SetAdminWalletsMsg proposes or approves a new signer set. Wallets[0] is the
// super admin, Wallets[1..4] the delegates where an empty entry is an empty
// slot.
type SetAdminWalletsMsg struct {
	Wallets [][]byte `protobuf:"bytes,1,rep,name=wallets,proto3" json:"wallets,omitempty"`
}

func (m *SetAdminWalletsMsg) Reset()         { *m = SetAdminWalletsMsg{} }
func (m *SetAdminWalletsMsg) String() string { return proto.CompactTextString(m) }
func (*SetAdminWalletsMsg) ProtoMessage()    {}

// CancelAdminWalletsMsg drops the pending signer set proposal.
type CancelAdminWalletsMsg struct{}

func (m *CancelAdminWalletsMsg) Reset()         { *m = CancelAdminWalletsMsg{} }
func (m *CancelAdminWalletsMsg) String() string { return proto.CompactTextString(m) }
func (*CancelAdminWalletsMsg) ProtoMessage()    {}

// UpdatePaymentMintMsg switches the token used for payments.
type UpdatePaymentMintMsg struct {
	PaymentMint []byte `protobuf:"bytes,1,opt,name=payment_mint,json=paymentMint,proto3" json:"payment_mint,omitempty"`
}

func (m *UpdatePaymentMintMsg) Reset()         { *m = UpdatePaymentMintMsg{} }
func (m *UpdatePaymentMintMsg) String() string { return proto.CompactTextString(m) }
func (*UpdatePaymentMintMsg) ProtoMessage()    {}

// WithdrawMsg moves the given amount from the vault to the withdraw wallet.
type WithdrawMsg struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *WithdrawMsg) Reset()         { *m = WithdrawMsg{} }
func (m *WithdrawMsg) String() string { return proto.CompactTextString(m) }
func (*WithdrawMsg) ProtoMessage()    {}

// WithdrawAllMsg empties the vault into the withdraw wallet.
type WithdrawAllMsg struct{}

func (m *WithdrawAllMsg) Reset()         { *m = WithdrawAllMsg{} }
func (m *WithdrawAllMsg) String() string { return proto.CompactTextString(m) }
func (*WithdrawAllMsg) ProtoMessage()    {}
