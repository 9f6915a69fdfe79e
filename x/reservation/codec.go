package reservation

import (
	"github.com/gogo/protobuf/proto"
)

// Collection groups soulbound tokens under a single collection mint.
type Collection struct {
	Name           string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Symbol         string `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Uri            string `protobuf:"bytes,3,opt,name=uri,proto3" json:"uri,omitempty"`
	CreatedAt      int64  `protobuf:"varint,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Verified       bool   `protobuf:"varint,5,opt,name=verified,proto3" json:"verified,omitempty"`
	AdminMintLimit uint64 `protobuf:"varint,6,opt,name=admin_mint_limit,json=adminMintLimit,proto3" json:"admin_mint_limit,omitempty"`
	AdminMintCount uint64 `protobuf:"varint,7,opt,name=admin_mint_count,json=adminMintCount,proto3" json:"admin_mint_count,omitempty"`
	MintedCount    uint64 `protobuf:"varint,8,opt,name=minted_count,json=mintedCount,proto3" json:"minted_count,omitempty"`
}

func (m *Collection) Reset()         { *m = Collection{} }
func (m *Collection) String() string { return proto.CompactTextString(m) }
func (*Collection) ProtoMessage()    {}

// User is the per wallet record. NftMint is empty while the wallet holds no
// token.
type User struct {
	NftMint          []byte `protobuf:"bytes,1,opt,name=nft_mint,json=nftMint,proto3" json:"nft_mint,omitempty"`
	DonglesPurchased uint64 `protobuf:"varint,2,opt,name=dongles_purchased,json=donglesPurchased,proto3" json:"dongles_purchased,omitempty"`
}

func (m *User) Reset()         { *m = User{} }
func (m *User) String() string { return proto.CompactTextString(m) }
func (*User) ProtoMessage()    {}

// NFT is a single soulbound token.
type NFT struct {
	Owner       []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Collection  []byte `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	Name        string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Symbol      string `protobuf:"bytes,4,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Uri         string `protobuf:"bytes,5,opt,name=uri,proto3" json:"uri,omitempty"`
	Frozen      bool   `protobuf:"varint,6,opt,name=frozen,proto3" json:"frozen,omitempty"`
	AdminMinted bool   `protobuf:"varint,7,opt,name=admin_minted,json=adminMinted,proto3" json:"admin_minted,omitempty"`
	MintedAt    int64  `protobuf:"varint,8,opt,name=minted_at,json=mintedAt,proto3" json:"minted_at,omitempty"`
}

func (m *NFT) Reset()         { *m = NFT{} }
func (m *NFT) String() string { return proto.CompactTextString(m) }
func (*NFT) ProtoMessage()    {}

// CreateCollectionMsg registers a new collection under the given mint.
type CreateCollectionMsg struct {
	Mint           []byte `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	Name           string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Symbol         string `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Uri            string `protobuf:"bytes,4,opt,name=uri,proto3" json:"uri,omitempty"`
	AdminMintLimit uint64 `protobuf:"varint,5,opt,name=admin_mint_limit,json=adminMintLimit,proto3" json:"admin_mint_limit,omitempty"`
}

func (m *CreateCollectionMsg) Reset()         { *m = CreateCollectionMsg{} }
func (m *CreateCollectionMsg) String() string { return proto.CompactTextString(m) }
func (*CreateCollectionMsg) ProtoMessage()    {}

// MintNFTMsg reserves a token for the signer, paying the mint fee.
type MintNFTMsg struct {
	Mint       []byte `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	Collection []byte `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	Name       string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Symbol     string `protobuf:"bytes,4,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Uri        string `protobuf:"bytes,5,opt,name=uri,proto3" json:"uri,omitempty"`
}

func (m *MintNFTMsg) Reset()         { *m = MintNFTMsg{} }
func (m *MintNFTMsg) String() string { return proto.CompactTextString(m) }
func (*MintNFTMsg) ProtoMessage()    {}

// AdminMintNFTMsg issues a free token to the recipient.
type AdminMintNFTMsg struct {
	Mint       []byte `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	Collection []byte `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	Recipient  []byte `protobuf:"bytes,3,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Name       string `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Symbol     string `protobuf:"bytes,5,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Uri        string `protobuf:"bytes,6,opt,name=uri,proto3" json:"uri,omitempty"`
}

func (m *AdminMintNFTMsg) Reset()         { *m = AdminMintNFTMsg{} }
func (m *AdminMintNFTMsg) String() string { return proto.CompactTextString(m) }
func (*AdminMintNFTMsg) ProtoMessage()    {}

// BatchReserveMsg pays for count reservations at once. Tokens are issued
// later.
type BatchReserveMsg struct {
	Count uint64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *BatchReserveMsg) Reset()         { *m = BatchReserveMsg{} }
func (m *BatchReserveMsg) String() string { return proto.CompactTextString(m) }
func (*BatchReserveMsg) ProtoMessage()    {}

// BurnNFTMsg destroys a token owned by the signer.
type BurnNFTMsg struct {
	Mint []byte `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
}

func (m *BurnNFTMsg) Reset()         { *m = BurnNFTMsg{} }
func (m *BurnNFTMsg) String() string { return proto.CompactTextString(m) }
func (*BurnNFTMsg) ProtoMessage()    {}

// UpdateNFTMetadataMsg replaces the metadata of a token.
type UpdateNFTMetadataMsg struct {
	Mint   []byte `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	Name   string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Symbol string `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Uri    string `protobuf:"bytes,4,opt,name=uri,proto3" json:"uri,omitempty"`
}

func (m *UpdateNFTMetadataMsg) Reset()         { *m = UpdateNFTMetadataMsg{} }
func (m *UpdateNFTMetadataMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateNFTMetadataMsg) ProtoMessage()    {}

// PurchaseDongleMsg buys a single dongle for the signer.
type PurchaseDongleMsg struct {
}

func (m *PurchaseDongleMsg) Reset()         { *m = PurchaseDongleMsg{} }
func (m *PurchaseDongleMsg) String() string { return proto.CompactTextString(m) }
func (*PurchaseDongleMsg) ProtoMessage()    {}

// TransferNFTMsg is always refused. It exists so that clients get a
// descriptive error instead of an unknown path.
type TransferNFTMsg struct {
	Mint      []byte `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	Recipient []byte `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
}

func (m *TransferNFTMsg) Reset()         { *m = TransferNFTMsg{} }
func (m *TransferNFTMsg) String() string { return proto.CompactTextString(m) }
func (*TransferNFTMsg) ProtoMessage()    {}
