package app

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/x/sigs"
)

// Tx is the wire transaction. Msg holds the encoded message registered under
// Path.
type Tx struct {
	Path      string             `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Msg       []byte             `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	Signature *sigs.StdSignature `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

var _ sigs.SignedTx = (*Tx)(nil)

// NewTx encodes given message into an unsigned transaction.
func NewTx(msg soulbound.Msg) (*Tx, error) {
	raw, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return &Tx{Path: msg.Path(), Msg: raw}, nil
}

// GetMsg decodes the message using the type registered for the path.
func (tx *Tx) GetMsg() (soulbound.Msg, error) {
	msg, err := soulbound.NewMsg(tx.Path)
	if err != nil {
		return nil, errors.Wrap(err, "message path")
	}
	if err := proto.Unmarshal(tx.Msg, msg); err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "decode %s: %s", tx.Path, err)
	}
	return msg, nil
}

// GetSignBytes returns the transaction encoded without its signature.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Path: tx.Path, Msg: tx.Msg}
	bz, err := proto.Marshal(&unsigned)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return bz, nil
}

func (tx *Tx) GetSignature() *sigs.StdSignature {
	return tx.Signature
}

// Sign attaches a signature made with given key.
func (tx *Tx) Sign(key solana.PrivateKey, chainID string, seq int64) error {
	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return err
	}
	tx.Signature = sig
	return nil
}

// Encode returns the wire encoding of the transaction.
func (tx *Tx) Encode() ([]byte, error) {
	bz, err := proto.Marshal(tx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return bz, nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (soulbound.Tx, error) {
	var tx Tx
	if err := proto.Unmarshal(bz, &tx); err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return &tx, nil
}
