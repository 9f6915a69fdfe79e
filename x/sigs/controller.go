package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

// SignCodeV1 is the current way to prefix the bytes we use to build
// a signature
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifyTxSignature checks the signature on the tx and increments the
// signer sequence.
//
// It returns the signer address, or nil if the transaction is not signed.
func VerifyTxSignature(db soulbound.KVStore, tx SignedTx, chainID string) (*soulbound.Address, error) {
	sig := tx.GetSignature()
	if sig == nil {
		return nil, nil
	}
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	signer, err := VerifySignature(db, sig, bz, chainID)
	if err != nil {
		return nil, err
	}
	return &signer, nil
}

// VerifySignature checks one signature against signbytes,
// check chain and updates state in the store
func VerifySignature(db soulbound.KVStore, sig *StdSignature, signBytes []byte, chainID string) (soulbound.Address, error) {
	if err := sig.Validate(); err != nil {
		return soulbound.Address{}, err
	}

	bucket := NewBucket()
	signer := sig.Signer()
	user, err := bucket.GetOrCreate(db, signer)
	if err != nil {
		return soulbound.Address{}, err
	}

	toSign, err := BuildSignBytes(signBytes, chainID, sig.Sequence)
	if err != nil {
		return soulbound.Address{}, err
	}

	var signature solana.Signature
	copy(signature[:], sig.Signature)
	if !signature.Verify(signer, toSign) {
		return soulbound.Address{}, errors.Wrap(ErrInvalidSignature, "verification failed")
	}

	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return soulbound.Address{}, err
	}
	if err := bucket.Save(db, user); err != nil {
		return soulbound.Address{}, err
	}
	return signer, nil
}

/*
BuildSignBytes combines all info on the actual tx before signing

We use the following format:

version | len(chainID) | chainID      | nonce             | signBytes
4bytes  | uint8        | ascii string | int64 (bigendian) | serialized transaction

This is then prehashed with sha512 before fed into
the public key signing/verification step
*/
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !soulbound.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, uint64(seq))

	output := make([]byte, 0, 4+1+len(chainID)+8+len(signBytes))
	output = append(output, SignCodeV1...)
	output = append(output, uint8(len(chainID)))
	output = append(output, []byte(chainID)...)
	output = append(output, nonce...)
	output = append(output, signBytes...)

	hashed := sha512.Sum512(output)
	return hashed[:], nil
}

// SignTx creates a signature for the given tx
func SignTx(key solana.PrivateKey, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	toSign, err := BuildSignBytes(bz, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := key.Sign(toSign)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &StdSignature{
		Pubkey:    key.PublicKey().Bytes(),
		Signature: sig[:],
		Sequence:  seq,
	}, nil
}

// NextSequence returns the sequence the next signature of given signer must
// carry.
func NextSequence(db soulbound.ReadOnlyKVStore, signer soulbound.Address) (int64, error) {
	u, err := NewBucket().GetOrCreate(db, signer)
	if err != nil {
		return 0, err
	}
	return u.Sequence, nil
}
