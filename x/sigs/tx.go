package sigs

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

// SignedTx represents a transaction that carries a signature, which can be
// verified by the Decorator.
type SignedTx interface {
	soulbound.Tx

	// GetSignBytes returns the canonical byte representation of the
	// transaction content covered by the signature.
	GetSignBytes() ([]byte, error)

	// GetSignature returns the signature of the signer, or nil for an
	// unsigned transaction.
	GetSignature() *StdSignature
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if len(s.Pubkey) != solana.PublicKeyLength {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if len(s.Signature) != len(solana.Signature{}) {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}

// Signer returns the address of the signing key.
func (s *StdSignature) Signer() soulbound.Address {
	return solana.PublicKeyFromBytes(s.Pubkey)
}
