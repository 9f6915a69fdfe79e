package soulbound

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound/errors"
)

// Address is the identity of an account, a 32 byte ed25519 public key.
type Address = solana.PublicKey

// ParseAddress decodes a base58 encoded address. An empty or zero address is
// rejected.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return Address{}, errors.Wrap(errors.ErrEmpty, "address")
	}
	a, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return Address{}, errors.Wrapf(errors.ErrInput, "address %q: %s", s, err)
	}
	if IsEmptyAddress(a) {
		return Address{}, errors.Wrap(errors.ErrEmpty, "zero address")
	}
	return a, nil
}

// IsEmptyAddress returns true if given address is the all zero key.
func IsEmptyAddress(a Address) bool {
	return a == Address{}
}

// AddressFromBytes decodes a serialized address. Empty input means no
// address and returns nil.
func AddressFromBytes(raw []byte) (*Address, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if len(raw) != solana.PublicKeyLength {
		return nil, errors.Wrapf(errors.ErrInput, "address must be %d bytes, got %d", solana.PublicKeyLength, len(raw))
	}
	a := solana.PublicKeyFromBytes(raw)
	if IsEmptyAddress(a) {
		return nil, errors.Wrap(errors.ErrEmpty, "zero address")
	}
	return &a, nil
}

// MustAddressFromBytes works like AddressFromBytes, but requires the address
// to be present.
func MustAddressFromBytes(raw []byte) (Address, error) {
	a, err := AddressFromBytes(raw)
	if err != nil {
		return Address{}, err
	}
	if a == nil {
		return Address{}, errors.Wrap(errors.ErrEmpty, "address")
	}
	return *a, nil
}

// AddressBytes serializes an optional address. Nil serializes to nil.
func AddressBytes(a *Address) []byte {
	if a == nil {
		return nil
	}
	return a.Bytes()
}
