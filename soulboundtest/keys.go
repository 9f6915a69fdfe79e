package soulboundtest

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound"
)

// NewKey returns a freshly generated ed25519 key pair.
func NewKey() solana.PrivateKey {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		panic(err)
	}
	return key
}

// NewAddress returns the address of a freshly generated key.
func NewAddress() soulbound.Address {
	return NewKey().PublicKey()
}

// NewAddresses returns n distinct addresses.
func NewAddresses(n int) []soulbound.Address {
	res := make([]soulbound.Address, n)
	for i := range res {
		res[i] = NewAddress()
	}
	return res
}

// AddressPtr returns a pointer to a copy of given address.
func AddressPtr(a soulbound.Address) *soulbound.Address {
	return &a
}
