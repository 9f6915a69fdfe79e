package x

import (
	"github.com/iov-one/soulbound"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// GetSigners reveals all addresses that signed the current
	// transaction.
	GetSigners(soulbound.Context) []soulbound.Address
	// HasAddress checks if any signer matches this address
	HasAddress(soulbound.Context, soulbound.Address) bool
}

// MainSigner returns the first signer if any, otherwise nil
func MainSigner(ctx soulbound.Context, auth Authenticator) *soulbound.Address {
	signers := auth.GetSigners(ctx)
	if len(signers) == 0 {
		return nil
	}
	s := signers[0]
	return &s
}
