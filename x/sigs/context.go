package sigs

import (
	"context"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigner contextKey = iota
)

// withSigner is a private method, as only this module
// can add a signer
func withSigner(ctx soulbound.Context, signer soulbound.Address) soulbound.Context {
	return context.WithValue(ctx, contextKeySigner, signer)
}

// Authenticate gets/sets the signer in the context.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetSigners returns who signed the current Context.
// May be empty
func (a Authenticate) GetSigners(ctx soulbound.Context) []soulbound.Address {
	val, ok := ctx.Value(contextKeySigner).(soulbound.Address)
	if !ok {
		return nil
	}
	return []soulbound.Address{val}
}

// HasAddress returns true if given address signed the current Context.
func (a Authenticate) HasAddress(ctx soulbound.Context, addr soulbound.Address) bool {
	val, ok := ctx.Value(contextKeySigner).(soulbound.Address)
	return ok && val.Equals(addr)
}
