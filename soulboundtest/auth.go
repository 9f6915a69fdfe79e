package soulboundtest

import (
	"context"

	"github.com/iov-one/soulbound"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced addresses. Signer is a
// convenience attribute for the common single signer case. Each time all
// signers, regardless of the attribute, are considered.
type Auth struct {
	Signer  *soulbound.Address
	Signers []soulbound.Address
}

func (a *Auth) GetSigners(soulbound.Context) []soulbound.Address {
	if a.Signer != nil {
		return append([]soulbound.Address{*a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx soulbound.Context, addr soulbound.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve signers.
type CtxAuth struct {
	// Key used to set and retrieve signers from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetSigners(ctx soulbound.Context, signers ...soulbound.Address) soulbound.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetSigners(ctx soulbound.Context) []soulbound.Address {
	val, _ := ctx.Value(a.Key).([]soulbound.Address)
	return val
}

func (a *CtxAuth) HasAddress(ctx soulbound.Context, addr soulbound.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
