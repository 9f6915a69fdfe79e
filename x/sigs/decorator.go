/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.
*/
package sigs

import (
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

// Decorator verifies the signature and adds the signer to the context.
type Decorator struct {
	allowMissingSigs bool
}

var _ soulbound.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator,
// which appends the chainID before checking the signature,
// and requires a signature to be present
func NewDecorator() Decorator {
	return Decorator{
		allowMissingSigs: false,
	}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx, next soulbound.Checker) (*soulbound.CheckResult, error) {
	ctx, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx, next soulbound.Deliverer) (*soulbound.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) authenticate(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx) (soulbound.Context, error) {
	var signer *soulbound.Address
	if stx, ok := tx.(SignedTx); ok {
		s, err := VerifyTxSignature(store, stx, soulbound.GetChainID(ctx))
		if err != nil {
			return ctx, errors.Wrap(err, "cannot verify signature")
		}
		signer = s
	}
	if signer == nil {
		if !d.allowMissingSigs {
			return ctx, errors.Wrap(errors.ErrUnauthorized, "missing signature")
		}
		return ctx, nil
	}
	return withSigner(ctx, *signer), nil
}
