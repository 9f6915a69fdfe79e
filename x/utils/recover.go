package utils

import (
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

// Recovery turns a panic raised below it into an ErrPanic result. The panic
// value is logged with the phase it happened in, the transaction itself is
// rejected like any other failure.
type Recovery struct{}

var _ soulbound.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (r Recovery) Check(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx, next soulbound.Checker) (_ *soulbound.CheckResult, err error) {
	defer r.recovered(ctx, "check", &err)
	return next.Check(ctx, store, tx)
}

func (r Recovery) Deliver(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx, next soulbound.Deliverer) (_ *soulbound.DeliverResult, err error) {
	defer r.recovered(ctx, "deliver", &err)
	return next.Deliver(ctx, store, tx)
}

// recovered must be deferred directly, recover only works there.
func (Recovery) recovered(ctx soulbound.Context, phase string, err *error) {
	p := recover()
	if p == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%s: %v", phase, p)
	soulbound.GetLogger(ctx).Error("panic recovered", "phase", phase, "panic", p)
}
