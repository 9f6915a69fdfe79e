package soulboundtest

import "github.com/iov-one/soulbound"

// Decorator is a mock implementation of the soulbound.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ soulbound.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx, next soulbound.Checker) (*soulbound.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx, next soulbound.Deliverer) (*soulbound.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate returns a handler that calls given decorator with h as the next
// handler.
func Decorate(h soulbound.Handler, d soulbound.Decorator) soulbound.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn soulbound.Handler
	dc soulbound.Decorator
}

var _ soulbound.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
