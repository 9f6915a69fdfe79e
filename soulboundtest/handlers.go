package soulboundtest

import "github.com/iov-one/soulbound"

// Handler is a mock implementation of the soulbound.Handler interface. It
// returns configured results and counts each call.
type Handler struct {
	checkCall   int
	CheckResult soulbound.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult soulbound.DeliverResult
	DeliverErr    error
	// OnDeliver if set is called with the store before the result is
	// returned. Use it to write state from within a delivery.
	OnDeliver func(db soulbound.KVStore)
}

var _ soulbound.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx soulbound.Context, db soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	h.deliverCall++
	if h.OnDeliver != nil {
		h.OnDeliver(db)
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
