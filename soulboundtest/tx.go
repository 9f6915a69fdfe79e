package soulboundtest

import (
	"github.com/iov-one/soulbound"
)

// Tx represents a single message transaction.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg soulbound.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ soulbound.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (soulbound.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a message mock that can be routed to any path.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by the Validate method.
	Err error
}

var _ soulbound.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "mock " + m.RoutePath }
func (*Msg) ProtoMessage()    {}
