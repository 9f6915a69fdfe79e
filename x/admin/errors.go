package admin

import (
	"github.com/iov-one/soulbound/errors"
)

// x/admin reserves 200 ~ 219.
var (
	ErrInvalidMaxSupply = errors.Register(200, "max supply below reserved count")
	ErrVaultNotEmpty    = errors.Register(201, "vault must be empty")
	ErrSamePaymentMint  = errors.Register(202, "payment mint unchanged")
)

// Supply accounting is kept on the admin state, next to the vault.
var (
	ErrMaxSupplyReached       = errors.Register(203, "max supply reached")
	ErrReservedCountUnderflow = errors.Register(204, "reserved count underflow")
)
