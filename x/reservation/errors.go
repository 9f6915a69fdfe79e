package reservation

import (
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/x/admin"
)

// x/reservation reserves 300 ~ 319.
var (
	ErrMintNotStarted        = errors.Register(300, "mint not started")
	ErrUserAlreadyHasNFT     = errors.Register(301, "user already holds a token")
	ErrAdminMintLimitReached = errors.Register(302, "admin mint limit reached")
	ErrInvalidMetadata       = errors.Register(303, "invalid metadata")
	ErrPurchaseNotStarted    = errors.Register(304, "purchase not started")
	ErrSoulbound             = errors.Register(305, "token is soulbound")
)

// Supply errors are raised by the admin state.
var (
	ErrMaxSupplyReached       = admin.ErrMaxSupplyReached
	ErrReservedCountUnderflow = admin.ErrReservedCountUnderflow
)
