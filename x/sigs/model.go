package sigs

import (
	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	var errs error
	if len(u.Pubkey) != solana.PublicKeyLength {
		errs = errors.AppendField(errs, "Pubkey", errors.ErrInput)
	}
	if u.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	}
	return errs
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
// Before incrementing the sequence, this function is testing for a value
// overflow.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}

	next := u.Sequence + 1

	// Keys are shared with javascript clients that cannot represent
	// anything above 2^53 - 1.
	const maxSequenceValue = (1 << 53) - 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores the sequence of each signer, keyed by the signer address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for managing the signer state.
func NewBucket() Bucket {
	return Bucket{orm.NewModelBucket(BucketName, &UserData{})}
}

// GetOrCreate returns the state of given signer. A signer that was never seen
// starts at sequence 0.
func (b Bucket) GetOrCreate(db soulbound.ReadOnlyKVStore, signer soulbound.Address) (*UserData, error) {
	var u UserData
	err := b.One(db, signer.Bytes(), &u)
	switch {
	case err == nil:
		return &u, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: signer.Bytes()}, nil
	default:
		return nil, err
	}
}

// Save persists the signer state.
func (b Bucket) Save(db soulbound.KVStore, u *UserData) error {
	return b.Put(db, u.Pubkey, u)
}
