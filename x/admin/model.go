package admin

import (
	"strconv"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/multisig"
	"github.com/iov-one/soulbound/orm"
)

const (
	// BucketName is where the admin state is stored.
	BucketName = "admin"

	stateKey = "state"
)

var _ orm.Model = (*AdminState)(nil)

// Validate ensures the stored record is consistent. Multisig invariants are
// checked by converting the record.
func (s *AdminState) Validate() error {
	var errs error
	if _, err := s.Registry(); err != nil {
		errs = errors.Append(errs, err)
	}
	errs = errors.AppendField(errs, "WithdrawWallet", requiredAddress(s.WithdrawWallet))
	errs = errors.AppendField(errs, "PaymentMint", requiredAddress(s.PaymentMint))
	if s.MintFee == 0 {
		errs = errors.AppendField(errs, "MintFee", errors.ErrAmount)
	}
	if s.MaxSupply != 0 && s.ReservedCount > s.MaxSupply {
		errs = errors.AppendField(errs, "ReservedCount", ErrInvalidMaxSupply)
	}
	if _, err := s.WithdrawTracker(); err != nil {
		errs = errors.AppendField(errs, "PendingWithdrawWallet", err)
	}
	if _, err := s.AdminTracker(); err != nil {
		errs = errors.AppendField(errs, "PendingAdminWallets", err)
	}
	if _, err := soulbound.AddressFromBytes(s.OgCollection); err != nil {
		errs = errors.AppendField(errs, "OgCollection", err)
	}
	if _, err := soulbound.AddressFromBytes(s.DongleProofCollection); err != nil {
		errs = errors.AppendField(errs, "DongleProofCollection", err)
	}
	return errs
}

// Registry returns the current signer set.
func (s *AdminState) Registry() (multisig.Registry, error) {
	if len(s.ViceAdmins) != multisig.Delegates {
		return multisig.Registry{}, errors.Field("ViceAdmins", errors.ErrModel, "want %d slots, got %d", multisig.Delegates, len(s.ViceAdmins))
	}
	wallets := make([][]byte, 0, multisig.MaxSigners)
	wallets = append(wallets, s.SuperAdmin)
	wallets = append(wallets, s.ViceAdmins...)
	r, err := registryFromBytes(wallets)
	if err != nil {
		return r, err
	}
	return r, r.Validate()
}

// SetRegistry replaces the signer set.
func (s *AdminState) SetRegistry(r multisig.Registry) {
	wallets := registryToBytes(r)
	s.SuperAdmin = wallets[0]
	s.ViceAdmins = wallets[1:]
}

// WithdrawTracker returns the pending withdraw wallet proposal.
func (s *AdminState) WithdrawTracker() (multisig.Tracker[multisig.Wallet], error) {
	var t multisig.Tracker[multisig.Wallet]
	approvals, err := multisig.ApprovalsFromSlots(s.WithdrawApprovals)
	if err != nil {
		return t, err
	}
	pending, err := soulbound.AddressFromBytes(s.PendingWithdrawWallet)
	if err != nil {
		return t, err
	}
	if err := checkProposal(pending != nil, approvals); err != nil {
		return t, err
	}
	if pending != nil {
		w := multisig.Wallet(*pending)
		t.Pending = &w
	}
	t.Approvals = approvals
	return t, nil
}

// SetWithdrawTracker stores the withdraw wallet proposal.
func (s *AdminState) SetWithdrawTracker(t multisig.Tracker[multisig.Wallet]) {
	s.PendingWithdrawWallet = nil
	if t.Pending != nil {
		a := soulbound.Address(*t.Pending)
		s.PendingWithdrawWallet = soulbound.AddressBytes(&a)
	}
	s.WithdrawApprovals = t.Approvals.Uint32s()
}

// AdminTracker returns the pending signer set proposal.
func (s *AdminState) AdminTracker() (multisig.Tracker[multisig.Registry], error) {
	var t multisig.Tracker[multisig.Registry]
	approvals, err := multisig.ApprovalsFromSlots(s.AdminApprovals)
	if err != nil {
		return t, err
	}
	pending := len(s.PendingAdminWallets) != 0
	if err := checkProposal(pending, approvals); err != nil {
		return t, err
	}
	if pending {
		if len(s.PendingAdminWallets) != multisig.MaxSigners {
			return t, errors.Wrapf(errors.ErrModel, "want %d wallets, got %d", multisig.MaxSigners, len(s.PendingAdminWallets))
		}
		r, err := registryFromBytes(s.PendingAdminWallets)
		if err != nil {
			return t, err
		}
		t.Pending = &r
	}
	t.Approvals = approvals
	return t, nil
}

// SetAdminTracker stores the signer set proposal.
func (s *AdminState) SetAdminTracker(t multisig.Tracker[multisig.Registry]) {
	s.PendingAdminWallets = nil
	if t.Pending != nil {
		s.PendingAdminWallets = registryToBytes(*t.Pending)
	}
	s.AdminApprovals = t.Approvals.Uint32s()
}

// IsSuperAdmin returns true if given address is the super admin.
func (s *AdminState) IsSuperAdmin(a soulbound.Address) bool {
	admin, err := soulbound.MustAddressFromBytes(s.SuperAdmin)
	return err == nil && admin.Equals(a)
}

// Deposit adds a payment to the vault.
func (s *AdminState) Deposit(amount uint64) error {
	total := s.VaultBalance + amount
	if total < s.VaultBalance {
		return errors.Wrap(errors.ErrOverflow, "vault balance")
	}
	s.VaultBalance = total
	return nil
}

// Reserve books n more reserved tokens. The max supply is enforced when set.
func (s *AdminState) Reserve(n uint64) error {
	total := s.ReservedCount + n
	if total < s.ReservedCount {
		return errors.Wrap(errors.ErrOverflow, "reserved count")
	}
	if s.MaxSupply != 0 && total > s.MaxSupply {
		return errors.Wrapf(ErrMaxSupplyReached, "%d of %d reserved", s.ReservedCount, s.MaxSupply)
	}
	s.ReservedCount = total
	return nil
}

// Release drops a single reservation.
func (s *AdminState) Release() error {
	if s.ReservedCount == 0 {
		return errors.Wrap(ErrReservedCountUnderflow, "nothing reserved")
	}
	s.ReservedCount--
	return nil
}

func checkProposal(pending bool, approvals multisig.ApprovalSet) error {
	switch {
	case pending && approvals.Len() == 0:
		return errors.Wrap(errors.ErrModel, "proposal without approvals")
	case !pending && approvals.Len() != 0:
		return errors.Wrap(errors.ErrModel, "approvals without a proposal")
	}
	return nil
}

func registryFromBytes(wallets [][]byte) (multisig.Registry, error) {
	var ids [multisig.MaxSigners]soulbound.Address
	for i, raw := range wallets {
		a, err := soulbound.AddressFromBytes(raw)
		if err != nil {
			return multisig.Registry{}, errors.Field("Wallets."+strconv.Itoa(i), err, "")
		}
		if a != nil {
			ids[i] = *a
		}
	}
	return multisig.NewRegistry(ids), nil
}

func registryToBytes(r multisig.Registry) [][]byte {
	wallets := r.Wallets()
	res := make([][]byte, multisig.MaxSigners)
	for i := range wallets {
		if !wallets[i].IsZero() {
			res[i] = wallets[i].Bytes()
		} else {
			res[i] = []byte{}
		}
	}
	return res
}

// Bucket stores the admin state singleton.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for the admin state.
func NewBucket() Bucket {
	return Bucket{orm.NewModelBucket(BucketName, &AdminState{})}
}

// Load returns the admin state. ErrNotFound is returned if the ledger was
// not initialized yet.
func (b Bucket) Load(db soulbound.ReadOnlyKVStore) (*AdminState, error) {
	var s AdminState
	if err := b.One(db, []byte(stateKey), &s); err != nil {
		return nil, errors.Wrap(err, "admin state")
	}
	return &s, nil
}

// Save validates and stores the admin state.
func (b Bucket) Save(db soulbound.KVStore, s *AdminState) error {
	return b.Put(db, []byte(stateKey), s)
}

// Exists returns true if the admin state was initialized.
func (b Bucket) Exists(db soulbound.ReadOnlyKVStore) (bool, error) {
	return b.Has(db, []byte(stateKey))
}
