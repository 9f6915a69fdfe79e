package reservation

import (
	"math/bits"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/orm"
	"github.com/iov-one/soulbound/x/admin"
)

var _ orm.Model = (*Collection)(nil)

func (c *Collection) Validate() error {
	errs := validateMetadata(c.Name, c.Symbol, c.Uri)
	if c.CreatedAt < 0 {
		errs = errors.AppendField(errs, "CreatedAt", errors.ErrInput)
	}
	if c.AdminMintCount > c.AdminMintLimit {
		errs = errors.AppendField(errs, "AdminMintCount", errors.Wrapf(ErrAdminMintLimitReached, "%d of %d", c.AdminMintCount, c.AdminMintLimit))
	}
	return errs
}

var _ orm.Model = (*User)(nil)

func (u *User) Validate() error {
	_, err := soulbound.AddressFromBytes(u.NftMint)
	return errors.Field("NftMint", err, "")
}

// HasNFT returns true if the user currently holds a token.
func (u *User) HasNFT() bool {
	return len(u.NftMint) != 0
}

var _ orm.Model = (*NFT)(nil)

func (n *NFT) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", requiredAddress(n.Owner))
	errs = errors.AppendField(errs, "Collection", requiredAddress(n.Collection))
	errs = errors.Append(errs, validateMetadata(n.Name, n.Symbol, n.Uri))
	if !n.Frozen {
		errs = errors.AppendField(errs, "Frozen", errors.Wrap(ErrSoulbound, "token must be frozen"))
	}
	return errs
}

// IsOwner returns true if given address holds the token.
func (n *NFT) IsOwner(a soulbound.Address) bool {
	owner, err := soulbound.MustAddressFromBytes(n.Owner)
	return err == nil && owner.Equals(a)
}

// increment adds one to a counter, refusing to wrap.
func increment(n uint64, what string) (uint64, error) {
	if n == ^uint64(0) {
		return n, errors.Wrapf(errors.ErrOverflow, "%s", what)
	}
	return n + 1, nil
}

// batchFee returns fee * count or an overflow error.
func batchFee(fee, count uint64) (uint64, error) {
	hi, lo := bits.Mul64(fee, count)
	if hi != 0 {
		return 0, errors.Wrapf(errors.ErrOverflow, "fee %d for %d reservations", fee, count)
	}
	return lo, nil
}

// donglePrice returns the discounted price for token holders.
func donglePrice(state *admin.AdminState, u *User) uint64 {
	if u.HasNFT() {
		return state.DonglePriceNftHolder
	}
	return state.DonglePriceNormal
}

const (
	collectionBucket = "collection"
	userBucket       = "user"
	nftBucket        = "nft"
)

// CollectionBucket stores collections by their mint.
type CollectionBucket struct {
	orm.ModelBucket
}

func NewCollectionBucket() CollectionBucket {
	return CollectionBucket{orm.NewModelBucket(collectionBucket, &Collection{})}
}

// Load returns the collection stored under given mint or ErrNotFound.
func (b CollectionBucket) Load(db soulbound.ReadOnlyKVStore, mint soulbound.Address) (*Collection, error) {
	var c Collection
	if err := b.One(db, mint.Bytes(), &c); err != nil {
		return nil, errors.Wrap(err, "collection")
	}
	return &c, nil
}

// UserBucket stores user records by the owner wallet.
type UserBucket struct {
	orm.ModelBucket
}

func NewUserBucket() UserBucket {
	return UserBucket{orm.NewModelBucket(userBucket, &User{})}
}

// Load returns the user record of given wallet. A wallet never seen before
// gets an empty record.
func (b UserBucket) Load(db soulbound.ReadOnlyKVStore, owner soulbound.Address) (*User, error) {
	var u User
	switch err := b.One(db, owner.Bytes(), &u); {
	case errors.ErrNotFound.Is(err):
		return &User{}, nil
	case err != nil:
		return nil, errors.Wrap(err, "user")
	}
	return &u, nil
}

// NFTBucket stores tokens by their mint.
type NFTBucket struct {
	orm.ModelBucket
}

func NewNFTBucket() NFTBucket {
	return NFTBucket{orm.NewModelBucket(nftBucket, &NFT{})}
}

// Load returns the token stored under given mint or ErrNotFound.
func (b NFTBucket) Load(db soulbound.ReadOnlyKVStore, mint soulbound.Address) (*NFT, error) {
	var n NFT
	if err := b.One(db, mint.Bytes(), &n); err != nil {
		return nil, errors.Wrap(err, "nft")
	}
	return &n, nil
}

// buckets groups everything the handlers read and write.
type buckets struct {
	admin       admin.Bucket
	collections CollectionBucket
	users       UserBucket
	nfts        NFTBucket
}

func newBuckets() buckets {
	return buckets{
		admin:       admin.NewBucket(),
		collections: NewCollectionBucket(),
		users:       NewUserBucket(),
		nfts:        NewNFTBucket(),
	}
}

type write struct {
	bucket orm.ModelBucket
	key    []byte
	// A nil model removes the key.
	model orm.Model
}

// changes buffers the records a message modifies. Nothing is written until
// apply is called.
type changes struct {
	state  *admin.AdminState
	writes []write
}

func (c *changes) put(b orm.ModelBucket, key []byte, m orm.Model) {
	c.writes = append(c.writes, write{bucket: b, key: key, model: m})
}

func (c *changes) remove(b orm.ModelBucket, key []byte) {
	c.writes = append(c.writes, write{bucket: b, key: key})
}

func (c *changes) apply(db soulbound.KVStore, b admin.Bucket) error {
	for _, w := range c.writes {
		var err error
		if w.model == nil {
			err = w.bucket.Delete(db, w.key)
		} else {
			err = w.bucket.Put(db, w.key, w.model)
		}
		if err != nil {
			return errors.Wrapf(err, "%s bucket", w.bucket.Name())
		}
	}
	if c.state != nil {
		if err := b.Save(db, c.state); err != nil {
			return errors.Wrap(err, "admin state")
		}
	}
	return nil
}
