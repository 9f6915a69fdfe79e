package reservation

import (
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ soulbound.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial collections from genesis and save them in
// the database.
func (*Initializer) FromGenesis(opts soulbound.Options, db soulbound.KVStore) error {
	var genesis struct {
		Collections []struct {
			Mint           string `json:"mint"`
			Name           string `json:"name"`
			Symbol         string `json:"symbol"`
			Uri            string `json:"uri"`
			CreatedAt      int64  `json:"created_at"`
			AdminMintLimit uint64 `json:"admin_mint_limit"`
		} `json:"collections"`
	}
	if err := opts.ReadOptions("reservation", &genesis); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	b := NewCollectionBucket()
	for i, c := range genesis.Collections {
		mint, err := soulbound.ParseAddress(c.Mint)
		if err != nil {
			return errors.Wrapf(err, "collection %d", i)
		}
		switch ok, err := b.Has(db, mint.Bytes()); {
		case err != nil:
			return err
		case ok:
			return errors.Wrapf(errors.ErrDuplicate, "collection %s", mint)
		}
		col := &Collection{
			Name:           c.Name,
			Symbol:         c.Symbol,
			Uri:            c.Uri,
			CreatedAt:      c.CreatedAt,
			Verified:       true,
			AdminMintLimit: c.AdminMintLimit,
		}
		if err := b.Put(db, mint.Bytes(), col); err != nil {
			return errors.Wrapf(err, "collection %s", mint)
		}
	}
	return nil
}
