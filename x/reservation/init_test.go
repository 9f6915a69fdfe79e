package reservation

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/soulboundtest/assert"
	"github.com/iov-one/soulbound/store"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	og := soulboundtest.NewAddress()
	dongle := soulboundtest.NewAddress()

	genesis := func(body string) soulbound.Options {
		return soulbound.Options{"reservation": json.RawMessage(body)}
	}

	cases := map[string]struct {
		opts    soulbound.Options
		wantErr *errors.Error
		want    []soulbound.Address
	}{
		"no section": {
			opts: soulbound.Options{},
		},
		"two collections": {
			opts: genesis(`{"collections": [
				{"mint": "` + og.String() + `", "name": "OG", "symbol": "OG", "uri": "https://example.com/og.json", "admin_mint_limit": 10},
				{"mint": "` + dongle.String() + `", "name": "Dongle Proof", "symbol": "DONGLE", "uri": "https://example.com/d.json"}
			]}`),
			want: []soulbound.Address{og, dongle},
		},
		"duplicated mint": {
			opts: genesis(`{"collections": [
				{"mint": "` + og.String() + `", "name": "OG", "symbol": "OG", "uri": "u"},
				{"mint": "` + og.String() + `", "name": "OG", "symbol": "OG", "uri": "u"}
			]}`),
			wantErr: errors.ErrDuplicate,
		},
		"missing metadata": {
			opts:    genesis(`{"collections": [{"mint": "` + og.String() + `", "name": "OG"}]}`),
			wantErr: ErrInvalidMetadata,
		},
		"bad mint": {
			opts:    genesis(`{"collections": [{"mint": "not base58!", "name": "OG", "symbol": "OG", "uri": "u"}]}`),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			var ini Initializer
			err := ini.FromGenesis(tc.opts, db)
			assert.IsErr(t, tc.wantErr, err)
			for _, mint := range tc.want {
				c, err := NewCollectionBucket().Load(db, mint)
				require.NoError(t, err)
				require.True(t, c.Verified)
			}
		})
	}
}
