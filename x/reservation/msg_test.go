package reservation

import (
	"strings"
	"testing"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/soulboundtest/assert"
)

func TestMsgValidation(t *testing.T) {
	mint := soulboundtest.NewAddress().Bytes()
	collection := soulboundtest.NewAddress().Bytes()

	cases := map[string]struct {
		msg       soulbound.Msg
		wantField map[string]*errors.Error
	}{
		"valid mint": {
			msg: &MintNFTMsg{Mint: mint, Collection: collection, Name: "n", Symbol: "s", Uri: "u"},
			wantField: map[string]*errors.Error{
				"Mint":       nil,
				"Collection": nil,
				"Name":       nil,
			},
		},
		"mint without collection": {
			msg: &MintNFTMsg{Mint: mint, Name: "n", Symbol: "s", Uri: "u"},
			wantField: map[string]*errors.Error{
				"Mint":       nil,
				"Collection": errors.ErrEmpty,
			},
		},
		"name at the limit": {
			msg: &CreateCollectionMsg{Mint: mint, Name: strings.Repeat("ä", MaxNameLength), Symbol: "s", Uri: "u"},
			wantField: map[string]*errors.Error{
				"Name": nil,
			},
		},
		"name too long": {
			msg: &CreateCollectionMsg{Mint: mint, Name: strings.Repeat("a", MaxNameLength+1), Symbol: "s", Uri: "u"},
			wantField: map[string]*errors.Error{
				"Name":   ErrInvalidMetadata,
				"Symbol": nil,
			},
		},
		"uri too long": {
			msg: &UpdateNFTMetadataMsg{Mint: mint, Name: "n", Symbol: "s", Uri: strings.Repeat("u", MaxURILength+1)},
			wantField: map[string]*errors.Error{
				"Uri": ErrInvalidMetadata,
			},
		},
		"all metadata missing": {
			msg: &UpdateNFTMetadataMsg{Mint: mint},
			wantField: map[string]*errors.Error{
				"Name":   ErrInvalidMetadata,
				"Symbol": ErrInvalidMetadata,
				"Uri":    ErrInvalidMetadata,
			},
		},
		"admin mint without recipient": {
			msg: &AdminMintNFTMsg{Mint: mint, Collection: collection, Name: "n", Symbol: "s", Uri: "u"},
			wantField: map[string]*errors.Error{
				"Recipient": errors.ErrEmpty,
			},
		},
		"empty batch": {
			msg: &BatchReserveMsg{},
			wantField: map[string]*errors.Error{
				"Count": errors.ErrAmount,
			},
		},
		"burn with a short mint": {
			msg: &BurnNFTMsg{Mint: []byte{1, 2, 3}},
			wantField: map[string]*errors.Error{
				"Mint": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantField {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestMsgPathsAreRegistered(t *testing.T) {
	for _, path := range []string{
		pathCreateCollectionMsg,
		pathMintNFTMsg,
		pathAdminMintNFTMsg,
		pathBatchReserveMsg,
		pathBurnNFTMsg,
		pathUpdateNFTMetadataMsg,
		pathPurchaseDongleMsg,
		pathTransferNFTMsg,
	} {
		msg, err := soulbound.NewMsg(path)
		assert.Nil(t, err)
		assert.Equal(t, path, msg.Path())
	}
}
