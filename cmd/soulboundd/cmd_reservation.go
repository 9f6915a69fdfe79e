package main

import (
	"strconv"

	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/x/reservation"
	"github.com/spf13/cobra"
)

var (
	metadataFlags struct {
		mint       string
		collection string
		name       string
		symbol     string
		uri        string
	}

	createCollectionFlags struct {
		adminMintLimit uint64
	}

	adminMintFlags struct {
		recipient string
	}
)

var (
	createCollectionCmd = &cobra.Command{
		Use:   "create-collection",
		Short: "Register a verified collection, super admin only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := addressFlag("mint", metadataFlags.mint)
			if err != nil {
				return err
			}
			return submit(cmd, &reservation.CreateCollectionMsg{
				Mint:           mint,
				Name:           metadataFlags.name,
				Symbol:         metadataFlags.symbol,
				Uri:            metadataFlags.uri,
				AdminMintLimit: createCollectionFlags.adminMintLimit,
			})
		},
	}

	mintCmd = &cobra.Command{
		Use:   "mint",
		Short: "Reserve a soulbound token for the signer, paying the mint fee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, collection, err := tokenFlags()
			if err != nil {
				return err
			}
			return submit(cmd, &reservation.MintNFTMsg{
				Mint:       mint,
				Collection: collection,
				Name:       metadataFlags.name,
				Symbol:     metadataFlags.symbol,
				Uri:        metadataFlags.uri,
			})
		},
	}

	adminMintCmd = &cobra.Command{
		Use:   "admin-mint",
		Short: "Issue a free token from the collection admin quota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, collection, err := tokenFlags()
			if err != nil {
				return err
			}
			recipient, err := addressFlag("recipient", adminMintFlags.recipient)
			if err != nil {
				return err
			}
			return submit(cmd, &reservation.AdminMintNFTMsg{
				Mint:       mint,
				Collection: collection,
				Recipient:  recipient,
				Name:       metadataFlags.name,
				Symbol:     metadataFlags.symbol,
				Uri:        metadataFlags.uri,
			})
		},
	}

	batchReserveCmd = &cobra.Command{
		Use:   "batch-reserve <count>",
		Short: "Pay for several reservations at once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(errors.ErrInput, "count %q: %s", args[0], err)
			}
			return submit(cmd, &reservation.BatchReserveMsg{Count: count})
		},
	}

	burnCmd = &cobra.Command{
		Use:   "burn <mint>",
		Short: "Destroy a token owned by the signer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := addressFlag("mint", args[0])
			if err != nil {
				return err
			}
			return submit(cmd, &reservation.BurnNFTMsg{Mint: mint})
		},
	}

	updateMetadataCmd = &cobra.Command{
		Use:   "update-metadata",
		Short: "Replace the metadata of a token, super admin only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := addressFlag("mint", metadataFlags.mint)
			if err != nil {
				return err
			}
			return submit(cmd, &reservation.UpdateNFTMetadataMsg{
				Mint:   mint,
				Name:   metadataFlags.name,
				Symbol: metadataFlags.symbol,
				Uri:    metadataFlags.uri,
			})
		},
	}

	purchaseDongleCmd = &cobra.Command{
		Use:   "purchase-dongle",
		Short: "Buy a dongle, token holders pay the discounted price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, &reservation.PurchaseDongleMsg{})
		},
	}

	transferCmd = &cobra.Command{
		Use:   "transfer <mint> <recipient>",
		Short: "Attempt a token transfer, which soulbound tokens refuse",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := addressFlag("mint", args[0])
			if err != nil {
				return err
			}
			recipient, err := addressFlag("recipient", args[1])
			if err != nil {
				return err
			}
			return submit(cmd, &reservation.TransferNFTMsg{Mint: mint, Recipient: recipient})
		},
	}
)

func tokenFlags() (mint, collection []byte, err error) {
	if mint, err = addressFlag("mint", metadataFlags.mint); err != nil {
		return nil, nil, err
	}
	if collection, err = addressFlag("collection", metadataFlags.collection); err != nil {
		return nil, nil, err
	}
	return mint, collection, nil
}

func init() {
	for _, c := range []*cobra.Command{createCollectionCmd, mintCmd, adminMintCmd, updateMetadataCmd} {
		f := c.Flags()
		f.StringVar(&metadataFlags.mint, "mint", "", "mint address of the token or collection")
		f.StringVar(&metadataFlags.name, "name", "", "metadata name")
		f.StringVar(&metadataFlags.symbol, "symbol", "", "metadata symbol")
		f.StringVar(&metadataFlags.uri, "uri", "", "metadata uri")
	}
	for _, c := range []*cobra.Command{mintCmd, adminMintCmd} {
		c.Flags().StringVar(&metadataFlags.collection, "collection", "", "collection mint the token belongs to")
	}
	createCollectionCmd.Flags().Uint64Var(&createCollectionFlags.adminMintLimit, "admin-mint-limit", 0, "number of free tokens admins may issue")
	adminMintCmd.Flags().StringVar(&adminMintFlags.recipient, "recipient", "", "wallet receiving the token")

	rootCmd.AddCommand(
		createCollectionCmd,
		mintCmd,
		adminMintCmd,
		batchReserveCmd,
		burnCmd,
		updateMetadataCmd,
		purchaseDongleCmd,
		transferCmd,
	)
}
