package main

import (
	"strconv"

	"github.com/gogo/protobuf/types"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/multisig"
	"github.com/iov-one/soulbound/x/admin"
	"github.com/spf13/cobra"
)

var (
	updateConfigFlags struct {
		mintFee               uint64
		maxSupply             uint64
		mintStartDate         int64
		donglePriceHolder     uint64
		donglePriceNormal     uint64
		purchaseStarted       bool
		ogCollection          string
		dongleProofCollection string
	}

	withdrawFlags struct {
		all bool
	}
)

var (
	proposeWithdrawWalletCmd = &cobra.Command{
		Use:   "propose-withdraw-wallet <wallet>",
		Short: "Propose or approve a new withdraw wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := addressFlag("wallet", args[0])
			if err != nil {
				return err
			}
			return submit(cmd, &admin.UpdateWithdrawWalletMsg{Wallet: wallet})
		},
	}

	cancelWithdrawWalletCmd = &cobra.Command{
		Use:   "cancel-withdraw-wallet",
		Short: "Cancel the pending withdraw wallet proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, &admin.CancelWithdrawWalletMsg{})
		},
	}

	proposeAdminWalletsCmd = &cobra.Command{
		Use:   "propose-admin-wallets <super admin> <vice admin>...",
		Short: "Propose or approve a new set of admin wallets",
		Long: "Propose or approve a new set of admin wallets. The first wallet becomes the super admin. " +
			"Pass - to leave a vice admin slot empty.",
		Args: cobra.ExactArgs(multisig.MaxSigners),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := &admin.SetAdminWalletsMsg{Wallets: make([][]byte, len(args))}
			for i, s := range args {
				if i > 0 && s == "-" {
					continue
				}
				raw, err := addressFlag("wallet "+strconv.Itoa(i), s)
				if err != nil {
					return err
				}
				msg.Wallets[i] = raw
			}
			return submit(cmd, msg)
		},
	}

	cancelAdminWalletsCmd = &cobra.Command{
		Use:   "cancel-admin-wallets",
		Short: "Cancel the pending admin wallets proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, &admin.CancelAdminWalletsMsg{})
		},
	}

	updateConfigCmd = &cobra.Command{
		Use:   "update-config",
		Short: "Change the sale configuration, only the flags given are updated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cmd.Flags().Changed
			msg := &admin.UpdateConfigMsg{}
			if changed("mint-fee") {
				msg.MintFee = &types.UInt64Value{Value: updateConfigFlags.mintFee}
			}
			if changed("max-supply") {
				msg.MaxSupply = &types.UInt64Value{Value: updateConfigFlags.maxSupply}
			}
			if changed("mint-start-date") {
				msg.MintStartDate = &types.Int64Value{Value: updateConfigFlags.mintStartDate}
			}
			if changed("dongle-price-holder") {
				msg.DonglePriceNftHolder = &types.UInt64Value{Value: updateConfigFlags.donglePriceHolder}
			}
			if changed("dongle-price-normal") {
				msg.DonglePriceNormal = &types.UInt64Value{Value: updateConfigFlags.donglePriceNormal}
			}
			if changed("purchase-started") {
				msg.PurchaseStarted = &types.BoolValue{Value: updateConfigFlags.purchaseStarted}
			}
			var err error
			if changed("og-collection") {
				if msg.OgCollection, err = addressFlag("og-collection", updateConfigFlags.ogCollection); err != nil {
					return err
				}
			}
			if changed("dongle-proof-collection") {
				if msg.DongleProofCollection, err = addressFlag("dongle-proof-collection", updateConfigFlags.dongleProofCollection); err != nil {
					return err
				}
			}
			return submit(cmd, msg)
		},
	}

	updatePaymentMintCmd = &cobra.Command{
		Use:   "update-payment-mint <mint>",
		Short: "Change the token mint accepted as payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := addressFlag("mint", args[0])
			if err != nil {
				return err
			}
			return submit(cmd, &admin.UpdatePaymentMintMsg{PaymentMint: mint})
		},
	}

	withdrawCmd = &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Move funds from the vault to the withdraw wallet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case withdrawFlags.all && len(args) == 0:
				return submit(cmd, &admin.WithdrawAllMsg{})
			case withdrawFlags.all:
				return errors.Wrap(errors.ErrInput, "either an amount or --all")
			case len(args) == 0:
				return errors.Wrap(errors.ErrEmpty, "amount")
			}
			amount, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(errors.ErrAmount, "amount %q: %s", args[0], err)
			}
			return submit(cmd, &admin.WithdrawMsg{Amount: amount})
		},
	}
)

func init() {
	f := updateConfigCmd.Flags()
	f.Uint64Var(&updateConfigFlags.mintFee, "mint-fee", 0, "fee paid per reservation")
	f.Uint64Var(&updateConfigFlags.maxSupply, "max-supply", 0, "maximum number of reservations, 0 for unlimited")
	f.Int64Var(&updateConfigFlags.mintStartDate, "mint-start-date", 0, "unix time when public minting opens")
	f.Uint64Var(&updateConfigFlags.donglePriceHolder, "dongle-price-holder", 0, "dongle price for token holders")
	f.Uint64Var(&updateConfigFlags.donglePriceNormal, "dongle-price-normal", 0, "dongle price for everyone else")
	f.BoolVar(&updateConfigFlags.purchaseStarted, "purchase-started", false, "open or close dongle sales")
	f.StringVar(&updateConfigFlags.ogCollection, "og-collection", "", "og collection mint")
	f.StringVar(&updateConfigFlags.dongleProofCollection, "dongle-proof-collection", "", "dongle proof collection mint")

	withdrawCmd.Flags().BoolVar(&withdrawFlags.all, "all", false, "withdraw the whole vault balance")

	rootCmd.AddCommand(
		proposeWithdrawWalletCmd,
		cancelWithdrawWalletCmd,
		proposeAdminWalletsCmd,
		cancelAdminWalletsCmd,
		updateConfigCmd,
		updatePaymentMintCmd,
		withdrawCmd,
	)
}
