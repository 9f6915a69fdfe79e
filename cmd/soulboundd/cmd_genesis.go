package main

import (
	"fmt"

	"github.com/iov-one/soulbound/app"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/x/admin"
	"github.com/spf13/cobra"
)

var (
	genesisFlags struct {
		file string
	}

	initFlags struct {
		withdrawWallet    string
		paymentMint       string
		viceAdmins        []string
		mintFee           uint64
		maxSupply         uint64
		mintStartDate     int64
		donglePriceHolder uint64
		donglePriceNormal uint64
	}
)

var (
	genesisCmd = &cobra.Command{
		Use:   "genesis",
		Short: "Create the ledger, optionally loading app state from a genesis file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := app.Genesis{ChainID: cfg.ChainID}
			if genesisFlags.file != "" {
				loaded, err := app.LoadGenesis(genesisFlags.file)
				if err != nil {
					return err
				}
				switch {
				case loaded.ChainID == "":
					loaded.ChainID = cfg.ChainID
				case loaded.ChainID != cfg.ChainID:
					return errors.Wrapf(errors.ErrInput, "genesis is for chain %q, not %q", loaded.ChainID, cfg.ChainID)
				}
				gen = loaded
			}

			n, err := openNode(cfg)
			if err != nil {
				return err
			}
			defer n.Close()

			id, err := n.app.InitChain(gen)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chain %s created at height %d\n", gen.ChainID, id.Version)
			return nil
		},
	}

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize the admin state, making the signer the super admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := &admin.InitMsg{
				MintFee:              initFlags.mintFee,
				MaxSupply:            initFlags.maxSupply,
				MintStartDate:        initFlags.mintStartDate,
				DonglePriceNftHolder: initFlags.donglePriceHolder,
				DonglePriceNormal:    initFlags.donglePriceNormal,
			}
			var err error
			if msg.WithdrawWallet, err = addressFlag("withdraw-wallet", initFlags.withdrawWallet); err != nil {
				return err
			}
			if msg.PaymentMint, err = addressFlag("payment-mint", initFlags.paymentMint); err != nil {
				return err
			}
			for _, s := range initFlags.viceAdmins {
				raw, err := addressFlag("vice-admin", s)
				if err != nil {
					return err
				}
				msg.ViceAdmins = append(msg.ViceAdmins, raw)
			}
			return submit(cmd, msg)
		},
	}
)

func init() {
	genesisCmd.Flags().StringVar(&genesisFlags.file, "file", "", "genesis json file with chain_id and app_state")
	rootCmd.AddCommand(genesisCmd)

	initCmd.Flags().StringVar(&initFlags.withdrawWallet, "withdraw-wallet", "", "wallet receiving withdrawals")
	initCmd.Flags().StringVar(&initFlags.paymentMint, "payment-mint", "", "token mint accepted as payment")
	initCmd.Flags().StringSliceVar(&initFlags.viceAdmins, "vice-admin", nil, "vice admin wallet, repeat for each delegate")
	initCmd.Flags().Uint64Var(&initFlags.mintFee, "mint-fee", 0, "fee paid per reservation")
	initCmd.Flags().Uint64Var(&initFlags.maxSupply, "max-supply", 0, "maximum number of reservations, 0 for unlimited")
	initCmd.Flags().Int64Var(&initFlags.mintStartDate, "mint-start-date", 0, "unix time when public minting opens")
	initCmd.Flags().Uint64Var(&initFlags.donglePriceHolder, "dongle-price-holder", 0, "dongle price for token holders")
	initCmd.Flags().Uint64Var(&initFlags.donglePriceNormal, "dongle-price-normal", 0, "dongle price for everyone else")
	rootCmd.AddCommand(initCmd)
}
