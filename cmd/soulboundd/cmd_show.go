package main

import (
	"fmt"
	"io"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/multisig"
	"github.com/iov-one/soulbound/x/admin"
	"github.com/iov-one/soulbound/x/reservation"
	"github.com/spf13/cobra"
)

var (
	showFlags struct {
		owner      string
		nft        string
		collection string
		all        bool
	}
)

var (
	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the admin state or a stored record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNode(cfg)
			if err != nil {
				return err
			}
			defer n.Close()

			db := n.app.ReadStore()
			w := cmd.OutOrStdout()
			switch {
			case showFlags.owner != "":
				owner, err := soulbound.ParseAddress(showFlags.owner)
				if err != nil {
					return err
				}
				u, err := reservation.NewUserBucket().Load(db, owner)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "owner: %s\nnft_mint: %s\ndongles_purchased: %d\n",
					owner, address(u.NftMint), u.DonglesPurchased)
			case showFlags.nft != "":
				mint, err := soulbound.ParseAddress(showFlags.nft)
				if err != nil {
					return err
				}
				t, err := reservation.NewNFTBucket().Load(db, mint)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "nft_mint: %s\nowner: %s\ncollection: %s\nname: %s\nsymbol: %s\nuri: %s\nfrozen: %t\nadmin_minted: %t\nminted_at: %d\n",
					mint, address(t.Owner), address(t.Collection), t.Name, t.Symbol, t.Uri, t.Frozen, t.AdminMinted, t.MintedAt)
			case showFlags.collection != "":
				mint, err := soulbound.ParseAddress(showFlags.collection)
				if err != nil {
					return err
				}
				c, err := reservation.NewCollectionBucket().Load(db, mint)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "collection: %s\nname: %s\nsymbol: %s\nuri: %s\ncreated_at: %d\nverified: %t\nadmin_mints: %d/%d\nminted: %d\n",
					mint, c.Name, c.Symbol, c.Uri, c.CreatedAt, c.Verified, c.AdminMintCount, c.AdminMintLimit, c.MintedCount)
			case showFlags.all:
				entries, err := reservation.NewCollectionBucket().All(db)
				if err != nil {
					return err
				}
				for _, e := range entries {
					c := e.Model.(*reservation.Collection)
					fmt.Fprintf(w, "%s %s %s minted %d\n", address(e.Key), c.Symbol, c.Name, c.MintedCount)
				}
			default:
				s, err := admin.NewBucket().Load(db)
				if err != nil {
					return err
				}
				return printAdminState(w, s)
			}
			return nil
		},
	}
)

func init() {
	showCmd.Flags().StringVar(&showFlags.owner, "owner", "", "show the user record of this wallet")
	showCmd.Flags().StringVar(&showFlags.nft, "nft", "", "show the token with this mint")
	showCmd.Flags().StringVar(&showFlags.collection, "collection", "", "show the collection with this mint")
	showCmd.Flags().BoolVar(&showFlags.all, "collections", false, "list every registered collection")
	rootCmd.AddCommand(showCmd)
}

func printAdminState(w io.Writer, s *admin.AdminState) error {
	r, err := s.Registry()
	if err != nil {
		return err
	}
	wallets := r.Wallets()
	fmt.Fprintf(w, "super_admin: %s\n", wallets[0])
	for i := 1; i < multisig.MaxSigners; i++ {
		if !r.Has(multisig.Slot(i)) {
			fmt.Fprintf(w, "vice_admin[%d]: -\n", i-1)
			continue
		}
		fmt.Fprintf(w, "vice_admin[%d]: %s\n", i-1, wallets[i])
	}
	fmt.Fprintf(w, "withdraw_wallet: %s\n", address(s.WithdrawWallet))
	fmt.Fprintf(w, "pending_withdraw_wallet: %s (approvals %v)\n", address(s.PendingWithdrawWallet), s.WithdrawApprovals)
	fmt.Fprintf(w, "pending_admin_wallets: %d proposed (approvals %v)\n", len(s.PendingAdminWallets), s.AdminApprovals)
	fmt.Fprintf(w, "payment_mint: %s\n", address(s.PaymentMint))
	fmt.Fprintf(w, "mint_fee: %d\n", s.MintFee)
	fmt.Fprintf(w, "reserved: %d/%d\n", s.ReservedCount, s.MaxSupply)
	fmt.Fprintf(w, "mint_start_date: %d\n", s.MintStartDate)
	fmt.Fprintf(w, "dongle_price: holder %d, normal %d, started %t\n", s.DonglePriceNftHolder, s.DonglePriceNormal, s.PurchaseStarted)
	fmt.Fprintf(w, "vault_balance: %d\n", s.VaultBalance)
	return nil
}

// address prints a stored address, or - when unset.
func address(raw []byte) string {
	a, err := soulbound.AddressFromBytes(raw)
	if err != nil || a == nil {
		return "-"
	}
	return a.String()
}
