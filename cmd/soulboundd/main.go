package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:               "soulboundd",
		Short:             "soulboundd runs soulbound token reservations against a local ledger",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

var (
	commonFlags struct {
		config  string
		home    string
		keypair string
	}

	cfg *Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&commonFlags.config, "config", "", "path to a yaml config file")
	rootCmd.PersistentFlags().StringVar(&commonFlags.home, "home", "", "directory to store files under (default \"$HOME/.soulbound\")")
	rootCmd.PersistentFlags().StringVar(&commonFlags.keypair, "keypair", "", "solana keygen json file of the signer")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	for _, name := range []string{"home", "keypair"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	c, err := LoadConfig(commonFlags.config, v)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute command: %+v\n", err)
		os.Exit(1)
	}
}
