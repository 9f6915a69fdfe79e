package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/soulboundtest"
	"github.com/iov-one/soulbound/soulboundtest/assert"
	"github.com/iov-one/soulbound/x/reservation"
	"github.com/stretchr/testify/require"
)

// run executes the root command with given arguments against home.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	// flag variables outlive a single execution
	showFlags.owner, showFlags.nft, showFlags.collection = "", "", ""
	showFlags.all = false
	withdrawFlags.all = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--home", home}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// writeKeypair stores a new key in the solana keygen json format.
func writeKeypair(t *testing.T, dir, name string) (solana.PrivateKey, string) {
	t.Helper()
	key := soulboundtest.NewKey()
	values := make([]int, len(key))
	for i, b := range key {
		values[i] = int(b)
	}
	raw, err := json.Marshal(values)
	require.NoError(t, err)
	path := filepath.Join(dir, name+".json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return key, path
}

func TestCommandsAgainstLocalLedger(t *testing.T) {
	t.Setenv("SOULBOUND_LOG_LEVEL", "error")
	home := t.TempDir()
	adminKey, adminFile := writeKeypair(t, home, "admin")
	_, userFile := writeKeypair(t, home, "user")
	collection := soulboundtest.NewAddress().String()
	token := soulboundtest.NewAddress().String()

	_, err := run(t, home, "--keypair", adminFile, "purchase-dongle")
	assert.IsErr(t, errors.ErrState, err)

	out, err := run(t, home, "genesis")
	require.NoError(t, err)
	require.Contains(t, out, "height 1")

	_, err = run(t, home, "--keypair", adminFile, "init",
		"--withdraw-wallet", soulboundtest.NewAddress().String(),
		"--payment-mint", soulboundtest.NewAddress().String(),
		"--mint-fee", "100",
		"--max-supply", "10",
	)
	require.NoError(t, err)

	out, err = run(t, home, "show")
	require.NoError(t, err)
	require.Contains(t, out, "super_admin: "+adminKey.PublicKey().String())
	require.Contains(t, out, "mint_fee: 100")

	_, err = run(t, home, "--keypair", userFile, "create-collection",
		"--mint", collection, "--name", "Reservation", "--symbol", "RSV", "--uri", "https://example.com/c.json")
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = run(t, home, "--keypair", adminFile, "create-collection",
		"--mint", collection, "--name", "Reservation", "--symbol", "RSV", "--uri", "https://example.com/c.json")
	require.NoError(t, err)

	out, err = run(t, home, "show", "--collections")
	require.NoError(t, err)
	require.Contains(t, out, collection+" RSV Reservation minted 0")

	out, err = run(t, home, "--keypair", userFile, "mint",
		"--mint", token, "--collection", collection, "--name", "Pass", "--symbol", "PASS", "--uri", "https://example.com/p.json")
	require.NoError(t, err)
	require.Contains(t, out, "nft_mint: "+token)
	require.Contains(t, out, "reserved: 1")

	_, err = run(t, home, "--keypair", userFile, "transfer", token, soulboundtest.NewAddress().String())
	assert.IsErr(t, reservation.ErrSoulbound, err)

	out, err = run(t, home, "show", "--nft", token)
	require.NoError(t, err)
	require.Contains(t, out, "frozen: true")

	_, err = run(t, home, "--keypair", userFile, "burn", token)
	require.NoError(t, err)

	out, err = run(t, home, "--keypair", adminFile, "withdraw", "--all")
	require.NoError(t, err)
	require.Contains(t, out, "amount: 100")

	out, err = run(t, home, "show")
	require.NoError(t, err)
	require.Contains(t, out, "vault_balance: 0")
	require.Contains(t, out, "reserved: 0/10")
	require.Contains(t, out, "vice_admin[0]: -")
}
