package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/app"
	soulboundd "github.com/iov-one/soulbound/cmd/soulboundd/app"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/store/iavl"
	"github.com/iov-one/soulbound/x/sigs"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
)

// node is an app opened over the store in the home directory.
type node struct {
	app   *app.App
	store iavl.CommitStore
}

func openNode(c *Config) (*node, error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, err
	}
	path := c.DBPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "create data dir: %s", err)
	}
	db, err := soulboundd.CommitKVStore(path)
	if err != nil {
		return nil, err
	}
	a, err := soulboundd.Application(c.AppName, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	a.WithLogger(logger).WithDebug(c.Debug)
	return &node{app: a, store: db}, nil
}

func (n *node) Close() {
	n.store.Close()
}

func newLogger(c *Config) (log.Logger, error) {
	level, err := log.AllowLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	return log.NewFilter(logger, level).With("module", c.AppName), nil
}

func loadSigner(c *Config) (solana.PrivateKey, error) {
	if c.Keypair == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "--keypair is required to sign")
	}
	key, err := solana.PrivateKeyFromSolanaKeygenFile(c.Keypair)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "keypair %s: %s", c.Keypair, err)
	}
	return key, nil
}

// submit signs msg with the configured keypair, delivers it and commits the
// result as a new version.
func submit(cmd *cobra.Command, msg soulbound.Msg) error {
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	key, err := loadSigner(cfg)
	if err != nil {
		return err
	}
	n, err := openNode(cfg)
	if err != nil {
		return err
	}
	defer n.Close()

	switch id := n.app.ChainID(); {
	case id == "":
		return errors.Wrap(errors.ErrState, "ledger not initialized, run genesis first")
	case id != cfg.ChainID:
		return errors.Wrapf(errors.ErrInput, "store belongs to chain %q, not %q", id, cfg.ChainID)
	}

	raw, err := signTx(n.app, key, msg)
	if err != nil {
		return err
	}
	res, err := n.app.DeliverTx(cfg.BlockTime(), raw)
	if err != nil {
		return err
	}
	id, err := n.app.Commit()
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), id, res)
	return nil
}

func signTx(a *app.App, key solana.PrivateKey, msg soulbound.Msg) ([]byte, error) {
	tx, err := app.NewTx(msg)
	if err != nil {
		return nil, err
	}
	seq, err := sigs.NextSequence(a.ReadStore(), key.PublicKey())
	if err != nil {
		return nil, err
	}
	if err := tx.Sign(key, a.ChainID(), seq); err != nil {
		return nil, err
	}
	return tx.Encode()
}

func printResult(w io.Writer, id soulbound.CommitID, res *soulbound.DeliverResult) {
	fmt.Fprintf(w, "height: %d\n", id.Version)
	if res.Log != "" {
		fmt.Fprintf(w, "log: %s\n", res.Log)
	}
	for _, t := range res.Tags {
		fmt.Fprintf(w, "%s: %s\n", t.Key, t.Value)
	}
}

// addressFlag parses a required base58 address flag value.
func addressFlag(name, value string) ([]byte, error) {
	a, err := soulbound.ParseAddress(value)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", name)
	}
	return a.Bytes(), nil
}
