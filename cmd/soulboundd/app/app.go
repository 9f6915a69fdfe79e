/*
Package app links together all the various components
to construct the soulboundd app.
*/
package app

import (
	"path/filepath"
	"strings"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/app"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/store/iavl"
	"github.com/iov-one/soulbound/x"
	"github.com/iov-one/soulbound/x/admin"
	"github.com/iov-one/soulbound/x/reservation"
	"github.com/iov-one/soulbound/x/sigs"
	"github.com/iov-one/soulbound/x/utils"
)

// Name is used as the database name and in log lines.
const Name = "soulbound"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
	)
}

// Router returns a router dispatching to admin and reservation handlers.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	admin.RegisterRoutes(r, authFn)
	reservation.RegisterRoutes(r, authFn)
	return r
}

// Initializers loads the admin state first, so that genesis collections
// land in an initialized ledger.
func Initializers() soulbound.Initializer {
	return app.ChainInitializers(
		&admin.Initializer{},
		&reservation.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain.
func Stack() soulbound.Handler {
	return Chain().WithHandler(Router(Authenticator()))
}

// Application constructs the app on top of given store. If you are not sure
// what store to use, CommitKVStore opens one in a directory.
func Application(name string, store soulbound.CommitKVStore) (*app.App, error) {
	return app.New(name, store, app.TxDecoder, Stack(), Initializers())
}

// CommitKVStore returns an initialized store that persists the data to the
// named path. An empty path gives an in memory store.
func CommitKVStore(dbPath string) (iavl.CommitStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore()
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return iavl.CommitStore{}, errors.Wrapf(errors.ErrInput, "database path %q: %s", dbPath, err)
	}
	// tm-db appends the extension itself
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
