package app

import (
	"encoding/json"
	"os"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

// Genesis file format
type Genesis struct {
	ChainID    string            `json:"chain_id"`
	AppOptions soulbound.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "loading genesis file: %s", err)
	}
	if err := json.Unmarshal(bytes, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...soulbound.Initializer) soulbound.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []soulbound.Initializer
}

var _ soulbound.Initializer = chainInitializer{}

// FromGenesis passes the options to every initializer in order and stops on
// the first failure.
func (c chainInitializer) FromGenesis(opts soulbound.Options, kv soulbound.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
