package soulbound

import (
	"encoding/json"
)

// Handler is a core engine that can process a few specific messages.
// This could represent "propose a withdraw wallet", or "mint a soulbound
// token".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, or panic recovery, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}

// CheckResult captures any non-error result of checking a message.
type CheckResult struct {
	// Log is a human-readable message describing the result.
	Log string
}

// DeliverResult captures any non-error result of delivering a message.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the key of a
	// created record.
	Data []byte
	// Log is a human-readable message describing the result.
	Log string
	// Tags are key value pairs describing what happened, ie.
	// threshold=reached when a multisig proposal was applied.
	Tags []Tag
}

// Tag is a single key value pair attached to a DeliverResult.
type Tag struct {
	Key   string
	Value string
}

// Tag returns the value of the first tag with given key or an empty string.
func (r *DeliverResult) Tag(key string) string {
	if r == nil {
		return ""
	}
	for _, t := range r.Tags {
		if t.Key == key {
			return t.Value
		}
	}
	return ""
}

// Options are the genesis options.
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
