package store

import "github.com/iov-one/soulbound"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = soulbound.ReadOnlyKVStore
	SetDeleter       = soulbound.SetDeleter
	KVStore          = soulbound.KVStore
	Batch            = soulbound.Batch
	Iterator         = soulbound.Iterator
	CacheableKVStore = soulbound.CacheableKVStore
	KVCacheWrap      = soulbound.KVCacheWrap
	CommitKVStore    = soulbound.CommitKVStore
	CommitID         = soulbound.CommitID
)

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}
