package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/store"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,12}$`).MatchString
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	proto.Message
	Validate() error
}

// ModelBucket stores models of a single type under a common key prefix.
type ModelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

// NewModelBucket returns a ModelBucket instance that stores models of the
// same type as given example.
func NewModelBucket(name string, example Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	t := reflect.TypeOf(example)
	if t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("model must be a pointer, got %T", example))
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  t,
	}
}

// Name returns the bucket name.
func (mb ModelBucket) Name() string {
	return mb.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (mb ModelBucket) DBKey(key []byte) []byte {
	l := len(mb.prefix)
	out := make([]byte, l+len(key))
	copy(out, mb.prefix)
	copy(out[l:], key)
	return out
}

// One query the database for a single model instance. Lookup is done by the
// primary index key. Result is loaded into given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database.
// If given model type cannot be used to contain stored entity, ErrType is
// returned.
func (mb ModelBucket) One(db soulbound.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != mb.model {
		return errors.Wrapf(errors.ErrType, "%s bucket stores %s, got %T", mb.name, mb.model, dest)
	}
	raw, err := db.Get(mb.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "get")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %q", mb.name, key)
	}
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %s: %s", mb.name, err)
	}
	return nil
}

// Has returns true if an entity with given primary key exists.
func (mb ModelBucket) Has(db soulbound.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(mb.DBKey(key))
	if err != nil {
		return false, errors.Wrap(err, "has")
	}
	return ok, nil
}

// Put saves given model in the database. The model is validated first.
func (mb ModelBucket) Put(db soulbound.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != mb.model {
		return errors.Wrapf(errors.ErrType, "%s bucket stores %s, got %T", mb.name, mb.model, m)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal %s: %s", mb.name, err)
	}
	if err := db.Set(mb.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "set")
	}
	return nil
}

// Delete removes an entity with given primary key from the database. It
// returns ErrNotFound if an entity with given key does not exist.
func (mb ModelBucket) Delete(db soulbound.KVStore, key []byte) error {
	ok, err := mb.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %q", mb.name, key)
	}
	if err := db.Delete(mb.DBKey(key)); err != nil {
		return errors.Wrap(err, "delete")
	}
	return nil
}

// Entry is a single model loaded together with its primary key.
type Entry struct {
	Key   []byte
	Model Model
}

// All returns all models stored in this bucket ordered by their primary key.
func (mb ModelBucket) All(db soulbound.ReadOnlyKVStore) ([]Entry, error) {
	end := append([]byte(mb.name), ':'+1)
	it, err := db.Iterator(mb.prefix, end)
	if err != nil {
		return nil, errors.Wrap(err, "iterator")
	}
	models, err := store.ReadAll(it)
	if err != nil {
		return nil, errors.Wrap(err, "iterate")
	}

	res := make([]Entry, 0, len(models))
	for _, m := range models {
		dest := reflect.New(mb.model.Elem()).Interface().(Model)
		if err := proto.Unmarshal(m.Value, dest); err != nil {
			return nil, errors.Wrapf(errors.ErrModel, "unmarshal %s: %s", mb.name, err)
		}
		res = append(res, Entry{
			Key:   m.Key[len(mb.prefix):],
			Model: dest,
		})
	}
	return res, nil
}
