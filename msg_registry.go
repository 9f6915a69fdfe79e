package soulbound

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"sync"

	"github.com/iov-one/soulbound/errors"
)

var isMsgPath = regexp.MustCompile(`^[0-9A-Za-z_/]+$`).MatchString

var msgs = struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}{types: make(map[string]reflect.Type)}

// RegisterMsg declares a message type so that it can be decoded from its
// path. It is meant to be called from the init function of the extension
// that owns the message. Registering a path twice panics.
func RegisterMsg(example Msg) {
	tp := reflect.TypeOf(example)
	if tp.Kind() != reflect.Ptr || tp.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("message must be a pointer to a struct, got %T", example))
	}
	path := example.Path()
	if !isMsgPath(path) {
		panic(fmt.Sprintf("invalid message path %q", path))
	}

	msgs.mu.Lock()
	defer msgs.mu.Unlock()
	if prev, ok := msgs.types[path]; ok {
		panic(fmt.Sprintf("message path %q already registered by %s", path, prev))
	}
	msgs.types[path] = tp.Elem()
}

// NewMsg returns a new, empty instance of the message registered under given
// path.
func NewMsg(path string) (Msg, error) {
	msgs.mu.RLock()
	tp, ok := msgs.types[path]
	msgs.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "message path %q", path)
	}
	return reflect.New(tp).Interface().(Msg), nil
}

// MsgPaths returns all registered message paths in alphabetical order.
func MsgPaths() []string {
	msgs.mu.RLock()
	defer msgs.mu.RUnlock()
	paths := make([]string, 0, len(msgs.types))
	for p := range msgs.types {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
