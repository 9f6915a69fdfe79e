package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// A Router is a Handler itself, so it can be the last step of a decorator
// chain.
type Router struct {
	routes map[string]soulbound.Handler
}

var _ soulbound.Registry = (*Router)(nil)
var _ soulbound.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]soulbound.Handler),
	}
}

// Handle registers a handler for given path. It panics if the path is not
// valid or a handler was already registered for it.
func (r *Router) Handle(path string, h soulbound.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the handler registered for given path or a handler that
// always fails with ErrNotFound.
func (r *Router) handler(path string) soulbound.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	return len(r.routes)
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound error regardless of the
// arguments.
type notFoundHandler string

func (path notFoundHandler) Check(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx) (*soulbound.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
}

func (path notFoundHandler) Deliver(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx) (*soulbound.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
}
