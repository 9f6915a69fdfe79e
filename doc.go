/*
Package soulbound defines the interfaces shared by the reservation ledger:
storage, messages, transactions, handlers and the context values that travel
between them.

The ledger is a set of extensions (see the x directory) that each own a few
buckets in a key value store. A transaction carries a single message. The
app routes the message by its path to a handler after the decorators (panic
recovery, signature verification, logging) processed it. Handlers work on a
cache wrapped store, so a failing message never leaves partial state behind.

We pass context through context.Context between app, decorators, and
handlers. For every value of type T that we support in the context there
exist two functions:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package soulbound
