/*
Package x contains the ledger extensions.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together by the app package to construct the
application. This package holds the pieces shared by all of them.
*/
package x
