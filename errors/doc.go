/*
Package errors implements the error model of the soulbound ledger.

Every failure returned by a handler wraps one of the root errors declared in
this package. Root errors carry a unique numeric code so that a client can
tell a rejected multisig approval from a malformed message without parsing
strings.

Declare extension specific root errors with Register during program startup.
Create runtime instances with Wrap, Wrapf or Error.New at the point of
failure so that a stack trace is attached:

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created

Validation code collects several failures with Append and attributes them to
a struct attribute with Field. Use FieldErrors to find them again.
*/
package errors
