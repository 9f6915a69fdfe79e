/*
Package multisig implements the 3 of 5 approval tracker that guards the
sensitive administrative fields.

A Registry maps signer identities to slots. Slot 0 belongs to the super
admin and slots 1 to 4 to the delegates. A Tracker holds at most one pending
value together with the set of slots that approved it. Once RequiredApprovals
distinct slots approved the same value, the tracker reports it as applied and
returns to the idle state.

The package holds no storage. Callers load the tracker from their own record,
run a single operation and persist the result only if it succeeded.
*/
package multisig
