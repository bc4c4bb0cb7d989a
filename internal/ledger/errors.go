package ledger

import "errors"

// Error taxonomy for the ledger core. All failures are synchronous and leave
// no partial state behind; callers decide how to surface them.
var (
	// ErrNotFound means a referenced account or party does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSpec means an account or party spec is incomplete or
	// malformed.
	ErrInvalidSpec = errors.New("invalid spec")

	// ErrInvalidAmount means a zero, negative, or otherwise unusable amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmbiguousRole means more than one active account carries a role
	// that must resolve to exactly one account.
	ErrAmbiguousRole = errors.New("ambiguous account role")

	// ErrUnbalanced means a transaction's debits and credits differ. The
	// posting engine constructs balanced transactions, so this firing
	// indicates a programming error, not bad input.
	ErrUnbalanced = errors.New("unbalanced transaction")
)
