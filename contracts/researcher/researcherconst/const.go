package researcherconst

// Researcher market statuses.
const (
	StatusUnregistered  = 0
	StatusPending       = 1
	StatusEmailVerified = 2
	StatusFullyVerified = 3
	StatusSuspended     = 4
	StatusRevoked       = 5
)

// Reputation score bounds.
const (
	DefaultReputationScore = 50
	MaxReputationScore     = 100
)

// Researcher registry errors.
const (
	// ErrNotFound is returned when the researcher is not registered.
	ErrNotFound = "researcher is not registered"
	// ErrAlreadyRegistered is returned on a repeated register call from the
	// same account.
	ErrAlreadyRegistered = "researcher is already registered"
	// ErrEmailTaken is returned when the email is claimed by another
	// registered researcher.
	ErrEmailTaken = "email is already in use"
	// ErrNotVerifier is returned when the caller is not in the verifier set.
	ErrNotVerifier = "caller is not an authorized verifier"
	// ErrBadTransition is returned on a status change that the researcher
	// lifecycle does not allow.
	ErrBadTransition = "status transition is not allowed"
	// ErrRevoked is returned on any attempt to move a revoked researcher.
	ErrRevoked = "researcher verification is revoked"
	// ErrNotMarket is returned when bounty statistics are reported by anyone
	// but the bounty market contract.
	ErrNotMarket = "caller is not the bounty market"
	// ErrMissingField is returned when a required registration string is
	// empty.
	ErrMissingField = "missing required field"
	// ErrInvalidStatus is returned when the researcher's current status does
	// not permit the requested operation.
	ErrInvalidStatus = "operation is not allowed in the current status"
	// ErrNotSuspended is returned on reactivation of a researcher who is not
	// suspended.
	ErrNotSuspended = "researcher is not suspended"
	// ErrInvalidScore is returned on a reputation score outside 0..100.
	ErrInvalidScore = "reputation score out of range"
	// ErrRequestProcessed is returned on a repeated processing attempt of the
	// same verification request.
	ErrRequestProcessed = "verification request is already processed"
)
