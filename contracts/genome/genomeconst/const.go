package genomeconst

const (
	// MinGrantDurationMs is the shortest allowed access grant lifetime.
	MinGrantDurationMs = 1_000
	// MaxGrantDurationMs is the longest allowed access grant lifetime (1 day).
	MaxGrantDurationMs = 24 * 3600 * 1_000

	// ErrNotFound is returned if the data token was never minted.
	ErrNotFound = "data token does not exist"
	// ErrDeactivated is returned on content reference reads of a deactivated token.
	ErrDeactivated = "data token is deactivated"
	// ErrUnauthorized is returned when the caller is neither the token owner
	// nor a holder of a valid access grant.
	ErrUnauthorized = "caller has no access to the data token"
	// ErrInsufficientFee is returned if the declared fee payment does not
	// cover the current mint fee.
	ErrInsufficientFee = "insufficient mint fee"
	// ErrInvalidReference is returned on mint with an empty content reference.
	ErrInvalidReference = "invalid content reference"
	// ErrInvalidHash is returned on mint with a zero content hash.
	ErrInvalidHash = "invalid content hash"
	// ErrUntrustedDelegate is returned on access grants to identities missing
	// from the trusted delegate set.
	ErrUntrustedDelegate = "delegate is not trusted"
	// ErrInvalidDuration is returned on access grants with out-of-range lifetime.
	ErrInvalidDuration = "invalid grant duration"
)
