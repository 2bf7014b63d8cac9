package bountyconst

const (
	// MinBountyDurationMs is the shortest allowed bounty lifetime (1 hour).
	MinBountyDurationMs = 3600 * 1_000
	// MaxBountyDurationMs is the longest allowed bounty lifetime (30 days).
	MaxBountyDurationMs = 30 * 24 * 3600 * 1_000

	// FeeDenominator is the basis point denominator for the platform fee.
	FeeDenominator = 10_000
	// MaxPlatformFeeBps caps the platform fee at 10%.
	MaxPlatformFeeBps = 1_000

	// ErrNotFound is returned if the bounty or response does not exist.
	ErrNotFound = "bounty does not exist"
	// ErrNotActive is returned on operations over cancelled, filled or
	// processed-expired bounties.
	ErrNotActive = "bounty is not active"
	// ErrExpired is returned on responses submitted past the bounty deadline.
	ErrExpired = "bounty has expired"
	// ErrFull is returned once the bounty collected its maximum responses.
	ErrFull = "bounty response limit reached"
	// ErrAlreadyResponded is returned on a second response with the same
	// data token.
	ErrAlreadyResponded = "data token already responded to this bounty"
	// ErrNotTokenOwner is returned when the responder does not own the data
	// token it responds with.
	ErrNotTokenOwner = "responder does not own the data token"
	// ErrGenomeInactive is returned on responses with a deactivated data token.
	ErrGenomeInactive = "data token is deactivated"
	// ErrNotCreator is returned on cancellation by anyone but the creator.
	ErrNotCreator = "only bounty creator can cancel"
	// ErrInsufficientFunding is returned when the provided funds do not cover
	// escrow plus platform fee.
	ErrInsufficientFunding = "insufficient bounty funding"
	// ErrPaused is returned while the market is paused.
	ErrPaused = "bounty market is paused"
)
