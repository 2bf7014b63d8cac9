package genome

import (
	"github.com/Mridul-06-stack/helix-final/contracts/genome/genomeconst"
)

const (
	// NotFoundError is returned on lookups of never-minted tokens.
	NotFoundError = genomeconst.ErrNotFound

	// DeactivatedError is returned on content reference reads of
	// deactivated tokens.
	DeactivatedError = genomeconst.ErrDeactivated

	// UnauthorizedError is returned when the caller holds neither the token
	// nor a valid grant.
	UnauthorizedError = genomeconst.ErrUnauthorized
)
