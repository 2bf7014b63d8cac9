package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// HasUpdateAccess reports whether the transaction carries the committee
// witness required to update a contract.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}
