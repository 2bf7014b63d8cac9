package tests

import (
	"math/rand"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/stretchr/testify/require"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// warpTime appends a block whose timestamp lies deltaMS milliseconds after
// the current top block, moving the chain clock forward for the contracts.
func warpTime(t *testing.T, c *neotest.ContractInvoker, deltaMS uint64) {
	b := c.NewUnsignedBlock(t)
	b.Timestamp = c.TopBlock(t).Timestamp + deltaMS
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
}
