package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	creditsPath    = "../contracts/credits"
	genomePath     = "../contracts/genome"
	bountyPath     = "../contracts/bounty"
	researcherPath = "../contracts/researcher"
)

// Default deployment parameters shared by the tests. Individual tests
// override them through newHelixInvokers arguments.
const (
	defaultMintFee        = int64(25)
	defaultPlatformFeeBps = int64(250)
	defaultMinReputation  = int64(40)
)

// helixInvokers bundles committee invokers of the four deployed contracts
// over a single test chain.
type helixInvokers struct {
	executor   *neotest.Executor
	credits    *neotest.ContractInvoker
	genome     *neotest.ContractInvoker
	bounty     *neotest.ContractInvoker
	researcher *neotest.ContractInvoker
}

// newHelixInvokers spins up a fresh chain and deploys the full contract set
// on it. Contract hashes are known at compile time, so the mutual address
// references are wired in the deployment data before anything is on chain.
func newHelixInvokers(t *testing.T, mintFee, platformFeeBps, minReputation int64) *helixInvokers {
	e := newExecutor(t)

	ctrCredits := neotest.CompileFile(t, e.CommitteeHash, creditsPath, path.Join(creditsPath, "config.yml"))
	ctrGenome := neotest.CompileFile(t, e.CommitteeHash, genomePath, path.Join(genomePath, "config.yml"))
	ctrBounty := neotest.CompileFile(t, e.CommitteeHash, bountyPath, path.Join(bountyPath, "config.yml"))
	ctrResearcher := neotest.CompileFile(t, e.CommitteeHash, researcherPath, path.Join(researcherPath, "config.yml"))

	e.DeployContract(t, ctrCredits, []interface{}{ctrGenome.Hash, ctrBounty.Hash})
	e.DeployContract(t, ctrGenome, []interface{}{ctrCredits.Hash, mintFee})
	e.DeployContract(t, ctrBounty, []interface{}{ctrGenome.Hash, ctrCredits.Hash, platformFeeBps})
	e.DeployContract(t, ctrResearcher, []interface{}{ctrBounty.Hash, minReputation})

	return &helixInvokers{
		executor:   e,
		credits:    e.CommitteeInvoker(ctrCredits.Hash),
		genome:     e.CommitteeInvoker(ctrGenome.Hash),
		bounty:     e.CommitteeInvoker(ctrBounty.Hash),
		researcher: e.CommitteeInvoker(ctrResearcher.Hash),
	}
}

func newDefaultHelixInvokers(t *testing.T) *helixInvokers {
	return newHelixInvokers(t, defaultMintFee, defaultPlatformFeeBps, defaultMinReputation)
}

// fund mints fresh credits to the account on behalf of the committee.
func (h *helixInvokers) fund(t *testing.T, to util.Uint160, amount int64) {
	h.credits.Invoke(t, stackitem.Null{}, "mint", to, amount, []byte{})
}

// balance reads the credits balance of the account.
func (h *helixInvokers) balance(t *testing.T, acc util.Uint160) int64 {
	s, err := h.credits.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Top().BigInt().Int64()
}
