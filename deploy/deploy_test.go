package deploy

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func testPrm() Prm {
	var prm Prm
	for i, c := range []*CommonDeployPrm{
		&prm.CreditsContract.Common,
		&prm.GenomeContract.Common,
		&prm.BountyContract.Common,
		&prm.ResearcherContract.Common,
	} {
		c.NEF = nef.File{Checksum: uint32(100 + i)}
		c.Manifest = manifest.Manifest{Name: []string{"Helix Credits", "Helix Genome Access Registry", "Helix Bounty Market", "Helix Researcher Registry"}[i]}
	}
	return prm
}

func TestPrecompute(t *testing.T) {
	prm := testPrm()
	sender := util.Uint160{1, 2, 3}

	addrs := Precompute(sender, prm)
	require.NotEqual(t, util.Uint160{}, addrs.Credits)
	require.NotEqual(t, addrs.Credits, addrs.Genome)
	require.NotEqual(t, addrs.Genome, addrs.Bounty)
	require.NotEqual(t, addrs.Bounty, addrs.Researcher)

	// Addresses are a pure function of sender, checksum and manifest name.
	require.Equal(t, addrs, Precompute(sender, prm))
	require.NotEqual(t, addrs, Precompute(util.Uint160{4, 5, 6}, prm))

	other := testPrm()
	other.GenomeContract.Common.NEF.Checksum++
	otherAddrs := Precompute(sender, other)
	require.NotEqual(t, addrs.Genome, otherAddrs.Genome)
	require.Equal(t, addrs.Credits, otherAddrs.Credits)
}
