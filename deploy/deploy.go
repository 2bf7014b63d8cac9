// Package deploy provides deployment routine of the Helix system contracts.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services of the Neo blockchain network required for Helix
// contract deployment.
type Blockchain interface {
	actor.RPCActor

	// GetCommittee returns list of public keys owned by Neo blockchain
	// committee members.
	GetCommittee() (keys.PublicKeys, error)

	// GetContractStateByHash returns network state of the smart contract by
	// its address. The error contains 'Unknown contract' substring if the
	// requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of a smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// CreditsContractPrm groups deployment parameters of the Credits contract.
type CreditsContractPrm struct {
	Common CommonDeployPrm
}

// GenomeContractPrm groups deployment parameters of the Genome contract.
type GenomeContractPrm struct {
	Common  CommonDeployPrm
	MintFee int64
}

// BountyContractPrm groups deployment parameters of the Bounty contract.
type BountyContractPrm struct {
	Common         CommonDeployPrm
	PlatformFeeBps int64
}

// ResearcherContractPrm groups deployment parameters of the Researcher
// contract.
type ResearcherContractPrm struct {
	Common             CommonDeployPrm
	MinReputationScore int64
}

// Prm groups all parameters of the Helix chain deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	CreditsContract    CreditsContractPrm
	GenomeContract     GenomeContractPrm
	BountyContract     BountyContractPrm
	ResearcherContract ResearcherContractPrm
}

// Addresses carries the on-chain addresses of all Helix system contracts.
type Addresses struct {
	Credits    util.Uint160
	Genome     util.Uint160
	Bounty     util.Uint160
	Researcher util.Uint160
}

// Precompute calculates the addresses the Helix contracts will get when
// deployed by the given sender. The contracts reference each other in both
// directions (credits trusts genome and bounty, bounty calls genome and
// credits), so every constructor receives addresses computed ahead of the
// actual deployment.
func Precompute(sender util.Uint160, prm Prm) Addresses {
	return Addresses{
		Credits:    state.CreateContractHash(sender, prm.CreditsContract.Common.NEF.Checksum, prm.CreditsContract.Common.Manifest.Name),
		Genome:     state.CreateContractHash(sender, prm.GenomeContract.Common.NEF.Checksum, prm.GenomeContract.Common.Manifest.Name),
		Bounty:     state.CreateContractHash(sender, prm.BountyContract.Common.NEF.Checksum, prm.BountyContract.Common.Manifest.Name),
		Researcher: state.CreateContractHash(sender, prm.ResearcherContract.Common.NEF.Checksum, prm.ResearcherContract.Common.Manifest.Name),
	}
}

// Deploy puts all Helix system contracts on the chain represented by
// Prm.Blockchain and returns their addresses. Contracts already present on
// the chain are left untouched, so the procedure may be re-run after a
// partial failure.
//
// Deployment order is fixed: Credits, Genome, Bounty, Researcher. All
// cross-contract references are precomputed from the deployer account, see
// Precompute.
func Deploy(ctx context.Context, prm Prm) (Addresses, error) {
	committee, err := prm.Blockchain.GetCommittee()
	if err != nil {
		return Addresses{}, fmt.Errorf("get Neo committee of the network: %w", err)
	}

	localPublicKey := prm.LocalAccount.PrivateKey().PublicKey()
	inCommittee := false
	for i := range committee {
		if committee[i].Equal(localPublicKey) {
			inCommittee = true
			break
		}
	}
	if !inCommittee {
		return Addresses{}, errors.New("local account does not belong to any Neo committee member")
	}

	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return Addresses{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	sender := prm.LocalAccount.ScriptHash()
	addrs := Precompute(sender, prm)

	mgmt := management.New(localActor)

	stages := []struct {
		name     string
		common   CommonDeployPrm
		expected util.Uint160
		data     any
	}{
		{
			name:     "Credits",
			common:   prm.CreditsContract.Common,
			expected: addrs.Credits,
			data:     []any{addrs.Genome, addrs.Bounty},
		},
		{
			name:     "Genome",
			common:   prm.GenomeContract.Common,
			expected: addrs.Genome,
			data:     []any{addrs.Credits, prm.GenomeContract.MintFee},
		},
		{
			name:     "Bounty",
			common:   prm.BountyContract.Common,
			expected: addrs.Bounty,
			data:     []any{addrs.Genome, addrs.Credits, prm.BountyContract.PlatformFeeBps},
		},
		{
			name:     "Researcher",
			common:   prm.ResearcherContract.Common,
			expected: addrs.Researcher,
			data:     []any{addrs.Bounty, prm.ResearcherContract.MinReputationScore},
		},
	}

	for i := range stages {
		err = deployContract(prm.Blockchain, prm.Logger, localActor, mgmt, stages[i].name,
			stages[i].common, stages[i].expected, stages[i].data)
		if err != nil {
			return Addresses{}, fmt.Errorf("deploy %s contract: %w", stages[i].name, err)
		}
	}

	prm.Logger.Info("all Helix contracts are on the chain",
		zap.Stringer("credits", addrs.Credits),
		zap.Stringer("genome", addrs.Genome),
		zap.Stringer("bounty", addrs.Bounty),
		zap.Stringer("researcher", addrs.Researcher))

	return addrs, nil
}

func deployContract(b Blockchain, l *zap.Logger, a *actor.Actor, mgmt *management.Contract,
	name string, prmCommon CommonDeployPrm, expected util.Uint160, data any) error {
	alreadyOnChain, err := contractPresent(b, expected)
	if err != nil {
		return fmt.Errorf("check %s contract presence: %w", name, err)
	}
	if alreadyOnChain {
		l.Info("contract is already on the chain, skipping",
			zap.String("contract", name), zap.Stringer("address", expected))
		return nil
	}

	l.Info("deploying contract...", zap.String("contract", name), zap.Stringer("address", expected))

	txHash, vub, err := mgmt.Deploy(&prmCommon.NEF, &prmCommon.Manifest, data)
	if err != nil {
		return fmt.Errorf("send deployment transaction: %w", err)
	}

	res, err := a.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for deployment transaction %s: %w", txHash.StringLE(), err)
	}
	if res.VMState.HasFlag(vmstate.Fault) {
		return fmt.Errorf("deployment transaction %s failed: %s", txHash.StringLE(), res.FaultException)
	}

	l.Info("contract successfully deployed",
		zap.String("contract", name), zap.Stringer("address", expected))

	return nil
}

func contractPresent(b Blockchain, addr util.Uint160) (bool, error) {
	_, err := b.GetContractStateByHash(addr)
	if err != nil {
		if strings.Contains(err.Error(), "Unknown contract") {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
