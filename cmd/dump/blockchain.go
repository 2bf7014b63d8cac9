package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type remoteBlockchain struct {
	rpc *rpcclient.Client
}

func newRemoteBlockChain(rpcEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), rpcEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("init Neo RPC client: %w", err)
	}

	err = c.Init()
	if err != nil {
		return nil, fmt.Errorf("initialize Neo RPC client: %w", err)
	}

	return &remoteBlockchain{
		rpc: c,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// iterateContractStorage walks over all storage items of the given contract
// at the latest state rooted in the chain and passes them into f.
func (x *remoteBlockchain) iterateContractStorage(contract util.Uint160, f func(key, value []byte) error) error {
	blockHeight, err := x.rpc.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get chain height: %w", err)
	}

	stateRoot, err := x.rpc.GetStateRootByHeight(blockHeight - 1)
	if err != nil {
		return fmt.Errorf("get state root at height %d: %w", blockHeight-1, err)
	}

	var start []byte

	for {
		res, err := x.rpc.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("find states of the contract: %w", err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
