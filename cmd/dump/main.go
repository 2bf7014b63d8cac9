package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	creditsAddr := flag.String("credits", "", "LE hex address of the Credits contract")
	genomeAddr := flag.String("genome", "", "LE hex address of the Genome contract")
	bountyAddr := flag.String("bounty", "", "LE hex address of the Bounty contract")
	researcherAddr := flag.String("researcher", "", "LE hex address of the Researcher contract")

	flag.Parse()

	if *neoRPCEndpoint == "" {
		log.Fatal("missing Neo RPC endpoint")
	}

	contracts := map[string]string{
		"credits":    *creditsAddr,
		"genome":     *genomeAddr,
		"bounty":     *bountyAddr,
		"researcher": *researcherAddr,
	}
	for name, addr := range contracts {
		if addr == "" {
			log.Fatalf("missing address of the '%s' contract", name)
		}
	}

	const rootDir = "testdata"

	err := os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, rootDir, contracts)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Helix contracts are successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir string, contracts map[string]string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	for name, addr := range contracts {
		log.Printf("Processing contract '%s'...\n", name)

		h, err := util.Uint160DecodeStringLE(addr)
		if err != nil {
			return fmt.Errorf("decode '%s' contract address: %w", name, err)
		}

		err = dumpContractStorage(b, h, filepath.Join(rootDir, name+".storage.json"))
		if err != nil {
			return fmt.Errorf("dump '%s' contract storage: %w", name, err)
		}
	}

	return nil
}

type storageItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func dumpContractStorage(b *remoteBlockchain, contract util.Uint160, path string) error {
	var items []storageItem

	err := b.iterateContractStorage(contract, func(key, value []byte) error {
		items = append(items, storageItem{
			Key:   base64.StdEncoding.EncodeToString(key),
			Value: base64.StdEncoding.EncodeToString(value),
		})
		return nil
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", " ")

	return enc.Encode(items)
}
