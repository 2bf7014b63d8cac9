package credits

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/Mridul-06-stack/helix-final/common"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}

	// Account stores the credit balance of a single Helix account.
	Account struct {
		Balance int
	}
)

const (
	symbol      = "HLXC"
	decimals    = 8
	circulation = "HelixCredits"

	genomeContractKey = "genomeScriptHash"
	bountyContractKey = "bountyScriptHash"
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrGenome interop.Hash160
		addrBounty interop.Hash160
	})

	if len(args.addrGenome) != interop.Hash160Len || len(args.addrBounty) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, genomeContractKey, args.addrGenome)
	storage.Put(ctx, bountyContractKey, args.addrBounty)

	runtime.Log("credits contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("credits contract updated")
}

// Symbol is a NEP-17 standard method that returns Helix credits symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of Helix
// credit balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns total amount of
// credits in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the credit balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers credits from one
// account to another. Can be invoked only by the account owner.
//
// Produces Transfer and TransferX notifications. TransferX notification
// will have empty details field.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, nil)
}

// TransferX transfers credits from one account to another with an attached
// details blob. Can be invoked by the committee or by the genome registry and
// bounty market contracts, which use it to charge fees, hold escrow and pay
// rewards.
//
// Produces Transfer and TransferX notifications.
func TransferX(from, to interop.Hash160, amount int, details []byte) {
	ctx := storage.GetContext()

	systemCall := fromSystemContract(ctx)
	if !systemCall {
		common.CheckCommitteeWitness()
	}

	result := token.transfer(ctx, from, to, amount, true, details)
	if !result {
		panic("can't transfer assets")
	}

	runtime.Log("successfully transferred assets")
}

// Mint issues new credits to the specified account. Can be invoked only by
// the committee.
//
// Produces Mint, Transfer and TransferX notifications. Mint increases total
// supply of the credits token.
func Mint(to interop.Hash160, amount int, txDetails []byte) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	ok := token.transfer(ctx, nil, to, amount, true, txDetails)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were minted")
	runtime.Notify("Mint", to, amount)
}

// Burn destroys credits held by the specified account. Can be invoked only by
// the committee. Burn decreases total supply of the credits token.
//
// Produces Burn, Transfer and TransferX notifications.
func Burn(from interop.Hash160, amount int, txDetails []byte) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	ok := token.transfer(ctx, from, nil, amount, true, txDetails)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	supply = supply - amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were burned")
	runtime.Notify("Burn", from, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// fromSystemContract reports whether the calling contract is one of the two
// registered Helix system contracts.
func fromSystemContract(ctx storage.Context) bool {
	caller := runtime.GetCallingScriptHash()
	if common.FromKnownContract(ctx, caller, genomeContractKey) {
		return true
	}

	return common.FromKnownContract(ctx, caller, bountyContractKey)
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	acc := getAccount(ctx, holder)

	return acc.Balance
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, system bool, details []byte) bool {
	amountFrom, ok := t.canTransfer(ctx, from, to, amount, system)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		if amountFrom.Balance == amount {
			storage.Delete(ctx, from)
		} else {
			amountFrom.Balance = amountFrom.Balance - amount
			common.SetSerialized(ctx, from, amountFrom)
		}
	}

	if len(to) == interop.Hash160Len {
		amountTo := getAccount(ctx, to)
		amountTo.Balance = amountTo.Balance + amount
		common.SetSerialized(ctx, to, amountTo)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// canTransfer returns the amount it can transfer.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, system bool) (Account, bool) {
	var (
		emptyAcc = Account{}
	)

	if amount < 0 {
		runtime.Log("negative amount")
		return emptyAcc, false
	}

	if !system {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return emptyAcc, false
		}
	} else if len(from) == 0 {
		return emptyAcc, true
	}

	amountFrom := getAccount(ctx, from)
	if amountFrom.Balance < amount {
		runtime.Log("not enough assets")
		return emptyAcc, false
	}

	// return amountFrom value back to transfer, reduces extra Get
	return amountFrom, true
}

// isUsableAddress checks if the sender is either a signer of the transaction
// or the calling smart contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}

func getAccount(ctx storage.Context, key any) Account {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}
