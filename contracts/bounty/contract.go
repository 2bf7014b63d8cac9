package bounty

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/Mridul-06-stack/helix-final/common"
	cst "github.com/Mridul-06-stack/helix-final/contracts/bounty/bountyconst"
)

type (
	// Bounty is a standing, funded request for query responses against data
	// tokens. The bounty ID is the storage key, not a struct field.
	Bounty struct {
		Creator           interop.Hash160
		QueryKind         string
		QueryParams       string
		RewardPerResponse int
		MaxResponses      int
		ResponseCount     int
		TotalFunded       int
		RemainingFunds    int
		CreatedAt         int
		ExpiresAt         int
		Active            bool
	}

	// Response records one accepted answer to a bounty. Proof bytes are
	// stored as opaque evidence, verification happens off-chain.
	Response struct {
		BountyID     int
		TokenID      int
		Responder    interop.Hash160
		ResultDigest interop.Hash256
		Proof        []byte
		ResultValue  bool
		Timestamp    int
		Paid         bool
	}

	// genomeToken mirrors the genome registry's DataToken layout for
	// cross-contract reads.
	genomeToken struct {
		Owner         interop.Hash160
		ContentRef    string
		ContentHash   interop.Hash256
		EncryptionTag string
		Category      string
		CreatedAt     int
		SizeBytes     int
		Active        bool
	}
)

const (
	genomeContractKey  = "genomeScriptHash"
	creditsContractKey = "creditsScriptHash"
	platformFeeKey     = "platformFeeBps"
	pausedKey          = "paused"
	bountyCounterKey   = "bountyCounter"
	responseCounterKey = "responseCounter"
	totalEscrowKey     = "totalEscrow"

	bountyKeyPrefix   = 'b'
	responseKeyPrefix = 'r'
	pairKeyPrefix     = 'p'

	idKeySize = 8
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrGenome     interop.Hash160
		addrCredits    interop.Hash160
		platformFeeBps int
	})

	if len(args.addrGenome) != interop.Hash160Len || len(args.addrCredits) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}
	if args.platformFeeBps < 0 || args.platformFeeBps > cst.MaxPlatformFeeBps {
		panic("platform fee out of range")
	}

	storage.Put(ctx, genomeContractKey, args.addrGenome)
	storage.Put(ctx, creditsContractKey, args.addrCredits)
	storage.Put(ctx, platformFeeKey, args.platformFeeBps)

	runtime.Log("bounty market initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("bounty market updated")
}

// CreateBounty escrows funds for a new bounty and returns its ID. The
// creator must sign the transaction. The provided funds must cover
// rewardPerResponse*maxResponses plus the platform fee; change above that is
// refunded as the final effect of the operation.
//
// Produces BountyCreated notification.
func CreateBounty(creator interop.Hash160, queryKind, queryParams string,
	rewardPerResponse, maxResponses, durationSeconds, fundsProvided int) int {
	ctx := storage.GetContext()

	if common.GetBool(ctx, pausedKey) {
		panic(cst.ErrPaused)
	}

	common.CheckOwnerWitness(creator)

	if len(queryKind) == 0 || len(queryParams) == 0 {
		panic("empty query")
	}
	if rewardPerResponse <= 0 {
		panic("non-positive reward")
	}
	if maxResponses <= 0 {
		panic("non-positive response limit")
	}

	durationMs := durationSeconds * 1_000
	if durationMs < cst.MinBountyDurationMs || durationMs > cst.MaxBountyDurationMs {
		panic("invalid bounty duration")
	}

	required := rewardPerResponse * maxResponses
	fee := required * common.GetInt(ctx, platformFeeKey) / cst.FeeDenominator
	totalOwed := required + fee
	if fundsProvided < totalOwed {
		panic(cst.ErrInsufficientFunding)
	}

	id := common.GetInt(ctx, bountyCounterKey) + 1
	storage.Put(ctx, bountyCounterKey, id)

	now := runtime.GetTime()
	b := Bounty{
		Creator:           creator,
		QueryKind:         queryKind,
		QueryParams:       queryParams,
		RewardPerResponse: rewardPerResponse,
		MaxResponses:      maxResponses,
		ResponseCount:     0,
		TotalFunded:       required,
		RemainingFunds:    required,
		CreatedAt:         now,
		ExpiresAt:         now + durationMs,
		Active:            true,
	}
	putBounty(ctx, id, b)
	storage.Put(ctx, totalEscrowKey, common.GetInt(ctx, totalEscrowKey)+required)

	creditsContractAddr := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	contract.Call(creditsContractAddr, "transferX", contract.All,
		creator, self, totalOwed, common.EscrowTransferDetails(id))
	if fundsProvided > totalOwed {
		contract.Call(creditsContractAddr, "transferX", contract.All,
			self, creator, fundsProvided-totalOwed, common.RefundTransferDetails(id))
	}

	runtime.Log("created new bounty")
	runtime.Notify("BountyCreated", id, creator, required, b.ExpiresAt)

	return id
}

// CancelBounty deactivates the bounty and refunds all remaining escrow to
// its creator. Only the creator may cancel; a second cancel attempt fails
// because the bounty is no longer active.
//
// Produces BountyCancelled notification.
func CancelBounty(bountyID int, caller interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(caller)

	b := getBounty(ctx, bountyID)
	if !common.BytesEqual(b.Creator, caller) {
		panic(cst.ErrNotCreator)
	}
	if !b.Active {
		panic(cst.ErrNotActive)
	}

	refund := b.RemainingFunds
	b.Active = false
	b.RemainingFunds = 0
	putBounty(ctx, bountyID, b)
	storage.Put(ctx, totalEscrowKey, common.GetInt(ctx, totalEscrowKey)-refund)

	if refund > 0 {
		creditsContractAddr := storage.Get(ctx, creditsContractKey).(interop.Hash160)
		contract.Call(creditsContractAddr, "transferX", contract.All,
			runtime.GetExecutingScriptHash(), b.Creator, refund,
			common.RefundTransferDetails(bountyID))
	}

	runtime.Log("cancelled bounty")
	runtime.Notify("BountyCancelled", bountyID, refund)
}

// RespondToBounty admits one response from the owner of the specified data
// token and pays the reward in the same transaction, so no response is ever
// recorded unpaid. Returns the response ID. Expiry is checked at call time,
// an expired bounty stays Active until ProcessExpired runs over it.
//
// Produces ResponseSubmitted notification.
func RespondToBounty(bountyID, tokenID int, resultValue bool, proof []byte,
	caller interop.Hash160) int {
	ctx := storage.GetContext()

	if common.GetBool(ctx, pausedKey) {
		panic(cst.ErrPaused)
	}

	common.CheckOwnerWitness(caller)

	b := getBounty(ctx, bountyID)
	if !b.Active {
		panic(cst.ErrNotActive)
	}

	now := runtime.GetTime()
	if now >= b.ExpiresAt {
		panic(cst.ErrExpired)
	}
	if b.ResponseCount >= b.MaxResponses {
		panic(cst.ErrFull)
	}
	if storage.Get(ctx, pairKey(bountyID, tokenID)) != nil {
		panic(cst.ErrAlreadyResponded)
	}

	// The market trusts the genome registry for ownership and activity only,
	// both reads are state-only cross-calls.
	genomeContractAddr := storage.Get(ctx, genomeContractKey).(interop.Hash160)
	owner := contract.Call(genomeContractAddr, "ownerOf", contract.ReadOnly, tokenID).(interop.Hash160)
	if !common.BytesEqual(owner, caller) {
		panic(cst.ErrNotTokenOwner)
	}

	t := contract.Call(genomeContractAddr, "getMetadata", contract.ReadOnly, tokenID).(genomeToken)
	if !t.Active {
		panic(cst.ErrGenomeInactive)
	}

	id := common.GetInt(ctx, responseCounterKey) + 1
	storage.Put(ctx, responseCounterKey, id)

	r := Response{
		BountyID:     bountyID,
		TokenID:      tokenID,
		Responder:    caller,
		ResultDigest: resultDigest(bountyID, tokenID, caller, resultValue, now),
		Proof:        proof,
		ResultValue:  resultValue,
		Timestamp:    now,
		Paid:         true,
	}
	common.SetSerialized(ctx, responseKey(id), r)
	storage.Put(ctx, pairKey(bountyID, tokenID), id)

	b.ResponseCount = b.ResponseCount + 1
	b.RemainingFunds = b.RemainingFunds - b.RewardPerResponse
	if b.ResponseCount == b.MaxResponses {
		b.Active = false
	}
	putBounty(ctx, bountyID, b)
	storage.Put(ctx, totalEscrowKey, common.GetInt(ctx, totalEscrowKey)-b.RewardPerResponse)

	creditsContractAddr := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	contract.Call(creditsContractAddr, "transferX", contract.All,
		runtime.GetExecutingScriptHash(), caller, b.RewardPerResponse,
		common.RewardTransferDetails(bountyID, id))

	runtime.Log("admitted bounty response")
	runtime.Notify("ResponseSubmitted", bountyID, id, caller, b.RewardPerResponse)

	return id
}

// CanRespond mirrors RespondToBounty preconditions without admitting
// anything. It never panics: any fault, including one from the genome
// registry cross-call, reads as "cannot respond".
func CanRespond(tokenID, bountyID int) bool {
	ctx := storage.GetReadOnlyContext()

	if common.GetBool(ctx, pausedKey) {
		return false
	}

	data := storage.Get(ctx, bountyKey(bountyID))
	if data == nil {
		return false
	}
	b := std.Deserialize(data.([]byte)).(Bounty)

	if !b.Active || runtime.GetTime() >= b.ExpiresAt || b.ResponseCount >= b.MaxResponses {
		return false
	}
	if storage.Get(ctx, pairKey(bountyID, tokenID)) != nil {
		return false
	}

	return tokenRespondable(ctx, tokenID)
}

// tokenRespondable reports whether the data token exists and is active,
// swallowing faults from the genome registry.
func tokenRespondable(ctx storage.Context, tokenID int) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	genomeContractAddr := storage.Get(ctx, genomeContractKey).(interop.Hash160)
	t := contract.Call(genomeContractAddr, "getMetadata", contract.ReadOnly, tokenID).(genomeToken)

	return t.Active
}

// ProcessExpired deactivates every listed bounty whose deadline has passed
// and refunds its remaining escrow to the creator. Unknown, still-running
// and already-inactive bounties are skipped. This is the explicit batch
// counterpart of the lazy expiry check in RespondToBounty.
//
// Produces BountyExpired notification per processed bounty.
func ProcessExpired(bountyIDs []int) {
	ctx := storage.GetContext()

	now := runtime.GetTime()
	creditsContractAddr := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	for i := 0; i < len(bountyIDs); i++ {
		id := bountyIDs[i]

		data := storage.Get(ctx, bountyKey(id))
		if data == nil {
			continue
		}
		b := std.Deserialize(data.([]byte)).(Bounty)
		if !b.Active || now < b.ExpiresAt {
			continue
		}

		refund := b.RemainingFunds
		b.Active = false
		b.RemainingFunds = 0
		putBounty(ctx, id, b)
		storage.Put(ctx, totalEscrowKey, common.GetInt(ctx, totalEscrowKey)-refund)

		if refund > 0 {
			contract.Call(creditsContractAddr, "transferX", contract.All,
				self, b.Creator, refund, common.RefundTransferDetails(id))
		}

		runtime.Notify("BountyExpired", id, refund)
	}
}

// GetBounty returns the stored bounty descriptor.
//
// If the bounty doesn't exist, it panics with ErrNotFound.
func GetBounty(bountyID int) Bounty {
	ctx := storage.GetReadOnlyContext()
	return getBounty(ctx, bountyID)
}

// GetResponse returns the stored response descriptor.
//
// If the response doesn't exist, it panics with ErrNotFound.
func GetResponse(responseID int) Response {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, responseKey(responseID))
	if data == nil {
		panic(cst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Response)
}

// ListActiveBounties returns IDs of all bounties still marked active. Note
// that this includes expired-but-unprocessed bounties, see ProcessExpired.
func ListActiveBounties() []int {
	ctx := storage.GetReadOnlyContext()

	var result []int

	it := storage.Find(ctx, []byte{bountyKeyPrefix}, storage.RemovePrefix|storage.DeserializeValues)
	for iterator.Next(it) {
		pair := iterator.Value(it).([]any)
		key := pair[0].([]byte)
		b := pair[1].(Bounty)
		if b.Active {
			result = append(result, convert.ToInteger(key))
		}
	}

	return result
}

// ListResponses returns IDs of all responses admitted to the bounty.
func ListResponses(bountyID int) []int {
	ctx := storage.GetReadOnlyContext()

	var result []int

	prefix := append([]byte{pairKeyPrefix}, idBytes(bountyID)...)
	it := storage.Find(ctx, prefix, storage.ValuesOnly)
	for iterator.Next(it) {
		id := iterator.Value(it).(int)
		result = append(result, id)
	}

	return result
}

// TotalEscrow returns the sum of remaining escrowed funds across all
// bounties.
func TotalEscrow() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, totalEscrowKey)
}

// PlatformFeeBps returns the current platform fee in basis points.
func PlatformFeeBps() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, platformFeeKey)
}

// IsPaused reports whether the market currently rejects bounty creation and
// responses.
func IsPaused() bool {
	ctx := storage.GetReadOnlyContext()
	return common.GetBool(ctx, pausedKey)
}

// SetPlatformFee updates the platform fee, capped at 10%. It can be invoked
// by committee only.
func SetPlatformFee(bps int) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	if bps < 0 || bps > cst.MaxPlatformFeeBps {
		panic("platform fee out of range")
	}

	storage.Put(ctx, platformFeeKey, bps)
	runtime.Log("updated platform fee")
}

// SetAccessRegistry points the market at another genome registry contract.
// It can be invoked by committee only.
func SetAccessRegistry(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	if len(addr) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, genomeContractKey, addr)
	runtime.Log("updated genome registry reference")
}

// Pause stops bounty creation and responses. It can be invoked by committee
// only. Cancellation and expiry processing keep working while paused so
// escrowed funds are never locked in.
func Pause() {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	storage.Put(ctx, pausedKey, true)
	runtime.Log("bounty market paused")
}

// Unpause resumes bounty creation and responses. It can be invoked by
// committee only.
func Unpause() {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	storage.Delete(ctx, pausedKey)
	runtime.Log("bounty market unpaused")
}

// WithdrawFees transfers accumulated platform revenue, the market's credit
// balance above the escrow it still owes, to the specified account. It can
// be invoked by committee only.
//
// Produces FeesWithdrawn notification.
func WithdrawFees(to interop.Hash160) {
	ctx := storage.GetReadOnlyContext()
	common.CheckCommitteeWitness()

	if len(to) != interop.Hash160Len {
		panic("invalid recipient")
	}

	creditsContractAddr := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()
	balance := contract.Call(creditsContractAddr, "balanceOf", contract.ReadOnly, self).(int)
	revenue := balance - common.GetInt(ctx, totalEscrowKey)
	if revenue <= 0 {
		return
	}

	contract.Call(creditsContractAddr, "transferX", contract.All,
		self, to, revenue, common.PlatformFeeTransferDetails())

	runtime.Log("platform fees withdrawn")
	runtime.Notify("FeesWithdrawn", to, revenue)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func resultDigest(bountyID, tokenID int, responder interop.Hash160, resultValue bool, timestamp int) interop.Hash256 {
	data := append(idBytes(bountyID), idBytes(tokenID)...)
	data = append(data, responder...)
	if resultValue {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}
	data = append(data, convert.ToBytes(timestamp)...)

	return crypto.Sha256(data)
}

// idBytes encodes the ID as a fixed-width key fragment so that prefix scans
// over composite keys cannot cross ID boundaries.
func idBytes(id int) []byte {
	b := convert.ToBytes(id)
	for len(b) < idKeySize {
		b = append(b, 0)
	}

	return b
}

func bountyKey(id int) []byte {
	return append([]byte{bountyKeyPrefix}, idBytes(id)...)
}

func responseKey(id int) []byte {
	return append([]byte{responseKeyPrefix}, idBytes(id)...)
}

func pairKey(bountyID, tokenID int) []byte {
	key := append([]byte{pairKeyPrefix}, idBytes(bountyID)...)
	return append(key, idBytes(tokenID)...)
}

func putBounty(ctx storage.Context, id int, b Bounty) {
	common.SetSerialized(ctx, bountyKey(id), b)
}

func getBounty(ctx storage.Context, id int) Bounty {
	data := storage.Get(ctx, bountyKey(id))
	if data == nil {
		panic(cst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Bounty)
}
