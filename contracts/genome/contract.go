package genome

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/Mridul-06-stack/helix-final/common"
	cst "github.com/Mridul-06-stack/helix-final/contracts/genome/genomeconst"
)

type (
	// DataToken describes a single tokenized genomic data blob. The token ID
	// is the storage key, not a struct field.
	DataToken struct {
		Owner         interop.Hash160
		ContentRef    string
		ContentHash   interop.Hash256
		EncryptionTag string
		Category      string
		CreatedAt     int
		SizeBytes     int
		Active        bool
	}

	// AccessGrant is a time-bounded delegation of content reference access.
	AccessGrant struct {
		Deadline int
		Valid    bool
	}
)

const (
	creditsContractKey = "creditsScriptHash"
	mintFeeKey         = "mintFee"
	tokenCounterKey    = "tokenCounter"

	tokenKeyPrefix    = 't'
	ownerKeyPrefix    = 'o'
	grantKeyPrefix    = 'g'
	delegateKeyPrefix = 'd'

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
		addrCredits interop.Hash160
		mintFee     int
	})

	if len(args.addrCredits) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}
	if args.mintFee < 0 {
		panic("negative mint fee")
	}

	storage.Put(ctx, creditsContractKey, args.addrCredits)
	storage.Put(ctx, mintFeeKey, args.mintFee)

	runtime.Log("genome registry initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("genome registry updated")
}

// Mint creates a new data token owned by the specified account and returns
// its ID. The owner must sign the transaction. The declared fee payment is
// debited from the owner's credits account and change above the current mint
// fee is returned as the final effect of the operation.
//
// Produces Minted notification.
func Mint(owner interop.Hash160, contentRef string, contentHash interop.Hash256,
	encryptionTag, category string, sizeBytes, feePaid int) int {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(owner)

	fee := common.GetInt(ctx, mintFeeKey)
	if feePaid < fee {
		panic(cst.ErrInsufficientFee)
	}
	if len(contentRef) == 0 {
		panic(cst.ErrInvalidReference)
	}
	if len(contentHash) != interop.Hash256Len || isZeroHash(contentHash) {
		panic(cst.ErrInvalidHash)
	}
	if sizeBytes < 0 {
		panic("negative data size")
	}

	id := common.GetInt(ctx, tokenCounterKey) + 1
	storage.Put(ctx, tokenCounterKey, id)

	t := DataToken{
		Owner:         owner,
		ContentRef:    contentRef,
		ContentHash:   contentHash,
		EncryptionTag: encryptionTag,
		Category:      category,
		CreatedAt:     runtime.GetTime(),
		SizeBytes:     sizeBytes,
		Active:        true,
	}
	putToken(ctx, id, t)
	addOwnerIndex(ctx, owner, id)

	creditsContractAddr := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()
	details := common.MintFeeTransferDetails(id)

	contract.Call(creditsContractAddr, "transferX", contract.All,
		owner, self, feePaid, details)
	if feePaid > fee {
		contract.Call(creditsContractAddr, "transferX", contract.All,
			self, owner, feePaid-fee, common.RefundTransferDetails(id))
	}

	runtime.Log("minted new data token")
	runtime.Notify("Minted", id, owner)

	return id
}

// GetMetadata returns the stored data token descriptor. Metadata is retained
// for deactivated tokens, only the Active flag flips.
//
// If the token was never minted, it panics with ErrNotFound.
func GetMetadata(tokenID int) DataToken {
	ctx := storage.GetReadOnlyContext()
	return getToken(ctx, tokenID)
}

// OwnerOf returns the current owner of the data token.
//
// If the token was never minted, it panics with ErrNotFound.
func OwnerOf(tokenID int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getToken(ctx, tokenID).Owner
}

// GetContentRef returns the pointer to the encrypted off-chain blob. The
// caller must sign the transaction and must be either the token owner or the
// holder of a currently valid access grant. This is the single authoritative
// access check for content pointers.
func GetContentRef(tokenID int, caller interop.Hash160) string {
	ctx := storage.GetReadOnlyContext()

	common.CheckOwnerWitness(caller)

	t := getToken(ctx, tokenID)
	if !t.Active {
		panic(cst.ErrDeactivated)
	}
	if !hasAccess(ctx, tokenID, t, caller) {
		panic(cst.ErrUnauthorized)
	}

	return t.ContentRef
}

// VerifyAccess reports whether the identity currently holds access to the
// data token, either by ownership or through a valid grant. It never panics:
// unknown tokens yield false.
func VerifyAccess(tokenID int, identity interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, tokenKey(tokenID))
	if data == nil {
		return false
	}
	t := std.Deserialize(data.([]byte)).(DataToken)

	return hasAccess(ctx, tokenID, t, identity)
}

// GrantAccess delegates content reference access for the token to a trusted
// delegate for the given number of seconds (1 second to 1 day). Only the
// current token owner may grant access.
//
// Produces AccessGranted notification.
func GrantAccess(tokenID int, delegate interop.Hash160, durationSeconds int) {
	ctx := storage.GetContext()

	t := getToken(ctx, tokenID)
	checkTokenOwner(t)

	if !common.GetBool(ctx, delegateStateKey(delegate)) {
		panic(cst.ErrUntrustedDelegate)
	}

	durationMs := durationSeconds * 1_000
	if durationMs < cst.MinGrantDurationMs || durationMs > cst.MaxGrantDurationMs {
		panic(cst.ErrInvalidDuration)
	}

	deadline := runtime.GetTime() + durationMs
	grant := AccessGrant{
		Deadline: deadline,
		Valid:    true,
	}
	common.SetSerialized(ctx, grantKey(tokenID, delegate), grant)

	runtime.Log("granted delegated access")
	runtime.Notify("AccessGranted", tokenID, delegate, deadline)
}

// RevokeAccess invalidates the delegate's access grant for the token. Only
// the current token owner may revoke. Revocation is idempotent.
//
// Produces AccessRevoked notification.
func RevokeAccess(tokenID int, delegate interop.Hash160) {
	ctx := storage.GetContext()

	t := getToken(ctx, tokenID)
	checkTokenOwner(t)

	key := grantKey(tokenID, delegate)
	data := storage.Get(ctx, key)
	if data != nil {
		grant := std.Deserialize(data.([]byte)).(AccessGrant)
		grant.Valid = false
		common.SetSerialized(ctx, key, grant)
	}

	runtime.Notify("AccessRevoked", tokenID, delegate)
}

// Transfer moves ownership of the data token to another account. Only the
// current token owner may transfer. Outstanding access grants do not survive
// the transfer, the new owner grants access anew.
//
// Produces Transferred notification.
func Transfer(tokenID int, to interop.Hash160) {
	ctx := storage.GetContext()

	if len(to) != interop.Hash160Len {
		panic("invalid recipient")
	}

	t := getToken(ctx, tokenID)
	checkTokenOwner(t)

	from := t.Owner
	removeOwnerIndex(ctx, from, tokenID)
	dropGrants(ctx, tokenID)

	t.Owner = to
	putToken(ctx, tokenID, t)
	addOwnerIndex(ctx, to, tokenID)

	runtime.Log("transferred data token")
	runtime.Notify("Transferred", tokenID, from, to)
}

// Deactivate permanently disables content reference reads for the token.
// Only the current token owner may deactivate. Metadata stays available.
//
// Produces Deactivated notification.
func Deactivate(tokenID int) {
	ctx := storage.GetContext()

	t := getToken(ctx, tokenID)
	checkTokenOwner(t)

	t.Active = false
	putToken(ctx, tokenID, t)

	runtime.Log("deactivated data token")
	runtime.Notify("Deactivated", tokenID)
}

// VerifyIntegrity compares the passed digest with the stored content hash.
// It never panics: unknown tokens and mismatches yield false.
func VerifyIntegrity(tokenID int, hash interop.Hash256) bool {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, tokenKey(tokenID))
	if data == nil {
		return false
	}
	t := std.Deserialize(data.([]byte)).(DataToken)

	return common.BytesEqual(t.ContentHash, hash)
}

// TokensOf iterates over IDs of all data tokens owned by the specified
// account.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	key := append([]byte{ownerKeyPrefix}, owner...)
	return storage.Find(ctx, key, storage.ValuesOnly|storage.DeserializeValues)
}

// Count returns the number of minted data tokens, including deactivated ones.
func Count() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, tokenCounterKey)
}

// MintFee returns the current fee charged for minting a data token.
func MintFee() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, mintFeeKey)
}

// IsTrustedDelegate reports whether the identity may receive access grants.
func IsTrustedDelegate(identity interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return common.GetBool(ctx, delegateStateKey(identity))
}

// SetTrustedDelegate adds the identity to or removes it from the trusted
// delegate set. It can be invoked by committee only.
func SetTrustedDelegate(identity interop.Hash160, trusted bool) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	if len(identity) != interop.Hash160Len {
		panic("invalid delegate identity")
	}

	key := delegateStateKey(identity)
	if trusted {
		storage.Put(ctx, key, true)
	} else {
		storage.Delete(ctx, key)
	}

	runtime.Log("updated trusted delegate set")
}

// SetMintFee updates the fee charged for minting. It can be invoked by
// committee only.
func SetMintFee(fee int) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	if fee < 0 {
		panic("negative mint fee")
	}

	storage.Put(ctx, mintFeeKey, fee)
	runtime.Log("updated mint fee")
}

// WithdrawTreasury transfers the accumulated mint fees to the specified
// account. It can be invoked by committee only.
func WithdrawTreasury(to interop.Hash160) {
	ctx := storage.GetReadOnlyContext()
	common.CheckCommitteeWitness()

	if len(to) != interop.Hash160Len {
		panic("invalid recipient")
	}

	creditsContractAddr := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()
	balance := contract.Call(creditsContractAddr, "balanceOf", contract.ReadOnly, self).(int)
	if balance == 0 {
		return
	}

	contract.Call(creditsContractAddr, "transferX", contract.All,
		self, to, balance, common.TreasuryTransferDetails())

	runtime.Log("treasury withdrawn")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func hasAccess(ctx storage.Context, tokenID int, t DataToken, identity interop.Hash160) bool {
	if common.BytesEqual(t.Owner, identity) {
		return true
	}

	data := storage.Get(ctx, grantKey(tokenID, identity))
	if data == nil {
		return false
	}

	grant := std.Deserialize(data.([]byte)).(AccessGrant)

	return grant.Valid && grant.Deadline > runtime.GetTime()
}

func checkTokenOwner(t DataToken) {
	common.CheckOwnerWitness(t.Owner)
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

func tokenKey(id int) []byte {
	return append([]byte{tokenKeyPrefix}, idBytes(id)...)
}

func grantKey(id int, delegate interop.Hash160) []byte {
	key := append([]byte{grantKeyPrefix}, idBytes(id)...)
	return append(key, delegate...)
}

func delegateStateKey(identity interop.Hash160) []byte {
	return append([]byte{delegateKeyPrefix}, identity...)
}

func putToken(ctx storage.Context, id int, t DataToken) {
	common.SetSerialized(ctx, tokenKey(id), t)
}

func getToken(ctx storage.Context, id int) DataToken {
	data := storage.Get(ctx, tokenKey(id))
	if data == nil {
		panic(cst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(DataToken)
}

func addOwnerIndex(ctx storage.Context, owner interop.Hash160, id int) {
	key := append([]byte{ownerKeyPrefix}, owner...)
	key = append(key, idBytes(id)...)
	common.SetSerialized(ctx, key, id)
}

func removeOwnerIndex(ctx storage.Context, owner interop.Hash160, id int) {
	key := append([]byte{ownerKeyPrefix}, owner...)
	key = append(key, idBytes(id)...)
	storage.Delete(ctx, key)
}

func dropGrants(ctx storage.Context, id int) {
	prefix := append([]byte{grantKeyPrefix}, idBytes(id)...)
	it := storage.Find(ctx, prefix, storage.KeysOnly)
	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // it MUST BE `storage.KeysOnly`
		storage.Delete(ctx, key)
	}
}

func isZeroHash(hash interop.Hash256) bool {
	for i := 0; i < len(hash); i++ {
		if hash[i] != 0 {
			return false
		}
	}

	return true
}
