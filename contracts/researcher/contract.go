package researcher

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
	cst "github.com/Mridul-06-stack/helix-final/contracts/researcher/researcherconst"
)

type (
	// Researcher is the trust-lifecycle record of one identity. The identity
	// script hash is the storage key.
	Researcher struct {
		Identity           interop.Hash160
		Name               string
		Institution        string
		Email              string
		Field              string
		OrcidID            string
		IRBNumber          string
		Status             int
		RegisteredAt       int
		VerifiedAt         int
		ReputationScore    int
		TotalBounties      int
		SuccessfulBounties int
		Active             bool
	}

	// VerificationRequest is a researcher-submitted request to advance the
	// verification status, processed by a verifier. The request ID is the
	// storage key.
	VerificationRequest struct {
		Researcher   interop.Hash160
		DocumentsRef string
		Notes        string
		SubmittedAt  int
		Processed    bool
	}
)

const (
	marketContractKey = "marketScriptHash"
	minReputationKey  = "minReputationScore"
	requestCounterKey = "requestCounter"

	researcherKeyPrefix = 'r'
	emailKeyPrefix      = 'e'
	requestKeyPrefix    = 'q'
	verifierKeyPrefix   = 'v'

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
		addrMarket         interop.Hash160
		minReputationScore int
	})

	if len(args.addrMarket) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}
	if args.minReputationScore < 0 || args.minReputationScore > cst.MaxReputationScore {
		panic(cst.ErrInvalidScore)
	}

	storage.Put(ctx, marketContractKey, args.addrMarket)
	storage.Put(ctx, minReputationKey, args.minReputationScore)

	runtime.Log("researcher registry initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("researcher registry updated")
}

// Register creates a Pending record for the identity. The identity must sign
// the transaction. The email must not be claimed by another researcher.
//
// Produces ResearcherRegistered notification.
func Register(identity interop.Hash160, name, institution, email, field string) {
	ctx := storage.GetContext()

	common.CheckWitness(identity)

	if len(name) == 0 || len(institution) == 0 || len(email) == 0 || len(field) == 0 {
		panic(cst.ErrMissingField)
	}
	if storage.Get(ctx, researcherKey(identity)) != nil {
		panic(cst.ErrAlreadyRegistered)
	}
	if storage.Get(ctx, emailKey(email)) != nil {
		panic(cst.ErrEmailTaken)
	}

	r := Researcher{
		Identity:        identity,
		Name:            name,
		Institution:     institution,
		Email:           email,
		Field:           field,
		Status:          cst.StatusPending,
		RegisteredAt:    runtime.GetTime(),
		ReputationScore: cst.DefaultReputationScore,
		Active:          true,
	}
	putResearcher(ctx, r)
	storage.Put(ctx, emailKey(email), identity)

	runtime.Log("registered new researcher")
	runtime.Notify("ResearcherRegistered", identity, institution, field)
}

// SetCredentials attaches ORCID and IRB identifiers to the researcher's own
// record. The identity must sign the transaction.
func SetCredentials(identity interop.Hash160, orcidID, irbNumber string) {
	ctx := storage.GetContext()

	common.CheckWitness(identity)

	r := getResearcher(ctx, identity)
	r.OrcidID = orcidID
	r.IRBNumber = irbNumber
	putResearcher(ctx, r)

	runtime.Log("updated researcher credentials")
}

// SubmitVerification files a verification request for the identity and
// returns its ID. Allowed while the researcher is Pending or EmailVerified.
//
// Produces VerificationSubmitted notification.
func SubmitVerification(identity interop.Hash160, documentsRef, notes string) int {
	ctx := storage.GetContext()

	common.CheckWitness(identity)

	r := getResearcher(ctx, identity)
	if r.Status != cst.StatusPending && r.Status != cst.StatusEmailVerified {
		panic(cst.ErrInvalidStatus)
	}

	id := common.GetInt(ctx, requestCounterKey) + 1
	storage.Put(ctx, requestCounterKey, id)

	req := VerificationRequest{
		Researcher:   identity,
		DocumentsRef: documentsRef,
		Notes:        notes,
		SubmittedAt:  runtime.GetTime(),
	}
	common.SetSerialized(ctx, requestKey(id), req)

	runtime.Log("submitted verification request")
	runtime.Notify("VerificationSubmitted", id, identity)

	return id
}

// Verify moves the researcher to one of the post-registration statuses. It
// can be invoked by an authorized verifier only. A revoked researcher cannot
// be moved anywhere and a suspended one leaves suspension only through
// Reactivate.
//
// Produces StatusUpdated notification.
func Verify(identity interop.Hash160, newStatus int) {
	ctx := storage.GetContext()
	checkVerifier(ctx)

	if newStatus < cst.StatusEmailVerified || newStatus > cst.StatusRevoked {
		panic(cst.ErrBadTransition)
	}

	r := getResearcher(ctx, identity)
	if r.Status == cst.StatusSuspended && newStatus < cst.StatusSuspended {
		panic(cst.ErrBadTransition)
	}
	setStatus(ctx, r, newStatus)
}

// ProcessRequest settles a verification request. Approval advances the
// researcher one step up the lifecycle, Pending to EmailVerified or
// EmailVerified to FullyVerified. It can be invoked by an authorized
// verifier only, and each request is processed at most once.
//
// Produces StatusUpdated notification on approval.
func ProcessRequest(requestID int, approved bool) {
	ctx := storage.GetContext()
	checkVerifier(ctx)

	data := storage.Get(ctx, requestKey(requestID))
	if data == nil {
		panic(cst.ErrNotFound)
	}
	req := std.Deserialize(data.([]byte)).(VerificationRequest)
	if req.Processed {
		panic(cst.ErrRequestProcessed)
	}

	req.Processed = true
	common.SetSerialized(ctx, requestKey(requestID), req)

	if !approved {
		runtime.Log("rejected verification request")
		return
	}

	r := getResearcher(ctx, req.Researcher)
	switch r.Status {
	case cst.StatusPending:
		setStatus(ctx, r, cst.StatusEmailVerified)
	case cst.StatusEmailVerified:
		setStatus(ctx, r, cst.StatusFullyVerified)
	default:
		panic(cst.ErrInvalidStatus)
	}
}

// Suspend moves the researcher to Suspended and deactivates the record. It
// can be invoked by committee only.
//
// Produces ResearcherSuspended notification.
func Suspend(identity interop.Hash160, reason string) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	r := getResearcher(ctx, identity)
	setStatus(ctx, r, cst.StatusSuspended)

	runtime.Notify("ResearcherSuspended", identity, reason)
}

// Revoke terminates the researcher's verification permanently. It can be
// invoked by committee only.
func Revoke(identity interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	r := getResearcher(ctx, identity)
	setStatus(ctx, r, cst.StatusRevoked)
}

// Reactivate restores a suspended researcher to FullyVerified, whatever
// status the suspension interrupted. It can be invoked by committee only.
//
// Produces ResearcherReactivated notification.
func Reactivate(identity interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	r := getResearcher(ctx, identity)
	if r.Status != cst.StatusSuspended {
		panic(cst.ErrNotSuspended)
	}
	setStatus(ctx, r, cst.StatusFullyVerified)

	runtime.Notify("ResearcherReactivated", identity)
}

// UpdateReputation overwrites the researcher's reputation score. It can be
// invoked by committee only.
//
// Produces ReputationUpdated notification.
func UpdateReputation(identity interop.Hash160, score int) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	if score < 0 || score > cst.MaxReputationScore {
		panic(cst.ErrInvalidScore)
	}

	r := getResearcher(ctx, identity)
	r.ReputationScore = score
	putResearcher(ctx, r)

	runtime.Log("updated researcher reputation")
	runtime.Notify("ReputationUpdated", identity, score)
}

// UpdateBountyStats increments the researcher's bounty counters. It can be
// invoked by the registered bounty market contract or by committee only.
func UpdateBountyStats(identity interop.Hash160, successful bool) {
	ctx := storage.GetContext()

	if !common.FromKnownContract(ctx, runtime.GetCallingScriptHash(), marketContractKey) &&
		!runtime.CheckWitness(common.CommitteeAddress()) {
		panic(cst.ErrNotMarket)
	}

	r := getResearcher(ctx, identity)
	r.TotalBounties = r.TotalBounties + 1
	if successful {
		r.SuccessfulBounties = r.SuccessfulBounties + 1
	}
	putResearcher(ctx, r)
}

// IsVerifiedResearcher reports whether the identity passes the verification
// policy: fully verified, active and at or above the minimum reputation
// score. It never panics, unknown identities read as false.
func IsVerifiedResearcher(identity interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, researcherKey(identity))
	if data == nil {
		return false
	}
	r := std.Deserialize(data.([]byte)).(Researcher)

	return r.Status == cst.StatusFullyVerified && r.Active &&
		r.ReputationScore >= common.GetInt(ctx, minReputationKey)
}

// GetResearcher returns the stored record. For an unknown identity it
// returns an empty record with the zero (unregistered) status rather than
// panicking.
func GetResearcher(identity interop.Hash160) Researcher {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, researcherKey(identity))
	if data == nil {
		return Researcher{Identity: identity, Status: cst.StatusUnregistered}
	}

	return std.Deserialize(data.([]byte)).(Researcher)
}

// GetRequest returns the stored verification request.
//
// If the request doesn't exist, it panics with ErrNotFound.
func GetRequest(requestID int) VerificationRequest {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, requestKey(requestID))
	if data == nil {
		panic(cst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(VerificationRequest)
}

// ListResearchers returns identities of all registered researchers.
func ListResearchers() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	var result []interop.Hash160

	it := storage.Find(ctx, []byte{researcherKeyPrefix}, storage.RemovePrefix|storage.KeysOnly)
	for iterator.Next(it) {
		result = append(result, iterator.Value(it).(interop.Hash160))
	}

	return result
}

// ListPendingRequests returns IDs of all verification requests not yet
// processed.
func ListPendingRequests() []int {
	ctx := storage.GetReadOnlyContext()

	var result []int

	it := storage.Find(ctx, []byte{requestKeyPrefix}, storage.RemovePrefix|storage.DeserializeValues)
	for iterator.Next(it) {
		pair := iterator.Value(it).([]any)
		key := pair[0].([]byte)
		req := pair[1].(VerificationRequest)
		if !req.Processed {
			result = append(result, convert.ToInteger(key))
		}
	}

	return result
}

// AddVerifier puts the account into the verifier set. It can be invoked by
// committee only.
func AddVerifier(account interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	if len(account) != interop.Hash160Len {
		panic("invalid verifier account")
	}

	storage.Put(ctx, verifierKey(account), true)
	runtime.Log("added verifier")
}

// RemoveVerifier drops the account from the verifier set. It can be invoked
// by committee only.
func RemoveVerifier(account interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	storage.Delete(ctx, verifierKey(account))
	runtime.Log("removed verifier")
}

// IsVerifier reports whether the account is in the verifier set.
func IsVerifier(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, verifierKey(account)) != nil
}

// MinReputationScore returns the reputation threshold consulted by
// IsVerifiedResearcher.
func MinReputationScore() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, minReputationKey)
}

// SetMinReputationScore updates the reputation threshold. It can be invoked
// by committee only.
func SetMinReputationScore(score int) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	if score < 0 || score > cst.MaxReputationScore {
		panic(cst.ErrInvalidScore)
	}

	storage.Put(ctx, minReputationKey, score)
	runtime.Log("updated minimum reputation score")
}

// SetBountyMarket points the registry at another bounty market contract. It
// can be invoked by committee only.
func SetBountyMarket(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckCommitteeWitness()

	if len(addr) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, marketContractKey, addr)
	runtime.Log("updated bounty market reference")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// setStatus applies the lifecycle transition and its side effects:
// verifiedAt stamping, activity flag, terminal revocation.
func setStatus(ctx storage.Context, r Researcher, newStatus int) {
	if r.Status == cst.StatusRevoked {
		panic(cst.ErrRevoked)
	}

	r.Status = newStatus
	switch newStatus {
	case cst.StatusSuspended, cst.StatusRevoked:
		r.Active = false
	default:
		r.Active = true
		if newStatus == cst.StatusFullyVerified && r.VerifiedAt == 0 {
			r.VerifiedAt = runtime.GetTime()
		}
	}
	putResearcher(ctx, r)

	runtime.Log("updated researcher status")
	runtime.Notify("StatusUpdated", r.Identity, newStatus)
}

func checkVerifier(ctx storage.Context) {
	if runtime.CheckWitness(common.CommitteeAddress()) {
		return
	}

	it := storage.Find(ctx, []byte{verifierKeyPrefix}, storage.RemovePrefix|storage.KeysOnly)
	for iterator.Next(it) {
		account := iterator.Value(it).(interop.Hash160)
		if runtime.CheckWitness(account) {
			return
		}
	}

	panic(cst.ErrNotVerifier)
}

func putResearcher(ctx storage.Context, r Researcher) {
	common.SetSerialized(ctx, researcherKey(r.Identity), r)
}

func getResearcher(ctx storage.Context, identity interop.Hash160) Researcher {
	data := storage.Get(ctx, researcherKey(identity))
	if data == nil {
		panic(cst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Researcher)
}

func researcherKey(identity interop.Hash160) []byte {
	return append([]byte{researcherKeyPrefix}, identity...)
}

func emailKey(email string) []byte {
	return append([]byte{emailKeyPrefix}, []byte(email)...)
}

func requestKey(id int) []byte {
	b := convert.ToBytes(id)
	for len(b) < idKeySize {
		b = append(b, 0)
	}

	return append([]byte{requestKeyPrefix}, b...)
}

func verifierKey(account interop.Hash160) []byte {
	return append([]byte{verifierKeyPrefix}, account...)
}
