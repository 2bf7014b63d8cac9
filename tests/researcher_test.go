package tests

import (
	"testing"

	"github.com/Mridul-06-stack/helix-final/common"
	cst "github.com/Mridul-06-stack/helix-final/contracts/researcher/researcherconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func registerResearcher(t *testing.T, h *helixInvokers, acc neotest.Signer, name, email string) {
	h.researcher.WithSigners(acc).Invoke(t, stackitem.Null{}, "register",
		acc.ScriptHash(), name, "Broad Institute", email, "population genetics")
}

func getResearcherFields(t *testing.T, h *helixInvokers, identity util.Uint160) []stackitem.Item {
	s, err := h.researcher.TestInvoke(t, "getResearcher", identity)
	require.NoError(t, err)
	fields, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, fields, 14)
	return fields
}

func requireStatus(t *testing.T, h *helixInvokers, identity util.Uint160, status int64) {
	fields := getResearcherFields(t, h, identity)
	v, err := fields[7].TryInteger()
	require.NoError(t, err)
	require.Equal(t, status, v.Int64())
}

func TestResearcherRegister(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	alice := h.researcher.NewAccount(t)
	bob := h.researcher.NewAccount(t)
	cAlice := h.researcher.WithSigners(alice)
	cBob := h.researcher.WithSigners(bob)

	cAlice.InvokeFail(t, cst.ErrMissingField, "register",
		alice.ScriptHash(), "Alice Reed", "", "alice@broad.org", "population genetics")
	cAlice.InvokeFail(t, common.ErrWitnessFailed, "register",
		bob.ScriptHash(), "Bob Mercer", "Broad Institute", "bob@broad.org", "population genetics")

	tx := cAlice.Invoke(t, stackitem.Null{}, "register",
		alice.ScriptHash(), "Alice Reed", "Broad Institute", "alice@broad.org", "population genetics")
	aer := cAlice.CheckHalt(t, tx)
	require.Equal(t, "ResearcherRegistered", aer.Events[len(aer.Events)-1].Name)

	fields := getResearcherFields(t, h, alice.ScriptHash())
	requireBytes(t, alice.ScriptHash().BytesBE(), fields[0])
	requireBytes(t, []byte("Alice Reed"), fields[1])
	requireBytes(t, []byte("alice@broad.org"), fields[3])
	rep, err := fields[10].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, cst.DefaultReputationScore, rep.Int64())
	require.True(t, fields[13].Value().(bool))
	requireStatus(t, h, alice.ScriptHash(), cst.StatusPending)

	cAlice.InvokeFail(t, cst.ErrAlreadyRegistered, "register",
		alice.ScriptHash(), "Alice Reed", "Broad Institute", "alice2@broad.org", "population genetics")
	cBob.InvokeFail(t, cst.ErrEmailTaken, "register",
		bob.ScriptHash(), "Bob Mercer", "Broad Institute", "alice@broad.org", "population genetics")

	registerResearcher(t, h, bob, "Bob Mercer", "bob@broad.org")

	// Unknown identities read as an empty unregistered record.
	unknown := h.researcher.NewAccount(t)
	requireStatus(t, h, unknown.ScriptHash(), cst.StatusUnregistered)
	h.researcher.Invoke(t, false, "isVerifiedResearcher", unknown.ScriptHash())

	s, err := h.researcher.TestInvoke(t, "listResearchers")
	require.NoError(t, err)
	elems, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	var listed [][]byte
	for _, e := range elems {
		b, err := e.TryBytes()
		require.NoError(t, err)
		listed = append(listed, b)
	}
	require.ElementsMatch(t,
		[][]byte{alice.ScriptHash().BytesBE(), bob.ScriptHash().BytesBE()}, listed)
}

func TestResearcherSetCredentials(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	alice := h.researcher.NewAccount(t)
	bob := h.researcher.NewAccount(t)
	registerResearcher(t, h, alice, "Alice Reed", "alice@broad.org")

	h.researcher.WithSigners(bob).InvokeFail(t, common.ErrWitnessFailed,
		"setCredentials", alice.ScriptHash(), "0000-0002-1825-0097", "IRB-2026-104")
	h.researcher.WithSigners(bob).InvokeFail(t, cst.ErrNotFound,
		"setCredentials", bob.ScriptHash(), "0000-0002-1825-0097", "IRB-2026-104")

	h.researcher.WithSigners(alice).Invoke(t, stackitem.Null{},
		"setCredentials", alice.ScriptHash(), "0000-0002-1825-0097", "IRB-2026-104")

	fields := getResearcherFields(t, h, alice.ScriptHash())
	requireBytes(t, []byte("0000-0002-1825-0097"), fields[5])
	requireBytes(t, []byte("IRB-2026-104"), fields[6])
}

func TestResearcherVerificationFlow(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	alice := h.researcher.NewAccount(t)
	verifier := h.researcher.NewAccount(t)
	cAlice := h.researcher.WithSigners(alice)
	cVerifier := h.researcher.WithSigners(verifier)

	registerResearcher(t, h, alice, "Alice Reed", "alice@broad.org")

	cAlice.InvokeFail(t, common.ErrCommitteeWitnessFailed, "addVerifier", verifier.ScriptHash())
	h.researcher.Invoke(t, stackitem.Null{}, "addVerifier", verifier.ScriptHash())
	h.researcher.Invoke(t, true, "isVerifier", verifier.ScriptHash())
	h.researcher.Invoke(t, false, "isVerifier", alice.ScriptHash())

	tx := cAlice.Invoke(t, 1, "submitVerification",
		alice.ScriptHash(), "QmDocsRef", "ORCID and IRB attached")
	aer := cAlice.CheckHalt(t, tx)
	require.Equal(t, "VerificationSubmitted", aer.Events[len(aer.Events)-1].Name)
	require.Equal(t, []int64{1}, listInts(t, h.researcher, "listPendingRequests"))

	s, err := h.researcher.TestInvoke(t, "getRequest", int64(1))
	require.NoError(t, err)
	fields, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, fields, 5)
	requireBytes(t, alice.ScriptHash().BytesBE(), fields[0])
	require.False(t, fields[4].Value().(bool))

	cAlice.InvokeFail(t, cst.ErrNotVerifier, "processRequest", int64(1), true)
	h.researcher.InvokeFail(t, cst.ErrNotFound, "processRequest", int64(42), true)

	cVerifier.Invoke(t, stackitem.Null{}, "processRequest", int64(1), true)
	requireStatus(t, h, alice.ScriptHash(), cst.StatusEmailVerified)
	require.Empty(t, listInts(t, h.researcher, "listPendingRequests"))

	cVerifier.InvokeFail(t, cst.ErrRequestProcessed, "processRequest", int64(1), true)

	// One more approved request completes the lifecycle.
	cAlice.Invoke(t, 2, "submitVerification", alice.ScriptHash(), "QmDocsRef", "")
	cVerifier.Invoke(t, stackitem.Null{}, "processRequest", int64(2), true)
	requireStatus(t, h, alice.ScriptHash(), cst.StatusFullyVerified)
	h.researcher.Invoke(t, true, "isVerifiedResearcher", alice.ScriptHash())

	cAlice.InvokeFail(t, cst.ErrInvalidStatus, "submitVerification",
		alice.ScriptHash(), "QmDocsRef", "")

	// Direct status moves by a verifier.
	cAlice.InvokeFail(t, cst.ErrNotVerifier, "verify", alice.ScriptHash(), int64(cst.StatusEmailVerified))
	cVerifier.InvokeFail(t, cst.ErrBadTransition, "verify", alice.ScriptHash(), int64(cst.StatusPending))
	cVerifier.Invoke(t, stackitem.Null{}, "verify", alice.ScriptHash(), int64(cst.StatusEmailVerified))
	h.researcher.Invoke(t, false, "isVerifiedResearcher", alice.ScriptHash())

	// Rejection settles the request without a status change, the committee
	// is a verifier on its own.
	bob := h.researcher.NewAccount(t)
	registerResearcher(t, h, bob, "Bob Mercer", "bob@broad.org")
	h.researcher.WithSigners(bob).Invoke(t, 3, "submitVerification",
		bob.ScriptHash(), "QmDocsRef", "")
	h.researcher.Invoke(t, stackitem.Null{}, "processRequest", int64(3), false)
	requireStatus(t, h, bob.ScriptHash(), cst.StatusPending)
	require.Empty(t, listInts(t, h.researcher, "listPendingRequests"))

	// A dropped verifier loses the role.
	h.researcher.Invoke(t, stackitem.Null{}, "removeVerifier", verifier.ScriptHash())
	h.researcher.Invoke(t, false, "isVerifier", verifier.ScriptHash())
	cVerifier.InvokeFail(t, cst.ErrNotVerifier, "verify", alice.ScriptHash(), int64(cst.StatusFullyVerified))
}

func TestResearcherSuspendReactivate(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	alice := h.researcher.NewAccount(t)
	bob := h.researcher.NewAccount(t)
	cAlice := h.researcher.WithSigners(alice)

	registerResearcher(t, h, alice, "Alice Reed", "alice@broad.org")
	registerResearcher(t, h, bob, "Bob Mercer", "bob@broad.org")
	h.researcher.Invoke(t, stackitem.Null{}, "verify", alice.ScriptHash(), int64(cst.StatusFullyVerified))
	h.researcher.Invoke(t, true, "isVerifiedResearcher", alice.ScriptHash())

	cAlice.InvokeFail(t, common.ErrCommitteeWitnessFailed,
		"suspend", alice.ScriptHash(), "irb approval lapsed")

	tx := h.researcher.Invoke(t, stackitem.Null{}, "suspend", alice.ScriptHash(), "irb approval lapsed")
	aer := h.researcher.CheckHalt(t, tx)
	require.Equal(t, "ResearcherSuspended", aer.Events[len(aer.Events)-1].Name)

	requireStatus(t, h, alice.ScriptHash(), cst.StatusSuspended)
	require.False(t, getResearcherFields(t, h, alice.ScriptHash())[13].Value().(bool))
	h.researcher.Invoke(t, false, "isVerifiedResearcher", alice.ScriptHash())

	// Suspension is lifted through Reactivate only, never through Verify.
	h.researcher.InvokeFail(t, cst.ErrBadTransition, "verify", alice.ScriptHash(), int64(cst.StatusFullyVerified))
	h.researcher.InvokeFail(t, cst.ErrBadTransition, "verify", alice.ScriptHash(), int64(cst.StatusEmailVerified))
	requireStatus(t, h, alice.ScriptHash(), cst.StatusSuspended)

	h.researcher.InvokeFail(t, cst.ErrNotSuspended, "reactivate", bob.ScriptHash())

	tx = h.researcher.Invoke(t, stackitem.Null{}, "reactivate", alice.ScriptHash())
	aer = h.researcher.CheckHalt(t, tx)
	require.Equal(t, "ResearcherReactivated", aer.Events[len(aer.Events)-1].Name)

	requireStatus(t, h, alice.ScriptHash(), cst.StatusFullyVerified)
	h.researcher.Invoke(t, true, "isVerifiedResearcher", alice.ScriptHash())

	// Revocation is terminal.
	h.researcher.Invoke(t, stackitem.Null{}, "revoke", alice.ScriptHash())
	requireStatus(t, h, alice.ScriptHash(), cst.StatusRevoked)
	h.researcher.Invoke(t, false, "isVerifiedResearcher", alice.ScriptHash())

	h.researcher.InvokeFail(t, cst.ErrRevoked, "verify", alice.ScriptHash(), int64(cst.StatusFullyVerified))
	h.researcher.InvokeFail(t, cst.ErrRevoked, "suspend", alice.ScriptHash(), "again")
	h.researcher.InvokeFail(t, cst.ErrNotSuspended, "reactivate", alice.ScriptHash())
}

func TestResearcherReputation(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	alice := h.researcher.NewAccount(t)
	cAlice := h.researcher.WithSigners(alice)

	registerResearcher(t, h, alice, "Alice Reed", "alice@broad.org")
	h.researcher.Invoke(t, stackitem.Null{}, "verify", alice.ScriptHash(), int64(cst.StatusFullyVerified))

	cAlice.InvokeFail(t, common.ErrCommitteeWitnessFailed,
		"updateReputation", alice.ScriptHash(), int64(80))
	h.researcher.InvokeFail(t, cst.ErrInvalidScore,
		"updateReputation", alice.ScriptHash(), int64(cst.MaxReputationScore+1))

	// The default score of 50 clears the deployment threshold of 40,
	// dropping below it fails the policy check.
	h.researcher.Invoke(t, true, "isVerifiedResearcher", alice.ScriptHash())

	tx := h.researcher.Invoke(t, stackitem.Null{}, "updateReputation", alice.ScriptHash(), int64(30))
	aer := h.researcher.CheckHalt(t, tx)
	require.Equal(t, "ReputationUpdated", aer.Events[len(aer.Events)-1].Name)
	h.researcher.Invoke(t, false, "isVerifiedResearcher", alice.ScriptHash())

	h.researcher.Invoke(t, stackitem.Null{}, "updateReputation", alice.ScriptHash(), int64(40))
	h.researcher.Invoke(t, true, "isVerifiedResearcher", alice.ScriptHash())

	// Raising the bar re-evaluates everybody.
	cAlice.InvokeFail(t, common.ErrCommitteeWitnessFailed, "setMinReputationScore", int64(60))
	h.researcher.Invoke(t, stackitem.Null{}, "setMinReputationScore", int64(60))
	h.researcher.Invoke(t, 60, "minReputationScore")
	h.researcher.Invoke(t, false, "isVerifiedResearcher", alice.ScriptHash())
}

func TestResearcherBountyStats(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	alice := h.researcher.NewAccount(t)
	cAlice := h.researcher.WithSigners(alice)

	registerResearcher(t, h, alice, "Alice Reed", "alice@broad.org")

	// Only the bounty market contract or the committee report outcomes.
	cAlice.InvokeFail(t, cst.ErrNotMarket, "updateBountyStats", alice.ScriptHash(), true)
	h.researcher.InvokeFail(t, cst.ErrNotFound, "updateBountyStats", cAlice.NewAccount(t).ScriptHash(), true)

	h.researcher.Invoke(t, stackitem.Null{}, "updateBountyStats", alice.ScriptHash(), true)
	h.researcher.Invoke(t, stackitem.Null{}, "updateBountyStats", alice.ScriptHash(), false)

	fields := getResearcherFields(t, h, alice.ScriptHash())
	total, err := fields[11].TryInteger()
	require.NoError(t, err)
	succeeded, err := fields[12].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 2, total.Int64())
	require.EqualValues(t, 1, succeeded.Int64())
}
