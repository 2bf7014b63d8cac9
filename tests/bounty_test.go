package tests

import (
	"testing"

	"github.com/Mridul-06-stack/helix-final/common"
	cst "github.com/Mridul-06-stack/helix-final/contracts/bounty/bountyconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	testQueryKind   = "ancestry-composition"
	testQueryParams = `{"regions":["EAS","AFR"]}`
)

func createTestBounty(t *testing.T, h *helixInvokers, creator neotest.Signer,
	reward, maxResponses, durationSeconds, funds, expectedID int64) {
	h.bounty.WithSigners(creator).Invoke(t, expectedID, "createBounty",
		creator.ScriptHash(), testQueryKind, testQueryParams,
		reward, maxResponses, durationSeconds, funds)
}

// listInts reads a safe method returning an array of IDs, treating a Null
// result as an empty list.
func listInts(t *testing.T, c *neotest.ContractInvoker, method string, args ...interface{}) []int64 {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	item := s.Top().Item()
	if _, ok := item.(stackitem.Null); ok {
		return nil
	}
	elems, ok := item.Value().([]stackitem.Item)
	require.True(t, ok)

	var result []int64
	for _, e := range elems {
		v, err := e.TryInteger()
		require.NoError(t, err)
		result = append(result, v.Int64())
	}
	return result
}

func TestBountyCreate(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	creator := h.bounty.NewAccount(t)
	cCreator := h.bounty.WithSigners(creator)
	h.fund(t, creator.ScriptHash(), 1000)

	h.bounty.Invoke(t, defaultPlatformFeeBps, "platformFeeBps")

	cCreator.InvokeFail(t, "empty query", "createBounty",
		creator.ScriptHash(), "", testQueryParams, int64(100), int64(3), int64(3600), int64(400))
	cCreator.InvokeFail(t, "non-positive reward", "createBounty",
		creator.ScriptHash(), testQueryKind, testQueryParams, int64(0), int64(3), int64(3600), int64(400))
	cCreator.InvokeFail(t, "non-positive response limit", "createBounty",
		creator.ScriptHash(), testQueryKind, testQueryParams, int64(100), int64(0), int64(3600), int64(400))
	cCreator.InvokeFail(t, "invalid bounty duration", "createBounty",
		creator.ScriptHash(), testQueryKind, testQueryParams, int64(100), int64(3), int64(60), int64(400))
	cCreator.InvokeFail(t, "invalid bounty duration", "createBounty",
		creator.ScriptHash(), testQueryKind, testQueryParams, int64(100), int64(3), int64(31*24*3600), int64(400))

	// 3*100 escrow plus 2.5% fee rounded down makes 307 owed.
	cCreator.InvokeFail(t, cst.ErrInsufficientFunding, "createBounty",
		creator.ScriptHash(), testQueryKind, testQueryParams, int64(100), int64(3), int64(3600), int64(306))

	stranger := h.bounty.NewAccount(t)
	cCreator.InvokeFail(t, common.ErrOwnerWitnessFailed, "createBounty",
		stranger.ScriptHash(), testQueryKind, testQueryParams, int64(100), int64(3), int64(3600), int64(400))

	tx := cCreator.Invoke(t, 1, "createBounty",
		creator.ScriptHash(), testQueryKind, testQueryParams, int64(100), int64(3), int64(3600), int64(400))
	aer := cCreator.CheckHalt(t, tx)
	require.Equal(t, "BountyCreated", aer.Events[len(aer.Events)-1].Name)

	// Escrow and fee are charged, the declared surplus comes back.
	require.EqualValues(t, 693, h.balance(t, creator.ScriptHash()))
	h.bounty.Invoke(t, 300, "totalEscrow")
	require.Equal(t, []int64{1}, listInts(t, h.bounty, "listActiveBounties"))

	s, err := h.bounty.TestInvoke(t, "getBounty", int64(1))
	require.NoError(t, err)
	fields, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, fields, 11)
	requireBytes(t, creator.ScriptHash().BytesBE(), fields[0])
	requireBytes(t, []byte(testQueryKind), fields[1])
	rw, err := fields[3].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 100, rw.Int64())
	require.True(t, fields[10].Value().(bool))

	h.bounty.InvokeFail(t, cst.ErrNotFound, "getBounty", int64(42))
}

func TestBountyCancel(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	creator := h.bounty.NewAccount(t)
	stranger := h.bounty.NewAccount(t)
	h.fund(t, creator.ScriptHash(), 1000)

	createTestBounty(t, h, creator, 100, 3, 3600, 400, 1)
	require.EqualValues(t, 693, h.balance(t, creator.ScriptHash()))

	h.bounty.WithSigners(stranger).InvokeFail(t, cst.ErrNotCreator,
		"cancelBounty", int64(1), stranger.ScriptHash())

	cCreator := h.bounty.WithSigners(creator)
	tx := cCreator.Invoke(t, stackitem.Null{}, "cancelBounty", int64(1), creator.ScriptHash())
	aer := cCreator.CheckHalt(t, tx)
	require.Equal(t, "BountyCancelled", aer.Events[len(aer.Events)-1].Name)

	// The full remaining escrow comes back, the platform fee does not.
	require.EqualValues(t, 993, h.balance(t, creator.ScriptHash()))
	h.bounty.Invoke(t, 0, "totalEscrow")
	require.Empty(t, listInts(t, h.bounty, "listActiveBounties"))

	cCreator.InvokeFail(t, cst.ErrNotActive, "cancelBounty", int64(1), creator.ScriptHash())
}

func TestBountyRespond(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	creator := h.bounty.NewAccount(t)
	responder := h.bounty.NewAccount(t)
	stranger := h.bounty.NewAccount(t)
	h.fund(t, creator.ScriptHash(), 1000)

	// 2*100 escrow plus 2.5% fee makes 205 owed.
	createTestBounty(t, h, creator, 100, 2, 3600, 205, 1)
	require.EqualValues(t, 795, h.balance(t, creator.ScriptHash()))

	mintDataToken(t, h, responder, 1)

	h.bounty.Invoke(t, true, "canRespond", int64(1), int64(1))
	h.bounty.Invoke(t, false, "canRespond", int64(99), int64(1))
	h.bounty.Invoke(t, false, "canRespond", int64(1), int64(99))

	cResponder := h.bounty.WithSigners(responder)
	cStranger := h.bounty.WithSigners(stranger)

	cStranger.InvokeFail(t, cst.ErrNotTokenOwner, "respondToBounty",
		int64(1), int64(1), true, randomBytes(16), stranger.ScriptHash())
	cResponder.InvokeFail(t, cst.ErrNotFound, "respondToBounty",
		int64(99), int64(1), true, randomBytes(16), responder.ScriptHash())

	tx := cResponder.Invoke(t, 1, "respondToBounty",
		int64(1), int64(1), true, randomBytes(16), responder.ScriptHash())
	aer := cResponder.CheckHalt(t, tx)
	require.Equal(t, "ResponseSubmitted", aer.Events[len(aer.Events)-1].Name)

	// Reward paid out, escrow reduced, response indexed.
	require.EqualValues(t, 100, h.balance(t, responder.ScriptHash()))
	h.bounty.Invoke(t, 100, "totalEscrow")
	require.Equal(t, []int64{1}, listInts(t, h.bounty, "listResponses", int64(1)))
	h.bounty.Invoke(t, false, "canRespond", int64(1), int64(1))

	s, err := h.bounty.TestInvoke(t, "getResponse", int64(1))
	require.NoError(t, err)
	fields, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, fields, 8)
	requireBytes(t, responder.ScriptHash().BytesBE(), fields[2])
	require.True(t, fields[5].Value().(bool))
	require.True(t, fields[7].Value().(bool))

	// One response per (bounty, token) pair.
	cResponder.InvokeFail(t, cst.ErrAlreadyResponded, "respondToBounty",
		int64(1), int64(1), false, randomBytes(16), responder.ScriptHash())

	// A second token fills the bounty and deactivates it.
	mintDataToken(t, h, responder, 2)
	cResponder.Invoke(t, 2, "respondToBounty",
		int64(1), int64(2), false, randomBytes(16), responder.ScriptHash())

	require.EqualValues(t, 200, h.balance(t, responder.ScriptHash()))
	h.bounty.Invoke(t, 0, "totalEscrow")
	require.Empty(t, listInts(t, h.bounty, "listActiveBounties"))

	mintDataToken(t, h, responder, 3)
	cResponder.InvokeFail(t, cst.ErrNotActive, "respondToBounty",
		int64(1), int64(3), true, randomBytes(16), responder.ScriptHash())

	// Deactivated data tokens cannot respond anywhere.
	h.fund(t, creator.ScriptHash(), 205)
	createTestBounty(t, h, creator, 100, 2, 3600, 205, 2)
	h.genome.WithSigners(responder).Invoke(t, stackitem.Null{}, "deactivate", int64(3))

	h.bounty.Invoke(t, false, "canRespond", int64(3), int64(2))
	cResponder.InvokeFail(t, cst.ErrGenomeInactive, "respondToBounty",
		int64(2), int64(3), true, randomBytes(16), responder.ScriptHash())
}

func TestBountyLazyExpiry(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	creator := h.bounty.NewAccount(t)
	responder := h.bounty.NewAccount(t)
	h.fund(t, creator.ScriptHash(), 1000)

	createTestBounty(t, h, creator, 100, 3, 3600, 307, 1)
	mintDataToken(t, h, responder, 1)

	warpTime(t, h.bounty, 3700*1000)

	// Expiry is lazy: the bounty still reads as active but admits nothing.
	require.Equal(t, []int64{1}, listInts(t, h.bounty, "listActiveBounties"))
	h.bounty.Invoke(t, false, "canRespond", int64(1), int64(1))

	cResponder := h.bounty.WithSigners(responder)
	cResponder.InvokeFail(t, cst.ErrExpired, "respondToBounty",
		int64(1), int64(1), true, randomBytes(16), responder.ScriptHash())

	// Anyone can process the backlog, unknown IDs are skipped.
	tx := h.bounty.WithSigners(responder).Invoke(t, stackitem.Null{},
		"processExpired", []interface{}{int64(1), int64(99)})
	aer := cResponder.CheckHalt(t, tx)
	require.Equal(t, "BountyExpired", aer.Events[len(aer.Events)-1].Name)

	require.EqualValues(t, 993, h.balance(t, creator.ScriptHash()))
	h.bounty.Invoke(t, 0, "totalEscrow")
	require.Empty(t, listInts(t, h.bounty, "listActiveBounties"))

	cResponder.InvokeFail(t, cst.ErrNotActive, "respondToBounty",
		int64(1), int64(1), true, randomBytes(16), responder.ScriptHash())

	// Processing is idempotent and leaves running bounties alone.
	h.fund(t, creator.ScriptHash(), 307)
	createTestBounty(t, h, creator, 100, 3, 3600, 307, 2)

	tx = h.bounty.Invoke(t, stackitem.Null{}, "processExpired", []interface{}{int64(1), int64(2)})
	aer = h.bounty.CheckHalt(t, tx)
	require.Empty(t, aer.Events)
	require.Equal(t, []int64{2}, listInts(t, h.bounty, "listActiveBounties"))
}

func TestBountyPause(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	creator := h.bounty.NewAccount(t)
	responder := h.bounty.NewAccount(t)
	h.fund(t, creator.ScriptHash(), 1000)

	createTestBounty(t, h, creator, 100, 3, 3600, 307, 1)
	mintDataToken(t, h, responder, 1)

	cCreator := h.bounty.WithSigners(creator)
	cCreator.InvokeFail(t, common.ErrCommitteeWitnessFailed, "pause")

	h.bounty.Invoke(t, stackitem.Null{}, "pause")
	h.bounty.Invoke(t, true, "isPaused")

	cCreator.InvokeFail(t, cst.ErrPaused, "createBounty",
		creator.ScriptHash(), testQueryKind, testQueryParams, int64(100), int64(3), int64(3600), int64(307))
	h.bounty.WithSigners(responder).InvokeFail(t, cst.ErrPaused, "respondToBounty",
		int64(1), int64(1), true, randomBytes(16), responder.ScriptHash())
	h.bounty.Invoke(t, false, "canRespond", int64(1), int64(1))

	// Cancellation keeps working while paused so escrow is never locked in.
	cCreator.Invoke(t, stackitem.Null{}, "cancelBounty", int64(1), creator.ScriptHash())
	require.EqualValues(t, 993, h.balance(t, creator.ScriptHash()))

	h.bounty.Invoke(t, stackitem.Null{}, "unpause")
	h.bounty.Invoke(t, false, "isPaused")
	createTestBounty(t, h, creator, 100, 3, 3600, 307, 2)
}

func TestBountyPlatformFee(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	creator := h.bounty.NewAccount(t)
	sink := h.bounty.NewAccount(t)
	h.fund(t, creator.ScriptHash(), 1000)

	cCreator := h.bounty.WithSigners(creator)
	cCreator.InvokeFail(t, common.ErrCommitteeWitnessFailed, "setPlatformFee", int64(0))
	h.bounty.InvokeFail(t, "platform fee out of range", "setPlatformFee", int64(cst.MaxPlatformFeeBps+1))

	createTestBounty(t, h, creator, 100, 3, 3600, 307, 1)

	cCreator.InvokeFail(t, common.ErrCommitteeWitnessFailed, "withdrawFees", sink.ScriptHash())

	tx := h.bounty.Invoke(t, stackitem.Null{}, "withdrawFees", sink.ScriptHash())
	aer := h.bounty.CheckHalt(t, tx)
	require.Equal(t, "FeesWithdrawn", aer.Events[len(aer.Events)-1].Name)

	// Only the revenue above the outstanding escrow leaves the market.
	require.EqualValues(t, 7, h.balance(t, sink.ScriptHash()))
	require.EqualValues(t, 300, h.balance(t, h.bounty.Hash))
	h.bounty.Invoke(t, 300, "totalEscrow")

	// Nothing above the escrow now, the call is a no-op.
	h.bounty.Invoke(t, stackitem.Null{}, "withdrawFees", sink.ScriptHash())
	require.EqualValues(t, 7, h.balance(t, sink.ScriptHash()))

	// Integer fee arithmetic rounds down: 30 escrow at 250 bps owes
	// nothing above the escrow itself.
	createTestBounty(t, h, creator, 10, 3, 3600, 30, 2)
	require.EqualValues(t, 1000-307-30, h.balance(t, creator.ScriptHash()))

	// With a zero fee the owed amount is the bare escrow.
	h.bounty.Invoke(t, stackitem.Null{}, "setPlatformFee", int64(0))
	h.bounty.Invoke(t, 0, "platformFeeBps")
	createTestBounty(t, h, creator, 100, 3, 3600, 300, 3)
	require.EqualValues(t, 1000-307-30-300, h.balance(t, creator.ScriptHash()))
}
