package tests

import (
	"testing"

	"github.com/Mridul-06-stack/helix-final/common"
	cst "github.com/Mridul-06-stack/helix-final/contracts/genome/genomeconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testDataToken struct {
	ref  string
	hash []byte
	tag  string
	cat  string
	size int64
}

func dummyDataToken() testDataToken {
	return testDataToken{
		ref:  "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		hash: randomBytes(32),
		tag:  "aes-256-gcm",
		cat:  "wgs",
		size: 4096,
	}
}

// mintDataToken funds the owner with exactly the mint fee and mints a fresh
// data token, checking the returned sequential ID.
func mintDataToken(t *testing.T, h *helixInvokers, owner neotest.Signer, expectedID int64) testDataToken {
	tok := dummyDataToken()
	h.fund(t, owner.ScriptHash(), defaultMintFee)
	h.genome.WithSigners(owner).Invoke(t, expectedID, "mint",
		owner.ScriptHash(), tok.ref, tok.hash, tok.tag, tok.cat, tok.size, defaultMintFee)
	return tok
}

func TestGenomeMint(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	acc := h.genome.NewAccount(t)
	cAcc := h.genome.WithSigners(acc)
	tok := dummyDataToken()

	h.genome.Invoke(t, defaultMintFee, "mintFee")

	// Declared fee payment below the current mint fee.
	cAcc.InvokeFail(t, cst.ErrInsufficientFee, "mint",
		acc.ScriptHash(), tok.ref, tok.hash, tok.tag, tok.cat, tok.size, int64(10))

	// No credits to charge the fee from.
	cAcc.InvokeFail(t, "can't transfer assets", "mint",
		acc.ScriptHash(), tok.ref, tok.hash, tok.tag, tok.cat, tok.size, defaultMintFee)

	h.fund(t, acc.ScriptHash(), 100)

	cAcc.InvokeFail(t, cst.ErrInvalidReference, "mint",
		acc.ScriptHash(), "", tok.hash, tok.tag, tok.cat, tok.size, defaultMintFee)
	cAcc.InvokeFail(t, cst.ErrInvalidHash, "mint",
		acc.ScriptHash(), tok.ref, make([]byte, 32), tok.tag, tok.cat, tok.size, defaultMintFee)
	cAcc.InvokeFail(t, cst.ErrInvalidHash, "mint",
		acc.ScriptHash(), tok.ref, randomBytes(16), tok.tag, tok.cat, tok.size, defaultMintFee)

	// Nobody mints on behalf of somebody else.
	stranger := h.genome.NewAccount(t)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "mint",
		stranger.ScriptHash(), tok.ref, tok.hash, tok.tag, tok.cat, tok.size, defaultMintFee)

	tx := cAcc.Invoke(t, 1, "mint",
		acc.ScriptHash(), tok.ref, tok.hash, tok.tag, tok.cat, tok.size, defaultMintFee)
	aer := cAcc.CheckHalt(t, tx)
	require.Equal(t, "Minted", aer.Events[len(aer.Events)-1].Name)

	require.EqualValues(t, 100-defaultMintFee, h.balance(t, acc.ScriptHash()))
	h.genome.Invoke(t, 1, "count")
	h.genome.Invoke(t, acc.ScriptHash().BytesBE(), "ownerOf", int64(1))

	// Overpayment is charged at the fee and the change comes back, the
	// treasury retains exactly one fee per mint.
	cAcc.Invoke(t, 2, "mint",
		acc.ScriptHash(), tok.ref, tok.hash, tok.tag, tok.cat, tok.size, defaultMintFee+15)
	require.EqualValues(t, 100-2*defaultMintFee, h.balance(t, acc.ScriptHash()))
	require.EqualValues(t, 2*defaultMintFee, h.balance(t, h.genome.Hash))
	h.genome.Invoke(t, 2, "count")
}

func TestGenomeMetadataIntegrity(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	acc := h.genome.NewAccount(t)
	tok := mintDataToken(t, h, acc, 1)

	s, err := h.genome.TestInvoke(t, "getMetadata", int64(1))
	require.NoError(t, err)
	fields, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, fields, 8)
	requireBytes(t, acc.ScriptHash().BytesBE(), fields[0])
	requireBytes(t, []byte(tok.ref), fields[1])
	requireBytes(t, tok.hash, fields[2])
	requireBytes(t, []byte(tok.tag), fields[3])
	requireBytes(t, []byte(tok.cat), fields[4])

	h.genome.Invoke(t, true, "verifyIntegrity", int64(1), tok.hash)
	h.genome.Invoke(t, false, "verifyIntegrity", int64(1), randomBytes(32))
	h.genome.Invoke(t, false, "verifyIntegrity", int64(42), tok.hash)

	h.genome.InvokeFail(t, cst.ErrNotFound, "getMetadata", int64(42))
	h.genome.InvokeFail(t, cst.ErrNotFound, "ownerOf", int64(42))
}

func requireBytes(t *testing.T, expected []byte, item stackitem.Item) {
	actual, err := item.TryBytes()
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestGenomeAccessGrant(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	owner := h.genome.NewAccount(t)
	delegate := h.genome.NewAccount(t)
	stranger := h.genome.NewAccount(t)
	cOwner := h.genome.WithSigners(owner)
	cDelegate := h.genome.WithSigners(delegate)

	tok := mintDataToken(t, h, owner, 1)

	// Only committee curates the trusted delegate set.
	cOwner.InvokeFail(t, common.ErrCommitteeWitnessFailed,
		"setTrustedDelegate", delegate.ScriptHash(), true)
	cOwner.InvokeFail(t, cst.ErrUntrustedDelegate,
		"grantAccess", int64(1), delegate.ScriptHash(), int64(60))

	h.genome.Invoke(t, stackitem.Null{}, "setTrustedDelegate", delegate.ScriptHash(), true)
	h.genome.Invoke(t, true, "isTrustedDelegate", delegate.ScriptHash())

	cOwner.InvokeFail(t, cst.ErrInvalidDuration,
		"grantAccess", int64(1), delegate.ScriptHash(), int64(0))
	cOwner.InvokeFail(t, cst.ErrInvalidDuration,
		"grantAccess", int64(1), delegate.ScriptHash(), int64(2*24*3600))
	cDelegate.InvokeFail(t, common.ErrOwnerWitnessFailed,
		"grantAccess", int64(1), delegate.ScriptHash(), int64(3600))

	cOwner.Invoke(t, stackitem.Null{}, "grantAccess", int64(1), delegate.ScriptHash(), int64(3600))

	h.genome.Invoke(t, true, "verifyAccess", int64(1), owner.ScriptHash())
	h.genome.Invoke(t, true, "verifyAccess", int64(1), delegate.ScriptHash())
	h.genome.Invoke(t, false, "verifyAccess", int64(1), stranger.ScriptHash())

	cDelegate.Invoke(t, tok.ref, "getContentRef", int64(1), delegate.ScriptHash())
	h.genome.WithSigners(stranger).InvokeFail(t, cst.ErrUnauthorized,
		"getContentRef", int64(1), stranger.ScriptHash())

	cOwner.Invoke(t, stackitem.Null{}, "revokeAccess", int64(1), delegate.ScriptHash())
	h.genome.Invoke(t, false, "verifyAccess", int64(1), delegate.ScriptHash())
	cDelegate.InvokeFail(t, cst.ErrUnauthorized, "getContentRef", int64(1), delegate.ScriptHash())

	// Revocation is idempotent.
	cOwner.Invoke(t, stackitem.Null{}, "revokeAccess", int64(1), delegate.ScriptHash())
}

func TestGenomeGrantExpiry(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	owner := h.genome.NewAccount(t)
	delegate := h.genome.NewAccount(t)
	cOwner := h.genome.WithSigners(owner)

	mintDataToken(t, h, owner, 1)
	h.genome.Invoke(t, stackitem.Null{}, "setTrustedDelegate", delegate.ScriptHash(), true)

	cOwner.Invoke(t, stackitem.Null{}, "grantAccess", int64(1), delegate.ScriptHash(), int64(1))
	deadline := h.genome.TopBlock(t).Timestamp + 1000

	testVerifyAccess(t, h, 1, delegate.ScriptHash(), true)

	// Test invoke runs one millisecond past the top block, so the grant is
	// still alive one tick before its deadline and dead exactly on it.
	warpTime(t, h.genome, deadline-2-h.genome.TopBlock(t).Timestamp)
	testVerifyAccess(t, h, 1, delegate.ScriptHash(), true)

	warpTime(t, h.genome, 1)
	testVerifyAccess(t, h, 1, delegate.ScriptHash(), false)

	h.genome.WithSigners(delegate).InvokeFail(t, cst.ErrUnauthorized,
		"getContentRef", int64(1), delegate.ScriptHash())

	// The owner keeps access regardless of grant lifecycle.
	testVerifyAccess(t, h, 1, owner.ScriptHash(), true)
}

func TestGenomeTransfer(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	owner := h.genome.NewAccount(t)
	next := h.genome.NewAccount(t)
	delegate := h.genome.NewAccount(t)
	cOwner := h.genome.WithSigners(owner)
	cNext := h.genome.WithSigners(next)

	tok := mintDataToken(t, h, owner, 1)
	h.genome.Invoke(t, stackitem.Null{}, "setTrustedDelegate", delegate.ScriptHash(), true)
	cOwner.Invoke(t, stackitem.Null{}, "grantAccess", int64(1), delegate.ScriptHash(), int64(3600))

	cNext.InvokeFail(t, common.ErrOwnerWitnessFailed, "transfer", int64(1), next.ScriptHash())

	tx := cOwner.Invoke(t, stackitem.Null{}, "transfer", int64(1), next.ScriptHash())
	aer := cOwner.CheckHalt(t, tx)
	require.Equal(t, "Transferred", aer.Events[len(aer.Events)-1].Name)

	h.genome.Invoke(t, next.ScriptHash().BytesBE(), "ownerOf", int64(1))

	// Grants do not survive the transfer and the previous owner is a
	// stranger now.
	h.genome.Invoke(t, false, "verifyAccess", int64(1), delegate.ScriptHash())
	h.genome.Invoke(t, false, "verifyAccess", int64(1), owner.ScriptHash())
	cOwner.InvokeFail(t, cst.ErrUnauthorized, "getContentRef", int64(1), owner.ScriptHash())
	cNext.Invoke(t, tok.ref, "getContentRef", int64(1), next.ScriptHash())

	requireTokensOf(t, h, owner, nil)
	requireTokensOf(t, h, next, []int64{1})
}

func requireTokensOf(t *testing.T, h *helixInvokers, acc neotest.Signer, expected []int64) {
	s, err := h.genome.TestInvoke(t, "tokensOf", acc.ScriptHash())
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	var actual []int64
	for iter.Next() {
		id, err := iter.Value().TryInteger()
		require.NoError(t, err)
		actual = append(actual, id.Int64())
	}
	require.Equal(t, expected, actual)
}

func testVerifyAccess(t *testing.T, h *helixInvokers, tokenID int64, identity util.Uint160, expected bool) {
	s, err := h.genome.TestInvoke(t, "verifyAccess", tokenID, identity)
	require.NoError(t, err)
	require.Equal(t, expected, s.Top().Bool())
}

func TestGenomeDeactivate(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	owner := h.genome.NewAccount(t)
	cOwner := h.genome.WithSigners(owner)
	tok := mintDataToken(t, h, owner, 1)

	h.genome.WithSigners(h.genome.NewAccount(t)).InvokeFail(t,
		common.ErrOwnerWitnessFailed, "deactivate", int64(1))
	cOwner.InvokeFail(t, cst.ErrNotFound, "deactivate", int64(42))

	tx := cOwner.Invoke(t, stackitem.Null{}, "deactivate", int64(1))
	aer := cOwner.CheckHalt(t, tx)
	require.Equal(t, "Deactivated", aer.Events[len(aer.Events)-1].Name)

	cOwner.InvokeFail(t, cst.ErrDeactivated, "getContentRef", int64(1), owner.ScriptHash())

	// Metadata and integrity proofs survive deactivation.
	h.genome.Invoke(t, true, "verifyIntegrity", int64(1), tok.hash)
	_, err := h.genome.TestInvoke(t, "getMetadata", int64(1))
	require.NoError(t, err)
}

func TestGenomeTreasury(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	owner := h.genome.NewAccount(t)
	sink := h.genome.NewAccount(t)

	mintDataToken(t, h, owner, 1)
	mintDataToken(t, h, owner, 2)

	genomeHash := h.genome.Hash
	require.EqualValues(t, 2*defaultMintFee, h.balance(t, genomeHash))

	h.genome.WithSigners(owner).InvokeFail(t, common.ErrCommitteeWitnessFailed,
		"withdrawTreasury", sink.ScriptHash())

	h.genome.Invoke(t, stackitem.Null{}, "withdrawTreasury", sink.ScriptHash())
	require.EqualValues(t, 2*defaultMintFee, h.balance(t, sink.ScriptHash()))
	require.EqualValues(t, 0, h.balance(t, genomeHash))

	// Nothing left to withdraw, the call is a no-op.
	h.genome.Invoke(t, stackitem.Null{}, "withdrawTreasury", sink.ScriptHash())
	require.EqualValues(t, 2*defaultMintFee, h.balance(t, sink.ScriptHash()))
}
