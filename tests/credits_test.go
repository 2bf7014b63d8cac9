package tests

import (
	"testing"

	"github.com/Mridul-06-stack/helix-final/common"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestCreditsTokenInfo(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	h.credits.Invoke(t, "HLXC", "symbol")
	h.credits.Invoke(t, 8, "decimals")
	h.credits.Invoke(t, 0, "totalSupply")
}

func TestCreditsMintBurn(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	acc := h.credits.NewAccount(t)
	cAcc := h.credits.WithSigners(acc)

	cAcc.InvokeFail(t, common.ErrCommitteeWitnessFailed, "mint", acc.ScriptHash(), int64(1000), []byte{})

	h.fund(t, acc.ScriptHash(), 1000)
	h.credits.Invoke(t, 1000, "totalSupply")
	require.EqualValues(t, 1000, h.balance(t, acc.ScriptHash()))

	cAcc.InvokeFail(t, common.ErrCommitteeWitnessFailed, "burn", acc.ScriptHash(), int64(400), []byte{})

	h.credits.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), int64(400), []byte{})
	h.credits.Invoke(t, 600, "totalSupply")
	require.EqualValues(t, 600, h.balance(t, acc.ScriptHash()))

	h.credits.InvokeFail(t, "can't transfer assets", "burn", acc.ScriptHash(), int64(601), []byte{})
}

func TestCreditsTransfer(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	from := h.credits.NewAccount(t)
	to := h.credits.NewAccount(t)
	h.fund(t, from.ScriptHash(), 500)

	cFrom := h.credits.WithSigners(from)
	cTo := h.credits.WithSigners(to)

	// The sender must witness the transaction, otherwise the transfer is
	// rejected without a fault.
	cTo.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), int64(100), nil)

	tx := cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), int64(100), nil)
	aer := cFrom.CheckHalt(t, tx)
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "TransferX", aer.Events[1].Name)

	require.EqualValues(t, 400, h.balance(t, from.ScriptHash()))
	require.EqualValues(t, 100, h.balance(t, to.ScriptHash()))

	// Overdraft.
	cFrom.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), int64(401), nil)
}

func TestCreditsTransferXGate(t *testing.T) {
	h := newDefaultHelixInvokers(t)

	from := h.credits.NewAccount(t)
	to := h.credits.NewAccount(t)
	h.fund(t, from.ScriptHash(), 500)

	// Direct transferX is reserved for the committee and the two system
	// contracts, a signing user cannot bypass the gate.
	cFrom := h.credits.WithSigners(from)
	cFrom.InvokeFail(t, common.ErrCommitteeWitnessFailed, "transferX",
		from.ScriptHash(), to.ScriptHash(), int64(100), []byte{})

	h.credits.Invoke(t, stackitem.Null{}, "transferX",
		from.ScriptHash(), to.ScriptHash(), int64(100), []byte{})
	require.EqualValues(t, 100, h.balance(t, to.ScriptHash()))
}
