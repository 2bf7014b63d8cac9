// Package bounty contains RPC wrappers for Helix Bounty Market contract.
package bounty

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// BountyBounty is a contract-specific bounty.Bounty type used by its methods.
type BountyBounty struct {
	Creator util.Uint160
	QueryKind string
	QueryParams string
	RewardPerResponse *big.Int
	MaxResponses *big.Int
	ResponseCount *big.Int
	TotalFunded *big.Int
	RemainingFunds *big.Int
	CreatedAt *big.Int
	ExpiresAt *big.Int
	Active bool
}

// BountyResponse is a contract-specific bounty.Response type used by its methods.
type BountyResponse struct {
	BountyID *big.Int
	TokenID *big.Int
	Responder util.Uint160
	ResultDigest util.Uint256
	Proof []byte
	ResultValue bool
	Timestamp *big.Int
	Paid bool
}

// BountyCreatedEvent represents "BountyCreated" event emitted by the contract.
type BountyCreatedEvent struct {
	BountyID *big.Int
	Creator util.Uint160
	Escrowed *big.Int
	ExpiresAt *big.Int
}

// BountyCancelledEvent represents "BountyCancelled" event emitted by the contract.
type BountyCancelledEvent struct {
	BountyID *big.Int
	Refunded *big.Int
}

// BountyExpiredEvent represents "BountyExpired" event emitted by the contract.
type BountyExpiredEvent struct {
	BountyID *big.Int
	Refunded *big.Int
}

// ResponseSubmittedEvent represents "ResponseSubmitted" event emitted by the contract.
type ResponseSubmittedEvent struct {
	BountyID *big.Int
	ResponseID *big.Int
	Responder util.Uint160
	Reward *big.Int
}

// FeesWithdrawnEvent represents "FeesWithdrawn" event emitted by the contract.
type FeesWithdrawnEvent struct {
	To util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// CanRespond invokes `canRespond` method of contract.
func (c *ContractReader) CanRespond(tokenID *big.Int, bountyID *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "canRespond", tokenID, bountyID))
}

// GetBounty invokes `getBounty` method of contract.
func (c *ContractReader) GetBounty(bountyID *big.Int) (*BountyBounty, error) {
	return itemToBountyBounty(unwrap.Item(c.invoker.Call(c.hash, "getBounty", bountyID)))
}

// GetResponse invokes `getResponse` method of contract.
func (c *ContractReader) GetResponse(responseID *big.Int) (*BountyResponse, error) {
	return itemToBountyResponse(unwrap.Item(c.invoker.Call(c.hash, "getResponse", responseID)))
}

// IsPaused invokes `isPaused` method of contract.
func (c *ContractReader) IsPaused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isPaused"))
}

// ListActiveBounties invokes `listActiveBounties` method of contract.
func (c *ContractReader) ListActiveBounties() ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "listActiveBounties"))
}

// ListResponses invokes `listResponses` method of contract.
func (c *ContractReader) ListResponses(bountyID *big.Int) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "listResponses", bountyID))
}

// PlatformFeeBps invokes `platformFeeBps` method of contract.
func (c *ContractReader) PlatformFeeBps() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "platformFeeBps"))
}

// TotalEscrow invokes `totalEscrow` method of contract.
func (c *ContractReader) TotalEscrow() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalEscrow"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CancelBounty creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelBounty(bountyID *big.Int, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelBounty", bountyID, caller)
}

// CancelBountyTransaction creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelBountyTransaction(bountyID *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelBounty", bountyID, caller)
}

// CancelBountyUnsigned creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelBountyUnsigned(bountyID *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelBounty", nil, bountyID, caller)
}

// CreateBounty creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateBounty(creator util.Uint160, queryKind string, queryParams string, rewardPerResponse *big.Int, maxResponses *big.Int, durationSeconds *big.Int, fundsProvided *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createBounty", creator, queryKind, queryParams, rewardPerResponse, maxResponses, durationSeconds, fundsProvided)
}

// CreateBountyTransaction creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateBountyTransaction(creator util.Uint160, queryKind string, queryParams string, rewardPerResponse *big.Int, maxResponses *big.Int, durationSeconds *big.Int, fundsProvided *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createBounty", creator, queryKind, queryParams, rewardPerResponse, maxResponses, durationSeconds, fundsProvided)
}

// CreateBountyUnsigned creates a transaction invoking `createBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateBountyUnsigned(creator util.Uint160, queryKind string, queryParams string, rewardPerResponse *big.Int, maxResponses *big.Int, durationSeconds *big.Int, fundsProvided *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createBounty", nil, creator, queryKind, queryParams, rewardPerResponse, maxResponses, durationSeconds, fundsProvided)
}

// Pause creates a transaction invoking `pause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pause")
}

// PauseTransaction creates a transaction invoking `pause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pause")
}

// PauseUnsigned creates a transaction invoking `pause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pause", nil)
}

// ProcessExpired creates a transaction invoking `processExpired` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProcessExpired(bountyIDs []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "processExpired", bountyIDs)
}

// ProcessExpiredTransaction creates a transaction invoking `processExpired` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProcessExpiredTransaction(bountyIDs []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "processExpired", bountyIDs)
}

// ProcessExpiredUnsigned creates a transaction invoking `processExpired` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProcessExpiredUnsigned(bountyIDs []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "processExpired", nil, bountyIDs)
}

// RespondToBounty creates a transaction invoking `respondToBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RespondToBounty(bountyID *big.Int, tokenID *big.Int, resultValue bool, proof []byte, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "respondToBounty", bountyID, tokenID, resultValue, proof, caller)
}

// RespondToBountyTransaction creates a transaction invoking `respondToBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RespondToBountyTransaction(bountyID *big.Int, tokenID *big.Int, resultValue bool, proof []byte, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "respondToBounty", bountyID, tokenID, resultValue, proof, caller)
}

// RespondToBountyUnsigned creates a transaction invoking `respondToBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RespondToBountyUnsigned(bountyID *big.Int, tokenID *big.Int, resultValue bool, proof []byte, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "respondToBounty", nil, bountyID, tokenID, resultValue, proof, caller)
}

// SetAccessRegistry creates a transaction invoking `setAccessRegistry` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAccessRegistry(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAccessRegistry", addr)
}

// SetAccessRegistryTransaction creates a transaction invoking `setAccessRegistry` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAccessRegistryTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAccessRegistry", addr)
}

// SetAccessRegistryUnsigned creates a transaction invoking `setAccessRegistry` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAccessRegistryUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAccessRegistry", nil, addr)
}

// SetPlatformFee creates a transaction invoking `setPlatformFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPlatformFee(bps *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPlatformFee", bps)
}

// SetPlatformFeeTransaction creates a transaction invoking `setPlatformFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPlatformFeeTransaction(bps *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPlatformFee", bps)
}

// SetPlatformFeeUnsigned creates a transaction invoking `setPlatformFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPlatformFeeUnsigned(bps *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPlatformFee", nil, bps)
}

// Unpause creates a transaction invoking `unpause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unpause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unpause")
}

// UnpauseTransaction creates a transaction invoking `unpause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnpauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unpause")
}

// UnpauseUnsigned creates a transaction invoking `unpause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnpauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unpause", nil)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// WithdrawFees creates a transaction invoking `withdrawFees` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawFees(to util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawFees", to)
}

// WithdrawFeesTransaction creates a transaction invoking `withdrawFees` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawFeesTransaction(to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawFees", to)
}

// WithdrawFeesUnsigned creates a transaction invoking `withdrawFees` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawFeesUnsigned(to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawFees", nil, to)
}

// itemToBountyBounty converts stack item into *BountyBounty.
func itemToBountyBounty(item stackitem.Item, err error) (*BountyBounty, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountyBounty)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountyBounty from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BountyBounty) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 11 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	res.QueryKind, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field QueryKind: %w", err)
	}

	index++
	res.QueryParams, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field QueryParams: %w", err)
	}

	index++
	res.RewardPerResponse, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardPerResponse: %w", err)
	}

	index++
	res.MaxResponses, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxResponses: %w", err)
	}

	index++
	res.ResponseCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ResponseCount: %w", err)
	}

	index++
	res.TotalFunded, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalFunded: %w", err)
	}

	index++
	res.RemainingFunds, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RemainingFunds: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.ExpiresAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExpiresAt: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// itemToBountyResponse converts stack item into *BountyResponse.
func itemToBountyResponse(item stackitem.Item, err error) (*BountyResponse, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountyResponse)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountyResponse from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BountyResponse) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	res.TokenID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TokenID: %w", err)
	}

	index++
	res.Responder, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Responder: %w", err)
	}

	index++
	res.ResultDigest, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ResultDigest: %w", err)
	}

	index++
	res.Proof, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Proof: %w", err)
	}

	index++
	res.ResultValue, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field ResultValue: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.Paid, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Paid: %w", err)
	}

	return nil
}

// BountyCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyCreated" name from the provided [result.ApplicationLog].
func BountyCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyCreated" {
				continue
			}
			event := new(BountyCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *BountyCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.Escrowed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Escrowed: %w", err)
	}

	index++
	e.ExpiresAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExpiresAt: %w", err)
	}

	return nil
}

// ResponseSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "ResponseSubmitted" name from the provided [result.ApplicationLog].
func ResponseSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ResponseSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ResponseSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ResponseSubmitted" {
				continue
			}
			event := new(ResponseSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ResponseSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ResponseSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *ResponseSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.ResponseID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ResponseID: %w", err)
	}

	index++
	e.Responder, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Responder: %w", err)
	}

	index++
	e.Reward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	return nil
}
