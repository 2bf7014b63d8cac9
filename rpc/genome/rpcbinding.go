// Package genome contains RPC wrappers for Helix Genome Access Registry contract.
package genome

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// GenomeDataToken is a contract-specific genome.DataToken type used by its methods.
type GenomeDataToken struct {
	Owner util.Uint160
	ContentRef string
	ContentHash util.Uint256
	EncryptionTag string
	Category string
	CreatedAt *big.Int
	SizeBytes *big.Int
	Active bool
}

// GenomeAccessGrant is a contract-specific genome.AccessGrant type used by its methods.
type GenomeAccessGrant struct {
	Deadline *big.Int
	Valid bool
}

// MintedEvent represents "Minted" event emitted by the contract.
type MintedEvent struct {
	TokenID *big.Int
	Owner util.Uint160
}

// TransferredEvent represents "Transferred" event emitted by the contract.
type TransferredEvent struct {
	TokenID *big.Int
	From util.Uint160
	To util.Uint160
}

// DeactivatedEvent represents "Deactivated" event emitted by the contract.
type DeactivatedEvent struct {
	TokenID *big.Int
}

// AccessGrantedEvent represents "AccessGranted" event emitted by the contract.
type AccessGrantedEvent struct {
	TokenID *big.Int
	Delegate util.Uint160
	Deadline *big.Int
}

// AccessRevokedEvent represents "AccessRevoked" event emitted by the contract.
type AccessRevokedEvent struct {
	TokenID *big.Int
	Delegate util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
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

// Count invokes `count` method of contract.
func (c *ContractReader) Count() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "count"))
}

// GetContentRef invokes `getContentRef` method of contract.
func (c *ContractReader) GetContentRef(tokenID *big.Int, caller util.Uint160) (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "getContentRef", tokenID, caller))
}

// GetMetadata invokes `getMetadata` method of contract.
func (c *ContractReader) GetMetadata(tokenID *big.Int) (*GenomeDataToken, error) {
	return itemToGenomeDataToken(unwrap.Item(c.invoker.Call(c.hash, "getMetadata", tokenID)))
}

// IsTrustedDelegate invokes `isTrustedDelegate` method of contract.
func (c *ContractReader) IsTrustedDelegate(identity util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isTrustedDelegate", identity))
}

// MintFee invokes `mintFee` method of contract.
func (c *ContractReader) MintFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "mintFee"))
}

// OwnerOf invokes `ownerOf` method of contract.
func (c *ContractReader) OwnerOf(tokenID *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "ownerOf", tokenID))
}

// TokensOf invokes `tokensOf` method of contract.
func (c *ContractReader) TokensOf(owner util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "tokensOf", owner))
}

// TokensOfExpanded is similar to TokensOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) TokensOfExpanded(owner util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "tokensOf", _numOfIteratorItems, owner))
}

// VerifyAccess invokes `verifyAccess` method of contract.
func (c *ContractReader) VerifyAccess(tokenID *big.Int, identity util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "verifyAccess", tokenID, identity))
}

// VerifyIntegrity invokes `verifyIntegrity` method of contract.
func (c *ContractReader) VerifyIntegrity(tokenID *big.Int, hash util.Uint256) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "verifyIntegrity", tokenID, hash))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Deactivate creates a transaction invoking `deactivate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deactivate(tokenID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deactivate", tokenID)
}

// DeactivateTransaction creates a transaction invoking `deactivate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeactivateTransaction(tokenID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deactivate", tokenID)
}

// DeactivateUnsigned creates a transaction invoking `deactivate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeactivateUnsigned(tokenID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deactivate", nil, tokenID)
}

// GrantAccess creates a transaction invoking `grantAccess` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GrantAccess(tokenID *big.Int, delegate util.Uint160, durationSeconds *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "grantAccess", tokenID, delegate, durationSeconds)
}

// GrantAccessTransaction creates a transaction invoking `grantAccess` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GrantAccessTransaction(tokenID *big.Int, delegate util.Uint160, durationSeconds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "grantAccess", tokenID, delegate, durationSeconds)
}

// GrantAccessUnsigned creates a transaction invoking `grantAccess` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GrantAccessUnsigned(tokenID *big.Int, delegate util.Uint160, durationSeconds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "grantAccess", nil, tokenID, delegate, durationSeconds)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(owner util.Uint160, contentRef string, contentHash util.Uint256, encryptionTag string, category string, sizeBytes *big.Int, feePaid *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", owner, contentRef, contentHash, encryptionTag, category, sizeBytes, feePaid)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(owner util.Uint160, contentRef string, contentHash util.Uint256, encryptionTag string, category string, sizeBytes *big.Int, feePaid *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", owner, contentRef, contentHash, encryptionTag, category, sizeBytes, feePaid)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(owner util.Uint160, contentRef string, contentHash util.Uint256, encryptionTag string, category string, sizeBytes *big.Int, feePaid *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, owner, contentRef, contentHash, encryptionTag, category, sizeBytes, feePaid)
}

// RevokeAccess creates a transaction invoking `revokeAccess` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeAccess(tokenID *big.Int, delegate util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeAccess", tokenID, delegate)
}

// RevokeAccessTransaction creates a transaction invoking `revokeAccess` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeAccessTransaction(tokenID *big.Int, delegate util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeAccess", tokenID, delegate)
}

// RevokeAccessUnsigned creates a transaction invoking `revokeAccess` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeAccessUnsigned(tokenID *big.Int, delegate util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeAccess", nil, tokenID, delegate)
}

// SetMintFee creates a transaction invoking `setMintFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMintFee(fee *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMintFee", fee)
}

// SetMintFeeTransaction creates a transaction invoking `setMintFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMintFeeTransaction(fee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMintFee", fee)
}

// SetMintFeeUnsigned creates a transaction invoking `setMintFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMintFeeUnsigned(fee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMintFee", nil, fee)
}

// SetTrustedDelegate creates a transaction invoking `setTrustedDelegate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTrustedDelegate(identity util.Uint160, trusted bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTrustedDelegate", identity, trusted)
}

// SetTrustedDelegateTransaction creates a transaction invoking `setTrustedDelegate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTrustedDelegateTransaction(identity util.Uint160, trusted bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTrustedDelegate", identity, trusted)
}

// SetTrustedDelegateUnsigned creates a transaction invoking `setTrustedDelegate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTrustedDelegateUnsigned(identity util.Uint160, trusted bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTrustedDelegate", nil, identity, trusted)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(tokenID *big.Int, to util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", tokenID, to)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(tokenID *big.Int, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", tokenID, to)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(tokenID *big.Int, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, tokenID, to)
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

// WithdrawTreasury creates a transaction invoking `withdrawTreasury` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawTreasury(to util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawTreasury", to)
}

// WithdrawTreasuryTransaction creates a transaction invoking `withdrawTreasury` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTreasuryTransaction(to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawTreasury", to)
}

// WithdrawTreasuryUnsigned creates a transaction invoking `withdrawTreasury` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawTreasuryUnsigned(to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawTreasury", nil, to)
}

// itemToGenomeDataToken converts stack item into *GenomeDataToken.
func itemToGenomeDataToken(item stackitem.Item, err error) (*GenomeDataToken, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GenomeDataToken)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GenomeDataToken from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GenomeDataToken) FromStackItem(item stackitem.Item) error {
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
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.ContentRef, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ContentRef: %w", err)
	}

	index++
	res.ContentHash, err = func (item stackitem.Item) (util.Uint256, error) {
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
		return fmt.Errorf("field ContentHash: %w", err)
	}

	index++
	res.EncryptionTag, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field EncryptionTag: %w", err)
	}

	index++
	res.Category, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Category: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.SizeBytes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SizeBytes: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// FromStackItem retrieves fields of GenomeAccessGrant from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GenomeAccessGrant) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	res.Valid, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Valid: %w", err)
	}

	return nil
}

// MintedEventsFromApplicationLog retrieves a set of all emitted events
// with "Minted" name from the provided [result.ApplicationLog].
func MintedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MintedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Minted" {
				continue
			}
			event := new(MintedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MintedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MintedEvent or
// returns an error if it's not possible to do to so.
func (e *MintedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TokenID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TokenID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// AccessGrantedEventsFromApplicationLog retrieves a set of all emitted events
// with "AccessGranted" name from the provided [result.ApplicationLog].
func AccessGrantedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AccessGrantedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AccessGrantedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AccessGranted" {
				continue
			}
			event := new(AccessGrantedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AccessGrantedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AccessGrantedEvent or
// returns an error if it's not possible to do to so.
func (e *AccessGrantedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TokenID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TokenID: %w", err)
	}

	index++
	e.Delegate, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Delegate: %w", err)
	}

	index++
	e.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	return nil
}
