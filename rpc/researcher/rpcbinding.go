// Package researcher contains RPC wrappers for Helix Researcher Registry contract.
package researcher

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

// ResearcherResearcher is a contract-specific researcher.Researcher type used by its methods.
type ResearcherResearcher struct {
	Identity util.Uint160
	Name string
	Institution string
	Email string
	Field string
	OrcidID string
	IRBNumber string
	Status *big.Int
	RegisteredAt *big.Int
	VerifiedAt *big.Int
	ReputationScore *big.Int
	TotalBounties *big.Int
	SuccessfulBounties *big.Int
	Active bool
}

// ResearcherVerificationRequest is a contract-specific researcher.VerificationRequest type used by its methods.
type ResearcherVerificationRequest struct {
	Researcher util.Uint160
	DocumentsRef string
	Notes string
	SubmittedAt *big.Int
	Processed bool
}

// StatusUpdatedEvent represents "StatusUpdated" event emitted by the contract.
type StatusUpdatedEvent struct {
	Identity util.Uint160
	Status *big.Int
}

// ReputationUpdatedEvent represents "ReputationUpdated" event emitted by the contract.
type ReputationUpdatedEvent struct {
	Identity util.Uint160
	Score *big.Int
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

// GetRequest invokes `getRequest` method of contract.
func (c *ContractReader) GetRequest(requestID *big.Int) (*ResearcherVerificationRequest, error) {
	return itemToResearcherVerificationRequest(unwrap.Item(c.invoker.Call(c.hash, "getRequest", requestID)))
}

// GetResearcher invokes `getResearcher` method of contract.
func (c *ContractReader) GetResearcher(identity util.Uint160) (*ResearcherResearcher, error) {
	return itemToResearcherResearcher(unwrap.Item(c.invoker.Call(c.hash, "getResearcher", identity)))
}

// IsVerifiedResearcher invokes `isVerifiedResearcher` method of contract.
func (c *ContractReader) IsVerifiedResearcher(identity util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isVerifiedResearcher", identity))
}

// IsVerifier invokes `isVerifier` method of contract.
func (c *ContractReader) IsVerifier(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isVerifier", account))
}

// ListPendingRequests invokes `listPendingRequests` method of contract.
func (c *ContractReader) ListPendingRequests() ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "listPendingRequests"))
}

// ListResearchers invokes `listResearchers` method of contract.
func (c *ContractReader) ListResearchers() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "listResearchers"))
}

// MinReputationScore invokes `minReputationScore` method of contract.
func (c *ContractReader) MinReputationScore() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "minReputationScore"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddVerifier creates a transaction invoking `addVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddVerifier(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addVerifier", account)
}

// AddVerifierTransaction creates a transaction invoking `addVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddVerifierTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addVerifier", account)
}

// AddVerifierUnsigned creates a transaction invoking `addVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddVerifierUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addVerifier", nil, account)
}

// ProcessRequest creates a transaction invoking `processRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProcessRequest(requestID *big.Int, approved bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "processRequest", requestID, approved)
}

// ProcessRequestTransaction creates a transaction invoking `processRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProcessRequestTransaction(requestID *big.Int, approved bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "processRequest", requestID, approved)
}

// ProcessRequestUnsigned creates a transaction invoking `processRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProcessRequestUnsigned(requestID *big.Int, approved bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "processRequest", nil, requestID, approved)
}

// Reactivate creates a transaction invoking `reactivate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Reactivate(identity util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reactivate", identity)
}

// ReactivateTransaction creates a transaction invoking `reactivate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReactivateTransaction(identity util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reactivate", identity)
}

// ReactivateUnsigned creates a transaction invoking `reactivate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReactivateUnsigned(identity util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reactivate", nil, identity)
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(identity util.Uint160, name string, institution string, email string, field string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", identity, name, institution, email, field)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(identity util.Uint160, name string, institution string, email string, field string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", identity, name, institution, email, field)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(identity util.Uint160, name string, institution string, email string, field string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, identity, name, institution, email, field)
}

// RemoveVerifier creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveVerifier(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeVerifier", account)
}

// RemoveVerifierTransaction creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveVerifierTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeVerifier", account)
}

// RemoveVerifierUnsigned creates a transaction invoking `removeVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveVerifierUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeVerifier", nil, account)
}

// Revoke creates a transaction invoking `revoke` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Revoke(identity util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revoke", identity)
}

// RevokeTransaction creates a transaction invoking `revoke` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeTransaction(identity util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revoke", identity)
}

// RevokeUnsigned creates a transaction invoking `revoke` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeUnsigned(identity util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revoke", nil, identity)
}

// SetBountyMarket creates a transaction invoking `setBountyMarket` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetBountyMarket(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setBountyMarket", addr)
}

// SetBountyMarketTransaction creates a transaction invoking `setBountyMarket` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetBountyMarketTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setBountyMarket", addr)
}

// SetBountyMarketUnsigned creates a transaction invoking `setBountyMarket` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetBountyMarketUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setBountyMarket", nil, addr)
}

// SetCredentials creates a transaction invoking `setCredentials` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCredentials(identity util.Uint160, orcidID string, irbNumber string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCredentials", identity, orcidID, irbNumber)
}

// SetCredentialsTransaction creates a transaction invoking `setCredentials` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCredentialsTransaction(identity util.Uint160, orcidID string, irbNumber string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCredentials", identity, orcidID, irbNumber)
}

// SetCredentialsUnsigned creates a transaction invoking `setCredentials` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCredentialsUnsigned(identity util.Uint160, orcidID string, irbNumber string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCredentials", nil, identity, orcidID, irbNumber)
}

// SetMinReputationScore creates a transaction invoking `setMinReputationScore` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMinReputationScore(score *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMinReputationScore", score)
}

// SetMinReputationScoreTransaction creates a transaction invoking `setMinReputationScore` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMinReputationScoreTransaction(score *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMinReputationScore", score)
}

// SetMinReputationScoreUnsigned creates a transaction invoking `setMinReputationScore` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMinReputationScoreUnsigned(score *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMinReputationScore", nil, score)
}

// SubmitVerification creates a transaction invoking `submitVerification` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitVerification(identity util.Uint160, documentsRef string, notes string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitVerification", identity, documentsRef, notes)
}

// SubmitVerificationTransaction creates a transaction invoking `submitVerification` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitVerificationTransaction(identity util.Uint160, documentsRef string, notes string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitVerification", identity, documentsRef, notes)
}

// SubmitVerificationUnsigned creates a transaction invoking `submitVerification` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitVerificationUnsigned(identity util.Uint160, documentsRef string, notes string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitVerification", nil, identity, documentsRef, notes)
}

// Suspend creates a transaction invoking `suspend` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Suspend(identity util.Uint160, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "suspend", identity, reason)
}

// SuspendTransaction creates a transaction invoking `suspend` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SuspendTransaction(identity util.Uint160, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "suspend", identity, reason)
}

// SuspendUnsigned creates a transaction invoking `suspend` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SuspendUnsigned(identity util.Uint160, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "suspend", nil, identity, reason)
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

// UpdateBountyStats creates a transaction invoking `updateBountyStats` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateBountyStats(identity util.Uint160, successful bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateBountyStats", identity, successful)
}

// UpdateBountyStatsTransaction creates a transaction invoking `updateBountyStats` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateBountyStatsTransaction(identity util.Uint160, successful bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateBountyStats", identity, successful)
}

// UpdateBountyStatsUnsigned creates a transaction invoking `updateBountyStats` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateBountyStatsUnsigned(identity util.Uint160, successful bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateBountyStats", nil, identity, successful)
}

// UpdateReputation creates a transaction invoking `updateReputation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateReputation(identity util.Uint160, score *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateReputation", identity, score)
}

// UpdateReputationTransaction creates a transaction invoking `updateReputation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateReputationTransaction(identity util.Uint160, score *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateReputation", identity, score)
}

// UpdateReputationUnsigned creates a transaction invoking `updateReputation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateReputationUnsigned(identity util.Uint160, score *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateReputation", nil, identity, score)
}

// Verify creates a transaction invoking `verify` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Verify(identity util.Uint160, newStatus *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "verify", identity, newStatus)
}

// VerifyTransaction creates a transaction invoking `verify` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VerifyTransaction(identity util.Uint160, newStatus *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "verify", identity, newStatus)
}

// VerifyUnsigned creates a transaction invoking `verify` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VerifyUnsigned(identity util.Uint160, newStatus *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "verify", nil, identity, newStatus)
}

// itemToResearcherResearcher converts stack item into *ResearcherResearcher.
func itemToResearcherResearcher(item stackitem.Item, err error) (*ResearcherResearcher, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ResearcherResearcher)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ResearcherResearcher from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ResearcherResearcher) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 14 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Identity, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Identity: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Institution, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Institution: %w", err)
	}

	index++
	res.Email, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Email: %w", err)
	}

	index++
	res.Field, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Field: %w", err)
	}

	index++
	res.OrcidID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OrcidID: %w", err)
	}

	index++
	res.IRBNumber, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field IRBNumber: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.RegisteredAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RegisteredAt: %w", err)
	}

	index++
	res.VerifiedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VerifiedAt: %w", err)
	}

	index++
	res.ReputationScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReputationScore: %w", err)
	}

	index++
	res.TotalBounties, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalBounties: %w", err)
	}

	index++
	res.SuccessfulBounties, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SuccessfulBounties: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// itemToResearcherVerificationRequest converts stack item into *ResearcherVerificationRequest.
func itemToResearcherVerificationRequest(item stackitem.Item, err error) (*ResearcherVerificationRequest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ResearcherVerificationRequest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ResearcherVerificationRequest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ResearcherVerificationRequest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Researcher, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Researcher: %w", err)
	}

	index++
	res.DocumentsRef, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field DocumentsRef: %w", err)
	}

	index++
	res.Notes, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Notes: %w", err)
	}

	index++
	res.SubmittedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmittedAt: %w", err)
	}

	index++
	res.Processed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Processed: %w", err)
	}

	return nil
}

// StatusUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "StatusUpdated" name from the provided [result.ApplicationLog].
func StatusUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StatusUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StatusUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StatusUpdated" {
				continue
			}
			event := new(StatusUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StatusUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StatusUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *StatusUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Identity, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Identity: %w", err)
	}

	index++
	e.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}

// ReputationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationUpdated" name from the provided [result.ApplicationLog].
func ReputationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReputationUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReputationUpdated" {
				continue
			}
			event := new(ReputationUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReputationUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReputationUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Identity, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Identity: %w", err)
	}

	index++
	e.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	return nil
}
