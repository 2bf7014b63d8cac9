/*
Package bounty contains implementation of Bounty Escrow Market contract
deployed in the Helix sidechain.

Bounty contract lets researchers post funded queries against tokenized
genomic data and pays data owners for responses. The full reward pool plus a
platform fee is escrowed in Helix credits at creation time, and every
admitted response is paid in the same transaction that records it, so the
escrow ledger can never owe more than it holds. The market consults the
Genome contract for token ownership and activity through state-only calls
and trusts it for nothing else.

Bounty expiry is checked lazily at response time; remaining escrow of
expired bounties is returned to creators by the explicit ProcessExpired
batch operation.

# Contract notifications

BountyCreated notification. This notification is produced when a new bounty
is funded and opened.

	BountyCreated:
	  - name: bountyID
	    type: Integer
	  - name: creator
	    type: Hash160
	  - name: escrowed
	    type: Integer
	  - name: expiresAt
	    type: Integer

BountyCancelled notification. This notification is produced when the creator
cancels a bounty and its remaining escrow is refunded.

	BountyCancelled:
	  - name: bountyID
	    type: Integer
	  - name: refunded
	    type: Integer

BountyExpired notification. This notification is produced per bounty settled
by the ProcessExpired batch operation.

	BountyExpired:
	  - name: bountyID
	    type: Integer
	  - name: refunded
	    type: Integer

ResponseSubmitted notification. This notification is produced when a data
token owner's response is admitted and paid.

	ResponseSubmitted:
	  - name: bountyID
	    type: Integer
	  - name: responseID
	    type: Integer
	  - name: responder
	    type: Hash160
	  - name: reward
	    type: Integer

FeesWithdrawn notification. This notification is produced when the committee
withdraws accumulated platform revenue.

	FeesWithdrawn:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package bounty

/*
Contract storage model.

# Summary
Current conventions:
 <id>: 8-byte little-endian padded bounty or response identifier

Key-value storage format:
 - 'genomeScriptHash' -> interop.Hash160
   Genome contract reference
 - 'creditsScriptHash' -> interop.Hash160
   Credits contract reference
 - 'platformFeeBps' -> int
   platform fee in basis points, at most 1000
 - 'paused' -> bool
   emergency stop flag for bounty creation and responses
 - 'bountyCounter' -> int
   identifier of the most recently created bounty
 - 'responseCounter' -> int
   identifier of the most recently admitted response
 - 'totalEscrow' -> int
   sum of remaining escrowed funds across all bounties
 - 'b<id>' -> std.Serialize(Bounty)
   bounty descriptors
 - 'r<id>' -> std.Serialize(Response)
   response descriptors
 - 'p<bountyID><tokenID>' -> <responseID>
   one-response-per-pair guard and per-bounty response index

# Escrow
The contract's credit balance always equals totalEscrow plus accumulated
platform fees. WithdrawFees pays out exactly the difference, so escrowed
funds cannot be withdrawn as revenue.
*/
