/*
Package genome contains implementation of Genome Access Registry contract
deployed in the Helix sidechain.

Genome contract tokenizes references to encrypted genomic datasets and manages
delegated access to them. The encrypted payload itself never touches the
chain: the contract stores an opaque content reference, a SHA-256 content
hash for integrity checks and an encryption tag, while the encrypted blob
lives in off-chain storage. Access is gated by token ownership and by
time-bounded grants to trusted delegates.

Minting requires a fee in Helix credits, overpayment is refunded within the
same transaction. Collected fees form the registry treasury withdrawable by
the committee.

# Contract notifications

Minted notification. This notification is produced when a new data token is
created.

	Minted:
	  - name: tokenID
	    type: Integer
	  - name: owner
	    type: Hash160

Transferred notification. This notification is produced when a data token
changes owner. All outstanding grants of the token are dropped in the same
transaction.

	Transferred:
	  - name: tokenID
	    type: Integer
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160

Deactivated notification. This notification is produced when the owner
permanently deactivates a data token.

	Deactivated:
	  - name: tokenID
	    type: Integer

AccessGranted notification. This notification is produced when the token
owner grants time-bounded access to a trusted delegate.

	AccessGranted:
	  - name: tokenID
	    type: Integer
	  - name: delegate
	    type: Hash160
	  - name: deadline
	    type: Integer

AccessRevoked notification. This notification is produced when the token
owner revokes a delegate's grant.

	AccessRevoked:
	  - name: tokenID
	    type: Integer
	  - name: delegate
	    type: Hash160
*/
package genome

/*
Contract storage model.

# Summary
Current conventions:
 <id>: 8-byte little-endian padded token identifier
 <account>: 20-byte script hash of a chain account

Key-value storage format:
 - 'creditsScriptHash' -> interop.Hash160
   Credits contract reference
 - 'mintFee' -> int
   fee in credits charged for minting one data token
 - 'tokenCounter' -> int
   identifier of the most recently minted token
 - 't<id>' -> std.Serialize(DataToken)
   data token descriptors
 - 'o<account><id>' -> <id>
   owner-by-owner token index
 - 'g<id><account>' -> std.Serialize(AccessGrant)
   access grants per token and delegate
 - 'd<account>' -> bool
   trusted delegate set

# Tokens
Contract stores descriptors of all minted data tokens. Metadata is retained
forever, deactivation only flips the active flag. Tokens are additionally
indexed by their owners.

# Grants
A grant is valid while its valid flag is set and its deadline lies in the
future. Expired grants are not garbage-collected, they simply stop passing
the access check. Transferring a token removes all its grant records.
*/
