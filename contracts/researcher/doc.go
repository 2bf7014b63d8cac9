/*
Package researcher contains implementation of Researcher Verification
Registry contract deployed in the Helix sidechain.

Researcher contract tracks the trust lifecycle of researcher identities:
registration, email verification, full verification, suspension and
revocation. Verification itself happens off-chain; authorized verifiers
record its outcome here. The registry is consulted as a policy gate via
IsVerifiedResearcher and never sits on the payment path of the bounty
market, which only reports completed-bounty statistics back to it.

# Contract notifications

ResearcherRegistered notification. This notification is produced when a new
identity registers.

	ResearcherRegistered:
	  - name: identity
	    type: Hash160
	  - name: institution
	    type: String
	  - name: field
	    type: String

VerificationSubmitted notification. This notification is produced when a
researcher files a verification request for a verifier to process.

	VerificationSubmitted:
	  - name: requestID
	    type: Integer
	  - name: identity
	    type: Hash160

StatusUpdated notification. This notification is produced on every lifecycle
transition.

	StatusUpdated:
	  - name: identity
	    type: Hash160
	  - name: status
	    type: Integer

ReputationUpdated notification. This notification is produced when the
committee overwrites a researcher's reputation score.

	ReputationUpdated:
	  - name: identity
	    type: Hash160
	  - name: score
	    type: Integer

ResearcherSuspended notification. This notification is produced when the
committee suspends a researcher.

	ResearcherSuspended:
	  - name: identity
	    type: Hash160
	  - name: reason
	    type: String

ResearcherReactivated notification. This notification is produced when a
suspended researcher is restored to full verification.

	ResearcherReactivated:
	  - name: identity
	    type: Hash160
*/
package researcher

/*
Contract storage model.

# Summary
Current conventions:
 <id>: 8-byte little-endian padded request identifier
 <account>: 20-byte script hash of a chain account

Key-value storage format:
 - 'marketScriptHash' -> interop.Hash160
   Bounty contract reference, the only non-committee caller allowed to
   report bounty statistics
 - 'minReputationScore' -> int
   reputation threshold of the verification policy
 - 'requestCounter' -> int
   identifier of the most recently filed verification request
 - 'r<account>' -> std.Serialize(Researcher)
   researcher records
 - 'e<email>' -> interop.Hash160
   email uniqueness index
 - 'q<id>' -> std.Serialize(VerificationRequest)
   verification requests
 - 'v<account>' -> bool
   verifier role set

# Lifecycle
Status moves Pending -> EmailVerified -> FullyVerified through verifier
action. Suspension and revocation are committee actions from any registered
state; both deactivate the record. Reactivation is the only reverse
transition and always restores FullyVerified. Revocation is terminal.
*/
