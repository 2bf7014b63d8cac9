/*
Package credits contains implementation of Credits contract deployed in the
Helix sidechain.

Credits contract is the funds-transfer primitive of the Helix system: a
NEP-17 style token ("HLXC") covering mint fees, bounty escrow, reward
payouts and refunds. Besides regular owner-witnessed transfers it accepts
transferX calls from the Genome and Bounty contracts, which move funds on
behalf of users as part of their own atomic operations. Supply is managed by
the committee through Mint and Burn.

# Contract notifications

Transfer notification. This notification is produced on every balance
movement, including mint (from is null) and burn (to is null).

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This notification accompanies every Transfer and
carries the purpose details, supplied by the calling system contract or
empty for plain transfers.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray

Mint notification. This notification is produced when the committee issues
new credits.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification. This notification is produced when the committee destroys
credits.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package credits

/*
Contract storage model.

# Summary
Current conventions:
 <account>: 20-byte script hash of a chain account

Key-value storage format:
 - 'HelixCredits' -> int
   total circulating supply
 - 'genomeScriptHash' -> interop.Hash160
   Genome contract reference, allowed to call transferX
 - 'bountyScriptHash' -> interop.Hash160
   Bounty contract reference, allowed to call transferX
 - <account> -> std.Serialize(Account)
   balances of accounts
*/
