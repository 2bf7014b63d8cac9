package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
)

var (
	mintFeePrefix  = []byte{0x01}
	escrowPrefix   = []byte{0x02}
	rewardPrefix   = []byte{0x03}
	refundPrefix   = []byte{0x04}
	treasuryPrefix = []byte{0x05}
	platformPrefix = []byte{0x06}
)

// MintFeeTransferDetails marks a credits transfer charging the genome
// registry mint fee for the given token.
func MintFeeTransferDetails(tokenID int) []byte {
	return append(mintFeePrefix, convert.ToBytes(tokenID)...)
}

// EscrowTransferDetails marks a credits transfer locking bounty escrow.
func EscrowTransferDetails(bountyID int) []byte {
	return append(escrowPrefix, convert.ToBytes(bountyID)...)
}

// RewardTransferDetails marks a credits transfer paying a bounty reward.
func RewardTransferDetails(bountyID, responseID int) []byte {
	details := append(rewardPrefix, convert.ToBytes(bountyID)...)
	return append(details, convert.ToBytes(responseID)...)
}

// RefundTransferDetails marks a credits transfer returning unused funds to
// their owner (mint change, cancelled or expired escrow).
func RefundTransferDetails(id int) []byte {
	return append(refundPrefix, convert.ToBytes(id)...)
}

// TreasuryTransferDetails marks a withdrawal of the genome registry treasury.
func TreasuryTransferDetails() []byte {
	return treasuryPrefix
}

// PlatformFeeTransferDetails marks a withdrawal of accumulated platform fees
// from the bounty market.
func PlatformFeeTransferDetails() []byte {
	return platformPrefix
}
