package genome

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Content references produced by the off-chain storage pipeline are CIDv0
// strings: base58-encoded SHA-256 multihashes. The contract treats them as
// opaque, these helpers let clients convert between the reference string and
// the content hash stored on chain.

const (
	multihashSha256 = 0x12
	multihashLen    = 0x20

	cidSize = 34
)

// ContentRefFromHash encodes the SHA-256 content hash into a CIDv0 content
// reference string.
func ContentRefFromHash(hash util.Uint256) string {
	buf := make([]byte, 0, cidSize)
	buf = append(buf, multihashSha256, multihashLen)
	buf = append(buf, hash.BytesBE()...)

	return base58.Encode(buf)
}

// HashFromContentRef decodes a CIDv0 content reference string back into the
// SHA-256 content hash.
func HashFromContentRef(ref string) (util.Uint256, error) {
	buf, err := base58.Decode(ref)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid base58 string: %w", err)
	}
	if len(buf) != cidSize {
		return util.Uint256{}, fmt.Errorf("invalid CID length %d", len(buf))
	}
	if buf[0] != multihashSha256 || buf[1] != multihashLen {
		return util.Uint256{}, errors.New("not a SHA-256 CIDv0")
	}

	return util.Uint256DecodeBytesBE(buf[2:])
}
