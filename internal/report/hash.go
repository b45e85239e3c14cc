package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain separates report hashes from any other hash of the same bytes.
const Domain = "buildassert/report/v1"

// Hash returns the hex SHA-256 of Domain, a zero byte and the canonical
// JSON of v.
func Hash(v any) (string, error) {
	data, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("hash report: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(Domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
