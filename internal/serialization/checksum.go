package serialization

import (
	"crypto/sha256"
	"hash"
)

// newChecksum returns the running SHA-256 hash that covers the raw layout of a checked file.
func newChecksum() hash.Hash {
	return sha256.New()
}

// checksumOf finalizes h into a fixed-size checksum.
func checksumOf(h hash.Hash) [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// ValidateChecksum compares computed checksum against stored checksum.
// Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(computed, stored [ChecksumSize]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}
