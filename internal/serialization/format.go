package serialization

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Format constants.
const (
	MagicBytes    = "MLPN"
	FormatVersion = 1  // v1: raw layout followed by a SHA-256 checksum
	ChecksumSize  = 32 // SHA-256 checksum size (32 bytes)
)

// byteOrder is the host's native order; raw files are not portable across endianness.
var byteOrder = binary.NativeEndian

// Format selects the on-disk layout written by Save and Write.
type Format int

const (
	// FormatRaw is the header-less layout (default).
	FormatRaw Format = iota
	// FormatChecked adds magic, version and a SHA-256 checksum around the raw layout.
	FormatChecked
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatChecked:
		return "checked"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "raw" or "checked" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw", "":
		return FormatRaw, nil
	case "checked":
		return FormatChecked, nil
	default:
		return 0, fmt.Errorf("unknown model format %q (want raw or checked)", s)
	}
}

// Options configures Save and Write.
type Options struct {
	Format Format // On-disk layout (default: FormatRaw)
}
