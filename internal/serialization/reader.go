package serialization

import (
	"bufio"
	"encoding/binary"
	stderrors "errors"
	"io"
	"os"

	"github.com/born-ml/mlp/internal/nn"
)

// Load reads a network from path. Both the raw and the checked layout are accepted.
//
// Returns ErrIO if the file cannot be opened or read and ErrCorruptFile if it ends early
// or declares an invalid topology. No network is returned on error.
func Load(path string) (*nn.Network, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(err, "failed to open %s", path)
	}
	defer file.Close()

	return Read(file)
}

// Read decodes a network from r, detecting the layout from the first four bytes.
//
// Bytes after the raw layout are ignored; the checked layout must end with its checksum.
func Read(r io.Reader) (*nn.Network, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(len(MagicBytes))
	if err != nil {
		return nil, readError(err, "failed to read layer count")
	}
	if string(magic) == MagicBytes {
		return readChecked(br)
	}
	return readRaw(br)
}

// readChecked parses magic, version, raw layout and trailing checksum.
func readChecked(r io.Reader) (*nn.Network, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, readError(err, "failed to read magic bytes")
	}

	var version uint32
	if err := binary.Read(r, byteOrder, &version); err != nil {
		return nil, readError(err, "failed to read version")
	}
	if version != FormatVersion {
		return nil, unsupportedf("got %d, expected %d", version, FormatVersion)
	}

	h := newChecksum()
	net, err := readRaw(io.TeeReader(r, h))
	if err != nil {
		return nil, err
	}

	var stored [ChecksumSize]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, readError(err, "failed to read checksum")
	}
	if err := ValidateChecksum(checksumOf(h), stored); err != nil {
		return nil, err
	}
	return net, nil
}

// readRaw parses the header-less layout.
func readRaw(r io.Reader) (*nn.Network, error) {
	var layers int32
	if err := binary.Read(r, byteOrder, &layers); err != nil {
		return nil, readError(err, "failed to read layer count")
	}
	if err := ValidateLayerCount(layers); err != nil {
		return nil, corruptf(err, "invalid header")
	}

	sizes32 := make([]int32, layers)
	if err := binary.Read(r, byteOrder, sizes32); err != nil {
		return nil, readError(err, "failed to read layer sizes")
	}
	if err := ValidateSizes(sizes32); err != nil {
		return nil, corruptf(err, "invalid header")
	}

	sizes := make([]int, len(sizes32))
	for i, s := range sizes32 {
		sizes[i] = int(s)
	}

	biases := make([][]float64, len(sizes)-1)
	for l := range biases {
		biases[l] = make([]float64, sizes[l+1])
		if err := binary.Read(r, byteOrder, biases[l]); err != nil {
			return nil, readError(err, "failed to read bias[%d]", l)
		}
	}

	weights := make([][]float64, len(sizes)-1)
	for l := range weights {
		weights[l] = make([]float64, sizes[l+1]*sizes[l])
		if err := binary.Read(r, byteOrder, weights[l]); err != nil {
			return nil, readError(err, "failed to read weight[%d]", l)
		}
	}

	net, err := nn.NewFromParameters(sizes, biases, weights)
	if err != nil {
		return nil, corruptf(err, "inconsistent parameters")
	}
	return net, nil
}

// readError classifies a read failure: a stream that ends early is a corrupt file,
// anything else is an I/O error.
func readError(err error, format string, args ...any) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return corruptf(err, format, args...)
	}
	return ioErrorf(err, format, args...)
}
