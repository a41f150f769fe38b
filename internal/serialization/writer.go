package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/born-ml/mlp/internal/nn"
)

// Save writes net to path, replacing an existing file only once the new one is complete.
//
// The model is written to a temporary file in the same directory and renamed over path
// on success, so a failed save never leaves a partial model behind. Every failure
// (create, write, flush, close, rename) is returned wrapped in ErrIO, except a network
// the file layout cannot hold, which is nn.ErrInvalidTopology.
func Save(path string, net *nn.Network, opts Options) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	file, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return ioErrorf(err, "failed to create %s", path)
	}
	tmp := file.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp) // Best effort cleanup on error
		}
	}()

	//nolint:gosec // G302: Model files are meant to be readable like any os.Create output
	if err := file.Chmod(0o644); err != nil {
		_ = file.Close()
		return ioErrorf(err, "failed to set permissions on %s", path)
	}

	bw := bufio.NewWriter(file)
	if err := Write(bw, net, opts); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = file.Close()
		return ioErrorf(err, "failed to flush %s", path)
	}
	if err := file.Close(); err != nil {
		return ioErrorf(err, "failed to close %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return ioErrorf(err, "failed to move model into %s", path)
	}
	committed = true
	return nil
}

// Write encodes net to w in the layout selected by opts.
func Write(w io.Writer, net *nn.Network, opts Options) error {
	sizes := net.Sizes()
	if len(sizes) < 2 {
		return fmt.Errorf("%w: cannot write an uninitialized network", nn.ErrInvalidTopology)
	}
	if err := validateWritable(sizes); err != nil {
		return fmt.Errorf("%w: %w", nn.ErrInvalidTopology, err)
	}

	if opts.Format != FormatChecked {
		return writeRaw(w, net)
	}

	if _, err := io.WriteString(w, MagicBytes); err != nil {
		return ioErrorf(err, "failed to write magic bytes")
	}
	if err := binary.Write(w, byteOrder, uint32(FormatVersion)); err != nil {
		return ioErrorf(err, "failed to write version")
	}

	h := newChecksum()
	if err := writeRaw(io.MultiWriter(w, h), net); err != nil {
		return err
	}
	sum := checksumOf(h)
	if _, err := w.Write(sum[:]); err != nil {
		return ioErrorf(err, "failed to write checksum")
	}
	return nil
}

// writeRaw writes the header-less layout: L, sizes, all biases, all weights.
func writeRaw(w io.Writer, net *nn.Network) error {
	sizes := net.Sizes()

	header := make([]int32, 0, len(sizes)+1)
	header = append(header, int32(len(sizes)))
	for _, s := range sizes {
		header = append(header, int32(s))
	}
	if err := binary.Write(w, byteOrder, header); err != nil {
		return ioErrorf(err, "failed to write layer sizes")
	}

	for l := 0; l < net.LayerCount(); l++ {
		if err := binary.Write(w, byteOrder, net.Bias(l).RawVector().Data[:sizes[l+1]]); err != nil {
			return ioErrorf(err, "failed to write bias[%d]", l)
		}
	}

	for l := 0; l < net.LayerCount(); l++ {
		weight := net.Weight(l)
		rows, _ := weight.Dims()
		for j := 0; j < rows; j++ {
			if err := binary.Write(w, byteOrder, weight.RawRowView(j)); err != nil {
				return ioErrorf(err, "failed to write weight[%d] row %d", l, j)
			}
		}
	}
	return nil
}
