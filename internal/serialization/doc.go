// Package serialization saves and loads nn.Network parameters in a flat binary layout.
//
// The raw layout carries no header and uses the host's native byte order:
//
//	Raw Format:
//	  [int32: L = number of layers, len(sizes)]
//	  [int32 × L: sizes[0..L-1]]
//	  [float64: bias[0], then bias[1], ... bias[L-2]]
//	  [float64: weight[0] row-major, then weight[1], ... weight[L-2]]
//
// Files written this way are interchangeable with models produced by older tools that
// dump the same fields straight from memory.
//
// The checked layout wraps the raw one with a magic number, a version and a checksum:
//
//	Checked Format:
//	  [4 bytes: Magic "MLPN"]
//	  [uint32: Version (native order)]
//	  [raw layout, as above]
//	  [32 bytes: SHA-256 of the raw layout]
//
// Readers detect the layout from the first four bytes, so Load accepts either.
//
// Example usage:
//
//	// Save a model
//	if err := serialization.Save("model.bin", net, serialization.Options{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load a model
//	net, err := serialization.Load("model.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
