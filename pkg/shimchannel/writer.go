//go:build linux

package shimchannel

import (
	"encoding/binary"
	"math"
	"os"
)

// WriteSpeedup writes a new speedup value to the channel file at path,
// creating it if necessary. It prepends 4 bytes of zero padding ahead of
// the float so that even a controller with nothing more interesting to
// frame exercises the "last four bytes win" discipline Poll relies on,
// rather than happening to always write exactly 4 bytes.
//
// This is the controller side of the protocol; the shim itself never calls
// this. It exists for timevirtctl and for tests that want to drive a Reader
// through a real file instead of a fake round trip.
func WriteSpeedup(path string, speedup float32) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	var frame [8]byte
	binary.LittleEndian.PutUint32(frame[4:], math.Float32bits(speedup))

	if _, err := f.WriteAt(frame[:], 0); err != nil {
		return err
	}
	return f.Truncate(int64(len(frame)))
}
