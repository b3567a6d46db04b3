//go:build linux

package shimchannel

import (
	"encoding/binary"
	"math"

	"golang.org/x/sys/unix"
)

// DefaultPrefix is the fixed channel-path prefix. The full path is this
// prefix concatenated with the value of the channel environment variable
// (empty if unset), exactly as the base spec's §6 requires.
const DefaultPrefix = "/tmp/time_control"

const readBufSize = 64
const floatSize = 4

// Reader is a lazily-opened, read-only, non-blocking handle on a named byte
// channel. It is opened at most once and, once opened successfully, never
// closed — matching the channel handle's process-lifetime lifecycle in the
// base spec's data model.
type Reader struct {
	path string
	fd   int
	open bool
}

// NewReader returns a Reader for path. Opening is deferred to the first
// Poll call.
func NewReader(path string) *Reader {
	return &Reader{path: path, fd: -1}
}

// Poll implements the base spec's §4.C contract: if not yet open, attempt a
// non-blocking open and return no-change on failure (future calls retry);
// if open, seek to 0, read up to 64 bytes, and if at least 4 bytes came
// back, decode the trailing 4 as a little-endian float32. Never blocks,
// never allocates: the read buffer is stack-resident.
func (r *Reader) Poll() (speedup float32, changed bool) {
	if !r.open {
		fd, err := unix.Open(r.path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			return 0, false
		}
		r.fd = fd
		r.open = true
	}

	if _, err := unix.Seek(r.fd, 0, unix.SEEK_SET); err != nil {
		return 0, false
	}

	var buf [readBufSize]byte
	n, err := unix.Read(r.fd, buf[:])
	if err != nil || n < floatSize {
		return 0, false
	}

	bits := binary.LittleEndian.Uint32(buf[n-floatSize : n])
	return math.Float32frombits(bits), true
}

// Status reports whether the channel has ever been successfully opened,
// returning ErrChannelUnavailable if not. Purely diagnostic — Poll itself
// never needs or exposes this.
func (r *Reader) Status() error {
	if !r.open {
		return ErrChannelUnavailable
	}
	return nil
}

// Close releases the underlying file descriptor, if one was opened. The
// shim itself never calls this — the channel handle lives for the process
// lifetime — but it lets tests clean up after themselves.
func (r *Reader) Close() error {
	if !r.open {
		return nil
	}
	r.open = false
	return unix.Close(r.fd)
}
