//go:build linux

// Package shimchannel implements the read side (Reader) and a reference
// write side (WriteSpeedup) of the speed-change channel.
//
// Wire format
//
// The channel behaves like a file rewound and rewritten by the controller
// each time the speedup changes ("latest wins"): the controller seeks to
// offset 0 and writes N >= 4 bytes, the last 4 of which are a
// little-endian IEEE-754 float32 encoding the desired multiplier. The
// reader seeks to 0, reads up to 64 bytes, and decodes the last 4 bytes it
// actually got.
//
// Reading the tail instead of a fixed offset tolerates a controller that
// writes extra framing ahead of the value (a timestamp, a sequence number,
// a human-readable prefix) without the reader and writer needing to agree
// on a fixed record length.
//
// Host byte order is assumed throughout: this package targets linux/amd64
// and linux/arm64, both little-endian, so LittleEndian is used explicitly
// rather than inferred from host byte order at runtime.
//
// Example
//
//	r := shimchannel.NewReader(shimchannel.DefaultPrefix + os.Getenv("TIME_CHANNEL"))
//	if speed, changed := r.Poll(); changed {
//	    // absorb speed into a vclock.Pair via TryPublish
//	}
//
//	// from the controller side:
//	_ = shimchannel.WriteSpeedup("/tmp/time_control", 2.0)
package shimchannel
