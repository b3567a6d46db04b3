//go:build linux

package shimchannel

import "errors"

// ErrChannelUnavailable documents, rather than surfaces, the base spec's
// "channel-open failure" error kind: Poll never returns it, it only ever
// returns changed=false. It exists so callers that want to distinguish "no
// controller has ever connected" from "no change this tick" for diagnostic
// purposes have a named value to compare against, via Reader.Status.
var ErrChannelUnavailable = errors.New("shimchannel: channel not open")
