/*
Package emit is a minimal topic-keyed event emitter.

It is the textbook pub-sub map: handlers subscribe to string topics and
receive every payload emitted for their topic, in subscription order.
Subscribing returns an unsubscribe function, so handlers need no
identity of their own.

Emitters are deliberately unsynchronized. Like the rest of this module
they are meant to live inside a single-threaded per-frame callback
chain; hosts that emit from several goroutines must serialize access
themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2025 Norbert Pillmayer <norbert@pillmayer.com>

*/
package emit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tween.emit'.
func tracer() tracing.Trace {
	return tracing.Select("tween.emit")
}
