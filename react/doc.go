// Package react is a small push-based event-stream library.
//
// Streams are built from [Reactor] nodes. An external source calls the root
// node's [Reactor.Call] with an argument tuple, and the value fans out
// synchronously, depth-first, through every operator attached downstream.
// Operators are attached with the fluent builder methods and chained freely:
//
//	events := react.NewReactor()
//	events.
//		Select(func(args ...any) bool { return args[0] == "left" }).
//		Map(func(args ...any) any { return -1 }).
//		SubscribeFunc(func(args ...any) {
//			// args[0] == -1
//		})
//	events.Call("left", "press")
//
// # Operators
//
// [Reactor.Map] replaces the payload with a single derived value.
// [Reactor.Reduce] observes the payload for side effects and forwards it
// unchanged. [Reactor.Select] and [Reactor.Reject] route each tuple to
// either the main downstream or the operator's else-branch (see
// [Reactor.Else]). [Reactor.Accumulate] collects a fixed-size window and
// emits it as one batch. [Reactor.Buffer] withholds values until the window
// fills, then releases them individually in arrival order. [Reactor.WithIndex]
// appends a monotonically increasing sequence number.
//
// # Delivery model
//
// Everything is single-threaded and synchronous. A notification pass iterates
// over a snapshot of the listener registry taken when the pass begins, so
// subscribing or unsubscribing during delivery only affects future passes.
// Listeners run in subscription order, and a panic in a listener propagates
// to the caller that triggered the root, aborting the rest of the pass.
package react
