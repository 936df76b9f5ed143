package react

// Listener receives notification argument tuples from an Observable.
// Implementations must use a comparable (typically pointer) receiver so that
// Unsubscribe can find them by identity.
type Listener interface {
	Call(args ...any)
}

// funcListener adapts a plain function to Listener. The pointer wrapper gives
// each subscribed function a distinct identity for Unsubscribe.
type funcListener struct {
	fn func(args ...any)
}

func (l *funcListener) Call(args ...any) {
	l.fn(args...)
}

// Func wraps a plain function as a Listener.
// Panics if fn is nil.
func Func(fn func(args ...any)) Listener {
	if fn == nil {
		panic("react: Func requires a non-nil function")
	}
	return &funcListener{fn: fn}
}

// Observable is an ordered listener registry. Insertion order is the
// notification order. Duplicates are permitted. The zero value is ready to use.
type Observable struct {
	listeners []Listener
}

// Subscribe appends l to the registry and returns it.
// Panics if l is nil: subscribing nothing must never silently register a no-op.
func (o *Observable) Subscribe(l Listener) Listener {
	if l == nil {
		panic("react: Subscribe requires a listener")
	}
	o.listeners = append(o.listeners, l)
	return l
}

// SubscribeFunc wraps fn as a Listener, subscribes it, and returns the wrapper
// so it can later be passed to Unsubscribe.
func (o *Observable) SubscribeFunc(fn func(args ...any)) Listener {
	return o.Subscribe(Func(fn))
}

// Unsubscribe removes the first occurrence equal to l. No-op if absent.
// Removal affects future notification passes only, never one in flight.
func (o *Observable) Unsubscribe(l Listener) {
	for i, existing := range o.listeners {
		if existing == l {
			copy(o.listeners[i:], o.listeners[i+1:])
			o.listeners[len(o.listeners)-1] = nil
			o.listeners = o.listeners[:len(o.listeners)-1]
			return
		}
	}
}

// NumListeners returns the number of registered listeners.
func (o *Observable) NumListeners() int {
	return len(o.listeners)
}

// Notify synchronously invokes every currently registered listener in
// subscription order, passing each the identical argument tuple.
//
// The registry is snapshotted at the start of the call: a listener that
// subscribes or unsubscribes on this Observable during delivery does not
// change who receives the in-flight pass. A panicking listener aborts
// delivery to the listeners not yet reached.
func (o *Observable) Notify(args ...any) {
	if len(o.listeners) == 0 {
		return
	}
	snapshot := append([]Listener(nil), o.listeners...)
	for _, l := range snapshot {
		l.Call(args...)
	}
}
