package react

// Kind distinguishes operator behavior for a Reactor. A single flat struct
// with a kind tag is used for all operators to avoid dispatch through a
// subclass hierarchy.
type Kind uint8

const (
	KindPassThrough Kind = iota // forward the tuple unmodified
	KindMap                     // replace the tuple with one derived value
	KindReduce                  // side-effecting tap, tuple unchanged
	KindSelect                  // predicate true -> main, false -> else-branch
	KindReject                  // predicate true -> else-branch, false -> main
	KindAccumulate              // collect a fixed-size window, emit one batch
	KindGate                    // collect a fixed-size window, release items one by one
	KindIndex                   // append a monotonically increasing counter
)

// String returns the kind name for debugging.
func (k Kind) String() string {
	switch k {
	case KindPassThrough:
		return "PassThrough"
	case KindMap:
		return "Map"
	case KindReduce:
		return "Reduce"
	case KindSelect:
		return "Select"
	case KindReject:
		return "Reject"
	case KindAccumulate:
		return "Accumulate"
	case KindGate:
		return "Gate"
	case KindIndex:
		return "Index"
	default:
		return "Unknown"
	}
}

// Transform derives a single replacement value from an argument tuple.
type Transform func(args ...any) any

// Effect observes an argument tuple for side effects.
type Effect func(args ...any)

// Predicate tests an argument tuple.
type Predicate func(args ...any) bool

// Reactor is a node in a push-based event chain. It is an Observable whose
// Call entry point applies one fixed kind of transformation, filter, or
// effect before notifying its own listeners.
type Reactor struct {
	Observable

	kind Kind

	// Kind-specific state. Only the fields for this reactor's kind are used.
	transform  Transform // KindMap
	effect     Effect    // KindReduce
	predicate  Predicate // KindSelect, KindReject
	elseBranch *Reactor  // KindSelect, KindReject; created eagerly
	length     int       // KindAccumulate, KindGate: window capacity
	values     []any     // KindAccumulate, KindGate: collected window
	index      int       // KindIndex: next sequence number

	// lastArgs holds the most recent Call tuple. Introspection only; no
	// operator reads it.
	lastArgs []any
}

// NewReactor creates a pass-through reactor, the usual root of a chain.
func NewReactor() *Reactor {
	return &Reactor{kind: KindPassThrough}
}

// NewMapper creates a reactor that replaces each tuple with transform's
// result. Downstream sees exactly one value; the original tuple shape is
// discarded.
func NewMapper(transform Transform) *Reactor {
	if transform == nil {
		panic("react: NewMapper requires a transform")
	}
	return &Reactor{kind: KindMap, transform: transform}
}

// NewReducer creates a reactor that calls effect for each tuple and then
// forwards the tuple unchanged.
func NewReducer(effect Effect) *Reactor {
	if effect == nil {
		panic("react: NewReducer requires an effect")
	}
	return &Reactor{kind: KindReduce, effect: effect}
}

// NewSelector creates a reactor that forwards tuples satisfying predicate to
// its main listeners and routes the rest to its else-branch.
func NewSelector(predicate Predicate) *Reactor {
	if predicate == nil {
		panic("react: NewSelector requires a predicate")
	}
	return &Reactor{kind: KindSelect, predicate: predicate, elseBranch: NewReactor()}
}

// NewRejector creates the dual of NewSelector: tuples satisfying predicate go
// to the else-branch, the rest to the main listeners.
func NewRejector(predicate Predicate) *Reactor {
	if predicate == nil {
		panic("react: NewRejector requires a predicate")
	}
	return &Reactor{kind: KindReject, predicate: predicate, elseBranch: NewReactor()}
}

// NewAccumulator creates a reactor that collects length values and then
// notifies once with the whole window as a single []any, in arrival order.
// Panics if length < 1.
func NewAccumulator(length int) *Reactor {
	if length < 1 {
		panic("react: NewAccumulator requires length >= 1")
	}
	return &Reactor{kind: KindAccumulate, length: length}
}

// NewBuffer creates a reactor that withholds values until length of them have
// arrived, then releases each buffered value individually, in arrival order.
// It is a delayed gate, not an aggregator. Panics if length < 1.
func NewBuffer(length int) *Reactor {
	if length < 1 {
		panic("react: NewBuffer requires length >= 1")
	}
	return &Reactor{kind: KindGate, length: length}
}

// NewIndexer creates a reactor that appends a sequence number to each tuple.
// The first notification carries index 0; the counter never resets.
func NewIndexer() *Reactor {
	return &Reactor{kind: KindIndex}
}

// Kind returns the operator kind of this reactor.
func (r *Reactor) Kind() Kind {
	return r.kind
}

// LastArgs returns the argument tuple of the most recent Call, or nil if the
// reactor has never been called. Intended for debugging.
func (r *Reactor) LastArgs() []any {
	return r.lastArgs
}

// Call records args and runs this reactor's operator, fanning the result out
// to all listeners within the same call stack. This is the entry point an
// upstream Observable (or an external event source) invokes.
func (r *Reactor) Call(args ...any) {
	r.lastArgs = args
	r.invoke(args)
}

// invoke dispatches on the operator kind. Dispatch is a closed switch rather
// than dynamic method lookup; every kind's behavior lives here.
func (r *Reactor) invoke(args []any) {
	switch r.kind {
	case KindMap:
		r.Notify(r.transform(args...))

	case KindReduce:
		r.effect(args...)
		r.Notify(args...)

	case KindSelect:
		if r.predicate(args...) {
			r.Notify(args...)
		} else {
			r.elseBranch.Call(args...)
		}

	case KindReject:
		if r.predicate(args...) {
			r.elseBranch.Call(args...)
		} else {
			r.Notify(args...)
		}

	case KindAccumulate, KindGate:
		r.values = append(r.values, singularize(args))
		if len(r.values) >= r.length {
			values := r.values
			r.flush(values)
			r.values = nil
		}

	case KindIndex:
		out := make([]any, 0, len(args)+1)
		out = append(out, args...)
		out = append(out, r.index)
		r.Notify(out...)
		r.index++

	default:
		r.Notify(args...)
	}
}

// flush emits a full window. Accumulate emits the window as one batch; Gate
// re-emits each value individually, preserving arrival order.
func (r *Reactor) flush(values []any) {
	if r.kind == KindGate {
		for _, v := range values {
			r.Notify(v)
		}
		return
	}
	r.Notify(values)
}

// Else returns the secondary branch of a Select or Reject reactor, the path
// that receives tuples failing the operator's condition. Any handlers given
// are subscribed to the branch first. Panics on non-branching kinds.
func (r *Reactor) Else(handlers ...func(args ...any)) *Reactor {
	if r.elseBranch == nil {
		panic("react: Else requires a Select or Reject reactor")
	}
	for _, fn := range handlers {
		r.elseBranch.SubscribeFunc(fn)
	}
	return r.elseBranch
}

// singularize collapses a one-element tuple to its bare value; longer tuples
// are kept as an ordered []any copy. This is the comparison payload rule used
// by windowing and by Case/Eq/NotEq.
func singularize(args []any) any {
	if len(args) == 1 {
		return args[0]
	}
	tuple := make([]any, len(args))
	copy(tuple, args)
	return tuple
}
