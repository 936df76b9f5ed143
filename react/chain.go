package react

import "reflect"

// Pattern is implemented by clauses that match payloads structurally.
// Case uses it when the clause provides one; otherwise it falls back to
// deep equality.
type Pattern interface {
	Match(v any) bool
}

// funcSubscriber is the capability Attach needs from a listener before it can
// hang handler callbacks off it. *Reactor satisfies it via Observable.
type funcSubscriber interface {
	SubscribeFunc(fn func(args ...any)) Listener
}

// Attach subscribes l downstream of this reactor and returns it. Handlers, if
// given, are subscribed to l itself, which must then be observable (panics
// otherwise). This is how every builder method inserts an operator node and
// gives it an initial handler in one call.
func (r *Reactor) Attach(l Listener, handlers ...func(args ...any)) Listener {
	r.Subscribe(l)
	if len(handlers) > 0 {
		sub, ok := l.(funcSubscriber)
		if !ok {
			panic("react: Attach handlers require an observable listener")
		}
		for _, fn := range handlers {
			sub.SubscribeFunc(fn)
		}
	}
	return l
}

// attach inserts node downstream and returns it typed, keeping the builder
// methods chainable.
func (r *Reactor) attach(node *Reactor, handlers []func(args ...any)) *Reactor {
	r.Subscribe(node)
	for _, fn := range handlers {
		node.SubscribeFunc(fn)
	}
	return node
}

// Map attaches a mapping operator: downstream receives the single value
// transform produces for each tuple. Returns the new node for chaining.
func (r *Reactor) Map(transform Transform, handlers ...func(args ...any)) *Reactor {
	return r.attach(NewMapper(transform), handlers)
}

// Select attaches a filtering operator: tuples satisfying predicate continue
// to the new node's listeners, the rest take its else-branch.
func (r *Reactor) Select(predicate Predicate, handlers ...func(args ...any)) *Reactor {
	return r.attach(NewSelector(predicate), handlers)
}

// Reject attaches the inverse of Select: tuples satisfying predicate take the
// else-branch, the rest continue downstream.
func (r *Reactor) Reject(predicate Predicate, handlers ...func(args ...any)) *Reactor {
	return r.attach(NewRejector(predicate), handlers)
}

// Reduce attaches a side-effecting tap: effect sees every tuple, downstream
// receives the tuple unchanged.
func (r *Reactor) Reduce(effect Effect, handlers ...func(args ...any)) *Reactor {
	return r.attach(NewReducer(effect), handlers)
}

// Accumulate attaches a fixed-size windowing operator: every length values,
// downstream receives one []any batch in arrival order.
func (r *Reactor) Accumulate(length int, handlers ...func(args ...any)) *Reactor {
	return r.attach(NewAccumulator(length), handlers)
}

// Buffer attaches a bounded-release gate: the first length-1 values are
// withheld; the length-th releases all buffered values downstream one at a
// time, in order.
func (r *Reactor) Buffer(length int, handlers ...func(args ...any)) *Reactor {
	return r.attach(NewBuffer(length), handlers)
}

// WithIndex attaches an indexing operator: downstream receives each tuple
// with a 0-based sequence number appended.
func (r *Reactor) WithIndex(handlers ...func(args ...any)) *Reactor {
	return r.attach(NewIndexer(), handlers)
}

// Case attaches a Select whose predicate matches clause against the
// singularized payload: a one-element tuple is compared as its bare value, a
// longer tuple as the full ordered []any. A clause implementing Pattern
// matches via Match; any other clause compares with reflect.DeepEqual.
func (r *Reactor) Case(clause any, handlers ...func(args ...any)) *Reactor {
	return r.Select(func(args ...any) bool {
		return matchClause(clause, singularize(args))
	}, handlers...)
}

// Eq attaches a Select passing only payloads deeply equal to other
// (singularized, like Case).
func (r *Reactor) Eq(other any, handlers ...func(args ...any)) *Reactor {
	return r.Select(func(args ...any) bool {
		return reflect.DeepEqual(singularize(args), other)
	}, handlers...)
}

// NotEq attaches a Reject dropping payloads deeply equal to other
// (singularized, like Case).
func (r *Reactor) NotEq(other any, handlers ...func(args ...any)) *Reactor {
	return r.Reject(func(args ...any) bool {
		return reflect.DeepEqual(singularize(args), other)
	}, handlers...)
}

func matchClause(clause, v any) bool {
	if p, ok := clause.(Pattern); ok {
		return p.Match(v)
	}
	return reflect.DeepEqual(clause, v)
}
