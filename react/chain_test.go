package react

import (
	"reflect"
	"testing"
)

// --- Attach ---

func TestAttachSubscribesAndReturnsListener(t *testing.T) {
	root := NewReactor()
	child := NewReactor()
	if got := root.Attach(child); got != Listener(child) {
		t.Error("Attach did not return the attached listener")
	}
	got := collect(child)
	root.Call("hi")
	if !reflect.DeepEqual(*got, [][]any{{"hi"}}) {
		t.Errorf("attached child received %v, want [[hi]]", *got)
	}
}

func TestAttachHandlerSubscribedToNewNode(t *testing.T) {
	root := NewReactor()
	child := NewReactor()
	var got []any
	root.Attach(child, func(args ...any) { got = append(got, args...) })
	root.Call(42)
	if !reflect.DeepEqual(got, []any{42}) {
		t.Errorf("handler received %v, want [42]", got)
	}
}

func TestAttachHandlerOnPlainListenerPanics(t *testing.T) {
	root := NewReactor()
	defer func() {
		if recover() == nil {
			t.Error("Attach with handler on a non-observable listener did not panic")
		}
	}()
	root.Attach(Func(func(args ...any) {}), func(args ...any) {})
}

// --- Builder chaining ---

func TestBuildersReturnNewNode(t *testing.T) {
	root := NewReactor()
	m := root.Map(func(args ...any) any { return nil })
	if m == root {
		t.Error("Map returned the receiver, want a new downstream node")
	}
	if m.Kind() != KindMap {
		t.Errorf("Map node kind = %v, want Map", m.Kind())
	}
	if root.NumListeners() != 1 {
		t.Errorf("root has %d listeners after Map, want 1", root.NumListeners())
	}
}

// Chain: root -> select(left press) -> map(-1) -> handler.
func TestKeyBindingScenario(t *testing.T) {
	type keyEvent struct {
		key    string
		action string
	}
	feed := func(root *Reactor, ev keyEvent) {
		root.Call(ev.key, ev.action)
	}

	tests := []struct {
		name  string
		event keyEvent
		want  []any
	}{
		{"matching key and action", keyEvent{"left", "press"}, []any{-1}},
		{"wrong key", keyEvent{"right", "press"}, nil},
		{"wrong action", keyEvent{"left", "release"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewReactor()
			var got []any
			root.
				Select(func(args ...any) bool {
					return args[0] == "left" && args[1] == "press"
				}).
				Map(func(args ...any) any { return -1 }).
				SubscribeFunc(func(args ...any) { got = append(got, args...) })

			feed(root, tt.event)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("handler received %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChainWithElseBranch(t *testing.T) {
	root := NewReactor()
	var pressed, other []any

	sel := root.Select(func(args ...any) bool { return args[1] == "press" })
	sel.SubscribeFunc(func(args ...any) { pressed = append(pressed, args[0]) })
	sel.Else(func(args ...any) { other = append(other, args[0]) })

	root.Call("a", "press")
	root.Call("b", "release")
	root.Call("c", "press")

	if !reflect.DeepEqual(pressed, []any{"a", "c"}) {
		t.Errorf("pressed = %v, want [a c]", pressed)
	}
	if !reflect.DeepEqual(other, []any{"b"}) {
		t.Errorf("other = %v, want [b]", other)
	}
}

// --- Case ---

func TestCaseBareValue(t *testing.T) {
	root := NewReactor()
	var got []any
	root.Case("save", func(args ...any) { got = append(got, args...) })

	root.Call("save")
	root.Call("load")
	root.Call("save", "now") // two-element tuple, not the bare value

	if !reflect.DeepEqual(got, []any{"save"}) {
		t.Errorf("case handler received %v, want [save]", got)
	}
}

func TestCaseTupleClause(t *testing.T) {
	root := NewReactor()
	var hits int
	root.Case([]any{"left", "press"}, func(args ...any) { hits++ })

	root.Call("left", "press")
	root.Call("left", "release")
	root.Call("left")

	if hits != 1 {
		t.Errorf("tuple case matched %d times, want 1", hits)
	}
}

type rangePattern struct {
	min, max int
}

func (p rangePattern) Match(v any) bool {
	n, ok := v.(int)
	return ok && n >= p.min && n <= p.max
}

func TestCasePatternClause(t *testing.T) {
	root := NewReactor()
	var got []any
	root.Case(rangePattern{min: 10, max: 20}, func(args ...any) { got = append(got, args...) })

	root.Call(5)
	root.Call(15)
	root.Call(25)

	if !reflect.DeepEqual(got, []any{15}) {
		t.Errorf("pattern case received %v, want [15]", got)
	}
}

// --- Eq / NotEq ---

func TestEq(t *testing.T) {
	root := NewReactor()
	var hits int
	root.Eq("quit", func(args ...any) { hits++ })

	root.Call("quit")
	root.Call("stay")
	root.Call("quit")

	if hits != 2 {
		t.Errorf("Eq matched %d times, want 2", hits)
	}
}

func TestNotEq(t *testing.T) {
	root := NewReactor()
	var got []any
	root.NotEq("noise", func(args ...any) { got = append(got, args...) })

	root.Call("noise")
	root.Call("signal")
	root.Call("noise")

	if !reflect.DeepEqual(got, []any{"signal"}) {
		t.Errorf("NotEq passed %v, want [signal]", got)
	}
}

func TestNotEqElseReceivesRejected(t *testing.T) {
	root := NewReactor()
	var rejected []any
	root.NotEq("noise").Else(func(args ...any) { rejected = append(rejected, args...) })

	root.Call("noise")
	root.Call("signal")

	if !reflect.DeepEqual(rejected, []any{"noise"}) {
		t.Errorf("else branch received %v, want [noise]", rejected)
	}
}

// --- Fan-out across branches ---

func TestFanOutDepthFirstSubscriptionOrder(t *testing.T) {
	root := NewReactor()
	var order []string

	// First-subscribed branch and its whole subtree must complete before the
	// second-subscribed branch begins.
	a := root.Reduce(func(args ...any) { order = append(order, "a") })
	a.Reduce(func(args ...any) { order = append(order, "a.child") })
	root.Reduce(func(args ...any) { order = append(order, "b") })

	root.Call("tick")

	want := []string{"a", "a.child", "b"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("fan-out order = %v, want %v", order, want)
	}
}

// --- Composed windowing ---

func TestBufferThenIndex(t *testing.T) {
	root := NewReactor()
	got := collect(root.Buffer(2).WithIndex())

	root.Call("a")
	root.Call("b")
	root.Call("c")
	root.Call("d")

	want := [][]any{
		{"a", 0},
		{"b", 1},
		{"c", 2},
		{"d", 3},
	}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("received %v, want %v", *got, want)
	}
}

func TestAccumulateDownstreamOfMap(t *testing.T) {
	root := NewReactor()
	var batches [][]any
	root.
		Map(func(args ...any) any { return args[0].(int) * 10 }).
		Accumulate(3, func(args ...any) {
			batches = append(batches, args[0].([]any))
		})

	for i := 1; i <= 3; i++ {
		root.Call(i)
	}

	want := [][]any{{10, 20, 30}}
	if !reflect.DeepEqual(batches, want) {
		t.Errorf("batches = %v, want %v", batches, want)
	}
}
