package react

import (
	"reflect"
	"testing"
)

// --- Subscribe / Unsubscribe ---

func TestSubscribeReturnsListener(t *testing.T) {
	var o Observable
	l := Func(func(args ...any) {})
	if got := o.Subscribe(l); got != l {
		t.Errorf("Subscribe returned %v, want the subscribed listener", got)
	}
	if o.NumListeners() != 1 {
		t.Errorf("NumListeners = %d, want 1", o.NumListeners())
	}
}

func TestSubscribeNilPanics(t *testing.T) {
	var o Observable
	defer func() {
		if recover() == nil {
			t.Error("Subscribe(nil) did not panic")
		}
	}()
	o.Subscribe(nil)
}

func TestFuncNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Func(nil) did not panic")
		}
	}()
	Func(nil)
}

func TestSubscribeAllowsDuplicates(t *testing.T) {
	var o Observable
	count := 0
	l := Func(func(args ...any) { count++ })
	o.Subscribe(l)
	o.Subscribe(l)
	o.Notify()
	if count != 2 {
		t.Errorf("duplicate listener invoked %d times, want 2", count)
	}
}

func TestUnsubscribeRemovesFirstOccurrence(t *testing.T) {
	var o Observable
	count := 0
	l := Func(func(args ...any) { count++ })
	o.Subscribe(l)
	o.Subscribe(l)
	o.Unsubscribe(l)
	if o.NumListeners() != 1 {
		t.Fatalf("NumListeners = %d after removing one duplicate, want 1", o.NumListeners())
	}
	o.Notify()
	if count != 1 {
		t.Errorf("listener invoked %d times after partial unsubscribe, want 1", count)
	}
}

func TestUnsubscribeAbsentIsNoOp(t *testing.T) {
	var o Observable
	o.Subscribe(Func(func(args ...any) {}))
	o.Unsubscribe(Func(func(args ...any) {}))
	if o.NumListeners() != 1 {
		t.Errorf("NumListeners = %d, want 1", o.NumListeners())
	}
}

// --- Notify ordering ---

func TestNotifySubscriptionOrder(t *testing.T) {
	var o Observable
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		o.SubscribeFunc(func(args ...any) { order = append(order, i) })
	}
	o.Notify()
	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("delivery order = %v, want %v", order, want)
	}
}

func TestNotifyPassesIdenticalTuple(t *testing.T) {
	var o Observable
	var got [][]any
	o.SubscribeFunc(func(args ...any) { got = append(got, args) })
	o.SubscribeFunc(func(args ...any) { got = append(got, args) })
	o.Notify("a", 2, true)

	want := []any{"a", 2, true}
	if len(got) != 2 {
		t.Fatalf("got %d deliveries, want 2", len(got))
	}
	for i, g := range got {
		if !reflect.DeepEqual(g, want) {
			t.Errorf("listener %d received %v, want %v", i, g, want)
		}
	}
}

// --- Reentrancy: snapshot rule ---

func TestListenerUnsubscribingSiblingDoesNotAffectInFlightPass(t *testing.T) {
	var o Observable
	var fired []string

	var second Listener
	o.SubscribeFunc(func(args ...any) {
		fired = append(fired, "first")
		o.Unsubscribe(second)
	})
	second = o.SubscribeFunc(func(args ...any) {
		fired = append(fired, "second")
	})

	o.Notify()
	if !reflect.DeepEqual(fired, []string{"first", "second"}) {
		t.Errorf("first pass fired %v, want [first second]", fired)
	}

	fired = nil
	o.Notify()
	if !reflect.DeepEqual(fired, []string{"first"}) {
		t.Errorf("second pass fired %v, want [first]", fired)
	}
}

func TestListenerUnsubscribingItselfStillReceivesCurrentPass(t *testing.T) {
	var o Observable
	count := 0
	var self Listener
	self = o.SubscribeFunc(func(args ...any) {
		count++
		o.Unsubscribe(self)
	})

	o.Notify()
	o.Notify()
	if count != 1 {
		t.Errorf("self-removing listener fired %d times, want 1", count)
	}
	if o.NumListeners() != 0 {
		t.Errorf("NumListeners = %d after self-removal, want 0", o.NumListeners())
	}
}

func TestListenerSubscribingDuringPassFiresNextPassOnly(t *testing.T) {
	var o Observable
	lateFired := 0
	o.SubscribeFunc(func(args ...any) {
		o.SubscribeFunc(func(args ...any) { lateFired++ })
	})

	o.Notify()
	if lateFired != 0 {
		t.Errorf("late listener fired %d times during the pass that added it, want 0", lateFired)
	}
	o.Notify()
	if lateFired != 1 {
		t.Errorf("late listener fired %d times on the following pass, want 1", lateFired)
	}
}

// --- Panic propagation ---

func TestPanickingListenerAbortsRemainingDelivery(t *testing.T) {
	var o Observable
	var fired []string
	o.SubscribeFunc(func(args ...any) { fired = append(fired, "before") })
	o.SubscribeFunc(func(args ...any) { panic("boom") })
	o.SubscribeFunc(func(args ...any) { fired = append(fired, "after") })

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic did not propagate to Notify caller")
			}
		}()
		o.Notify()
	}()

	if !reflect.DeepEqual(fired, []string{"before"}) {
		t.Errorf("fired = %v, want [before]: delivery must abort at the panic", fired)
	}
}

// --- Benchmarks ---

func BenchmarkNotifyFourListeners(b *testing.B) {
	var o Observable
	sink := 0
	for i := 0; i < 4; i++ {
		o.SubscribeFunc(func(args ...any) { sink++ })
	}
	b.ReportAllocs()
	for b.Loop() {
		o.Notify("key", "press")
	}
}
