package catalog

import "testing"

func TestFeedReplaysLatestToNewSubscriber(t *testing.T) {
	f := NewFeed[int]()
	f.Publish([]int{1, 2, 3})

	var got []int
	f.Subscribe(func(snap []int) { got = snap })

	if len(got) != 3 {
		t.Fatalf("expected replayed snapshot of 3, got %v", got)
	}
}

func TestFeedFansOutFullSnapshots(t *testing.T) {
	f := NewFeed[string]()

	var a, b []string
	f.Subscribe(func(s []string) { a = s })
	f.Subscribe(func(s []string) { b = s })

	f.Publish([]string{"x", "y"})

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("expected both subscribers to see the snapshot, got %v and %v", a, b)
	}
}

func TestFeedUnsubscribeStopsDelivery(t *testing.T) {
	f := NewFeed[int]()

	calls := 0
	unsub := f.Subscribe(func([]int) { calls++ })

	f.Publish([]int{1})
	unsub()
	f.Publish([]int{2})

	if calls != 1 {
		t.Fatalf("expected 1 delivery after unsubscribe, got %d", calls)
	}
}

func TestFeedLatestBeforeFirstSnapshot(t *testing.T) {
	f := NewFeed[int]()

	if _, ready := f.Latest(); ready {
		t.Fatal("feed must not report ready before the first snapshot")
	}

	f.Publish([]int{})
	if _, ready := f.Latest(); !ready {
		t.Fatal("feed must report ready after an empty snapshot")
	}
}
