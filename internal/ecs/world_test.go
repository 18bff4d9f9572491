package ecs

import "testing"

const (
	tagPos Tag = iota
	tagVel
	tagHP
)

type pos struct{ X, Y float64 }
type vel struct{ X, Y float64 }

func TestCreateAddQuery(t *testing.T) {
	w := NewWorld()

	a := w.Create()
	b := w.Create()
	c := w.Create()

	w.Add(a, tagPos, &pos{1, 1})
	w.Add(b, tagPos, &pos{2, 2})
	w.Add(b, tagVel, &vel{1, 0})
	w.Add(c, tagVel, &vel{0, 1})

	both := w.Query(tagPos, tagVel)
	if len(both) != 1 || both[0] != b {
		t.Fatalf("Query(pos, vel) = %v, want [%d]", both, b)
	}

	positions := w.Query(tagPos)
	if len(positions) != 2 {
		t.Fatalf("Query(pos) returned %d entities, want 2", len(positions))
	}
	// Creation order must be stable
	if positions[0] != a || positions[1] != b {
		t.Errorf("Query(pos) order = %v, want [%d %d]", positions, a, b)
	}

	p, ok := Get[*pos](w, b, tagPos)
	if !ok {
		t.Fatal("Get(b, pos) reported absent")
	}
	if p.X != 2 {
		t.Errorf("Get(b, pos).X = %v, want 2", p.X)
	}

	if w.Has(c, tagPos) {
		t.Error("Has(c, pos) = true, want false")
	}
}

func TestDeferredDestroyVisibleUntilFlush(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	b := w.Create()
	w.Add(a, tagHP, 5)
	w.Add(b, tagHP, 3)

	w.Destroy(a)

	// Pre-flush: still alive, still queryable, component still readable.
	if !w.Alive(a) {
		t.Error("destroyed entity not alive before Flush")
	}
	if !w.Doomed(a) {
		t.Error("Doomed(a) = false after Destroy")
	}
	if got := w.Query(tagHP); len(got) != 2 {
		t.Errorf("pre-flush Query returned %d entities, want 2", len(got))
	}
	if hp, ok := Get[int](w, a, tagHP); !ok || hp != 5 {
		t.Errorf("pre-flush Get = (%d, %v), want (5, true)", hp, ok)
	}

	w.Flush()

	// Post-flush: gone.
	if w.Alive(a) {
		t.Error("destroyed entity alive after Flush")
	}
	if got := w.Query(tagHP); len(got) != 1 || got[0] != b {
		t.Errorf("post-flush Query = %v, want [%d]", got, b)
	}
	if _, ok := Get[int](w, a, tagHP); ok {
		t.Error("component of flushed entity still present")
	}
}

func TestDestroyIdempotent(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	w.Add(a, tagHP, 1)

	w.Destroy(a)
	w.Destroy(a)
	w.Flush()
	w.Flush()

	if w.Len() != 0 {
		t.Errorf("Len() = %d after double destroy+flush, want 0", w.Len())
	}
}

func TestQueryOrderSurvivesFlush(t *testing.T) {
	w := NewWorld()
	var es []Entity
	for i := 0; i < 5; i++ {
		e := w.Create()
		w.Add(e, tagHP, i)
		es = append(es, e)
	}
	w.Destroy(es[1])
	w.Destroy(es[3])
	w.Flush()

	got := w.Query(tagHP)
	want := []Entity{es[0], es[2], es[4]}
	if len(got) != len(want) {
		t.Fatalf("Query returned %d entities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Query()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestClear(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	w.Add(a, tagPos, &pos{})

	w.Clear()

	if w.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", w.Len())
	}
	if w.Alive(a) {
		t.Error("entity alive after Clear")
	}

	// IDs must not be reused across Clear.
	b := w.Create()
	if b == a {
		t.Error("entity ID reused after Clear")
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	w.Add(a, tagPos, &pos{})
	w.Add(a, tagVel, &vel{})

	w.Remove(a, tagVel)

	if w.Has(a, tagVel) {
		t.Error("Has(vel) = true after Remove")
	}
	if !w.Has(a, tagPos) {
		t.Error("Remove deleted the wrong component")
	}
	if got := w.Query(tagPos, tagVel); len(got) != 0 {
		t.Errorf("Query after Remove = %v, want empty", got)
	}
}
