package arena

import "testing"

func TestAllocStablePointersAcrossGrowth(t *testing.T) {
	a := NewSized[int](2)
	before := LiveObjects()

	var ptrs []*int
	for i := 0; i < 10; i++ {
		p := a.Alloc()
		*p = i
		ptrs = append(ptrs, p)
	}

	// Forcing growth (page size 2, 10 allocations) must never invalidate a
	// pointer already handed out.
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("pointer %d was invalidated by later growth: got %d", i, *p)
		}
	}

	a.Release()
	if LiveObjects() != before {
		t.Fatalf("expected live object count to return to baseline after Release, got %d want %d", LiveObjects(), before)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	a := New[int]()
	a.Alloc()
	a.Release()
	a.Release() // must not double-decrement the live counter
}

func TestBytesCopyStringIndependentOfSource(t *testing.T) {
	b := NewBytes()
	src := "hello"
	copied := b.CopyString(src)
	if string(copied) != src {
		t.Fatalf("expected copied runes to equal source, got %q", string(copied))
	}
	copied[0] = 'H'
	if src[0] == 'H' {
		t.Fatal("CopyString must not alias the original string's backing memory")
	}
	b.Release()
}
