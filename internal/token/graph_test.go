package token

import (
	"testing"

	"github.com/aledsdavies/goatlang/internal/arena"
)

func mkTok(kind Kind, text string) *Token {
	return &Token{Kind: kind, Text: []rune(text)}
}

func TestAppendNeighborOrderAndCount(t *testing.T) {
	list := NewList()
	a, b, c := mkTok(IDENTIFIER, "a"), mkTok(IDENTIFIER, "b"), mkTok(IDENTIFIER, "c")
	AppendNeighbor(list, a)
	AppendNeighbor(list, b)
	AppendNeighbor(list, c)

	if list.Count() != 3 {
		t.Fatalf("expected count 3, got %d", list.Count())
	}
	if list.First() != a || list.Last() != c {
		t.Fatalf("expected first=a last=c, got first=%v last=%v", list.First(), list.Last())
	}
	if a.Right() != b || b.Right() != c || c.Right() != nil {
		t.Fatal("right-linkage broken")
	}
	if c.Left() != b || b.Left() != a || a.Left() != nil {
		t.Fatal("left-linkage broken")
	}
}

func TestAppendToGroupOrderAndCount(t *testing.T) {
	group := NewGroup("identifiers")
	a, b := mkTok(IDENTIFIER, "a"), mkTok(IDENTIFIER, "b")
	AppendToGroup(group, a)
	AppendToGroup(group, b)

	if group.Count() != 2 {
		t.Fatalf("expected count 2, got %d", group.Count())
	}
	if group.First() != a || group.Last() != b {
		t.Fatal("group order broken")
	}
	if a.NextInGroup() != b || b.PrevInGroup() != a {
		t.Fatal("group linkage broken")
	}
}

func TestRemoveFromNeighborsPreservesGroup(t *testing.T) {
	list := NewList()
	group := NewGroup("identifiers")
	a, b, c := mkTok(IDENTIFIER, "a"), mkTok(IDENTIFIER, "b"), mkTok(IDENTIFIER, "c")
	AppendNeighbor(list, a)
	AppendNeighbor(list, b)
	AppendNeighbor(list, c)
	AppendToGroup(group, a)
	AppendToGroup(group, b)
	AppendToGroup(group, c)

	RemoveFromNeighbors(b)

	if list.Count() != 2 || a.Right() != c || c.Left() != a {
		t.Fatal("expected b spliced out of the neighbors list")
	}
	if b.NeighborList() != nil {
		t.Fatal("expected b detached from the neighbors list")
	}
	// b must still be a member of its group — this is the invariant the
	// bracket matcher's fold depends on to keep nested tokens reachable.
	if group.Count() != 3 || b.Group() != group {
		t.Fatal("expected b's group membership to survive RemoveFromNeighbors")
	}
}

func TestRemoveStripsBothNeighborsAndGroup(t *testing.T) {
	list := NewList()
	group := NewGroup("identifiers")
	a, b := mkTok(IDENTIFIER, "a"), mkTok(IDENTIFIER, "b")
	AppendNeighbor(list, a)
	AppendNeighbor(list, b)
	AppendToGroup(group, a)
	AppendToGroup(group, b)

	Remove(a)

	if list.Count() != 1 || list.First() != b {
		t.Fatal("expected a removed from the neighbors list")
	}
	if group.Count() != 1 || group.First() != b {
		t.Fatal("expected a removed from its group")
	}
}

func TestReplaceTakesOverSlotAndDropsGroup(t *testing.T) {
	list := NewList()
	group := NewGroup("additive_operators")
	a, b, c := mkTok(IDENTIFIER, "a"), mkTok(OPERATOR, "+"), mkTok(IDENTIFIER, "c")
	AppendNeighbor(list, a)
	AppendNeighbor(list, b)
	AppendNeighbor(list, c)
	AppendToGroup(group, b)

	fresh := mkTok(EXPRESSION, "a+c")
	Replace(b, fresh)

	if a.Right() != fresh || fresh.Right() != c {
		t.Fatal("expected fresh to occupy b's old neighbor slot")
	}
	if list.Count() != 3 {
		t.Fatalf("expected count to stay 3, got %d", list.Count())
	}
	if group.Count() != 0 {
		t.Fatal("expected b's old group membership to be dropped, not carried to fresh")
	}
}

func TestCollapseSplicesSpanIntoOneToken(t *testing.T) {
	tokens := arena.New[Token]()
	list := NewList()
	a, op, b := mkTok(IDENTIFIER, "a"), mkTok(OPERATOR, "+"), mkTok(IDENTIFIER, "b")
	AppendNeighbor(list, a)
	AppendNeighbor(list, op)
	AppendNeighbor(list, b)

	fresh := Collapse(tokens, a, b, EXPRESSION, nil, []rune("a+b"))

	if list.Count() != 1 || list.First() != fresh || list.Last() != fresh {
		t.Fatalf("expected the span collapsed to a single token, got count=%d", list.Count())
	}
	if fresh.Kind != EXPRESSION || string(fresh.Text) != "a+b" {
		t.Fatalf("unexpected collapsed token: %+v", fresh)
	}
}

func TestInsertAfterSplicesMidListAndAtFront(t *testing.T) {
	list := NewList()
	a, c := mkTok(IDENTIFIER, "a"), mkTok(IDENTIFIER, "c")
	AppendNeighbor(list, a)
	AppendNeighbor(list, c)

	b := mkTok(IDENTIFIER, "b")
	InsertAfter(list, a, b)

	if list.Count() != 3 || a.Right() != b || b.Right() != c || c.Left() != b {
		t.Fatal("expected b spliced between a and c")
	}

	front := mkTok(IDENTIFIER, "front")
	InsertAfter(list, nil, front)

	if list.Count() != 4 || list.First() != front || front.Right() != a {
		t.Fatal("expected front spliced at the head of the list")
	}

	tail := mkTok(IDENTIFIER, "tail")
	InsertAfter(list, c, tail)

	if list.Count() != 5 || list.Last() != tail || c.Right() != tail || tail.Left() != c {
		t.Fatal("expected tail spliced at the end of the list")
	}
}

func TestPositionMonotonicityHolds(t *testing.T) {
	list := NewList()
	a := mkTok(IDENTIFIER, "a")
	b := mkTok(IDENTIFIER, "b")
	a.End.Offset = 1
	b.Begin.Offset = 1
	AppendNeighbor(list, a)
	AppendNeighbor(list, b)

	if a.Right() == b && a.End.Offset > b.Begin.Offset {
		t.Fatal("expected a.end.offset <= b.begin.offset for adjacent neighbors")
	}
}
