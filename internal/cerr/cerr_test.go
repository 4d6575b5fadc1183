package cerr

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/srcpos"
)

func pos(row, col, offset int) srcpos.Full {
	return srcpos.Full{Row: row, Column: col, Offset: offset}
}

func TestInOrderReversesPrependOrder(t *testing.T) {
	l := NewList()
	l.Add(pos(1, 1, 0), pos(1, 2, 1).ShortOf(), "first")
	l.Add(pos(2, 1, 5), pos(2, 2, 6).ShortOf(), "second")
	l.Add(pos(3, 1, 9), pos(3, 2, 10).ShortOf(), "third")

	ordered := l.InOrder()
	if len(ordered) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(ordered))
	}
	if ordered[0].Message != "first" || ordered[1].Message != "second" || ordered[2].Message != "third" {
		t.Fatalf("expected source order, got %v, %v, %v", ordered[0].Message, ordered[1].Message, ordered[2].Message)
	}
	// First() is the most recently added (prepend order).
	if l.First().Message != "third" {
		t.Fatalf("expected First() to be the most recently added, got %q", l.First().Message)
	}
}

func TestHasCriticalAndCount(t *testing.T) {
	l := NewList()
	if l.HasCritical() || !l.Empty() {
		t.Fatal("expected a fresh list to be empty and non-critical")
	}
	l.Add(pos(1, 1, 0), pos(1, 2, 1).ShortOf(), "minor")
	if l.HasCritical() {
		t.Fatal("non-critical Add must not flip HasCritical")
	}
	l.AddCritical(pos(1, 1, 0), pos(1, 2, 1).ShortOf(), "fatal")
	if !l.HasCritical() || l.Count() != 2 {
		t.Fatalf("expected HasCritical true and count 2, got %v/%d", l.HasCritical(), l.Count())
	}
}

func TestFormatIncludesFileLineColumnAndSummary(t *testing.T) {
	l := NewList()
	l.AddCritical(pos(1, 3, 2), pos(1, 4, 3).ShortOf(), "unknown symbol '@'")
	rendered := l.Format("test.goat", []rune("a @ b"), message.New(language.English))

	if !strings.Contains(rendered, "test.goat:1:3:") {
		t.Fatalf("expected file:line:col prefix, got %q", rendered)
	}
	if !strings.Contains(rendered, "unknown symbol '@'") {
		t.Fatalf("expected the message text, got %q", rendered)
	}
	if !strings.Contains(rendered, "a @ b") {
		t.Fatalf("expected the source line, got %q", rendered)
	}
	if !strings.Contains(rendered, "found 1 compilation error(s)") {
		t.Fatalf("expected the summary line, got %q", rendered)
	}
}
