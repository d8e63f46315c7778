package imms

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptySeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Empty[int]()
	if !s.IsEmpty() || s.Count() != 0 {
		t.Fatalf("expected empty sequence")
	}
	if _, err := s.First(); err != ErrEmpty {
		t.Fatalf("First() on empty = %v, want ErrEmpty", err)
	}
	if _, err := s.Last(); err != ErrEmpty {
		t.Fatalf("Last() on empty = %v, want ErrEmpty", err)
	}
}

func TestOfAndToSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Of(1, 2, 3, 4, 5)
	t.Logf("s = %v", s.ToSlice())
	if s.Count() != 5 {
		t.Fatalf("expected count 5, got %d", s.Count())
	}
	got := s.ToSlice()
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice = %v, want %v", got, want)
		}
	}
}

func TestAddFirstAddLastDropFirstDropLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Of(2, 3, 4)
	s = s.AddFirst(1)
	s = s.AddLast(5)
	if got := s.ToSlice(); !equalInts(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("got %v", got)
	}
	s2, err := s.DropFirst()
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.ToSlice(); !equalInts(got, []int{2, 3, 4, 5}) {
		t.Fatalf("DropFirst: got %v", got)
	}
	s3, err := s.DropLast()
	if err != nil {
		t.Fatal(err)
	}
	if got := s3.ToSlice(); !equalInts(got, []int{1, 2, 3, 4}) {
		t.Fatalf("DropLast: got %v", got)
	}
	// s itself is untouched by deriving s2 and s3 (persistence).
	if got := s.ToSlice(); !equalInts(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("original mutated: got %v", got)
	}
}

func TestGetSetNegativeIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Of(10, 20, 30, 40, 50)
	v, err := s.Get(-1)
	if err != nil || v != 50 {
		t.Fatalf("Get(-1) = %d, %v, want 50, nil", v, err)
	}
	v, err = s.Get(-5)
	if err != nil || v != 10 {
		t.Fatalf("Get(-5) = %d, %v, want 10, nil", v, err)
	}
	if _, err := s.Get(-6); err != ErrOutOfRange {
		t.Fatalf("Get(-6) = %v, want ErrOutOfRange", err)
	}
	if _, err := s.Get(5); err != ErrOutOfRange {
		t.Fatalf("Get(5) = %v, want ErrOutOfRange", err)
	}
	s2, err := s.Set(-1, 999)
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.ToSlice(); !equalInts(got, []int{10, 20, 30, 40, 999}) {
		t.Fatalf("Set(-1,999): got %v", got)
	}
	if got := s.ToSlice(); !equalInts(got, []int{10, 20, 30, 40, 50}) {
		t.Fatalf("Set mutated original: got %v", got)
	}
}

func TestInsertAndRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Of(1, 2, 4, 5)
	s2, err := s.Insert(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.ToSlice(); !equalInts(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("Insert(2,3): got %v", got)
	}
	// insert at count == append
	s3, err := s.Insert(s.Count(), 99)
	if err != nil {
		t.Fatal(err)
	}
	if got := s3.ToSlice(); !equalInts(got, []int{1, 2, 4, 5, 99}) {
		t.Fatalf("Insert(count,99): got %v", got)
	}
	// negative index counts from end+1: Insert(-1, x) == Insert(count, x)
	s4, err := s.Insert(-1, 99)
	if err != nil {
		t.Fatal(err)
	}
	if got := s4.ToSlice(); !equalInts(got, []int{1, 2, 4, 5, 99}) {
		t.Fatalf("Insert(-1,99): got %v", got)
	}
	if _, err := s.Insert(-(s.Count() + 2), 0); err != ErrOutOfRange {
		t.Fatalf("Insert beyond negative bound: got %v, want ErrOutOfRange", err)
	}
	s5, err := s2.Remove(2)
	if err != nil {
		t.Fatal(err)
	}
	if got := s5.ToSlice(); !equalInts(got, []int{1, 2, 4, 5}) {
		t.Fatalf("Remove(2): got %v", got)
	}
}

func TestConcatSplitTakeSkipSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	a := Of(1, 2, 3)
	b := Of(4, 5, 6, 7)
	c := a.Concat(b)
	if got := c.ToSlice(); !equalInts(got, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("Concat: got %v", got)
	}
	l, r, err := c.SplitAt(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := l.ToSlice(); !equalInts(got, []int{1, 2, 3}) {
		t.Fatalf("SplitAt left: got %v", got)
	}
	if got := r.ToSlice(); !equalInts(got, []int{4, 5, 6, 7}) {
		t.Fatalf("SplitAt right: got %v", got)
	}
	taken, err := c.Take(3)
	if err != nil || !equalInts(taken.ToSlice(), []int{1, 2, 3}) {
		t.Fatalf("Take(3): got %v, %v", taken.ToSlice(), err)
	}
	skipped, err := c.Skip(3)
	if err != nil || !equalInts(skipped.ToSlice(), []int{4, 5, 6, 7}) {
		t.Fatalf("Skip(3): got %v, %v", skipped.ToSlice(), err)
	}
	sliced, err := c.Slice(1, 4)
	if err != nil || !equalInts(sliced.ToSlice(), []int{2, 3, 4, 5}) {
		t.Fatalf("Slice(1,4): got %v, %v", sliced.ToSlice(), err)
	}
	sliced2, err := c.Slice(-3, -1)
	if err != nil || !equalInts(sliced2.ToSlice(), []int{5, 6, 7}) {
		t.Fatalf("Slice(-3,-1): got %v, %v", sliced2.ToSlice(), err)
	}
	if _, err := c.SplitAt(-1); err != ErrOutOfRange {
		t.Fatalf("SplitAt(-1) = %v, want ErrOutOfRange", err)
	}
}

func TestReverseFilterMapFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Of(1, 2, 3, 4, 5)
	if got := s.Reverse().ToSlice(); !equalInts(got, []int{5, 4, 3, 2, 1}) {
		t.Fatalf("Reverse: got %v", got)
	}
	even := s.Filter(func(v int) bool { return v%2 == 0 })
	if got := even.ToSlice(); !equalInts(got, []int{2, 4}) {
		t.Fatalf("Filter: got %v", got)
	}
	doubled := Map(s, func(v int) int { return v * 2 })
	if got := doubled.ToSlice(); !equalInts(got, []int{2, 4, 6, 8, 10}) {
		t.Fatalf("Map: got %v", got)
	}
	strs := Map(s, func(v int) string {
		if v%2 == 0 {
			return "even"
		}
		return "odd"
	})
	if strs.Count() != 5 {
		t.Fatalf("Map to different type: count = %d", strs.Count())
	}
	sum := Fold(s, 0, func(acc, v int) int { return acc + v })
	if sum != 15 {
		t.Fatalf("Fold sum = %d, want 15", sum)
	}
	concatenated := FoldBack(s, "", func(acc string, v int) string {
		return acc + string(rune('0'+v))
	})
	if concatenated != "54321" {
		t.Fatalf("FoldBack = %q, want %q", concatenated, "54321")
	}
}

func TestFlatMapAllAnyIndexOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Of(1, 2, 3)
	expanded := FlatMap(s, func(v int) Seq[int] { return Of(v, v) })
	if got := expanded.ToSlice(); !equalInts(got, []int{1, 1, 2, 2, 3, 3}) {
		t.Fatalf("FlatMap: got %v", got)
	}
	if !s.All(func(v int) bool { return v > 0 }) {
		t.Fatal("All: expected true")
	}
	if s.Any(func(v int) bool { return v > 10 }) {
		t.Fatal("Any: expected false")
	}
	idx, found := s.IndexOf(func(v int) bool { return v == 2 })
	if !found || idx != 1 {
		t.Fatalf("IndexOf(2) = %d, %v, want 1, true", idx, found)
	}
	if _, found := s.IndexOf(func(v int) bool { return v == 99 }); found {
		t.Fatal("IndexOf(99): expected not found")
	}
}

func TestSequenceEqualAndEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	c := Of(1, 2, 4)
	if !Equal(a, b) {
		t.Fatal("Equal(a,b): expected true")
	}
	if Equal(a, c) {
		t.Fatal("Equal(a,c): expected false")
	}
	if Equal(a, Of(1, 2)) {
		t.Fatal("Equal with different lengths: expected false")
	}
}

func TestIterateAndWhileVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Of(1, 2, 3, 4, 5)
	var seen []int
	s.Iterate(func(v int) { seen = append(seen, v) })
	if !equalInts(seen, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("Iterate: got %v", seen)
	}
	seen = nil
	s.IterateBack(func(v int) { seen = append(seen, v) })
	if !equalInts(seen, []int{5, 4, 3, 2, 1}) {
		t.Fatalf("IterateBack: got %v", seen)
	}
	seen = nil
	s.IterateWhile(func(v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	if !equalInts(seen, []int{1, 2, 3}) {
		t.Fatalf("IterateWhile: got %v", seen)
	}
}

func TestInsertRangeAndAddRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	s := Of(1, 5)
	mid := Of(2, 3, 4)
	s2, err := s.InsertRange(1, mid)
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.ToSlice(); !equalInts(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("InsertRange: got %v", got)
	}
	s3 := s.AddFirstRange(Of(-1, 0))
	if got := s3.ToSlice(); !equalInts(got, []int{-1, 0, 1, 5}) {
		t.Fatalf("AddFirstRange: got %v", got)
	}
	s4 := s.AddLastRange(Of(6, 7))
	if got := s4.ToSlice(); !equalInts(got, []int{1, 5, 6, 7}) {
		t.Fatalf("AddLastRange: got %v", got)
	}
}

func TestOfSeqIteratorConstructor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imms")
	defer teardown()
	//
	src := func(yield func(int) bool) {
		for i := 1; i <= 5; i++ {
			if !yield(i) {
				return
			}
		}
	}
	s, err := OfSeq[int](src)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.ToSlice(); !equalInts(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("OfSeq: got %v", got)
	}
	if _, err := OfSeq[int](nil); err != ErrNullArgument {
		t.Fatalf("OfSeq(nil) = %v, want ErrNullArgument", err)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
