package ftree

import "fmt"

// Check walks a tree and validates the structural invariants of spec.md
// §4.4: digit sizes in {1..4}, node sizes in {2,3}, cached measures equal
// to the sum of children's measures, and leaf count equal to the top
// cached measure. It is debug-only tooling; no runtime operation depends
// on it, mirroring btree.Tree.Check() in the teacher.
func Check[T any](t *Tree[T]) error {
	if t == nil {
		return nil
	}
	leaves, err := checkNode[T](t)
	if err != nil {
		return err
	}
	if leaves != measureTree(t) {
		return fmt.Errorf("ftree: measure mismatch: cached %d, counted %d", measureTree(t), leaves)
	}
	return nil
}

func checkNode[T any](t *Tree[T]) (leaves int, err error) {
	if t == nil {
		return 0, nil
	}
	if t.one != nil {
		return checkChild[T](t.one)
	}
	if t.left.n < 1 || t.left.n > 4 {
		return 0, fmt.Errorf("ftree: left digit size %d out of range", t.left.n)
	}
	if t.right.n < 1 || t.right.n > 4 {
		return 0, fmt.Errorf("ftree: right digit size %d out of range", t.right.n)
	}
	total := 0
	for _, c := range t.left.items() {
		n, err := checkChild[T](c)
		if err != nil {
			return 0, err
		}
		total += n
	}
	spineLeaves, err := checkNode[T](t.spine)
	if err != nil {
		return 0, err
	}
	total += spineLeaves
	for _, c := range t.right.items() {
		n, err := checkChild[T](c)
		if err != nil {
			return 0, err
		}
		total += n
	}
	if total != t.m {
		return 0, fmt.Errorf("ftree: deep node cached measure %d, counted %d", t.m, total)
	}
	return total, nil
}

func checkChild[T any](c child[T]) (leaves int, err error) {
	if lf, ok := c.(leaf[T]); ok {
		_ = lf
		return 1, nil
	}
	nd, ok := c.(*node23[T])
	if !ok {
		return 0, fmt.Errorf("ftree: child is neither leaf nor node23")
	}
	if nd.n != 2 && nd.n != 3 {
		return 0, fmt.Errorf("ftree: node size %d out of range", nd.n)
	}
	total := 0
	for _, k := range nd.children() {
		n, err := checkChild[T](k)
		if err != nil {
			return 0, err
		}
		total += n
	}
	if total != nd.m {
		return 0, fmt.Errorf("ftree: node cached measure %d, counted %d", nd.m, total)
	}
	return total, nil
}
