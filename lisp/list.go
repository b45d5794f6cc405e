package lisp

// MakeList builds a right-folded proper list from its arguments:
// MakeList(a, b, c) = (a . (b . (c . nil))).
func MakeList(args ...Expr) Expr {
	var ret Expr
	for i := len(args) - 1; i >= 0; i-- {
		ret = Cons(args[i], ret)
	}
	return ret
}

// Length reports the number of pairs reached by repeatedly taking the tail
// until Nil. The Nil singleton has length zero.
func Length(exp Expr) int {
	n := 0
	for IsPair(exp) {
		n++
		exp = exp.tail
	}
	return n
}

// Nreverse destructively reverses a list, rewiring its cdr chain in place
// and returning the new head.
//
// For a proper list this is the familiar in-place reversal. For an
// improper list terminating in a non-nil atom t, the pairs are reshuffled
// in place so that t becomes the first element and the original first
// element becomes the terminator: (a b . t) becomes (t b . a), and
// (a . t) becomes (t . a). The result is therefore improper as well.
// Nreverse is called only by the evaluator's own argument-list
// construction (see eval.go's evalList), which always builds proper lists,
// so in practice Nreverse only ever sees proper input; the improper-list
// branch below is kept rather than asserted away.
func Nreverse(list Expr) Expr {
	if list == nil {
		return list
	}
	var prev Expr
	exp := list
	for IsPair(exp) {
		next := exp.tail
		exp.tail = prev
		prev = exp
		exp = next
	}
	if exp != nil {
		iter := prev
		for iter.tail != nil {
			next := iter.head
			iter.head = exp
			exp = next
			iter = iter.tail
		}
		next := iter.head
		iter.head = exp
		iter.tail = next
	}
	return prev
}

// ListIter is a forward iterator over a proper list's elements.
type ListIter struct {
	cur Expr
}

// NewListIter returns an iterator positioned at the first element of list.
func NewListIter(list Expr) *ListIter { return &ListIter{cur: list} }

// Next returns the next element and true, or (nil, false) once the cursor
// reaches Nil.
func (it *ListIter) Next() (Expr, bool) {
	if IsNil(it.cur) {
		return nil, false
	}
	if !IsPair(it.cur) {
		return nil, false
	}
	v := it.cur.head
	it.cur = it.cur.tail
	return v, true
}

// ToSlice collects every element of a proper list into a Go slice, in
// order.
func ToSlice(list Expr) []Expr {
	var out []Expr
	it := NewListIter(list)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
