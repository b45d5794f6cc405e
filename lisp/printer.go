package lisp

import (
	"fmt"
	"strings"
)

// PrinterOption configures ReprExpr.
type PrinterOption func(*printerOpts)

type printerOpts struct {
	pretty bool
}

// Pretty reserves multi-line output for future use; it has no effect in
// this core (spec.md section 4.4).
func Pretty() PrinterOption {
	return func(o *printerOpts) { o.pretty = true }
}

// ReprExpr renders an expression into canonical text. It does not detect
// cycles: a cyclic Pair structure (reachable via SetCar/SetCdr) causes
// ReprExpr to loop forever, same as the reference implementation.
func ReprExpr(exp Expr, opts ...PrinterOption) string {
	o := &printerOpts{}
	for _, opt := range opts {
		opt(o)
	}
	var b strings.Builder
	out := newOutputStream(&b)
	renderExpr(exp, out, o)
	return b.String()
}

func renderExpr(exp Expr, out *outputStream, opts *printerOpts) {
	switch {
	case IsNil(exp):
		out.putString("nil")
	case IsSymbol(exp):
		out.putString(SymbolName(exp))
	case IsGensym(exp):
		out.putString(fmt.Sprintf("#:G%d", GensymID(exp)))
	case IsInteger(exp):
		out.putInt(IntegerValue(exp))
	case IsPair(exp):
		renderList(exp, out, opts)
	case IsComment(exp):
		out.putString(CommentText(exp))
	case IsBuiltin(exp):
		out.putString(fmt.Sprintf("#<builtin %s>", BuiltinName(exp)))
	case IsFunction(exp):
		out.putString("#<function>")
	default:
		// Unreachable: Kind is a closed set and every variant is handled
		// above. Kept as a defensive panic rather than silently printing
		// nothing, mirroring spec.md's CannotPrint fallthrough kind.
		panic(cannotPrintError(exp))
	}
}

func renderList(exp Expr, out *outputStream, opts *printerOpts) {
	out.putString("(")
	// TODO: no visited set, so a cyclic list will not terminate here.
	renderExpr(exp.head, out, opts)
	tail := exp.tail
	for {
		if IsPair(tail) {
			out.putString(" ")
			renderExpr(tail.head, out, opts)
			tail = tail.tail
			continue
		}
		if !IsNil(tail) {
			out.putString(" . ")
			renderExpr(tail, out, opts)
		}
		break
	}
	out.putString(")")
}
