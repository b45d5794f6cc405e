package lisp

import (
	"github.com/samber/oops"
)

// Error code tags, one per error kind spec.md section 7 requires the core
// to distinguish. Callers can recover the kind of a failure with
// errors.As / oops.AsOops and inspecting Code(), rather than matching on
// message text.
const (
	CodeUnexpectedChar    = "UNEXPECTED_CHAR"
	CodeUnexpectedEOF     = "UNEXPECTED_EOF"
	CodeMissingCloseParen = "MISSING_CLOSE_PAREN"
	CodeNotAPair          = "NOT_A_PAIR"
	CodeUnbound           = "UNBOUND"
	CodeCannotEval        = "CANNOT_EVAL"
	CodeCannotPrint       = "CANNOT_PRINT"
	CodeCannotRemove      = "CANNOT_REMOVE"
	CodeStackOverflow     = "STACK_OVERFLOW"
	CodeMissingCommand    = "MISSING_COMMAND"
	CodeDivisionByZero    = "DIVISION_BY_ZERO"
	CodeNotAnInteger      = "NOT_AN_INTEGER"
)

func unexpectedCharError(ch rune) error {
	return oops.Code(CodeUnexpectedChar).
		With("char", string(ch)).
		Errorf("unexpected %q", ch)
}

func unexpectedEOFError() error {
	return oops.Code(CodeUnexpectedEOF).
		Errorf("unexpected end of stream while parsing list")
}

func missingCloseParenError() error {
	return oops.Code(CodeMissingCloseParen).
		Errorf("missing closing ')'")
}

func notAPairError(exp Expr) error {
	return oops.Code(CodeNotAPair).
		With("expr", ReprExpr(exp)).
		Errorf("not a pair: %s", ReprExpr(exp))
}

func unboundError(sym Expr) error {
	return oops.Code(CodeUnbound).
		With("symbol", ReprExpr(sym)).
		Errorf("unbound variable %s", ReprExpr(sym))
}

func cannotEvalError(exp Expr) error {
	return oops.Code(CodeCannotEval).
		With("expr", ReprExpr(exp)).
		Errorf("cannot eval %s", ReprExpr(exp))
}

func cannotPrintError(exp Expr) error {
	return oops.Code(CodeCannotPrint).
		Errorf("cannot print expression of kind %v", exp.Kind())
}

func cannotRemoveError(sym Expr) error {
	return oops.Code(CodeCannotRemove).
		With("symbol", ReprExpr(sym)).
		Errorf("cannot remove variable %s", ReprExpr(sym))
}

func stackOverflowError() error {
	return oops.Code(CodeStackOverflow).
		Errorf("stack too deep")
}

func divisionByZeroError() error {
	return oops.Code(CodeDivisionByZero).
		Errorf("division by zero")
}

func notAnIntegerError(exp Expr) error {
	return oops.Code(CodeNotAnInteger).
		With("expr", ReprExpr(exp)).
		Errorf("expect integer; have %s", ReprExpr(exp))
}

// MissingCommandError is exported: it is raised by the driver, not the
// core, but lives alongside the rest of the taxonomy so cmd/golisp does not
// need its own oops.Code table.
func MissingCommandError() error {
	return oops.Code(CodeMissingCommand).
		Errorf("missing command")
}
