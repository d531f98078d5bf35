package values

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed sum type of error kinds the engine can raise.
// Kinds Value, Ref, Name, Num, DivByZero and NA carry the spreadsheet
// error codes surfaced to callers; Unsafe, Compile and Expression are
// internal kinds with no spreadsheet analogue.
type ErrorKind int

const (
	KindValueErr ErrorKind = iota
	KindRefErr
	KindNameErr
	KindNumErr
	KindDivByZeroErr
	KindNAErr
	KindUnsafeErr
	KindCompileErr
	KindExpressionErr
)

// Code returns the error kind's canonical short code, or "" for the
// internal-only kinds that have no spreadsheet analogue.
func (k ErrorKind) Code() string {
	switch k {
	case KindValueErr:
		return "#VALUE!"
	case KindRefErr:
		return "#REF!"
	case KindNameErr:
		return "#NAME?"
	case KindNumErr:
		return "#NUM!"
	case KindDivByZeroErr:
		return "#DIV/0!"
	case KindNAErr:
		return "#N/A"
	default:
		return ""
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindValueErr:
		return "Value"
	case KindRefErr:
		return "Reference"
	case KindNameErr:
		return "Name"
	case KindNumErr:
		return "Num"
	case KindDivByZeroErr:
		return "DivByZero"
	case KindNAErr:
		return "NA"
	case KindUnsafeErr:
		return "Unsafe"
	case KindCompileErr:
		return "Compile"
	case KindExpressionErr:
		return "Expression"
	default:
		return "Unknown"
	}
}

// FormulaError is the single error type raised anywhere in the engine.
// Every built-in, coercion and AST-walk failure produces one of these so
// callers can recover the Kind via errors.As and branch on the spreadsheet
// code without string-matching messages.
type FormulaError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface. Internal kinds (no spreadsheet
// code) render as "<Category> error: <message>"; spreadsheet kinds render
// as "<code>: <message>" so the code is always visible in logs/tests.
func (e *FormulaError) Error() string {
	if code := e.Kind.Code(); code != "" {
		return fmt.Sprintf("%s: %s", code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As chains.
func (e *FormulaError) Unwrap() error { return e.Err }

func newErr(kind ErrorKind, format string, args ...interface{}) *FormulaError {
	return &FormulaError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewValueError raises #VALUE! (bad type/coercion, malformed criterion, …).
func NewValueError(format string, args ...interface{}) *FormulaError {
	return newErr(KindValueErr, format, args...)
}

// NewRefError raises #REF! (unknown parameter name, out-of-bounds INDEX row).
func NewRefError(format string, args ...interface{}) *FormulaError {
	return newErr(KindRefErr, format, args...)
}

// NewNameError raises #NAME? (call to an unregistered function).
func NewNameError(format string, args ...interface{}) *FormulaError {
	return newErr(KindNameErr, format, args...)
}

// NewNumError raises #NUM! (numerically invalid input).
func NewNumError(format string, args ...interface{}) *FormulaError {
	return newErr(KindNumErr, format, args...)
}

// NewDivByZeroError raises #DIV/0!.
func NewDivByZeroError(format string, args ...interface{}) *FormulaError {
	return newErr(KindDivByZeroErr, format, args...)
}

// NewNAError raises #N/A (no match, dereference of null where required).
func NewNAError(format string, args ...interface{}) *FormulaError {
	return newErr(KindNAErr, format, args...)
}

// NewUnsafeError raises the safety gate's rejection kind.
func NewUnsafeError(format string, args ...interface{}) *FormulaError {
	return newErr(KindUnsafeErr, format, args...)
}

// NewCompileError raises a parser/lexer syntactic failure.
func NewCompileError(format string, args ...interface{}) *FormulaError {
	return newErr(KindCompileErr, format, args...)
}

// NewExpressionError raises a generic runtime failure not attributable to
// a more specific kind.
func NewExpressionError(format string, args ...interface{}) *FormulaError {
	return newErr(KindExpressionErr, format, args...)
}

// AsFormulaError reports whether err is (or wraps) a *FormulaError, and
// returns it.
func AsFormulaError(err error) (*FormulaError, bool) {
	var fe *FormulaError
	ok := errors.As(err, &fe)
	return fe, ok
}
