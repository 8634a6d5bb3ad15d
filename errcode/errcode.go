package errcode

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"

	UnknownRegister Code = "unknown_register"
	UnknownField    Code = "unknown_field"
	FieldOverflow   Code = "field_overflow"
	OutOfRange      Code = "out_of_range"

	Error Code = "error" // generic fallback
)

// E keeps a code together with the failing operation, a detail and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is matches a bare Code, so errors.Is(err, errcode.FieldOverflow) works on
// wrapped errors.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New is shorthand for &E{C: c, Op: op, Msg: msg}.
func New(c Code, op, msg string) error {
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	type multi interface{ Unwrap() []error }
	if m, ok := err.(multi); ok {
		if errs := m.Unwrap(); len(errs) > 0 {
			return Of(errs[0])
		}
	}
	return Error
}
