package errcode

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":               OK,
		"invalid_params":   InvalidParams,
		"unknown_register": UnknownRegister,
		"unknown_field":    UnknownField,
		"field_overflow":   FieldOverflow,
		"out_of_range":     OutOfRange,
		"error":            Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestEFormatsAndMatches(t *testing.T) {
	err := New(FieldOverflow, "encode", "fault")
	if got, want := err.Error(), "encode: field_overflow: fault"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, FieldOverflow) {
		t.Fatal("errors.Is should match the code")
	}
	if errors.Is(err, OutOfRange) {
		t.Fatal("errors.Is matched the wrong code")
	}
	if Of(err) != FieldOverflow {
		t.Fatalf("Of = %q", Of(err))
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if Of(UnknownRegister) != UnknownRegister {
		t.Fatal("bare code should map to itself")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatal("foreign error should map to error")
	}
	cause := errors.New("cause")
	wrapped := &E{C: OutOfRange, Err: cause}
	if !errors.Is(wrapped, cause) {
		t.Fatal("Unwrap should expose the cause")
	}
}

func TestOfMultiErrorUsesFirst(t *testing.T) {
	err := multierr.Combine(
		New(FieldOverflow, "encode", "a"),
		New(UnknownField, "encode", "b"),
	)
	if Of(err) != FieldOverflow {
		t.Fatalf("Of = %q, want field_overflow", Of(err))
	}
	if !errors.Is(err, UnknownField) {
		t.Fatal("errors.Is should see every combined error")
	}
}
