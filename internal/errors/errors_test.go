package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("N001")
	if err.Code != "N001" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategoryValidation {
		t.Errorf("Category = %q", err.Category)
	}
	if !strings.Contains(err.Error(), "N001") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("N999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := New("N020").Wrap(cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}

	var de *Error
	if !errors.As(error(err), &de) {
		t.Error("errors.As failed for *Error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "N020") != nil {
		t.Error("FromError(nil) != nil")
	}

	coded := New("N001")
	if got := FromError(coded, "N020"); got != coded {
		t.Error("FromError rewrapped an already-coded error")
	}

	plain := errors.New("boom")
	got := FromError(plain, "N020")
	if got.Code != "N020" || !errors.Is(got, plain) {
		t.Errorf("FromError(plain) = %+v", got)
	}
}

func TestFormatCompact(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("N001").WithPath("/reference/react/useId")
	got := err.FormatCompact()
	want := "/reference/react/useId: N001: Duplicate page path in manifest"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatIncludesParts(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("N001").
		WithPath("/reference/react/useId").
		WithSuggestion("remove one of the entries")
	out := err.Format()

	for _, want := range []string{"N001", "/reference/react/useId", "Hint:", "Learn more:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}
