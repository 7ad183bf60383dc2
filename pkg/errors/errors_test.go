package errors

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestSettingsErrorString(t *testing.T) {
	err := &SettingsError{
		Op:   "settings.SaveState",
		Kind: KindStore,
		Err:  fmt.Errorf("sync failed"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "store") {
		t.Errorf("error string %q should contain kind %q", got, "store")
	}
}

func TestSettingsErrorWithControl(t *testing.T) {
	err := &SettingsError{
		Op:      "handlers.Slider.Load",
		Kind:    KindHandler,
		Control: "volume_slider",
		Err:     fmt.Errorf("out of range"),
	}
	got := err.Error()
	want := "control=volume_slider"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestSettingsErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := &SettingsError{Op: "op", Kind: KindCodec, Err: inner}
	if err.Unwrap() != inner {
		t.Error("Unwrap should return the underlying error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindStore, "store"},
		{KindHandler, "handler"},
		{KindCodec, "codec"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Op:    "settings.walk/compare",
		Value: "boom",
	}
	got := err.Error()
	if !strings.Contains(got, "settings.walk/compare") || !strings.Contains(got, "boom") {
		t.Errorf("unexpected panic error string %q", got)
	}
}

type captureHandler struct {
	errs   []*SettingsError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *SettingsError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)    { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(&SettingsError{Op: "op", Kind: KindStore, Err: fmt.Errorf("x")})
	if len(capture.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(capture.errs))
	}
	if capture.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero Timestamp")
	}
	if time.Since(capture.errs[0].Timestamp) > time.Minute {
		t.Error("Timestamp should be recent")
	}
}

func TestReportNil(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)
	if len(capture.errs) != 0 || len(capture.panics) != 0 {
		t.Error("nil reports should be ignored")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
}
