package uierror

import (
	"errors"
	"testing"
)

type captureHandler struct {
	got []*UIError
}

func (h *captureHandler) Handle(err *UIError) {
	h.got = append(h.got, err)
}

func TestReportReachesHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })

	underlying := errors.New("disk full")
	Report(New("state.Snapshot", KindPersist, underlying))

	if len(h.got) != 1 {
		t.Fatalf("handled %d errors, want 1", len(h.got))
	}
	e := h.got[0]
	if e.Op != "state.Snapshot" || e.Kind != KindPersist {
		t.Errorf("err = %+v", e)
	}
	if e.Timestamp.IsZero() {
		t.Error("Report should stamp the time")
	}
	if !errors.Is(e, underlying) {
		t.Error("UIError should unwrap to the underlying error")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })

	Report(nil)
	if len(h.got) != 0 {
		t.Error("nil report should be dropped")
	}
}

func TestErrorString(t *testing.T) {
	e := New("frame.LoadOptions", KindPersist, errors.New("boom"))
	want := "frame.LoadOptions [persist]: boom"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestKindString(t *testing.T) {
	if KindCodec.String() != "codec" || Kind(99).String() != "unknown" {
		t.Error("Kind strings wrong")
	}
}
