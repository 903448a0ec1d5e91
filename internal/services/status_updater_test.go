package services

import (
	"context"
	"errors"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/ports"
	"testing"
)

func okUpdate(ctx context.Context, id, hub string, action domain.ActionKind) (domain.ActionResult, error) {
	return domain.ActionResult{ConsignmentID: id, Hub: hub, Status: domain.ActionStatusOK}, nil
}

func TestMarkRecordsSuccess(t *testing.T) {
	be := &fakeBackend{update: okUpdate}
	u := &StatusUpdater{Backend: be}
	sess := NewSession("s", nil)
	sess.Notice.Post("stale")

	res, err := u.Mark(context.Background(), sess, "c1", "C", domain.ActionArrival)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.ActionStatusOK {
		t.Fatalf("status = %q, want OK", res.Status)
	}
	if !sess.Ledger.Has("c1", "C", domain.ActionArrival) {
		t.Fatalf("successful action not recorded")
	}
	if _, ok := sess.Notice.Current(); ok {
		t.Fatalf("previous notice should be cleared by the next action")
	}
	if sess.Pending("c1") {
		t.Fatalf("row left pending")
	}

	// Gating now reflects the recorded arrival though backend data has not
	// caught up.
	c := routeABC(strPtr("B"), domain.StatusInTransit)
	if st := sess.Evaluate(c, "C"); !st.ArrivalDisabled {
		t.Fatalf("arrival at C should be disabled after success")
	}
}

func TestMarkBlocked(t *testing.T) {
	be := &fakeBackend{update: func(ctx context.Context, id, hub string, action domain.ActionKind) (domain.ActionResult, error) {
		return domain.ActionResult{ConsignmentID: id, Hub: hub, Status: domain.ActionStatusBlocked, Message: "Next stop is B"}, nil
	}}
	u := &StatusUpdater{Backend: be}
	sess := NewSession("s", nil)

	_, err := u.Mark(context.Background(), sess, "c1", "C", domain.ActionArrival)

	var blocked *ports.BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("err = %v, want *ports.BlockedError", err)
	}
	if blocked.Message != "Next stop is B" {
		t.Fatalf("blocked message = %q", blocked.Message)
	}
	if sess.Ledger.Has("c1", "C", domain.ActionArrival) {
		t.Fatalf("blocked action must not be recorded")
	}
	n, ok := sess.Notice.Current()
	if !ok || n.Message != "Next stop is B" {
		t.Fatalf("notice = %+v, %v; want backend message", n, ok)
	}
}

func TestMarkBlockedWithoutMessage(t *testing.T) {
	be := &fakeBackend{update: func(ctx context.Context, id, hub string, action domain.ActionKind) (domain.ActionResult, error) {
		return domain.ActionResult{Status: domain.ActionStatusBlocked}, nil
	}}
	sess := NewSession("s", nil)

	_, err := (&StatusUpdater{Backend: be}).Mark(context.Background(), sess, "c1", "A", domain.ActionDeparture)
	if err == nil {
		t.Fatalf("expected error")
	}
	if n, _ := sess.Notice.Current(); n.Message != msgBlocked {
		t.Fatalf("notice = %q, want %q", n.Message, msgBlocked)
	}
}

func TestMarkBackendFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"api error", &ports.APIError{Status: 500, Message: "database down"}, "database down"},
		{"transport error", &ports.TransportError{Op: "PUT", Err: errors.New("connection refused")}, msgActionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := &fakeBackend{update: func(ctx context.Context, id, hub string, action domain.ActionKind) (domain.ActionResult, error) {
				return domain.ActionResult{}, tt.err
			}}
			sess := NewSession("s", nil)

			_, err := (&StatusUpdater{Backend: be}).Mark(context.Background(), sess, "c1", "A", domain.ActionArrival)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want wrapping %v", err, tt.err)
			}
			if n, _ := sess.Notice.Current(); n.Message != tt.message {
				t.Fatalf("notice = %q, want %q", n.Message, tt.message)
			}
			if sess.Ledger.Len() != 0 {
				t.Fatalf("failed action recorded")
			}
			if be.callCount("UpdateConsignmentStatus") != 1 {
				t.Fatalf("backend called %d times, want exactly 1", be.callCount("UpdateConsignmentStatus"))
			}
		})
	}
}

func TestMarkRequiresHub(t *testing.T) {
	be := &fakeBackend{update: okUpdate}
	sess := NewSession("s", nil)

	_, err := (&StatusUpdater{Backend: be}).Mark(context.Background(), sess, "c1", "  ", domain.ActionArrival)
	if !errors.Is(err, ErrNoHubSelected) {
		t.Fatalf("err = %v, want ErrNoHubSelected", err)
	}
	if n, _ := sess.Notice.Current(); n.Message != msgSelectHub {
		t.Fatalf("notice = %q, want %q", n.Message, msgSelectHub)
	}
	if be.callCount("UpdateConsignmentStatus") != 0 {
		t.Fatalf("backend called without a hub")
	}
}

func TestMarkRejectsConcurrentRequestForSameRow(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	be := &fakeBackend{update: func(ctx context.Context, id, hub string, action domain.ActionKind) (domain.ActionResult, error) {
		if id == "c1" {
			close(started)
			<-release
		}
		return okUpdate(ctx, id, hub, action)
	}}
	u := &StatusUpdater{Backend: be}
	sess := NewSession("s", nil)

	done := make(chan error, 1)
	go func() {
		_, err := u.Mark(context.Background(), sess, "c1", "A", domain.ActionArrival)
		done <- err
	}()
	<-started

	if _, err := u.Mark(context.Background(), sess, "c1", "A", domain.ActionDeparture); !errors.Is(err, ErrActionPending) {
		t.Fatalf("err = %v, want ErrActionPending", err)
	}
	if _, err := u.Mark(context.Background(), sess, "c2", "A", domain.ActionArrival); err != nil {
		t.Fatalf("other row should not be blocked: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if sess.Pending("c1") {
		t.Fatalf("row still pending after completion")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(errors.New("boom"), "fallback"); got != "fallback" {
		t.Fatalf("plain error = %q, want fallback", got)
	}
	if got := UserMessage(&ports.BlockedError{Message: "no"}, "fallback"); got != "no" {
		t.Fatalf("blocked = %q, want no", got)
	}
	if got := UserMessage(&ports.APIError{Status: 400}, "fallback"); got != "fallback" {
		t.Fatalf("api error without message = %q, want fallback", got)
	}
}
