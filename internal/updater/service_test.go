package updater

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func testService() *service {
	return &service{
		state:  StateIdle,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestStateTransitions(t *testing.T) {
	s := testService()

	if !s.transitionTo(StateChecking, StateIdle, StateAvailable, StateError) {
		t.Error("idle -> checking should be allowed")
	}
	if s.getState() != StateChecking {
		t.Errorf("state = %s, want checking", s.getState())
	}

	// Downloading is only reachable from available
	if s.transitionTo(StateDownloading, StateAvailable) {
		t.Error("checking -> downloading should be rejected")
	}
	if s.getState() != StateChecking {
		t.Errorf("state = %s after rejected transition, want checking", s.getState())
	}

	// Unconditional transition
	if !s.transitionTo(StateAvailable) {
		t.Error("unconditional transition should always succeed")
	}
	if !s.transitionTo(StateDownloading, StateAvailable) {
		t.Error("available -> downloading should be allowed")
	}
}

func TestTransitionClearsError(t *testing.T) {
	s := testService()
	s.setError(errors.New("boom"))

	if s.getState() != StateError {
		t.Fatalf("state = %s after setError, want error", s.getState())
	}

	s.transitionTo(StateIdle)

	s.mu.RLock()
	lastError := s.lastError
	s.mu.RUnlock()
	if lastError != nil {
		t.Errorf("lastError = %v after transition, want nil", lastError)
	}
}

func TestDisabledServiceRejectsOperations(t *testing.T) {
	s := &service{
		enabled:        false,
		disabledReason: "no write permission",
		state:          StateIdle,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	_, err := s.CheckForUpdate(t.Context())
	var updateErr *Error
	if !errors.As(err, &updateErr) || updateErr.Code != ErrCodeDisabled {
		t.Errorf("CheckForUpdate error = %v, want DISABLED", err)
	}

	if err := s.ApplyUpdate(t.Context()); err == nil {
		t.Error("ApplyUpdate on disabled service should fail")
	}
	if err := s.Rollback(t.Context()); err == nil {
		t.Error("Rollback on disabled service should fail")
	}
}

func TestErrorFormat(t *testing.T) {
	cause := errors.New("connection refused")
	err := newError(ErrCodeCheckFailed, "failed to check for updates", cause)

	want := "CHECK_FAILED: failed to check for updates: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}

	bare := newError(ErrCodeNoUpdate, "no update available", nil)
	if bare.Error() != "NO_UPDATE: no update available" {
		t.Errorf("Error() = %q without cause", bare.Error())
	}
}

func TestDevAssetName(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"windows", "amd64", "duvc-ctl_windows_amd64.zip"},
		{"windows", "arm64", "duvc-ctl_windows_arm64.zip"},
		{"linux", "amd64", "duvc-ctl_linux_amd64.tar.gz"},
		{"darwin", "arm64", "duvc-ctl_darwin_arm64.tar.gz"},
	}

	for _, tt := range tests {
		if got := devAssetName(tt.goos, tt.goarch); got != tt.want {
			t.Errorf("devAssetName(%s, %s) = %q, want %q", tt.goos, tt.goarch, got, tt.want)
		}
	}
}
