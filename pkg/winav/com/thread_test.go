//go:build windows

package com

import (
	"errors"
	"testing"

	"golang.org/x/sys/windows"
)

func TestThreadDo(t *testing.T) {
	thread, err := NewThread()
	if err != nil {
		t.Fatalf("NewThread error: %v", err)
	}
	defer func() { _ = thread.Close() }()

	ran := false
	if err := thread.Do(func() error {
		ran = true
		return nil
	}); err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if !ran {
		t.Error("expected fn to run")
	}

	want := errors.New("call failed")
	if err := thread.Do(func() error { return want }); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestThreadAffinity(t *testing.T) {
	thread, err := NewThread()
	if err != nil {
		t.Fatalf("NewThread error: %v", err)
	}
	defer func() { _ = thread.Close() }()

	var first, second uint32
	if err := thread.Do(func() error {
		first = windows.GetCurrentThreadId()
		return nil
	}); err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if err := thread.Do(func() error {
		second = windows.GetCurrentThreadId()
		return nil
	}); err != nil {
		t.Fatalf("Do error: %v", err)
	}

	if first == 0 || first != second {
		t.Errorf("expected both calls on one OS thread, got %d and %d", first, second)
	}
}

func TestThreadClose(t *testing.T) {
	thread, err := NewThread()
	if err != nil {
		t.Fatalf("NewThread error: %v", err)
	}

	if err := thread.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
	if err := thread.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
	if err := thread.Do(func() error { return nil }); !errors.Is(err, ErrThreadClosed) {
		t.Errorf("Do after Close: expected ErrThreadClosed, got %v", err)
	}
}
