//go:build windows

package com

import (
	"errors"
	"runtime"
	"sync"
)

// ErrThreadClosed is returned by Do after the thread has been closed.
var ErrThreadClosed = errors.New("com: apartment thread closed")

// Thread owns an OS thread with a single-threaded apartment on it.
// Functions submitted through Do run on that thread in submission order,
// which keeps every COM object created inside them on its home apartment.
type Thread struct {
	calls chan call
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once
}

type call struct {
	fn   func() error
	errc chan error
}

// NewThread starts an apartment thread. The caller must Close it to
// release the OS thread and tear down the apartment.
func NewThread() (*Thread, error) {
	t := &Thread{
		calls: make(chan call),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	initc := make(chan error, 1)
	go t.run(initc)

	if err := <-initc; err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Thread) run(initc chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(t.done)

	if err := Initialize(); err != nil {
		initc <- err
		return
	}
	defer Uninitialize()
	initc <- nil

	for {
		select {
		case c := <-t.calls:
			c.errc <- c.fn()
		case <-t.quit:
			return
		}
	}
}

// Do runs fn on the apartment thread and returns its error.
func (t *Thread) Do(fn func() error) error {
	errc := make(chan error, 1)
	select {
	case t.calls <- call{fn: fn, errc: errc}:
		return <-errc
	case <-t.done:
		return ErrThreadClosed
	}
}

// Close stops the apartment thread and waits for it to exit. Safe to call
// more than once.
func (t *Thread) Close() error {
	t.once.Do(func() { close(t.quit) })
	<-t.done
	return nil
}
