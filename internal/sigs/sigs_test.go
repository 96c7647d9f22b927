// Package sigs_test tests signal handler registration and teardown.
// Related: internal/sigs/sigs.go
// Tags: signals, handlers
package sigs

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_DeliversSignal(t *testing.T) {
	got := make(chan os.Signal, 4)
	stop := Handle(func(s os.Signal) { got <- s }, syscall.SIGUSR1, syscall.SIGUSR2)
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR2))

	select {
	case s := <-got:
		assert.Equal(t, syscall.SIGUSR2, s)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
}

func TestHandle_StopIsIdempotent(t *testing.T) {
	stop := Handle(func(os.Signal) {}, syscall.SIGUSR1)

	assert.NotPanics(t, func() {
		stop()
		stop()
	})
}

func TestHandle_StopWaitsForRunningHandler(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var finished bool

	// Keep SIGUSR1 registered for the whole test so the second delivery
	// cannot fall through to the default action and kill the test binary.
	keep := Handle(func(os.Signal) {}, syscall.SIGUSR1)
	defer keep()

	stop := Handle(func(os.Signal) {
		close(entered)
		<-release
		finished = true
	}, syscall.SIGUSR1)

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))
	<-entered

	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("stop returned while handler was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-stopped
	assert.True(t, finished)
}
