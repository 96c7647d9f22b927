// Package notify_test tests notification validation, argv construction and
// notifier defaults.
// Related: internal/notify/notify.go, internal/notify/handler.go
// Tags: notify, validation, urgency, notify-send
package notify

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSender records every notification it is asked to send
type mockSender struct {
	mu    sync.Mutex
	err   error
	calls []Notification
}

func (m *mockSender) Name() string { return "mock" }

func (m *mockSender) Send(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, n)
	return m.err
}

func TestValidUrgency(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  bool
	}{
		"empty":    {input: "", want: true},
		"low":      {input: "low", want: true},
		"normal":   {input: "normal", want: true},
		"critical": {input: "critical", want: true},
		"upper":    {input: "LOW", want: false},
		"unknown":  {input: "urgent", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidUrgency(tt.input))
		})
	}
}

func TestNotification_Validate(t *testing.T) {
	t.Parallel()

	t.Run("no args", func(t *testing.T) {
		t.Parallel()
		err := Notification{Title: "t"}.Validate()
		assert.ErrorIs(t, err, ErrNoMessage)
	})

	t.Run("bad urgency", func(t *testing.T) {
		t.Parallel()
		err := Notification{Title: "t", Urgency: "urgent", Args: []string{"x"}}.Validate()
		var urgencyErr *InvalidUrgencyError
		require.ErrorAs(t, err, &urgencyErr)
		assert.Equal(t, Urgency("urgent"), urgencyErr.Urgency)
		assert.EqualError(t, err, `invalid urgency: "urgent"`)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Notification{Urgency: UrgencyLow, Args: []string{"x"}}.Validate())
	})
}

func TestNotification_Argv(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n    Notification
		want []string
	}{
		"title and body": {
			n:    Notification{Title: "backup", Args: []string{"done"}},
			want: []string{"backup", "done"},
		},
		"with urgency": {
			n:    Notification{Title: "backup", Urgency: UrgencyCritical, Args: []string{"failed", "disk full"}},
			want: []string{"backup", "-u", "critical", "failed", "disk full"},
		},
		"extra notify-send flags pass through": {
			n:    Notification{Title: "clip", Args: []string{"-t", "2000", "copied"}},
			want: []string{"clip", "-t", "2000", "copied"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.n.Argv())
		})
	}
}

func TestNotifier_AppliesDefaults(t *testing.T) {
	t.Parallel()
	sender := &mockSender{}
	n := NewNotifierWithSender(Config{Title: "backup", Urgency: UrgencyLow}, sender)

	require.NoError(t, n.Send(context.Background(), "hello"))
	require.NoError(t, n.Notify(context.Background(), Notification{
		Title:   "custom",
		Urgency: UrgencyCritical,
		Args:    []string{"boom"},
	}))

	require.Len(t, sender.calls, 2)
	assert.Equal(t, Notification{Title: "backup", Urgency: UrgencyLow, Args: []string{"hello"}}, sender.calls[0])
	assert.Equal(t, "custom", sender.calls[1].Title)
	assert.Equal(t, UrgencyCritical, sender.calls[1].Urgency)
}

func TestNotifier_ValidationPreventsSend(t *testing.T) {
	t.Parallel()
	sender := &mockSender{}
	n := NewNotifierWithSender(DefaultConfig(), sender)

	assert.ErrorIs(t, n.Send(context.Background()), ErrNoMessage)
	assert.Error(t, n.Notify(context.Background(), Notification{Urgency: "loud", Args: []string{"x"}}))
	assert.Empty(t, sender.calls)
}

func TestNotifier_SenderErrorPropagates(t *testing.T) {
	t.Parallel()
	sendErr := errors.New("dbus down")
	n := NewNotifierWithSender(DefaultConfig(), &mockSender{err: sendErr})

	assert.ErrorIs(t, n.Send(context.Background(), "x"), sendErr)
}

func TestNotifier_Logger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n := NewNotifierWithSender(DefaultConfig(), &mockSender{})
	n.SetLogger(log.New(&buf, "", 0))

	require.NoError(t, n.Send(context.Background(), "x"))
	assert.Contains(t, buf.String(), `[notify] sending via mock: title="gutils"`)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	assert.Equal(t, "gutils", cfg.Title)
	assert.Empty(t, cfg.Urgency)
	assert.Equal(t, cfg, NewNotifierWithSender(cfg, &mockSender{}).Config())
}
