// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-wa-desk/models"
)

// spyMessageService counts Status calls. The n-th call reports status "n";
// calls listed in failOn return an error instead.
type spyMessageService struct {
	MessageService

	calls  atomic.Int64
	mu     sync.Mutex
	ids    []string
	failOn map[int64]bool
}

func (s *spyMessageService) Status(_ context.Context, messageID string) (models.MessageStatus, error) {
	n := s.calls.Add(1)

	s.mu.Lock()
	s.ids = append(s.ids, messageID)
	fail := s.failOn[n]
	s.mu.Unlock()

	if fail {
		return models.MessageStatus{}, errors.New("backend unreachable")
	}
	return models.MessageStatus{
		MessageID: messageID,
		Latest:    json.RawMessage(strconv.Quote(strconv.FormatInt(n, 10))),
	}, nil
}

func (s *spyMessageService) requestedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

func receive(t *testing.T, ch <-chan models.StatusUpdate) models.StatusUpdate {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("no status update received")
		return models.StatusUpdate{}
	}
}

// ── NewStatusPoller ──────────────────────────────────────────────────────────

func TestNewStatusPoller_DefaultInterval(t *testing.T) {
	p := NewStatusPoller(&spyMessageService{}, 0).(*statusPoller)
	assert.Equal(t, DefaultStatusPollInterval, p.interval)
	assert.Equal(t, 1, cap(p.updates))
	assert.Empty(t, p.Target())
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestStatusPoller_Start_FetchesImmediately(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyMessageService{}
	p := NewStatusPoller(spy, time.Hour)

	p.Start(context.Background(), "wamid.1")
	defer p.Stop()

	u := receive(t, p.Updates())
	require.NoError(t, u.Err)
	assert.Equal(t, "wamid.1", u.MessageID)
	assert.Equal(t, "1", u.Status.LatestStatus())
	assert.False(t, u.At.IsZero())
	assert.Equal(t, "wamid.1", p.Target())
}

func TestStatusPoller_ErrorIsDeliveredAndPollingContinues(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyMessageService{failOn: map[int64]bool{1: true}}
	p := NewStatusPoller(spy, 10*time.Millisecond)

	p.Start(context.Background(), "wamid.1")
	defer p.Stop()

	first := receive(t, p.Updates())
	require.Error(t, first.Err)
	assert.Equal(t, "wamid.1", first.MessageID)

	second := receive(t, p.Updates())
	assert.NoError(t, second.Err)
	assert.NotEmpty(t, second.Status.LatestStatus())
}

func TestStatusPoller_KeepsOnlyLatestUpdate(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyMessageService{}
	p := NewStatusPoller(spy, 5*time.Millisecond)

	p.Start(context.Background(), "wamid.1")
	time.Sleep(60 * time.Millisecond)

	u := receive(t, p.Updates())
	p.Stop()

	n, err := strconv.Atoi(u.Status.LatestStatus())
	require.NoError(t, err)
	assert.Greater(t, n, 1, "stale updates must be replaced")
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestStatusPoller_Stop_StopsGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyMessageService{}
	p := NewStatusPoller(spy, 10*time.Millisecond)

	p.Start(context.Background(), "wamid.1")
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no polls after Stop")
	assert.Empty(t, p.Target())

	select {
	case u := <-p.Updates():
		t.Fatalf("unexpected update after Stop: %+v", u)
	default:
	}
}

func TestStatusPoller_Stop_BeforeStart_NoPanic(t *testing.T) {
	p := NewStatusPoller(&spyMessageService{}, time.Second)

	assert.NotPanics(t, func() { p.Stop() })
	assert.NotPanics(t, func() { p.Stop() })
}

func TestStatusPoller_StartEmptyID_Stops(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyMessageService{}
	p := NewStatusPoller(spy, 10*time.Millisecond)

	p.Start(context.Background(), "wamid.1")
	receive(t, p.Updates())

	p.Start(context.Background(), "   ")
	assert.Empty(t, p.Target())

	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}

func TestStatusPoller_Start_SwitchesTarget(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyMessageService{}
	p := NewStatusPoller(spy, 10*time.Millisecond)

	p.Start(context.Background(), "wamid.old")
	receive(t, p.Updates())

	p.Start(context.Background(), "wamid.new")
	defer p.Stop()

	u := receive(t, p.Updates())
	assert.Equal(t, "wamid.new", u.MessageID)
	assert.Equal(t, "wamid.new", p.Target())

	ids := spy.requestedIDs()
	last := ids[len(ids)-1]
	assert.Equal(t, "wamid.new", last)
}

func TestStatusPoller_ConcurrentStartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyMessageService{}
	p := NewStatusPoller(spy, time.Millisecond).(*statusPoller)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			p.Start(context.Background(), "wamid."+strconv.Itoa(i))
		}(i)
		go func() {
			defer wg.Done()
			p.Stop()
		}()
	}
	wg.Wait()

	p.Start(context.Background(), "wamid.last")
	u := receive(t, p.Updates())
	assert.Equal(t, "wamid.last", u.MessageID)
	assert.Equal(t, "wamid.last", p.Target())

	p.Stop()
	assert.Empty(t, p.Target())
	assert.Nil(t, p.cancel, "every started goroutine was stopped")
}

func TestStatusPoller_ParentContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyMessageService{}
	p := NewStatusPoller(spy, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx, "wamid.1")
	receive(t, p.Updates())

	cancel()
	p.Stop()
}
