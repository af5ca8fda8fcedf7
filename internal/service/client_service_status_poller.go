package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// DefaultStatusPollInterval is used when a poller is created with a
// non-positive interval.
const DefaultStatusPollInterval = 4 * time.Second

type statusPoller struct {
	messages MessageService
	interval time.Duration
	now      func() time.Time
	updates  chan models.StatusUpdate

	// run serializes Start and Stop; mu guards cancel and target.
	run    sync.Mutex
	mu     sync.Mutex
	cancel context.CancelFunc
	target string
	wg     sync.WaitGroup
}

// NewStatusPoller creates a StatusPoller that calls messages.Status on a
// ticker. The poller is idle until Start is called.
func NewStatusPoller(messages MessageService, interval time.Duration) StatusPoller {
	if interval <= 0 {
		interval = DefaultStatusPollInterval
	}

	return &statusPoller{
		messages: messages,
		interval: interval,
		now:      time.Now,
		updates:  make(chan models.StatusUpdate, 1),
	}
}

func (p *statusPoller) Start(ctx context.Context, messageID string) {
	messageID = strings.TrimSpace(messageID)

	p.run.Lock()
	defer p.run.Unlock()

	p.stopLocked()
	if messageID == "" {
		return
	}

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.target = messageID
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.poll(jobCtx, messageID)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.poll(jobCtx, messageID)
			}
		}
	}()
}

func (p *statusPoller) Stop() {
	p.run.Lock()
	defer p.run.Unlock()

	p.stopLocked()
}

// stopLocked cancels the running goroutine and waits for it. p.run must be
// held.
func (p *statusPoller) stopLocked() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.target = ""
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()

	// drop a result of the previous target
	select {
	case <-p.updates:
	default:
	}
}

func (p *statusPoller) Updates() <-chan models.StatusUpdate {
	return p.updates
}

func (p *statusPoller) Target() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

func (p *statusPoller) poll(ctx context.Context, messageID string) {
	status, err := p.messages.Status(ctx, messageID)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "statusPoller.poll").
			Str("message_id", messageID).
			Msg("status poll failed")
	}

	p.publish(models.StatusUpdate{
		MessageID: messageID,
		Status:    status,
		Err:       err,
		At:        p.now(),
	})
}

// publish replaces any undelivered update with u. Only the poll goroutine
// sends, so the loop ends after at most one drop.
func (p *statusPoller) publish(u models.StatusUpdate) {
	for {
		select {
		case p.updates <- u:
			return
		default:
		}

		select {
		case <-p.updates:
		default:
		}
	}
}
