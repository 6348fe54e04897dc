// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/metrics"
	"homework_status_bot/internal/infra/practicum"

	"github.com/sirupsen/logrus"
)

// ErrSendFailed wraps failures of the notification sink.
var ErrSendFailed = errors.New("сообщение в Telegram не отправлено")

const errorReportPrefix = "Сбой в работе программы: "

// StatusFetcher fetches homework statuses updated since fromDate.
type StatusFetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) (*practicum.StatusResponse, error)
}

// LoopState is the process-local state of the poller.
type LoopState struct {
	Checkpoint  int64
	LastMessage string
	LastError   string
}

// Poller checks the status endpoint and forwards changes to a chat.
type Poller struct {
	fetcher        StatusFetcher
	telegramClient domainTelegram.Client
	chatID         int64
	logger         logrus.FieldLogger
	now            func() time.Time
	state          LoopState
}

type Option func(*Poller)

// WithClock replaces time.Now as the poller clock.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

func NewPoller(
	fetcher StatusFetcher,
	tc domainTelegram.Client,
	chatID int64,
	logger logrus.FieldLogger,
	opts ...Option,
) *Poller {
	p := &Poller{
		fetcher:        fetcher,
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.state.Checkpoint = p.now().Unix()
	metrics.Checkpoint.Set(float64(p.state.Checkpoint))
	return p
}

// State returns a copy of the current loop state.
func (p *Poller) State() LoopState {
	return p.state
}

// Check fetches, validates and parses the latest homework. It never sends anything.
func (p *Poller) Check(ctx context.Context) CheckResult {
	fromDate := p.state.Checkpoint
	if fromDate == 0 {
		fromDate = p.now().Unix()
	}

	resp, err := p.fetcher.FetchStatuses(ctx, fromDate)
	if err != nil {
		return failureResult(err)
	}

	if resp.CurrentDateInvalid {
		p.logger.WithField("checkpoint", p.state.Checkpoint).Warn("current_date is not an integer, checkpoint unchanged")
	}
	if resp.CurrentDate != nil {
		p.state.Checkpoint = *resp.CurrentDate
		metrics.Checkpoint.Set(float64(p.state.Checkpoint))
		p.logger.WithField("checkpoint", p.state.Checkpoint).Debug("Checkpoint advanced")
	}

	if len(resp.Homeworks) == 0 {
		return emptyResult()
	}

	// Only the first record is examined per iteration.
	hw, err := homework.Decode(resp.Homeworks[0])
	if err != nil {
		return failureResult(err)
	}
	msg, err := homework.ParseStatus(hw)
	if err != nil {
		return failureResult(err)
	}
	return updateResult(hw, msg)
}

// Tick runs one full iteration: check, notify on change, report failures.
func (p *Poller) Tick(ctx context.Context) CheckResult {
	res := p.Check(ctx)
	if ctx.Err() != nil && res.Kind != ResultUpdate && res.Kind != ResultEmpty {
		p.logger.WithError(res.Err).Info("Poll iteration interrupted by shutdown, no error report sent")
		return res
	}

	if res.Kind == ResultUpdate {
		if err := p.notifyStatus(res); err != nil {
			res = failureResult(err)
		}
	}
	metrics.PollResults.WithLabelValues(res.Kind.String()).Inc()

	switch res.Kind {
	case ResultUpdate:
	case ResultEmpty:
		p.logger.Debug("No homework status updates")
	default:
		p.reportError(res)
	}
	return res
}

func (p *Poller) notifyStatus(res CheckResult) error {
	log := p.logger.WithFields(logrus.Fields{
		"homework": res.Homework.Name,
		"status":   res.Homework.Status,
	})
	if res.Message == p.state.LastMessage {
		metrics.NotificationsSuppressed.WithLabelValues(metrics.TypeStatus).Inc()
		log.Debug("Status unchanged, notification suppressed")
		return nil
	}
	if err := p.send(metrics.TypeStatus, res.Message); err != nil {
		return err
	}
	p.state.LastMessage = res.Message
	log.Info("Status notification sent")
	return nil
}

func (p *Poller) reportError(res CheckResult) {
	log := p.logger.WithError(res.Err).WithField("kind", res.Kind.String())
	if res.StatusCode != 0 {
		log = log.WithField("status_code", res.StatusCode)
	}
	log.Error("Poll iteration failed")

	text := errorReportPrefix + res.Err.Error()
	if text == p.state.LastError {
		metrics.NotificationsSuppressed.WithLabelValues(metrics.TypeError).Inc()
		return
	}
	if err := p.send(metrics.TypeError, text); err != nil {
		p.logger.WithError(err).Error("Failed to deliver error report")
		return
	}
	p.state.LastError = text
}

func (p *Poller) send(msgType, text string) error {
	if err := p.telegramClient.SendMessage(p.chatID, text, nil); err != nil {
		metrics.SendFailures.WithLabelValues(msgType).Inc()
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	metrics.NotificationsSent.WithLabelValues(msgType).Inc()
	return nil
}
