package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"ordering/internal/core/ports"
)

const outboxBatchSize = 50

// OutboxRelayJob periodically drains the transactional outbox. Runs every
// second, fetching pending messages in order and publishing them to the
// message broker before marking them as sent.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a new job that relays outbox messages to the
// broker every second.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the outbox relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.RelayOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the outbox relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// RelayOnce drains one batch of pending outbox messages. Messages are
// published in insertion order; the first failure stops the batch so that
// later messages of the same order never overtake an earlier one.
func (j *OutboxRelayJob) RelayOnce(ctx context.Context) error {
	messages, err := j.outbox.FetchPending(ctx, outboxBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err := j.publisher.Publish(ctx, message); err != nil {
			return err
		}

		if err := j.outbox.MarkSent(ctx, message.ID, time.Now().UTC()); err != nil {
			return err
		}
	}

	return nil
}
