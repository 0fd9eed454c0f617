package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/backoff"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const retryBase = 30 * time.Second

type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
	Close() error
}

type RelayQueries interface {
	ClaimNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Relay moves queued notification jobs to the publisher. Jobs are claimed with
// FOR UPDATE SKIP LOCKED so several relays can run side by side.
type Relay struct {
	db        TxBeginner
	queries   RelayQueries
	publisher Publisher
	clock     clock.Clock
	cfg       config.NotificationConfig
	metrics   *metrics.Registry
	logger    *slog.Logger
}

func NewRelay(pool *pgxpool.Pool, queries *sqlc.Queries, publisher Publisher, clk clock.Clock, cfg config.Config, m *metrics.Registry, logger *slog.Logger) *Relay {
	return newRelay(pool, queries, publisher, clk, cfg.Notification, m, logger)
}

func newRelay(db TxBeginner, queries RelayQueries, publisher Publisher, clk clock.Clock, cfg config.NotificationConfig, m *metrics.Registry, logger *slog.Logger) *Relay {
	return &Relay{
		db:        db,
		queries:   queries,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		metrics:   m,
		logger:    logger,
	}
}

// RunOnce publishes one batch and returns how many jobs were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "begin relay transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.Warn("relay rollback failed", "error", rbErr.Error())
		}
	}()

	now := r.clock.Now()
	jobs, err := r.queries.ClaimNotificationJobs(ctx, tx, sqlc.ClaimNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: r.cfg.BatchSize,
	})
	if err != nil {
		return 0, errs.Wrap(err, "claim notification jobs")
	}

	sent := 0
	for _, job := range jobs {
		if pubErr := r.publisher.Publish(ctx, job.Topic, job.Payload); pubErr != nil {
			r.metrics.NotificationPublish.WithLabelValues("error").Inc()
			r.logger.Warn("notification publish failed",
				"job_id", job.ID.String(),
				"kind", job.Kind,
				"attempt", job.Attempts+1,
				"error", pubErr.Error())

			msg := pubErr.Error()
			err := r.queries.MarkNotificationJobFailed(ctx, tx, sqlc.MarkNotificationJobFailedParams{
				LastError:   pgconv.StringPtrToPgtype(&msg),
				MaxAttempts: r.cfg.MaxAttempts,
				RetryAt:     pgconv.TimeToPgtype(now.Add(backoff.Delay(int(job.Attempts), retryBase))),
				ID:          job.ID,
			})
			if err != nil {
				return sent, errs.Wrap(err, "mark notification job failed")
			}
			continue
		}

		if err := r.queries.MarkNotificationJobSent(ctx, tx, job.ID); err != nil {
			return sent, errs.Wrap(err, "mark notification job sent")
		}
		r.metrics.NotificationPublish.WithLabelValues("sent").Inc()
		sent++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "commit relay transaction")
	}
	return sent, nil
}
