package jobs

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/application/intake"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

type placementHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceClientOrderCommand) (*order.Order, error)
}

// ClientOrderIntakeJob registers client placements whose delay has elapsed.
// Runs every second, so a placement is executed at most a second late.
type ClientOrderIntakeJob struct {
	queue   *intake.Queue
	handler placementHandler
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewClientOrderIntakeJob(queue *intake.Queue, handler placementHandler, logger *slog.Logger) *ClientOrderIntakeJob {
	return &ClientOrderIntakeJob{
		queue:   queue,
		handler: handler,
		now:     time.Now,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "client_order_intake_job"),
	}
}

func (j *ClientOrderIntakeJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Client order intake job started (running every second)")
	return nil
}

// RunOnce executes every due placement and returns how many orders were
// registered. A failed placement is logged and dropped.
func (j *ClientOrderIntakeJob) RunOnce(ctx context.Context) int {
	placed := 0
	for _, p := range j.queue.Due(j.now()) {
		o, err := j.handler.Handle(ctx, p.Command)
		if err != nil {
			j.logger.ErrorContext(ctx, "Client order placement failed",
				"placement_id", p.ID.String(),
				"model_id", p.Command.ModelID().String(),
				"error", err,
			)
			continue
		}

		placed++
		j.logger.InfoContext(ctx, "Client order placed",
			"placement_id", p.ID.String(),
			"order_id", o.ID().String(),
			"ticket_id", o.TicketID().String(),
		)
	}
	return placed
}

// Stop waits for a running execution to finish.
func (j *ClientOrderIntakeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Client order intake job stopped")
}
