package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/learndesk/billing/internal/config"
	"github.com/learndesk/billing/pkg/clients"
)

const eventBufferSize = 256

// Service delivers ledger events to a configured webhook in the background.
// Publish never blocks a ledger mutation: with a full buffer the event is
// dropped and logged.
type Service struct {
	url        string
	client     clients.HTTPClientI
	events     chan Event
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.WebhookURL,
		client:     client,
		events:     make(chan Event, eventBufferSize),
		workerPool: NewWorkerPool(4),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notify service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	var g errgroup.Group
	for {
		select {
		case <-ctx.Done():
			g.Wait() //nolint:errcheck // workers log their own failures
			s.workerPool.Close()
			zap.L().Info("Context canceled, stopping notify service")
			return
		case event := <-s.events:
			g.Go(func() error {
				err := s.workerPool.AddTask(ctx, func() error {
					return s.deliver(ctx, event)
				})
				if err != nil {
					zap.L().Error("Failed to enqueue event delivery", zap.Error(err))
				}
				return nil
			})
		}
	}
}

func (s *Service) Publish(event Event) {
	select {
	case s.events <- event:
	default:
		zap.L().Warn("Event buffer full, dropping event",
			zap.String("eventID", event.ID.String()),
			zap.String("type", string(event.Type)))
	}
}

func (s *Service) deliver(ctx context.Context, event Event) error {
	if s.url == "" {
		zap.L().Debug("No webhook configured, skipping event",
			zap.String("eventID", event.ID.String()))
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	status, _, err := s.client.Post(ctx, s.url, "application/json", body)
	if err != nil {
		return fmt.Errorf("failed to deliver event %s: %w", event.ID, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d for event %s", status, event.ID)
	}

	zap.L().Debug("Event delivered",
		zap.String("eventID", event.ID.String()),
		zap.String("type", string(event.Type)))
	return nil
}
