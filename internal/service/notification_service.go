package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/neogig/neogig/internal/config"
	"github.com/neogig/neogig/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// Delivery is a logging stub; only the dispatch wiring is real.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventJobPosted, n.handleJobPosted)
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplicationSubmitted)
	n.dispatcher.Subscribe(events.EventApplicationDecided, n.handleApplicationDecided)
	n.dispatcher.Subscribe(events.EventQuestionAsked, n.handleQuestionAsked)
	n.dispatcher.Subscribe(events.EventQuestionAnswered, n.handleQuestionAnswered)
}

func (n *NotificationService) handleJobPosted(ctx context.Context, event events.Event) error {
	n.logger.Info("JobPosted", zap.String("job_id", event.JobID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleApplicationSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationSubmitted", zap.String("job_id", event.JobID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleApplicationDecided(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationDecided", zap.String("job_id", event.JobID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleQuestionAsked(ctx context.Context, event events.Event) error {
	n.logger.Info("QuestionAsked", zap.String("job_id", event.JobID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleQuestionAnswered(ctx context.Context, event events.Event) error {
	n.logger.Info("QuestionAnswered", zap.String("job_id", event.JobID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("job_id", event.JobID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("job_id", event.JobID),
		zap.String("event_type", string(event.Type)))
}
