package service

import (
	"context"
	"fmt"

	"github.com/creditguard/creditguard-client/internal/adapter"
	"github.com/creditguard/creditguard-client/internal/events"
	"github.com/creditguard/creditguard-client/models"
)

type duesService struct {
	gateway  adapter.Gateway
	notifier events.Notifier
}

// NewDuesService constructs the due management service. Mutations are
// announced on notifier so the dashboard refetches its aggregates.
func NewDuesService(gateway adapter.Gateway, notifier events.Notifier) DuesService {
	return &duesService{gateway: gateway, notifier: notifier}
}

// List implements [DuesService].
func (d *duesService) List(ctx context.Context) ([]models.Due, error) {
	dues, err := d.gateway.Dues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dues: %w", err)
	}
	return dues, nil
}

// Create implements [DuesService].
func (d *duesService) Create(ctx context.Context, due models.NewDue) (models.Due, error) {
	created, err := d.gateway.CreateDue(ctx, due)
	if err != nil {
		return models.Due{}, fmt.Errorf("create due: %w", err)
	}

	d.notifier.Publish(events.Event{
		Type: events.DueCreated,
		Data: map[string]any{"due_id": created.ID},
	})
	return created, nil
}

// Pay implements [DuesService].
func (d *duesService) Pay(ctx context.Context, id int64, payment models.PaymentRequest) (models.Due, error) {
	updated, err := d.gateway.PayDue(ctx, id, payment)
	if err != nil {
		return models.Due{}, fmt.Errorf("pay due %d: %w", id, err)
	}

	d.notifier.Publish(events.Event{
		Type: events.PaymentMade,
		Data: map[string]any{"due_id": updated.ID},
	})
	return updated, nil
}
