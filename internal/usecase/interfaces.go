package usecase

import (
	"context"

	"github.com/mehrsalabs/leadbot/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishLeadRegistered(ctx context.Context, payload queue.LeadRegisteredPayload) error
}
