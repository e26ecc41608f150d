package ports

import (
	"context"

	"user-account-api/internal/infrastructure/mq"
)

type EventPublisher interface {
	Publish(ctx context.Context, e mq.Event)
}
