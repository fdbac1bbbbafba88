package contracts

import (
	"context"
)

type Publisher interface {
	Publish(ctx context.Context, queue string, payload interface{}) error
	Close() error
}
