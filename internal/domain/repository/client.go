package repository

import (
	"context"

	"github.com/polkiloo/freightorders/internal/domain/model"
)

// ClientRepository describes persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) (*model.Client, error)
}
