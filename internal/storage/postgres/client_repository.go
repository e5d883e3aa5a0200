package postgres

import (
	"context"

	"github.com/polkiloo/freightorders/internal/domain/model"
)

// --- ClientRepository implementation ---

func (r *clientRepository) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	const query = `INSERT INTO clients (id, name, contact_name, contact_phone, created_at)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, name, contact_name, contact_phone, created_at`
	var c model.Client
	err := r.storage.conn(ctx).QueryRow(ctx, query,
		client.ID, client.Name, client.ContactName, client.ContactPhone, r.storage.clock.Now(),
	).Scan(&c.ID, &c.Name, &c.ContactName, &c.ContactPhone, &c.CreatedAt)
	if err != nil {
		return nil, translateError("insert client", err)
	}
	return &c, nil
}
