package inventory

import (
	"context"
	"time"

	"ivy_homes/internal/domain"
)

// Remote adapts the API client to the Inventory port. Every call carries a
// bounded deadline so a slow inventory service can stall a conversation turn
// by at most timeout; the tool layer turns the resulting error into an
// empty-result response.
type Remote struct {
	client  *Client
	timeout time.Duration
}

func NewRemote(c *Client, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Remote{client: c, timeout: timeout}
}

var _ domain.Inventory = (*Remote)(nil)

func (r *Remote) Search(ctx context.Context, c domain.SearchCriteria, limit int) ([]domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.client.SearchProperties(ctx, c, limit)
}

func (r *Remote) GetByID(ctx context.Context, id string) (domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.client.GetProperty(ctx, id)
}
