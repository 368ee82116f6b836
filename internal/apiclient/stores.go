package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gosuda/snet/internal/domain"
	"github.com/gosuda/snet/internal/schema"
)

// CreateStore sends POST /stores with the owning establishment and the
// whitelisted fields.
func (c *Client) CreateStore(ctx context.Context, in domain.StoreInput) (*domain.Store, error) {
	if err := schema.ValidateStore(in); err != nil {
		return nil, fmt.Errorf("apiclient.Client.CreateStore: %w", err)
	}

	var created domain.Store
	if err := c.do(ctx, http.MethodPost, "/stores", in, &created); err != nil {
		return nil, fmt.Errorf("apiclient.Client.CreateStore: %w", err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("apiclient.Client.CreateStore: response carries no id")
	}
	if created.EstablishmentID == "" {
		created.EstablishmentID = in.EstablishmentID
	}
	if created.Attributes.IsZero() {
		created.Attributes = in.Attributes
	}

	return &created, nil
}

// ListStores sends GET /stores.
func (c *Client) ListStores(ctx context.Context) ([]domain.Store, error) {
	var list []domain.Store
	if err := c.do(ctx, http.MethodGet, "/stores", nil, &list); err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListStores: %w", err)
	}
	if list == nil {
		list = []domain.Store{}
	}
	return list, nil
}

// GetStore sends GET /stores/{id}.
func (c *Client) GetStore(ctx context.Context, id domain.ID) (*domain.Store, error) {
	path, err := resourcePath("stores", id)
	if err != nil {
		return nil, fmt.Errorf("apiclient.Client.GetStore: %w", err)
	}

	var s domain.Store
	if err := c.do(ctx, http.MethodGet, path, nil, &s); err != nil {
		return nil, fmt.Errorf("apiclient.Client.GetStore: %w", err)
	}
	return &s, nil
}

// UpdateStore sends PUT /stores/{id} with the full payload.
func (c *Client) UpdateStore(ctx context.Context, id domain.ID, in domain.StoreInput) (*domain.Store, error) {
	path, err := resourcePath("stores", id)
	if err != nil {
		return nil, fmt.Errorf("apiclient.Client.UpdateStore: %w", err)
	}
	if err := schema.ValidateStore(in); err != nil {
		return nil, fmt.Errorf("apiclient.Client.UpdateStore: %w", err)
	}

	var updated domain.Store
	if err := c.do(ctx, http.MethodPut, path, in, &updated); err != nil {
		return nil, fmt.Errorf("apiclient.Client.UpdateStore: %w", err)
	}
	if updated.ID == "" {
		updated.ID = id.Canonical()
	}
	if updated.EstablishmentID == "" {
		updated.EstablishmentID = in.EstablishmentID
	}
	if updated.Attributes.IsZero() {
		updated.Attributes = in.Attributes
	}

	return &updated, nil
}

// DeleteStore sends DELETE /stores/{id}. The response body is ignored.
func (c *Client) DeleteStore(ctx context.Context, id domain.ID) error {
	path, err := resourcePath("stores", id)
	if err != nil {
		return fmt.Errorf("apiclient.Client.DeleteStore: %w", err)
	}
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("apiclient.Client.DeleteStore: %w", err)
	}
	return nil
}
