package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gosuda/snet/internal/domain"
	"github.com/gosuda/snet/internal/schema"
)

// CreateEstablishment sends POST /establishments with the whitelisted fields
// and returns the created establishment carrying the server-assigned id. When
// the API only acknowledges the id, the submitted attributes are returned with
// it.
func (c *Client) CreateEstablishment(ctx context.Context, in domain.EstablishmentInput) (*domain.Establishment, error) {
	if err := schema.ValidateEstablishment(in); err != nil {
		return nil, fmt.Errorf("apiclient.Client.CreateEstablishment: %w", err)
	}

	var created domain.Establishment
	if err := c.do(ctx, http.MethodPost, "/establishments", in, &created); err != nil {
		return nil, fmt.Errorf("apiclient.Client.CreateEstablishment: %w", err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("apiclient.Client.CreateEstablishment: response carries no id")
	}
	if created.Attributes.IsZero() {
		created.Attributes = in.Attributes
	}

	return &created, nil
}

// ListEstablishments sends GET /establishments and returns the plain list.
func (c *Client) ListEstablishments(ctx context.Context) ([]domain.Establishment, error) {
	var list []domain.Establishment
	if err := c.do(ctx, http.MethodGet, "/establishments", nil, &list); err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListEstablishments: %w", err)
	}
	if list == nil {
		list = []domain.Establishment{}
	}
	return list, nil
}

// ListEstablishmentsWithTotals sends GET /establishments and returns each
// establishment with its store count.
func (c *Client) ListEstablishmentsWithTotals(ctx context.Context) ([]domain.EstablishmentWithStoresTotal, error) {
	var list []domain.EstablishmentWithStoresTotal
	if err := c.do(ctx, http.MethodGet, "/establishments", nil, &list); err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListEstablishmentsWithTotals: %w", err)
	}
	if list == nil {
		list = []domain.EstablishmentWithStoresTotal{}
	}
	return list, nil
}

// GetEstablishment sends GET /establishments/{id}. The returned stores only
// ever reference the requested establishment.
func (c *Client) GetEstablishment(ctx context.Context, id domain.ID) (*domain.EstablishmentWithStores, error) {
	path, err := resourcePath("establishments", id)
	if err != nil {
		return nil, fmt.Errorf("apiclient.Client.GetEstablishment: %w", err)
	}

	var e domain.EstablishmentWithStores
	if err := c.do(ctx, http.MethodGet, path, nil, &e); err != nil {
		return nil, fmt.Errorf("apiclient.Client.GetEstablishment: %w", err)
	}

	stores := make([]domain.Store, 0, len(e.Stores))
	for _, s := range e.Stores {
		if !s.BelongsTo(id) {
			log.Warn().
				Str("establishment_id", id.String()).
				Str("store_id", s.ID.String()).
				Str("store_establishment_id", s.EstablishmentID.String()).
				Msg("apiclient: dropping store of another establishment")
			continue
		}
		stores = append(stores, s)
	}
	e.Stores = stores

	return &e, nil
}

// UpdateEstablishment sends PUT /establishments/{id} with the full
// whitelisted payload and returns the updated establishment.
func (c *Client) UpdateEstablishment(ctx context.Context, id domain.ID, in domain.EstablishmentInput) (*domain.Establishment, error) {
	path, err := resourcePath("establishments", id)
	if err != nil {
		return nil, fmt.Errorf("apiclient.Client.UpdateEstablishment: %w", err)
	}
	if err := schema.ValidateEstablishment(in); err != nil {
		return nil, fmt.Errorf("apiclient.Client.UpdateEstablishment: %w", err)
	}

	var updated domain.Establishment
	if err := c.do(ctx, http.MethodPut, path, in, &updated); err != nil {
		return nil, fmt.Errorf("apiclient.Client.UpdateEstablishment: %w", err)
	}
	if updated.ID == "" {
		updated.ID = id.Canonical()
	}
	if updated.Attributes.IsZero() {
		updated.Attributes = in.Attributes
	}

	return &updated, nil
}

// DeleteEstablishment sends DELETE /establishments/{id}.
func (c *Client) DeleteEstablishment(ctx context.Context, id domain.ID) error {
	path, err := resourcePath("establishments", id)
	if err != nil {
		return fmt.Errorf("apiclient.Client.DeleteEstablishment: %w", err)
	}
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("apiclient.Client.DeleteEstablishment: %w", err)
	}
	return nil
}
