package v1

import (
	"context"
	"time"

	"github.com/gosuda/snet/internal/domain"
	"github.com/gosuda/snet/internal/session"
)

// EstablishmentService abstracts establishment operations for handler testing.
// *apiclient.Client satisfies this interface.
type EstablishmentService interface {
	CreateEstablishment(ctx context.Context, in domain.EstablishmentInput) (*domain.Establishment, error)
	ListEstablishmentsWithTotals(ctx context.Context) ([]domain.EstablishmentWithStoresTotal, error)
	GetEstablishment(ctx context.Context, id domain.ID) (*domain.EstablishmentWithStores, error)
	UpdateEstablishment(ctx context.Context, id domain.ID, in domain.EstablishmentInput) (*domain.Establishment, error)
	DeleteEstablishment(ctx context.Context, id domain.ID) error
}

// StoreService abstracts store operations for handler testing.
// *apiclient.Client satisfies this interface.
type StoreService interface {
	CreateStore(ctx context.Context, in domain.StoreInput) (*domain.Store, error)
	ListStores(ctx context.Context) ([]domain.Store, error)
	GetStore(ctx context.Context, id domain.ID) (*domain.Store, error)
	UpdateStore(ctx context.Context, id domain.ID, in domain.StoreInput) (*domain.Store, error)
	DeleteStore(ctx context.Context, id domain.ID) error
}

// SessionManager abstracts session issuance for handler testing.
// *session.Manager satisfies this interface.
type SessionManager interface {
	Login(ctx context.Context) (string, *session.Session, error)
	Logout(ctx context.Context, token string) error
	TTL() time.Duration
}
