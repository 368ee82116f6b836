package v1_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gosuda/snet/internal/domain"
	"github.com/gosuda/snet/internal/server/middleware"
	"github.com/gosuda/snet/internal/session"
)

// ---------------------------------------------------------------------------
// Context helpers: inject a session into context for DoCtx
// ---------------------------------------------------------------------------

func sessionCtx(token string) (context.Context, *session.Session) {
	s := &session.Session{
		ID:        uuid.New(),
		Logged:    true,
		CreatedAt: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, 5, 1, 21, 0, 0, 0, time.UTC),
	}
	return middleware.WithSession(context.Background(), s, token), s
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func acmeAttributes() domain.Attributes {
	return domain.Attributes{
		Number:        "001",
		Name:          "Acme",
		CorporateName: "Acme Ltda",
		Address:       "Main St",
		AddressNumber: "10",
		City:          "Springfield",
		State:         "SP",
		ZipCode:       "01000-000",
	}
}

func acmeBody() map[string]any {
	return map[string]any{
		"number":         "001",
		"name":           "Acme",
		"corporate_name": "Acme Ltda",
		"address":        "Main St",
		"address_number": "10",
		"city":           "Springfield",
		"state":          "SP",
		"zip_code":       "01000-000",
	}
}

// ---------------------------------------------------------------------------
// Mock EstablishmentService
// ---------------------------------------------------------------------------

type mockEstablishmentService struct {
	createFunc func(ctx context.Context, in domain.EstablishmentInput) (*domain.Establishment, error)
	listFunc   func(ctx context.Context) ([]domain.EstablishmentWithStoresTotal, error)
	getFunc    func(ctx context.Context, id domain.ID) (*domain.EstablishmentWithStores, error)
	updateFunc func(ctx context.Context, id domain.ID, in domain.EstablishmentInput) (*domain.Establishment, error)
	deleteFunc func(ctx context.Context, id domain.ID) error
}

func (m *mockEstablishmentService) CreateEstablishment(ctx context.Context, in domain.EstablishmentInput) (*domain.Establishment, error) {
	return m.createFunc(ctx, in)
}

func (m *mockEstablishmentService) ListEstablishmentsWithTotals(ctx context.Context) ([]domain.EstablishmentWithStoresTotal, error) {
	return m.listFunc(ctx)
}

func (m *mockEstablishmentService) GetEstablishment(ctx context.Context, id domain.ID) (*domain.EstablishmentWithStores, error) {
	return m.getFunc(ctx, id)
}

func (m *mockEstablishmentService) UpdateEstablishment(ctx context.Context, id domain.ID, in domain.EstablishmentInput) (*domain.Establishment, error) {
	return m.updateFunc(ctx, id, in)
}

func (m *mockEstablishmentService) DeleteEstablishment(ctx context.Context, id domain.ID) error {
	return m.deleteFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// Mock StoreService
// ---------------------------------------------------------------------------

type mockStoreService struct {
	createFunc func(ctx context.Context, in domain.StoreInput) (*domain.Store, error)
	listFunc   func(ctx context.Context) ([]domain.Store, error)
	getFunc    func(ctx context.Context, id domain.ID) (*domain.Store, error)
	updateFunc func(ctx context.Context, id domain.ID, in domain.StoreInput) (*domain.Store, error)
	deleteFunc func(ctx context.Context, id domain.ID) error
}

func (m *mockStoreService) CreateStore(ctx context.Context, in domain.StoreInput) (*domain.Store, error) {
	return m.createFunc(ctx, in)
}

func (m *mockStoreService) ListStores(ctx context.Context) ([]domain.Store, error) {
	return m.listFunc(ctx)
}

func (m *mockStoreService) GetStore(ctx context.Context, id domain.ID) (*domain.Store, error) {
	return m.getFunc(ctx, id)
}

func (m *mockStoreService) UpdateStore(ctx context.Context, id domain.ID, in domain.StoreInput) (*domain.Store, error) {
	return m.updateFunc(ctx, id, in)
}

func (m *mockStoreService) DeleteStore(ctx context.Context, id domain.ID) error {
	return m.deleteFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// Mock SessionManager
// ---------------------------------------------------------------------------

type mockSessionManager struct {
	loginFunc  func(ctx context.Context) (string, *session.Session, error)
	logoutFunc func(ctx context.Context, token string) error
	ttl        time.Duration
}

func (m *mockSessionManager) Login(ctx context.Context) (string, *session.Session, error) {
	return m.loginFunc(ctx)
}

func (m *mockSessionManager) Logout(ctx context.Context, token string) error {
	return m.logoutFunc(ctx, token)
}

func (m *mockSessionManager) TTL() time.Duration { return m.ttl }
