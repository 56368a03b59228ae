package service

import (
	"context"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
)

// catalogAPI is the slice of the platform client the catalogue needs.
type catalogAPI interface {
	ListFabrics(ctx context.Context, token string, filter upstream.FabricFilter) ([]domain.Fabric, error)
	CreateOrder(ctx context.Context, token string, req upstream.OrderCreateRequest) (*domain.Order, error)
	ListOrders(ctx context.Context, token string, status domain.OrderStatus) ([]domain.Order, error)
	GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error)
}

// CatalogService covers fabric inventory browsing and garment orders.
type CatalogService struct {
	api catalogAPI
}

// NewCatalogService builds the service.
func NewCatalogService(api catalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

// Fabrics lists the fabric catalogue.
func (s *CatalogService) Fabrics(ctx context.Context, token string, filter upstream.FabricFilter) ([]domain.Fabric, error) {
	return s.api.ListFabrics(ctx, token, filter)
}

// CreateOrder starts a garment order (tailor/admin only upstream).
func (s *CatalogService) CreateOrder(ctx context.Context, token string, req upstream.OrderCreateRequest) (*domain.Order, error) {
	return s.api.CreateOrder(ctx, token, req)
}

// Orders lists orders visible to the caller.
func (s *CatalogService) Orders(ctx context.Context, token string, status domain.OrderStatus) ([]domain.Order, error) {
	return s.api.ListOrders(ctx, token, status)
}

// Order returns one order.
func (s *CatalogService) Order(ctx context.Context, token string, id int64) (*domain.Order, error) {
	return s.api.GetOrder(ctx, token, id)
}
