package service

import (
	"context"

	"github.com/clinicbook/api/internal/domain/treatment"
	"go.uber.org/zap"
)

// CatalogService is a read-only view over the treatment catalog.
type CatalogService struct {
	treatments treatment.Repository
	log        *zap.Logger
}

func NewCatalogService(treatments treatment.Repository, log *zap.Logger) *CatalogService {
	return &CatalogService{treatments: treatments, log: log}
}

func (s *CatalogService) ListTreatments(ctx context.Context) ([]*treatment.Treatment, error) {
	return s.treatments.List(ctx)
}

func (s *CatalogService) ListTreatmentNames(ctx context.Context) ([]*treatment.NameProjection, error) {
	return s.treatments.ListNames(ctx)
}
