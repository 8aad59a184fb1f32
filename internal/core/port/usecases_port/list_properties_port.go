package usecases_port

import (
	"context"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

type ListPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.FilterCriteria) ([]domain.Property, error)
}
