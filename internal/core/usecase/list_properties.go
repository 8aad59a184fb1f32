package usecase

import (
	"context"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

type ListPropertiesUseCase struct {
	api port.PropertyAPIPort
}

func NewListPropertiesUseCase(api port.PropertyAPIPort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{api: api}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filters domain.FilterCriteria) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":      "ListProperties",
		"filters_empty": filters.IsEmpty(),
	})

	ucLogger.Debug("Use case started", nil)

	properties, err := uc.api.ListProperties(ctx, filters)
	if err != nil {
		ucLogger.Error("Properties API returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return properties, nil
}
