package usecase

import (
	"context"
	"errors"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	api port.PropertyAPIPort
}

func NewGetPropertyDetailsUseCase(api port.PropertyAPIPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{api: api}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id string) (*domain.PropertyWithOwner, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": id,
	})

	details, err := uc.api.GetPropertyByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Properties API returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"has_owner": details.Owner != nil})
	return details, nil
}
