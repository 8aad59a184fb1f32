package usecase

import (
	"context"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

type UpdatePropertyUseCase struct {
	api port.PropertyAPIPort
}

func NewUpdatePropertyUseCase(api port.PropertyAPIPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{api: api}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, update domain.PropertyUpdate) error {
	_, sold := update.IsSold()
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": update.PropertyID,
		"is_sold":     sold,
	})

	ucLogger.Info("Updating property", nil)

	if err := uc.api.UpdateProperty(ctx, update); err != nil {
		ucLogger.Error("Could not update property", err, nil)
		return err
	}

	ucLogger.Info("Property updated successfully", nil)
	return nil
}
