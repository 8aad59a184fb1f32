package usecase

import (
	"context"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

type CreatePropertyUseCase struct {
	api port.PropertyAPIPort
}

func NewCreatePropertyUseCase(api port.PropertyAPIPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{api: api}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, property domain.NewProperty) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateProperty",
		"owner_id": property.OwnerID,
	})

	ucLogger.Info("Creating property", port.Fields{"name": property.Name, "file_name": property.FileName})

	if err := uc.api.CreateProperty(ctx, property); err != nil {
		ucLogger.Error("Could not create property", err, nil)
		return err
	}

	ucLogger.Info("Property created successfully", nil)
	return nil
}
