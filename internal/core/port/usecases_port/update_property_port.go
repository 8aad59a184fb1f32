package usecases_port

import (
	"context"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, update domain.PropertyUpdate) error
}
