package usecases_port

import (
	"context"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, property domain.NewProperty) error
}
