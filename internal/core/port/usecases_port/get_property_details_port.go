package usecases_port

import (
	"context"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, id string) (*domain.PropertyWithOwner, error)
}
