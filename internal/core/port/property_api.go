package port

import (
	"context"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

// PropertyAPIPort - внешний properties API. Каждый метод делает ровно один HTTP-запрос, без ретраев.
type PropertyAPIPort interface {
	ListProperties(ctx context.Context, filters domain.FilterCriteria) ([]domain.Property, error)
	GetPropertyByID(ctx context.Context, id string) (*domain.PropertyWithOwner, error)
	CreateProperty(ctx context.Context, property domain.NewProperty) error
	UpdateProperty(ctx context.Context, update domain.PropertyUpdate) error
}
