package properties_api_client

import (
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

// Маппинг DTO <-> доменная модель. Ядро не знает о деталях JSON внешнего API.

func toDomainProperty(dto propertyResponse) domain.Property {
	p := domain.Property{
		ID:           dto.IDProperty,
		Name:         dto.Name,
		Address:      dto.Address,
		Price:        dto.Price,
		CodeInternal: dto.CodeInternal,
		Year:         int(dto.Year),
		OwnerID:      dto.IDOwner,
		Traces:       make([]domain.PropertyTrace, 0, len(dto.Traces)),
	}
	if dto.Image != nil {
		p.Image = domain.PropertyImage{
			ID:      dto.Image.ID,
			File:    dto.Image.File,
			Enabled: dto.Image.Enabled,
		}
	}
	for _, t := range dto.Traces {
		p.Traces = append(p.Traces, domain.PropertyTrace{
			DateSale: t.DateSale,
			Name:     t.Name,
			Value:    t.Value,
			Tax:      t.Tax,
		})
	}
	if createdAt, ok := domain.ParseTimestamp(dto.CreatedAt); ok {
		p.CreatedAt = createdAt
	}
	return p
}

func toDomainOwner(dto *ownerResponse) *domain.Owner {
	if dto == nil {
		return nil
	}
	owner := &domain.Owner{
		Name:    dto.Name,
		Address: dto.Address,
	}
	if birthDay, ok := domain.ParseTimestamp(dto.BirthDay); ok {
		owner.BirthDay = birthDay
	}
	return owner
}

func toCreateRequest(p domain.NewProperty) createPropertyRequest {
	return createPropertyRequest{
		IDOwner:  p.OwnerID,
		Name:     p.Name,
		Address:  p.Address,
		Price:    p.Price,
		Year:     p.Year,
		FileName: p.FileName,
		Image:    p.Image,
	}
}

func toUpdateRequest(u domain.PropertyUpdate) updatePropertyRequest {
	req := updatePropertyRequest{
		PropertyID: u.PropertyID,
		Property: propertyFieldsRequest{
			ID:      u.Property.ID,
			IDOwner: u.Property.OwnerID,
			Name:    u.Property.Name,
			Address: u.Property.Address,
			Price:   u.Property.Price,
			Year:    u.Property.Year,
		},
	}
	if trace, sold := u.IsSold(); sold {
		req.IsSold = true
		req.Trace = &traceRequest{
			DateSale: trace.DateSale,
			Name:     trace.Name,
			Value:    trace.Value,
			Tax:      trace.Tax,
		}
	}
	return req
}
