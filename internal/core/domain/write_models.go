package domain

// NewProperty - модель для создания объекта. Image содержит только base64 без префикса data URL.
type NewProperty struct {
	OwnerID  string
	Name     string
	Address  string
	Price    float64
	Year     int
	FileName string
	Image    string
}

// PropertyFields - урезанная модель для обновления, изображение через нее не передается
type PropertyFields struct {
	ID      string
	OwnerID string
	Name    string
	Address string
	Price   float64
	Year    int
}

// PropertyUpdate - конверт запроса на обновление
type PropertyUpdate struct {
	PropertyID string
	Property   PropertyFields
	Sale       SaleState
}

// SaleState - либо Unsold, либо Sold с единственной записью о продаже.
// Состояние "продано, но без записи" выразить нельзя.
type SaleState interface {
	isSaleState()
}

type Unsold struct{}

type Sold struct {
	Trace PropertyTrace
}

func (Unsold) isSaleState() {}
func (Sold) isSaleState()   {}

// IsSold возвращает флаг продажи и запись, если она есть
func (u PropertyUpdate) IsSold() (PropertyTrace, bool) {
	if sold, ok := u.Sale.(Sold); ok {
		return sold.Trace, true
	}
	return PropertyTrace{}, false
}

// ToFields маппит объект в урезанную модель для обновления
func (p Property) ToFields() PropertyFields {
	return PropertyFields{
		ID:      p.ID,
		OwnerID: p.OwnerID,
		Name:    p.Name,
		Address: p.Address,
		Price:   p.Price,
		Year:    p.Year,
	}
}
