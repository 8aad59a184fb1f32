package domain

import "time"

// Property - объект недвижимости в том виде, в котором его отдает properties API
type Property struct {
	ID           string
	Name         string
	Address      string
	Price        float64
	CodeInternal string
	Year         int
	OwnerID      string
	Image        PropertyImage
	Traces       []PropertyTrace
	CreatedAt    time.Time
}

// IsSold - объект считается проданным, если у него есть хотя бы одна запись о продаже.
func (p Property) IsSold() bool {
	return len(p.Traces) > 0
}

// FirstTrace возвращает первую запись о продаже, если она есть
func (p Property) FirstTrace() (PropertyTrace, bool) {
	if len(p.Traces) == 0 {
		return PropertyTrace{}, false
	}
	return p.Traces[0], true
}

type PropertyImage struct {
	ID      string
	File    string
	Enabled bool
}

// HasFile - пустой File означает "нет изображения"
func (i PropertyImage) HasFile() bool {
	return i.File != ""
}

// PropertyTrace - запись о продаже. DateSale хранится как дата без времени (YYYY-MM-DD).
type PropertyTrace struct {
	DateSale string
	Name     string
	Value    float64
	Tax      float64
}

// Owner - данные владельца, только для отображения
type Owner struct {
	Name     string
	Address  string
	BirthDay time.Time
}

// PropertyWithOwner - ответ на запрос объекта по id. Owner может отсутствовать.
type PropertyWithOwner struct {
	Property Property
	Owner    *Owner
}
