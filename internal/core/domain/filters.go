package domain

// FilterCriteria - набор фильтров для листинга. nil означает "без ограничения".
// Непустые поля объединяются по AND на стороне API.
type FilterCriteria struct {
	Name     *string
	Address  *string
	MinPrice *float64
	MaxPrice *float64
}

func (f FilterCriteria) IsEmpty() bool {
	return f.Name == nil && f.Address == nil && f.MinPrice == nil && f.MaxPrice == nil
}

// StringPtr и Float64Ptr - хелперы для сборки фильтров
func StringPtr(s string) *string { return &s }

func Float64Ptr(f float64) *float64 { return &f }
