package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrFetchProperties  = errors.New("error al obtener propiedades")
	ErrPropertyNotFound = errors.New("property not found")
	ErrCreateProperty   = errors.New("failed to create property")
	ErrUpdateProperty   = errors.New("failed to update property")

	// ErrSubmitInProgress - форма уже отправляется, повторная отправка отклонена
	ErrSubmitInProgress = errors.New("submit already in progress")
)

// FormErrorKey - ключ для ошибки уровня формы
const FormErrorKey = "form"

// FieldErrors - ошибки валидации по полям формы (имя поля -> сообщение)
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Form возвращает ошибку уровня формы, если она есть
func (e FieldErrors) Form() string {
	return e[FormErrorKey]
}
