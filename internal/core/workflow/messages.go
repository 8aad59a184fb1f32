package workflow

import (
	"errors"
	"fmt"
)

// Тексты ошибок, которые видит пользователь
const (
	msgNameRequired     = "El nombre es obligatorio"
	msgAddressRequired  = "La dirección es obligatoria"
	msgPricePositive    = "El precio debe ser mayor a 0"
	msgYearInvalid      = "El año debe ser válido"
	msgImageRequired    = "La imagen es obligatoria"
	msgImageNotImage    = "El archivo debe ser una imagen"
	msgImageTooLarge    = "La imagen supera el tamaño máximo de %s"
	msgDateSaleRequired = "La fecha de venta es obligatoria"
	msgValuePositive    = "El valor debe ser mayor a 0"
	msgTaxNegative      = "El impuesto no puede ser negativo"

	MsgCreateFailed = "Error al crear la propiedad. Intente de nuevo."
	MsgUpdateFailed = "Error al actualizar la propiedad. Intente de nuevo."
)

// DefaultSaleName - название записи о продаже по умолчанию
const DefaultSaleName = "Venta"

var (
	// ErrSubmitFailed - API отклонил запрос или не ответил; пользователю показывается одно общее сообщение
	ErrSubmitFailed = errors.New("submit failed")
	ErrUnknownField = errors.New("unknown field")
)

func unknownField(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Callbacks - реакции вызывающего кода на события формы
type Callbacks struct {
	OnSuccess func()
	OnClose   func()
}

func (c Callbacks) success() {
	if c.OnSuccess != nil {
		c.OnSuccess()
	}
}

func (c Callbacks) close() {
	if c.OnClose != nil {
		c.OnClose()
	}
}
