package workflow

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port/usecases_port"
)

type EditOption func(*EditWorkflow)

// WithClock подменяет источник текущего времени для даты новой продажи
func WithClock(now func() time.Time) EditOption {
	return func(w *EditWorkflow) {
		if now != nil {
			w.now = now
		}
	}
}

// EditWorkflow - редактирование объекта и отметка о продаже.
// Флаг sold включен при открытии, если у объекта уже есть запись о продаже.
// Запись уходит в API только при включенном флаге.
type EditWorkflow struct {
	mu        sync.Mutex
	updater   usecases_port.UpdatePropertyUseCase
	callbacks Callbacks
	now       func() time.Time

	seed       domain.Property
	draft      domain.Property
	trace      domain.PropertyTrace
	sold       bool
	errors     domain.FieldErrors
	submitting bool
}

func OpenEditWorkflow(seed domain.Property, updater usecases_port.UpdatePropertyUseCase, callbacks Callbacks, opts ...EditOption) *EditWorkflow {
	w := &EditWorkflow{
		updater:   updater,
		callbacks: callbacks,
		now:       time.Now,
		seed:      cloneProperty(seed),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.reset()
	w.sold = len(w.seed.Traces) > 0
	return w
}

// reset пересобирает черновик из исходного объекта и снимает флаг продажи.
// Вызывается под mu или до публикации workflow.
func (w *EditWorkflow) reset() {
	w.draft = cloneProperty(w.seed)
	w.trace = seedTrace(w.seed, w.now())
	w.sold = false
	w.errors = nil
}

// seedTrace берет первую запись о продаже, если она есть.
// Иначе запись собирается из сегодняшней даты и цены объекта.
func seedTrace(p domain.Property, now time.Time) domain.PropertyTrace {
	if first, ok := p.FirstTrace(); ok {
		trace := domain.PropertyTrace{
			DateSale: domain.DateOnly(first.DateSale),
			Name:     first.Name,
			Value:    first.Value,
			Tax:      first.Tax,
		}
		if trace.Value <= 0 {
			trace.Value = p.Price
		}
		return trace
	}
	return domain.PropertyTrace{
		DateSale: now.UTC().Format(domain.DateLayout),
		Name:     DefaultSaleName,
		Value:    p.Price,
		Tax:      0,
	}
}

func cloneProperty(p domain.Property) domain.Property {
	p.Traces = slices.Clone(p.Traces)
	return p
}

func (w *EditWorkflow) Seed() domain.Property {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneProperty(w.seed)
}

func (w *EditWorkflow) Draft() domain.Property {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneProperty(w.draft)
}

func (w *EditWorkflow) Trace() domain.PropertyTrace {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.trace
}

func (w *EditWorkflow) Sold() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sold
}

func (w *EditWorkflow) Errors() domain.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return copyErrors(w.errors)
}

func (w *EditWorkflow) IsSubmitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// AdditionalTraces - сколько записей о продаже у объекта кроме первой.
// Редактировать можно только первую.
func (w *EditWorkflow) AdditionalTraces() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if n := len(w.seed.Traces); n > 1 {
		return n - 1
	}
	return 0
}

func (w *EditWorkflow) SetPropertyField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch name {
	case "name":
		w.draft.Name = value
	case "address":
		w.draft.Address = value
	case "price":
		w.draft.Price = ParseLenient(value)
	case "year":
		w.draft.Year = ParseLenientInt(value)
	default:
		return unknownField(name)
	}
	return nil
}

func (w *EditWorkflow) SetTraceField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch name {
	case "dateSale":
		w.trace.DateSale = value
	case "name":
		w.trace.Name = value
	case "value":
		w.trace.Value = ParseLenient(value)
	case "tax":
		w.trace.Tax = ParseLenient(value)
	default:
		return unknownField(name)
	}
	return nil
}

// SetSold переключает флаг. Введенные данные о продаже сохраняются при выключении.
func (w *EditWorkflow) SetSold(sold bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sold = sold
}

func (w *EditWorkflow) validate() domain.FieldErrors {
	errs := domain.FieldErrors{}
	if w.draft.Name == "" {
		errs["name"] = msgNameRequired
	}
	if w.draft.Address == "" {
		errs["address"] = msgAddressRequired
	}
	if w.draft.Price <= 0 {
		errs["price"] = msgPricePositive
	}
	if w.draft.Year <= 0 {
		errs["year"] = msgYearInvalid
	}
	if w.sold {
		if w.trace.DateSale == "" {
			errs["dateSale"] = msgDateSaleRequired
		}
		if w.trace.Value <= 0 {
			errs["value"] = msgValuePositive
		}
		if w.trace.Tax < 0 {
			errs["tax"] = msgTaxNegative
		}
	}
	return errs
}

func (w *EditWorkflow) update() domain.PropertyUpdate {
	update := domain.PropertyUpdate{
		PropertyID: w.seed.ID,
		Property:   w.draft.ToFields(),
		Sale:       domain.Unsold{},
	}
	update.Property.ID = w.seed.ID
	update.Property.OwnerID = w.seed.OwnerID
	if w.sold {
		update.Sale = domain.Sold{Trace: w.trace}
	}
	return update
}

// Submit валидирует черновик и отправляет обновление.
// Ошибки валидации возвращаются как domain.FieldErrors, отказ API - как ErrSubmitFailed.
func (w *EditWorkflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return domain.ErrSubmitInProgress
	}

	errs := w.validate()
	if len(errs) > 0 {
		w.errors = errs
		w.mu.Unlock()
		return errs
	}

	w.errors = nil
	w.submitting = true
	update := w.update()
	w.mu.Unlock()

	err := w.updater.Execute(ctx, update)

	w.mu.Lock()
	w.submitting = false
	if err != nil {
		w.errors = domain.FieldErrors{domain.FormErrorKey: MsgUpdateFailed}
		w.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	w.mu.Unlock()

	w.callbacks.success()
	w.Close()
	return nil
}

// Close сбрасывает черновик к исходному объекту и закрывает редактирование
func (w *EditWorkflow) Close() {
	w.mu.Lock()
	w.reset()
	w.mu.Unlock()

	w.callbacks.close()
}
