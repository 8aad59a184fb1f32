package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port/usecases_port"
)

const DefaultMaxImageBytes int64 = 5 << 20

// CreateDraft - значения полей формы создания. Price и Year хранятся уже разобранными.
type CreateDraft struct {
	OwnerID string
	Name    string
	Address string
	Price   float64
	Year    int
	Image   *ImageUpload
}

type CreateFormOption func(*CreateForm)

func WithMaxImageBytes(n int64) CreateFormOption {
	return func(f *CreateForm) {
		if n > 0 {
			f.maxImageBytes = n
		}
	}
}

// CreateForm - форма создания объекта. Одновременно выполняется не больше одной отправки.
type CreateForm struct {
	mu            sync.Mutex
	creator       usecases_port.CreatePropertyUseCase
	callbacks     Callbacks
	maxImageBytes int64

	draft      CreateDraft
	errors     domain.FieldErrors
	submitting bool
}

func NewCreateForm(creator usecases_port.CreatePropertyUseCase, callbacks Callbacks, opts ...CreateFormOption) *CreateForm {
	f := &CreateForm{
		creator:       creator,
		callbacks:     callbacks,
		maxImageBytes: DefaultMaxImageBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *CreateForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "idOwner":
		f.draft.OwnerID = value
	case "name":
		f.draft.Name = value
	case "address":
		f.draft.Address = value
	case "price":
		f.draft.Price = ParseLenient(value)
	case "year":
		f.draft.Year = ParseLenientInt(value)
	default:
		return unknownField(name)
	}
	return nil
}

// SelectImage запоминает файл как data URL. Пустое содержимое снимает выбор.
func (f *CreateForm) SelectImage(fileName string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(content) == 0 {
		f.draft.Image = nil
		return
	}
	upload := NewImageUpload(fileName, content)
	f.draft.Image = &upload
}

func (f *CreateForm) Draft() CreateDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *CreateForm) Errors() domain.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.errors)
}

func (f *CreateForm) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *CreateForm) MaxImageBytes() int64 { return f.maxImageBytes }

func (f *CreateForm) validate() domain.FieldErrors {
	errs := domain.FieldErrors{}
	if f.draft.Name == "" {
		errs["name"] = msgNameRequired
	}
	if f.draft.Address == "" {
		errs["address"] = msgAddressRequired
	}
	if f.draft.Price <= 0 {
		errs["price"] = msgPricePositive
	}
	if f.draft.Year <= 0 {
		errs["year"] = msgYearInvalid
	}
	switch img := f.draft.Image; {
	case img == nil:
		errs["image"] = msgImageRequired
	case !img.IsImage():
		errs["image"] = msgImageNotImage
	case img.Size > f.maxImageBytes:
		errs["image"] = fmt.Sprintf(msgImageTooLarge, humanize.IBytes(uint64(f.maxImageBytes)))
	}
	return errs
}

func (f *CreateForm) payload() domain.NewProperty {
	return domain.NewProperty{
		OwnerID:  f.draft.OwnerID,
		Name:     f.draft.Name,
		Address:  f.draft.Address,
		Price:    f.draft.Price,
		Year:     f.draft.Year,
		FileName: f.draft.Image.FileName,
		Image:    StripDataURLPrefix(f.draft.Image.DataURL),
	}
}

// Submit валидирует черновик и отправляет его в API.
// Ошибки валидации возвращаются как domain.FieldErrors, отказ API - как ErrSubmitFailed.
func (f *CreateForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return domain.ErrSubmitInProgress
	}

	errs := f.validate()
	if len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		return errs
	}

	f.errors = nil
	f.submitting = true
	payload := f.payload()
	f.mu.Unlock()

	err := f.creator.Execute(ctx, payload)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.errors = domain.FieldErrors{domain.FormErrorKey: MsgCreateFailed}
		f.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	f.mu.Unlock()

	f.callbacks.success()
	f.Close()
	return nil
}

// Close очищает форму и сообщает вызывающему коду о закрытии
func (f *CreateForm) Close() {
	f.mu.Lock()
	f.draft = CreateDraft{}
	f.errors = nil
	f.mu.Unlock()

	f.callbacks.close()
}

func copyErrors(errs domain.FieldErrors) domain.FieldErrors {
	if len(errs) == 0 {
		return domain.FieldErrors{}
	}
	out := make(domain.FieldErrors, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
