package workflow

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

func fillCreateForm(t *testing.T, form *CreateForm) {
	t.Helper()
	require.NoError(t, form.SetField("idOwner", "owner-1"))
	require.NoError(t, form.SetField("name", "Casa Bonita"))
	require.NoError(t, form.SetField("address", "Calle Falsa 123"))
	require.NoError(t, form.SetField("price", "250000"))
	require.NoError(t, form.SetField("year", "2015"))
	form.SelectImage("casa.png", pngBytes)
}

func TestCreateForm_EmptySubmitYieldsFiveErrors(t *testing.T) {
	creator := &fakeCreator{}
	form := NewCreateForm(creator, Callbacks{})

	err := form.Submit(context.Background())

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, domain.FieldErrors{
		"name":    "El nombre es obligatorio",
		"address": "La dirección es obligatoria",
		"price":   "El precio debe ser mayor a 0",
		"year":    "El año debe ser válido",
		"image":   "La imagen es obligatoria",
	}, form.Errors())
	assert.Empty(t, creator.Calls())
}

func TestCreateForm_SubmitSuccess(t *testing.T) {
	creator := &fakeCreator{}
	rec := &recorder{}
	form := NewCreateForm(creator, rec.callbacks())
	fillCreateForm(t, form)

	require.NoError(t, form.Submit(context.Background()))

	calls := creator.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.NewProperty{
		OwnerID:  "owner-1",
		Name:     "Casa Bonita",
		Address:  "Calle Falsa 123",
		Price:    250000,
		Year:     2015,
		FileName: "casa.png",
		Image:    base64.StdEncoding.EncodeToString(pngBytes),
	}, calls[0])

	assert.Equal(t, []string{"success", "close"}, rec.events)
	assert.Equal(t, CreateDraft{}, form.Draft())
	assert.Empty(t, form.Errors())
	assert.False(t, form.IsSubmitting())
}

func TestCreateForm_SubmitFailureKeepsDraft(t *testing.T) {
	apiErr := errors.New("502 bad gateway")
	creator := &fakeCreator{err: apiErr}
	rec := &recorder{}
	form := NewCreateForm(creator, rec.callbacks())
	fillCreateForm(t, form)
	before := form.Draft()

	err := form.Submit(context.Background())

	require.ErrorIs(t, err, ErrSubmitFailed)
	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, domain.FieldErrors{"form": "Error al crear la propiedad. Intente de nuevo."}, form.Errors())
	assert.Equal(t, before, form.Draft())
	assert.Empty(t, rec.events)
	assert.False(t, form.IsSubmitting())
}

func TestCreateForm_ImageChecks(t *testing.T) {
	t.Run("not an image", func(t *testing.T) {
		form := NewCreateForm(&fakeCreator{}, Callbacks{})
		fillCreateForm(t, form)
		form.SelectImage("notas.txt", []byte("hola mundo"))

		require.Error(t, form.Submit(context.Background()))
		assert.Equal(t, "El archivo debe ser una imagen", form.Errors()["image"])
	})

	t.Run("too large", func(t *testing.T) {
		form := NewCreateForm(&fakeCreator{}, Callbacks{}, WithMaxImageBytes(16))
		fillCreateForm(t, form)

		require.Error(t, form.Submit(context.Background()))
		assert.Equal(t, "La imagen supera el tamaño máximo de 16 B", form.Errors()["image"])
	})

	t.Run("cleared selection", func(t *testing.T) {
		form := NewCreateForm(&fakeCreator{}, Callbacks{})
		fillCreateForm(t, form)
		form.SelectImage("", nil)

		require.Error(t, form.Submit(context.Background()))
		assert.Equal(t, "La imagen es obligatoria", form.Errors()["image"])
	})
}

func TestCreateForm_RejectsConcurrentSubmit(t *testing.T) {
	creator := &fakeCreator{started: make(chan struct{}), release: make(chan struct{})}
	form := NewCreateForm(creator, Callbacks{})
	fillCreateForm(t, form)

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()
	<-creator.started

	assert.True(t, form.IsSubmitting())
	assert.ErrorIs(t, form.Submit(context.Background()), domain.ErrSubmitInProgress)

	close(creator.release)
	require.NoError(t, <-done)
	assert.Len(t, creator.Calls(), 1)
}

func TestCreateForm_CloseResets(t *testing.T) {
	rec := &recorder{}
	form := NewCreateForm(&fakeCreator{}, rec.callbacks())
	fillCreateForm(t, form)
	require.Error(t, form.SetField("rooms", "2"))

	form.Close()

	assert.Equal(t, CreateDraft{}, form.Draft())
	assert.Equal(t, []string{"close"}, rec.events)
}
