package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

var fixedNow = time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC)

func unsoldProperty() domain.Property {
	return domain.Property{
		ID:           "prop-1",
		Name:         "Casa Bonita",
		Address:      "Calle Falsa 123",
		Price:        300000,
		CodeInternal: "CB-01",
		Year:         2010,
		OwnerID:      "owner-1",
		Image:        domain.PropertyImage{File: "aGVsbG8="},
	}
}

func soldProperty() domain.Property {
	p := unsoldProperty()
	p.Traces = []domain.PropertyTrace{
		{DateSale: "2023-05-01T00:00:00Z", Name: "Venta a Juan", Value: 280000, Tax: 1200},
		{DateSale: "2021-01-01", Name: "Venta previa", Value: 200000},
	}
	return p
}

func openEdit(seed domain.Property, updater *fakeUpdater, cb Callbacks) *EditWorkflow {
	return OpenEditWorkflow(seed, updater, cb, WithClock(func() time.Time { return fixedNow }))
}

func TestEditWorkflow_SeedWithoutTraces(t *testing.T) {
	w := openEdit(unsoldProperty(), &fakeUpdater{}, Callbacks{})

	assert.False(t, w.Sold())
	assert.Equal(t, domain.PropertyTrace{DateSale: "2024-03-09", Name: "Venta", Value: 300000}, w.Trace())
	assert.Equal(t, 0, w.AdditionalTraces())
}

func TestEditWorkflow_SeedFromFirstTrace(t *testing.T) {
	w := openEdit(soldProperty(), &fakeUpdater{}, Callbacks{})

	assert.True(t, w.Sold())
	assert.Equal(t, domain.PropertyTrace{DateSale: "2023-05-01", Name: "Venta a Juan", Value: 280000, Tax: 1200}, w.Trace())
	assert.Equal(t, 1, w.AdditionalTraces())
}

func TestEditWorkflow_SeedTraceValueFallsBackToPrice(t *testing.T) {
	p := unsoldProperty()
	p.Traces = []domain.PropertyTrace{{DateSale: "2023-05-01", Name: "Venta"}}

	w := openEdit(p, &fakeUpdater{}, Callbacks{})

	assert.Equal(t, 300000.0, w.Trace().Value)
}

func TestEditWorkflow_UnsoldSubmitSkipsSaleValidation(t *testing.T) {
	updater := &fakeUpdater{}
	rec := &recorder{}
	w := openEdit(unsoldProperty(), updater, rec.callbacks())
	require.NoError(t, w.SetTraceField("value", "0"))
	require.NoError(t, w.SetTraceField("tax", "-5"))
	require.NoError(t, w.SetTraceField("dateSale", ""))

	require.NoError(t, w.Submit(context.Background()))

	calls := updater.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.PropertyUpdate{
		PropertyID: "prop-1",
		Property: domain.PropertyFields{
			ID:      "prop-1",
			OwnerID: "owner-1",
			Name:    "Casa Bonita",
			Address: "Calle Falsa 123",
			Price:   300000,
			Year:    2010,
		},
		Sale: domain.Unsold{},
	}, calls[0])
	_, sold := calls[0].IsSold()
	assert.False(t, sold)
	assert.Equal(t, []string{"success", "close"}, rec.events)
}

func TestEditWorkflow_SoldSubmitValidatesSale(t *testing.T) {
	updater := &fakeUpdater{}
	w := openEdit(unsoldProperty(), updater, Callbacks{})
	w.SetSold(true)
	require.NoError(t, w.SetTraceField("value", "0"))

	err := w.Submit(context.Background())

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, domain.FieldErrors{"value": "El valor debe ser mayor a 0"}, w.Errors())
	assert.Empty(t, updater.Calls())
	assert.True(t, w.Sold(), "draft is preserved on validation failure")
}

func TestEditWorkflow_AllViolationsReported(t *testing.T) {
	w := openEdit(unsoldProperty(), &fakeUpdater{}, Callbacks{})
	require.NoError(t, w.SetPropertyField("name", ""))
	require.NoError(t, w.SetPropertyField("address", ""))
	require.NoError(t, w.SetPropertyField("price", "gratis"))
	require.NoError(t, w.SetPropertyField("year", "0"))
	w.SetSold(true)
	require.NoError(t, w.SetTraceField("dateSale", ""))
	require.NoError(t, w.SetTraceField("value", "-1"))
	require.NoError(t, w.SetTraceField("tax", "-0.5"))

	require.Error(t, w.Submit(context.Background()))

	assert.Equal(t, domain.FieldErrors{
		"name":     "El nombre es obligatorio",
		"address":  "La dirección es obligatoria",
		"price":    "El precio debe ser mayor a 0",
		"year":     "El año debe ser válido",
		"dateSale": "La fecha de venta es obligatoria",
		"value":    "El valor debe ser mayor a 0",
		"tax":      "El impuesto no puede ser negativo",
	}, w.Errors())
}

func TestEditWorkflow_SoldSubmitSendsTrace(t *testing.T) {
	updater := &fakeUpdater{}
	w := openEdit(unsoldProperty(), updater, Callbacks{})
	w.SetSold(true)
	require.NoError(t, w.SetTraceField("name", "Venta a Ana"))
	require.NoError(t, w.SetTraceField("value", "310000"))
	require.NoError(t, w.SetTraceField("tax", "1500"))
	require.NoError(t, w.SetPropertyField("price", "320000"))

	require.NoError(t, w.Submit(context.Background()))

	calls := updater.Calls()
	require.Len(t, calls, 1)
	trace, sold := calls[0].IsSold()
	assert.True(t, sold)
	assert.Equal(t, domain.PropertyTrace{DateSale: "2024-03-09", Name: "Venta a Ana", Value: 310000, Tax: 1500}, trace)
	assert.Equal(t, 320000.0, calls[0].Property.Price)
}

func TestEditWorkflow_SubmitFailure(t *testing.T) {
	updater := &fakeUpdater{err: errors.New("connection refused")}
	rec := &recorder{}
	w := openEdit(unsoldProperty(), updater, rec.callbacks())
	require.NoError(t, w.SetPropertyField("name", "Casa Renovada"))

	err := w.Submit(context.Background())

	require.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, "Error al actualizar la propiedad. Intente de nuevo.", w.Errors().Form())
	assert.Len(t, w.Errors(), 1)
	assert.Equal(t, "Casa Renovada", w.Draft().Name)
	assert.NotContains(t, rec.events, "success")
	assert.False(t, w.IsSubmitting())
}

func TestEditWorkflow_SuccessResets(t *testing.T) {
	w := openEdit(soldProperty(), &fakeUpdater{}, Callbacks{})
	require.NoError(t, w.SetPropertyField("name", "Otra"))

	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, "Casa Bonita", w.Draft().Name)
	assert.False(t, w.Sold())
	assert.Empty(t, w.Errors())
}

func TestEditWorkflow_CloseDiscardsEdits(t *testing.T) {
	rec := &recorder{}
	w := openEdit(unsoldProperty(), &fakeUpdater{}, rec.callbacks())
	require.NoError(t, w.SetPropertyField("address", "Avenida Siempre Viva"))
	require.NoError(t, w.SetTraceField("tax", "99"))
	w.SetSold(true)

	w.Close()

	assert.Equal(t, unsoldProperty(), w.Draft())
	assert.Equal(t, 0.0, w.Trace().Tax)
	assert.False(t, w.Sold())
	assert.Equal(t, []string{"close"}, rec.events)
}

func TestEditWorkflow_UnknownFields(t *testing.T) {
	w := openEdit(unsoldProperty(), &fakeUpdater{}, Callbacks{})
	assert.ErrorIs(t, w.SetPropertyField("image", "x"), ErrUnknownField)
	assert.ErrorIs(t, w.SetTraceField("buyer", "x"), ErrUnknownField)
}

func TestEditWorkflow_RejectsConcurrentSubmit(t *testing.T) {
	updater := &fakeUpdater{started: make(chan struct{}), release: make(chan struct{})}
	w := openEdit(unsoldProperty(), updater, Callbacks{})

	done := make(chan error, 1)
	go func() { done <- w.Submit(context.Background()) }()
	<-updater.started

	assert.ErrorIs(t, w.Submit(context.Background()), domain.ErrSubmitInProgress)

	close(updater.release)
	require.NoError(t, <-done)
	assert.Len(t, updater.Calls(), 1)
}

func TestEditWorkflow_SeedIsNotAliased(t *testing.T) {
	seed := soldProperty()
	w := openEdit(seed, &fakeUpdater{}, Callbacks{})

	seed.Traces[0].Name = "mutado"

	assert.Equal(t, "Venta a Juan", w.Seed().Traces[0].Name)
}
