package web

import (
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/workflow"
)

const (
	panelFilters = "filters"
	panelCreate  = "create"
	panelEdit    = "edit"
)

const msgListingUnavailable = "No se pudieron cargar las propiedades."

type listingPage struct {
	Properties []domain.Property
	Notice     string
	CreateURL  string
	Filters    filterPanelView
	Create     *createFormView
}

type filterPanelView struct {
	Open      bool
	Draft     workflow.FilterDraft
	Committed string
	OpenURL   string
	CloseURL  string
}

type createFormView struct {
	Token      string
	Committed  string
	CloseURL   string
	Draft      workflow.CreateDraft
	Errors     domain.FieldErrors
	Submitting bool
	MaxImage   string
}

type detailPage struct {
	Property domain.Property
	Owner    *domain.Owner
	EditURL  string
	Edit     *editFormView
}

type editFormView struct {
	Token            string
	ActionURL        string
	CloseURL         string
	Draft            domain.Property
	Trace            domain.PropertyTrace
	Sold             bool
	Errors           domain.FieldErrors
	Submitting       bool
	AdditionalTraces int
}

type notFoundPage struct {
	ID string
}

func newEditFormView(token string, wf *workflow.EditWorkflow) *editFormView {
	seed := wf.Seed()
	return &editFormView{
		Token:            token,
		ActionURL:        detailURL(seed.ID, ""),
		CloseURL:         detailURL(seed.ID, ""),
		Draft:            wf.Draft(),
		Trace:            wf.Trace(),
		Sold:             wf.Sold(),
		Errors:           wf.Errors(),
		Submitting:       wf.IsSubmitting(),
		AdditionalTraces: wf.AdditionalTraces(),
	}
}
