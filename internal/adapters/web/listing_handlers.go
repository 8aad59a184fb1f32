package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
	"github.com/KevinMolina1996/realestate-front/internal/core/workflow"
)

const multipartMemory = 8 << 20

var createFields = []string{"idOwner", "name", "address", "price", "year"}

// ListProperties обрабатывает GET /properties
func (h *PropertiesHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	committed := criteriaFromValues(query)
	panel := workflow.NewFilterPanel(committed, nil)

	var create *createFormView
	switch query.Get("panel") {
	case panelFilters:
		panel.Open()
	case panelCreate:
		create = h.newCreateFormView(h.formToken(""), nil, committed)
	}

	h.renderListing(w, r, http.StatusOK, committed, panel, create)
}

func (h *PropertiesHandler) renderListing(w http.ResponseWriter, r *http.Request, status int, committed domain.FilterCriteria, panel *workflow.FilterPanel, create *createFormView) {
	page := listingPage{
		CreateURL: listingURL(committed, panelCreate),
		Filters: filterPanelView{
			Open:      panel.IsOpen(),
			Draft:     panel.Draft(),
			Committed: criteriaValues(committed).Encode(),
			OpenURL:   listingURL(committed, panelFilters),
			CloseURL:  listingURL(committed, ""),
		},
		Create: create,
	}

	properties, err := h.listUC.Execute(r.Context(), committed)
	if err != nil {
		page.Notice = msgListingUnavailable
	} else {
		page.Properties = properties
	}

	h.render(w, r, status, pageListing, page)
}

// SubmitFilters обрабатывает POST /properties/filters (apply, reset, cancel)
func (h *PropertiesHandler) SubmitFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	committed := criteriaFromQuery(r.PostForm.Get("committed"))
	next := committed
	panel := workflow.NewFilterPanel(committed, func(c domain.FilterCriteria) { next = c })
	panel.Open()
	for _, field := range filterFields {
		_ = panel.SetField(field, r.PostForm.Get(field))
	}

	switch r.PostForm.Get("action") {
	case "apply":
		panel.Apply()
	case "reset":
		panel.Reset()
	case "cancel", "":
		panel.Cancel()
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	target := ""
	if panel.IsOpen() {
		target = panelFilters
	}
	http.Redirect(w, r, listingURL(next, target), http.StatusSeeOther)
}

// CreateProperty обрабатывает POST /properties (multipart с изображением)
func (h *PropertiesHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	r.Body = http.MaxBytesReader(w, r.Body, 4*h.maxImageBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		logger.Warn("Failed to parse create form", port.Fields{"error": err})
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	committed := criteriaFromQuery(r.FormValue("committed"))
	token := h.formToken(r.FormValue("token"))

	if r.FormValue("action") == "cancel" {
		if form, ok := h.createDrafts.Get(token); ok {
			form.Close()
		}
		http.Redirect(w, r, listingURL(committed, ""), http.StatusSeeOther)
		return
	}

	form := h.createForm(token)

	status := http.StatusConflict
	if !form.IsSubmitting() {
		for _, field := range createFields {
			_ = form.SetField(field, r.FormValue(field))
		}
		if file, header, err := r.FormFile("image"); err == nil {
			content, readErr := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
			file.Close()
			if readErr != nil {
				logger.Warn("Failed to read uploaded image", port.Fields{"error": readErr})
				http.Error(w, "invalid image upload", http.StatusBadRequest)
				return
			}
			form.SelectImage(header.Filename, content)
		}

		status = submitStatus(form.Submit(r.Context()), logger)
		if status == http.StatusSeeOther {
			http.Redirect(w, r, listingURL(committed, ""), http.StatusSeeOther)
			return
		}
	}

	h.renderListing(w, r, status, committed, workflow.NewFilterPanel(committed, nil), h.newCreateFormView(token, form, committed))
}

// submitStatus переводит результат отправки формы в HTTP-статус ответа
func submitStatus(err error, logger port.LoggerPort) int {
	var fieldErrs domain.FieldErrors
	switch {
	case err == nil:
		return http.StatusSeeOther
	case errors.Is(err, domain.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.As(err, &fieldErrs):
		logger.Debug("Form validation failed", port.Fields{"invalid_fields": len(fieldErrs)})
		return http.StatusUnprocessableEntity
	case errors.Is(err, workflow.ErrSubmitFailed):
		return http.StatusBadGateway
	default:
		logger.Error("Unexpected form submit error", err, nil)
		return http.StatusInternalServerError
	}
}
