package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
	"github.com/KevinMolina1996/realestate-front/internal/core/workflow"
)

const maxEditFormBytes = 1 << 20

var (
	editPropertyFields = []string{"name", "address", "price", "year"}
	// поле формы -> поле записи о продаже
	editTraceFields = map[string]string{
		"dateSale": "dateSale",
		"saleName": "name",
		"value":    "value",
		"tax":      "tax",
	}
)

// PropertyDetails обрабатывает GET /properties/{id}
func (h *PropertiesHandler) PropertyDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	details, err := h.detailsUC.Execute(r.Context(), id)
	if err != nil {
		h.renderNotFound(w, r, id)
		return
	}

	page := detailPage{
		Property: details.Property,
		Owner:    details.Owner,
		EditURL:  detailURL(id, panelEdit),
	}
	if r.URL.Query().Get("panel") == panelEdit {
		// черновик не сохраняется, пока пользователь ничего не отправил
		wf := workflow.OpenEditWorkflow(details.Property, h.updateUC, workflow.Callbacks{})
		page.Edit = newEditFormView(h.formToken(""), wf)
	}

	h.render(w, r, http.StatusOK, pageDetail, page)
}

// UpdateProperty обрабатывает POST /properties/{id} (save, cancel)
func (h *PropertiesHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "UpdateProperty",
		"property_id": id,
	})

	r.Body = http.MaxBytesReader(w, r.Body, maxEditFormBytes)
	if err := r.ParseForm(); err != nil {
		logger.Warn("Failed to parse edit form", port.Fields{"error": err})
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	details, err := h.detailsUC.Execute(r.Context(), id)
	if err != nil {
		h.renderNotFound(w, r, id)
		return
	}

	token := h.formToken(r.PostForm.Get("token"))

	if r.PostForm.Get("action") == "cancel" {
		if wf, ok := h.editDrafts.Get(token); ok {
			wf.Close()
		}
		http.Redirect(w, r, detailURL(id, ""), http.StatusSeeOther)
		return
	}

	wf := h.editWorkflow(token, details.Property)

	status := http.StatusConflict
	if !wf.IsSubmitting() {
		for _, field := range editPropertyFields {
			_ = wf.SetPropertyField(field, r.PostForm.Get(field))
		}
		for formField, traceField := range editTraceFields {
			_ = wf.SetTraceField(traceField, r.PostForm.Get(formField))
		}
		wf.SetSold(r.PostForm.Get("sold") != "")

		status = submitStatus(wf.Submit(r.Context()), logger)
		if status == http.StatusSeeOther {
			http.Redirect(w, r, detailURL(id, ""), http.StatusSeeOther)
			return
		}
	}

	h.render(w, r, status, pageDetail, detailPage{
		Property: details.Property,
		Owner:    details.Owner,
		EditURL:  detailURL(id, panelEdit),
		Edit:     newEditFormView(token, wf),
	})
}

func (h *PropertiesHandler) renderNotFound(w http.ResponseWriter, r *http.Request, id string) {
	h.render(w, r, http.StatusNotFound, pageNotFound, notFoundPage{ID: id})
}
