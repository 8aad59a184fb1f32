package web

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
	"github.com/KevinMolina1996/realestate-front/internal/core/port/usecases_port"
	"github.com/KevinMolina1996/realestate-front/internal/core/workflow"
)

type HandlerOptions struct {
	MaxImageBytes int64
	DraftTTL      time.Duration
}

// PropertiesHandler - страницы списка и карточки объекта.
// Открытые формы живут в реестрах черновиков между запросами.
type PropertiesHandler struct {
	listUC    usecases_port.ListPropertiesUseCase
	detailsUC usecases_port.GetPropertyDetailsUseCase
	createUC  usecases_port.CreatePropertyUseCase
	updateUC  usecases_port.UpdatePropertyUseCase

	createDrafts *workflow.Sessions[*workflow.CreateForm]
	editDrafts   *workflow.Sessions[*workflow.EditWorkflow]

	renderer      *Renderer
	maxImageBytes int64
}

func NewPropertiesHandler(
	listUC usecases_port.ListPropertiesUseCase,
	detailsUC usecases_port.GetPropertyDetailsUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	renderer *Renderer,
	opts HandlerOptions,
) *PropertiesHandler {
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = workflow.DefaultMaxImageBytes
	}
	return &PropertiesHandler{
		listUC:        listUC,
		detailsUC:     detailsUC,
		createUC:      createUC,
		updateUC:      updateUC,
		createDrafts:  workflow.NewSessions[*workflow.CreateForm](opts.DraftTTL),
		editDrafts:    workflow.NewSessions[*workflow.EditWorkflow](opts.DraftTTL),
		renderer:      renderer,
		maxImageBytes: opts.MaxImageBytes,
	}
}

// RunDraftJanitor чистит просроченные черновики до отмены контекста
func (h *PropertiesHandler) RunDraftJanitor(ctx context.Context, interval time.Duration, logger port.LoggerPort) {
	janitorLogger := logger.WithFields(port.Fields{"component": "draft_janitor"})
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.createDrafts.Run(ctx, interval, func(removed int) {
			janitorLogger.Debug("Expired create drafts removed", port.Fields{"removed": removed, "open": h.createDrafts.Len()})
		})
	}()
	h.editDrafts.Run(ctx, interval, func(removed int) {
		janitorLogger.Debug("Expired edit drafts removed", port.Fields{"removed": removed, "open": h.editDrafts.Len()})
	})
	<-done
}

// formToken принимает только токены, выданные нами; остальное заменяется новым
func (h *PropertiesHandler) formToken(raw string) string {
	if _, err := uuid.Parse(raw); err == nil {
		return raw
	}
	return uuid.NewString()
}

func (h *PropertiesHandler) createForm(token string) *workflow.CreateForm {
	form, _ := h.createDrafts.GetOrPut(token, func() *workflow.CreateForm {
		return workflow.NewCreateForm(h.createUC, workflow.Callbacks{
			OnClose: func() { h.createDrafts.Close(token) },
		}, workflow.WithMaxImageBytes(h.maxImageBytes))
	})
	return form
}

// editWorkflow достает сессию редактирования; сессия другого объекта не переиспользуется
func (h *PropertiesHandler) editWorkflow(token string, seed domain.Property) *workflow.EditWorkflow {
	open := func() *workflow.EditWorkflow {
		return workflow.OpenEditWorkflow(seed, h.updateUC, workflow.Callbacks{
			OnClose: func() { h.editDrafts.Close(token) },
		})
	}
	wf, existed := h.editDrafts.GetOrPut(token, open)
	if existed && wf.Seed().ID != seed.ID {
		wf = open()
		h.editDrafts.Put(token, wf)
	}
	return wf
}

func (h *PropertiesHandler) newCreateFormView(token string, form *workflow.CreateForm, committed domain.FilterCriteria) *createFormView {
	view := &createFormView{
		Token:     token,
		Committed: criteriaValues(committed).Encode(),
		CloseURL:  listingURL(committed, ""),
		Errors:    domain.FieldErrors{},
	}
	limit := h.maxImageBytes
	if form != nil {
		limit = form.MaxImageBytes()
		view.Draft = form.Draft()
		view.Errors = form.Errors()
		view.Submitting = form.IsSubmitting()
	}
	view.MaxImage = humanize.IBytes(uint64(limit))
	return view
}
