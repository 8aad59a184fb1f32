package workflow

import (
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

type panelState int

const (
	panelClosed panelState = iota
	panelOpen
)

// FilterDraft - то, что пользователь набрал в панели, как есть
type FilterDraft struct {
	Name     string
	Address  string
	MinPrice string
	MaxPrice string
}

// FilterPanel держит локальный черновик фильтров и отдает наружу
// зафиксированный набор только по Apply/Reset.
type FilterPanel struct {
	state    panelState
	draft    FilterDraft
	onSubmit func(domain.FilterCriteria)
}

func NewFilterPanel(committed domain.FilterCriteria, onSubmit func(domain.FilterCriteria)) *FilterPanel {
	p := &FilterPanel{onSubmit: onSubmit}
	p.Seed(committed)
	return p
}

// Seed пересобирает черновик из зафиксированных фильтров
func (p *FilterPanel) Seed(committed domain.FilterCriteria) {
	p.draft = FilterDraft{}
	if committed.Name != nil {
		p.draft.Name = *committed.Name
	}
	if committed.Address != nil {
		p.draft.Address = *committed.Address
	}
	if committed.MinPrice != nil {
		p.draft.MinPrice = formatNumber(*committed.MinPrice)
	}
	if committed.MaxPrice != nil {
		p.draft.MaxPrice = formatNumber(*committed.MaxPrice)
	}
}

func (p *FilterPanel) IsOpen() bool { return p.state == panelOpen }

func (p *FilterPanel) Draft() FilterDraft { return p.draft }

func (p *FilterPanel) Open() { p.state = panelOpen }

// Cancel закрывает панель, черновик остается
func (p *FilterPanel) Cancel() { p.state = panelClosed }

func (p *FilterPanel) Close() { p.state = panelClosed }

// SetField - без валидации, любой текст принимается
func (p *FilterPanel) SetField(name, value string) error {
	switch name {
	case "name":
		p.draft.Name = value
	case "address":
		p.draft.Address = value
	case "minPrice":
		p.draft.MinPrice = value
	case "maxPrice":
		p.draft.MaxPrice = value
	default:
		return unknownField(name)
	}
	return nil
}

// Criteria собирает набор фильтров из черновика: пустые поля и нераспознанные числа не попадают в набор
func (p *FilterPanel) Criteria() domain.FilterCriteria {
	var c domain.FilterCriteria
	if p.draft.Name != "" {
		c.Name = domain.StringPtr(p.draft.Name)
	}
	if p.draft.Address != "" {
		c.Address = domain.StringPtr(p.draft.Address)
	}
	if v, ok := parseOptional(p.draft.MinPrice); ok {
		c.MinPrice = domain.Float64Ptr(v)
	}
	if v, ok := parseOptional(p.draft.MaxPrice); ok {
		c.MaxPrice = domain.Float64Ptr(v)
	}
	return c
}

// Apply отправляет набор фильтров и закрывает панель
func (p *FilterPanel) Apply() domain.FilterCriteria {
	criteria := p.Criteria()
	if p.onSubmit != nil {
		p.onSubmit(criteria)
	}
	p.state = panelClosed
	return criteria
}

// Reset сбрасывает все ограничения. Состояние панели не меняется.
func (p *FilterPanel) Reset() {
	p.draft = FilterDraft{}
	if p.onSubmit != nil {
		p.onSubmit(domain.FilterCriteria{})
	}
}
