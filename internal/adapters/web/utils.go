package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/workflow"
)

var filterFields = []string{"name", "address", "minPrice", "maxPrice"}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// criteriaFromValues читает фильтры из query/формы по тем же правилам, что и панель фильтров
func criteriaFromValues(values url.Values) domain.FilterCriteria {
	panel := workflow.NewFilterPanel(domain.FilterCriteria{}, nil)
	for _, field := range filterFields {
		_ = panel.SetField(field, values.Get(field))
	}
	return panel.Criteria()
}

// criteriaFromQuery - то же для закодированной строки запроса (скрытое поле committed)
func criteriaFromQuery(rawQuery string) domain.FilterCriteria {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return domain.FilterCriteria{}
	}
	return criteriaFromValues(values)
}

func criteriaValues(c domain.FilterCriteria) url.Values {
	q := url.Values{}
	if c.Name != nil {
		q.Set("name", *c.Name)
	}
	if c.Address != nil {
		q.Set("address", *c.Address)
	}
	if c.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*c.MinPrice, 'f', -1, 64))
	}
	if c.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*c.MaxPrice, 'f', -1, 64))
	}
	return q
}

// listingURL - адрес списка с зафиксированными фильтрами и, при необходимости, открытой панелью
func listingURL(c domain.FilterCriteria, panel string) string {
	q := criteriaValues(c)
	if panel != "" {
		q.Set("panel", panel)
	}
	if len(q) == 0 {
		return "/properties"
	}
	return "/properties?" + q.Encode()
}

func detailURL(id, panel string) string {
	u := "/properties/" + url.PathEscape(id)
	if panel != "" {
		u += "?panel=" + panel
	}
	return u
}
