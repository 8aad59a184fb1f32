package properties_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/contracts"
	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

const propertiesResource = "properties"

// Client - клиент для properties API. Ретраев и собственных таймаутов нет:
// поведение определяет транспорт по умолчанию.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid properties API url %q: %w", baseURL, err)
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{},
	}, nil
}

// StatusError - API ответил статусом вне 2xx. Разворачивается в доменный sentinel операции.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
	kind       error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: properties API returned non-success status code %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(contextkeys.TraceHeader, traceID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

func (c *Client) checkStatus(resp *http.Response, op string, kind error) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(bodyBytes), kind: kind}
}

func (c *Client) propertiesURL(segments ...string) string {
	elems := append([]string{propertiesResource}, segments...)
	return c.baseURL.JoinPath(elems...).String()
}

// buildListQuery - в запрос попадают только заданные фильтры; нулевая цена считается незаданной
func buildListQuery(filters domain.FilterCriteria) url.Values {
	q := url.Values{}
	if filters.Name != nil && *filters.Name != "" {
		q.Set("name", *filters.Name)
	}
	if filters.Address != nil && *filters.Address != "" {
		q.Set("address", *filters.Address)
	}
	if filters.MinPrice != nil && *filters.MinPrice != 0 {
		q.Set("minPrice", strconv.FormatFloat(*filters.MinPrice, 'f', -1, 64))
	}
	if filters.MaxPrice != nil && *filters.MaxPrice != 0 {
		q.Set("maxPrice", strconv.FormatFloat(*filters.MaxPrice, 'f', -1, 64))
	}
	return q
}

func (c *Client) ListProperties(ctx context.Context, filters domain.FilterCriteria) ([]domain.Property, error) {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertiesApiClient",
		"method":    "ListProperties",
	})

	endpoint := c.propertiesURL()
	if q := buildListQuery(filters); len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	clientLogger.Debug("Sending request to properties API", port.Fields{"url": endpoint})

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to properties API", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "list properties", domain.ErrFetchProperties); err != nil {
		clientLogger.Error("Received error response from properties API", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var objects []propertyResponse
	if err := decodeValidated(resp.Body, contracts.PropertyList, &objects); err != nil {
		clientLogger.Error("Failed to decode response from properties API", err, nil)
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchProperties, err)
	}

	result := make([]domain.Property, len(objects))
	for i, dto := range objects {
		result[i] = toDomainProperty(dto)
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"objects_count": len(result)})
	return result, nil
}

func (c *Client) GetPropertyByID(ctx context.Context, id string) (*domain.PropertyWithOwner, error) {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PropertiesApiClient",
		"method":      "GetPropertyByID",
		"property_id": id,
	})

	if id == "" {
		return nil, fmt.Errorf("%w: empty id", domain.ErrPropertyNotFound)
	}

	endpoint := c.propertiesURL(url.PathEscape(id))
	clientLogger.Debug("Sending request to properties API", port.Fields{"url": endpoint})

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to properties API", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "get property", domain.ErrPropertyNotFound); err != nil {
		clientLogger.Warn("Property was not returned by properties API", port.Fields{"status_code": resp.StatusCode, "error": err})
		return nil, err
	}

	var dto propertyWithOwnerResponse
	if err := decodeValidated(resp.Body, contracts.PropertyWithOwner, &dto); err != nil {
		clientLogger.Error("Failed to decode response from properties API", err, nil)
		return nil, fmt.Errorf("decode property %s: %w", id, err)
	}

	return &domain.PropertyWithOwner{
		Property: toDomainProperty(dto.Property),
		Owner:    toDomainOwner(dto.Owner),
	}, nil
}

func (c *Client) CreateProperty(ctx context.Context, property domain.NewProperty) error {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertiesApiClient",
		"method":    "CreateProperty",
	})

	reqBody, err := json.Marshal(toCreateRequest(property))
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	endpoint := c.propertiesURL()
	clientLogger.Debug("Sending request to create property", port.Fields{"url": endpoint, "file_name": property.FileName})

	resp, err := c.doRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		clientLogger.Error("Failed to perform request to properties API", err, nil)
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "create property", domain.ErrCreateProperty); err != nil {
		clientLogger.Error("Received error response from properties API", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	clientLogger.Info("Property created", nil)
	return nil
}

func (c *Client) UpdateProperty(ctx context.Context, update domain.PropertyUpdate) error {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PropertiesApiClient",
		"method":      "UpdateProperty",
		"property_id": update.PropertyID,
	})

	reqBody, err := json.Marshal(toUpdateRequest(update))
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	endpoint := c.propertiesURL(url.PathEscape(update.PropertyID))
	clientLogger.Debug("Sending request to update property", port.Fields{"url": endpoint})

	resp, err := c.doRequest(ctx, http.MethodPut, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		clientLogger.Error("Failed to perform request to properties API", err, nil)
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "update property", domain.ErrUpdateProperty); err != nil {
		clientLogger.Error("Received error response from properties API", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	clientLogger.Info("Property updated", nil)
	return nil
}

// decodeValidated сначала проверяет тело по JSON-схеме, потом декодирует
func decodeValidated(r io.Reader, schemaKey string, dst any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if err := contracts.Validate(schemaKey, body); err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}
