package properties_api_client

// DTO ответа properties API. Поля должны совпадать с контрактом в internal/contracts/schemas.
type propertyResponse struct {
	IDProperty   string          `json:"idProperty"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Price        float64         `json:"price"`
	CodeInternal string          `json:"codeInternal"`
	Year         float64         `json:"year"`
	IDOwner      string          `json:"idOwner"`
	Image        *imageResponse  `json:"image"`
	Traces       []traceResponse `json:"traces"`
	CreatedAt    string          `json:"createdAt"`
}

type imageResponse struct {
	ID      string `json:"_id"`
	File    string `json:"file"`
	Enabled bool   `json:"enabled"`
}

type traceResponse struct {
	DateSale string  `json:"dateSale"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Tax      float64 `json:"tax"`
}

type ownerResponse struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	BirthDay string `json:"birthDay"`
}

type propertyWithOwnerResponse struct {
	Property propertyResponse `json:"property"`
	Owner    *ownerResponse   `json:"owner"`
}

// DTO запросов

type createPropertyRequest struct {
	ID       string  `json:"id,omitempty"`
	IDOwner  string  `json:"idOwner"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Price    float64 `json:"price"`
	Year     int     `json:"year"`
	FileName string  `json:"fileName,omitempty"`
	Image    string  `json:"image,omitempty"`
}

type propertyFieldsRequest struct {
	ID      string  `json:"id"`
	IDOwner string  `json:"idOwner"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
	Year    int     `json:"year"`
}

type traceRequest struct {
	DateSale string  `json:"dateSale"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Tax      float64 `json:"tax"`
}

// updatePropertyRequest - trace уходит как null, если объект не продан
type updatePropertyRequest struct {
	PropertyID string                `json:"propertyId"`
	Property   propertyFieldsRequest `json:"property"`
	Trace      *traceRequest         `json:"trace"`
	IsSold     bool                  `json:"isSold"`
}
