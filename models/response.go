package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type ProductListResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Data     []Product   `json:"data"`
	Total    int         `json:"total"`
	Filters  FilterState `json:"filters"`
	Query    string      `json:"query"`
	Location string      `json:"location"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	CatalogSize     int    `json:"catalog_size"`
	CartSubscribers int    `json:"cart_subscribers"`
}
