package responses

type ResponseDTO struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponseDTO struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	DevMessage string      `json:"dev_message,omitempty"`
	Locations  interface{} `json:"locations,omitempty"`
}

type Pagination struct {
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	TotalDoctors int  `json:"total_doctors"`
	HasNext      bool `json:"has_next"`
}

type HealthCheck struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
