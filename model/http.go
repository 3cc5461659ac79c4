package model

type GridResponse struct {
	ID string `json:"id"`
	GridResult
}

type ErrorResponse struct {
	ID    string `json:"id"`
	Error string `json:"detail"`
}
