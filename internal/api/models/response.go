package models

import (
	"time"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// SimulationResponse represents one stored simulation run
type SimulationResponse struct {
	ID         string                      `json:"id"`
	Name       string                      `json:"name,omitempty"`
	Parameters domain.SimulationParameters `json:"parameters"`
	Result     domain.SimulationResult     `json:"result"`
	CreatedAt  time.Time                   `json:"created_at"`
}

// SimulationListResponse represents the response from listing runs
type SimulationListResponse struct {
	Simulations []SimulationResponse `json:"simulations"`
	Count       int                  `json:"count"`
}

// NewSimulationResponse converts a stored run into its API representation.
func NewSimulationResponse(r *domain.RunRecord) SimulationResponse {
	return SimulationResponse{
		ID:         r.ID,
		Name:       r.Name,
		Parameters: r.Parameters,
		Result:     r.Result,
		CreatedAt:  r.CreatedAt,
	}
}

// Error codes returned in ErrorDetail.Code
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeTrialsLimit      = "TRIALS_LIMIT"
	CodeNotFound         = "NOT_FOUND"
	CodeStorageError     = "STORAGE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewErrorResponse builds an ErrorResponse without details.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
