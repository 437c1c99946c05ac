package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rpgo/portfolio-montecarlo/internal/api/models"
	"github.com/rpgo/portfolio-montecarlo/internal/calculation"
	"github.com/rpgo/portfolio-montecarlo/internal/domain"
	"github.com/rpgo/portfolio-montecarlo/internal/storage"
)

// DefaultListLimit caps GET /api/v1/simulations when no limit is given.
const DefaultListLimit = 50

// SimulationHandler handles simulation-related requests
type SimulationHandler struct {
	store     storage.RunStore
	maxTrials int
	workers   int
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewSimulationHandler creates a new simulation handler. maxTrials <= 0
// disables the per-request trial limit.
func NewSimulationHandler(store storage.RunStore, maxTrials, workers int, log logrus.FieldLogger) *SimulationHandler {
	return &SimulationHandler{
		store:     store,
		maxTrials: maxTrials,
		workers:   workers,
		log:       log,
		now:       time.Now,
	}
}

// RunSimulation handles POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(models.CodeInvalidRequest, err.Error()))
		return
	}

	params := req.Parameters()
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, invalidParameterResponse(err))
		return
	}
	if h.maxTrials > 0 && params.Trials > h.maxTrials {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeTrialsLimit,
				Message: fmt.Sprintf("trials %d exceeds the server limit of %d", params.Trials, h.maxTrials),
				Details: map[string]interface{}{
					"field":      string(domain.FieldTrials),
					"max_trials": h.maxTrials,
				},
			},
		})
		return
	}

	sim := calculation.NewMonteCarloSimulator(calculation.MonteCarloConfig{Workers: h.workers, Seed: req.Seed})
	sim.SetLogger(h.log)
	result, err := sim.RunSimulation(params)
	if err != nil {
		// parameters were validated above; anything left is unexpected
		h.log.WithError(err).Error("simulation failed")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.CodeInternalError, err.Error()))
		return
	}

	record := storage.NewRunRecord(req.Name, params, result.Summary, h.now())
	if err := h.store.Insert(c.Request.Context(), record); err != nil {
		h.log.WithError(err).WithField("id", record.ID).Error("failed to store simulation run")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.CodeStorageError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, models.NewSimulationResponse(record))
}

// GetSimulation handles GET /api/v1/simulations/:id
func (h *SimulationHandler) GetSimulation(c *gin.Context) {
	id := c.Param("id")
	record, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.NewErrorResponse(models.CodeNotFound, fmt.Sprintf("simulation %q not found", id)))
			return
		}
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.CodeStorageError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.NewSimulationResponse(record))
}

// ListSimulations handles GET /api/v1/simulations
func (h *SimulationHandler) ListSimulations(c *gin.Context) {
	limit := DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    models.CodeInvalidRequest,
					Message: "limit must be a positive integer",
					Details: map[string]interface{}{"limit": raw},
				},
			})
			return
		}
		limit = n
	}

	records, err := h.store.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.CodeStorageError, err.Error()))
		return
	}

	resp := models.SimulationListResponse{
		Simulations: make([]models.SimulationResponse, 0, len(records)),
		Count:       len(records),
	}
	for _, r := range records {
		resp.Simulations = append(resp.Simulations, models.NewSimulationResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

func invalidParameterResponse(err error) models.ErrorResponse {
	resp := models.NewErrorResponse(models.CodeInvalidParameter, err.Error())
	if field, ok := domain.InvalidField(err); ok {
		resp.Error.Details = map[string]interface{}{"field": string(field)}
	}
	return resp
}
