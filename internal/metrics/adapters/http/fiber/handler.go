package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"process-mining-service/internal/metrics/core/domain"
	"process-mining-service/internal/metrics/core/usecase"
	"process-mining-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context, in usecase.StatsInput) (*usecase.StatsResult, error)
}

type GetCasesUseCase interface {
	Execute(ctx context.Context, in usecase.CasesInput) ([]domain.CaseStats, error)
}

type GetHeatmapUseCase interface {
	Execute(ctx context.Context, in usecase.HeatmapInput) (*domain.HeatMap, error)
}

type GetDimensionValuesUseCase interface {
	Execute(ctx context.Context, in usecase.DimensionValuesInput) ([]string, error)
}

type GetDashboardUseCase interface {
	Execute(ctx context.Context) (*domain.Dashboard, error)
}

type MetricsHandler struct {
	statsUC     GetStatsUseCase
	casesUC     GetCasesUseCase
	heatmapUC   GetHeatmapUseCase
	valuesUC    GetDimensionValuesUseCase
	dashboardUC GetDashboardUseCase
}

func NewMetricsHandler(
	statsUC GetStatsUseCase,
	casesUC GetCasesUseCase,
	heatmapUC GetHeatmapUseCase,
	valuesUC GetDimensionValuesUseCase,
	dashboardUC GetDashboardUseCase,
) *MetricsHandler {
	return &MetricsHandler{
		statsUC:     statsUC,
		casesUC:     casesUC,
		heatmapUC:   heatmapUC,
		valuesUC:    valuesUC,
		dashboardUC: dashboardUC,
	}
}

// Register mounts the statistics routes on r.
func (h *MetricsHandler) Register(r fiber.Router) {
	r.Get("/dashboard/metrics", h.GetDashboard)
	r.Get("/:dataset/stats/:dimension", h.GetStats)
	r.Get("/:dataset/cases", h.GetCases)
	r.Get("/:dataset/heatmap", h.GetHeatmap)
	r.Get("/:dataset/dimensions/:dimension", h.GetDimensionValues)
}

// GetStats godoc
// @Summary Statistics by dimension
// @Description Groups the dataset's events by a dimension and returns one record per group, highest first
// @Tags Metrics
// @Produce json
// @Param dataset path string true "Dataset" Enums(salesforce, amadeus)
// @Param dimension path string true "Dimension" Enums(case, actor, team, window, application, activity, step)
// @Param sort query string false "Sort key: count | duration | avg_duration | clicks"
// @Param limit query int false "Maximum number of records, 0 for all"
// @Param team query []string false "Team filter"
// @Param actor query []string false "Actor filter"
// @Param case query []string false "Case filter"
// @Success 200 {object} server.Envelope{data=[]GroupStatsResponse}
// @Header 200 {integer} X-Total-Count "Number of groups before the limit"
// @Failure 400 {object} server.Envelope
// @Failure 500 {object} server.Envelope
// @Router /api/{dataset}/stats/{dimension} [get]
func (h *MetricsHandler) GetStats(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid_query", err)
	}

	res, err := h.statsUC.Execute(c.UserContext(), usecase.StatsInput{
		Dataset:   c.Params("dataset"),
		Dimension: c.Params("dimension"),
		Filter:    filterFrom(c),
		SortBy:    c.Query("sort"),
		Limit:     limit,
	})
	if err != nil {
		return h.fail(c, err)
	}

	c.Set("X-Total-Count", strconv.Itoa(res.Total))
	if res.Dimension == domain.DimensionCase {
		return server.OK(c, toCaseResponses(res.Cases))
	}
	return server.OK(c, toGroupResponses(res.Groups))
}

// GetCases godoc
// @Summary Case table
// @Description Per-case statistics, busiest cases first
// @Tags Metrics
// @Produce json
// @Param dataset path string true "Dataset" Enums(salesforce, amadeus)
// @Param sort query string false "Sort key: count | duration | avg_duration | clicks"
// @Param limit query int false "Maximum number of cases (default 20, 0 for all)"
// @Param team query []string false "Team filter"
// @Param actor query []string false "Actor filter"
// @Success 200 {object} server.Envelope{data=[]CaseStatsResponse}
// @Failure 400 {object} server.Envelope
// @Failure 500 {object} server.Envelope
// @Router /api/{dataset}/cases [get]
func (h *MetricsHandler) GetCases(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", usecase.DefaultCaseLimit)
	if err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid_query", err)
	}

	cases, err := h.casesUC.Execute(c.UserContext(), usecase.CasesInput{
		Dataset: c.Params("dataset"),
		Filter:  filterFrom(c),
		SortBy:  c.Query("sort"),
		Limit:   limit,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return server.OK(c, toCaseResponses(cases))
}

// GetHeatmap godoc
// @Summary Cross tabulation
// @Description Event counts or summed durations for every row x column pair
// @Tags Metrics
// @Produce json
// @Param dataset path string true "Dataset" Enums(salesforce, amadeus)
// @Param rows query string false "Row dimension (default step)"
// @Param cols query string false "Column dimension (default team)"
// @Param value query string false "count | duration"
// @Success 200 {object} server.Envelope{data=HeatmapResponse}
// @Failure 400 {object} server.Envelope
// @Failure 500 {object} server.Envelope
// @Router /api/{dataset}/heatmap [get]
func (h *MetricsHandler) GetHeatmap(c *fiber.Ctx) error {
	hm, err := h.heatmapUC.Execute(c.UserContext(), usecase.HeatmapInput{
		Dataset: c.Params("dataset"),
		Rows:    c.Query("rows"),
		Columns: c.Query("cols"),
		Value:   c.Query("value"),
		Filter:  filterFrom(c),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return server.OK(c, toHeatmapResponse(hm))
}

// GetDimensionValues godoc
// @Summary Distinct dimension values
// @Description Sorted distinct values of a dimension, for filter dropdowns
// @Tags Metrics
// @Produce json
// @Param dataset path string true "Dataset" Enums(salesforce, amadeus)
// @Param dimension path string true "Dimension"
// @Success 200 {object} server.Envelope{data=[]string}
// @Failure 400 {object} server.Envelope
// @Failure 500 {object} server.Envelope
// @Router /api/{dataset}/dimensions/{dimension} [get]
func (h *MetricsHandler) GetDimensionValues(c *fiber.Ctx) error {
	values, err := h.valuesUC.Execute(c.UserContext(), usecase.DimensionValuesInput{
		Dataset:   c.Params("dataset"),
		Dimension: c.Params("dimension"),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return server.OK(c, values)
}

// GetDashboard godoc
// @Summary Dashboard metrics
// @Description Overview and top records of every dataset; a dataset that fails to load carries an error instead
// @Tags Metrics
// @Produce json
// @Success 200 {object} server.Envelope{data=DashboardResponse}
// @Failure 500 {object} server.Envelope
// @Router /api/dashboard/metrics [get]
func (h *MetricsHandler) GetDashboard(c *fiber.Ctx) error {
	dash, err := h.dashboardUC.Execute(c.UserContext())
	if err != nil {
		return server.Internal(c, err)
	}

	return server.OK(c, toDashboardResponse(dash))
}

func (h *MetricsHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDataset):
		return server.Fail(c, http.StatusBadRequest, "invalid_dataset", err)
	case errors.Is(err, usecase.ErrInvalidDimension):
		return server.Fail(c, http.StatusBadRequest, "invalid_dimension", err)
	case errors.Is(err, usecase.ErrInvalidSort),
		errors.Is(err, usecase.ErrInvalidLimit),
		errors.Is(err, usecase.ErrInvalidHeatmap):
		return server.Fail(c, http.StatusBadRequest, "invalid_query", err)
	default:
		return server.Internal(c, err)
	}
}

func filterFrom(c *fiber.Ctx) usecase.Filter {
	return usecase.Filter{
		Teams:  server.QueryList(c, "team"),
		Actors: server.QueryList(c, "actor"),
		Cases:  server.QueryList(c, "case"),
	}
}

// queryInt returns fallback when key is absent or empty.
func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid '" + key + "' parameter")
	}
	return n, nil
}
