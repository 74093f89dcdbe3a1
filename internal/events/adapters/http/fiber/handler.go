package fiber

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"process-mining-service/internal/events/adapters/csvsource"
	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/usecase"
	"process-mining-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

type IngestEventsUseCase interface {
	Replace(ctx context.Context, in usecase.ReplaceInput) (usecase.ReplaceResult, error)
}

type ListEventsUseCase interface {
	Execute(ctx context.Context, in usecase.ListEventsInput) ([]domain.Event, error)
}

type CSVParser interface {
	Parse(ds domain.Dataset, r io.Reader) ([]domain.Event, error)
}

type EventHandler struct {
	ingestUC  IngestEventsUseCase
	listUC    ListEventsUseCase
	parser    CSVParser
	batchSize int
}

func NewEventHandler(ingestUC IngestEventsUseCase, listUC ListEventsUseCase, parser CSVParser, batchSize int) *EventHandler {
	return &EventHandler{
		ingestUC:  ingestUC,
		listUC:    listUC,
		parser:    parser,
		batchSize: batchSize,
	}
}

// ImportEvents godoc
// @Summary Replace a dataset from CSV
// @Description Parses the CSV body and replaces every event of the dataset in one transaction
// @Tags Events
// @Accept text/csv
// @Produce json
// @Param dataset path string true "Dataset" Enums(salesforce, amadeus)
// @Param request body string true "CSV file with a header row"
// @Success 201 {object} server.Envelope{data=ImportEventsResponse}
// @Failure 400 {object} server.Envelope
// @Failure 500 {object} server.Envelope
// @Router /api/{dataset}/events/import [post]
func (h *EventHandler) ImportEvents(c *fiber.Ctx) error {
	ds, err := domain.ParseDataset(c.Params("dataset"))
	if err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid_dataset", err)
	}

	events, err := h.parser.Parse(ds, bytes.NewReader(c.Body()))
	if err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid_csv", err)
	}

	result, err := h.ingestUC.Replace(c.UserContext(), usecase.ReplaceInput{
		Dataset:   string(ds),
		Events:    events,
		BatchSize: h.batchSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoEvents):
			return server.Fail(c, http.StatusBadRequest, "no_events", err)
		case errors.Is(err, usecase.ErrInvalidDataset),
			errors.Is(err, usecase.ErrInvalidBatch):
			return server.Fail(c, http.StatusBadRequest, "invalid_request", err)
		default:
			return server.Internal(c, err)
		}
	}

	return server.Created(c, toImportResponse(result))
}

// ListEvents godoc
// @Summary List raw events
// @Description Returns the stored events of a dataset, optionally restricted to teams, actors and cases
// @Tags Events
// @Produce json
// @Param dataset path string true "Dataset" Enums(salesforce, amadeus)
// @Param team query []string false "Team filter (repeat or comma separate)"
// @Param actor query []string false "Actor filter"
// @Param case query []string false "Case filter"
// @Success 200 {object} server.Envelope{data=[]EventResponse}
// @Failure 400 {object} server.Envelope
// @Failure 500 {object} server.Envelope
// @Router /api/{dataset}/events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.listUC.Execute(c.UserContext(), usecase.ListEventsInput{
		Dataset: c.Params("dataset"),
		Teams:   server.QueryList(c, "team"),
		Actors:  server.QueryList(c, "actor"),
		Cases:   server.QueryList(c, "case"),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDataset) {
			return server.Fail(c, http.StatusBadRequest, "invalid_dataset", err)
		}
		return server.Internal(c, err)
	}

	return server.OK(c, toEventResponses(events))
}

var _ CSVParser = (*csvsource.Parser)(nil)
