package fiber

import (
	"context"
	"errors"
	"net/http"

	"process-mining-service/internal/assistant/core/usecase"
	"process-mining-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

type AskUseCase interface {
	Execute(ctx context.Context, in usecase.AskInput) (usecase.AskResult, error)
}

type ChatHandler struct {
	askUC AskUseCase
}

func NewChatHandler(askUC AskUseCase) *ChatHandler {
	return &ChatHandler{askUC: askUC}
}

func (h *ChatHandler) Register(r fiber.Router) {
	r.Post("/ai/chat", h.Chat)
}

// Chat godoc
// @Summary Ask a question about a dataset
// @Description Answers with the configured language model, or with a summary built from the statistics when none is available
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Question"
// @Success 200 {object} server.Envelope{data=ChatResponse}
// @Failure 400 {object} server.Envelope
// @Failure 500 {object} server.Envelope
// @Router /api/ai/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, http.StatusBadRequest, "invalid_request", err)
	}

	res, err := h.askUC.Execute(c.UserContext(), usecase.AskInput{
		Question: req.Message,
		Dataset:  req.Dataset,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyQuestion):
			return server.Fail(c, http.StatusBadRequest, "empty_message", err)
		case errors.Is(err, usecase.ErrInvalidDataset):
			return server.Fail(c, http.StatusBadRequest, "invalid_dataset", err)
		}
		return server.Internal(c, err)
	}

	return server.OK(c, toChatResponse(res))
}
