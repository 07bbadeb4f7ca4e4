package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironhq/leaguesync/internal/usecase"
)

type assistantQueryRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

type assistantQueryResponse struct {
	Question string   `json:"question"`
	SQL      string   `json:"sql"`
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
}

func (h *Handler) AssistantQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssistantQuery")
	defer span.End()

	var payload assistantQueryRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	answer, err := h.assistantService.Query(ctx, payload.Question)
	if err != nil {
		h.logger.WarnContext(ctx, "assistant query failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assistantQueryResponse{
		Question: answer.Question,
		SQL:      answer.SQL,
		Columns:  answer.Columns,
		Rows:     answer.Rows,
	})
}
