package chat

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Marco16005/pag-web-web/internal/respond"
	"github.com/Marco16005/pag-web-web/pkg/utilities"
)

const (
	msgNotConfigured = "AI service is not configured correctly. Missing API Key."
	msgNoMessage     = "No message provided."
	msgNoCandidates  = "Sorry, I couldn't get a proper response from the AI."
	msgTransport     = "An error occurred while communicating with the AI service."
)

// Handler proxies chat questions to the AI model.
type Handler struct {
	model   Model
	timeout time.Duration
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// NewHandler returns a chat handler. A nil model answers every request with
// a configuration error.
func NewHandler(model Model, timeout time.Duration, logger *zap.SugaredLogger) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{model: model, timeout: timeout, logger: logger, now: time.Now}
}

type Request struct {
	Message     string `json:"message"`
	PageContext string `json:"pageContext,omitempty"`
}

type Reply struct {
	Reply string `json:"reply"`
}

type configError struct {
	Error string `json:"error"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.model == nil {
		h.logger.Error("gemini api key is not configured")
		respond.JSON(w, http.StatusInternalServerError, configError{Error: msgNotConfigured})
		return
	}
	var req Request
	if !respond.Decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond.JSON(w, http.StatusBadRequest, configError{Error: msgNoMessage})
		return
	}

	exchange := utilities.NewKSUID()
	log := h.logger.With("exchange_id", exchange)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	gen, err := h.model.Generate(ctx, BuildPrompt(req.Message, req.PageContext, h.now()))
	if err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) {
			log.Errorw("ai provider returned an error", "code", perr.Code, "err", perr.Message)
			code := perr.Code
			if code < 400 || code > 599 {
				code = http.StatusInternalServerError
			}
			respond.JSON(w, code, Reply{Reply: "AI Error: " + perr.Message})
			return
		}
		log.Errorw("ai request failed", "err", err)
		respond.JSON(w, http.StatusInternalServerError, Reply{Reply: msgTransport})
		return
	}

	switch {
	case gen.Candidates > 0:
		answer, ok := ExtractAnswer(gen.Text)
		if !ok {
			log.Warnw("ai response missing answer tags", "question", req.Message, "raw", gen.Text)
		}
		respond.JSON(w, http.StatusOK, Reply{Reply: answer})
	case gen.BlockReason != "":
		log.Warnw("ai prompt blocked", "reason", gen.BlockReason)
		respond.JSON(w, http.StatusBadRequest, Reply{Reply: BlockMessage(gen.BlockReason, gen.Ratings)})
	default:
		log.Error("ai response had no candidates")
		respond.JSON(w, http.StatusInternalServerError, Reply{Reply: msgNoCandidates})
	}
}
