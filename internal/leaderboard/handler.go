package leaderboard

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Marco16005/pag-web-web/internal/leaderboard/repo"
	"github.com/Marco16005/pag-web-web/internal/respond"
	"github.com/Marco16005/pag-web-web/internal/validate"
)

// GlobalLimit is the size of the public leaderboard.
const GlobalLimit = 5

type Handler struct {
	repo   *repo.LeaderboardRepo
	logger *zap.SugaredLogger
}

func NewHandler(r *repo.LeaderboardRepo, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: r, logger: logger}
}

func (h *Handler) Global(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.Top(r.Context(), GlobalLimit)
	if err != nil {
		h.logger.Errorw("fetch global leaderboard failed", "err", err)
		respond.Message(w, http.StatusInternalServerError, "Failed to fetch global leaderboard.")
		return
	}
	respond.JSON(w, http.StatusOK, rows)
}

func (h *Handler) UserScore(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "userId")
	id, fe := validate.ID(raw, "user")
	if fe != nil {
		respond.Invalid(w, validate.Errors{fe})
		return
	}
	score, err := h.repo.UserScore(r.Context(), id)
	if err != nil {
		h.logger.Errorw("fetch user score failed", "user_id", id, "err", err)
		respond.Message(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch score for user %s.", raw))
		return
	}
	respond.JSON(w, http.StatusOK, score)
}
