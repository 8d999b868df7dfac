package contact

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Marco16005/pag-web-web/internal/contact/repo"
	"github.com/Marco16005/pag-web-web/internal/respond"
	"github.com/Marco16005/pag-web-web/internal/validate"
)

// Handler serves the public contact form.
type Handler struct {
	repo   *repo.ContactRepo
	logger *zap.SugaredLogger
}

func NewHandler(r *repo.ContactRepo, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: r, logger: logger}
}

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if errs := validate.Collect(
		validate.Required("All fields (name, email, message) are required.", req.Name, req.Email, req.Message),
		validate.Email("email", req.Email),
		validate.MessageBody("message", req.Message),
	); len(errs) > 0 {
		respond.Invalid(w, errs)
		return
	}

	id, err := h.repo.Insert(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, repo.ErrNoID) {
			h.logger.Errorw("contact message not stored", "err", err)
			respond.Message(w, http.StatusInternalServerError, "Failed to send message due to a database error.")
			return
		}
		h.logger.Errorw("send contact message failed", "err", err)
		respond.Message(w, http.StatusInternalServerError, "Server error while sending message.")
		return
	}
	h.logger.Infow("contact message stored", "id", id)
	respond.Message(w, http.StatusCreated, "Message sent successfully! We will get back to you soon.")
}
