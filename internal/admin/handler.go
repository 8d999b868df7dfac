package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Marco16005/pag-web-web/internal/admin/entity"
	adminrepo "github.com/Marco16005/pag-web-web/internal/admin/repo"
	contactrepo "github.com/Marco16005/pag-web-web/internal/contact/repo"
	"github.com/Marco16005/pag-web-web/internal/outcome"
	"github.com/Marco16005/pag-web-web/internal/respond"
	"github.com/Marco16005/pag-web-web/internal/user"
	userentity "github.com/Marco16005/pag-web-web/internal/user/entity"
	"github.com/Marco16005/pag-web-web/internal/validate"
)

const (
	DefaultLogLimit  = 100
	DefaultLogOffset = 0
)

// Handler serves the admin console endpoints.
type Handler struct {
	users    *user.UserService
	contacts *contactrepo.ContactRepo
	reports  *adminrepo.AdminRepo
	logger   *zap.SugaredLogger
}

func NewHandler(users *user.UserService, contacts *contactrepo.ContactRepo, reports *adminrepo.AdminRepo, logger *zap.SugaredLogger) *Handler {
	return &Handler{users: users, contacts: contacts, reports: reports, logger: logger}
}

// Routes mounts the admin endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/users", h.ListUsers)
	r.Put("/users/{id}", h.UpdateUser)
	r.Delete("/users/{id}", h.DeleteUser)
	r.Get("/statistics", h.Statistics)
	r.Get("/contact-messages", h.ContactMessages)
	r.Put("/contact-messages/{id}/status", h.UpdateMessageStatus)
	r.Get("/logs", h.Logs)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.users.List(r.Context())
	if err != nil {
		h.logger.Errorw("fetch users failed", "err", err)
		respond.Message(w, http.StatusInternalServerError, "Failed to fetch users.")
		return
	}
	respond.JSON(w, http.StatusOK, rows)
}

type UpdateUserRequest struct {
	Username string `json:"nombre_usuario"`
	Email    string `json:"correo"`
	Role     string `json:"rol"`
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, fe := validate.ID(chi.URLParam(r, "id"), "user")
	if fe != nil {
		respond.Invalid(w, validate.Errors{fe})
		return
	}
	var req UpdateUserRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if errs := validate.Collect(
		validate.Required("All fields (username, email, role) are required.", req.Username, req.Email, req.Role),
		validate.OneOf("rol", req.Role, "Invalid role. Must be 'user' or 'admin'.", validate.Roles...),
		validate.Email("correo", req.Email),
	); len(errs) > 0 {
		respond.Invalid(w, errs)
		return
	}

	status, err := h.users.Update(r.Context(), userentity.Update{ID: id, Username: req.Username, Email: req.Email, Role: req.Role})
	if h.failed(w, err, outcome.UpdateUser, "user update failed", "Server error during user update.") {
		return
	}
	respond.Outcome(w, outcome.UpdateUser.Lookup(status, outcome.Vars{
		"id":       strconv.FormatInt(id, 10),
		"email":    req.Email,
		"username": req.Username,
	}))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, fe := validate.ID(chi.URLParam(r, "id"), "user")
	if fe != nil {
		respond.Invalid(w, validate.Errors{fe})
		return
	}
	status, err := h.users.Delete(r.Context(), id)
	if h.failed(w, err, outcome.DeleteUser, "user deletion failed", "Server error during user deletion.") {
		return
	}
	respond.Outcome(w, outcome.DeleteUser.Lookup(status, outcome.Vars{"id": strconv.FormatInt(id, 10)}))
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.Statistics(r.Context())
	if err != nil {
		h.logger.Errorw("fetch statistics failed", "err", err)
		respond.Message(w, http.StatusInternalServerError, "Failed to fetch statistics.")
		return
	}
	respond.JSON(w, http.StatusOK, rows)
}

func (h *Handler) ContactMessages(w http.ResponseWriter, r *http.Request) {
	rows, err := h.contacts.List(r.Context())
	if err != nil {
		h.logger.Errorw("fetch contact messages failed", "err", err)
		respond.Message(w, http.StatusInternalServerError, "Failed to fetch contact messages.")
		return
	}
	respond.JSON(w, http.StatusOK, rows)
}

type StatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	id, fe := validate.ID(chi.URLParam(r, "id"), "message")
	if fe != nil {
		respond.Invalid(w, validate.Errors{fe})
		return
	}
	var req StatusRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if fe := validate.OneOf("status", req.Status, "Invalid status. Must be 'new', 'read', or 'archived'.", validate.MessageStatuses...); fe != nil {
		respond.Invalid(w, validate.Errors{fe})
		return
	}

	status, err := h.contacts.UpdateStatus(r.Context(), id, req.Status)
	if h.failed(w, err, outcome.UpdateMessageStatus, "message status update failed", "Server error during message status update.") {
		return
	}
	respond.Outcome(w, outcome.UpdateMessageStatus.Lookup(status, outcome.Vars{
		"id":     strconv.FormatInt(id, 10),
		"status": req.Status,
	}))
}

func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	f, fe := ParseLogFilter(r.URL.Query().Get)
	if fe != nil {
		respond.Invalid(w, validate.Errors{fe})
		return
	}
	rows, err := h.reports.Logs(r.Context(), f)
	if err != nil {
		h.logger.Errorw("fetch logs failed", "err", err)
		respond.Message(w, http.StatusInternalServerError, "Failed to fetch system logs.")
		return
	}
	respond.JSON(w, http.StatusOK, rows)
}

// failed answers err, if any, and reports whether it did. Unknown sentinels
// get the table fallback; other errors get serverMsg.
func (h *Handler) failed(w http.ResponseWriter, err error, t *outcome.Table, logMsg, serverMsg string) bool {
	if err == nil {
		return false
	}
	var unk *outcome.UnknownSentinelError
	if errors.As(err, &unk) {
		h.logger.Errorw("unexpected procedure status", "procedure", unk.Procedure, "status", unk.Raw)
		respond.Outcome(w, t.Fallback)
		return true
	}
	h.logger.Errorw(logMsg, "err", err)
	respond.Message(w, http.StatusInternalServerError, serverMsg)
	return true
}

var logDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", time.DateOnly}

// ParseLogFilter reads the /admin/logs query. Blank filters stay nil;
// unparseable limit or offset fall back to the defaults.
func ParseLogFilter(get func(string) string) (entity.LogFilter, *validate.FieldError) {
	f := entity.LogFilter{
		Table:     optional(get("tableName")),
		Operation: optional(get("operationType")),
		Limit:     intOr(get("limit"), DefaultLogLimit),
		Offset:    intOr(get("offset"), DefaultLogOffset),
	}
	var fe *validate.FieldError
	if f.Start, fe = parseLogDate("startDate", get("startDate")); fe != nil {
		return f, fe
	}
	if f.End, fe = parseLogDate("endDate", get("endDate")); fe != nil {
		return f, fe
	}
	return f, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func intOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func parseLogDate(field, s string) (*time.Time, *validate.FieldError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range logDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, &validate.FieldError{Field: field, Message: fmt.Sprintf("Invalid %s. Use YYYY-MM-DD or RFC 3339.", field)}
}
