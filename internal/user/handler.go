package user

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Marco16005/pag-web-web/internal/outcome"
	"github.com/Marco16005/pag-web-web/internal/respond"
	"github.com/Marco16005/pag-web-web/internal/user/entity"
	"github.com/Marco16005/pag-web-web/internal/validate"
)

// TokenIssuer signs a session token after a successful login. Nil disables tokens.
type TokenIssuer interface {
	Enabled() bool
	Issue(userID int64, role string) (string, error)
}

// Handler exposes HTTP endpoints for user operations (register / login).
type Handler struct {
	svc    *UserService
	tokens TokenIssuer
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewHandler(svc *UserService, tokens TokenIssuer, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, tokens: tokens, logger: logger, now: time.Now}
}

// RegisterRequest request body for the register endpoint.
type RegisterRequest struct {
	Email     string `json:"correo"`
	Username  string `json:"nombre_usuario"`
	Password  string `json:"contraseña"`
	Gender    string `json:"genero"`
	BirthDate string `json:"fecha_nacimiento"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if errs := validate.Collect(
		validate.Required("All fields (email, fullname, password, gender, birth date) are required.",
			req.Email, req.Username, req.Password, req.Gender, req.BirthDate),
		validate.Email("email", req.Email),
		validate.Password("password", req.Password),
		validate.Gender("gender", req.Gender),
		validate.BirthDate("birthdate", req.BirthDate, h.now()),
	); len(errs) > 0 {
		respond.Invalid(w, errs)
		return
	}

	status, err := h.svc.Register(r.Context(), RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		var unk *outcome.UnknownSentinelError
		if errors.As(err, &unk) {
			h.logger.Errorw("unexpected registration status", "procedure", unk.Procedure, "status", unk.Raw)
			respond.Outcome(w, outcome.Register.Fallback)
			return
		}
		h.logger.Errorw("registration failed", "err", err)
		respond.Message(w, http.StatusInternalServerError, "Server error during registration.")
		return
	}
	respond.Outcome(w, outcome.Register.Lookup(status, outcome.Vars{"min_age": strconv.Itoa(validate.MinAge)}))
}

// LoginRequest login payload.
type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contraseña"`
}

// LoginResponse carries the public user projection; Token is set only when tokens are enabled.
type LoginResponse struct {
	Message string          `json:"message"`
	User    entity.AuthView `json:"user"`
	Token   string          `json:"token,omitempty"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if errs := validate.Collect(
		validate.Required("All fields are required.", req.Email, req.Password),
		validate.Email("email", req.Email),
	); len(errs) > 0 {
		respond.Invalid(w, errs)
		return
	}

	view, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			respond.Message(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, ErrBadCredentials):
			respond.Message(w, http.StatusUnauthorized, "Invalid credentials.")
		default:
			h.logger.Errorw("login failed", "err", err)
			respond.Message(w, http.StatusInternalServerError, "Server error during login.")
		}
		return
	}

	resp := LoginResponse{Message: "Login successful.", User: *view}
	if h.tokens != nil && h.tokens.Enabled() {
		tok, err := h.tokens.Issue(view.ID, view.Role)
		if err != nil {
			h.logger.Errorw("issue token failed", "user_id", view.ID, "err", err)
			respond.Message(w, http.StatusInternalServerError, "Server error during login.")
			return
		}
		resp.Token = tok
	}
	respond.JSON(w, http.StatusOK, resp)
}

// RulesResponse publishes the registration rules so client-side checks use the same values.
type RulesResponse struct {
	MinAge           int      `json:"min_age"`
	MaxAge           int      `json:"max_age"`
	Genders          []string `json:"genders"`
	PasswordMinLen   int      `json:"password_min_length"`
	PasswordSpecials string   `json:"password_special_characters"`
}

func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, RulesResponse{
		MinAge:           validate.MinAge,
		MaxAge:           validate.MaxAge,
		Genders:          validate.Genders,
		PasswordMinLen:   validate.PasswordMinLen,
		PasswordSpecials: validate.PasswordSpecials,
	})
}
