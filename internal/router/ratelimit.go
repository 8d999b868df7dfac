package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/Marco16005/pag-web-web/internal/respond"
)

// Limit is a fixed-window request budget per client IP.
type Limit struct {
	Requests int
	Window   time.Duration
	Message  string
}

type Limits struct {
	Register Limit
	Login    Limit
	Contact  Limit
}

var DefaultLimits = Limits{
	Register: Limit{
		Requests: 5,
		Window:   15 * time.Minute,
		Message:  "Too many registration attempts from this IP, please try again after 15 minutes.",
	},
	Login: Limit{
		Requests: 10,
		Window:   15 * time.Minute,
		Message:  "Too many login attempts from this IP, please try again after 15 minutes.",
	},
	Contact: Limit{
		Requests: 5,
		Window:   time.Hour,
		Message:  "Too many contact form submissions from this IP, please try again after an hour.",
	},
}

// rateLimit counts every request, valid or not, before the handler runs.
func rateLimit(l Limit, trustProxy bool) func(http.Handler) http.Handler {
	key := httprate.KeyByIP
	if trustProxy {
		key = httprate.KeyByRealIP
	}
	retryAfter := strconv.Itoa(int(l.Window.Seconds()))
	return httprate.Limit(l.Requests, l.Window,
		httprate.WithKeyFuncs(key),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			if w.Header().Get("Retry-After") == "" {
				w.Header().Set("Retry-After", retryAfter)
			}
			respond.Message(w, http.StatusTooManyRequests, l.Message)
		}),
	)
}
