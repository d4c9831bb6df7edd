// Package httpapi exposes the till engine over HTTP/JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"cafepos/pkg/logger"
	"cafepos/pkg/order"
	"cafepos/pkg/otel"
	"cafepos/pkg/printer"
	"cafepos/pkg/session"
	"cafepos/pkg/terminal"
)

type ctxKey int

const (
	userKey ctxKey = iota + 1
	terminalKey
)

const cookieName = "session_id"

// Deps are the collaborators a Server needs.
type Deps struct {
	Log        *logger.Logger
	Tracer     trace.Tracer
	Sessions   session.Store
	Auth       *session.Authenticator
	Terminals  *terminal.Registry
	Catalog    *order.Catalog
	Currency   string
	Printer    printer.Queue
	SessionTTL time.Duration
}

// Server routes HTTP requests to per-terminal engines.
type Server struct {
	Router *mux.Router
	d      Deps
}

// NewServer builds the router.
func NewServer(d Deps) *Server {
	if d.SessionTTL == 0 {
		d.SessionTTL = time.Hour
	}
	s := &Server{Router: mux.NewRouter(), d: d}

	r := s.Router
	if d.Tracer != nil {
		r.Use(s.traceMiddleware)
	}
	r.HandleFunc("/healthz", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/login", s.loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/menu", s.menuHandler).Methods(http.MethodGet)

	auth := r.NewRoute().Subrouter()
	auth.Use(s.authMiddleware)
	auth.HandleFunc("/logout", s.logoutHandler).Methods(http.MethodPost)
	auth.HandleFunc("/order", s.startOrderHandler).Methods(http.MethodPost)
	auth.HandleFunc("/order", s.getOrderHandler).Methods(http.MethodGet)
	auth.HandleFunc("/order/items", s.takeOrderHandler).Methods(http.MethodPost)
	auth.HandleFunc("/order/items/{line:[0-9]+}", s.removeItemHandler).Methods(http.MethodDelete)
	auth.HandleFunc("/order/complete", s.completeOrderHandler).Methods(http.MethodPost)
	auth.HandleFunc("/order/settle", s.settleHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), s.d.Tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authMiddleware ensures a valid session exists and its terminal is open.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(cookieName)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		user, err := s.d.Sessions.Lookup(r.Context(), c.Value)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				// expired or revoked; its order dies with it
				s.d.Terminals.Close(c.Value)
			} else {
				s.d.Log.Error(r.Context(), "session lookup", "error", err)
			}
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		// sessions outlive a restart of the API; their terminal starts empty
		if err := s.d.Terminals.Open(c.Value); err != nil {
			s.d.Log.Error(r.Context(), "open terminal", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "terminal unavailable"})
			return
		}
		ctx := context.WithValue(r.Context(), userKey, user)
		ctx = context.WithValue(ctx, terminalKey, c.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFrom(ctx context.Context) string {
	v, _ := ctx.Value(userKey).(string)
	return v
}

func terminalFrom(ctx context.Context) string {
	v, _ := ctx.Value(terminalKey).(string)
	return v
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidTaxRate),
		errors.Is(err, order.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrNoActiveOrder),
		errors.Is(err, order.ErrNotCompleted):
		return http.StatusConflict
	case errors.Is(err, order.ErrInsufficientPayment):
		return http.StatusPaymentRequired
	case errors.Is(err, terminal.ErrNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.d.Log.Error(ctx, op, "error", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	s.d.Log.Debug(ctx, op, "error", err)
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: order.Kind(err)})
}

var timeNow = time.Now
