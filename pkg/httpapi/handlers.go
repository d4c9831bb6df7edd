package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"cafepos/pkg/cashier"
	"cafepos/pkg/order"
	"cafepos/pkg/otel"
	"cafepos/pkg/printer"
	"cafepos/pkg/session"
)

// loginRequest represents cashier credentials.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Cashier string `json:"cashier"`
}

// menuResponse lists the catalog.
type menuResponse struct {
	Items []order.MenuEntry `json:"items"`
	Lines []string          `json:"lines"`
}

// takeOrderRequest adds a catalog product. Index is 0-based and required;
// quantity may be sent as a number or a string.
type takeOrderRequest struct {
	Index    *int            `json:"index"`
	Quantity json.RawMessage `json:"quantity" swaggertype:"string"`
}

// settleRequest tenders cash for a completed order.
type settleRequest struct {
	Amount json.RawMessage `json:"amount" swaggertype:"string"`
}

type receiptResponse struct {
	Text    string          `json:"text"`
	Lines   []string        `json:"lines"`
	TaxRate decimal.Decimal `json:"tax_rate" swaggertype:"string"`
	Tax     decimal.Decimal `json:"tax" swaggertype:"string"`
	Total   decimal.Decimal `json:"total" swaggertype:"string"`
	State   cashier.State   `json:"state" swaggertype:"string"`
}

type settleResponse struct {
	Change     decimal.Decimal `json:"change" swaggertype:"string"`
	ChangeText string          `json:"change_text"`
	State      cashier.State   `json:"state" swaggertype:"string"`
}

// rawText returns a JSON scalar as text, dropping string quotes.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// healthHandler reports liveness.
// @Summary Health check
// @Success 200
// @Router /healthz [get]
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loginHandler authenticates a cashier and opens a till session.
// @Summary Login
// @Description Authenticates a cashier and sets the session cookie
// @Accept json
// @Produce json
// @Param creds body loginRequest true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 401 {object} errorResponse
// @Router /login [post]
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "loginHandler")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := s.d.Auth.Check(req.Username, req.Password); err != nil {
		s.d.Log.Warn(ctx, "login rejected", "username", req.Username)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}
	sid, err := s.d.Sessions.Create(ctx, req.Username)
	if err != nil {
		s.d.Log.Error(ctx, "create session", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session error"})
		return
	}
	if err := s.d.Terminals.Open(sid); err != nil {
		s.d.Log.Error(ctx, "open terminal", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "terminal unavailable"})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    sid,
		Path:     "/",
		Expires:  timeNow().Add(s.d.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	s.d.Log.Info(ctx, "till opened", "cashier", req.Username)
	writeJSON(w, http.StatusOK, loginResponse{Cashier: req.Username})
}

// logoutHandler closes the till session, discarding any order in progress.
// @Summary Logout
// @Success 204
// @Security ApiKeyAuth
// @Router /logout [post]
func (s *Server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "logoutHandler")
	defer span.End()

	sid := terminalFrom(ctx)
	if err := s.d.Sessions.Delete(ctx, sid); err != nil && !errors.Is(err, session.ErrNotFound) {
		s.d.Log.Error(ctx, "delete session", "error", err)
	}
	s.d.Terminals.Close(sid)
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	s.d.Log.Info(ctx, "till closed", "cashier", userFrom(ctx))
	w.WriteHeader(http.StatusNoContent)
}

// menuHandler lists the catalog.
// @Summary Menu
// @Produce json
// @Success 200 {object} menuResponse
// @Router /menu [get]
func (s *Server) menuHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "menuHandler")
	defer span.End()

	writeJSON(w, http.StatusOK, menuResponse{
		Items: s.d.Catalog.Menu(),
		Lines: s.d.Catalog.MenuLines(s.d.Currency),
	})
}

// startOrderHandler begins a fresh order, discarding any in progress.
// @Summary Start order
// @Produce json
// @Success 200 {object} cashier.View
// @Security ApiKeyAuth
// @Router /order [post]
func (s *Server) startOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "startOrderHandler")
	defer span.End()

	var view cashier.View
	err := s.d.Terminals.Do(terminalFrom(ctx), func(c *cashier.Cashier) error {
		c.StartOrder()
		view = c.View()
		return nil
	})
	if err != nil {
		s.writeError(ctx, w, "start order", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// getOrderHandler shows the current order.
// @Summary Current order
// @Produce json
// @Success 200 {object} cashier.View
// @Security ApiKeyAuth
// @Router /order [get]
func (s *Server) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	var view cashier.View
	err := s.d.Terminals.Do(terminalFrom(ctx), func(c *cashier.Cashier) error {
		view = c.View()
		return nil
	})
	if err != nil {
		s.writeError(ctx, w, "get order", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// takeOrderHandler adds a catalog product to the current order.
// @Summary Add item
// @Accept json
// @Produce json
// @Param item body takeOrderRequest true "Catalog index and quantity"
// @Success 200 {object} cashier.View
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Security ApiKeyAuth
// @Router /order/items [post]
func (s *Server) takeOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "takeOrderHandler")
	defer span.End()

	var req takeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Index == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing catalog index"})
		return
	}
	span.SetAttributes(attribute.Int("catalog.index", *req.Index))

	var view cashier.View
	err := s.d.Terminals.Do(terminalFrom(ctx), func(c *cashier.Cashier) error {
		if err := c.TakeOrderInput(*req.Index, rawText(req.Quantity)); err != nil {
			return err
		}
		view = c.View()
		return nil
	})
	if err != nil {
		s.writeError(ctx, w, "take order", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// removeItemHandler deletes a line from the current order.
// @Summary Remove item
// @Produce json
// @Param line path int true "0-based line index"
// @Success 200 {object} cashier.View
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Security ApiKeyAuth
// @Router /order/items/{line} [delete]
func (s *Server) removeItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "removeItemHandler")
	defer span.End()

	line, err := strconv.Atoi(mux.Vars(r)["line"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no such line", Kind: order.Kind(order.ErrIndexOutOfRange)})
		return
	}
	span.SetAttributes(attribute.Int("order.line", line))

	var view cashier.View
	err = s.d.Terminals.Do(terminalFrom(ctx), func(c *cashier.Cashier) error {
		if _, err := c.RemoveItem(line); err != nil {
			return err
		}
		view = c.View()
		return nil
	})
	if err != nil {
		s.writeError(ctx, w, "remove item", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// completeOrderHandler produces the receipt and queues it for printing.
// @Summary Complete order
// @Produce json
// @Success 200 {object} receiptResponse
// @Failure 409 {object} errorResponse
// @Security ApiKeyAuth
// @Router /order/complete [post]
func (s *Server) completeOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "completeOrderHandler")
	defer span.End()

	var (
		rec   order.Receipt
		state cashier.State
	)
	err := s.d.Terminals.Do(terminalFrom(ctx), func(c *cashier.Cashier) error {
		var err error
		if rec, err = c.Complete(); err != nil {
			return err
		}
		state = c.State()
		return nil
	})
	if err != nil {
		s.writeError(ctx, w, "complete order", err)
		return
	}

	if s.d.Printer != nil {
		job := printer.NewJob(terminalFrom(ctx), userFrom(ctx), rec)
		if err := s.d.Printer.Print(ctx, job); err != nil {
			// the receipt is still returned to the till
			s.d.Log.Error(ctx, "queue receipt", "job", job.ID, "error", err)
		}
	}
	s.d.Log.Info(ctx, "order completed", "cashier", userFrom(ctx), "total", rec.Total.StringFixed(2))
	writeJSON(w, http.StatusOK, receiptResponse{
		Text:    rec.Text,
		Lines:   strings.Split(rec.Text, "\n"),
		TaxRate: rec.TaxRate,
		Tax:     rec.Tax,
		Total:   rec.Total,
		State:   state,
	})
}

// settleHandler accepts cash for the completed order and returns change.
// @Summary Settle payment
// @Accept json
// @Produce json
// @Param payment body settleRequest true "Tendered amount"
// @Success 200 {object} settleResponse
// @Failure 400 {object} errorResponse
// @Failure 402 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Security ApiKeyAuth
// @Router /order/settle [post]
func (s *Server) settleHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "settleHandler")
	defer span.End()

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	amount, err := cashier.ParseAmount(rawText(req.Amount))
	if err != nil {
		s.writeError(ctx, w, "settle", err)
		return
	}

	var resp settleResponse
	err = s.d.Terminals.Do(terminalFrom(ctx), func(c *cashier.Cashier) error {
		change, err := c.SettlePayment(amount)
		if err != nil {
			return err
		}
		resp = settleResponse{Change: change, ChangeText: order.FormatMoney(c.Currency(), change), State: c.State()}
		return nil
	})
	if err != nil {
		s.writeError(ctx, w, "settle", err)
		return
	}
	s.d.Log.Info(ctx, "payment settled", "cashier", userFrom(ctx), "change", resp.Change.StringFixed(2))
	writeJSON(w, http.StatusOK, resp)
}
