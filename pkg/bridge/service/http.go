package service

import (
	"errors"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/card-bridge/pkg/app/http"
	"github.com/chainsafe/card-bridge/pkg/auth"
	"github.com/chainsafe/card-bridge/pkg/bridge"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the bridge endpoints. Transfers spend from the
// server wallet and therefore require a bearer token.
func RegisterRoutes(r chi.Router, service Service, jwt *auth.JWTValidator, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/bridge", func(r chi.Router) {
		r.Get("/balances/{address}", apphttp.HandleError(h.balances))
		r.Post("/quote", apphttp.HandleError(h.quote))
		r.With(auth.RequireBearer(jwt)).Post("/transfer", apphttp.HandleError(h.transfer))
	})
}

type quoteResponse struct {
	Direction   bridge.Direction `json:"direction"`
	Amount      string           `json:"amount"`
	Recipient   string           `json:"recipient"`
	NativeFee   string           `json:"native_fee"`
	LzTokenFee  string           `json:"lz_token_fee"`
	MinAmountLD string           `json:"min_amount_ld"`
}

type transferResponse struct {
	Result *bridge.Result       `json:"result,omitempty"`
	Events []bridge.StatusEvent `json:"events"`
	Error  string               `json:"error,omitempty"`
	Reason bridge.Reason        `json:"reason,omitempty"`
}

func (h *HTTP) balances(w http.ResponseWriter, r *http.Request) error {
	address := chi.URLParam(r, "address")
	if !auth.ValidateEVMAddress(address) {
		return apperrors.BadRequestError(nil, "invalid address")
	}

	direction := bridge.Direction(r.URL.Query().Get("direction"))
	if direction == "" {
		direction = bridge.AToB
	}

	res, err := h.service.Balances(r.Context(), common.HexToAddress(address), direction)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) quote(w http.ResponseWriter, r *http.Request) error {
	var req bridge.TransferRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	q, err := h.service.Quote(r.Context(), req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &quoteResponse{
		Direction:   req.Direction,
		Amount:      req.Amount.String(),
		Recipient:   req.Recipient.Hex(),
		NativeFee:   q.NativeFee.String(),
		LzTokenFee:  q.Fee().LzTokenFee.String(),
		MinAmountLD: q.Params.MinAmountLD.String(),
	})
	return nil
}

func (h *HTTP) transfer(w http.ResponseWriter, r *http.Request) error {
	var req bridge.TransferRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	sink := &collectingSink{}
	res, err := h.service.Transfer(r.Context(), req, sink)
	events := sink.close()

	if err == nil {
		apphttp.WriteJSON(w, http.StatusOK, &transferResponse{Result: res, Events: events})
		return nil
	}

	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) || res == nil {
		return err
	}
	apphttp.WriteJSON(w, svcErr.StatusCode(), &transferResponse{
		Result: res,
		Events: events,
		Error:  svcErr.Message,
		Reason: bridge.ReasonOf(err),
	})
	return nil
}

// collectingSink buffers events for the synchronous response. Events emitted
// after the response was written (the delayed balance refresh) are dropped.
type collectingSink struct {
	mu     sync.Mutex
	events []bridge.StatusEvent
	closed bool
}

func (s *collectingSink) Emit(event bridge.StatusEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.events = append(s.events, event)
}

func (s *collectingSink) close() []bridge.StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.events == nil {
		return []bridge.StatusEvent{}
	}
	return s.events
}
