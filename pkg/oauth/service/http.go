package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/card-bridge/pkg/app/http"
	"github.com/chainsafe/card-bridge/pkg/auth"
	"github.com/chainsafe/card-bridge/pkg/oauth"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the linking endpoints on r. Routes that act on a
// wallet's links require a fresh EIP-191 signature from that wallet.
func RegisterRoutes(r chi.Router, service Service, signatureMaxAge time.Duration, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}
	signed := auth.RequireWalletSignature(signatureMaxAge)

	r.Route("/oauth", func(r chi.Router) {
		r.Get("/links/{wallet}", apphttp.HandleError(h.links))
		r.Route("/{provider}", func(r chi.Router) {
			r.Post("/callback", apphttp.HandleError(h.callback))
			r.With(signed).Post("/initiate", apphttp.HandleError(h.initiate))
			r.With(signed).Post("/disconnect", apphttp.HandleError(h.disconnect))
			r.With(signed).Post("/sync", apphttp.HandleError(h.sync))
		})
	})
}

type linksResponse struct {
	Links []*oauth.LinkResponse `json:"links"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func providerParam(r *http.Request) (oauth.Provider, error) {
	name, err := oauth.ParseProvider(chi.URLParam(r, "provider"))
	if err != nil {
		return "", toServiceError(err)
	}
	return name, nil
}

func signer(r *http.Request) (string, error) {
	wallet, ok := auth.WalletAddressFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "wallet signature required")
	}
	return wallet, nil
}

func (h *HTTP) initiate(w http.ResponseWriter, r *http.Request) error {
	name, err := providerParam(r)
	if err != nil {
		return err
	}
	wallet, err := signer(r)
	if err != nil {
		return err
	}

	var req oauth.InitiateRequest
	if r.ContentLength != 0 {
		if err := apphttp.DecodeJSON(r, &req); err != nil {
			return err
		}
	}
	if req.WalletAddress != "" && !strings.EqualFold(req.WalletAddress, wallet) {
		return apperrors.ForbiddenError(nil, "wallet_address does not match the signer")
	}

	resp, err := h.service.Initiate(r.Context(), name, wallet)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) callback(w http.ResponseWriter, r *http.Request) error {
	name, err := providerParam(r)
	if err != nil {
		return err
	}

	var req oauth.CallbackRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	link, err := h.service.Complete(r.Context(), name, &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, link.ToResponse())
	return nil
}

func (h *HTTP) disconnect(w http.ResponseWriter, r *http.Request) error {
	name, err := providerParam(r)
	if err != nil {
		return err
	}
	wallet, err := signer(r)
	if err != nil {
		return err
	}

	if err := h.service.Disconnect(r.Context(), name, wallet); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, statusResponse{Status: "disconnected"})
	return nil
}

func (h *HTTP) sync(w http.ResponseWriter, r *http.Request) error {
	name, err := providerParam(r)
	if err != nil {
		return err
	}
	wallet, err := signer(r)
	if err != nil {
		return err
	}

	link, err := h.service.SyncProfile(r.Context(), name, wallet)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, link.ToResponse())
	return nil
}

func (h *HTTP) links(w http.ResponseWriter, r *http.Request) error {
	links, err := h.service.Links(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		return err
	}

	resp := linksResponse{Links: make([]*oauth.LinkResponse, 0, len(links))}
	for _, l := range links {
		resp.Links = append(resp.Links, l.ToResponse())
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
