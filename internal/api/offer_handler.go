package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/unitip/unitip-api/internal/api/middleware"
	"github.com/unitip/unitip-api/internal/api/shared"
	"github.com/unitip/unitip-api/internal/service"
	"github.com/unitip/unitip-api/internal/service/auth"
)

// OfferHandler handles the offer API requests.
type OfferHandler struct {
	offerService *service.OfferService
	verifier     auth.SessionVerifier
	validator    *validator.Validate
}

// NewOfferHandler creates a new OfferHandler with the given dependencies.
func NewOfferHandler(
	offerService *service.OfferService,
	verifier auth.SessionVerifier,
) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
		verifier:     verifier,
		validator:    newValidator(),
	}
}

// CreateOffer handles POST /api/v1/offers.
// The body is validated before the bearer token is checked, then the
// role gate runs before anything is written.
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req CreateOfferRequest

	// Parse request
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithBadRequest(w, r, []shared.FieldError{
			{Path: "body", Message: "Invalid request format"},
		})
		return
	}

	// Validate request
	if errs := validateRequest(h.validator, req); errs != nil {
		shared.RespondWithBadRequest(w, r, errs)
		return
	}

	// Verify authentication token
	authz, err := h.verifier.VerifyBearer(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			shared.RespondWithUnauthorized(w, r)
			return
		}
		slog.Error("failed to verify bearer token", "error", err)
		shared.RespondWithServerError(w, r, err)
		return
	}

	// Create offer
	id, err := h.offerService.Create(r.Context(), authz, service.CreateOfferInput{
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		Price:          *req.Price,
		PickupArea:     req.PickupArea,
		DeliveryArea:   req.DeliveryArea,
		AvailableUntil: req.AvailableUntil,
	})
	if err != nil {
		if errors.Is(err, service.ErrRoleForbidden) {
			shared.RespondWithForbidden(w, r, "Anda tidak memiliki akses untuk membuat offer!")
			return
		}
		slog.Error("failed to create offer", "error", err, "user_id", authz.UserID)
		shared.RespondWithServerError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, CreateOfferResponse{
		Success: true,
		ID:      id,
	})
}

// ListOffers handles GET /api/v1/offers.
// Authentication is handled by the middleware. Query parameters:
// type (all|single|multi, default all), page (default 1), limit
// (default 10).
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetAuthorization(r); !ok {
		shared.RespondWithUnauthorized(w, r)
		return
	}

	query := r.URL.Query()
	listType := query.Get("type")
	if listType == "" {
		listType = service.ListTypeAll
	}

	page := queryInt(query.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(query.Get("limit"), service.DefaultListLimit)

	list, err := h.offerService.List(r.Context(), listType, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidListType) {
			shared.RespondWithBadRequest(w, r, []shared.FieldError{
				{Path: "type", Message: "Invalid type parameter"},
			})
			return
		}
		slog.Error("failed to list offers", "error", err, "type", listType)
		shared.RespondWithServerError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, list)
}

// queryInt parses a query parameter as an integer, falling back to the
// default on absence or garbage.
func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
