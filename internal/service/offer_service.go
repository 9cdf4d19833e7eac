package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/platform/logger"
	"github.com/unitip/unitip-api/internal/service/auth"
	"github.com/unitip/unitip-api/internal/store"
)

// Offer list type selectors accepted by List.
const (
	ListTypeAll    = "all"
	ListTypeSingle = "single"
	ListTypeMulti  = "multi"
)

// DefaultListLimit is the page size used when the caller supplies none.
const DefaultListLimit = 10

// CreateOfferInput carries the validated fields of an offer creation
// request. Type decides which table the offer lands in.
type CreateOfferInput struct {
	Title          string
	Description    string
	Type           string
	Price          float64
	PickupArea     string
	DeliveryArea   string
	AvailableUntil string
}

// OfferFreelancer is the owning user as exposed on listings.
type OfferFreelancer struct {
	Name string `json:"name"`
}

// Offer is a unified listing entry drawn from either offer table.
type Offer struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Type           string          `json:"type"`
	PickupArea     string          `json:"pickup_area"`
	DeliveryArea   string          `json:"delivery_area"`
	AvailableUntil time.Time       `json:"available_until"`
	Price          float64         `json:"price"`
	Freelancer     OfferFreelancer `json:"freelancer"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PageInfo describes the returned page of a listing.
type PageInfo struct {
	Count      int `json:"count"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// OfferList is the result of a listing request.
type OfferList struct {
	Offers   []Offer  `json:"offers"`
	PageInfo PageInfo `json:"page_info"`
}

// OfferService implements offer creation and the unified listing.
type OfferService struct {
	offers store.OfferStore
	logger *slog.Logger
}

// NewOfferService creates a new OfferService with the given dependencies.
// If logger is nil, a default logger will be used.
func NewOfferService(offers store.OfferStore, logger *slog.Logger) *OfferService {
	if offers == nil {
		panic("offers cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &OfferService{
		offers: offers,
		logger: logger.With(slog.String("component", "offer_service")),
	}
}

// Create publishes a new offer owned by the authenticated user.
// Customers are rejected with ErrRoleForbidden before anything is
// written. Returns the new offer's ID.
func (s *OfferService) Create(
	ctx context.Context,
	authz *auth.Authorization,
	in CreateOfferInput,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if authz.IsCustomer() {
		log.Debug("customer attempted to create offer",
			slog.String("user_id", authz.UserID))
		return "", ErrRoleForbidden
	}

	switch in.Type {
	case domain.OfferTypeSingle:
		offer, err := domain.NewSingleOffer(
			in.Title,
			in.Description,
			in.Price,
			in.PickupArea,
			in.DeliveryArea,
			in.AvailableUntil,
			authz.UserID,
		)
		if err != nil {
			return "", err
		}
		return s.offers.CreateSingle(ctx, offer)

	case domain.OfferTypeMulti:
		// Multi offers keep a single area; the submitted delivery area
		// becomes the offer location.
		offer, err := domain.NewMultiOffer(
			in.Title,
			in.Description,
			in.Price,
			in.DeliveryArea,
			in.AvailableUntil,
			authz.UserID,
		)
		if err != nil {
			return "", err
		}
		return s.offers.CreateMulti(ctx, offer)

	default:
		return "", domain.ErrInvalidOfferType
	}
}

// List returns a page of offers of the requested type. For "single" and
// "multi" the ordering and pagination are pushed into the query. For
// "all" both tables are fetched unpaginated, merged, sorted by creation
// time descending, and sliced to the requested window; the counts of
// both tables are summed for total_pages.
func (s *OfferService) List(
	ctx context.Context,
	listType string,
	page, limit int,
) (*OfferList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultListLimit
	}

	switch listType {
	case ListTypeSingle:
		rows, err := s.offers.ListSingle(ctx, (page-1)*limit, limit)
		if err != nil {
			return nil, err
		}
		count, err := s.offers.CountSingle(ctx)
		if err != nil {
			return nil, err
		}
		return buildOfferList(rows, page, limit, count), nil

	case ListTypeMulti:
		rows, err := s.offers.ListMulti(ctx, (page-1)*limit, limit)
		if err != nil {
			return nil, err
		}
		count, err := s.offers.CountMulti(ctx)
		if err != nil {
			return nil, err
		}
		return buildOfferList(rows, page, limit, count), nil

	case ListTypeAll:
		singles, err := s.offers.ListAllSingle(ctx)
		if err != nil {
			return nil, err
		}
		multis, err := s.offers.ListAllMulti(ctx)
		if err != nil {
			return nil, err
		}
		singleCount, err := s.offers.CountSingle(ctx)
		if err != nil {
			return nil, err
		}
		multiCount, err := s.offers.CountMulti(ctx)
		if err != nil {
			return nil, err
		}

		merged := append(singles, multis...)
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		})

		return buildOfferList(
			pageWindow(merged, page, limit),
			page,
			limit,
			singleCount+multiCount,
		), nil

	default:
		return nil, ErrInvalidListType
	}
}

// pageWindow slices rows to the requested page, clamping out-of-range
// windows to empty.
func pageWindow(rows []store.OfferRow, page, limit int) []store.OfferRow {
	start := (page - 1) * limit
	if start >= len(rows) {
		return nil
	}

	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end]
}

// buildOfferList converts store rows into the response shape, applying
// the listing defaults: a missing available_until becomes the current
// time and a missing type defaults to "jasa-titip".
func buildOfferList(rows []store.OfferRow, page, limit, total int) *OfferList {
	offers := make([]Offer, 0, len(rows))
	for _, row := range rows {
		availableUntil := time.Now()
		if row.AvailableUntil.Valid {
			availableUntil = row.AvailableUntil.Time
		}

		offerType := row.Type
		if offerType == "" {
			offerType = domain.OfferTypeSingle
		}

		offers = append(offers, Offer{
			ID:             row.ID,
			Title:          row.Title,
			Description:    row.Description,
			Type:           offerType,
			PickupArea:     row.PickupArea,
			DeliveryArea:   row.DeliveryArea,
			AvailableUntil: availableUntil,
			Price:          row.Price,
			Freelancer:     OfferFreelancer{Name: row.FreelancerName},
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		})
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &OfferList{
		Offers: offers,
		PageInfo: PageInfo{
			Count:      len(offers),
			Page:       page,
			TotalPages: totalPages,
		},
	}
}
