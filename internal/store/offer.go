package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/unitip/unitip-api/internal/domain"
)

// OfferRow is a unified listing row produced by the offer queries.
// Rows from multi_offers surface with Type hard-coded to "antar-jemput",
// their location aliased to DeliveryArea and an empty PickupArea, so
// both tables share one shape. String and numeric fields are already
// normalized to ""/0 by the store; AvailableUntil stays nullable so the
// caller can apply its own default.
type OfferRow struct {
	ID             string
	Title          string
	Description    string
	Type           string
	Price          float64
	PickupArea     string
	DeliveryArea   string
	AvailableUntil sql.NullTime
	FreelancerName string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OfferStore defines the interface for offer persistence across the
// single_offers and multi_offers tables.
type OfferStore interface {
	// CreateSingle inserts a "jasa-titip" offer and returns the new row ID.
	// Returns ErrNoID if the insert yields no ID and ErrInvalidEntity if
	// the owning user does not exist.
	CreateSingle(ctx context.Context, offer *domain.SingleOffer) (string, error)

	// CreateMulti inserts an "antar-jemput" offer and returns the new row ID.
	CreateMulti(ctx context.Context, offer *domain.MultiOffer) (string, error)

	// ListSingle returns a page of single offers joined to their owning
	// user, ordered by creation time descending.
	ListSingle(ctx context.Context, offset, limit int) ([]OfferRow, error)

	// ListAllSingle returns every single offer, unpaginated and unordered.
	ListAllSingle(ctx context.Context) ([]OfferRow, error)

	// ListMulti returns a page of multi offers, ordered by creation time
	// descending.
	ListMulti(ctx context.Context, offset, limit int) ([]OfferRow, error)

	// ListAllMulti returns every multi offer, unpaginated and unordered.
	ListAllMulti(ctx context.Context) ([]OfferRow, error)

	// CountSingle returns the total number of single offers.
	CountSingle(ctx context.Context) (int, error)

	// CountMulti returns the total number of multi offers.
	CountMulti(ctx context.Context) (int, error)
}
