package domain

import (
	"time"

	"github.com/google/uuid"
)

// Offer type strings as they appear on the wire. The type decides which
// table an offer lives in and is immutable once created.
const (
	// OfferTypeSingle ("jasa-titip") is a one-off errand offer.
	OfferTypeSingle = "jasa-titip"

	// OfferTypeMulti ("antar-jemput") is a pickup/delivery offer.
	OfferTypeMulti = "antar-jemput"
)

// OfferStatusAvailable is the status every freshly created offer starts in.
const OfferStatusAvailable = "available"

// ValidOfferType reports whether t is a known offer type string.
func ValidOfferType(t string) bool {
	return t == OfferTypeSingle || t == OfferTypeMulti
}

// SingleOffer is a "jasa-titip" listing stored in the single_offers
// table. AvailableUntil is carried as the raw string submitted by the
// client and cast by the database on insert.
type SingleOffer struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Type           string    `json:"type"`
	Price          float64   `json:"price"`
	PickupArea     string    `json:"pickup_area"`
	DeliveryArea   string    `json:"delivery_area"`
	AvailableUntil string    `json:"available_until"`
	OfferStatus    string    `json:"offer_status"`
	Freelancer     string    `json:"freelancer"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewSingleOffer creates a SingleOffer owned by the given freelancer,
// generating a new ID and setting the initial status.
// Returns an error if validation fails.
func NewSingleOffer(
	title, description string,
	price float64,
	pickupArea, deliveryArea, availableUntil, freelancer string,
) (*SingleOffer, error) {
	now := time.Now().UTC()
	offer := &SingleOffer{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    description,
		Type:           OfferTypeSingle,
		Price:          price,
		PickupArea:     pickupArea,
		DeliveryArea:   deliveryArea,
		AvailableUntil: availableUntil,
		OfferStatus:    OfferStatusAvailable,
		Freelancer:     freelancer,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := offer.Validate(); err != nil {
		return nil, err
	}

	return offer, nil
}

// Validate checks if the SingleOffer has valid data.
func (o *SingleOffer) Validate() error {
	if o.Title == "" {
		return ErrEmptyTitle
	}
	if o.Description == "" {
		return ErrEmptyDescription
	}
	if o.Price < 0 {
		return ErrNegativePrice
	}
	if o.Freelancer == "" {
		return ErrEmptyFreelancer
	}
	return nil
}

// MultiOffer is an "antar-jemput" listing stored in the multi_offers
// table. Its single area field is named Location; on the unified
// listing it surfaces as delivery_area.
type MultiOffer struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	Location       string    `json:"location"`
	AvailableUntil string    `json:"available_until"`
	Status         string    `json:"status"`
	Freelancer     string    `json:"freelancer"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewMultiOffer creates a MultiOffer owned by the given freelancer.
// The delivery area submitted by the client becomes the offer location.
func NewMultiOffer(
	title, description string,
	price float64,
	location, availableUntil, freelancer string,
) (*MultiOffer, error) {
	now := time.Now().UTC()
	offer := &MultiOffer{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    description,
		Price:          price,
		Location:       location,
		AvailableUntil: availableUntil,
		Status:         OfferStatusAvailable,
		Freelancer:     freelancer,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := offer.Validate(); err != nil {
		return nil, err
	}

	return offer, nil
}

// Validate checks if the MultiOffer has valid data.
func (o *MultiOffer) Validate() error {
	if o.Title == "" {
		return ErrEmptyTitle
	}
	if o.Description == "" {
		return ErrEmptyDescription
	}
	if o.Price < 0 {
		return ErrNegativePrice
	}
	if o.Freelancer == "" {
		return ErrEmptyFreelancer
	}
	return nil
}
