package api

// Common request/response structures

// UpdateProfileRequest defines the payload for the profile update endpoint.
// Gender accepts "male", "female" or the empty string.
type UpdateProfileRequest struct {
	Name   string `json:"name"   validate:"required"`
	Gender string `json:"gender" validate:"omitempty,oneof=male female"`
}

// UpdateProfileResponse defines the successful response for the profile
// update endpoint.
type UpdateProfileResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

// CreateOfferRequest defines the payload for the offer creation endpoint.
// Price is a pointer so a missing field and an explicit zero can be told
// apart: zero is a valid price, absence is not.
type CreateOfferRequest struct {
	Title          string   `json:"title"           validate:"required"`
	Description    string   `json:"description"     validate:"required"`
	Type           string   `json:"type"            validate:"required,oneof=antar-jemput jasa-titip"`
	AvailableUntil string   `json:"available_until" validate:"required"`
	Price          *float64 `json:"price"           validate:"required,gte=0"`
	PickupArea     string   `json:"pickup_area"`
	DeliveryArea   string   `json:"delivery_area"`
}

// CreateOfferResponse defines the successful response for the offer
// creation endpoint.
type CreateOfferResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ApplyJobRequest defines the payload for the job application endpoint.
type ApplyJobRequest struct {
	Price *float64 `json:"price" validate:"required,gte=0"`
}

// ApplyJobResponse defines the successful response for the job
// application endpoint.
type ApplyJobResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
