// Package api handles incoming HTTP requests, request validation,
// bearer-token verification, and response formatting. It acts as an
// adapter between external clients and the internal application
// services, translating HTTP concerns to business operations.
//
// The mutating endpoints (offer creation, profile update, job apply)
// validate the request body before authenticating the caller; the read
// endpoints authenticate first via middleware. This ordering is part of
// the API contract.
//
// Store reads and updates that find nothing map to 500, not 404: by the
// time a store runs the caller has already been authenticated, so a
// missing row means inconsistent state rather than a client mistake.
package api
