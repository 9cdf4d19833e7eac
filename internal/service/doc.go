// Package service provides application-level services for offers,
// profiles, and job applications. Services hold the business rules
// (role gating, the unified offer listing merge) and depend only on the
// store interfaces.
package service
