// Package domain contains the core business entities of the Unitip
// marketplace (users, sessions, offers, job applications) and their
// validation logic, independent of any specific infrastructure or
// delivery mechanism.
package domain
