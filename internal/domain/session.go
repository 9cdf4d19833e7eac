package domain

// Known session roles. Any role other than "customer" is allowed to
// publish offers and apply for jobs. Sessions themselves are opaque
// tokens issued at login time (outside this service) and mapped to a
// user and role in the user_sessions table.
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
)
