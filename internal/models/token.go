package models

// user roles
const (
	RoleUser  = "user"
	RoleChef  = "chef"
	RoleRider = "rider"
	RoleAdmin = "admin"
)

// TokenPayload is verified identity extracted from auth token
type TokenPayload struct {
	Email string
	Role  string
}
