package models

type Role string

const (
	RoleCustomer Role = "ROLE_CUSTOMER"
	RoleDriver   Role = "ROLE_DRIVER"
	RoleAdmin    Role = "ROLE_ADMIN"
	RoleVehicle  Role = "ROLE_VEHICLE"
)

var landingPages = map[Role]string{
	RoleCustomer: "/",
	RoleDriver:   "/driver-dashboard",
	RoleAdmin:    "/admin",
	RoleVehicle:  "/vehicle-dashboard",
}

// LandingPage returns where a freshly logged-in user of this role is sent.
func (r Role) LandingPage() (string, bool) {
	page, ok := landingPages[r]
	return page, ok
}

type LoginForm struct {
	Username string `json:"username" form:"username" validate:"required_trimmed"`
	Password string `json:"password" form:"password" validate:"required_trimmed"`
}

// LoginRequest is the backend's /auth/login body.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	UserID  ID     `json:"userId"`
	Role    Role   `json:"role"`
	Message string `json:"message,omitempty"`
}

type LoginResult struct {
	SessionID string       `json:"session_id"`
	User      *Credentials `json:"user"`
	Redirect  string       `json:"redirect"`
}
