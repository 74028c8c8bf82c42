package models

type Admin struct {
	ID             ID     `json:"id,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	NIC            string `json:"nic,omitempty"`
	UserName       string `json:"userName,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Active         bool   `json:"active"`
}

type AdminUpdate struct {
	FirstName string `json:"firstName" validate:"required_trimmed"`
	LastName  string `json:"lastName" validate:"required_trimmed"`
	Email     string `json:"email" validate:"required_trimmed,loose_email"`
	Phone     string `json:"phone,omitempty"`
	NIC       string `json:"nic,omitempty"`
	UserName  string `json:"userName,omitempty"`
	Active    *bool  `json:"active,omitempty"`
}

type DashboardStats struct {
	TotalVehicles    int `json:"totalVehicles"`
	PendingVehicles  int `json:"pendingVehicles"`
	ApprovedVehicles int `json:"approvedVehicles"`
	RejectedVehicles int `json:"rejectedVehicles"`
	ApprovedDrivers  int `json:"approvedDrivers"`
	PendingDrivers   int `json:"pendingDrivers"`
	Categories       int `json:"categories"`
}
