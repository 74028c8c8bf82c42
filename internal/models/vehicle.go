package models

import "strings"

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "PENDING"
	RegistrationApproved RegistrationStatus = "APPROVED"
	RegistrationRejected RegistrationStatus = "REJECTED"
)

type Vehicle struct {
	ID                  ID                 `json:"id,omitempty"`
	VehicleID           ID                 `json:"vehicleId,omitempty"`
	VehicleNo           string             `json:"vehicleNo,omitempty"`
	Model               string             `json:"model,omitempty"`
	Category            string             `json:"category,omitempty"`
	Color               string             `json:"color,omitempty"`
	FuelType            string             `json:"fuelType,omitempty"`
	Transmission        string             `json:"transmission,omitempty"`
	Seats               int                `json:"seats,omitempty"`
	Year                string             `json:"year,omitempty"`
	ManufactureYear     string             `json:"manufactureYear,omitempty"`
	PricePerKm          FlexFloat          `json:"pricePerKm,omitempty"`
	DriverName          string             `json:"driverName,omitempty"`
	UserName            string             `json:"userName,omitempty"`
	Email               string             `json:"email,omitempty"`
	VehicleImage        string             `json:"vehicleImage,omitempty"`
	LicenseExpireDate   string             `json:"licenseExpireDate,omitempty"`
	InsuranceExpireDate string             `json:"insuranceExpireDate,omitempty"`
	RegistrationStatus  RegistrationStatus `json:"registrationStatus,omitempty"`
	IsActive            bool               `json:"isActive,omitempty"`
}

// Key returns whichever identifier the backend populated.
func (v *Vehicle) Key() string {
	if v.ID != "" {
		return v.ID.String()
	}
	return v.VehicleID.String()
}

// VehicleFilter narrows the customer catalogue. Empty or "all" disables a field.
type VehicleFilter struct {
	Transmission string `form:"transmission"`
	FuelType     string `form:"fuelType"`
}

func (f VehicleFilter) Match(v *Vehicle) bool {
	return matchOption(f.Transmission, v.Transmission) && matchOption(f.FuelType, v.FuelType)
}

func matchOption(want, got string) bool {
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return strings.EqualFold(want, got)
}

// VehicleStatusFilter is the admin list's tab.
type VehicleStatusFilter string

const (
	VehicleFilterAll      VehicleStatusFilter = "all"
	VehicleFilterPending  VehicleStatusFilter = "pending"
	VehicleFilterApproved VehicleStatusFilter = "approved"
)

func (f VehicleStatusFilter) Match(v *Vehicle) bool {
	switch f {
	case VehicleFilterPending:
		return v.RegistrationStatus == RegistrationPending
	case VehicleFilterApproved:
		return v.RegistrationStatus == RegistrationApproved
	default:
		return true
	}
}

// VehicleRegistration is the owner's registration form. Text fields are sent
// to the backend as multipart values under the same names.
type VehicleRegistration struct {
	DriverName          string `form:"driverName" validate:"required_trimmed"`
	UserName            string `form:"userName" validate:"required_trimmed"`
	Password            string `form:"password" validate:"required_trimmed"`
	Email               string `form:"email" validate:"required_trimmed,loose_email"`
	VehicleNo           string `form:"vehicleNo" validate:"required_trimmed"`
	Category            string `form:"category" validate:"required_trimmed"`
	Model               string `form:"model" validate:"required_trimmed"`
	Color               string `form:"color" validate:"required_trimmed"`
	FuelType            string `form:"fuelType" validate:"required_trimmed"`
	Transmission        string `form:"transmission" validate:"required_trimmed"`
	Seats               string `form:"seats"`
	ManufactureYear     string `form:"manufactureYear"`
	PricePerKm          string `form:"pricePerKm"`
	LicenseExpireDate   string `form:"licenseExpireDate"`
	InsuranceExpireDate string `form:"insuranceExpireDate"`

	Images []*FileUpload `form:"-"`
}

// Fields returns the multipart text values in a stable order.
func (r *VehicleRegistration) Fields() [][2]string {
	return [][2]string{
		{"driverName", r.DriverName},
		{"userName", r.UserName},
		{"password", r.Password},
		{"email", r.Email},
		{"vehicleNo", r.VehicleNo},
		{"category", r.Category},
		{"model", r.Model},
		{"color", r.Color},
		{"fuelType", r.FuelType},
		{"transmission", r.Transmission},
		{"seats", r.Seats},
		{"manufactureYear", r.ManufactureYear},
		{"pricePerKm", r.PricePerKm},
		{"licenseExpireDate", r.LicenseExpireDate},
		{"insuranceExpireDate", r.InsuranceExpireDate},
		{"registrationStatus", string(RegistrationPending)},
		{"isActive", "true"},
	}
}
