package models

type DriverStatus string

const (
	DriverAvailable   DriverStatus = "AVAILABLE"
	DriverUnavailable DriverStatus = "UNAVAILABLE"
)

type Driver struct {
	DriverID           ID                 `json:"driverId,omitempty"`
	FirstName          string             `json:"firstName,omitempty"`
	LastName           string             `json:"lastName,omitempty"`
	Email              string             `json:"email,omitempty"`
	Phone              string             `json:"phone,omitempty"`
	NIC                string             `json:"nic,omitempty"`
	LicenseNumber      string             `json:"licenseNumber,omitempty"`
	LicenseExpiry      string             `json:"licenseExpiry,omitempty"`
	ExperienceYears    int                `json:"experienceYears,omitempty"`
	UserName           string             `json:"userName,omitempty"`
	ProfileImage       string             `json:"profileImage,omitempty"`
	RegistrationStatus RegistrationStatus `json:"registrationStatus,omitempty"`
	Status             DriverStatus       `json:"status,omitempty"`
	IsActive           bool               `json:"isActive"`
}

func (d *Driver) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// DriverForm is the driver registration form as posted by the browser.
type DriverForm struct {
	FirstName       string `form:"firstName" validate:"required_trimmed"`
	LastName        string `form:"lastName" validate:"required_trimmed"`
	Email           string `form:"email" validate:"required_trimmed,loose_email"`
	NIC             string `form:"nic" validate:"required_trimmed"`
	Phone           string `form:"phone" validate:"required_trimmed"`
	LicenseNumber   string `form:"licenseNumber" validate:"required_trimmed"`
	LicenseExpiry   string `form:"licenseExpiry" validate:"required_trimmed"`
	ExperienceYears string `form:"experienceYears"`
	UserName        string `form:"userName" validate:"required_trimmed"`
	Password        string `form:"password" validate:"required_trimmed,min=6"`
}

// DriverRegistration is the JSON "driver" part of the multipart upload.
type DriverRegistration struct {
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Email              string             `json:"email"`
	NIC                string             `json:"nic"`
	Phone              string             `json:"phone"`
	LicenseNumber      string             `json:"licenseNumber"`
	LicenseExpiry      string             `json:"licenseExpiry"`
	ExperienceYears    int                `json:"experienceYears"`
	UserName           string             `json:"userName"`
	Password           string             `json:"password"`
	RegistrationStatus RegistrationStatus `json:"registrationStatus"`
}

type DriverImages struct {
	Profile *FileUpload
	License *FileUpload
}
