package models

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	UserName  string `json:"userName,omitempty"`
}

type CustomerUpdate struct {
	FirstName string `json:"firstName" validate:"required_trimmed"`
	LastName  string `json:"lastName" validate:"required_trimmed"`
	Email     string `json:"email" validate:"required_trimmed,loose_email"`
	Phone     string `json:"phone" validate:"omitempty,phone_10"`
	Address   string `json:"address"`
}
