package models

type Category struct {
	CategoryID   ID      `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryname"`
	PricePerKm   float64 `json:"priceperkm"`
}

type CategoryForm struct {
	CategoryName string   `json:"categoryname" validate:"required_trimmed,max=100"`
	PricePerKm   *float64 `json:"priceperkm" validate:"required,gte=0"`
}
