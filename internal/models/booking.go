package models

type RideStatus string

const (
	RideStatusPending   RideStatus = "PENDING"
	RideStatusAccepted  RideStatus = "ACCEPTED"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// BookingForm is what the customer fills in on the booking page.
type BookingForm struct {
	PickupLocation  string `json:"pickupLocation" form:"pickupLocation"`
	DropOffLocation string `json:"dropOffLocation" form:"dropOffLocation"`
	PickupDate      string `json:"pickupDate" form:"pickupDate"` // YYYY-MM-DD
	PickupTime      string `json:"pickupTime" form:"pickupTime"` // HH:MM
	CustomerName    string `json:"customerName" form:"customerName"`
	CustomerEmail   string `json:"customerEmail" form:"customerEmail"`
	CustomerPhone   string `json:"customerPhone" form:"customerPhone"`
	VehicleID       string `json:"vehicleId,omitempty" form:"vehicleId"`
}

// BookingRequest is the body of /auth/createbooking.
type BookingRequest struct {
	CustomerID       string        `json:"customerId"`
	CustomerName     string        `json:"customerName"`
	CustomerEmail    string        `json:"customerEmail"`
	CustomerPhone    string        `json:"customerPhone"`
	PickupDate       string        `json:"pickupDate"`
	PickupTime       string        `json:"pickupTime"`
	PickupLocation   string        `json:"pickupLocation"`
	DropOffLocation  string        `json:"dropOffLocation"`
	RideStatus       RideStatus    `json:"rideStatus"`
	TotalFare        float64       `json:"totalFare"`
	IsActive         bool          `json:"isActive"`
	Destination      string        `json:"destination"`
	IsDriverAccepted bool          `json:"isDriverAccepted"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	VehicleID        *string       `json:"vehicleId"`
}

// Booking is the backend's view of a created booking. Only the fields the
// portal echoes back are decoded.
type Booking struct {
	BookingID  ID         `json:"bookingId,omitempty"`
	RideStatus RideStatus `json:"rideStatus,omitempty"`
	TotalFare  float64    `json:"totalFare,omitempty"`
	Message    string     `json:"message,omitempty"`
}

type FormState string

const (
	FormStateEditing   FormState = "editing"
	FormStateSubmitted FormState = "submitted"
)

type FormResult struct {
	State   FormState       `json:"state"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Booking *BookingRequest `json:"booking,omitempty"`
	Created *Booking        `json:"created,omitempty"`
	Route   *RouteResult    `json:"route,omitempty"`
	Fare    *FareEstimate   `json:"fare,omitempty"`
}

type EstimateRequest struct {
	PickupLocation  string `json:"pickupLocation" form:"pickupLocation"`
	DropOffLocation string `json:"dropOffLocation" form:"dropOffLocation"`
	VehicleID       string `json:"vehicleId,omitempty" form:"vehicleId"`
}

type Estimate struct {
	Route *RouteResult  `json:"route"`
	Fare  *FareEstimate `json:"fare"`
}
