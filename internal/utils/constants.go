package utils

import "time"

// Application Constants
const (
	AppName    = "MegaCityCab"
	AppVersion = "1.0.0"

	DefaultCurrency = "LKR"
	DefaultTimeZone = "Asia/Colombo"

	// Booking form layout
	PickupDateLayout = "2006-01-02"
	PickupTimeLayout = "15:04"

	// Sessions
	SessionHeader     = "X-Session-ID"
	DefaultSessionTTL = 24 * time.Hour

	// File Upload
	MaxImageSize   = 10 * 1024 * 1024 // 10MB
	MaxRequestSize = 48 * 1024 * 1024 // four images plus form fields

	LoginPath = "/login"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "You must be logged in to continue."
	ErrForbidden          = "You do not have permission to access this page."
	ErrSessionExpired     = "Your session has expired. Please log in again."
	ErrValidationFailed   = "validation failed"
	ErrBackendUnavailable = "The booking service is unavailable. Please try again later."
	ErrLoginToBook        = "You must be logged in to book a taxi."
	ErrRequestTooLarge    = "The uploaded files are too large."
)

// Cache Keys
const (
	CacheSessionPrefix  = "session:"
	CacheVehiclesPrefix = "vehicles:"
)

// Event Types
const (
	EventUserLogin        = "user_login"
	EventUserLogout       = "user_logout"
	EventSessionExpired   = "session_expired"
	EventBookingRejected  = "booking_rejected"
	EventBookingCreated   = "booking_created"
	EventBookingFailed    = "booking_failed"
	EventDriverRegistered = "driver_registered"
	EventVehicleApplied   = "vehicle_registered"
)

// File Types
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif"}
