package validators

import (
	"time"

	"megacitycab/internal/models"
	"megacitycab/internal/utils"
)

const (
	MsgPickupInPast    = "Pickup date and time cannot be in the past."
	MsgPhoneLength     = "Phone number must be exactly 10 characters long."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgRequiredFields  = "Please fill in all required fields."
	MsgInvalidDateTime = "Please enter a valid pickup date and time."
)

// FormError is a whole-form rejection with a single user-facing message.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

// ValidateBookingForm applies the booking rules in order and returns the
// first one that fails. The pickup moment is read in loc and compared to now.
func ValidateBookingForm(form *models.BookingForm, now time.Time, loc *time.Location) *FormError {
	var (
		pickup    time.Time
		pickupErr error
		hasPickup = !utils.IsBlank(form.PickupDate) && !utils.IsBlank(form.PickupTime)
	)
	if hasPickup {
		pickup, pickupErr = utils.ParsePickup(form.PickupDate, form.PickupTime, loc)
		if pickupErr == nil && pickup.Before(now) {
			return &FormError{Field: "pickupDate", Message: MsgPickupInPast}
		}
	}

	if !utils.IsTenDigitPhone(form.CustomerPhone) {
		return &FormError{Field: "customerPhone", Message: MsgPhoneLength}
	}

	if !IsValidBookingEmail(form.CustomerEmail) {
		return &FormError{Field: "customerEmail", Message: MsgInvalidEmail}
	}

	required := []struct {
		field, value string
	}{
		{"pickupLocation", form.PickupLocation},
		{"dropOffLocation", form.DropOffLocation},
		{"pickupDate", form.PickupDate},
		{"pickupTime", form.PickupTime},
		{"customerName", form.CustomerName},
		{"customerEmail", form.CustomerEmail},
		{"customerPhone", form.CustomerPhone},
	}
	for _, r := range required {
		if utils.IsBlank(r.value) {
			return &FormError{Field: r.field, Message: MsgRequiredFields}
		}
	}

	if pickupErr != nil {
		return &FormError{Field: "pickupDate", Message: MsgInvalidDateTime}
	}

	return nil
}
