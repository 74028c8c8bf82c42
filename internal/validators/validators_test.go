package validators

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megacitycab/internal/models"
)

var colombo = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Colombo")
	if err != nil {
		panic(err)
	}
	return loc
}()

func validForm() *models.BookingForm {
	return &models.BookingForm{
		PickupLocation:  "Colombo Fort",
		DropOffLocation: "Kandy",
		PickupDate:      "2026-05-10",
		PickupTime:      "08:15",
		CustomerName:    "Nimal Perera",
		CustomerEmail:   "nimal@example.lk",
		CustomerPhone:   "0771234567",
	}
}

func bookingNow() time.Time {
	return time.Date(2026, 5, 10, 8, 0, 0, 0, colombo)
}

func TestValidateBookingFormAccepts(t *testing.T) {
	assert.Nil(t, ValidateBookingForm(validForm(), bookingNow(), colombo))
}

func TestValidateBookingFormPickupNowIsAllowed(t *testing.T) {
	form := validForm()
	form.PickupTime = "08:00"
	assert.Nil(t, ValidateBookingForm(form, bookingNow(), colombo))
}

func TestValidateBookingFormRejectsPast(t *testing.T) {
	form := validForm()
	form.PickupTime = "07:59"

	err := ValidateBookingForm(form, bookingNow(), colombo)
	require.NotNil(t, err)
	assert.Equal(t, MsgPickupInPast, err.Message)
}

func TestValidateBookingFormUsesLocation(t *testing.T) {
	// 08:15 in Colombo is 02:45 UTC, so a UTC clock at 03:00 is already past it.
	now := time.Date(2026, 5, 10, 3, 0, 0, 0, time.UTC)

	err := ValidateBookingForm(validForm(), now, colombo)
	require.NotNil(t, err)
	assert.Equal(t, MsgPickupInPast, err.Message)
}

func TestValidateBookingFormPhone(t *testing.T) {
	for _, phone := range []string{"077123456", "07712345678", "077 123 456", ""} {
		form := validForm()
		form.CustomerPhone = phone
		err := ValidateBookingForm(form, bookingNow(), colombo)
		require.NotNil(t, err, phone)
		assert.Equal(t, MsgPhoneLength, err.Message)
	}
}

func TestValidateBookingFormEmail(t *testing.T) {
	for _, email := range []string{"nimal", "nimal@example", "nimal@example.c", "a@b@c.lk", "nimal@example.l1"} {
		form := validForm()
		form.CustomerEmail = email
		err := ValidateBookingForm(form, bookingNow(), colombo)
		require.NotNil(t, err, email)
		assert.Equal(t, MsgInvalidEmail, err.Message, email)
	}
}

func TestValidateBookingFormRequired(t *testing.T) {
	form := validForm()
	form.DropOffLocation = "   "

	err := ValidateBookingForm(form, bookingNow(), colombo)
	require.NotNil(t, err)
	assert.Equal(t, MsgRequiredFields, err.Message)
	assert.Equal(t, "dropOffLocation", err.Field)
}

func TestValidateBookingFormFirstFailureWins(t *testing.T) {
	form := validForm()
	form.PickupTime = "06:00"
	form.CustomerPhone = "1"
	form.CustomerEmail = "bad"
	form.CustomerName = ""

	err := ValidateBookingForm(form, bookingNow(), colombo)
	require.NotNil(t, err)
	assert.Equal(t, MsgPickupInPast, err.Message)

	form.PickupTime = "09:00"
	assert.Equal(t, MsgPhoneLength, ValidateBookingForm(form, bookingNow(), colombo).Message)

	form.CustomerPhone = "0771234567"
	assert.Equal(t, MsgInvalidEmail, ValidateBookingForm(form, bookingNow(), colombo).Message)

	form.CustomerEmail = "ok@mail.com"
	assert.Equal(t, MsgRequiredFields, ValidateBookingForm(form, bookingNow(), colombo).Message)
}

func TestValidateBookingFormMissingDateFallsToRequired(t *testing.T) {
	form := validForm()
	form.PickupDate = ""

	err := ValidateBookingForm(form, bookingNow(), colombo)
	require.NotNil(t, err)
	assert.Equal(t, MsgRequiredFields, err.Message)
}

func TestValidateBookingFormGarbageDate(t *testing.T) {
	form := validForm()
	form.PickupDate = "tomorrow"

	err := ValidateBookingForm(form, bookingNow(), colombo)
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidDateTime, err.Message)
}

func TestValidateLogin(t *testing.T) {
	errs := ValidateLogin(&models.LoginForm{Username: "  ", Password: ""})
	require.Len(t, errs, 2)
	assert.Equal(t, "username is required", errs.Map()["username"])
	assert.Equal(t, "password is required", errs.Map()["password"])

	assert.Empty(t, ValidateLogin(&models.LoginForm{Username: "kamal", Password: "secret"}))
}

func validDriverForm() *models.DriverForm {
	return &models.DriverForm{
		FirstName:     "Kamal",
		LastName:      "Silva",
		Email:         "kamal@mail.lk",
		NIC:           "901234567V",
		Phone:         "0712345678",
		LicenseNumber: "B1234567",
		LicenseExpiry: "2028-01-01",
		UserName:      "kamal",
		Password:      "secret1",
	}
}

func TestValidateDriverForm(t *testing.T) {
	assert.Empty(t, ValidateDriverForm(validDriverForm()))

	form := validDriverForm()
	form.Password = "abc"
	form.Email = "kamal at mail"
	errs := ValidateDriverForm(form).Map()
	assert.Equal(t, "password must be at least 6 characters", errs["password"])
	assert.Equal(t, MsgInvalidEmail, errs["email"])
}

func TestValidateDriverFormValueHidesPassword(t *testing.T) {
	form := validDriverForm()
	form.Password = "abc"
	errs := ValidateDriverForm(form)
	require.Len(t, errs, 1)
	assert.Empty(t, errs[0].Value)
}

func TestValidateVehicleRegistrationRequired(t *testing.T) {
	errs := ValidateVehicleRegistration(&models.VehicleRegistration{DriverName: "Sunil"})
	fields := errs.Map()
	for _, f := range []string{"userName", "password", "email", "vehicleNo", "category", "model", "color", "fuelType", "transmission"} {
		assert.Contains(t, fields, f)
	}
	assert.NotContains(t, fields, "driverName")
}

func TestValidateVehicleRegistrationEmailFormat(t *testing.T) {
	reg := &models.VehicleRegistration{
		DriverName:   "Sunil",
		UserName:     "sunil",
		Password:     "secret1",
		Email:        "not-an-email",
		VehicleNo:    "CAB-1234",
		Category:     "Sedan",
		Model:        "Axio",
		Color:        "White",
		FuelType:     "Petrol",
		Transmission: "Auto",
	}

	errs := ValidateVehicleRegistration(reg)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, MsgInvalidEmail, errs[0].Message)

	reg.Email = "sunil@mail.lk"
	assert.Empty(t, ValidateVehicleRegistration(reg))
}

func pngBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	rules := DefaultImageRules()

	assert.Nil(t, ValidateImage(nil, rules))
	assert.Nil(t, ValidateImage(&models.FileUpload{FieldName: "profileImage", Data: pngBytes(t)}, rules))

	err := ValidateImage(&models.FileUpload{FieldName: "licenseImage", Data: []byte("%PDF-1.4 not an image")}, rules)
	require.NotNil(t, err)
	assert.Equal(t, "image_type", err.Tag)
	assert.Equal(t, "licenseImage", err.Field)

	small := ImageRules{MaxSize: 16, AllowedTypes: rules.AllowedTypes}
	err = ValidateImage(&models.FileUpload{FieldName: "profileImage", Data: pngBytes(t)}, small)
	require.NotNil(t, err)
	assert.Equal(t, "image_size", err.Tag)
}

func TestValidateCategory(t *testing.T) {
	neg := -1.0
	errs := ValidateCategory(&models.CategoryForm{CategoryName: "", PricePerKm: &neg}).Map()
	assert.Contains(t, errs, "categoryname")
	assert.Contains(t, errs, "priceperkm")

	zero := 0.0
	assert.Empty(t, ValidateCategory(&models.CategoryForm{CategoryName: "Van", PricePerKm: &zero}))
	assert.Contains(t, ValidateCategory(&models.CategoryForm{CategoryName: "Van"}).Map(), "priceperkm")
}

func TestValidateCustomerUpdatePhone(t *testing.T) {
	form := &models.CustomerUpdate{FirstName: "A", LastName: "B", Email: "a@b.lk", Phone: "123"}
	assert.Equal(t, MsgPhoneLength, ValidateCustomerUpdate(form).Map()["phone"])

	form.Phone = ""
	assert.Empty(t, ValidateCustomerUpdate(form))
}

func TestCustomTagsRegistered(t *testing.T) {
	for _, tag := range []string{"required_trimmed", "phone_10", "booking_email", "loose_email"} {
		assert.NotPanics(t, func() { _ = validate.Var("x", tag) }, tag)
	}
	assert.Panics(t, func() { must(errors.New("bad tag")) })
}
