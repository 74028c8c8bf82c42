package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleDecodesNumericAndStringFields(t *testing.T) {
	var vehicles []Vehicle
	err := json.Unmarshal([]byte(`[
		{"id": 7, "pricePerKm": "3.5", "transmission": "Auto"},
		{"vehicleId": "V-9", "pricePerKm": 4, "registrationStatus": "PENDING"},
		{"id": null, "pricePerKm": ""}
	]`), &vehicles)
	require.NoError(t, err)

	assert.Equal(t, "7", vehicles[0].Key())
	assert.Equal(t, FlexFloat(3.5), vehicles[0].PricePerKm)
	assert.Equal(t, "V-9", vehicles[1].Key())
	assert.Equal(t, FlexFloat(4), vehicles[1].PricePerKm)
	assert.Equal(t, "", vehicles[2].Key())
	assert.Zero(t, vehicles[2].PricePerKm)
}

func TestFlexFloatRejectsGarbage(t *testing.T) {
	var f FlexFloat
	assert.Error(t, json.Unmarshal([]byte(`"cheap"`), &f))
}

func TestVehicleFilter(t *testing.T) {
	v := &Vehicle{Transmission: "Automatic", FuelType: "Petrol"}

	assert.True(t, VehicleFilter{}.Match(v))
	assert.True(t, VehicleFilter{Transmission: "all", FuelType: "ALL"}.Match(v))
	assert.True(t, VehicleFilter{Transmission: "automatic"}.Match(v))
	assert.False(t, VehicleFilter{FuelType: "Diesel"}.Match(v))
}

func TestVehicleStatusFilter(t *testing.T) {
	pending := &Vehicle{RegistrationStatus: RegistrationPending}
	approved := &Vehicle{RegistrationStatus: RegistrationApproved}

	assert.True(t, VehicleFilterAll.Match(pending))
	assert.True(t, VehicleFilterPending.Match(pending))
	assert.False(t, VehicleFilterPending.Match(approved))
	assert.True(t, VehicleFilterApproved.Match(approved))
	assert.False(t, VehicleFilterApproved.Match(pending))
}

func TestRoleLandingPage(t *testing.T) {
	cases := map[Role]string{
		RoleCustomer: "/",
		RoleDriver:   "/driver-dashboard",
		RoleAdmin:    "/admin",
		RoleVehicle:  "/vehicle-dashboard",
	}
	for role, want := range cases {
		got, ok := role.LandingPage()
		assert.True(t, ok, role)
		assert.Equal(t, want, got)
	}

	_, ok := Role("ROLE_GUEST").LandingPage()
	assert.False(t, ok)
}

func TestBookingRequestNullVehicle(t *testing.T) {
	raw, err := json.Marshal(BookingRequest{RideStatus: RideStatusPending})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"vehicleId":null`)
	assert.Contains(t, string(raw), `"rideStatus":"PENDING"`)
}
