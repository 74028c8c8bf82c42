package services

import (
	"context"
	"sync"
	"time"

	"megacitycab/internal/backend"
	"megacitycab/internal/models"
	"megacitycab/pkg/maps"
)

// fakeBackend records booking calls and serves canned catalogue data.
// Setting unauthorized makes every authenticated call answer 401.
type fakeBackend struct {
	mu sync.Mutex

	loginResp *models.LoginResponse
	loginErr  error

	vehicles        []models.Vehicle
	allVehicles     []models.Vehicle
	vehicleCalls    int
	drivers         []models.Driver
	pendingDrivers  []models.Driver
	categories      []models.Category
	admins          []models.Admin
	customer        *models.Customer
	bookings        []*models.BookingRequest
	bookingErr      error
	unauthorized    bool
	actionErr       error
	actions         []string
	driverRegs      []*models.DriverRegistration
	driverImages    []models.DriverImages
	vehicleRegs     []*models.VehicleRegistration
	uploadedPicture *models.FileUpload
}

func (f *fakeBackend) authed(token string) error {
	if f.unauthorized {
		return backend.ErrUnauthorized
	}
	return nil
}

func (f *fakeBackend) record(action string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
	return f.actionErr
}

func (f *fakeBackend) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) CreateBooking(ctx context.Context, token string, req *models.BookingRequest) (*models.Booking, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	if f.bookingErr != nil {
		return nil, f.bookingErr
	}
	f.mu.Lock()
	f.bookings = append(f.bookings, req)
	f.mu.Unlock()
	return &models.Booking{BookingID: "b-1", RideStatus: models.RideStatusPending}, nil
}

func (f *fakeBackend) ApprovedVehicles(ctx context.Context) ([]models.Vehicle, error) {
	f.mu.Lock()
	f.vehicleCalls++
	f.mu.Unlock()
	return f.vehicles, nil
}

func (f *fakeBackend) AllVehicles(ctx context.Context, token string) ([]models.Vehicle, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	return f.allVehicles, nil
}

func (f *fakeBackend) ApproveVehicle(ctx context.Context, token, id string) error {
	if err := f.authed(token); err != nil {
		return err
	}
	return f.record("approve-vehicle:" + id)
}

func (f *fakeBackend) RejectVehicle(ctx context.Context, token, id string) error {
	if err := f.authed(token); err != nil {
		return err
	}
	return f.record("reject-vehicle:" + id)
}

func (f *fakeBackend) Categories(ctx context.Context, token string) ([]models.Category, error) {
	if token != "" {
		if err := f.authed(token); err != nil {
			return nil, err
		}
	}
	return f.categories, nil
}

func (f *fakeBackend) AddCategory(ctx context.Context, token string, c *models.Category) (*models.Category, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	if err := f.record("add-category:" + c.CategoryName); err != nil {
		return nil, err
	}
	out := *c
	out.CategoryID = "c-1"
	return &out, nil
}

func (f *fakeBackend) UpdateCategory(ctx context.Context, token, id string, c *models.Category) (*models.Category, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	if err := f.record("update-category:" + id); err != nil {
		return nil, err
	}
	out := *c
	out.CategoryID = models.ID(id)
	return &out, nil
}

func (f *fakeBackend) DeleteCategory(ctx context.Context, token, id string) error {
	if err := f.authed(token); err != nil {
		return err
	}
	return f.record("delete-category:" + id)
}

func (f *fakeBackend) AllDrivers(ctx context.Context, token string) ([]models.Driver, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	return f.drivers, nil
}

func (f *fakeBackend) PendingDrivers(ctx context.Context, token string) ([]models.Driver, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	return f.pendingDrivers, nil
}

func (f *fakeBackend) ApproveDriver(ctx context.Context, token, id string) error {
	if err := f.authed(token); err != nil {
		return err
	}
	return f.record("approve-driver:" + id)
}

func (f *fakeBackend) RejectDriver(ctx context.Context, token, id string) error {
	if err := f.authed(token); err != nil {
		return err
	}
	return f.record("reject-driver:" + id)
}

func (f *fakeBackend) ToggleDriverStatus(ctx context.Context, token, id string) (*models.Driver, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	if err := f.record("toggle-driver:" + id); err != nil {
		return nil, err
	}
	return &models.Driver{DriverID: models.ID(id), Status: models.DriverUnavailable}, nil
}

func (f *fakeBackend) DeleteDriver(ctx context.Context, token, id string) error {
	if err := f.authed(token); err != nil {
		return err
	}
	return f.record("delete-driver:" + id)
}

func (f *fakeBackend) RegisterDriver(ctx context.Context, reg *models.DriverRegistration, images models.DriverImages) (string, error) {
	if err := f.record("register-driver"); err != nil {
		return "", err
	}
	f.driverRegs = append(f.driverRegs, reg)
	f.driverImages = append(f.driverImages, images)
	return "ok", nil
}

func (f *fakeBackend) AddDriver(ctx context.Context, token string, reg *models.DriverRegistration, images models.DriverImages) (string, error) {
	if err := f.authed(token); err != nil {
		return "", err
	}
	if err := f.record("add-driver"); err != nil {
		return "", err
	}
	f.driverRegs = append(f.driverRegs, reg)
	return "ok", nil
}

func (f *fakeBackend) RegisterVehicle(ctx context.Context, reg *models.VehicleRegistration) (string, error) {
	if err := f.record("register-vehicle"); err != nil {
		return "", err
	}
	f.vehicleRegs = append(f.vehicleRegs, reg)
	return "ok", nil
}

func (f *fakeBackend) Admins(ctx context.Context, token string) ([]models.Admin, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	return f.admins, nil
}

func (f *fakeBackend) Admin(ctx context.Context, token, id string) (*models.Admin, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	for i := range f.admins {
		if f.admins[i].ID.String() == id {
			a := f.admins[i]
			return &a, nil
		}
	}
	return nil, &backend.APIError{StatusCode: 404, Message: "Admin not found"}
}

func (f *fakeBackend) UpdateAdmin(ctx context.Context, token, id string, u *models.AdminUpdate) (*models.Admin, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	if err := f.record("update-admin:" + id); err != nil {
		return nil, err
	}
	return &models.Admin{ID: models.ID(id), FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}, nil
}

func (f *fakeBackend) DeleteAdmin(ctx context.Context, token, id string) error {
	if err := f.authed(token); err != nil {
		return err
	}
	return f.record("delete-admin:" + id)
}

func (f *fakeBackend) UploadAdminPicture(ctx context.Context, token, id string, upload *models.FileUpload) (string, error) {
	if err := f.authed(token); err != nil {
		return "", err
	}
	f.uploadedPicture = upload
	return "http://cdn/" + id + ".png", nil
}

func (f *fakeBackend) Customer(ctx context.Context, token, id string) (*models.Customer, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	return f.customer, nil
}

func (f *fakeBackend) UpdateCustomer(ctx context.Context, token, id string, u *models.CustomerUpdate) (*models.Customer, error) {
	if err := f.authed(token); err != nil {
		return nil, err
	}
	if err := f.record("update-customer:" + id); err != nil {
		return nil, err
	}
	return &models.Customer{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, Phone: u.Phone, Address: u.Address}, nil
}

// fakeMaps answers every directions query with the same route.
type fakeMaps struct {
	meters  float64
	seconds int
	err     error
	calls   int
}

func (m *fakeMaps) Geocode(ctx context.Context, address string) (*maps.GeocodeResponse, error) {
	return &maps.GeocodeResponse{}, nil
}

func (m *fakeMaps) GetDirections(ctx context.Context, req *maps.DirectionsRequest) (*maps.DirectionsResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &maps.DirectionsResponse{Routes: []maps.Route{{
		Distance:     maps.Distance{Text: "10.0 km", Value: m.meters},
		Duration:     maps.Duration{Text: "20 mins", Value: m.seconds},
		Polyline:     "poly",
		StartAddress: req.Origin,
		EndAddress:   req.Destination,
	}}}, nil
}

func (m *fakeMaps) Autocomplete(ctx context.Context, req *maps.AutocompleteRequest) (*maps.AutocompleteResponse, error) {
	return &maps.AutocompleteResponse{Predictions: []maps.Prediction{{PlaceID: "p1", Description: req.Input + " Junction"}}}, nil
}

// memCache is an in-process CacheService for the vehicle catalogue tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]models.Vehicle
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]models.Vehicle{}}
}

func (c *memCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return ErrCacheMiss
	}
	*(dest.(*[]models.Vehicle)) = v
	return nil
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value.([]models.Vehicle)
	return nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}
