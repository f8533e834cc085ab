package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealer-backend/internal/model"
	"github.com/motorline/dealer-backend/internal/repository"
	"github.com/motorline/dealer-backend/internal/service"
)

// stubCarStore is a minimal in-memory service.CarStore for exercising
// the HTTP status mapping end to end.
type stubCarStore struct {
	nextID uint64
	cars   map[uint64]model.Car
}

func newStubCarStore() *stubCarStore {
	return &stubCarStore{cars: map[uint64]model.Car{}}
}

func (s *stubCarStore) Create(_ context.Context, c *model.Car) error {
	s.nextID++
	c.ID = s.nextID
	s.cars[c.ID] = *c
	return nil
}

func (s *stubCarStore) GetByID(_ context.Context, id uint64) (*model.Car, error) {
	c, ok := s.cars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *stubCarStore) FindByMakeModelYear(_ context.Context, make, mdl string, year int) (*model.Car, error) {
	for _, c := range s.cars {
		if c.Make == make && c.Model == mdl && c.Year == year {
			c := c
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubCarStore) List(_ context.Context) ([]*model.Car, error) {
	out := make([]*model.Car, 0, len(s.cars))
	for _, c := range s.cars {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (s *stubCarStore) Update(_ context.Context, c *model.Car) error {
	if _, ok := s.cars[c.ID]; !ok {
		return repository.ErrNotFound
	}
	s.cars[c.ID] = *c
	return nil
}

func (s *stubCarStore) Delete(_ context.Context, id uint64) (*model.Car, error) {
	c, ok := s.cars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(s.cars, id)
	return &c, nil
}

// stubInventoryProbe reports a fixed set of referenced car ids.
type stubInventoryProbe struct{ referenced map[uint64]bool }

func (s *stubInventoryProbe) ExistsByCarID(_ context.Context, carID uint64) (bool, error) {
	return s.referenced[carID], nil
}

func newCarHandlerFixture(probe *stubInventoryProbe) (*RecordHandler, *stubCarStore) {
	if probe == nil {
		probe = &stubInventoryProbe{referenced: map[uint64]bool{}}
	}
	store := newStubCarStore()
	h := &RecordHandler{Cars: service.NewCarService(store, probe)}
	return h, store
}

func doJSON(t *testing.T, method, target, body string, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(req, rec)))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateCarReturnsCreated(t *testing.T) {
	h, _ := newCarHandlerFixture(nil)

	rec := doJSON(t, http.MethodPost, "/v1/cars",
		`{"make":"Toyota","model":"Camry","year":2022,"price":28000}`, h.CreateCar)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "New car Toyota - Camry created", body["message"])
	car := body["car"].(map[string]any)
	assert.Equal(t, float64(1), car["id"])
	assert.Equal(t, true, car["active"])
}

func TestCreateCarDuplicateConflict(t *testing.T) {
	h, _ := newCarHandlerFixture(nil)

	payload := `{"make":"Toyota","model":"Camry","year":2022,"price":28000}`
	first := doJSON(t, http.MethodPost, "/v1/cars", payload, h.CreateCar)
	require.Equal(t, http.StatusCreated, first.Code)

	rec := doJSON(t, http.MethodPost, "/v1/cars", payload, h.CreateCar)
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "duplicate car", body["error"])
	assert.Equal(t, float64(1), body["conflict_id"])
}

func TestCreateCarMissingFields(t *testing.T) {
	h, _ := newCarHandlerFixture(nil)

	rec := doJSON(t, http.MethodPost, "/v1/cars", `{"make":"Toyota"}`, h.CreateCar)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCarUnknownIDNotFound(t *testing.T) {
	h, _ := newCarHandlerFixture(nil)

	rec := doJSON(t, http.MethodPatch, "/v1/cars",
		`{"id":99,"make":"Toyota","model":"Camry","year":2022,"price":28000,"active":true}`, h.UpdateCar)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeBody(t, rec)["error"])
}

func TestDeleteCarBlockedByInventory(t *testing.T) {
	probe := &stubInventoryProbe{referenced: map[uint64]bool{1: true}}
	h, _ := newCarHandlerFixture(probe)

	created := doJSON(t, http.MethodPost, "/v1/cars",
		`{"make":"Toyota","model":"Corolla","year":2020,"price":21000}`, h.CreateCar)
	require.Equal(t, http.StatusCreated, created.Code)

	rec := doJSON(t, http.MethodDelete, "/v1/cars", `{"id":1}`, h.DeleteCar)
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "car has assigned inventory records", body["error"])
	assert.Equal(t, "inventory", body["blocked_by"])
}

func TestDeleteCarSucceeds(t *testing.T) {
	h, store := newCarHandlerFixture(nil)
	require.NoError(t, store.Create(context.Background(),
		&model.Car{Make: "Mazda", Model: "3", Year: 2019, Price: 18000}))

	rec := doJSON(t, http.MethodDelete, "/v1/cars", `{"id":1}`, h.DeleteCar)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Car Mazda with ID 1 deleted", decodeBody(t, rec)["message"])

	_, err := store.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteCarMissingID(t *testing.T) {
	h, _ := newCarHandlerFixture(nil)
	rec := doJSON(t, http.MethodDelete, "/v1/cars", `{}`, h.DeleteCar)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
