package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentwheels/internal/handlers"
	"rentwheels/internal/models"
	"rentwheels/internal/repositories/interfaces"
	"rentwheels/internal/utils"
	"rentwheels/internal/validators"
	"rentwheels/pkg/logger"
	"rentwheels/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logger.Logger {
	log, _ := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "json"})
	log.SetOutput(io.Discard)
	return log
}

// fakeVehicleRepo mirrors the repository contract in memory, including the
// field validation the real implementation runs before writes.
type fakeVehicleRepo struct {
	vehicles []*models.Vehicle
	err      error
}

func (f *fakeVehicleRepo) List(ctx context.Context) ([]*models.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vehicles, nil
}

func (f *fakeVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, vehicle := range f.vehicles {
		if vehicle.ID == id {
			return vehicle, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if f.err != nil {
		return f.err
	}
	if errs := validators.ValidateVehicle(vehicle); len(errs) > 0 {
		return errs
	}
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt
	f.vehicles = append(f.vehicles, vehicle)
	return nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, id primitive.ObjectID, req *models.VehicleUpdateRequest) (*models.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	if errs := validators.ValidateVehicleUpdate(req); len(errs) > 0 {
		return nil, errs
	}
	vehicle, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Image != nil {
		vehicle.Image = *req.Image
	}
	if req.Gallery != nil {
		vehicle.Gallery = *req.Gallery
	}
	if req.Price != nil {
		vehicle.Price = *req.Price
	}
	if req.Features != nil {
		vehicle.Features = *req.Features
	}
	if req.Description != nil {
		vehicle.Description = *req.Description
	}
	if req.Rating != nil {
		vehicle.Rating = *req.Rating
	}
	if req.IsPopular != nil {
		vehicle.IsPopular = *req.IsPopular
	}
	if req.Specs != nil {
		vehicle.Specs = *req.Specs
	}
	vehicle.UpdatedAt = time.Now()
	return vehicle, nil
}

func (f *fakeVehicleRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for i, vehicle := range f.vehicles {
		if vehicle.ID == id {
			f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func newVehicleRouter(repo interfaces.VehicleRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupVehicleRoutes(router.Group("/api"), handlers.NewVehicleHandler(repo, testLogger()))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func storedVehicle(name string, createdAt time.Time) *models.Vehicle {
	return &models.Vehicle{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Image:       "/uploads/1.jpg",
		Gallery:     []string{},
		Price:       "89€/day",
		Features:    []string{},
		Description: "Long range.",
		Rating:      5,
		Specs: models.VehicleSpecs{
			Transmission: "automatic",
			Fuel:         "electric",
			Seats:        5,
			Consumption:  "16 kWh/100km",
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestListVehicles(t *testing.T) {
	now := time.Now()
	newer := storedVehicle("Tesla Model 3", now)
	older := storedVehicle("Audi A4", now.Add(-time.Hour))
	router := newVehicleRouter(&fakeVehicleRepo{vehicles: []*models.Vehicle{newer, older}})

	w := doJSON(t, router, http.MethodGet, "/api/vehicles", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var listed []models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	// The handler emits the repository's order untouched
	assert.Equal(t, newer.ID, listed[0].ID)
	assert.Equal(t, older.ID, listed[1].ID)
}

func TestListVehiclesEmpty(t *testing.T) {
	router := newVehicleRouter(&fakeVehicleRepo{vehicles: []*models.Vehicle{}})

	w := doJSON(t, router, http.MethodGet, "/api/vehicles", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListVehiclesRepositoryError(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	router := newVehicleRouter(&fakeVehicleRepo{err: errors.New("boom")})

	w := doJSON(t, router, http.MethodGet, "/api/vehicles", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error fetching vehicles", body["message"])
	assert.Equal(t, "boom", body["error"])
}

func TestListVehiclesErrorDetailHiddenInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	router := newVehicleRouter(&fakeVehicleRepo{err: errors.New("boom")})

	w := doJSON(t, router, http.MethodGet, "/api/vehicles", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message": "Error fetching vehicles"}`, w.Body.String())
}

func TestGetVehicle(t *testing.T) {
	vehicle := storedVehicle("Tesla Model 3", time.Now())
	router := newVehicleRouter(&fakeVehicleRepo{vehicles: []*models.Vehicle{vehicle}})

	t.Run("Found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/vehicles/"+vehicle.ID.Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, vehicle.ID, got.ID)
		assert.Equal(t, "Tesla Model 3", got.Name)
	})

	t.Run("UnknownID", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/vehicles/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message": "Vehicle not found"}`, w.Body.String())
	})

	t.Run("MalformedID", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/vehicles/not-a-hex-id", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateVehicle(t *testing.T) {
	router := newVehicleRouter(&fakeVehicleRepo{})

	payload := gin.H{
		"name":        "Tesla Model 3",
		"image":       "/uploads/1.jpg",
		"price":       "89€/day",
		"description": "Long range.",
		"specs": gin.H{
			"transmission": "automatic",
			"fuel":         "electric",
			"seats":        5,
			"consumption":  "16 kWh/100km",
		},
	}

	w := doJSON(t, router, http.MethodPost, "/api/vehicles", payload)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Tesla Model 3", created.Name)
	assert.Equal(t, "89€/day", created.Price)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateVehicleValidationFailure(t *testing.T) {
	router := newVehicleRouter(&fakeVehicleRepo{})

	payload := gin.H{
		"image":       "/uploads/1.jpg",
		"price":       "89€/day",
		"description": "Long range.",
		"specs": gin.H{
			"transmission": "automatic",
			"fuel":         "electric",
			"consumption":  "16 kWh/100km",
		},
	}

	w := doJSON(t, router, http.MethodPost, "/api/vehicles", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "Name is required")
}

func TestCreateVehicleMalformedJSON(t *testing.T) {
	router := newVehicleRouter(&fakeVehicleRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/vehicles", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request payload", body["message"])
}

func TestUpdateVehicle(t *testing.T) {
	vehicle := storedVehicle("Tesla Model 3", time.Now())

	t.Run("ChangesProvidedFields", func(t *testing.T) {
		router := newVehicleRouter(&fakeVehicleRepo{vehicles: []*models.Vehicle{vehicle}})

		w := doJSON(t, router, http.MethodPut, "/api/vehicles/"+vehicle.ID.Hex(), gin.H{"price": "95€/day"})

		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "95€/day", updated.Price)
		assert.Equal(t, "Tesla Model 3", updated.Name)
	})

	t.Run("UnknownID", func(t *testing.T) {
		router := newVehicleRouter(&fakeVehicleRepo{})

		w := doJSON(t, router, http.MethodPut, "/api/vehicles/"+primitive.NewObjectID().Hex(), gin.H{"price": "95€/day"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ProvidedEmptyNameRejected", func(t *testing.T) {
		router := newVehicleRouter(&fakeVehicleRepo{vehicles: []*models.Vehicle{vehicle}})

		w := doJSON(t, router, http.MethodPut, "/api/vehicles/"+vehicle.ID.Hex(), gin.H{"name": ""})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["message"], "Name")
	})
}

func TestDeleteVehicle(t *testing.T) {
	vehicle := storedVehicle("Tesla Model 3", time.Now())
	router := newVehicleRouter(&fakeVehicleRepo{vehicles: []*models.Vehicle{vehicle}})

	w := doJSON(t, router, http.MethodDelete, "/api/vehicles/"+vehicle.ID.Hex(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Vehicle deleted successfully"}`, w.Body.String())

	// A second delete finds nothing
	w = doJSON(t, router, http.MethodDelete, "/api/vehicles/"+vehicle.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
