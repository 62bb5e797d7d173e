package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/repositories"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

func tripsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	tc := NewTripsController(services.NewTripService(repositories.NewTripRepository()))

	r := gin.New()
	r.GET("/trips", tc.ListTrips)
	r.GET("/trips/:id", tc.GetTrip)
	r.POST("/trips", tc.CreateTrip)
	r.DELETE("/trips/:id", tc.DeleteTrip)
	return r
}

func TestTripsEndpointLifecycle(t *testing.T) {
	r := tripsRouter()

	w := postJSON(t, r, "/trips", `{"title": "Weekend in Mumbai", "city": "Mumbai", "days": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	data, ok := created.Data.(map[string]interface{})
	require.True(t, ok)
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Anonymous traveler", data["author"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trips/"+id, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/trips/"+id, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trips/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTripsEndpointRejectsInvalidCreate(t *testing.T) {
	r := tripsRouter()

	w := postJSON(t, r, "/trips", `{"title": "", "city": "Mumbai"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/trips", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTripsEndpointUnknownIDReturns404(t *testing.T) {
	r := tripsRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trips/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/trips/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTripsEndpointListEmpty(t *testing.T) {
	r := tripsRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trips", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
}
