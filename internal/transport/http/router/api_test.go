package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayhub/internal/domain"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Amenity{}, &domain.Place{}, &domain.Review{},
	))
	return NewAPIEngine(zap.NewNop(), db)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"first_name": "John", "last_name": "Doe", "email": email, "password": "x",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)["id"].(string)
}

func createPlace(t *testing.T, r *gin.Engine, ownerID string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/places", gin.H{
		"title": "Loft", "description": "A loft", "price": 100.0,
		"latitude": 10.0, "longitude": 20.0, "owner_id": ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)["id"].(string)
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateUser_ReturnsIDWithoutPassword(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"first_name": "John", "last_name": "Doe",
		"email": "john.doe@example.com", "password": "x",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "john.doe@example.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, w.Body.String(), "$2a$") // no bcrypt digest leaks
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	r := newTestEngine(t)

	createUser(t, r, "dup@example.com")
	w := do(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"first_name": "Jane", "last_name": "Doe", "email": "dup@example.com", "password": "x",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"first_name": "John", "last_name": "Doe", "email": "not-an-email", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUser_OnlyNamesChange(t *testing.T) {
	r := newTestEngine(t)
	id := createUser(t, r, "john@example.com")

	w := do(t, r, http.MethodPut, "/api/v1/users/"+id, gin.H{
		"first_name": "Jane", "email": "new@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Jane", body["first_name"])
	assert.Equal(t, "john@example.com", body["email"])
}

func TestGetUser_NotFound(t *testing.T) {
	r := newTestEngine(t)
	w := do(t, r, http.MethodGet, "/api/v1/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePlace_LatitudeOutOfRange(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")

	w := do(t, r, http.MethodPost, "/api/v1/places", gin.H{
		"title": "Loft", "description": "d", "price": 10.0,
		"latitude": 95.0, "longitude": 0.0, "owner_id": owner,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude")
}

func TestCreatePlace_UnknownOwner(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/v1/places", gin.H{
		"title": "Loft", "description": "d", "price": 10.0,
		"latitude": 0.0, "longitude": 0.0, "owner_id": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePlace_ZeroCoordinatesAccepted(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")

	w := do(t, r, http.MethodPost, "/api/v1/places", gin.H{
		"title": "Null Island", "description": "d", "price": 10.0,
		"latitude": 0.0, "longitude": 0.0, "owner_id": owner,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateReview_FlowAndConflicts(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")
	guest := createUser(t, r, "guest@example.com")
	place := createPlace(t, r, owner)

	// unknown user
	w := do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "ok", "rating": 3, "user_id": "ghost", "place_id": place,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// unknown place
	w = do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "ok", "rating": 3, "user_id": guest, "place_id": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// first review succeeds
	w = do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "ok", "rating": 3, "user_id": guest, "place_id": place,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// second review for the same pair conflicts
	w = do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "again", "rating": 4, "user_id": guest, "place_id": place,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateReview_RatingOutOfRange(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")
	guest := createUser(t, r, "guest@example.com")
	place := createPlace(t, r, owner)

	w := do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "ok", "rating": 3, "user_id": guest, "place_id": place,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := decode(t, w)["id"].(string)

	w = do(t, r, http.MethodPut, "/api/v1/reviews/"+reviewID, gin.H{
		"user_id": guest, "rating": 6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/reviews/"+reviewID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decode(t, w)["rating"])
}

func TestUpdateReview_WrongUserForbidden(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")
	guest := createUser(t, r, "guest@example.com")
	intruder := createUser(t, r, "intruder@example.com")
	place := createPlace(t, r, owner)

	w := do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "ok", "rating": 3, "user_id": guest, "place_id": place,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := decode(t, w)["id"].(string)

	w = do(t, r, http.MethodPut, "/api/v1/reviews/"+reviewID, gin.H{
		"user_id": intruder, "rating": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateAmenity_EmptyName(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/v1/amenities", gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceAmenityMembership(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")
	place := createPlace(t, r, owner)

	w := do(t, r, http.MethodPost, "/api/v1/amenities", gin.H{"name": "Wi-Fi"})
	require.Equal(t, http.StatusCreated, w.Code)
	amenity := decode(t, w)["id"].(string)

	// adding twice is a no-op
	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodPost, "/api/v1/places/"+place+"/amenities/"+amenity, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	body := decode(t, w)
	assert.Len(t, body["amenities"], 1)

	w = do(t, r, http.MethodDelete, "/api/v1/places/"+place+"/amenities/"+amenity, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/places/"+place+"/amenities/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePlace_CascadesOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")
	guest := createUser(t, r, "guest@example.com")
	place := createPlace(t, r, owner)

	w := do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "ok", "rating": 3, "user_id": guest, "place_id": place,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := decode(t, w)["id"].(string)

	w = do(t, r, http.MethodDelete, "/api/v1/places/"+place, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/v1/places/"+place, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/v1/reviews/"+reviewID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/v1/places/"+place+"/reviews", nil).Code)
}

func TestListPlaceReviews(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")
	guest := createUser(t, r, "guest@example.com")
	place := createPlace(t, r, owner)

	w := do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "ok", "rating": 3, "user_id": guest, "place_id": place,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/places/"+place+"/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 1)
}

func TestDeleteReview(t *testing.T) {
	r := newTestEngine(t)
	owner := createUser(t, r, "owner@example.com")
	place := createPlace(t, r, owner)

	w := do(t, r, http.MethodPost, "/api/v1/reviews", gin.H{
		"text": "ok", "rating": 3, "user_id": owner, "place_id": place,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := decode(t, w)["id"].(string)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/api/v1/reviews/"+reviewID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/api/v1/reviews/"+reviewID, nil).Code)
}
