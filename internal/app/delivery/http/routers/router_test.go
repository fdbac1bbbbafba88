package routers

import (
	"bytes"
	"errors"
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/delivery/http/controllers"
	"health-records-service/internal/app/delivery/http/middlewares"
	"health-records-service/internal/app/services/core/auth"
	"health-records-service/internal/app/services/core/doctors"
	"health-records-service/internal/app/services/core/patients"
	"health-records-service/internal/app/services/shared/redis"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, configure ...func(*config.InternalConfig)) (*chi.Mux, *memoryStore) {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Env:                     "development",
			Version:                 "v1.0",
			RequestTimeoutInSeconds: 5,
		},
	}
	for _, fn := range configure {
		fn(internalConfig)
	}

	store := newMemoryStore()
	doctorRepository := &memoryDoctorRepository{store: store}
	patientRepository := &memoryPatientRepository{store: store}

	homeController, err := controllers.NewHomeController(logger, internalConfig)
	require.NoError(t, err)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig, metrics.New()),
		homeController,
		controllers.NewAuthController(logger, auth.NewAuthUsecase(doctorRepository, internalConfig, logger), internalConfig),
		controllers.NewDoctorController(logger, doctors.NewDoctorUsecase(doctorRepository, internalConfig, logger), internalConfig),
		controllers.NewPatientController(logger, patients.NewPatientUsecase(patientRepository, doctorRepository, redis.NewNoopPatientCache(), logger), internalConfig),
	)
	return router, store
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func decodeArray(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func TestRouter_DoctorPatientLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/doctors", map[string]interface{}{"name": "D1", "email": "a@x", "password": "pw"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeObject(t, rr)
	assert.Equal(t, true, created["success"])
	assert.Equal(t, "Doctor record created", created["message"])
	doctorID, _ := created["patient_id"].(string)
	require.NotEmpty(t, doctorID, "the new doctor's id is reported under patient_id")

	rr = doRequest(t, router, http.MethodPost, "/login", map[string]string{"email": "a@x", "password": "pw"})
	require.Equal(t, http.StatusOK, rr.Code)
	login := decodeObject(t, rr)
	assert.Equal(t, "Login successful", login["message"])
	user, _ := login["user"].(map[string]interface{})
	assert.Equal(t, doctorID, user["_id"])

	rr = doRequest(t, router, http.MethodPost, "/patients/"+doctorID, map[string]interface{}{"name": "P1"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	patientCreated := decodeObject(t, rr)
	assert.Equal(t, "Patient record created", patientCreated["message"])
	patientID, _ := patientCreated["patient_id"].(string)
	require.NotEmpty(t, patientID)

	for _, path := range []string{"/patients/" + doctorID, "/doctors/" + doctorID + "/patients"} {
		rr = doRequest(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)
		list := decodeArray(t, rr)
		require.Len(t, list, 1, path)
		assert.Equal(t, patientID, list[0]["_id"])
		assert.Equal(t, "P1", list[0]["name"])
	}

	rr = doRequest(t, router, http.MethodPut, "/patients/"+patientID, map[string]interface{}{"age": 41, "_id": "ignored"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Patient record updated", decodeObject(t, rr)["message"])

	rr = doRequest(t, router, http.MethodGet, "/patients/"+patientID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	patient := decodeObject(t, rr)
	assert.Equal(t, patientID, patient["_id"])
	assert.Equal(t, "P1", patient["name"], "fields not in the update are preserved")
	assert.Equal(t, float64(41), patient["age"])

	rr = doRequest(t, router, http.MethodDelete, "/patients/"+patientID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Patient record deleted and removed from doctor's list", decodeObject(t, rr)["message"])

	rr = doRequest(t, router, http.MethodGet, "/patients/"+doctorID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No patients associated with this doctor", decodeObject(t, rr)["message"])

	rr = doRequest(t, router, http.MethodGet, "/patients/"+patientID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	notFound := decodeObject(t, rr)
	assert.Equal(t, false, notFound["success"])
	assert.Equal(t, "Patient record not found", notFound["message"])
}

func TestRouter_Login(t *testing.T) {
	router, _ := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/doctors", map[string]interface{}{"email": "a@x", "password": "pw"})

	t.Run("Wrong Password", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/login", map[string]string{"email": "a@x", "password": "nope"})

		assert.Equal(t, http.StatusNotFound, rr.Code)
		body := decodeObject(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid login credentials", body["message"])
	})

	t.Run("Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRouter_CreatePatient(t *testing.T) {
	t.Run("Unknown Doctor Leaves Orphan", func(t *testing.T) {
		router, store := newTestRouter(t)

		rr := doRequest(t, router, http.MethodPost, "/patients/not-a-doctor", map[string]interface{}{"name": "P1"})

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Doctor not found", decodeObject(t, rr)["message"])
		assert.Len(t, store.patients, 1, "the inserted patient is not rolled back")
	})

	t.Run("Store Failure", func(t *testing.T) {
		router, store := newTestRouter(t)
		store.insertErr = exceptions.ErrMongoDBInsertDocument(errors.New("disk full"))

		rr := doRequest(t, router, http.MethodPost, "/doctors", map[string]interface{}{"name": "D1"})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		body := decodeObject(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Failed to create doctor", body["message"])
		assert.Equal(t, "disk full", body["error"])
	})
}

func TestRouter_DeletePatients(t *testing.T) {
	router, store := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/doctors", map[string]interface{}{"name": "D1"})
	doctorID := decodeObject(t, rr)["patient_id"].(string)
	var patientIDs []string
	for _, name := range []string{"P1", "P2", "P3"} {
		rr = doRequest(t, router, http.MethodPost, "/patients/"+doctorID, map[string]interface{}{"name": name})
		patientIDs = append(patientIDs, decodeObject(t, rr)["patient_id"].(string))
	}

	t.Run("Empty List", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/patients", map[string]interface{}{"patient_ids": []string{}})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "No patient IDs provided", decodeObject(t, rr)["message"])
		assert.Len(t, store.patients, 3)
	})

	t.Run("Missing Body", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/patients", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Nothing To Delete", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/patients", map[string]interface{}{"patient_ids": []string{"nonexistent"}})

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "No patient records found to delete", decodeObject(t, rr)["message"])
	})

	t.Run("Deletes Existing Ids", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/patients", map[string]interface{}{"patient_ids": []string{patientIDs[0], patientIDs[2], "nonexistent"}})

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		body := decodeObject(t, rr)
		assert.Equal(t, "Patient records deleted and removed from doctors' list", body["message"])
		assert.Equal(t, float64(2), body["deleted_count"])

		rr = doRequest(t, router, http.MethodGet, "/patients/"+doctorID, nil)
		list := decodeArray(t, rr)
		require.Len(t, list, 1)
		assert.Equal(t, patientIDs[1], list[0]["_id"])
	})
}

func TestRouter_Ambient(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("Landing Page", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rr.Body.String(), "Health Records Service")
		assert.Contains(t, rr.Body.String(), "V1.0", "sprig upper is applied to the version")
	})

	t.Run("Request Id Is Echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
	})

	t.Run("Request Id Is Generated", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/", nil)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Metrics", func(t *testing.T) {
		doRequest(t, router, http.MethodGet, "/patients/unknown", nil)

		rr := doRequest(t, router, http.MethodGet, "/metrics", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `http_requests_total{method="GET",route="/patients/{id}",status="404"}`)
	})
}

func TestRouter_LoginLimiter(t *testing.T) {
	router, _ := newTestRouter(t, func(internalConfig *config.InternalConfig) {
		internalConfig.Auth.LoginMaxAttempts = 2
		internalConfig.Auth.LoginWindowInSeconds = 60
		internalConfig.Auth.LoginBlockInSeconds = 300
	})
	credentials := map[string]string{"email": "a@x", "password": "nope"}

	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodPost, "/login", credentials).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodPost, "/login", credentials).Code)

	rr := doRequest(t, router, http.MethodPost, "/login", credentials)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "Too many requests, try again later", decodeObject(t, rr)["message"])

	rr = doRequest(t, router, http.MethodGet, "/patients/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code, "only the login route is limited")
}
