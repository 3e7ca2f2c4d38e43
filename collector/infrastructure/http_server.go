package infrastructure

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	collectorDomain "github.com/csilab/sensor-attest/collector/domain"
	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// ingestRequestBody is the JSON binding of an inbound ingestion request.
// Structural checks run through the validator before the pipeline sees the
// two logical fields.
type ingestRequestBody struct {
	DeviceID      string `json:"device_id" validate:"required"`
	EncryptedData string `json:"encrypted_data" validate:"required,hexadecimal"`
	// Device-reported send time. Accepted for wire compatibility but never
	// trusted: the collector's receipt clock is authoritative.
	Timestamp int64 `json:"timestamp"`
}

type successResponse struct {
	Status      string  `json:"status"`
	DeviceID    string  `json:"device_id"`
	SensorValue float64 `json:"sensor_value"`
	DataHash    string  `json:"data_hash"`
	ReceivedAt  string  `json:"received_at"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type recordJSON struct {
	DeviceID    string  `json:"device_id"`
	SensorValue float64 `json:"sensor_value"`
	DataHash    string  `json:"data_hash"`
	ReceivedAt  int64   `json:"received_at"`
}

type historyResponse struct {
	Status   string       `json:"status"`
	DeviceID string       `json:"device_id"`
	Count    int          `json:"count"`
	Records  []recordJSON `json:"records"`
}

// Server is the collector's HTTP ingestion boundary. It validates request
// shape, runs the ingestion pipeline, persists accepted records, and serves
// per-device history.
type Server struct {
	ingestor   *collectorDomain.Ingestor
	store      collectorDomain.RecordStore
	logger     collectorDomain.Logger
	validate   *validator.Validate
	queryLimit collectorDomain.QueryLimit
	handler    http.Handler
}

// NewServer wires the routes and middleware and returns a ready Server.
func NewServer(
	ingestor *collectorDomain.Ingestor,
	store collectorDomain.RecordStore,
	logger collectorDomain.Logger,
	queryLimit collectorDomain.QueryLimit,
) *Server {
	s := &Server{
		ingestor:   ingestor,
		store:      store,
		logger:     logger,
		validate:   validator.New(),
		queryLimit: queryLimit,
	}

	router := mux.NewRouter()
	router.Use(s.recoveryMiddleware, requestIDMiddleware)
	router.HandleFunc("/api/sensor-data", s.handleIngest).Methods(http.MethodPost)
	router.HandleFunc("/api/sensor-data/{device_id}", s.handleHistory).Methods(http.MethodGet)
	router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)

	s.handler = cors.Default().Handler(router)
	return s
}

// Handler returns the root http.Handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var body ingestRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.respondError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if err := s.validate.Struct(body); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	record, err := s.ingestor.Ingest(collectorDomain.IngestRequest{
		DeviceID:      body.DeviceID,
		EncryptedData: body.EncryptedData,
	})
	if err != nil {
		s.logger.Error("ingestion rejected [%s]: %s", requestID(r), err.Error())
		s.respondError(w, statusFor(err), err.Error())
		return
	}

	recordID, err := s.store.Save(r.Context(), record)
	if err != nil {
		s.logger.Error("save failed [%s]: %s", requestID(r), err.Error())
		s.respondError(w, http.StatusInternalServerError, collectorDomain.ErrPersistence.Error())
		return
	}

	s.logger.Info("record saved [%s]: id=%d device=%s hash=%s",
		requestID(r), recordID, record.Reading().DeviceID(), record.Hash().Short())

	s.respondJSON(w, http.StatusOK, successResponse{
		Status:      "success",
		DeviceID:    string(record.Reading().DeviceID()),
		SensorValue: record.Reading().Value().Celsius(),
		DataHash:    string(record.Hash()),
		ReceivedAt:  record.ReceivedAt().ISO(),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	deviceID, err := telemetry.NewDeviceID(mux.Vars(r)["device_id"])
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := int(s.queryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := s.store.FindByDevice(r.Context(), deviceID, limit)
	if err != nil {
		s.logger.Error("history query failed [%s]: %s", requestID(r), err.Error())
		s.respondError(w, http.StatusInternalServerError, collectorDomain.ErrPersistence.Error())
		return
	}

	out := make([]recordJSON, 0, len(records))
	for _, record := range records {
		out = append(out, recordJSON{
			DeviceID:    string(record.Reading().DeviceID()),
			SensorValue: record.Reading().Value().Celsius(),
			DataHash:    string(record.Hash()),
			ReceivedAt:  record.ReceivedAt().Unix(),
		})
	}

	s.respondJSON(w, http.StatusOK, historyResponse{
		Status:   "success",
		DeviceID: string(deviceID),
		Count:    len(out),
		Records:  out,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "sensor attestation collector",
	})
}

// statusFor maps pipeline failures to HTTP status classes: validation,
// decode, frame and identity failures are client errors; everything else is a
// server error.
func statusFor(err error) int {
	var mismatch *collectorDomain.IdentityMismatchError
	switch {
	case errors.Is(err, collectorDomain.ErrInvalidRequest),
		errors.Is(err, collectorDomain.ErrDecode),
		errors.Is(err, telemetry.ErrMalformedFrame),
		errors.Is(err, telemetry.ErrInvalidDeviceID),
		errors.Is(err, telemetry.ErrInvalidSensorValue),
		errors.As(err, &mismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Status: "error", Message: message})
}
