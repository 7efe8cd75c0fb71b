package list_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
)

type fakeCatalogService struct {
	gotReq *models.ListAvailabilityRequest
	resp   *models.SlotListResponse
	err    error
}

func (f *fakeCatalogService) ListAvailability(_ context.Context, req *models.ListAvailabilityRequest) (*models.SlotListResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandlePassesOptionalFilters(t *testing.T) {
	svc := &fakeCatalogService{resp: &models.SlotListResponse{Slots: []models.SlotResponse{}}}
	h := NewHandler(svc, nopLogger{})

	ownerID := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/availability?ownerType=professor&ownerId="+ownerID.String(), nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotReq)
	require.NotNil(t, svc.gotReq.OwnerType)
	assert.Equal(t, domain.OwnerProfessor, *svc.gotReq.OwnerType)
	require.NotNil(t, svc.gotReq.OwnerID)
	assert.Equal(t, ownerID, *svc.gotReq.OwnerID)
}

func TestHandleNoFilters(t *testing.T) {
	svc := &fakeCatalogService{resp: &models.SlotListResponse{Slots: []models.SlotResponse{}}}
	h := NewHandler(svc, nopLogger{})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.OwnerType)
	assert.Nil(t, svc.gotReq.OwnerID)
}

func TestHandleRejectsUnknownOwnerType(t *testing.T) {
	svc := &fakeCatalogService{}
	h := NewHandler(svc, nopLogger{})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/availability?ownerType=building", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.gotReq)
}

func TestHandleRejectsMalformedOwnerID(t *testing.T) {
	svc := &fakeCatalogService{}
	h := NewHandler(svc, nopLogger{})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/availability?ownerId=not-a-uuid", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.gotReq)
}
