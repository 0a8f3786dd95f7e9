package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dashmeta/intraday-metrics-api/internal/domain"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/snapshotting"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/snapshotting/mocks"
	"github.com/dashmeta/intraday-metrics-api/pkg/apiErrors"
)

func TestCollect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summary := &domain.CollectionSummary{
		SnapshotID: "20250115_1430",
		Counts:     domain.CollectionCounts{Campaigns: 2, Adsets: 3, Ads: 5},
	}

	mockService := mocks.NewMockCollector(ctrl)
	mockService.EXPECT().Collect().Return(summary, nil)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/collect", nil)

	Collect(mockService).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "success", response["status"])
	assert.Equal(t, "20250115_1430", response["doc_id"])
	assert.Equal(t, float64(2), response["campaigns"])
	assert.Equal(t, float64(3), response["adsets"])
	assert.Equal(t, float64(5), response["ads"])
}

func TestCollect_ExternalServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCollector(ctrl)
	mockService.EXPECT().
		Collect().
		Return(nil, errors.New("limite de requisições da API do Meta atingido"))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/collect", nil)

	Collect(mockService).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusBadGateway, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
}

func TestCollect_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCollector(ctrl)
	mockService.EXPECT().
		Collect().
		Return(nil, fmt.Errorf("%w: conexão recusada", snapshotting.ErrPersistence))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/collect", nil)

	Collect(mockService).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
}
