package pricing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"tripdesk/config"
	"tripdesk/infras/otel/mocks"
	"tripdesk/internal/domains/pricing/model/dto"
	"tripdesk/internal/domains/pricing/service"
	requestMocks "tripdesk/internal/domains/request/mocks"
	requestModel "tripdesk/internal/domains/request/model"
	"tripdesk/internal/handlers/pricing"
	"tripdesk/permissions"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *requestMocks.MockTravelRequest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := requestMocks.NewMockTravelRequest(ctrl)

	policy, err := permissions.Load()
	require.NoError(t, err)

	handler := pricing.New(service.New(repo, &config.Config{}, mocks.NewOtel(), policy), mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, repo
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	ctx := gDto.WithActor(context.Background(), gDto.Actor{ID: "sales-1", Role: constant.RoleSalesperson})

	req := httptest.NewRequest(method, target, strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestGetRecommendation(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(requestModel.TravelRequest{
		ID:            "req-1",
		CustomerID:    "cust-1",
		TravelType:    "leisure",
		DepartureDate: "2024-12-15",
		BudgetMax:     decimal.NewNullDecimal(decimal.NewFromInt(120000)),
	}, nil)

	rec := serve(router, http.MethodGet, "/rate-optimization/recommendations/req-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Data[dto.RecommendationResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "req-1", body.Data.RequestID)
	assert.InDelta(t, 136800, body.Data.RecommendedPrice, 0.001)
	assert.InDelta(t, 1.2, body.Data.SeasonalFactor, 0.0001)
}

func TestGetRecommendation_NotFound(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(requestModel.TravelRequest{}, nil)

	rec := serve(router, http.MethodGet, "/rate-optimization/recommendations/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimulatePricing(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		adjusted float64
	}{
		{
			name:     "four star premium for five days",
			body:     `{"base_price":100000,"hotel_star":4,"transport_class":"premium","duration_days":5}`,
			status:   http.StatusOK,
			adjusted: 303333.33,
		},
		{name: "zero base price", body: `{"base_price":0,"duration_days":3}`, status: http.StatusBadRequest},
		{name: "unknown field", body: `{"base_price":100,"duration_days":3,"discount":5}`, status: http.StatusBadRequest},
		{name: "unknown transport", body: `{"base_price":100,"duration_days":3,"transport_class":"rocket"}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			rec := serve(router, http.MethodPost, "/rate-optimization/simulate", tt.body)
			require.Equal(t, tt.status, rec.Code)

			if tt.status != http.StatusOK {
				return
			}

			var body response.Data[dto.SimulationResponse]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.InDelta(t, tt.adjusted, body.Data.AdjustedPrice, 0.001)
		})
	}
}
