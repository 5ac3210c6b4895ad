package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"tripdesk/config"
	"tripdesk/infras/otel/mocks"
	"tripdesk/internal/domains/analytics/service"
	quotationMocks "tripdesk/internal/domains/quotation/mocks"
	quotationModel "tripdesk/internal/domains/quotation/model"
	requestMocks "tripdesk/internal/domains/request/mocks"
	requestModel "tripdesk/internal/domains/request/model"
	"tripdesk/permissions"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc           service.Analytics
	requestRepo   *requestMocks.MockTravelRequest
	quotationRepo *quotationMocks.MockQuotation
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		requestRepo:   requestMocks.NewMockTravelRequest(ctrl),
		quotationRepo: quotationMocks.NewMockQuotation(ctrl),
	}

	policy, err := permissions.Load()
	require.NoError(t, err)

	f.svc = service.New(f.requestRepo, f.quotationRepo, &config.Config{}, mocks.NewOtel(), policy)

	return f
}

func actorContext(role string) context.Context {
	return gDto.WithActor(context.Background(), gDto.Actor{ID: role + "-1", Name: "Test " + role, Role: role})
}

func quotation(requestID, status, margin string) quotationModel.Quotation {
	return quotationModel.Quotation{
		ID:        requestID + "-" + status,
		RequestID: requestID,
		Status:    status,
		Margin:    decimal.RequireFromString(margin),
	}
}

func TestAnalyticsService_ConversionRates(t *testing.T) {
	f := newFixture(t)

	f.quotationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]quotationModel.Quotation, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(quotations.status IN (:status_0, :status_1))", where)
			assert.Equal(t, quotationModel.StatusSent, args["status_0"])
			assert.Equal(t, quotationModel.StatusAccepted, args["status_1"])

			return []quotationModel.Quotation{
				quotation("req-1", quotationModel.StatusAccepted, "15"),
				quotation("req-2", quotationModel.StatusSent, "10"),
				quotation("req-2", quotationModel.StatusAccepted, "12"),
				quotation("req-3", quotationModel.StatusSent, "20"),
			}, nil
		})
	f.requestRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]requestModel.TravelRequest, error) {
			_, args := filter.GetWhereClause()
			assert.Len(t, args, 3)

			return []requestModel.TravelRequest{
				{ID: "req-1", Destinations: pq.StringArray{"Bali", "Lombok"}},
				{ID: "req-2", Destinations: pq.StringArray{"Bali"}},
				{ID: "req-3", Destinations: pq.StringArray{"Tokyo"}},
			}, nil
		})

	res, err := f.svc.ConversionRates(actorContext(constant.RoleSalesManager))
	require.NoError(t, err)

	assert.Equal(t, 4, res.Offered)
	assert.Equal(t, 2, res.Accepted)
	assert.InDelta(t, 0.5, res.OverallConversion, 0.0001)

	require.Len(t, res.ByDestination, 3)
	assert.Equal(t, 3, res.ByDestination["Bali"].Offered)
	assert.Equal(t, 2, res.ByDestination["Bali"].Accepted)
	assert.InDelta(t, 0.6667, res.ByDestination["Bali"].Rate, 0.0001)
	assert.InDelta(t, 1.0, res.ByDestination["Lombok"].Rate, 0.0001)
	assert.InDelta(t, 0.0, res.ByDestination["Tokyo"].Rate, 0.0001)
}

func TestAnalyticsService_ConversionRates_NoQuotations(t *testing.T) {
	f := newFixture(t)

	f.quotationRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := f.svc.ConversionRates(actorContext(constant.RoleAdmin))
	require.NoError(t, err)
	assert.Zero(t, res.OverallConversion)
	assert.Empty(t, res.ByDestination)
}

func TestAnalyticsService_ConversionRates_Failures(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "salesperson is forbidden",
			role:      constant.RoleSalesperson,
			setupMock: func(fixture) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "customer is forbidden",
			role:      constant.RoleCustomer,
			setupMock: func(fixture) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name: "quotation read fails",
			role: constant.RoleSalesManager,
			setupMock: func(f fixture) {
				f.quotationRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "request read fails",
			role: constant.RoleSalesManager,
			setupMock: func(f fixture) {
				f.quotationRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]quotationModel.Quotation{quotation("req-1", quotationModel.StatusSent, "10")}, nil)
				f.requestRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.ConversionRates(actorContext(tt.role))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestAnalyticsService_PricingOptimization(t *testing.T) {
	f := newFixture(t)

	f.quotationRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]quotationModel.Quotation{
		quotation("req-1", quotationModel.StatusAccepted, "15"),
		quotation("req-2", quotationModel.StatusRejected, "10"),
		quotation("req-3", quotationModel.StatusDraft, "12.5"),
	}, nil)
	f.quotationRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			_, args := filter.GetWhereClause()
			if args[quotationModel.FieldStatus] == quotationModel.StatusAccepted {
				return 3, nil
			}

			assert.Equal(t, quotationModel.StatusRejected, args[quotationModel.FieldStatus])

			return 1, nil
		}).
		Times(2)

	res, err := f.svc.PricingOptimization(actorContext(constant.RoleCustomer))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Quotations)
	assert.InDelta(t, 12.5, res.AverageMargin, 0.001)
	assert.Equal(t, 3, res.Accepted)
	assert.Equal(t, 1, res.Rejected)
	assert.InDelta(t, 0.75, res.PriceAcceptanceRate, 0.0001)
}

func TestAnalyticsService_PricingOptimization_Empty(t *testing.T) {
	f := newFixture(t)

	f.quotationRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.quotationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).Times(2)

	res, err := f.svc.PricingOptimization(actorContext(constant.RoleOperations))
	require.NoError(t, err)
	assert.Zero(t, res.AverageMargin)
	assert.Zero(t, res.PriceAcceptanceRate)
}

func TestAnalyticsService_PricingOptimization_CountFails(t *testing.T) {
	f := newFixture(t)

	f.quotationRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.quotationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	_, err := f.svc.PricingOptimization(actorContext(constant.RoleAdmin))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestRate(t *testing.T) {
	assert.Zero(t, service.Rate(3, 0))
	assert.InDelta(t, 0.3333, service.Rate(1, 3), 0.00001)
	assert.InDelta(t, 1.0, service.Rate(4, 4), 0.00001)
}
