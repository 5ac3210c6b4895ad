package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"tripdesk/config"
	"tripdesk/infras/otel/mocks"
	requestMocks "tripdesk/internal/domains/request/mocks"
	"tripdesk/internal/domains/request/model"
	"tripdesk/internal/domains/request/model/dto"
	"tripdesk/internal/domains/request/service"
	"tripdesk/permissions"
	cacheMocks "tripdesk/shared/cache/mocks"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.TravelRequest, *requestMocks.MockTravelRequest) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := requestMocks.NewMockTravelRequest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	policy, err := permissions.Load()
	require.NoError(t, err)

	return service.New(mockRepo, cfg, mockCache, mockOtel, policy), mockRepo
}

func actorContext(role, id string) context.Context {
	return gDto.WithActor(context.Background(), gDto.Actor{ID: id, Name: "Test " + role, Role: role})
}

func validRequest() dto.CreateTravelRequestRequest {
	budgetMin, budgetMax := 80000.0, 120000.0

	return dto.CreateTravelRequestRequest{
		Title:          "Family trip to Bali",
		TravelType:     "leisure",
		TravelersCount: 4,
		Adults:         2,
		Children:       1,
		Infants:        1,
		DepartureDate:  "2024-12-15",
		ReturnDate:     "2024-12-22",
		BudgetMin:      &budgetMin,
		BudgetMax:      &budgetMax,
		Destinations:   []string{"Bali"},
		TransportModes: []string{"flight"},
	}
}

func TestTravelRequestService_Create(t *testing.T) {
	svc, mockRepo := newService(t)

	tests := []struct {
		name      string
		ctx       context.Context
		req       func() dto.CreateTravelRequestRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "customer files a request",
			ctx:  actorContext(constant.RoleCustomer, "cust-1"),
			req:  validRequest,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, got model.TravelRequest) error {
						assert.Equal(t, "cust-1", got.CustomerID)
						assert.Equal(t, model.StatusPending, got.Status)
						assert.Equal(t, "120000", got.BudgetMax.Decimal.String())

						return nil
					})
			},
		},
		{
			name:      "salesperson may not file requests",
			ctx:       actorContext(constant.RoleSalesperson, "sales-1"),
			req:       validRequest,
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
		},
		{
			name: "traveler counts must add up",
			ctx:  actorContext(constant.RoleCustomer, "cust-1"),
			req: func() dto.CreateTravelRequestRequest {
				req := validRequest()
				req.Infants = 0

				return req
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "return before departure",
			ctx:  actorContext(constant.RoleCustomer, "cust-1"),
			req: func() dto.CreateTravelRequestRequest {
				req := validRequest()
				req.ReturnDate = "2024-12-01"

				return req
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "budget range inverted",
			ctx:  actorContext(constant.RoleCustomer, "cust-1"),
			req: func() dto.CreateTravelRequestRequest {
				req := validRequest()
				low := 200000.0
				req.BudgetMin = &low

				return req
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "admin must name the customer",
			ctx:       actorContext(constant.RoleAdmin, "admin-1"),
			req:       validRequest,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			ctx:  actorContext(constant.RoleCustomer, "cust-1"),
			req:  validRequest,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(tt.ctx, tt.req())

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, model.StatusPending, res.Status)
		})
	}
}

func TestTravelRequestService_Get(t *testing.T) {
	svc, mockRepo := newService(t)

	stored := model.TravelRequest{ID: "req-1", CustomerID: "cust-1", Status: model.StatusPending}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantCode  int
	}{
		{
			name: "owner sees the request",
			ctx:  actorContext(constant.RoleCustomer, "cust-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
		},
		{
			name: "salesperson sees any request",
			ctx:  actorContext(constant.RoleSalesperson, "sales-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
		},
		{
			name: "other customers get not found",
			ctx:  actorContext(constant.RoleCustomer, "cust-2"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "missing request",
			ctx:  actorContext(constant.RoleAdmin, "admin-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TravelRequest{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			ctx:  actorContext(constant.RoleAdmin, "admin-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TravelRequest{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(tt.ctx, "req-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "req-1", res.ID)
		})
	}
}

func TestTravelRequestService_GetAll_ScopesCustomers(t *testing.T) {
	svc, mockRepo := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "travel_requests.customer_id = :customer_id")
			assert.Equal(t, "cust-1", args[model.FieldCustomerID])

			return 1, nil
		})
	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.TravelRequest{{ID: "req-1", CustomerID: "cust-1"}}, nil)

	res, err := svc.GetAll(actorContext(constant.RoleCustomer, "cust-1"), params, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Requests, 1)
}

func TestTravelRequestService_GetAll_StaffUnscoped(t *testing.T) {
	svc, mockRepo := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			where, _ := filter.GetWhereClause()
			assert.Empty(t, where)

			return 0, nil
		})
	mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.TravelRequest{}, nil)

	res, err := svc.GetAll(actorContext(constant.RoleSalesManager, "mgr-1"), params, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Empty(t, res.Requests)
}

func TestTravelRequestService_Assign(t *testing.T) {
	svc, mockRepo := newService(t)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantCode  int
	}{
		{
			name: "manager assigns a salesperson",
			ctx:  actorContext(constant.RoleSalesManager, "mgr-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TravelRequest{ID: "req-1"}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "sales-1", patch[model.FieldAssignedSalesperson])
						assert.NotContains(t, patch, model.FieldStatus)

						return nil
					})
			},
		},
		{
			name:      "salesperson cannot assign",
			ctx:       actorContext(constant.RoleSalesperson, "sales-1"),
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
		},
		{
			name: "missing request",
			ctx:  actorContext(constant.RoleAdmin, "admin-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TravelRequest{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Assign(tt.ctx, dto.AssignTravelRequestRequest{SalespersonID: "sales-1"}, "req-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTravelRequestService_Cancel(t *testing.T) {
	svc, mockRepo := newService(t)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantCode  int
	}{
		{
			name: "owner cancels a quoted request",
			ctx:  actorContext(constant.RoleCustomer, "cust-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.TravelRequest{ID: "req-1", CustomerID: "cust-1", Status: model.StatusQuoted}, nil)
				mockRepo.EXPECT().
					UpdateWhere(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, filter gDto.FilterGroup) (int64, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, model.StatusQuoted, args[model.FieldStatus])
						assert.Equal(t, model.StatusCancelled, patch[model.FieldStatus])

						return 1, nil
					})
			},
		},
		{
			name: "confirmed request cannot be cancelled",
			ctx:  actorContext(constant.RoleAdmin, "admin-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.TravelRequest{ID: "req-1", CustomerID: "cust-1", Status: model.StatusConfirmed}, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "another customer",
			ctx:  actorContext(constant.RoleCustomer, "cust-2"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.TravelRequest{ID: "req-1", CustomerID: "cust-1", Status: model.StatusPending}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "status moved underneath",
			ctx:  actorContext(constant.RoleCustomer, "cust-1"),
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.TravelRequest{ID: "req-1", CustomerID: "cust-1", Status: model.StatusPending}, nil)
				mockRepo.EXPECT().UpdateWhere(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "operations cannot cancel",
			ctx:       actorContext(constant.RoleOperations, "ops-1"),
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(tt.ctx, "req-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
