package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"tripdesk/config"
	"tripdesk/infras/otel/mocks"
	approvalMocks "tripdesk/internal/domains/approval/mocks"
	bookingMocks "tripdesk/internal/domains/booking/mocks"
	"tripdesk/internal/domains/dashboard/model/dto"
	"tripdesk/internal/domains/dashboard/service"
	quotationMocks "tripdesk/internal/domains/quotation/mocks"
	requestMocks "tripdesk/internal/domains/request/mocks"
	"tripdesk/permissions"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc           service.Dashboard
	requestRepo   *requestMocks.MockTravelRequest
	quotationRepo *quotationMocks.MockQuotation
	bookingRepo   *bookingMocks.MockBooking
	approvalRepo  *approvalMocks.MockApprovalRequest
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		requestRepo:   requestMocks.NewMockTravelRequest(ctrl),
		quotationRepo: quotationMocks.NewMockQuotation(ctrl),
		bookingRepo:   bookingMocks.NewMockBooking(ctrl),
		approvalRepo:  approvalMocks.NewMockApprovalRequest(ctrl),
	}

	policy, err := permissions.Load()
	require.NoError(t, err)

	f.svc = service.New(f.requestRepo, f.quotationRepo, f.bookingRepo, f.approvalRepo, &config.Config{}, mocks.NewOtel(), policy)

	return f
}

func actorContext(role, id string) context.Context {
	return gDto.WithActor(context.Background(), gDto.Actor{ID: id, Name: "Test " + role, Role: role})
}

func whereOf(filter gDto.FilterGroup) (string, map[string]any) {
	return filter.GetWhereClause()
}

func TestDashboardService_Stats(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		setupMock func(f fixture)
		want      map[string]int
	}{
		{
			name: "customer",
			role: constant.RoleCustomer,
			setupMock: func(f fixture) {
				f.requestRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						_, args := whereOf(filter)
						assert.Contains(t, args, "customer_id")

						return 2, nil
					})
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			want: map[string]int{dto.StatActiveRequests: 2, dto.StatTotalBookings: 3, dto.StatPendingPayments: 1},
		},
		{
			name: "salesperson",
			role: constant.RoleSalesperson,
			setupMock: func(f fixture) {
				f.requestRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil)
				f.quotationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
			},
			want: map[string]int{dto.StatAssignedRequests: 4, dto.StatDraftQuotations: 2},
		},
		{
			name: "sales manager",
			role: constant.RoleSalesManager,
			setupMock: func(f fixture) {
				f.quotationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
				f.approvalRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
			},
			want: map[string]int{dto.StatPendingApprovals: 5, dto.StatPendingApprovalRequests: 5},
		},
		{
			name: "operations",
			role: constant.RoleOperations,
			setupMock: func(f fixture) {
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(7, nil)
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
			},
			want: map[string]int{dto.StatConfirmedBookings: 7, dto.StatPendingPayments: 3},
		},
		{
			name: "admin counts everything unfiltered",
			role: constant.RoleAdmin,
			setupMock: func(f fixture) {
				f.requestRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						where, _ := whereOf(filter)
						assert.Empty(t, where)

						return 10, nil
					})
				f.quotationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(6, nil)
			},
			want: map[string]int{dto.StatTotalRequests: 10, dto.StatTotalQuotations: 12, dto.StatTotalBookings: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Stats(actorContext(tt.role, tt.role+"-1"))
			require.NoError(t, err)
			assert.Equal(t, tt.role, res.Role)
			assert.Equal(t, tt.want, res.Stats)
		})
	}
}

func TestDashboardService_StatsErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Stats(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))

	f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	_, err = f.svc.Stats(actorContext(constant.RoleOperations, "ops-1"))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
