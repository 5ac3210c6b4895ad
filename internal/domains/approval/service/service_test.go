package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"tripdesk/config"
	"tripdesk/infras/otel/mocks"
	approvalMocks "tripdesk/internal/domains/approval/mocks"
	"tripdesk/internal/domains/approval/model"
	"tripdesk/internal/domains/approval/model/dto"
	"tripdesk/internal/domains/approval/service"
	quotationMocks "tripdesk/internal/domains/quotation/mocks"
	quotationModel "tripdesk/internal/domains/quotation/model"
	"tripdesk/permissions"
	cacheMocks "tripdesk/shared/cache/mocks"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/event"
	eventMocks "tripdesk/shared/event/mocks"
	"tripdesk/shared/failure"
	repoMocks "tripdesk/shared/repository/mocks"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc           service.ApprovalRequest
	repo          *approvalMocks.MockApprovalRequest
	quotationRepo *quotationMocks.MockQuotation
	publisher     *eventMocks.MockPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:          approvalMocks.NewMockApprovalRequest(ctrl),
		quotationRepo: quotationMocks.NewMockQuotation(ctrl),
		publisher:     eventMocks.NewMockPublisher(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	transactor := repoMocks.NewMockTransactor(ctrl)
	transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, *sqlx.Tx) error) error {
			return fn(ctx, nil)
		}).
		AnyTimes()

	policy, err := permissions.Load()
	require.NoError(t, err)

	f.svc = service.New(f.repo, f.quotationRepo, transactor, &config.Config{}, mockCache, mocks.NewOtel(), policy, f.publisher)

	return f
}

func actorContext(role, id string) context.Context {
	return gDto.WithActor(context.Background(), gDto.Actor{ID: id, Name: "Test " + role, Role: role})
}

func quotation(status string) quotationModel.Quotation {
	return quotationModel.Quotation{ID: "q-1", Status: status, TotalPrice: decimal.NewFromInt(280000)}
}

func pendingApproval() model.ApprovalRequest {
	return model.ApprovalRequest{
		ID:                 "ap-1",
		QuotationID:        "q-1",
		DiscountPercentage: decimal.NewFromInt(15),
		Reason:             "repeat customer",
		RequestedBy:        "sales-1",
		Status:             model.StatusPending,
	}
}

func TestApprovalService_RequestApproval(t *testing.T) {
	f := newFixture(t)

	validReq := dto.RequestApprovalRequest{DiscountPercentage: 15, Reason: "repeat customer"}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.RequestApprovalRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "salesperson asks for a discount",
			ctx:  actorContext(constant.RoleSalesperson, "sales-1"),
			req:  validReq,
			setupMock: func() {
				f.quotationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusSent), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, approval model.ApprovalRequest) error {
						assert.Equal(t, model.StatusPending, approval.Status)
						assert.Equal(t, "q-1", approval.QuotationID)
						assert.Equal(t, "sales-1", approval.RequestedBy)
						assert.True(t, decimal.NewFromInt(15).Equal(approval.DiscountPercentage))

						return nil
					})
				f.quotationRepo.EXPECT().
					UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, patch map[string]any, filter gDto.FilterGroup) (int64, error) {
						assert.Equal(t, quotationModel.StatusPendingApproval, patch[quotationModel.FieldStatus])

						_, args := filter.GetWhereClause()
						assert.Equal(t, quotationModel.StatusSent, args[quotationModel.FieldStatus])

						return 1, nil
					})
				f.publisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, events ...event.Event) {
						require.Len(t, events, 1)
						assert.Equal(t, event.TypeApprovalRequested, events[0].Type)
					})
			},
		},
		{
			name:      "customer cannot ask",
			ctx:       actorContext(constant.RoleCustomer, "cust-1"),
			req:       validReq,
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "discount above 100",
			ctx:       actorContext(constant.RoleSalesperson, "sales-1"),
			req:       dto.RequestApprovalRequest{DiscountPercentage: 100.5, Reason: "too much"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "negative discount",
			ctx:       actorContext(constant.RoleSalesperson, "sales-1"),
			req:       dto.RequestApprovalRequest{DiscountPercentage: -1, Reason: "refund"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "blank reason",
			ctx:       actorContext(constant.RoleSalesperson, "sales-1"),
			req:       dto.RequestApprovalRequest{DiscountPercentage: 10, Reason: "   "},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing quotation",
			ctx:  actorContext(constant.RoleSalesperson, "sales-1"),
			req:  validReq,
			setupMock: func() {
				f.quotationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(quotationModel.Quotation{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "second pending request conflicts",
			ctx:  actorContext(constant.RoleSalesperson, "sales-1"),
			req:  validReq,
			setupMock: func() {
				f.quotationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusPendingApproval), nil)
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "q-1", args[model.FieldQuotationID])
						assert.Equal(t, model.StatusPending, args[model.FieldStatus])

						return true, nil
					})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "draft quotation cannot request approval",
			ctx:  actorContext(constant.RoleSalesperson, "sales-1"),
			req:  validReq,
			setupMock: func() {
				f.quotationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusDraft), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "concurrent request hits the unique index",
			ctx:  actorContext(constant.RoleSalesperson, "sales-1"),
			req:  validReq,
			setupMock: func() {
				f.quotationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusSent), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "quotation moved underneath",
			ctx:  actorContext(constant.RoleSalesperson, "sales-1"),
			req:  validReq,
			setupMock: func() {
				f.quotationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusSent), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.quotationRepo.EXPECT().UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.RequestApproval(tt.ctx, tt.req, "q-1")
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ApprovalID)
		})
	}
}

func TestApprovalService_Decide(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name                string
		ctx                 context.Context
		req                 dto.DecisionRequest
		setupMock           func()
		wantCode            int
		wantQuotationStatus string
	}{
		{
			name: "manager approves",
			ctx:  actorContext(constant.RoleSalesManager, "mgr-1"),
			req:  dto.DecisionRequest{Decision: model.StatusApproved, Comment: "ok"},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingApproval(), nil)
				f.repo.EXPECT().
					UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, patch map[string]any, filter gDto.FilterGroup) (int64, error) {
						assert.Equal(t, model.StatusApproved, patch[model.FieldStatus])
						assert.Equal(t, "mgr-1", patch[model.FieldDecidedBy])
						assert.Equal(t, "ok", patch[model.FieldDecisionComment])
						assert.NotNil(t, patch[model.FieldDecidedAt])

						_, args := filter.GetWhereClause()
						assert.Equal(t, model.StatusPending, args[model.FieldStatus])

						return 1, nil
					})
				f.quotationRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusPendingApproval), nil)
				f.quotationRepo.EXPECT().
					UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, patch map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, quotationModel.StatusApproved, patch[quotationModel.FieldStatus])

						return 1, nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
			wantQuotationStatus: quotationModel.StatusApproved,
		},
		{
			name: "admin rejects and the quotation returns to draft",
			ctx:  actorContext(constant.RoleAdmin, "admin-1"),
			req:  dto.DecisionRequest{Decision: model.StatusRejected},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingApproval(), nil)
				f.repo.EXPECT().UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.quotationRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusPendingApproval), nil)
				f.quotationRepo.EXPECT().
					UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, patch map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, quotationModel.StatusDraft, patch[quotationModel.FieldStatus])

						return 1, nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
			wantQuotationStatus: quotationModel.StatusDraft,
		},
		{
			name:      "salesperson cannot decide",
			ctx:       actorContext(constant.RoleSalesperson, "sales-1"),
			req:       dto.DecisionRequest{Decision: model.StatusApproved},
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "operations cannot decide",
			ctx:       actorContext(constant.RoleOperations, "ops-1"),
			req:       dto.DecisionRequest{Decision: model.StatusApproved},
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "unknown decision",
			ctx:       actorContext(constant.RoleSalesManager, "mgr-1"),
			req:       dto.DecisionRequest{Decision: model.StatusPending},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing approval",
			ctx:  actorContext(constant.RoleSalesManager, "mgr-1"),
			req:  dto.DecisionRequest{Decision: model.StatusApproved},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ApprovalRequest{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already decided",
			ctx:  actorContext(constant.RoleSalesManager, "mgr-1"),
			req:  dto.DecisionRequest{Decision: model.StatusRejected},
			setupMock: func() {
				approval := pendingApproval()
				approval.Status = model.StatusApproved
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approval, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "quotation no longer pending approval",
			ctx:  actorContext(constant.RoleSalesManager, "mgr-1"),
			req:  dto.DecisionRequest{Decision: model.StatusApproved},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingApproval(), nil)
				f.repo.EXPECT().UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.quotationRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusRejected), nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "storage failure",
			ctx:  actorContext(constant.RoleSalesManager, "mgr-1"),
			req:  dto.DecisionRequest{Decision: model.StatusApproved},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ApprovalRequest{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Decide(tt.ctx, tt.req, "ap-1")
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Decision, res.Approval.Status)
			assert.Equal(t, tt.wantQuotationStatus, res.QuotationStatus)
			assert.NotNil(t, res.Approval.DecidedAt)
		})
	}
}

// Two managers load the same pending approval. The guarded update lets only the first commit.
func TestApprovalService_Decide_Twice(t *testing.T) {
	f := newFixture(t)

	ctx := actorContext(constant.RoleSalesManager, "mgr-1")

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingApproval(), nil).Times(2)
	gomock.InOrder(
		f.repo.EXPECT().UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil),
		f.repo.EXPECT().UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil),
	)
	f.quotationRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(quotation(quotationModel.StatusPendingApproval), nil)
	f.quotationRepo.EXPECT().UpdateWhereTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	first, err := f.svc.Decide(ctx, dto.DecisionRequest{Decision: model.StatusApproved}, "ap-1")
	require.NoError(t, err)
	assert.Equal(t, quotationModel.StatusApproved, first.QuotationStatus)

	_, err = f.svc.Decide(ctx, dto.DecisionRequest{Decision: model.StatusRejected}, "ap-1")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestApprovalService_ListPending(t *testing.T) {
	f := newFixture(t)

	second := pendingApproval()
	second.ID = "ap-2"
	second.QuotationID = "q-2"

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ApprovalRequest, error) {
			assert.Equal(t, model.FieldSequence, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			where, args := filter.GetWhereClause()
			assert.NotContains(t, where, model.FieldQuotationID)
			assert.Equal(t, model.StatusPending, args[model.FieldStatus])

			return []model.ApprovalRequest{pendingApproval(), second}, nil
		})

	res, err := f.svc.ListPending(actorContext(constant.RoleAdmin, "admin-1"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "ap-1", res[0].ID)
	assert.Equal(t, "ap-2", res[1].ID)

	for _, role := range []string{constant.RoleCustomer, constant.RoleSalesperson, constant.RoleOperations} {
		_, err = f.svc.ListPending(actorContext(role, "x"))
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err), role)
	}
}
