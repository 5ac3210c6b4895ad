package permissions_test

import (
	"net/http"
	"testing"
	"tripdesk/permissions"
	"tripdesk/shared/constant"
	"tripdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPolicy(t *testing.T) *permissions.Policy {
	t.Helper()

	policy, err := permissions.Load()
	require.NoError(t, err)

	return policy
}

func TestLoad_DeclaresEveryOperation(t *testing.T) {
	policy := loadPolicy(t)

	assert.ElementsMatch(t, []string{
		permissions.OpPricingRecommend, permissions.OpPricingSimulate,
		permissions.OpRequestCreate, permissions.OpRequestView, permissions.OpRequestAssign, permissions.OpRequestCancel,
		permissions.OpQuotationCreate, permissions.OpQuotationView, permissions.OpQuotationSend,
		permissions.OpQuotationAccept, permissions.OpQuotationReject, permissions.OpQuotationVersion,
		permissions.OpApprovalRequest, permissions.OpApprovalListPending, permissions.OpApprovalDecide,
		permissions.OpBookingView, permissions.OpBookingUpdateStatus,
		permissions.OpPaymentCapture, permissions.OpPaymentRefund, permissions.OpPaymentListTransactions,
		permissions.OpDashboardView,
		permissions.OpAnalyticsConversion, permissions.OpAnalyticsPricing,
	}, policy.Operations())
}

func TestPolicy_Allowed(t *testing.T) {
	policy := loadPolicy(t)

	tests := []struct {
		role      string
		operation string
		want      bool
	}{
		{constant.RoleCustomer, permissions.OpPricingSimulate, true},
		{constant.RoleOperations, permissions.OpQuotationVersion, true},
		{constant.RoleCustomer, permissions.OpPaymentListTransactions, true},

		{constant.RoleSalesperson, permissions.OpApprovalRequest, true},
		{constant.RoleCustomer, permissions.OpApprovalRequest, false},
		{constant.RoleSalesperson, permissions.OpApprovalListPending, false},
		{constant.RoleSalesperson, permissions.OpApprovalDecide, false},
		{constant.RoleSalesManager, permissions.OpApprovalDecide, true},
		{constant.RoleAdmin, permissions.OpApprovalDecide, true},
		{constant.RoleAdmin, permissions.OpApprovalListPending, true},

		{constant.RoleOperations, permissions.OpPaymentCapture, true},
		{constant.RoleAdmin, permissions.OpPaymentCapture, true},
		{constant.RoleAdmin, permissions.OpPaymentRefund, true},
		{constant.RoleSalesManager, permissions.OpPaymentCapture, false},
		{constant.RoleCustomer, permissions.OpPaymentRefund, false},

		{constant.RoleAdmin, permissions.OpQuotationSend, true},
		{constant.RoleAdmin, permissions.OpQuotationAccept, true},
		{constant.RoleOperations, permissions.OpQuotationSend, false},

		{constant.RoleSalesManager, permissions.OpAnalyticsConversion, true},
		{constant.RoleAdmin, permissions.OpAnalyticsConversion, true},
		{constant.RoleSalesperson, permissions.OpAnalyticsConversion, false},
		{constant.RoleCustomer, permissions.OpAnalyticsPricing, true},

		{"", permissions.OpPricingSimulate, false},
		{"pilot", permissions.OpPricingSimulate, false},
		{constant.RoleAdmin, "quotation.delete", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+" "+tt.operation, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Allowed(tt.role, tt.operation))
		})
	}
}

// Admin must be allowed wherever sales_manager or operations is.
func TestPolicy_AdminIsSuperset(t *testing.T) {
	policy := loadPolicy(t)

	for _, operation := range policy.Operations() {
		if policy.Allowed(constant.RoleSalesManager, operation) || policy.Allowed(constant.RoleOperations, operation) {
			assert.True(t, policy.Allowed(constant.RoleAdmin, operation), operation)
		}
	}
}

func TestPolicy_Authorize(t *testing.T) {
	policy := loadPolicy(t)

	assert.NoError(t, policy.Authorize(constant.RoleOperations, permissions.OpPaymentCapture))

	err := policy.Authorize(constant.RoleSalesperson, permissions.OpApprovalDecide)
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestNew_RejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		data permissions.PolicyData
	}{
		{
			name: "no operations",
			data: permissions.PolicyData{Roles: []string{"admin"}},
		},
		{
			name: "unknown granted role",
			data: permissions.PolicyData{
				Roles:      []string{"admin"},
				Operations: []permissions.Operation{{Name: "x", Roles: []string{"pilot"}}},
			},
		},
		{
			name: "duplicate operation",
			data: permissions.PolicyData{
				Roles: []string{"admin"},
				Operations: []permissions.Operation{
					{Name: "x", Roles: []string{"admin"}},
					{Name: "x", Roles: []string{"admin"}},
				},
			},
		},
		{
			name: "undeclared inheriting role",
			data: permissions.PolicyData{
				Roles:      []string{"admin"},
				Inherits:   map[string][]string{"root": {"admin"}},
				Operations: []permissions.Operation{{Name: "x", Roles: []string{"admin"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := permissions.New(tt.data)
			assert.Error(t, err)
		})
	}
}
