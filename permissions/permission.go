package permissions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"tripdesk/shared/constant"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

const (
	OpPricingRecommend = "pricing.recommend"
	OpPricingSimulate  = "pricing.simulate"

	OpRequestCreate = "request.create"
	OpRequestView   = "request.view"
	OpRequestAssign = "request.assign"
	OpRequestCancel = "request.cancel"

	OpQuotationCreate  = "quotation.create"
	OpQuotationView    = "quotation.view"
	OpQuotationSend    = "quotation.send"
	OpQuotationAccept  = "quotation.accept"
	OpQuotationReject  = "quotation.reject"
	OpQuotationVersion = "quotation.version"

	OpApprovalRequest     = "approval.request"
	OpApprovalListPending = "approval.list_pending"
	OpApprovalDecide      = "approval.decide"

	OpBookingView         = "booking.view"
	OpBookingUpdateStatus = "booking.update_status"

	OpPaymentCapture          = "payment.capture"
	OpPaymentRefund           = "payment.refund"
	OpPaymentListTransactions = "payment.list_transactions"

	OpDashboardView = "dashboard.view"

	OpAnalyticsConversion = "analytics.conversion"
	OpAnalyticsPricing    = "analytics.pricing"
)

var errEmptyPolicy = errors.New("permission policy declares no operations")

type Operation struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

type PolicyData struct {
	Roles      []string            `json:"roles"`
	Inherits   map[string][]string `json:"inherits"`
	Operations []Operation         `json:"operations"`
}

// Policy answers whether a role may run an operation. It is built once and shared read-only.
type Policy struct {
	roles      []string
	inherits   map[string][]string
	operations map[string][]string
}

func New(data PolicyData) (*Policy, error) {
	if len(data.Operations) == 0 {
		return nil, errEmptyPolicy
	}

	policy := &Policy{
		roles:      slices.Clone(data.Roles),
		inherits:   make(map[string][]string, len(data.Inherits)),
		operations: make(map[string][]string, len(data.Operations)),
	}

	for role, parents := range data.Inherits {
		if !slices.Contains(policy.roles, role) {
			return nil, fmt.Errorf("inheriting role %q is not declared", role)
		}

		policy.inherits[role] = slices.Clone(parents)
	}

	for _, operation := range data.Operations {
		if _, ok := policy.operations[operation.Name]; ok {
			return nil, fmt.Errorf("operation %q declared twice", operation.Name)
		}

		for _, role := range operation.Roles {
			if role != constant.Asterix && !slices.Contains(policy.roles, role) {
				return nil, fmt.Errorf("operation %q grants unknown role %q", operation.Name, role)
			}
		}

		policy.operations[operation.Name] = slices.Clone(operation.Roles)
	}

	return policy, nil
}

// Load parses the embedded role table.
func Load() (*Policy, error) {
	var data PolicyData

	if err := json.Unmarshal(permissionsData, &data); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil, fmt.Errorf("failed to decode embedded permissions: %w", err)
	}

	policy, err := New(data)
	if err != nil {
		return nil, err
	}

	log.Info().Int("operations", len(policy.operations)).Msg("Successfully loaded embedded permissions")

	return policy, nil
}

// Allowed reports whether role may run operation. A role inherits every grant of the roles it
// lists under inherits; "*" grants any declared role. Unknown operations are denied.
func (p *Policy) Allowed(role, operation string) bool {
	if role == constant.Empty || !slices.Contains(p.roles, role) {
		return false
	}

	granted, ok := p.operations[operation]
	if !ok {
		return false
	}

	if slices.Contains(granted, constant.Asterix) || slices.Contains(granted, role) {
		return true
	}

	for _, parent := range p.inherits[role] {
		if slices.Contains(granted, parent) {
			return true
		}
	}

	return false
}

// Authorize is Allowed expressed as a Forbidden failure.
func (p *Policy) Authorize(role, operation string) error {
	if p.Allowed(role, operation) {
		return nil
	}

	return failure.Forbidden(fmt.Sprintf("role %q is not permitted to %s", role, operation)) //nolint:wrapcheck
}

// Operations lists every declared operation name in sorted order.
func (p *Policy) Operations() []string {
	names := make([]string, 0, len(p.operations))
	for name := range p.operations {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
