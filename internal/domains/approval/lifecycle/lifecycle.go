package lifecycle

import (
	"tripdesk/internal/domains/approval/model"
	quotationLifecycle "tripdesk/internal/domains/quotation/lifecycle"
	"tripdesk/shared/failure"
	"tripdesk/shared/statemachine"
)

const (
	TriggerApprove = "approve"
	TriggerReject  = "reject"
)

// Machine decides an approval exactly once.
var Machine = func() *statemachine.Machine[string, string] {
	builder := statemachine.NewBuilder[string, string]()

	builder.Configure(model.StatusPending).
		Permit(TriggerApprove, model.StatusApproved).
		Permit(TriggerReject, model.StatusRejected)
	builder.Configure(model.StatusApproved)
	builder.Configure(model.StatusRejected)

	return builder.Build()
}()

// Decision pairs the approval trigger for a decision with the quotation trigger it drives.
type Decision struct {
	Trigger          string
	QuotationTrigger string
}

// DecisionFor maps approved/rejected onto the triggers they fire. A rejected approval declines the
// quotation back to draft.
func DecisionFor(decision string) (Decision, bool) {
	switch decision {
	case model.StatusApproved:
		return Decision{Trigger: TriggerApprove, QuotationTrigger: quotationLifecycle.TriggerApprove}, true
	case model.StatusRejected:
		return Decision{Trigger: TriggerReject, QuotationTrigger: quotationLifecycle.TriggerDecline}, true
	default:
		return Decision{}, false
	}
}

func Next(id, current, trigger string) (string, error) {
	next, err := Machine.Fire(current, trigger)
	if err != nil {
		target, _ := Machine.Target(trigger)

		return current, failure.InvalidStateTransition(model.EntityName, id, current, target)
	}

	return next, nil
}
