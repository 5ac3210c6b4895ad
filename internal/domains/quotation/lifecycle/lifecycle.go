package lifecycle

import (
	"tripdesk/internal/domains/quotation/model"
	"tripdesk/shared/failure"
	"tripdesk/shared/statemachine"
)

const (
	TriggerSend            = "send"
	TriggerRequestApproval = "request_approval"
	TriggerApprove         = "approve"
	TriggerDecline         = "decline"
	TriggerAccept          = "accept"
	TriggerReject          = "reject"
)

// Machine is the quotation transition table. Rejected and accepted are terminal.
// A declined approval sends the quotation back to draft so it can be revised.
var Machine = func() *statemachine.Machine[string, string] {
	builder := statemachine.NewBuilder[string, string]()

	builder.Configure(model.StatusDraft).
		Permit(TriggerSend, model.StatusSent).
		Permit(TriggerReject, model.StatusRejected)
	builder.Configure(model.StatusSent).
		Permit(TriggerRequestApproval, model.StatusPendingApproval).
		Permit(TriggerAccept, model.StatusAccepted).
		Permit(TriggerReject, model.StatusRejected)
	builder.Configure(model.StatusPendingApproval).
		Permit(TriggerApprove, model.StatusApproved).
		Permit(TriggerDecline, model.StatusDraft).
		Permit(TriggerReject, model.StatusRejected)
	builder.Configure(model.StatusApproved).
		Permit(TriggerSend, model.StatusSent).
		Permit(TriggerAccept, model.StatusAccepted).
		Permit(TriggerReject, model.StatusRejected)
	builder.Configure(model.StatusRejected)
	builder.Configure(model.StatusAccepted)

	return builder.Build()
}()

func Next(id, current, trigger string) (string, error) {
	next, err := Machine.Fire(current, trigger)
	if err != nil {
		target, _ := Machine.Target(trigger)

		return current, failure.InvalidStateTransition(model.EntityName, id, current, target)
	}

	return next, nil
}
