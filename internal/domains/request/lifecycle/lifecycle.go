package lifecycle

import (
	"tripdesk/internal/domains/request/model"
	"tripdesk/shared/failure"
	"tripdesk/shared/statemachine"
)

const (
	TriggerQuote   = "quote"
	TriggerConfirm = "confirm"
	TriggerCancel  = "cancel"
)

// Machine moves a travel request forward as quotations and bookings progress.
// Quoting an already quoted request keeps it quoted.
var Machine = func() *statemachine.Machine[string, string] {
	builder := statemachine.NewBuilder[string, string]()

	builder.Configure(model.StatusPending).
		Permit(TriggerQuote, model.StatusQuoted).
		Permit(TriggerConfirm, model.StatusConfirmed).
		Permit(TriggerCancel, model.StatusCancelled)
	builder.Configure(model.StatusQuoted).
		Permit(TriggerQuote, model.StatusQuoted).
		Permit(TriggerConfirm, model.StatusConfirmed).
		Permit(TriggerCancel, model.StatusCancelled)
	builder.Configure(model.StatusConfirmed)
	builder.Configure(model.StatusCancelled)

	return builder.Build()
}()

// Next returns the status trigger leads to, or an InvalidStateTransition failure naming both ends.
func Next(id, current, trigger string) (string, error) {
	next, err := Machine.Fire(current, trigger)
	if err != nil {
		target, _ := Machine.Target(trigger)

		return current, failure.InvalidStateTransition(model.EntityName, id, current, target)
	}

	return next, nil
}
