package lifecycle

import (
	"tripdesk/internal/domains/booking/model"
	"tripdesk/shared/failure"
	"tripdesk/shared/statemachine"
)

const (
	TriggerCancel   = "cancel"
	TriggerComplete = "complete"
)

var Machine = func() *statemachine.Machine[string, string] {
	builder := statemachine.NewBuilder[string, string]()

	builder.Configure(model.BookingStatusConfirmed).
		Permit(TriggerCancel, model.BookingStatusCancelled).
		Permit(TriggerComplete, model.BookingStatusCompleted)

	return builder.Build()
}()

// TriggerFor maps a requested booking status onto the trigger that reaches it.
func TriggerFor(status string) (string, bool) {
	switch status {
	case model.BookingStatusCancelled:
		return TriggerCancel, true
	case model.BookingStatusCompleted:
		return TriggerComplete, true
	default:
		return "", false
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
