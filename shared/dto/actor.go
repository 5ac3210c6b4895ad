package dto

import (
	"context"
	"tripdesk/shared/constant"
)

// Actor is the authenticated caller as placed on the request context by the auth middleware.
type Actor struct {
	ID    string
	Email string
	Name  string
	Role  string
}

func ActorFromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	name, _ := ctx.Value(constant.ContextKeyUserName).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{ID: id, Email: email, Name: name, Role: role}
}

// WithActor returns a copy of ctx carrying the actor claims.
func WithActor(ctx context.Context, actor Actor) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, actor.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, actor.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, actor.Name)

	return context.WithValue(ctx, constant.ContextKeyUserRole, actor.Role)
}

func (a Actor) IsCustomer() bool {
	return a.Role == constant.RoleCustomer
}
