package middleware

import (
	"context"
	"errors"
	"net/http"
	"tripdesk/config"
	"tripdesk/infras/jwt"
	"tripdesk/infras/otel"
	"tripdesk/permissions"
	"tripdesk/shared/constant"
	"tripdesk/shared/dto"
	"tripdesk/shared/failure"
	"tripdesk/transport/http/response"

	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const (
	internalActorID   = "internal"
	internalActorName = "internal service"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role guards a route with an Access Policy operation. Services check the same operation again,
// so this only short-circuits requests that could never succeed.
type Role interface {
	Authorize(operation string) func(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	policy     *permissions.Policy
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, policy *permissions.Policy, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		policy:     policy,
		cfg:        cfg,
	}
}

// Auth validates the bearer token and places the caller on the request context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		if skip, _ := ctx.Value(SkipAuthKey("skip")).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			err := failure.Unauthorized(err.Error())
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Invalid token"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			log.Debug().Err(err).Msg("rejected bearer token")
			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = dto.WithActor(request.Context(), dto.Actor{
			ID:    claims.UserID,
			Email: claims.Email,
			Name:  claims.Name,
			Role:  claims.Role,
		})
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) Authorize(operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")

			role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

			if err := m.policy.Authorize(role, operation); err != nil {
				scope.TraceError(err)
				scope.SetAttributes(map[string]any{
					"user_role": role,
					"operation": operation,
					"reason":    "role_not_allowed",
				})
				scope.End()
				response.WithError(writer, err)

				return
			}

			scope.End()
			next.ServeHTTP(writer, request)
		})
	}
}

// APIKey lets internal services call with X-API-Key instead of a bearer token. They act as admin.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == constant.Empty {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || apiKey != m.cfg.App.APIKey {
			err := failure.ErrInvalidAPIKey

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx := context.WithValue(request.Context(), SkipAuthKey("skip"), true)
		ctx = dto.WithActor(ctx, dto.Actor{
			ID:   internalActorID,
			Name: internalActorName,
			Role: constant.RoleAdmin,
		})

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
