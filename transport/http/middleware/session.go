package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"hotelboard/shared/constant"
	"hotelboard/shared/failure"
	"hotelboard/shared/validator"
	"hotelboard/transport/http/response"
)

const (
	sourceClient   = "client"
	sourceInternal = "internal"
)

// Session places the caller's timezone on the request context. The
// X-Timezone header wins over the tz query parameter; an absent zone is left
// for services to default.
func (a *appMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "session.middleware")

		tz := strings.TrimSpace(r.Header.Get(constant.RequestHeaderTimezone))
		if tz == constant.Empty {
			tz = strings.TrimSpace(r.URL.Query().Get(constant.RequestParamTZ))
		}

		if err := validator.ValidateVar(tz, "sessionzone"); err != nil {
			scope.TraceError(err)
			scope.End()

			response.WithError(w, err)

			return
		}

		scope.SetAttribute("session.tz", tz)
		scope.End()

		if tz != constant.Empty {
			ctx = context.WithValue(ctx, constant.ContextKeyTimezone, tz)
			setHeaderIfMissing(w, constant.RequestHeaderTimezone, tz)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIKey rejects requests without the configured key. It is a no-op when no
// key is configured.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		if a.config.App.APIKey == constant.Empty {
			scope.SetAttribute("http.source", sourceClient)
			scope.End()

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, constant.ContextKeySource, sourceClient)))

			return
		}

		if subtle.ConstantTimeCompare([]byte(r.Header.Get(constant.RequestHeaderAPIKey)), []byte(a.config.App.APIKey)) != 1 {
			err := failure.ForbiddenError

			scope.TraceError(err)
			scope.End()

			response.WithError(w, err)

			return
		}

		scope.SetAttribute("http.source", sourceInternal)
		scope.End()

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, constant.ContextKeySource, sourceInternal)))
	})
}
