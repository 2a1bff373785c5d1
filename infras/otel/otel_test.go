package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"hotelboard/infras/otel"
)

func tracedCall(o otel.Otel, fail error) (err error) {
	_, scope := o.NewScope(context.Background(), "service", "service.Call")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = fail

	return err
}

func TestScope_TraceIfError(t *testing.T) {
	tests := []struct {
		name     string
		fail     error
		wantCode codes.Code
		wantErrs int
	}{
		{
			name:     "error assigned after defer is recorded",
			fail:     errors.New("redis down"),
			wantCode: codes.Error,
			wantErrs: 1,
		},
		{
			name:     "success leaves status unset",
			wantCode: codes.Unset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			o := otel.NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

			_ = tracedCall(o, tt.fail)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "service.Call", spans[0].Name())
			assert.Equal(t, tt.wantCode, spans[0].Status().Code)

			errs := 0
			for _, event := range spans[0].Events() {
				if event.Name == "exception" {
					errs++
				}
			}

			assert.Equal(t, tt.wantErrs, errs)
		})
	}
}
