package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func correlatedRouter(seen *RequestIDs, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(pre...)
	r.Use(Correlate())
	r.GET("/home", func(c *gin.Context) {
		ids, ok := RequestIDsFrom(c.Request.Context())
		if ok {
			*seen = ids
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestCorrelateGeneratesIDs(t *testing.T) {
	var seen RequestIDs
	r := correlatedRouter(&seen)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

	_, err := uuid.Parse(seen.Request)
	assert.NoError(t, err)
	_, err = trace.TraceIDFromHex(seen.Trace)
	assert.NoError(t, err)
	assert.Equal(t, seen.Request, rec.Header().Get(headerRequestID))
	assert.Equal(t, seen.Trace, rec.Header().Get(headerTraceID))
}

func TestCorrelateKeepsWellFormedIDs(t *testing.T) {
	var seen RequestIDs
	r := correlatedRouter(&seen)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set(headerRequestID, id)
	req.Header.Set(headerTraceID, "4BF92F3577B34DA6A3CE929D0E0E4736")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, id, seen.Request)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", seen.Trace)

	req = httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set(headerRequestID, "not a uuid")
	req.Header.Set(headerTraceID, "abc123")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "not a uuid", seen.Request)
	assert.NotEqual(t, "abc123", seen.Trace)
	assert.Len(t, seen.Trace, 32)
}

func TestCorrelatePrefersActiveSpan(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("b7ad6b7169203331")
	require.NoError(t, err)
	withSpan := func(c *gin.Context) {
		sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
		ctx := trace.ContextWithSpanContext(c.Request.Context(), sc)
		c.Request = c.Request.WithContext(ctx)
	}

	var seen RequestIDs
	r := correlatedRouter(&seen, withSpan)
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set(headerTraceID, "4bf92f3577b34da6a3ce929d0e0e4736")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, traceID.String(), seen.Trace)
}

func TestRequestIDsFromEmptyContext(t *testing.T) {
	_, ok := RequestIDsFrom(context.Background())
	assert.False(t, ok)
}
