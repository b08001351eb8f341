package middleware

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"
)

// RequestIDs correlates one API call across the request log, the response
// headers and exported spans. Trace is always a 32-char W3C trace id.
type RequestIDs struct {
	Trace   string
	Request string
}

type requestIDsKey struct{}

// RequestIDsFrom returns the ids attached by Correlate.
func RequestIDsFrom(ctx context.Context) (RequestIDs, bool) {
	if ctx == nil {
		return RequestIDs{}, false
	}
	ids, ok := ctx.Value(requestIDsKey{}).(RequestIDs)
	return ids, ok
}

// Correlate assigns trace and request ids. The active span's trace id wins
// over an inbound X-Trace-Id; malformed inbound ids are replaced.
func Correlate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := RequestIDs{
			Trace:   traceIDFor(c),
			Request: strings.TrimSpace(c.GetHeader(headerRequestID)),
		}
		if _, err := uuid.Parse(ids.Request); err != nil {
			ids.Request = uuid.NewString()
		}
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDsKey{}, ids))
		c.Writer.Header().Set(headerTraceID, ids.Trace)
		c.Writer.Header().Set(headerRequestID, ids.Request)
		c.Next()
	}
}

func traceIDFor(c *gin.Context) string {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	raw := strings.ToLower(strings.TrimSpace(c.GetHeader(headerTraceID)))
	if id, err := trace.TraceIDFromHex(raw); err == nil {
		return id.String()
	}
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
