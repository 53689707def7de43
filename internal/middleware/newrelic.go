package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelic instruments each request as a New Relic web transaction. A nil
// application disables instrumentation entirely.
func NewRelic(app *newrelic.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		if app == nil {
			c.Next()
			return
		}

		txn := app.StartTransaction(c.Request.Method + " " + c.FullPath())
		defer txn.End()

		txn.SetWebRequestHTTP(c.Request)
		c.Set("newRelicTransaction", txn)

		writer := txn.SetWebResponse(c.Writer)
		c.Writer = &instrumentedWriter{ResponseWriter: c.Writer, inner: writer}

		c.Next()

		for _, err := range c.Errors {
			txn.NoticeError(err.Err)
		}
	}
}

// instrumentedWriter forwards status codes to the transaction writer.
type instrumentedWriter struct {
	gin.ResponseWriter
	inner interface{ WriteHeader(int) }
}

func (w *instrumentedWriter) WriteHeader(code int) {
	w.inner.WriteHeader(code)
	w.ResponseWriter.WriteHeader(code)
}
