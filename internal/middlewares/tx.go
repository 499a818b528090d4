package middlewares

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/tx"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// transaction is stored in the request context so repositories join it via
// their txGetter hook; every write the handler triggers commits or rolls back
// as one unit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			txx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					txx.Rollback()
					panic(rec)
				}
			}()

			tw := &txWriter{ResponseWriter: w}
			r = r.WithContext(tx.With(r.Context(), txx))

			next.ServeHTTP(tw, r)

			if err := txx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				// Commit fails routinely when the handler already reported
				// an aborted statement; the status is out the door then.
				if !tw.wroteHeader {
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}
		})
	}
}

type txWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (tw *txWriter) WriteHeader(code int) {
	tw.wroteHeader = true
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *txWriter) Write(b []byte) (int, error) {
	tw.wroteHeader = true
	return tw.ResponseWriter.Write(b)
}
