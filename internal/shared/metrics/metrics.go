package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	uploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uploads_total",
		Help: "Total image uploads accepted",
	})

	uploadBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "upload_bytes_total",
		Help: "Total bytes written to the object store by uploads",
	})

	profilesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profiles_created_total",
		Help: "Total profile records created",
	})

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests completed",
		},
		[]string{"method", "path", "status"},
	)
)

// IncUpload increments the accepted upload counter.
func IncUpload() {
	uploadsTotal.Inc()
}

// AddUploadBytes records bytes written to the object store.
func AddUploadBytes(n int64) {
	if n < 0 {
		return
	}
	uploadBytesTotal.Add(float64(n))
}

// IncProfileCreated increments the stored profile counter.
func IncProfileCreated() {
	profilesCreatedTotal.Inc()
}

// IncHTTPRequest records a completed request by route and status.
func IncHTTPRequest(method, path string, status int) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
