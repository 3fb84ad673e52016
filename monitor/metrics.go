// Package monitor exposes operational metrics for the pipeline.
package monitor

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RateLimitFailOpen counts admission decisions that were allowed only
	// because the rate-limit store was unreachable. Failing open is policy,
	// not an accident, so the anomaly has to stay visible here.
	RateLimitFailOpen = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vote_monitor_rate_limit_fail_open_total",
		Help: "Admission checks allowed because the rate-limit store errored.",
	})

	ReportsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vote_monitor_reports_accepted_total",
		Help: "Reports accepted into the moderation queue.",
	})

	ReportsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vote_monitor_reports_rejected_total",
		Help: "Report submissions rejected before storage, by reason.",
	}, []string{"reason"})
)

// Rejection reason labels.
const (
	ReasonRateLimited = "rate_limited"
	ReasonValidation  = "validation"
	ReasonCaptcha     = "captcha"
	ReasonDuplicate   = "duplicate"
	ReasonStorage     = "storage"
)

// RegisterMetricsRoute mounts the prometheus handler on the router.
func RegisterMetricsRoute(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
