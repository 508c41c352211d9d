package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	fetchDuration  *prom.HistogramVec
	fetchResults   *prom.CounterVec
	renders        *prom.CounterVec
	renderFailures *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg
// (a fresh registry when reg is nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		fetchDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "docwidgets",
			Name:      "remote_fetch_duration_seconds",
			Help:      "Duration of raw content fetches",
			Buckets:   prom.DefBuckets,
		}, []string{"host"}),
		fetchResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docwidgets",
			Name:      "remote_fetch_results_total",
			Help:      "Raw content fetch results by outcome",
		}, []string{"result"}),
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docwidgets",
			Name:      "component_renders_total",
			Help:      "Rendered components by kind",
		}, []string{"component"}),
		renderFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docwidgets",
			Name:      "component_render_failures_total",
			Help:      "Component renders aborted by configuration errors",
		}, []string{"component"}),
	}
	reg.MustRegister(pr.fetchDuration, pr.fetchResults, pr.renders, pr.renderFailures)
	return pr
}

func (p *PrometheusRecorder) ObserveFetchDuration(host string, d time.Duration) {
	p.fetchDuration.WithLabelValues(host).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncFetchResult(result ResultLabel) {
	p.fetchResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncComponentRender(component string) {
	p.renders.WithLabelValues(component).Inc()
}

func (p *PrometheusRecorder) IncRenderFailure(component string) {
	p.renderFailures.WithLabelValues(component).Inc()
}
