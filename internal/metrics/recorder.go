package metrics

import "time"

// ResultLabel enumerates fetch result categories for counters.
type ResultLabel string

const (
	ResultSuccess   ResultLabel = "success"
	ResultHTTPError ResultLabel = "http_error"
	ResultNetwork   ResultLabel = "network_error"
	ResultDiscarded ResultLabel = "discarded"
)

// Recorder defines observability hooks for components and remote fetches.
type Recorder interface {
	ObserveFetchDuration(host string, d time.Duration)
	IncFetchResult(result ResultLabel)
	IncComponentRender(component string)
	IncRenderFailure(component string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveFetchDuration(string, time.Duration) {}
func (NoopRecorder) IncFetchResult(ResultLabel)                 {}
func (NoopRecorder) IncComponentRender(string)                  {}
func (NoopRecorder) IncRenderFailure(string)                    {}
