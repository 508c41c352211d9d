// Package metrics provides observability hooks for docwidgets rendering and
// remote fetches.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	w := remotecode.NewWidget(ref, remotecode.WithRecorder(metrics.NoopRecorder{}))
//
// The serve command swaps in a PrometheusRecorder and exposes it via HTTPHandler.
package metrics
