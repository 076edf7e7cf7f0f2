package httptransport

import "expvar"

var (
	metricHandsRecorded   = expvar.NewInt("hands_recorded_total")
	metricHandsRejected   = expvar.NewInt("hands_rejected_total")
	metricHistoryImports  = expvar.NewInt("history_imports_total")
	metricScoreRequests   = expvar.NewInt("score_requests_total")
	metricInternalErrors  = expvar.NewInt("http_internal_errors_total")
	metricStatsDurationMS = expvar.NewInt("stats_last_duration_ms")
)
