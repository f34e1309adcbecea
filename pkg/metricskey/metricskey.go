package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsRejected = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_rejected",
		Help:         "stats_tool_calls_rejected provides total tool calls rejected by input validation",
		RequiredTags: []string{"tool"},
	}

	StatsEngineCalls = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_engine_calls",
		Help:         "stats_engine_calls provides total calls forwarded to the simulation engine",
		RequiredTags: []string{"method"},
	}

	StatsEngineCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_engine_calls_failed",
		Help:         "stats_engine_calls_failed provides total engine calls that returned an error",
		RequiredTags: []string{"method"},
	}

	StatsResultCacheHits = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_result_cache_hits",
		Help:         "stats_result_cache_hits provides total farfield result cache hits",
		RequiredTags: []string{"backend"},
	}

	StatsResultCacheMisses = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_result_cache_misses",
		Help:         "stats_result_cache_misses provides total farfield result cache misses",
		RequiredTags: []string{"backend"},
	}
)

// Perf
var (
	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}

	PerfEngineCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_engine_call",
		Help:         "perf_engine_call provides duration of engine call",
		RequiredTags: []string{"method"},
	}

	PerfSolverRun = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_solver_run",
		Help:         "perf_solver_run provides duration of solver runs",
		RequiredTags: []string{"solver"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfEngineCall,
	&PerfSolverRun,
	&PerfToolCall,
	&StatsEngineCalls,
	&StatsEngineCallsFailed,
	&StatsResultCacheHits,
	&StatsResultCacheMisses,
	&StatsToolCallsFailed,
	&StatsToolCallsRejected,
	&StatsToolCallsSucceeded,
}
