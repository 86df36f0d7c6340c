// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_tasks_completed_total",
			Help: "Total number of pipeline tasks completed",
		},
		[]string{"task_name"},
	)

	TasksFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_tasks_failed_total",
			Help: "Total number of pipeline tasks failed",
		},
		[]string{"task_name", "error_code"},
	)

	TaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pipeline_task_duration_seconds",
			Help: "Duration of task execution in seconds",
		},
		[]string{"task_name"},
	)

	RunsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pipeline_runs_active",
			Help: "Number of pipeline runs currently executing",
		},
	)

	RunsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_completed_total",
			Help: "Total number of pipeline runs completed",
		},
		[]string{"status"},
	)
)
