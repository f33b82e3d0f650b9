// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var JobsEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "depwatch_queue_jobs_enqueued_total",
	Help: "The total number of enqueued jobs",
}, []string{"lane", "job"})

var JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "depwatch_queue_jobs_processed_total",
	Help: "The total number of processed jobs by outcome",
}, []string{"lane", "job", "outcome"})

var JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "depwatch_queue_job_duration_seconds",
	Help:    "Duration of job handlers in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"lane", "job"})

var StaleJobsRequeued = promauto.NewCounter(prometheus.CounterOpts{
	Name: "depwatch_queue_stale_jobs_requeued_total",
	Help: "The total number of active jobs requeued after their lock went stale",
})

var DependencyRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "depwatch_daemon_dependency_refresh_duration_minutes",
	Help:    "Duration of the periodic dependency refresh in minutes",
	Buckets: prometheus.DefBuckets,
})
