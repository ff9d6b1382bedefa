// Package metrics defines all custom Prometheus metrics for the HR
// employee-experience API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// DashboardViewsTotal counts dashboard fetches by requester role.
var DashboardViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_views_total",
		Help:      "Total number of dashboard fetches, by requester role.",
	},
	[]string{"role"},
)

// ConfigUpdatesTotal counts dashboard config updates.
var ConfigUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_config_updates_total",
		Help:      "Total number of dashboard widget config updates.",
	},
)

// NudgesServedTotal counts nudges returned to users.
// Label:
//   - type: nudge category ("work_life", "break", "learning", "general")
var NudgesServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wellness_nudges_served_total",
		Help:      "Total number of wellness nudges served, by category.",
	},
	[]string{"type"},
)

// SurveySubmissionsTotal counts acknowledged survey submissions. The label
// set is bounded because unknown survey ids are rejected before counting.
var SurveySubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wellness_survey_submissions_total",
		Help:      "Total number of survey submissions accepted, by survey id.",
	},
	[]string{"survey_id"},
)
