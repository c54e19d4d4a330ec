package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cms"

// WorkflowMetrics counts change/review transitions. A nil *WorkflowMetrics
// is valid and records nothing.
type WorkflowMetrics struct {
	changesProposed  prometheus.Counter
	reviewsSubmitted *prometheus.CounterVec
	changesAccepted  prometheus.Counter
	changesAutoDeny  prometheus.Counter
	reviewRevisions  prometheus.Counter
	cascadeDeletes   *prometheus.CounterVec

	registerOnce sync.Once
}

func NewWorkflowMetrics(registry prometheus.Registerer) *WorkflowMetrics {
	m := &WorkflowMetrics{}
	m.Register(registry)
	return m
}

// Register registers the collectors with registry. Later calls are no-ops.
func (m *WorkflowMetrics) Register(registry prometheus.Registerer) {
	if registry == nil {
		return
	}

	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.changesProposed = factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_proposed_total",
			Help:      "Total number of proposed article changes",
		})
		m.reviewsSubmitted = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_submitted_total",
			Help:      "Total number of submitted reviews by verdict",
		}, []string{"verdict"})
		m.changesAccepted = factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_accepted_total",
			Help:      "Total number of changes merged into articles",
		})
		m.changesAutoDeny = factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_auto_denied_total",
			Help:      "Total number of sibling changes denied by an acceptance",
		})
		m.reviewRevisions = factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_revisions_total",
			Help:      "Total number of denied reviews revised to accepted",
		})
		m.cascadeDeletes = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascade_deletes_total",
			Help:      "Total number of cascading deletes by root entity",
		}, []string{"entity"})
	})
}

func (m *WorkflowMetrics) IncChangeProposed() {
	if m == nil || m.changesProposed == nil {
		return
	}
	m.changesProposed.Inc()
}

func (m *WorkflowMetrics) IncReviewSubmitted(verdict bool) {
	if m == nil || m.reviewsSubmitted == nil {
		return
	}
	m.reviewsSubmitted.WithLabelValues(strconv.FormatBool(verdict)).Inc()
}

func (m *WorkflowMetrics) IncChangeAccepted() {
	if m == nil || m.changesAccepted == nil {
		return
	}
	m.changesAccepted.Inc()
}

func (m *WorkflowMetrics) AddAutoDenied(n int64) {
	if m == nil || m.changesAutoDeny == nil || n <= 0 {
		return
	}
	m.changesAutoDeny.Add(float64(n))
}

func (m *WorkflowMetrics) IncReviewRevision() {
	if m == nil || m.reviewRevisions == nil {
		return
	}
	m.reviewRevisions.Inc()
}

func (m *WorkflowMetrics) IncCascadeDelete(entity string) {
	if m == nil || m.cascadeDeletes == nil {
		return
	}
	m.cascadeDeletes.WithLabelValues(entity).Inc()
}
