package searcher

import (
	"sync/atomic"
	"time"
)

type LearnMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Expansions int64 // positions evaluated for the first time
	TableHits  int64 // positions answered from the transposition table
}

type MetricsCollector interface {
	Start()
	AddExpansion()
	AddTableHit()
	Complete() LearnMetrics
}

type metricsCollector struct {
	startTime  time.Time
	expansions atomic.Int64
	tableHits  atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.expansions.Store(0)
	m.tableHits.Store(0)
}

func (m *metricsCollector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *metricsCollector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *metricsCollector) Complete() LearnMetrics {
	return LearnMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Expansions: m.expansions.Load(),
		TableHits:  m.tableHits.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                 {}
func (m *noMetricsCollector) AddExpansion()          {}
func (m *noMetricsCollector) AddTableHit()           {}
func (m *noMetricsCollector) Complete() LearnMetrics { return LearnMetrics{} }
