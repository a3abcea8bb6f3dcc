package metrics

import (
	"time"
)

// Seat labels used in records: agents are numbered in the order they were given to the
// simulator, 0 stands for a draw.
const (
	Draw   = 0
	Agent1 = 1
	Agent2 = 2
)

type MoveMetric struct {
	Step     int
	Agent    int // Agent1 or Agent2
	Duration time.Duration
}

type GameMetric struct {
	StartingAgent int // Agent1 or Agent2
	Winner        int // Agent1, Agent2 or Draw
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	Moves         []MoveMetric
}

// Collector records one game at a time: Start, then one AddMove per ply, then Complete.
type Collector interface {
	Start(startingAgent int)
	AddMove(agent int, duration time.Duration)
	Complete(winner int) GameMetric
}

type collector struct {
	startingAgent int
	startTime     time.Time
	moves         []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingAgent int) {
	m.startingAgent = startingAgent
	m.startTime = time.Now()
	m.moves = nil
}

func (m *collector) AddMove(agent int, duration time.Duration) {
	m.moves = append(m.moves, MoveMetric{
		Step:     len(m.moves) + 1,
		Agent:    agent,
		Duration: duration,
	})
}

func (m *collector) Complete(winner int) GameMetric {
	end := time.Now()
	return GameMetric{
		StartingAgent: m.startingAgent,
		Winner:        winner,
		StartTime:     m.startTime,
		EndTime:       end,
		Duration:      end.Sub(m.startTime),
		TotalMoves:    len(m.moves),
		Moves:         m.moves,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingAgent int)                   {}
func (m *dummyCollector) AddMove(agent int, duration time.Duration) {}
func (m *dummyCollector) Complete(winner int) GameMetric            { return GameMetric{} }
