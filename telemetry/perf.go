package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one timed slice of a tick. The update pass is split by the kind
// of entity being updated, so the breakdown shows where the tank spends time.
type Phase uint8

const (
	PhaseInput Phase = iota
	PhaseFish
	PhaseFood
	PhaseBubble
	PhaseScenery // Decorations and buttons
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{"input", "fish", "food", "bubble", "scenery", "telemetry"}

// String returns the phase name used in logs and CSV columns.
func (p Phase) String() string {
	if p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// PhaseTimes holds one duration per phase.
type PhaseTimes [numPhases]time.Duration

// tickSample is the timing of one tick.
type tickSample struct {
	total  time.Duration
	phases PhaseTimes
}

// PerfCollector times ticks and their phases over a ring of recent ticks.
// Phases may be entered repeatedly within a tick; time accumulates.
type PerfCollector struct {
	samples []tickSample
	next    int
	count   int

	current    PhaseTimes
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastFrame time.Time
	frame     time.Duration

	now func() time.Time
}

// NewPerfCollector keeps the last window ticks (60 if window < 1).
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		samples: make([]tickSample, window),
		now:     time.Now,
	}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.current = PhaseTimes{}
	p.inPhase = false
}

// StartPhase charges the time since the last switch to the previous phase and
// starts charging ph. Switching to the phase already running is free.
func (p *PerfCollector) StartPhase(ph Phase) {
	if p.inPhase && ph == p.phase {
		return
	}
	now := p.now()
	p.closePhase(now)
	p.phase, p.phaseStart, p.inPhase = ph, now, true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase && p.phase < numPhases {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and stores the tick.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.inPhase = false

	p.samples[p.next] = tickSample{total: now.Sub(p.tickStart), phases: p.current}
	p.next = (p.next + 1) % len(p.samples)
	if p.count < len(p.samples) {
		p.count++
	}
}

// RecordFrame marks the end of a rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats aggregates the stored ticks.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	TicksPerSecond  float64

	PhaseAvg PhaseTimes
	PhasePct [numPhases]float64 // Share of the average tick, 0..100

	FrameDuration time.Duration
	FPS           float64
}

// Stats summarizes the stored ticks. With no ticks only frame timing is set.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frame}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var sum PhaseTimes
	for i, t := range p.samples[:p.count] {
		total += t.total
		if i == 0 || t.total < s.MinTickDuration {
			s.MinTickDuration = t.total
		}
		s.MaxTickDuration = max(s.MaxTickDuration, t.total)
		for ph, d := range t.phases {
			sum[ph] += d
		}
	}

	n := time.Duration(p.count)
	s.AvgTickDuration = total / n
	for ph := range sum {
		s.PhaseAvg[ph] = sum[ph] / n
		if s.AvgTickDuration > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgTickDuration) * 100
		}
	}
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	return s
}

// UpdatePct is the share of the tick spent updating entities of any kind.
func (s PerfStats) UpdatePct() float64 {
	return s.PhasePct[PhaseFish] + s.PhasePct[PhaseFood] + s.PhasePct[PhaseBubble] + s.PhasePct[PhaseScenery]
}

// LogStats logs the stats at Info, skipping phases under 0.1%.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for ph, pct := range s.PhasePct {
		if pct > 0.1 {
			attrs = append(attrs, Phase(ph).String()+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for ph, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(Phase(ph).String()+"_pct", pct))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	InputPct     float64 `csv:"input_pct"`
	FishPct      float64 `csv:"fish_pct"`
	FoodPct      float64 `csv:"food_pct"`
	BubblePct    float64 `csv:"bubble_pct"`
	SceneryPct   float64 `csv:"scenery_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens s into a row for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		InputPct:     s.PhasePct[PhaseInput],
		FishPct:      s.PhasePct[PhaseFish],
		FoodPct:      s.PhasePct[PhaseFood],
		BubblePct:    s.PhasePct[PhaseBubble],
		SceneryPct:   s.PhasePct[PhaseScenery],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
