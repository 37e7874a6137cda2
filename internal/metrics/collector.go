package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

const defaultMaxHistory = 1000

type timing struct {
	duration time.Duration
	at       time.Time
}

// TimingStats summarizes the recorded durations of one operation.
type TimingStats struct {
	Count int           `json:"count"`
	Avg   time.Duration `json:"avg"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
}

// Summary is a point-in-time snapshot of every collected metric.
type Summary struct {
	Counters    map[string]int64       `json:"counters"`
	Gauges      map[string]float64     `json:"gauges"`
	TimingStats map[string]TimingStats `json:"timing_stats"`
}

// Collector is an in-process metrics sink. Timings keep a bounded history
// per operation; the oldest entries are dropped once the cap is reached.
type Collector struct {
	mu         sync.Mutex
	maxHistory int
	counters   map[string]int64
	gauges     map[string]float64
	timings    map[string][]timing
}

// NewCollector returns a collector with the given per-operation timing
// history cap. A non-positive cap uses the default of 1000.
func NewCollector(maxHistory int) *Collector {
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistory
	}
	return &Collector{
		maxHistory: maxHistory,
		counters:   make(map[string]int64),
		gauges:     make(map[string]float64),
		timings:    make(map[string][]timing),
	}
}

// RecordProcessingTime records one duration sample for an operation.
func (c *Collector) RecordProcessingTime(operation string, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	samples := append(c.timings[operation], timing{duration: d, at: time.Now()})
	if len(samples) > c.maxHistory {
		samples = samples[len(samples)-c.maxHistory:]
	}
	c.timings[operation] = samples
}

// IncrementCounter bumps a counter, keyed by metric name plus sorted tags.
func (c *Collector) IncrementCounter(metric string, tags map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[metricKey(metric, tags)]++
}

// RecordGauge stores the latest value for a gauge.
func (c *Collector) RecordGauge(metric string, value float64, tags map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gauges[metricKey(metric, tags)] = value
}

// SnapshotSummary copies out every counter, gauge, and per-operation timing
// statistic.
func (c *Collector) SnapshotSummary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Summary{
		Counters:    make(map[string]int64, len(c.counters)),
		Gauges:      make(map[string]float64, len(c.gauges)),
		TimingStats: make(map[string]TimingStats, len(c.timings)),
	}
	for k, v := range c.counters {
		s.Counters[k] = v
	}
	for k, v := range c.gauges {
		s.Gauges[k] = v
	}
	for op, samples := range c.timings {
		if len(samples) == 0 {
			continue
		}
		stats := TimingStats{
			Count: len(samples),
			Min:   samples[0].duration,
			Max:   samples[0].duration,
		}
		var total time.Duration
		for _, t := range samples {
			total += t.duration
			if t.duration < stats.Min {
				stats.Min = t.duration
			}
			if t.duration > stats.Max {
				stats.Max = t.duration
			}
		}
		stats.Avg = total / time.Duration(stats.Count)
		s.TimingStats[op] = stats
	}
	return s
}

// Time runs fn and records its wall-clock duration under operation.
func (c *Collector) Time(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	c.RecordProcessingTime(operation, time.Since(start))
	return err
}

func metricKey(metric string, tags map[string]string) string {
	if len(tags) == 0 {
		return metric
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, tags[k]))
	}
	return fmt.Sprintf("%s[%s]", metric, strings.Join(pairs, ","))
}
