package reports

import "time"

type Source string

const (
	SourceMemory Source = "memory"
	SourceStore  Source = "store"
	SourceAPI    Source = "api"
)

// LoadStats records which tier served a panel load and how long each
// tier took. The panel handlers turn it into Server-Timing headers.
type LoadStats struct {
	Panel   string
	Source  Source
	MemMs   float64
	StoreMs float64
	APIMs   float64
}

// merge combines the stats of a panel built from two resources: timings
// add up and the slowest tier wins the source label.
func (st LoadStats) merge(other LoadStats) LoadStats {
	out := st
	out.MemMs += other.MemMs
	out.StoreMs += other.StoreMs
	out.APIMs += other.APIMs
	if tierRank(other.Source) > tierRank(st.Source) {
		out.Source = other.Source
	}
	return out
}

func tierRank(s Source) int {
	switch s {
	case SourceMemory:
		return 1
	case SourceStore:
		return 2
	case SourceAPI:
		return 3
	default:
		return 0
	}
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
