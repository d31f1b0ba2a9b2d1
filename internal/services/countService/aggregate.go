package countservice

import (
	"sort"
)

// ExtensionStat accumulates line and file counts for one extension.
type ExtensionStat struct {
	Extension string
	Files     int
	Lines     int64
}

// Aggregate collects per-extension stats plus running totals.
type Aggregate struct {
	stats map[string]*ExtensionStat

	TotalFiles int
	TotalLines int64
}

func NewAggregate() *Aggregate {
	return &Aggregate{stats: make(map[string]*ExtensionStat)}
}

// Add records one counted file under ext.
func (a *Aggregate) Add(ext string, lines int64) {
	st, ok := a.stats[ext]
	if !ok {
		st = &ExtensionStat{Extension: ext}
		a.stats[ext] = st
	}

	st.Files++
	st.Lines += lines

	a.TotalFiles++
	a.TotalLines += lines
}

// Rows returns the per-extension stats sorted by line count, highest first.
// Ties break on extension name so the order is stable between runs.
func (a *Aggregate) Rows() []ExtensionStat {
	rows := make([]ExtensionStat, 0, len(a.stats))
	for _, st := range a.stats {
		rows = append(rows, *st)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Lines != rows[j].Lines {
			return rows[i].Lines > rows[j].Lines
		}
		return rows[i].Extension < rows[j].Extension
	})

	return rows
}
