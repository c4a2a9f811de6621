package cascade

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// LayerStats reports the load of a single layer.
type LayerStats struct {
	Capacity int `json:"capacity"`
	Used     int `json:"used"`
}

// FillRatio returns Used/Capacity.
func (s LayerStats) FillRatio() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Used) / float64(s.Capacity)
}

// Stats reports the load of a table.
type Stats struct {
	Layers   []LayerStats `json:"layers"`
	Overflow int          `json:"overflow"`
}

// Capacity returns the summed capacity of all layers.
func (s Stats) Capacity() int {
	n := 0
	for _, l := range s.Layers {
		n += l.Capacity
	}
	return n
}

// Used returns the number of occupied layer buckets.
func (s Stats) Used() int {
	n := 0
	for _, l := range s.Layers {
		n += l.Used
	}
	return n
}

// FillRatio returns the fill ratio over all layers.
func (s Stats) FillRatio() float64 {
	return LayerStats{Capacity: s.Capacity(), Used: s.Used()}.FillRatio()
}

// Stats collects the current load of all layers and the overflow map.
func (t *Table[V]) Stats() Stats {
	stats := Stats{
		Layers:   make([]LayerStats, len(t.layers)),
		Overflow: len(t.overflow),
	}
	for i, l := range t.layers {
		stats.Layers[i] = LayerStats{Capacity: l.Capacity(), Used: l.Used()}
	}
	return stats
}

// WriteTable renders the statistics as a text table, one row per layer.
func (s Stats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Layer", "Capacity", "Used", "Fill"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, l := range s.Layers {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.Itoa(l.Capacity),
			strconv.Itoa(l.Used),
			percent(l.FillRatio()),
		})
	}
	table.SetFooter([]string{
		"total",
		strconv.Itoa(s.Capacity()),
		strconv.Itoa(s.Used()),
		percent(s.FillRatio()),
	})
	table.Render()
	fmt.Fprintf(w, "Overflow entries: %d\n", s.Overflow)
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
