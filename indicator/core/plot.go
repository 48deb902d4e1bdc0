package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlotData holds one named series ready for visualisation.
type PlotData struct {
	Name      string    `json:"name"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Type      string    `json:"type,omitempty"`
	Signal    string    `json:"signal,omitempty"`
	Timestamp []int64   `json:"timestamp,omitempty"`
}

// NewLinePlot builds a line plot whose X axis is the output position.
func NewLinePlot(name string, y []float64, timestamps []int64) PlotData {
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	return PlotData{
		Name:      name,
		X:         x,
		Y:         CopySlice(y),
		Type:      "line",
		Timestamp: timestamps,
	}
}

// GenerateTimestamps creates count evenly spaced timestamps.
func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	if count <= 0 {
		return nil
	}
	ts := make([]int64, count)
	for i := 0; i < count; i++ {
		ts[i] = startTime + int64(i)*interval
	}
	return ts
}

// FormatPlotDataJSON converts PlotData to JSON.
func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}

// FormatPlotDataCSV converts PlotData to CSV, one row per point.
func FormatPlotDataCSV(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("Name,X,Y,Type,Signal,Timestamp\n")
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
		for i := 0; i < len(d.X); i++ {
			ts := ""
			if i < len(d.Timestamp) {
				ts = fmt.Sprintf("%d", d.Timestamp[i])
			}
			fmt.Fprintf(&sb, "%s,%f,%f,%s,%s,%s\n",
				d.Name, d.X[i], d.Y[i], d.Type, d.Signal, ts)
		}
	}
	return sb.String(), nil
}
