package chart

import "github.com/lixenwraith/stepweave/parameter"

// Timing maps chart rows to real time. The mapping is owned by the host
// editor (tempo changes, stops); the engine only ever calls TimeAtRow.
type Timing interface {
	// TimeAtRow returns the time in seconds at which the given row plays
	TimeAtRow(row int) float64
}

// BeatTiming is the constant-tempo Timing: row → beats at RowsPerBeat
// resolution, beats → seconds at a fixed BPM, shifted by Offset.
type BeatTiming struct {
	BPM    float64 // beats per minute; zero falls back to the default tempo
	Offset float64 // seconds added to every row time
}

// TimeAtRow implements Timing
func (t BeatTiming) TimeAtRow(row int) float64 {
	bpm := t.BPM
	if bpm <= 0 {
		bpm = parameter.DefaultBPM
	}
	beats := float64(row) / parameter.RowsPerBeat
	return t.Offset + beats*60.0/bpm
}

// Retime recomputes every event's derived time from its row
func Retime(events []Event, timing Timing) {
	for i := range events {
		events[i].Time = timing.TimeAtRow(events[i].Row)
	}
}
