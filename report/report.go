// Package report formats analysis totals for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/mastercactapus/lasertime/vm"
)

// Summary is the JSON form of vm.Totals.
type Summary struct {
	LengthMM float64 `json:"length_mm"`
	TimeS    float64 `json:"time_s"`
	Switches int     `json:"switches"`
}

func NewSummary(t vm.Totals) Summary {
	return Summary{LengthMM: t.Length, TimeS: t.Time, Switches: t.Switches}
}

// Duration renders seconds as "<m>min <s>s <ms>ms".
func Duration(sec float64) string {
	ms := int64(math.Round(sec * 1000))
	return fmt.Sprintf("%dmin %ds %dms", ms/60000, ms/1000%60, ms%1000)
}

// Write prints the three report lines.
func Write(w io.Writer, t vm.Totals) error {
	_, err := fmt.Fprintf(w,
		"Total laser on length: %.3f mm\nTotal laser on time: %.3f s (%s)\nLaser switches: %d\n",
		t.Length, t.Time, Duration(t.Time), t.Switches,
	)
	return err
}

func WriteJSON(w io.Writer, t vm.Totals) error {
	return json.NewEncoder(w).Encode(NewSummary(t))
}
