package driver

import (
	"encoding/json"
	"fmt"

	"rpncalc/internal/diag"
	"rpncalc/internal/observ"
	"rpncalc/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// appendTimingDiagnostic adds an OBS6001 info diagnostic whose note carries
// the JSON payload. It ignores the bag limit.
func appendTimingDiagnostic(bag *diag.Bag, file source.FileID, payload timingPayload) {
	if bag == nil {
		return
	}
	if payload.Kind == "" {
		payload.Kind = "file"
	}
	msg := fmt.Sprintf("timings (%s): total %.3f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg += ", " + payload.Path
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	sp := source.Span{File: file}
	entry := diag.New(diag.SevInfo, diag.ObsTimings, sp, msg).WithNote(sp, string(data))
	if bag.Add(entry) {
		return
	}
	overflow := diag.NewBag(0)
	overflow.Add(entry)
	bag.Merge(overflow)
}
