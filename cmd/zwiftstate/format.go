package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zwiftstate/zwiftstate-go/pkg/zwiftstate"
	"github.com/zwiftstate/zwiftstate-go/pkg/zwiftstate/fact"
)

// ValidFormats maps CLI format names to validity.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputSnapshot writes the snapshot to w in the requested format,
// restricted to the selected facts (nil = all facts).
func OutputSnapshot(format string, snap zwiftstate.Snapshot, selected []fact.Name, w io.Writer) error {
	rows := snapshotRows(snap, selected)

	switch format {
	case "jsonl":
		obj := make(map[string]any, len(rows))
		for _, r := range rows {
			obj[string(r.name)] = r.value
		}
		enc := json.NewEncoder(w)
		return enc.Encode(obj)
	case "pretty":
		for _, r := range rows {
			if r.value == nil {
				if _, err := fmt.Fprintf(w, "%-14s unknown\n", r.name); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%-14s %v\n", r.name, r.value); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// row pairs a fact name with its value; nil means unknown.
type row struct {
	name  fact.Name
	value any
}

// snapshotRows flattens a snapshot into ordered rows, keeping only the
// selected facts. Selection order follows the snapshot's canonical
// order, not the order flags were given in.
func snapshotRows(snap zwiftstate.Snapshot, selected []fact.Name) []row {
	want := func(fact.Name) bool { return true }
	if len(selected) > 0 {
		set := make(map[fact.Name]struct{}, len(selected))
		for _, n := range selected {
			set[n] = struct{}{}
		}
		want = func(n fact.Name) bool {
			_, ok := set[n]
			return ok
		}
	}

	optional := func(p *uint32) any {
		if p == nil {
			return nil
		}
		return *p
	}

	all := []row{
		{fact.GameVersion, snap.GameVersion},
		{fact.FlagID, optional(snap.FlagID)},
		{fact.PlayerID, optional(snap.PlayerID)},
		{fact.JerseyID, optional(snap.JerseyID)},
		{fact.BikeID, optional(snap.BikeID)},
		{fact.SportID, snap.SportID},
		{fact.WorldID, snap.WorldID},
		{fact.CourseID, snap.CourseID},
	}

	rows := make([]row, 0, len(all))
	for _, r := range all {
		if want(r.name) {
			rows = append(rows, r)
		}
	}
	return rows
}
