package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/interview-scorer/internal/types"
)

// ProfileText builds the deterministic text form of a candidate used as
// embedding input. Clause order and formatting are fixed so identical records
// always embed identically. Empty sections are omitted.
func ProfileText(candidate types.CandidateRecord) string {
	var parts []string

	if len(candidate.Skills) > 0 {
		skills := sortedCopy(candidate.Skills)
		parts = append(parts, "Skills: "+strings.Join(skills, ", ")+".")
	}

	if len(candidate.Organizations) > 0 {
		orgs := sortedCopy(candidate.Organizations)
		parts = append(parts, "Worked at: "+strings.Join(orgs, ", ")+".")
	}

	if raw := strings.TrimSpace(candidate.RawText); raw != "" {
		if len(raw) > types.RawTextLimit {
			raw = raw[:types.RawTextLimit]
		}
		parts = append(parts, raw)
	}

	return strings.Join(parts, " ")
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
