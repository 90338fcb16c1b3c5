package content

// Targets describe how much material to request from the content source for
// a given page count. Density is a layout concern and never changes these.
type Targets struct {
	BulletsPerJob    int
	SkillsCount      int
	SummarySentences int
}

var pageContentTargets = map[string]Targets{
	"1": {BulletsPerJob: 4, SkillsCount: 15, SummarySentences: 3},
	"2": {BulletsPerJob: 6, SkillsCount: 25, SummarySentences: 5},
	"3": {BulletsPerJob: 8, SkillsCount: 35, SummarySentences: 6},
}

// TargetsFor returns the content targets for a page count, falling back to
// the one-page targets for anything unrecognized.
func TargetsFor(targetPages string) Targets {
	if t, ok := pageContentTargets[targetPages]; ok {
		return t
	}
	return pageContentTargets["1"]
}
