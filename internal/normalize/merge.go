package normalize

import (
	"strings"

	"github.com/davidchen/resume-builder/internal/types"
)

// MergeProjects combines user-authored and AI-authored project entries.
// User projects are always kept, in their original order. AI projects are
// appended only when their name (trimmed, case-insensitive) has not been
// seen yet; nameless AI projects are dropped because they can neither be
// deduplicated nor displayed. Single pass, first occurrence wins.
func MergeProjects(userProjects, aiProjects []types.ProjectEntry) []types.ProjectEntry {
	merged := make([]types.ProjectEntry, 0, len(userProjects)+len(aiProjects))
	seen := make(map[string]struct{}, len(userProjects)+len(aiProjects))

	for _, project := range userProjects {
		project.Origin = types.OriginUser
		merged = append(merged, project)
		if key := projectKey(project.Name); key != "" {
			seen[key] = struct{}{}
		}
	}

	for _, project := range aiProjects {
		key := projectKey(project.Name)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		project.Origin = types.OriginGenerated
		merged = append(merged, project)
	}

	if len(merged) == 0 {
		return nil
	}
	return merged
}

func projectKey(name string) string {
	return strings.ToLower(CollapseWhitespace(name))
}
