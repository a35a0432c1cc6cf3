package registry

import (
	"sort"

	"github.com/go-accuraterip/arcsdec/format"
)

// FileReaderSelector picks one descriptor from a keyed map.
type FileReaderSelector interface {
	Select(f format.Format, c format.Codec,
		readers map[string]format.FileReaderDescriptor) (format.FileReaderDescriptor, bool)
}

// PreferenceSelector selects the descriptor with the strictly highest
// DescriptorPreference score. Descriptors are visited in ID-sorted
// order, and ties keep the first descriptor that attained the current
// best score; a best score of MinPreference yields no selection.
type PreferenceSelector struct {
	Preference DescriptorPreference
}

func (s PreferenceSelector) Select(f format.Format, c format.Codec,
	readers map[string]format.FileReaderDescriptor,
) (format.FileReaderDescriptor, bool) {
	ids := make([]string, 0, len(readers))
	for id := range readers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	best := MinPreference
	var bestDesc format.FileReaderDescriptor
	found := false

	// Iterate in a deterministic (id-sorted) order so that ties are
	// broken the same way on every call: the first descriptor to reach
	// the current best score wins.
	for _, id := range ids {
		d := readers[id]
		score := s.Preference.Preference(f, c, d)
		if score > best {
			best = score
			bestDesc = d
			found = true
		}
	}

	if best <= MinPreference {
		return format.FileReaderDescriptor{}, false
	}
	return bestDesc, found
}

// IdSelector selects a descriptor by ID, regardless of preference.
type IdSelector struct {
	ID string
}

func (s IdSelector) Select(_ format.Format, _ format.Codec,
	readers map[string]format.FileReaderDescriptor,
) (format.FileReaderDescriptor, bool) {
	d, ok := readers[s.ID]
	return d, ok
}
