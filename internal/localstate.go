package internal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sort"

	uerror "bravectl/util/error"
)

// localState mirrors the part of Brave's Local State file this tool
// cares about: the profile.info_cache mapping of profile directory
// names to profile metadata. Entries are kept raw so a single
// malformed entry does not sink the whole file.
type localState struct {
	Profile struct {
		InfoCache map[string]json.RawMessage `json:"info_cache"`
	} `json:"profile"`
}

type profileInfo struct {
	Name string `json:"name"`
}

// ReadProfiles parses the Local State file at path and returns the
// configured profiles sorted by ID. Malformed info_cache entries are
// skipped; entries without a name are reported as "Unknown", matching
// what Brave itself shows for them.
func ReadProfiles(path string) ([]Profile, error) {
	stateBytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, uerror.StackTracef("Brave state file not found at %s; make sure Brave is installed and has been run at least once: %w", path, err)
		}
		return nil, uerror.WithStackTrace(err)
	}

	var state localState
	if err := json.Unmarshal(stateBytes, &state); err != nil {
		return nil, uerror.StackTracef("could not parse Brave state file %s: %w", path, err)
	}

	profiles := make([]Profile, 0, len(state.Profile.InfoCache))
	for id, rawInfo := range state.Profile.InfoCache {
		var info profileInfo
		if err := json.Unmarshal(rawInfo, &info); err != nil {
			continue
		}
		if info.Name == "" {
			info.Name = "Unknown"
		}
		profiles = append(profiles, Profile{
			ID:   id,
			Name: info.Name,
		})
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ID < profiles[j].ID
	})
	return profiles, nil
}

// FindProfileByID returns the profile with the given ID, or nil.
func FindProfileByID(profiles []Profile, id string) *Profile {
	for _, profile := range profiles {
		if profile.ID == id {
			return &profile
		}
	}
	return nil
}
