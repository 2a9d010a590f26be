package snds

import (
	"os"
	"sort"
	"strings"
)

// DateInfo records which export categories exist in a directory for one
// date tag.
type DateInfo struct {
	Tag         string `json:"tag" yaml:"tag"`
	HasData     bool   `json:"has_data" yaml:"has_data"`
	HasIPStatus bool   `json:"has_ipstatus" yaml:"has_ipstatus"`
}

// ListDates scans dir for SNDS export files and returns the date tags found,
// sorted ascending. Files that do not match the export naming scheme are
// ignored.
func ListDates(dir string) ([]DateInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	byTag := make(map[string]*DateInfo)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		prefix, tag, ok := splitExportName(name)
		if !ok {
			continue
		}
		info := byTag[tag]
		if info == nil {
			info = &DateInfo{Tag: tag}
			byTag[tag] = info
		}
		switch prefix {
		case DataPrefix:
			info.HasData = true
		case IPStatusPrefix:
			info.HasIPStatus = true
		}
	}

	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	infos := make([]DateInfo, 0, len(tags))
	for _, tag := range tags {
		infos = append(infos, *byTag[tag])
	}
	return infos, nil
}

// splitExportName parses "<prefix>-<tag>.csv" or "<prefix>-<tag>.csv.gz"
// into its known prefix and date tag.
func splitExportName(name string) (prefix, tag string, ok bool) {
	base := strings.TrimSuffix(name, ".gz")
	base, found := strings.CutSuffix(base, ".csv")
	if !found {
		return "", "", false
	}
	for _, p := range []string{DataPrefix, IPStatusPrefix} {
		if rest, found := strings.CutPrefix(base, p+"-"); found && rest != "" {
			return p, rest, true
		}
	}
	return "", "", false
}
