// pkg/parser/profile.go
package parser

import (
	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

// sampleValueLimit caps the number of sample values carried per column.
const sampleValueLimit = 5

// ColumnProfiles summarizes every column of a frame: counts, a kind label
// and a handful of sample values. The mapping supplies original header
// names; columns absent from the mapping fall back to their own name.
func ColumnProfiles(f *frame.Frame, mapping model.ColumnMapping) []model.ColumnInfo {
	cols := f.Columns()
	infos := make([]model.ColumnInfo, 0, len(cols))

	for idx, name := range cols {
		column := f.Column(idx)

		nonNull := 0
		unique := make(map[string]struct{})
		samples := make([]interface{}, 0, sampleValueLimit)
		kinds := make(map[frame.Kind]struct{})
		for _, v := range column {
			if v.IsNull() {
				continue
			}
			nonNull++
			unique[v.Fingerprint()] = struct{}{}
			kinds[v.Kind()] = struct{}{}
			if len(samples) < sampleValueLimit {
				samples = append(samples, v.Native())
			}
		}

		original := mapping[name]
		if original == "" {
			original = name
		}

		infos = append(infos, model.ColumnInfo{
			Name:         name,
			OriginalName: original,
			Kind:         kindLabel(kinds),
			NonNullCount: nonNull,
			NullCount:    len(column) - nonNull,
			UniqueCount:  len(unique),
			SampleValues: samples,
		})
	}
	return infos
}

// kindLabel names the column's runtime kind set: a single kind keeps its
// name, int mixed with float reads as float, anything else is mixed.
func kindLabel(kinds map[frame.Kind]struct{}) string {
	if len(kinds) == 0 {
		return frame.KindNull.String()
	}
	if len(kinds) == 1 {
		for k := range kinds {
			return k.String()
		}
	}
	allNumeric := true
	for k := range kinds {
		if !k.IsNumeric() {
			allNumeric = false
		}
	}
	if allNumeric {
		return frame.KindFloat.String()
	}
	return "mixed"
}
