package filters

import "github.com/DuyTa506/docuflow/element"

// FilterNoise drops elements whose area, relative to their page's area,
// falls outside [cfg.MinAreaRatio, cfg.MaxAreaRatio] (spec.md §4.3).
// pageAreas supplies each page's pixel area; a page missing from the map
// is estimated by the caller beforehand via geometry.EstimatePageArea.
func FilterNoise(elements []element.Element, pageAreas map[int]int, cfg Config) ([]element.Element, int) {
	kept := make([]element.Element, 0, len(elements))
	dropped := 0
	for _, e := range elements {
		pageArea := pageAreas[e.PageNumber]
		if pageArea <= 0 {
			kept = append(kept, e)
			continue
		}
		ratio := float64(e.BBox.Area()) / float64(pageArea)
		if ratio < cfg.MinAreaRatio || ratio > cfg.MaxAreaRatio {
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	return kept, dropped
}
