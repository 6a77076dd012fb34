package filters

import "github.com/DuyTa506/docuflow/element"

// Apply runs the configured filters in spec order - repetition, then
// noise, then margin (if enabled) - and reports how many elements each
// stage removed. pages maps page number to its known or estimated pixel
// dimensions.
func Apply(elements []element.Element, pages map[int]PageDims, cfg Config) Result {
	heights := make(map[int]int, len(pages))
	widths := make(map[int]int, len(pages))
	areas := make(map[int]int, len(pages))
	for n, d := range pages {
		heights[n] = d.Height
		widths[n] = d.Width
		areas[n] = d.Width * d.Height
	}

	kept, repeated := FilterRepetition(elements, heights, cfg)
	kept, noise := FilterNoise(kept, areas, cfg)

	margin := 0
	if cfg.UseMarginFilter {
		kept, margin = FilterMargin(kept, widths, cfg)
	}

	return Result{
		Kept: kept,
		Stats: Stats{
			Repeated: repeated,
			Noise:    noise,
			Margin:   margin,
		},
	}
}
