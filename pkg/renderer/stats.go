package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int // Total number of pixels rendered
	HitPixels   int // Pixels whose ray hit a shape
	Rows        int // Number of rows rendered
	Workers     int // Number of workers used (1 = serial)
}

// Coverage returns the fraction of pixels that hit a shape
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// addRow folds the result of one rendered row into the totals
func (s *RenderStats) addRow(width, hits int) {
	s.Rows++
	s.TotalPixels += width
	s.HitPixels += hits
}
