package model

// FileStatus holds the review coverage of a file or of a whole tree.
type FileStatus struct {
	Path   Path
	Marked int
	Total  int
}

// Add returns the component-wise sum of two statuses, keeping the path of s.
func (s FileStatus) Add(other FileStatus) FileStatus {
	s.Marked += other.Marked
	s.Total += other.Total

	return s
}

// Ratio returns the marked share in percent. An empty file reports 0.
func (s FileStatus) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}

	return 100 * float64(s.Marked) / float64(s.Total)
}
