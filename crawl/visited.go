package crawl

// VisitedSet tracks which URLs have already been dequeued and
// processed, enforcing at-most-once visitation. The set only grows; it
// lives for a single walk and is never persisted.
type VisitedSet struct {
	urls map[string]struct{}
}

// NewVisitedSet creates an empty VisitedSet.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{urls: make(map[string]struct{})}
}

// Contains reports whether url has been marked visited.
func (s *VisitedSet) Contains(url string) bool {
	_, ok := s.urls[url]
	return ok
}

// Mark records url as visited. Marking an already-visited URL is a
// no-op.
func (s *VisitedSet) Mark(url string) {
	s.urls[url] = struct{}{}
}

// Len returns the number of visited URLs.
func (s *VisitedSet) Len() int {
	return len(s.urls)
}
