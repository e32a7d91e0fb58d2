package crawl

import (
	"container/list"
	"sync"
)

// Frontier is a double-ended ordered container of URLs awaiting
// visitation. Depth-first traversal pushes to the front (next popped),
// breadth-first pushes to the back; both disciplines share the one
// container and Pop always removes from the front.
//
// The frontier may hold duplicate entries: deduplication happens at
// dequeue time against the visited set, not at insertion time. It is
// safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu   sync.Mutex
	urls *list.List
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{urls: list.New()}
}

// PushFront inserts url so it is the next one popped. Newly discovered
// links are explored before previously queued siblings, which yields
// depth-first exploration.
func (f *Frontier) PushFront(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls.PushFront(url)
}

// PushBack inserts url behind every pending entry, yielding level-by-
// level breadth-first exploration.
func (f *Frontier) PushBack(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls.PushBack(url)
}

// Pop removes and returns the front URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	front := f.urls.Front()
	if front == nil {
		return "", false
	}
	f.urls.Remove(front)
	url, _ := front.Value.(string)
	return url, true
}

// Len returns the number of pending URLs, duplicates included.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.urls.Len()
}
