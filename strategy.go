package hostwalk

// Strategy selects the frontier insertion discipline for a traversal.
// It is resolved once before a walk starts and is immutable for the
// duration of the walk.
type Strategy string

// Traversal strategies.
const (
	// StrategyBreadthFirst visits the link graph level by level: every
	// page at distance k from the start is emitted before any page that
	// was discovered only through distance-k pages.
	StrategyBreadthFirst Strategy = "breadth-first"

	// StrategyDepthFirst explores the most recently discovered link
	// first. Siblings discovered together are explored in reverse
	// discovery order; this follows from pushing to the near end of the
	// frontier and is deliberate.
	StrategyDepthFirst Strategy = "depth-first"
)

// Valid reports whether s is a recognized strategy.
func (s Strategy) Valid() bool {
	return s == StrategyBreadthFirst || s == StrategyDepthFirst
}

// ParseStrategy resolves a strategy name. Recognized names are
// "breadth-first" (aliases "bfs", "breadth") and "depth-first" (aliases
// "dfs", "depth"). An empty name resolves to StrategyBreadthFirst, the
// safer default for an unbounded host since memory growth is bounded per
// level. Unrecognized names return an EINVALID error.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "":
		return StrategyBreadthFirst, nil
	case "breadth-first", "breadth", "bfs":
		return StrategyBreadthFirst, nil
	case "depth-first", "depth", "dfs":
		return StrategyDepthFirst, nil
	default:
		return "", Errorf(EINVALID, "unknown strategy %q (want breadth-first or depth-first)", name)
	}
}
