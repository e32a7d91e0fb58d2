// Package hostwalk provides a same-host link-graph traversal tool.
// Given a start URL it discovers every page reachable through same-host
// links, visits each exactly once, and reports the visitation sequence
// in breadth-first or depth-first order.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package hostwalk
