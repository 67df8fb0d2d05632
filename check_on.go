//go:build heapcheck

package intervalheap

// Conformance build: every mutating operation is followed by a full
// Valid walk, and a violation panics. Select with `go test -tags
// heapcheck ./...`.
const invariantChecks = true
