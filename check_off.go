//go:build !heapcheck

package intervalheap

// invariantChecks enables the full Valid walk after every mutation.
// Off in normal builds; see check_on.go.
const invariantChecks = false
