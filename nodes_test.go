package intervalheap

import "testing"

// Offsets refer to the 13 item layout used throughout:
//
//	         (0 1)
//	        /     \
//	   (2 3)       (4 5)
//	   /   \       /    \
//	 (6 7)(8 9)(10 11)(12 --)

func TestIsRoot(t *testing.T) {
	tests := []struct {
		name string
		i    int
		want bool
	}{
		{"low root slot", 0, true},
		{"high root slot", 1, true},
		{"first child low", 2, false},
		{"first child high", 3, false},
		{"deep slot", 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRoot(tt.i); got != tt.want {
				t.Errorf("IsRoot(%d) = %v, want %v", tt.i, got, tt.want)
			}
		})
	}
}

func TestLowIndex(t *testing.T) {
	tests := []struct {
		name string
		i    int
		want int
	}{
		{"root low maps to itself", 0, 0},
		{"root high maps to root low", 1, 0},
		{"node 1 low", 2, 2},
		{"node 1 high", 3, 2},
		{"node 5 high", 11, 10},
		{"unpaired node 6 low", 12, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowIndex(tt.i); got != tt.want {
				t.Errorf("LowIndex(%d) = %d, want %d", tt.i, got, tt.want)
			}
		})
	}
}

func TestParentLow(t *testing.T) {
	tests := []struct {
		name string
		i    int
		want int
	}{
		// node 1 {2,3} and node 2 {4,5} are children of the root
		{"node 1 low to root", 2, 0},
		{"node 1 high to root", 3, 0},
		{"node 2 low to root", 4, 0},
		{"node 2 high to root", 5, 0},
		// node 3 {6,7} and node 4 {8,9} are children of node 1
		{"node 3 low to node 1", 6, 2},
		{"node 4 high to node 1", 9, 2},
		// node 5 {10,11} and node 6 {12} are children of node 2
		{"node 5 low to node 2", 10, 4},
		{"unpaired node 6 to node 2", 12, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParentLow(tt.i); got != tt.want {
				t.Errorf("ParentLow(%d) = %d, want %d", tt.i, got, tt.want)
			}
		})
	}
}
