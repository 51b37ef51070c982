package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(16, 16, 32, 32),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(40, 0, 32, 32),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(0, 40, 32, 32),
			expected: false,
		},
		{
			name:     "touching horizontal edges",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(32, 0, 32, 32),
			expected: false,
		},
		{
			name:     "touching vertical edges",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(0, 32, 32, 32),
			expected: false,
		},
		{
			name:     "pellet inside tile",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(14, 14, 4, 4),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(31, 31, 32, 32),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}
