package core

import "testing"

func TestFieldContains(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		pos      Position
		expected bool
	}{
		{
			name:     "inside",
			field:    NewField(10, 10),
			pos:      Position{X: 5, Y: 5},
			expected: true,
		},
		{
			name:     "origin",
			field:    NewField(10, 10),
			pos:      Position{X: 0, Y: 0},
			expected: true,
		},
		{
			name:     "right edge exclusive",
			field:    NewField(10, 10),
			pos:      Position{X: 10, Y: 5},
			expected: false,
		},
		{
			name:     "bottom edge exclusive",
			field:    NewField(10, 10),
			pos:      Position{X: 5, Y: 10},
			expected: false,
		},
		{
			name:     "negative x",
			field:    NewField(10, 10),
			pos:      Position{X: -1, Y: 5},
			expected: false,
		},
		{
			name:     "negative y",
			field:    NewField(10, 10),
			pos:      Position{X: 5, Y: -1},
			expected: false,
		},
		{
			name:     "last valid cell",
			field:    NewField(10, 10),
			pos:      Position{X: 9, Y: 9},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.field.Contains(tc.pos)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.pos, result, tc.expected)
			}
		})
	}
}

func TestFieldClampInto(t *testing.T) {
	f := NewField(10, 10)

	tests := []struct {
		name     string
		pos      Position
		expected Position
	}{
		{"in bounds unchanged", Position{X: 5, Y: 5}, Position{X: 5, Y: 5}},
		{"negative x clamped", Position{X: -1, Y: 5}, Position{X: 0, Y: 5}},
		{"negative y clamped", Position{X: 5, Y: -1}, Position{X: 5, Y: 0}},
		{"x past width clamped", Position{X: 10, Y: 5}, Position{X: 9, Y: 5}},
		{"y past height clamped", Position{X: 5, Y: 10}, Position{X: 5, Y: 9}},
		{"corner clamped", Position{X: -3, Y: 20}, Position{X: 0, Y: 9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := f.ClampInto(tc.pos)
			if result != tc.expected {
				t.Errorf("ClampInto(%v) = %v, expected %v", tc.pos, result, tc.expected)
			}
		})
	}
}

func TestSqDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Position
		expected int
	}{
		{"same point", Position{X: 3, Y: 3}, Position{X: 3, Y: 3}, 0},
		{"unit x", Position{X: 0, Y: 0}, Position{X: 1, Y: 0}, 1},
		{"unit y", Position{X: 0, Y: 0}, Position{X: 0, Y: 1}, 1},
		{"diagonal", Position{X: 0, Y: 0}, Position{X: 1, Y: 1}, 2},
		{"symmetric", Position{X: 4, Y: 1}, Position{X: 1, Y: 5}, 25},
		{"negative coords", Position{X: -2, Y: 0}, Position{X: 1, Y: 0}, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := SqDist(tc.a, tc.b); d != tc.expected {
				t.Errorf("SqDist(%v, %v) = %d, expected %d", tc.a, tc.b, d, tc.expected)
			}
			if d := SqDist(tc.b, tc.a); d != tc.expected {
				t.Errorf("SqDist(%v, %v) = %d, expected %d", tc.b, tc.a, d, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not change in-range value")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise value below min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower value above max")
	}
}
