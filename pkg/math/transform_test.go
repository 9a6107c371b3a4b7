package math

import (
	"math"
	"testing"
)

func TestTranslation(t *testing.T) {
	transform := Translation(5, -3, 2)
	p := NewPoint(-3, 4, 5)

	if got := transform.MultiplyTuple(p); !got.Equals(NewPoint(2, 1, 7)) {
		t.Errorf("got %v, expected (2,1,7)", got)
	}

	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("unexpected inverse error: %v", err)
	}
	if got := inv.MultiplyTuple(p); !got.Equals(NewPoint(-8, 7, 3)) {
		t.Errorf("inverse: got %v, expected (-8,7,3)", got)
	}

	// Translation leaves free vectors alone.
	v := NewVector(-3, 4, 5)
	if got := transform.MultiplyTuple(v); !got.Equals(v) {
		t.Errorf("vector should be unaffected, got %v", got)
	}
}

func TestScaling(t *testing.T) {
	transform := Scaling(2, 3, 4)

	if got := transform.MultiplyTuple(NewPoint(-4, 6, 8)); !got.Equals(NewPoint(-8, 18, 32)) {
		t.Errorf("point: got %v", got)
	}
	if got := transform.MultiplyTuple(NewVector(-4, 6, 8)); !got.Equals(NewVector(-8, 18, 32)) {
		t.Errorf("vector: got %v", got)
	}

	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("unexpected inverse error: %v", err)
	}
	if got := inv.MultiplyTuple(NewVector(-4, 6, 8)); !got.Equals(NewVector(-2, 2, 2)) {
		t.Errorf("inverse vector: got %v", got)
	}

	// Reflection is scaling by a negative value.
	if got := Scaling(-1, 1, 1).MultiplyTuple(NewPoint(2, 3, 4)); !got.Equals(NewPoint(-2, 3, 4)) {
		t.Errorf("reflection: got %v", got)
	}
}

func TestRotations(t *testing.T) {
	halfSqrt2 := math.Sqrt2 / 2

	tests := []struct {
		name     string
		m        Matrix4
		p        Tuple
		expected Tuple
	}{
		{"x half quarter", RotationX(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(0, halfSqrt2, halfSqrt2)},
		{"x full quarter", RotationX(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"y half quarter", RotationY(math.Pi / 4), NewPoint(0, 0, 1), NewPoint(halfSqrt2, 0, halfSqrt2)},
		{"y full quarter", RotationY(math.Pi / 2), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"z half quarter", RotationZ(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(-halfSqrt2, halfSqrt2, 0)},
		{"z full quarter", RotationZ(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(tt.p); !got.Equals(tt.expected) {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestShearing(t *testing.T) {
	p := NewPoint(2, 3, 4)

	tests := []struct {
		name     string
		m        Matrix4
		expected Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(p); !got.Equals(tt.expected) {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTransformCompositionOrder(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// Applied one at a time: rotate, then scale, then translate.
	p2 := a.MultiplyTuple(p)
	p3 := b.MultiplyTuple(p2)
	p4 := c.MultiplyTuple(p3)
	if !p4.Equals(NewPoint(15, 0, 7)) {
		t.Fatalf("stepwise: got %v, expected (15,0,7)", p4)
	}

	// Composed: the rightmost factor applies first.
	chained := c.Multiply(b).Multiply(a)
	if got := chained.MultiplyTuple(p); !got.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("chained: got %v, expected (15,0,7)", got)
	}
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix4
	}{
		{
			name:     "default orientation",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, -1),
			up:       NewVector(0, 1, 0),
			expected: Identity(),
		},
		{
			name:     "looking in positive z is a reflection",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, 1),
			up:       NewVector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "the eye moves the world",
			from:     NewPoint(0, 0, 8),
			to:       NewPoint(0, 0, 0),
			up:       NewVector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: NewPoint(1, 3, 2),
			to:   NewPoint(4, -2, 8),
			up:   NewVector(1, 1, 0),
			expected: Matrix4{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0.00000},
				{0, 0, 0, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViewTransform(tt.from, tt.to, tt.up); !got.Equals(tt.expected) {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRay_PositionAndTransform(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	if got := r.Position(0); !got.Equals(NewPoint(2, 3, 4)) {
		t.Errorf("t=0: got %v", got)
	}
	if got := r.Position(-1); !got.Equals(NewPoint(1, 3, 4)) {
		t.Errorf("t=-1: got %v", got)
	}
	if got := r.Position(2.5); !got.Equals(NewPoint(4.5, 3, 4)) {
		t.Errorf("t=2.5: got %v", got)
	}

	r = NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))
	moved := r.Transform(Translation(3, 4, 5))
	if !moved.Origin.Equals(NewPoint(4, 6, 8)) || !moved.Direction.Equals(NewVector(0, 1, 0)) {
		t.Errorf("translated ray: got %v", moved)
	}

	scaled := r.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equals(NewPoint(2, 6, 12)) || !scaled.Direction.Equals(NewVector(0, 3, 0)) {
		t.Errorf("scaled ray: got %v", scaled)
	}
}
