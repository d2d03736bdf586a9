package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func at(b Body, x, y float64) Body {
	b.Position = dmath.Vec2{X: x, Y: y}
	return b
}

func TestOverlaps(t *testing.T) {
	box := Body{Kind: KindWall, Shape: Box(2, 1)}
	circle := Body{Kind: KindBall, Shape: Circle(0.5)}

	tests := []struct {
		name string
		a, b Body
		want bool
	}{
		{"boxes overlap", at(box, 0, 0), at(box, 1.5, 0.5), true},
		{"boxes touch on an edge", at(box, 0, 0), at(box, 2, 0), false},
		{"boxes apart", at(box, 0, 0), at(box, 0, 3), false},
		{"circle inside box", at(circle, 0, 0), at(box, 0, 0), true},
		{"circle touching box edge", at(circle, 0, 1), at(box, 0, 0), false},
		{"circle near box corner", at(circle, 1.3, 0.8), at(box, 0, 0), true},
		{"circle past box corner", at(circle, 1.4, 0.9), at(box, 0, 0), false},
		{"box then circle", at(box, 0, 0), at(circle, 0, 0.9), true},
		{"circles overlap", at(circle, 0, 0), at(circle, 0.9, 0), true},
		{"circles touch", at(circle, 0, 0), at(circle, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
		})
	}
}
