package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ball() Body {
	return Body{Kind: KindBall, Shape: Circle(0.16)}
}

func TestClassify(t *testing.T) {
	wall := Body{Kind: KindWall, Shape: Box(11.52, 0.144)}
	bat := Body{Kind: KindBat, Side: SideLeft, Shape: Box(0.16, 0.72)}

	tests := []struct {
		name  string
		other Body
		want  Outcome
	}{
		{"player two end zone", Body{Kind: KindEndZone, Side: SideRight, Shape: Box(0.1, 6.48)}, EndGame(true)},
		{"player one end zone", Body{Kind: KindEndZone, Side: SideLeft, Shape: Box(0.1, 6.48)}, EndGame(false)},
		{"bat", bat, ReflectHorizontal},
		{"wall", wall, ReflectVertical},
		{"another ball", ball(), NoOp},
		{"untagged", Body{Kind: KindNone, Shape: Box(1, 1)}, NoOp},
		{"no shape", Body{Kind: KindWall}, NoOp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(ball(), tt.other))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	kinds := []Kind{KindNone, KindBall, KindBat, KindWall, KindEndZone}
	sides := []Side{SideNone, SideLeft, SideRight}

	for _, self := range kinds {
		for _, other := range kinds {
			for _, side := range sides {
				o := Classify(
					Body{Kind: self, Shape: Box(1, 1)},
					Body{Kind: other, Side: side, Shape: Box(1, 1)},
				)

				var want OutcomeKind
				switch {
				case self == KindNone:
					want = OutcomeNoOp
				case other == KindEndZone:
					want = OutcomeEndGame
				case other == KindBat:
					want = OutcomeReflectHorizontal
				case other == KindWall:
					want = OutcomeReflectVertical
				default:
					want = OutcomeNoOp
				}
				assert.Equal(t, want, o.Kind, "%s vs %s(%s)", self, other, side)
			}
		}
	}
}

func TestClassifyInvalidSelf(t *testing.T) {
	other := Body{Kind: KindWall, Shape: Box(1, 1)}
	assert.Equal(t, NoOp, Classify(Body{}, other))
}
