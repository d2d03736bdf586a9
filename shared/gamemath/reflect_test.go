package gamemath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

const tolerance = 1e-9

func TestReflectVerticalProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		v := dmath.Vec2{X: rng.Float64()*40 - 20, Y: rng.Float64()*40 - 20}
		got := Reflect(v, ReflectVertical)
		assert.Equal(t, v.X, got.X)
		assert.Equal(t, -v.Y, got.Y)
	}
}

func TestReflectHorizontalProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		v := dmath.Vec2{X: rng.Float64()*40 - 20, Y: rng.Float64()*40 - 20}
		got := Reflect(v, ReflectHorizontal)
		assert.InDelta(t, -v.X*1.03, got.X, tolerance)
		assert.InDelta(t, v.Y*1.03, got.Y, tolerance)
	}
}

func TestReflectScenarios(t *testing.T) {
	t.Run("ball moving up-right hits the top wall", func(t *testing.T) {
		got := Reflect(dmath.Vec2{X: 2.5, Y: 3}, ReflectVertical)
		assert.Equal(t, dmath.Vec2{X: 2.5, Y: -3}, got)
	})

	t.Run("ball hits a bat", func(t *testing.T) {
		got := Reflect(dmath.Vec2{X: -4, Y: 1}, ReflectHorizontal)
		assert.InDelta(t, 4.12, got.X, 1e-6)
		assert.InDelta(t, 1.03, got.Y, 1e-6)
	})

	t.Run("other outcomes leave velocity alone", func(t *testing.T) {
		v := dmath.Vec2{X: 1, Y: -2}
		assert.Equal(t, v, Reflect(v, NoOp))
		assert.Equal(t, v, Reflect(v, EndGame(true)))
	})
}

func TestReflectCompoundsOverRally(t *testing.T) {
	v := dmath.Vec2{X: 4, Y: 0}
	for i := 0; i < 10; i++ {
		v = Reflect(v, ReflectHorizontal)
	}
	assert.Greater(t, Speed(v), 4*1.3)
}

func TestReflectWithSpeedUp(t *testing.T) {
	got := ReflectWithSpeedUp(dmath.Vec2{X: 2, Y: 2}, ReflectHorizontal, 1)
	assert.Equal(t, dmath.Vec2{X: -2, Y: 2}, got)
}
