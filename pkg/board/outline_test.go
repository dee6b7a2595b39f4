package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func square() *Outline {
	o := New()
	o.AddPoint(200, 400)
	o.AddPoint(200, 500)
	o.AddPoint(300, 500)
	o.AddPoint(300, 400)
	return o
}

func TestNormalize(t *testing.T) {
	o := square()
	o.Normalize()

	assert.Equal(t, []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}}, o.Points())
	assert.True(t, o.Normalized())
}

func TestNormalizeIsSingleShot(t *testing.T) {
	o := square()
	o.Normalize()
	o.Normalize()

	assert.Equal(t, []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}}, o.Points())
}

func TestOriginSurvivesNormalize(t *testing.T) {
	o := square()
	o.Normalize()
	assert.Equal(t, r2.Vec{X: 200, Y: 400}, o.Origin())
}

func TestRunningMinima(t *testing.T) {
	o := New()
	o.AddPoint(-5, 10)
	assert.Equal(t, r2.Vec{X: -5, Y: 10}, o.Origin(), "first point initialises the minima")

	o.AddPoint(3, -2)
	o.AddPoint(100, 100)
	assert.Equal(t, r2.Vec{X: -5, Y: -2}, o.Origin(), "later points only lower the minima")
}

func TestZeroFirstPoint(t *testing.T) {
	o := New()
	o.AddPoint(0, 0)
	o.AddPoint(10, 10)
	assert.Equal(t, r2.Vec{}, o.Origin())
}

func TestClosedAndBounds(t *testing.T) {
	o := square()
	o.Normalize()

	closed := o.Closed()
	assert.Len(t, closed, 5)
	assert.Equal(t, closed[0], closed[4])

	b := o.Bounds()
	assert.Equal(t, r2.Vec{X: 0, Y: 0}, b.Min)
	assert.Equal(t, r2.Vec{X: 100, Y: 100}, b.Max)

	assert.Nil(t, New().Closed())
	assert.Equal(t, r2.Box{}, New().Bounds())
}

func TestPointsIsACopy(t *testing.T) {
	o := square()
	pts := o.Points()
	pts[0] = r2.Vec{X: -1, Y: -1}
	assert.Equal(t, r2.Vec{X: 200, Y: 400}, o.Points()[0])
}
