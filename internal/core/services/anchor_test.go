package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheetstrike/sheetstrike-cli/internal/adapters/driven/entropy"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
)

var creationIDPattern = regexp.MustCompile(`^\{[0-9A-F]{8}-[0-9A-F]{4}-4[0-9A-F]{3}-[89AB][0-9A-F]{3}-[0-9A-F]{12}\}$`)

func TestNewDrawingObject_Scripted(t *testing.T) {
	rnd := &scriptedRandom{ints: []int{5, 20, 41}, fill: 0xAB}

	obj := NewDrawingObject(rnd)

	assert.Equal(t, domain.Anchor{ColStart: 105, RowStart: 520, ColEnd: 106, RowEnd: 521}, obj.Anchor)
	assert.Equal(t, "Picture 42", obj.Name)
	assert.Equal(t, "{ABABABAB-ABAB-4BAB-ABAB-ABABABABABAB}", obj.CreationID)
}

func TestNewDrawingObject_Bounds(t *testing.T) {
	rnd := &scriptedRandom{ints: []int{0, 0, 0}}
	obj := NewDrawingObject(rnd)
	assert.Equal(t, 100, obj.Anchor.ColStart)
	assert.Equal(t, 500, obj.Anchor.RowStart)
	assert.Equal(t, "Picture 1", obj.Name)

	rnd = &scriptedRandom{ints: []int{100, 500, 98}}
	obj = NewDrawingObject(rnd)
	assert.Equal(t, 200, obj.Anchor.ColStart)
	assert.Equal(t, 1000, obj.Anchor.RowStart)
	assert.Equal(t, "Picture 99", obj.Name)
}

func TestNewDrawingObject_Properties(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		obj := NewDrawingObject(entropy.NewFromUint64(seed))

		assert.GreaterOrEqual(t, obj.Anchor.ColStart, 100)
		assert.LessOrEqual(t, obj.Anchor.ColStart, 200)
		assert.GreaterOrEqual(t, obj.Anchor.RowStart, 500)
		assert.LessOrEqual(t, obj.Anchor.RowStart, 1000)
		assert.Equal(t, obj.Anchor.ColStart+1, obj.Anchor.ColEnd)
		assert.Equal(t, obj.Anchor.RowStart+1, obj.Anchor.RowEnd)
		assert.Regexp(t, `^Picture ([1-9]|[1-9][0-9])$`, obj.Name)
		assert.Regexp(t, creationIDPattern, obj.CreationID)
	}
}

func TestNewDrawingObject_SameSeedSameObject(t *testing.T) {
	a := NewDrawingObject(entropy.NewFromUint64(42))
	b := NewDrawingObject(entropy.NewFromUint64(42))
	assert.Equal(t, a, b)
}
