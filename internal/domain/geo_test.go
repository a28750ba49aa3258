package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKM(t *testing.T) {
	// Москва — Санкт-Петербург, ~634 км
	distance := HaversineKM(55.7558, 37.6173, 59.9311, 30.3609)
	assert.InDelta(t, 634, distance, 5)

	// Нулевое расстояние до самой себя
	assert.InDelta(t, 0, HaversineKM(55.7558, 37.6173, 55.7558, 37.6173), 1e-9)

	// Расстояние симметрично
	forward := HaversineKM(55.7558, 37.6173, 55.0, 38.0)
	backward := HaversineKM(55.0, 38.0, 55.7558, 37.6173)
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.True(t, ValidCoordinates(55.7558, 37.6173))

	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(-90.1, 0))
	assert.False(t, ValidCoordinates(0, 180.1))
	assert.False(t, ValidCoordinates(0, -180.1))
}
