package clustering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBSCAN(t *testing.T) {
	points := [][]float64{
		{0, 0}, {0, 0.1}, {0.1, 0}, // cluster 0
		{5, 5}, {5, 5.1}, {5.1, 5}, // cluster 1
		{20, 20},                   // ruído
		{0.2, 0.2},                 // borda do cluster 0
	}

	labels := DBSCAN(points, 0.3, 3)

	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, -1, 0}, labels)
}

func TestDBSCAN_AllNoise(t *testing.T) {
	labels := DBSCAN([][]float64{{0}, {10}, {20}}, 1, 2)
	assert.Equal(t, []int{-1, -1, -1}, labels)
}

func TestDBSCAN_Empty(t *testing.T) {
	assert.Empty(t, DBSCAN(nil, 0.5, 5))
}
