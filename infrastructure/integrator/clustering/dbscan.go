package clustering

import "math"

const (
	noise      = -1
	unassigned = -2
)

// DBSCAN rotula os pontos por densidade. Um ponto é núcleo quando tem ao menos
// minSamples vizinhos (incluindo ele mesmo) a distância <= eps. Os clusters são
// numerados a partir de 0 na ordem em que seus primeiros núcleos aparecem.
func DBSCAN(points [][]float64, eps float64, minSamples int) []int {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = unassigned
	}

	cluster := 0
	for i := range points {
		if labels[i] != unassigned {
			continue
		}

		neighbors := regionQuery(points, i, eps)
		if len(neighbors) < minSamples {
			labels[i] = noise
			continue
		}

		labels[i] = cluster
		queue := append([]int(nil), neighbors...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]

			if labels[j] == noise {
				labels[j] = cluster
			}
			if labels[j] != unassigned {
				continue
			}

			labels[j] = cluster
			if expansion := regionQuery(points, j, eps); len(expansion) >= minSamples {
				queue = append(queue, expansion...)
			}
		}

		cluster++
	}

	return labels
}

func regionQuery(points [][]float64, i int, eps float64) []int {
	neighbors := make([]int, 0)
	for j := range points {
		if euclidean(points[i], points[j]) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
