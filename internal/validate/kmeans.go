package validate

import "math/rand"

const (
	kmeansSeed     = 42
	kmeansMaxIters = 100
)

// kmeans partitions the vectors into exactly k non-empty groups and returns
// the group index per vector. Callers must guarantee 0 < k <= len(vectors);
// k == 0 is a degenerate case guarded upstream.
func kmeans(vectors [][]float64, k int) []int {
	n := len(vectors)
	rng := rand.New(rand.NewSource(kmeansSeed))

	// Seed centroids from k distinct vectors.
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), vectors[idx]...)
	}

	assignments := make([]int, n)
	for iter := 0; iter < kmeansMaxIters; iter++ {
		changed := false
		for i, vec := range vectors {
			best := nearestCentroid(vec, centroids)
			if best != assignments[i] {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}
		recomputeCentroids(vectors, assignments, centroids)
	}

	fillEmptyClusters(assignments, k)
	return assignments
}

func nearestCentroid(vec []float64, centroids [][]float64) int {
	best := 0
	bestDist := sqDist(vec, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := sqDist(vec, centroids[c]); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func recomputeCentroids(vectors [][]float64, assignments []int, centroids [][]float64) {
	dim := len(vectors[0])
	counts := make([]int, len(centroids))
	for c := range centroids {
		centroids[c] = make([]float64, dim)
	}
	for i, vec := range vectors {
		c := assignments[i]
		counts[c]++
		for j, v := range vec {
			centroids[c][j] += v
		}
	}
	for c, count := range counts {
		if count == 0 {
			continue
		}
		for j := range centroids[c] {
			centroids[c][j] /= float64(count)
		}
	}
}

// fillEmptyClusters moves members out of the largest groups so that every
// one of the k groups is non-empty. Identical inputs can otherwise collapse
// onto a single centroid.
func fillEmptyClusters(assignments []int, k int) {
	sizes := make([]int, k)
	for _, c := range assignments {
		sizes[c]++
	}

	for c := 0; c < k; c++ {
		if sizes[c] > 0 {
			continue
		}
		donor := 0
		for d := 1; d < k; d++ {
			if sizes[d] > sizes[donor] {
				donor = d
			}
		}
		for i, a := range assignments {
			if a == donor {
				assignments[i] = c
				sizes[donor]--
				sizes[c]++
				break
			}
		}
	}
}
