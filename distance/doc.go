// Package distance provides vector distance calculations.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance
//   - MetricSquaredL2: Squared Euclidean distance (cheaper, same ordering)
//   - MetricCosine: Cosine distance (1 - cosine similarity)
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	fn, err := distance.Provider(distance.MetricL2)
package distance
