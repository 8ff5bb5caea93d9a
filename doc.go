// Package seedgo selects initial cluster centers ("seeds") for k-means and
// k-medoids clustering.
//
// The main strategy is farthest-first traversal (FarthestPoints): each new
// seed greedily maximizes its minimum distance to all previously chosen
// seeds, producing well-separated starting centers. KMeansPlusPlus and
// Random are provided as alternatives, and Restart picks the best seed set
// out of several independent runs.
//
// Every strategy exposes two output modes over the same selection sequence:
//
//   - Means returns copied vectors, for k-means style algorithms that move
//     their centers.
//   - Medoids returns dataset indices, for k-medoids style algorithms that
//     need representative dataset members.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	data, _ := dataset.FromSlices([][]float32{
//	    {0, 0}, {1, 0}, {10, 10}, {11, 10},
//	})
//
//	fp, _ := seedgo.NewFarthestPoints(seedgo.WithSeed(42))
//	means, _ := fp.Means(ctx, data, 2)
//
// Selection is deterministic given the random source: configure one with
// WithSeed or WithRandomSource for reproducible runs.
package seedgo
