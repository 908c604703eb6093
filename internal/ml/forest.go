package ml

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// ForestOptions configures a RandomForest.
type ForestOptions struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	// MaxFeatures per split; 0 means floor(sqrt(features)).
	MaxFeatures int
	Seed        int64
}

// DefaultForestOptions returns 100 trees of depth 10, seeded with 42.
func DefaultForestOptions() ForestOptions {
	return ForestOptions{Trees: 100, MaxDepth: 10, MinSamplesSplit: 2, Seed: 42}
}

// RandomForest is a bagged ensemble of CART classification trees using Gini
// impurity. It is immutable after Fit.
type RandomForest struct {
	opts     ForestOptions
	nClasses int
	nFeat    int
	trees    []*node
}

type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	// probs is set on leaves only.
	probs []float64
}

func (n *node) leaf() bool { return n.probs != nil }

// FitForest trains a forest on X (rows × features) with labels y in [0, nClasses).
func FitForest(X [][]float64, y []int, nClasses int, opts ForestOptions) (*RandomForest, error) {
	if len(X) == 0 || len(X) != len(y) {
		return nil, errors.New("forest: empty or mismatched training data")
	}
	if nClasses < 1 {
		return nil, errors.New("forest: no classes")
	}
	nFeat := len(X[0])
	for _, row := range X {
		if len(row) != nFeat {
			return nil, errors.New("forest: ragged feature rows")
		}
	}
	for _, label := range y {
		if label < 0 || label >= nClasses {
			return nil, errors.New("forest: label out of range")
		}
	}
	if opts.Trees <= 0 {
		opts.Trees = 1
	}
	if opts.MinSamplesSplit < 2 {
		opts.MinSamplesSplit = 2
	}
	if opts.MaxFeatures <= 0 || opts.MaxFeatures > nFeat {
		opts.MaxFeatures = max(1, int(math.Sqrt(float64(nFeat))))
	}

	f := &RandomForest{
		opts:     opts,
		nClasses: nClasses,
		nFeat:    nFeat,
		trees:    make([]*node, opts.Trees),
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range f.trees {
		g.Go(func() error {
			// Each tree owns its generator so the result does not depend on scheduling.
			rng := rand.New(rand.NewSource(opts.Seed + int64(i)))
			sample := make([]int, len(X))
			for j := range sample {
				sample[j] = rng.Intn(len(X))
			}
			b := &treeBuilder{X: X, y: y, nClasses: nClasses, opts: opts, rng: rng}
			f.trees[i] = b.grow(sample, 0)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}

// NumClasses reports the width of PredictProba's output.
func (f *RandomForest) NumClasses() int { return f.nClasses }

// PredictProba averages the leaf class distributions of every tree.
func (f *RandomForest) PredictProba(x []float64) []float64 {
	out := make([]float64, f.nClasses)
	for _, t := range f.trees {
		n := t
		for !n.leaf() {
			if x[n.feature] <= n.threshold {
				n = n.left
			} else {
				n = n.right
			}
		}
		floats.Add(out, n.probs)
	}
	floats.Scale(1/float64(len(f.trees)), out)
	return out
}

// Predict returns the most probable class; ties go to the lower index.
func (f *RandomForest) Predict(x []float64) int {
	return floats.MaxIdx(f.PredictProba(x))
}

// Accuracy is the fraction of rows predicted correctly.
func (f *RandomForest) Accuracy(X [][]float64, y []int) float64 {
	if len(X) == 0 {
		return 0
	}
	correct := 0
	for i, row := range X {
		if f.Predict(row) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X))
}

type treeBuilder struct {
	X        [][]float64
	y        []int
	nClasses int
	opts     ForestOptions
	rng      *rand.Rand
}

func (b *treeBuilder) distribution(idx []int) []float64 {
	counts := make([]float64, b.nClasses)
	for _, i := range idx {
		counts[b.y[i]]++
	}
	floats.Scale(1/float64(len(idx)), counts)
	return counts
}

func gini(counts []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range counts {
		p := c / total
		sum += p * p
	}
	return 1 - sum
}

func (b *treeBuilder) grow(idx []int, depth int) *node {
	dist := b.distribution(idx)
	if depth >= b.opts.MaxDepth || len(idx) < b.opts.MinSamplesSplit || floats.Max(dist) == 1 {
		return &node{probs: dist}
	}

	feature, threshold, ok := b.bestSplit(idx)
	if !ok {
		return &node{probs: dist}
	}

	var left, right []int
	for _, i := range idx {
		if b.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return &node{
		feature:   feature,
		threshold: threshold,
		left:      b.grow(left, depth+1),
		right:     b.grow(right, depth+1),
	}
}

// bestSplit scans a random subset of features for the threshold with the
// lowest weighted Gini impurity.
func (b *treeBuilder) bestSplit(idx []int) (int, float64, bool) {
	nFeat := len(b.X[0])
	candidates := b.rng.Perm(nFeat)[:b.opts.MaxFeatures]

	total := float64(len(idx))
	parentCounts := make([]float64, b.nClasses)
	for _, i := range idx {
		parentCounts[b.y[i]]++
	}
	bestScore := gini(parentCounts, total)
	bestFeature, bestThreshold, found := -1, 0.0, false

	sorted := make([]int, len(idx))
	leftCounts := make([]float64, b.nClasses)
	rightCounts := make([]float64, b.nClasses)

	for _, f := range candidates {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, c int) bool { return b.X[sorted[a]][f] < b.X[sorted[c]][f] })

		for k := range leftCounts {
			leftCounts[k] = 0
		}
		copy(rightCounts, parentCounts)

		for pos := 0; pos < len(sorted)-1; pos++ {
			label := b.y[sorted[pos]]
			leftCounts[label]++
			rightCounts[label]--

			cur, next := b.X[sorted[pos]][f], b.X[sorted[pos+1]][f]
			if cur == next {
				continue
			}
			nl := float64(pos + 1)
			nr := total - nl
			score := (nl*gini(leftCounts, nl) + nr*gini(rightCounts, nr)) / total
			if score < bestScore-1e-12 {
				bestScore = score
				bestFeature = f
				bestThreshold = (cur + next) / 2
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}
