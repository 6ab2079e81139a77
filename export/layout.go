package export

import (
	"math"
	"math/rand"
	"time"

	"github.com/queelius/btk-graph/graph"
)

// layoutConfig parameterizes the force simulation. Only the SVG exporter
// drives it; positions live for a single export call.
type layoutConfig struct {
	width      float64
	height     float64
	iterations int
	margin     float64

	// seed 0 means seed from the clock: layouts are then not
	// reproducible across runs. Tests pass explicit seeds.
	seed int64
}

func defaultLayoutConfig(width, height float64, seed int64) layoutConfig {
	return layoutConfig{
		width:      width,
		height:     height,
		iterations: 100,
		margin:     50,
		seed:       seed,
	}
}

// layoutNode carries position and accumulated displacement for one
// simulation step.
type layoutNode struct {
	id int64
	x  float64
	y  float64
	vx float64
	vy float64
}

// computeLayout runs a Fruchterman–Reingold-style force simulation:
// all-pairs repulsion proportional to k²/d, per-edge attraction
// proportional to d²/k scaled by edge weight, applied under a
// temperature that decays linearly to zero and caps per-step movement.
func computeLayout(ids []int64, edges []graph.Edge, cfg layoutConfig) map[int64][2]float64 {
	positions := make(map[int64][2]float64, len(ids))
	if len(ids) == 0 {
		return positions
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Random initial placement within the central 60% of the canvas
	nodes := make([]*layoutNode, 0, len(ids))
	index := make(map[int64]*layoutNode, len(ids))
	for _, id := range ids {
		n := &layoutNode{
			id: id,
			x:  cfg.width*0.2 + rng.Float64()*cfg.width*0.6,
			y:  cfg.height*0.2 + rng.Float64()*cfg.height*0.6,
		}
		nodes = append(nodes, n)
		index[id] = n
	}

	k := math.Sqrt(cfg.width * cfg.height / float64(len(nodes)))

	for iter := 0; iter < cfg.iterations; iter++ {
		temperature := cfg.width / 10 * (1 - float64(iter)/float64(cfg.iterations))

		for _, n := range nodes {
			n.vx, n.vy = 0, 0
		}

		// Repulsion between every pair
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				n1, n2 := nodes[i], nodes[j]
				dx := n1.x - n2.x
				dy := n1.y - n2.y
				dist := math.Hypot(dx, dy)
				if dist < 0.01 {
					dist = 0.01
				}
				force := k * k / dist
				fx := dx / dist * force
				fy := dy / dist * force
				n1.vx += fx
				n1.vy += fy
				n2.vx -= fx
				n2.vy -= fy
			}
		}

		// Attraction along edges, stronger for heavier edges
		for _, e := range edges {
			n1, ok1 := index[e.Pair.A]
			n2, ok2 := index[e.Pair.B]
			if !ok1 || !ok2 {
				continue
			}
			dx := n1.x - n2.x
			dy := n1.y - n2.y
			dist := math.Hypot(dx, dy)
			if dist < 0.01 {
				dist = 0.01
			}
			force := dist * dist / k * (e.Weight / 5.0)
			fx := dx / dist * force
			fy := dy / dist * force
			n1.vx -= fx
			n1.vy -= fy
			n2.vx += fx
			n2.vy += fy
		}

		// Apply displacement, capped at the current temperature
		for _, n := range nodes {
			disp := math.Hypot(n.vx, n.vy)
			if disp < 0.01 {
				continue
			}
			limited := math.Min(disp, temperature)
			n.x += n.vx / disp * limited
			n.y += n.vy / disp * limited
		}
	}

	// Clamp final coordinates inside the margin
	for _, n := range nodes {
		x := math.Min(math.Max(n.x, cfg.margin), cfg.width-cfg.margin)
		y := math.Min(math.Max(n.y, cfg.margin), cfg.height-cfg.margin)
		positions[n.id] = [2]float64{x, y}
	}
	return positions
}
