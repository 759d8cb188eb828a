package localsearch

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/goderik01/PACE2018/stpggraph"
)

// solution is one candidate Steiner tree: an edge set, its total weight, and
// the hash that identifies it in a pool's known set.
type solution struct {
	edges  []stpggraph.EdgeHandle
	weight stpggraph.Weight
	hash   uint64
}

// hashSolution returns an FNV-1a hash of edges as canonically sorted
// (min-endpoint, max-endpoint) pairs, invariant to edge order. Translates
// end_heu's hash_sol, which combines sorted edge endpoints via
// boost::hash_combine; FNV-1a is the stdlib-equivalent combine here.
func hashSolution(g *stpggraph.Graph, edges []stpggraph.EdgeHandle) uint64 {
	type pair struct{ a, b int32 }
	pairs := make([]pair, len(edges))
	for i, e := range edges {
		s, t := int32(g.Source(e)), int32(g.Target(e))
		if s > t {
			s, t = t, s
		}
		pairs[i] = pair{s, t}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	h := fnv.New64a()
	var buf [8]byte
	for _, p := range pairs {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(p.a))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(p.b))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// pool is end_heu's cur_queue/old_queue pair plus known_solutions: a
// capacity-bounded history of recently seen candidates, used both to pick a
// random restart point and to reject a rediscovered, non-improving solution
// outright.
type pool struct {
	cur, old []solution
	known    map[uint64]bool
	cap      int
}

func newPool(cap int) *pool {
	return &pool{known: make(map[uint64]bool), cap: cap}
}

// seen reports whether hash is already known to the pool.
func (p *pool) seen(hash uint64) bool { return p.known[hash] }

// push records a candidate at the front of the current generation, evicting
// the oldest old-generation (then current-generation) entries once the
// combined pool exceeds its capacity.
func (p *pool) push(s solution) {
	p.known[s.hash] = true
	p.cur = append([]solution{s}, p.cur...)
	for len(p.cur)+len(p.old) > p.cap {
		var victim solution
		if len(p.old) > 0 {
			victim, p.old = p.old[len(p.old)-1], p.old[:len(p.old)-1]
		} else {
			victim, p.cur = p.cur[len(p.cur)-1], p.cur[:len(p.cur)-1]
		}
		delete(p.known, victim.hash)
	}
}

// rotate moves every current-generation candidate into the old generation,
// mirroring end_heu's "start over" std::swap(cur_queue, old_queue).
func (p *pool) rotate() {
	p.old = append(p.cur, p.old...)
	p.cur = nil
}

func (p *pool) empty() bool { return len(p.cur) == 0 && len(p.old) == 0 }

// pickRandom returns a uniformly random pooled candidate, or
// (solution{}, false) if the pool is empty.
func (p *pool) pickRandom(rng *rand.Rand) (solution, bool) {
	total := len(p.cur) + len(p.old)
	if total == 0 {
		return solution{}, false
	}
	i := rng.Intn(total)
	if i < len(p.cur) {
		return p.cur[i], true
	}
	return p.old[i-len(p.cur)], true
}
