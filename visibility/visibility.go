/*Package visibility determines, for each facet of a shape, which other
facets it can see and with what Lambertian view factor, via an occlusion
test against every other candidate facet. It also answers whether a given
facet currently sees unobstructed sunlight from a given direction.

No acceleration structure is used: for each observer, Step A is O(N) over
the facet array and Step B is O(N^2) over the candidate set, giving an
O(N^2)-O(N^3) overall cost across all observers. Spec section 5 calls this
out as an implementer's choice; FindVisibleFacesParallel offers the
embarrassingly-parallel per-observer variant without changing Step A-C's
semantics.
*/
package visibility

import (
	"math"
	"runtime"
	"sync"

	"github.com/phil-mansfield/asteroid-thermal/geom"
	"github.com/phil-mansfield/asteroid-thermal/mesh"
	"github.com/phil-mansfield/asteroid-thermal/vec3"
)

// FindVisibleFaces computes the visibility list and view factors for every
// facet in facets, treating each in turn as the observer against all
// others. Existing VisibleFaces entries are discarded and recomputed.
func FindVisibleFaces(facets []*mesh.Facet) {
	for obsIdx := range facets {
		facets[obsIdx].VisibleFaces = visibleFacesFor(obsIdx, facets)
	}
}

// FindVisibleFacesParallel is FindVisibleFaces, but distributes the
// per-observer work (which only reads the shared facet array) across a
// bounded worker pool. The result is identical to FindVisibleFaces up to
// tie-breaking among equidistant occluders.
func FindVisibleFacesParallel(facets []*mesh.Facet) {
	workers := runtime.NumCPU()
	if workers > len(facets) {
		workers = len(facets)
	}
	if workers < 1 {
		return
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for obsIdx := range jobs {
				facets[obsIdx].VisibleFaces = visibleFacesFor(obsIdx, facets)
			}
		}()
	}
	for i := range facets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// visibleFacesFor runs Steps A-C of the visibility algorithm for one
// observer facet against the full facet array.
func visibleFacesFor(obsIdx int, facets []*mesh.Facet) []mesh.VisibleFace {
	obs := facets[obsIdx]

	// Step A: candidate set. On the outward half-space of obs and facing
	// back toward it.
	candidates := make([]int, 0, len(facets))
	for i, tar := range facets {
		if i == obsIdx {
			continue
		}
		if geom.IsAbove(obs.A, obs.B, obs.C, tar.Center) &&
			geom.IsFace(obs.Center, tar.Center, tar.Normal) {
			candidates = append(candidates, i)
		}
	}

	// Step B: occlusion pruning, reimplemented as two passes per spec
	// section 9 rather than mutating the candidate set while iterating
	// it: gather occlusion events against a fixed snapshot, then apply
	// the removals.
	removed := make(map[int]bool, len(candidates))
	for _, i := range candidates {
		for _, j := range candidates {
			if i == j {
				continue
			}
			if occ, ok := nearerOccludes(obs.Center, facets[i], facets[j], i, j); ok {
				removed[occ] = true
			}
		}
	}

	survivors := make([]int, 0, len(candidates))
	for _, i := range candidates {
		if !removed[i] {
			survivors = append(survivors, i)
		}
	}

	// Step C: view factors.
	out := make([]mesh.VisibleFace, 0, len(survivors))
	for _, id := range survivors {
		tar := facets[id]
		d := tar.Center.Sub(obs.Center)
		dist := d.Norm()
		dHat := d.Scale(1 / dist)

		cosObs := obs.Normal.Dot(dHat)
		cosTar := tar.Normal.Dot(dHat.Scale(-1))
		f := cosObs * cosTar / (math.Pi * dist * dist) * tar.Area

		out = append(out, mesh.VisibleFace{ID: id, F: f, Dir: dHat})
	}
	return out
}

// nearerOccludes casts a ray from obsCenter toward ti's center against tj.
// If it hits, one of {iIdx, jIdx} is occluded by the other; the farther of
// the two (by distance from obsCenter) is returned as occluded. ok is
// false if the ray toward ti misses tj entirely.
func nearerOccludes(obsCenter vec3.Vec3, ti, tj *mesh.Facet, iIdx, jIdx int) (occluded int, ok bool) {
	R := ti.Center.Sub(obsCenter)
	if _, hit := geom.RaycastFrom(tj.A, tj.B, tj.C, obsCenter, R); !hit {
		return 0, false
	}

	di := R.Norm()
	dj := tj.Center.Sub(obsCenter).Norm()
	if di <= dj {
		return jIdx, true
	}
	return iIdx, true
}

// IsAboveHorizon reports whether f's visibility list is empty, i.e. no
// other facet on the shape is visible from it.
func IsAboveHorizon(f *mesh.Facet) bool {
	return f.IsAboveHorizon()
}

// IsIlluminated reports whether obs currently sees unobstructed sunlight
// from direction sunDir (a unit vector pointing from obs toward the Sun).
// The Sun is assumed to be at infinity, so only facets already known to be
// visible from obs (obs.VisibleFaces) can occlude it.
func IsIlluminated(obs *mesh.Facet, sunDir vec3.Vec3, facets []*mesh.Facet) bool {
	if obs.Normal.Dot(sunDir) < 0 {
		return false
	}

	for _, vf := range obs.VisibleFaces {
		tar := facets[vf.ID]
		if _, hit := geom.RaycastFrom(tar.A, tar.B, tar.C, obs.Center, sunDir); hit {
			return false
		}
	}
	return true
}
