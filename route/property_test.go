package route_test

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/verlaque/meshroute/mesh"
	"github.com/verlaque/meshroute/meshgen"
	"github.com/verlaque/meshroute/route"
)

// errorsIsNoPath reports whether a Cheapest failure is the legal
// unreachable-destination outcome.
func errorsIsNoPath(err error) bool {
	return errors.Is(err, route.ErrNoPath)
}

const (
	propPoints = 25
	propDegree = 3
	propMaxKm  = 40.0
)

// segmentKm returns the cheapest direct segment between two named points,
// or false when none exists.
func segmentKm(m *mesh.Mesh, from, to mesh.Point) (float64, bool) {
	best, found := 0.0, false
	for _, seg := range m.Outgoing(from.ID) {
		if seg.To != to.ID {
			continue
		}
		if !found || seg.Km < best {
			best, found = seg.Km, true
		}
	}
	return best, found
}

// TestRouteProperties verifies invariants that must hold for any mesh and
// any answered query, using seeded random topologies.
func TestRouteProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60

	properties := gopter.NewProperties(parameters)

	// Property 1: the reported distance is exactly the sum of the traversed
	// segments, accumulated in travel order.
	properties.Property("distance equals the sum of its segments", prop.ForAll(
		func(seed int64, destIdx int) bool {
			m, err := meshgen.Random(propPoints, propDegree, propMaxKm, seed)
			if err != nil {
				return false
			}
			pts := m.Points()
			p := route.Params{
				Origin:             pts[0].Name,
				Destination:        pts[destIdx].Name,
				AutonomyKmPerLiter: 10,
				FuelPricePerLiter:  2.5,
			}

			res, err := route.Cheapest(m, p)
			if err != nil {
				// Unreachable destinations are a legal outcome on random
				// one-way topologies; anything else is a failure.
				return errorsIsNoPath(err)
			}

			total := 0.0
			for i := 1; i < len(res.Route); i++ {
				from, ferr := m.FindPoint(res.Route[i-1])
				to, terr := m.FindPoint(res.Route[i])
				if ferr != nil || terr != nil {
					return false
				}
				km, ok := segmentKm(m, from, to)
				if !ok {
					return false // consecutive route points must be directly connected
				}
				total += km
			}
			return total == res.DistanceKm
		},
		gen.Int64Range(0, 1<<30),
		gen.IntRange(1, propPoints-1),
	))

	// Property 2: rebuilding the same mesh and asking again returns a
	// byte-identical answer.
	properties.Property("quotes are reproducible", prop.ForAll(
		func(seed int64, destIdx int) bool {
			first, err := meshgen.Random(propPoints, propDegree, propMaxKm, seed)
			if err != nil {
				return false
			}
			second, err := meshgen.Random(propPoints, propDegree, propMaxKm, seed)
			if err != nil {
				return false
			}
			pts := first.Points()
			p := route.Params{
				Origin:             pts[0].Name,
				Destination:        pts[destIdx].Name,
				AutonomyKmPerLiter: 7,
				FuelPricePerLiter:  3.1,
			}

			resA, errA := route.Cheapest(first, p)
			resB, errB := route.Cheapest(second, p)
			if errA != nil || errB != nil {
				return (errA == nil) == (errB == nil)
			}
			if resA.DistanceKm != resB.DistanceKm || resA.Cost != resB.Cost {
				return false
			}
			if len(resA.Route) != len(resB.Route) {
				return false
			}
			for i := range resA.Route {
				if resA.Route[i] != resB.Route[i] {
					return false
				}
			}
			return true
		},
		gen.Int64Range(0, 1<<30),
		gen.IntRange(1, propPoints-1),
	))

	// Property 3: the cost always matches the published formula, rounded to
	// two decimals, for any legal economics.
	properties.Property("cost follows distance/autonomy*price", prop.ForAll(
		func(seed int64, autonomy, price float64) bool {
			m, err := meshgen.Random(propPoints, propDegree, propMaxKm, seed)
			if err != nil {
				return false
			}
			pts := m.Points()
			res, err := route.Cheapest(m, route.Params{
				Origin:             pts[0].Name,
				Destination:        pts[len(pts)-1].Name,
				AutonomyKmPerLiter: autonomy,
				FuelPricePerLiter:  price,
			})
			if err != nil {
				return errorsIsNoPath(err)
			}
			want := math.Round(res.DistanceKm/autonomy*price*100) / 100
			return res.Cost == want && res.Cost >= 0
		},
		gen.Int64Range(0, 1<<30),
		gen.Float64Range(0.5, 30),
		gen.Float64Range(0.01, 12),
	))

	// Property 4: a returned route starts at the origin, ends at the
	// destination and never repeats a point (shortest routes are simple
	// when all segments are positive).
	properties.Property("routes are simple origin-to-destination walks", prop.ForAll(
		func(seed int64, destIdx int) bool {
			m, err := meshgen.Random(propPoints, propDegree, propMaxKm, seed)
			if err != nil {
				return false
			}
			pts := m.Points()
			origin, dest := pts[0].Name, pts[destIdx].Name
			res, err := route.Cheapest(m, route.Params{
				Origin:             origin,
				Destination:        dest,
				AutonomyKmPerLiter: 10,
				FuelPricePerLiter:  2.5,
			})
			if err != nil {
				return errorsIsNoPath(err)
			}
			if res.Route[0] != origin || res.Route[len(res.Route)-1] != dest {
				return false
			}
			seen := make(map[string]bool, len(res.Route))
			for _, name := range res.Route {
				if seen[name] {
					return false
				}
				seen[name] = true
			}
			return true
		},
		gen.Int64Range(0, 1<<30),
		gen.IntRange(1, propPoints-1),
	))

	properties.TestingRun(t)
}
