package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors returned by route operations.
var (
	// ErrNilMesh indicates a nil *mesh.Mesh was passed in.
	ErrNilMesh = errors.New("route: mesh is nil")

	// ErrNilTree indicates a nil *dijkstra.Tree was passed to BuildPath.
	ErrNilTree = errors.New("route: tree is nil")

	// ErrMeshMismatch indicates the tree was computed from a different mesh
	// than the one supplied.
	ErrMeshMismatch = errors.New("route: tree does not belong to mesh")

	// ErrNoPath indicates origin and destination both exist but no chain of
	// segments leads from one to the other.
	ErrNoPath = errors.New("route: no path between points")

	// ErrInvalidParameter indicates a query parameter outside its legal
	// range (empty point name, non-positive autonomy or fuel price).
	ErrInvalidParameter = errors.New("route: invalid parameter")
)

// validate is the shared validator instance for Params structs.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Params carries one delivery question: where from, where to, and the
// vehicle economics that turn kilometers into money.
type Params struct {
	// Origin is the name of the starting point.
	Origin string `validate:"required"`
	// Destination is the name of the delivery target.
	Destination string `validate:"required"`
	// AutonomyKmPerLiter is how far the vehicle travels on one liter.
	AutonomyKmPerLiter float64 `validate:"gt=0"`
	// FuelPricePerLiter is the price of one liter of fuel.
	FuelPricePerLiter float64 `validate:"gt=0"`
}

// Validate checks Params before any search runs. All failures wrap
// ErrInvalidParameter; the message names the offending field.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return wrapFieldError(err)
	}
	// gt=0 admits +Inf; reject it explicitly.
	if math.IsInf(p.AutonomyKmPerLiter, 0) {
		return fmt.Errorf("%w: AutonomyKmPerLiter: must be finite", ErrInvalidParameter)
	}
	if math.IsInf(p.FuelPricePerLiter, 0) {
		return fmt.Errorf("%w: FuelPricePerLiter: must be finite", ErrInvalidParameter)
	}
	return nil
}

// wrapFieldError folds the first struct-tag violation into
// ErrInvalidParameter with a user-friendly message.
func wrapFieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%w: %s: field is required", ErrInvalidParameter, e.Field())
		case "gt":
			return fmt.Errorf("%w: %s: must be greater than %s", ErrInvalidParameter, e.Field(), e.Param())
		default:
			return fmt.Errorf("%w: %s: failed %q", ErrInvalidParameter, e.Field(), e.Tag())
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
}

// RouteResult is the answer to one delivery question.
type RouteResult struct {
	// MeshName names the mesh the route was computed on.
	MeshName string
	// Route is the ordered point sequence, origin first, destination last.
	// A trivial route (origin == destination) has length 1.
	Route []string
	// DistanceKm is the exact total length of Route, unrounded.
	DistanceKm float64
	// AutonomyKmPerLiter echoes the queried vehicle autonomy.
	AutonomyKmPerLiter float64
	// FuelPricePerLiter echoes the queried fuel price.
	FuelPricePerLiter float64
	// Cost is DistanceKm / AutonomyKmPerLiter * FuelPricePerLiter,
	// rounded half away from zero to two decimals.
	Cost float64
}
