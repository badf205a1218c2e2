// Command meshroute quotes the cheapest delivery route between two points
// of a mesh.
//
// Usage:
//
//	meshroute -mesh southeast.mesh -from A -to D -autonomy 10 -price 2.50
//	meshroute -manifest meshes.yaml -name southeast -from A -to D -autonomy 10 -price 2.50
//
// A .env file (or the environment) may predefine MESHROUTE_MESH,
// MESHROUTE_MANIFEST and MESHROUTE_NAME; explicit flags win.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/verlaque/meshroute/catalog"
	"github.com/verlaque/meshroute/meshtext"
	"github.com/verlaque/meshroute/route"
)

func main() {
	// .env feeds the flag defaults below, so it loads first; a missing
	// file is the normal case.
	envErr := godotenv.Load()

	var (
		meshPath = flag.String("mesh", os.Getenv("MESHROUTE_MESH"), "mesh file to load")
		manifest = flag.String("manifest", os.Getenv("MESHROUTE_MANIFEST"), "YAML manifest of mesh files")
		name     = flag.String("name", os.Getenv("MESHROUTE_NAME"), "mesh to query (default: the only one loaded)")
		from     = flag.String("from", "", "origin point name")
		to       = flag.String("to", "", "destination point name")
		autonomy = flag.Float64("autonomy", 0, "vehicle autonomy in km per liter")
		price    = flag.Float64("price", 0, "fuel price per liter")
		bothWays = flag.Bool("both-ways", false, "treat every segment as navigable in both directions")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage:")
		fmt.Fprintln(flag.CommandLine.Output(), "  meshroute -mesh <file> -from <point> -to <point> -autonomy <km/l> -price <per-liter>")
		fmt.Fprintln(flag.CommandLine.Output(), "  meshroute -manifest <file> -name <mesh> -from <point> -to <point> -autonomy <km/l> -price <per-liter>")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := log.WarnLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "meshroute",
	})
	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}

	cat := catalog.New()
	switch {
	case *manifest != "" && *meshPath != "":
		logger.Fatal("-mesh and -manifest are mutually exclusive")
	case *manifest != "":
		if *bothWays {
			logger.Warn("-both-ways is ignored with -manifest; set both_ways per entry")
		}
		if err := cat.LoadManifest(*manifest); err != nil {
			logger.Fatal("load manifest", "path", *manifest, "err", err)
		}
		logger.Debug("manifest loaded", "path", *manifest, "meshes", strings.Join(cat.Names(), ","))
	case *meshPath != "":
		var opts []meshtext.Option
		if *bothWays {
			opts = append(opts, meshtext.WithBothWays())
		}
		m, err := meshtext.ParseFile(*meshPath, opts...)
		if err != nil {
			logger.Fatal("load mesh", "path", *meshPath, "err", err)
		}
		if _, err = cat.Register(m); err != nil {
			logger.Fatal("register mesh", "name", m.Name(), "err", err)
		}
		logger.Debug("mesh loaded",
			"name", m.Name(), "points", m.PointCount(), "segments", m.SegmentCount())
	default:
		flag.Usage()
		os.Exit(2)
	}

	target := *name
	if target == "" {
		names := cat.Names()
		if len(names) != 1 {
			logger.Fatal("pick a mesh with -name", "loaded", strings.Join(names, ","))
		}
		target = names[0]
	}

	res, err := cat.Query(context.Background(), target, route.Params{
		Origin:             *from,
		Destination:        *to,
		AutonomyKmPerLiter: *autonomy,
		FuelPricePerLiter:  *price,
	})
	if err != nil {
		logger.Fatal("quote failed", "mesh", target, "err", err)
	}

	fmt.Printf("route: %s\n", strings.Join(res.Route, " -> "))
	fmt.Printf("distance: %g km\n", res.DistanceKm)
	fmt.Printf("cost: %.2f\n", res.Cost)
}
