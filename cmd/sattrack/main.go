// Command sattrack propagates a satellite TLE with SGP4 and prints its ground
// track as geodetic coordinates and MGRS grid references.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/geodesy/core"
	"github.com/signalsfoundry/geodesy/internal/logging"
	"github.com/signalsfoundry/geodesy/mgrs"
)

func main() {
	tlePath := flag.String("tle", "", "Path to a two- or three-line TLE file")
	duration := flag.Duration("duration", 90*time.Minute, "How far to propagate the ground track")
	step := flag.Duration("step", time.Minute, "Sampling interval along the track")
	precision := flag.Int("precision", 4, "MGRS digits per group (1-5)")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	if *tlePath == "" {
		log.Error(ctx, "missing required -tle flag")
		os.Exit(2)
	}

	line1, line2, err := readTLE(*tlePath)
	if err != nil {
		log.Error(ctx, "failed to read TLE", logging.String("path", *tlePath), logging.String("error", err.Error()))
		os.Exit(1)
	}

	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	start := time.Now().UTC()

	for offset := time.Duration(0); offset <= *duration; offset += *step {
		t := start.Add(offset)
		lat, lon, alt := groundPoint(sat, t)

		grid, err := mgrs.FromGeodetic(lat, lon, *precision)
		if err != nil {
			// Positions between the UTM and UPS bands can fall outside the
			// grid lettering; report the geodetic point anyway.
			grid = "-"
		}

		fmt.Printf("%s  %9.4f %9.4f  %8.1f km  %s\n",
			t.Format(time.RFC3339),
			lat*180/math.Pi,
			lon*180/math.Pi,
			alt/1000,
			grid,
		)
	}
}

// groundPoint propagates the satellite to t and returns the sub-satellite
// geodetic position (radians, radians, metres).
func groundPoint(sat satellite.Satellite, t time.Time) (lat, lon, alt float64) {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	posECI, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	posECEF := satellite.ECIToECEF(posECI, gmst)

	// go-satellite works in kilometres.
	const kmToM = 1000.0
	p := core.ECEFToGeodetic(core.Vec3{
		X: posECEF.X * kmToM,
		Y: posECEF.Y * kmToM,
		Z: posECEF.Z * kmToM,
	})
	return p.Lat, core.NormalizeLon(p.Lon), p.Alt
}

// readTLE pulls the first two element lines out of a TLE file, skipping an
// optional name line.
func readTLE(path string) (line1, line2 string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 ") {
			lines = append(lines, line)
		}
		if len(lines) == 2 {
			return lines[0], lines[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", fmt.Errorf("no TLE element lines in %s", path)
}
