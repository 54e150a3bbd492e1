// Command gengauge writes synthetic tide-gauge archive files for demos and
// test fixtures. The generated signal is an M2+S2 tide around a configurable
// mean with a linear rise, and a fraction of rows carries quality flags so
// the cleaning path gets exercised end to end.
//
// Usage:
//
//	go run ./cmd/gengauge -out data/demo -years 2 -start 1990
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

const header = `Port:              P000 Demo Harbour
Site:              Demo Harbour (synthetic)
Latitude:          0.00000
Longitude:         0.00000
Start Date:        %s
End Date:          %s
Contributor:       gengauge
Datum information: The data refer to Admiralty Chart Datum (ACD)
Parameter code:    ASLVTD02 = Surface elevation
  Cycle    Date      Time      ASLVTD02   ASLVBG02
 Number yyyy/mm/dd hh:mi:ss         f          f
`

// Angular speeds in radians per hour.
const (
	m2Speed = 28.9841042 * math.Pi / 180
	s2Speed = 30.0 * math.Pi / 180
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "", "directory to write the generated files into")
	startYear := flag.Int("start", 1990, "first calendar year to generate")
	years := flag.Int("years", 1, "number of one-year files to generate")
	mean := flag.Float64("mean", 3.0, "mean sea level in metres")
	risePerYear := flag.Float64("rise", 0.002, "linear rise in metres per year")
	flagRate := flag.Float64("flag-rate", 0.01, "fraction of rows flagged M/N/T")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	letters := []string{"M", "N", "T"}
	origin := time.Date(*startYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	for y := 0; y < *years; y++ {
		year := *startYear + y
		path := filepath.Join(*outDir, fmt.Sprintf("%dDEM.txt", year))

		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

		f, err := os.Create(path)
		if err != nil {
			return err
		}

		fmt.Fprintf(f, header, from.Format("2006/01/02"), to.Add(-time.Hour).Format("2006/01/02"))

		cycle := 1
		for t := from; t.Before(to); t = t.Add(time.Hour) {
			hours := t.Sub(origin).Hours()
			level := *mean +
				1.2*math.Cos(m2Speed*hours) +
				0.4*math.Cos(s2Speed*hours) +
				*risePerYear*hours/(24*365.25) +
				rng.NormFloat64()*0.02
			rise := rng.NormFloat64() * 1e-4

			levelText := fmt.Sprintf("%8.4f", level)
			riseText := fmt.Sprintf("%9.4f", rise)
			if rng.Float64() < *flagRate {
				levelText += letters[rng.Intn(len(letters))]
			}

			fmt.Fprintf(f, "%7d) %s %s %s %s\n",
				cycle, t.Format("2006/01/02"), t.Format("15:04:05"), levelText, riseText)
			cycle++
		}

		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("wrote %s: %d rows", path, cycle-1)
	}

	return nil
}
