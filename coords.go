package wikiextract

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoCoord is returned when a page carries no geographic data.
var ErrNoCoord = errors.New("no coord data found")

var errNotSexagesimal = errors.New("not a sexagesimal value")

var coordRE = regexp.MustCompile(`(?mi)\{\{coord\|(.[^}]*)\}\}`)

// A Coord is a geographical position parsed from a coord template.
type Coord struct {
	Lon float64
	Lat float64
}

// dms converts a degrees/minutes/seconds/hemisphere quadruple to a signed
// decimal degree value.
func dms(parts []string) (float64, error) {
	var total float64
	for i, div := range []float64{1, 60, 3600} {
		f, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return 0, err
		}
		total += f / div
	}
	if parts[3] == "S" || parts[3] == "W" {
		total = -total
	}
	return total, nil
}

func parseSexagesimal(parts []string) (Coord, error) {
	if len(parts) < 8 {
		return Coord{}, errNotSexagesimal
	}
	if parts[3] != "N" && parts[3] != "S" {
		return Coord{}, errNotSexagesimal
	}
	if parts[7] != "E" && parts[7] != "W" {
		return Coord{}, errNotSexagesimal
	}

	lat, err := dms(parts[0:4])
	if err != nil {
		return Coord{}, err
	}
	lon, err := dms(parts[4:8])
	return Coord{Lat: lat, Lon: lon}, err
}

func parseFloat(parts []string) (Coord, error) {
	if len(parts) < 2 {
		return Coord{}, ErrNoCoord
	}

	rv := Coord{}
	offset := 0
	var err error
	rv.Lat, err = strconv.ParseFloat(parts[offset], 64)
	if err != nil {
		return rv, err
	}
	offset++

	if parts[offset] == "S" {
		rv.Lat = -rv.Lat
		offset++
	} else if parts[offset] == "N" {
		offset++
	}

	rv.Lon, err = strconv.ParseFloat(parts[offset], 64)
	offset++
	if len(parts) > offset && parts[offset] == "W" {
		rv.Lon = -rv.Lon
	}
	return rv, err
}

// ParseCoords extracts the first geographical coordinate template from raw
// page markup, handling both sexagesimal and decimal forms.
func ParseCoords(markup string) (Coord, error) {
	cleaned := nowikiRE.ReplaceAllString(commentRE.ReplaceAllString(markup, ""), "")
	m := coordRE.FindStringSubmatch(cleaned)
	if m == nil {
		return Coord{}, ErrNoCoord
	}

	parts := strings.Split(m[1], "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	// Skip leading named or textual parameters.
	first := 0
	for i, p := range parts {
		if _, err := strconv.ParseFloat(p, 64); err == nil {
			first = i
			break
		}
	}

	rv, err := parseSexagesimal(parts[first:])
	if err != nil {
		rv, err = parseFloat(parts[first:])
	}
	if err != nil {
		return Coord{}, err
	}

	if math.Abs(rv.Lat) > 90 {
		return rv, fmt.Errorf("invalid latitude: %v", rv.Lat)
	}
	if math.Abs(rv.Lon) > 180 {
		return rv, fmt.Errorf("invalid longitude: %v", rv.Lon)
	}
	return rv, nil
}
