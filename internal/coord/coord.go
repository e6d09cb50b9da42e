package coord

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dmsGlyphPattern = regexp.MustCompile(`(\d+)°\s*(\d+)[′']\s*([\d.]+)[″"]\s*([NSEW])`)
	dmsASCIIPattern = regexp.MustCompile(`(?i)(\d+)\s*deg\s*(\d+)\s*min\s*([\d.]+)\s*sec\s*([NSEW])`)
	decimalHemi     = regexp.MustCompile(`(-?\d+\.?\d*)\s*([NSEW])`)
	decimalAny      = regexp.MustCompile(`-?\d+\.?\d*`)
)

// Parse converts a textual coordinate into decimal degrees.
//
// Accepted forms, tried in order: 37°33′27″N, "37 deg 33 min 27 sec N",
// 37.5575N and a bare signed decimal anywhere in the text. S and W negate.
// The boolean is false when no numeric value can be extracted.
func Parse(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	for _, re := range []*regexp.Regexp{dmsGlyphPattern, dmsASCIIPattern} {
		if m := re.FindStringSubmatch(s); m != nil {
			deg, _ := leadingFloat(m[1])
			mins, _ := leadingFloat(m[2])
			secs, _ := leadingFloat(m[3])
			return applyHemisphere(deg+mins/60+secs/3600, m[4]), true
		}
	}

	if m := decimalHemi.FindStringSubmatch(s); m != nil {
		v, ok := leadingFloat(m[1])
		if !ok {
			return 0, false
		}
		return applyHemisphere(v, m[2]), true
	}

	m := decimalAny.FindString(s)
	if m == "" {
		return 0, false
	}
	return leadingFloat(m)
}

// ParsePair parses a "lat,lng" string as used by the port dataset.
func ParsePair(text string) (lat, lng float64, ok bool) {
	parts := strings.Split(text, ",")
	if len(parts) < 2 {
		return 0, 0, false
	}
	lat, okLat := leadingFloat(strings.TrimSpace(parts[0]))
	lng, okLng := leadingFloat(strings.TrimSpace(parts[1]))
	if !okLat || !okLng {
		return 0, 0, false
	}
	return lat, lng, true
}

func applyHemisphere(v float64, hemi string) float64 {
	switch strings.ToUpper(hemi) {
	case "S", "W":
		return -v
	}
	return v
}

// leadingFloat parses the longest numeric prefix of s, so "27.5.1" reads as 27.5.
func leadingFloat(s string) (float64, bool) {
	end := 0
	seenDot, seenDigit := false, false
scan:
	for i, r := range s {
		switch {
		case r == '-' && i == 0:
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' && !seenDot:
			seenDot = true
		default:
			break scan
		}
		end = i + 1
	}
	if !seenDigit {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
