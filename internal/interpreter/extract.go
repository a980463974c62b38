package interpreter

import (
	"regexp"
	"strconv"
	"strings"
)

// Coordinate substrings look like (x,y,z), (x,y), x,y,z or x,y with signed
// decimal components. The parentheses are optional on both sides, as in the
// commands people actually type ("画直线 0,0 到 10,10").
var coordinateRE = regexp.MustCompile(`\(?\s*(-?\d+\.?\d*)\s*,\s*(-?\d+\.?\d*)(?:\s*,\s*(-?\d+\.?\d*))?\s*\)?`)

var numberRE = regexp.MustCompile(`-?\d+\.?\d*`)

var quotedRE = regexp.MustCompile(`["'](.*?)["']`)

// Named-parameter patterns: a label synonym, any run of non-digit characters,
// then the value. First match wins when several synonyms occur.
var (
	radiusRE     = regexp.MustCompile(`(?i)(?:半径|r|radius)[^\d]*?(-?\d+\.?\d*)`)
	startAngleRE = regexp.MustCompile(`(?i)(?:起始角度|start angle)[^\d]*?(-?\d+\.?\d*)`)
	endAngleRE   = regexp.MustCompile(`(?i)(?:结束角度|end angle)[^\d]*?(-?\d+\.?\d*)`)
	widthRE      = regexp.MustCompile(`(?i)(?:宽度|width)[^\d]*?(-?\d+\.?\d*)`)
	heightRE     = regexp.MustCompile(`(?i)(?:高度|height)[^\d]*?(-?\d+\.?\d*)`)
	rotationRE   = regexp.MustCompile(`(?i)(?:旋转|角度|rotation)[^\d]*?(-?\d+\.?\d*)`)
	hatchScaleRE = regexp.MustCompile(`(?i)(?:比例|缩放|scale)[^\d]*?(\d+\.?\d*)`)
	wallWidthRE  = regexp.MustCompile(`(?:宽度|宽|厚度|厚)[^\d]*?(\d+\.?\d*)`)
	colorCodeRE  = regexp.MustCompile(`(?i)(?:颜色|color)[^\d]*?(\d+)`)
)

var (
	patternQuotedRE = regexp.MustCompile(`(?i)(?:图案|pattern)[^\w]*?["'](.*?)["']`)
	patternBareRE   = regexp.MustCompile(`(?i)(?:图案|pattern)[^\w]*?(\w+)`)
	savePathRE      = regexp.MustCompile(`(?i)(?:路径|保存到|path)[^\w]*?["'](.*?)["']`)
	layerNameRE     = regexp.MustCompile(`(?:名称|名字|叫)[^\w]*?["'](.*?)["']`)
	layerNameAltRE  = regexp.MustCompile(`图层[^\w]*?["'](.*?)["']`)
)

// extractCoordinates returns every coordinate in the text in left-to-right
// order of occurrence. Ordering is semantically significant: builders treat
// the first match as point 1, the second as point 2, and so on. Two-element
// matches are lifted with Z = 0.
func extractCoordinates(text string) []Coordinate {
	matches := coordinateRE.FindAllStringSubmatch(text, -1)
	coords := make([]Coordinate, 0, len(matches))
	for _, m := range matches {
		x, errX := strconv.ParseFloat(m[1], 64)
		y, errY := strconv.ParseFloat(m[2], 64)
		if errX != nil || errY != nil {
			continue
		}
		c := Coordinate{X: x, Y: y}
		if m[3] != "" {
			if z, err := strconv.ParseFloat(m[3], 64); err == nil {
				c.Z = z
			}
		}
		coords = append(coords, c)
	}
	return coords
}

// extractNumbers returns every signed decimal literal in the text, in order
// of occurrence. Components already consumed by a coordinate match are
// excluded, so that in "画圆 (0,0) 50" the first bare number is the radius
// and not the coordinate's x component.
func extractNumbers(text string) []float64 {
	stripped := coordinateRE.ReplaceAllString(text, " ")
	matches := numberRE.FindAllString(stripped, -1)
	numbers := make([]float64, 0, len(matches))
	for _, m := range matches {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			numbers = append(numbers, v)
		}
	}
	return numbers
}

// extractNamedParameter applies one of the label-then-value patterns above.
// A malformed value counts as absent, never as an error.
func extractNamedParameter(text string, re *regexp.Regexp) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// extractQuoted returns the first single- or double-quoted substring.
func extractQuoted(text string) (string, bool) {
	m := quotedRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func normaliseCommand(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
