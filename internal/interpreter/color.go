package interpreter

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultColorIndex is white in the AutoCAD color index scheme, used whenever
// no color can be resolved from a command.
const DefaultColorIndex = 7

type colorEntry struct {
	name  string
	index int
}

// colorTable maps surface color names to AutoCAD color indices. Iteration is
// in definition order and the first containment match wins, so names that
// contain shorter names ("浅灰色" vs "灰色", "light gray" vs "gray", "洋红色"
// vs "红色") are listed before the names they contain.
var colorTable = []colorEntry{
	{"浅灰色", 9},
	{"洋红色", 6},
	{"红色", 1},
	{"黄色", 2},
	{"绿色", 3},
	{"青色", 4},
	{"蓝色", 5},
	{"白色", 7},
	{"灰色", 8},
	{"黑色", 250},
	{"棕色", 251},
	{"橙色", 30},
	{"紫色", 200},
	{"light gray", 9},
	{"magenta", 6},
	{"yellow", 2},
	{"orange", 30},
	{"purple", 200},
	{"green", 3},
	{"black", 250},
	{"brown", 251},
	{"white", 7},
	{"cyan", 4},
	{"blue", 5},
	{"gray", 8},
	{"red", 1},
}

// colorWordRE captures generic color words such as "淡蓝色" so an unknown
// intensity-prefixed form can be re-checked against the table.
var colorWordRE = regexp.MustCompile(`[深浅淡]?[a-zA-Z\p{Han}]+色`)

// ResolveColor maps a color name or numeric code inside the input to an
// AutoCAD color index. It always succeeds; unresolvable input yields
// DefaultColorIndex (7, white).
func ResolveColor(input string) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultColorIndex
	}

	// A bare numeric color index takes precedence over name matching.
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= 255 {
		return n
	}

	lowered := strings.ToLower(input)
	for _, entry := range colorTable {
		if strings.Contains(lowered, entry.name) {
			return entry.index
		}
	}

	// Generic color-word forms: strip nothing, just re-check each captured
	// candidate against the table by exact name.
	for _, candidate := range colorWordRE.FindAllString(lowered, -1) {
		for _, entry := range colorTable {
			if candidate == entry.name {
				return entry.index
			}
		}
	}

	return DefaultColorIndex
}
