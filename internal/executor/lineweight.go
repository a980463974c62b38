package executor

// validLineWeights is the fixed set of line-weight values the drafting side
// accepts (hundredths of a millimetre).
var validLineWeights = []int{
	0, 5, 9, 13, 15, 18, 20, 25, 30, 35, 40, 50, 53, 60, 70, 80,
	90, 100, 106, 120, 140, 158, 200, 211,
}

// validateLineWeight returns the value unchanged when it is an accepted
// line weight and 0 otherwise.
func validateLineWeight(lw int) int {
	for _, v := range validLineWeights {
		if lw == v {
			return lw
		}
	}
	return 0
}

// strokePixels maps a validated line weight onto the stroke thickness the
// raster canvas draws with. Weight 0 is the hairline.
func strokePixels(weight int) int32 {
	return int32(1 + weight/50)
}
