package dyespheres

// clampByte truncates v toward zero and clamps it to [0,255].
func clampByte(v float64) uint8 {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return uint8(i)
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
