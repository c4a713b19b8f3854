package systems

// Score converts a gear rotation into points: full turns divided by depth,
// the number of turns one point costs. Depth <= 0 counts every turn.
func Score(rotation, depth float32) float32 {
	if depth <= 0 {
		depth = 1
	}
	return (rotation / (2 * pi32)) / depth
}
