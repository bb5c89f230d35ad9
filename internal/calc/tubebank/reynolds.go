package tubebank

import "math"

// MaxVelocity returns the velocity through the minimum flow area, m/s.
// Lengths are in mm. The diagonal candidate only wins for staggered banks
// whose diametrical pitch is tight enough; with a zero diametrical pitch it
// is negative and ignored.
func MaxVelocity(velocity, diameter, transversePitch, diametricalPitch float64) float64 {
	transverse := transversePitch / (transversePitch - diameter) * velocity
	diagonal := transversePitch / (2 * (diametricalPitch - diameter)) * velocity
	return math.Max(transverse, diagonal)
}

// MaxReynolds returns the Reynolds number at the maximum velocity. The
// diameter is given in mm.
func MaxReynolds(density, diameter, viscosity, transversePitch, velocity, diametricalPitch float64) float64 {
	vMax := MaxVelocity(velocity, diameter, transversePitch, diametricalPitch)
	return density * vMax * (diameter / 1000) / viscosity
}
