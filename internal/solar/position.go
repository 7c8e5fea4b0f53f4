package solar

import "math"

// Position is the bundle of solar quantities the event solver needs, valid
// for a single instant. Over one day they change slowly enough that a single
// evaluation at local solar noon serves the whole date at this algorithm's
// precision.
type Position struct {
	DeclinationDeg float64 // solar declination, degrees north of celestial equator
	EqTimeMin      float64 // equation of time, minutes (apparent minus mean solar time)
	ApparentLonDeg float64 // apparent ecliptic longitude, degrees [0, 360)
}

// PositionAt computes the Sun's position for the given Julian century.
// NOAA low-precision model, ~0.01 degree accuracy for years 1800-2200.
func PositionAt(t float64) Position {
	l0 := geomMeanLonSun(t)
	m := geomMeanAnomalySun(t)
	e := orbitEccentricity(t)
	eps := obliquityCorrection(t)

	lambda := apparentLonSun(t, l0, m)

	decl := asinDeg(sinDeg(eps) * sinDeg(lambda))

	// Equation of time per the NOAA form: the bracket comes out in radians
	// and converts to minutes at 4 min per degree.
	y := math.Pow(math.Tan(degToRad(eps)/2), 2)
	et := y*sinDeg(2*l0) -
		2*e*sinDeg(m) +
		4*e*y*sinDeg(m)*cosDeg(2*l0) -
		0.5*y*y*sinDeg(4*l0) -
		1.25*e*e*sinDeg(2*m)

	return Position{
		DeclinationDeg: decl,
		EqTimeMin:      radToDeg(et) * 4,
		ApparentLonDeg: normalizeAngle360(lambda),
	}
}

// geomMeanLonSun returns the Sun's geometric mean longitude in degrees,
// normalized to [0, 360).
func geomMeanLonSun(t float64) float64 {
	return normalizeAngle360(280.46646 + t*(36000.76983+0.0003032*t))
}

// geomMeanAnomalySun returns the Sun's geometric mean anomaly in degrees.
func geomMeanAnomalySun(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

// orbitEccentricity returns the eccentricity of Earth's orbit (unitless).
func orbitEccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// eqOfCenter returns the Sun's equation of center in degrees for mean
// anomaly m (degrees).
func eqOfCenter(t, m float64) float64 {
	return sinDeg(m)*(1.914602-t*(0.004817+0.000014*t)) +
		sinDeg(2*m)*(0.019993-0.000101*t) +
		sinDeg(3*m)*0.000289
}

// apparentLonSun returns the Sun's apparent ecliptic longitude in degrees,
// correcting the true longitude for aberration and nutation.
func apparentLonSun(t, l0, m float64) float64 {
	trueLon := l0 + eqOfCenter(t, m)
	omega := 125.04 - 1934.136*t
	return trueLon - 0.00569 - 0.00478*sinDeg(omega)
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees.
func meanObliquity(t float64) float64 {
	seconds := 21.448 - t*(46.815+t*(0.00059-t*0.001813))
	return 23 + (26+seconds/60)/60
}

// obliquityCorrection returns the obliquity corrected for nutation, degrees.
func obliquityCorrection(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return meanObliquity(t) + 0.00256*cosDeg(omega)
}
