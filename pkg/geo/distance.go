package geo

import "math"

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

// Distance возвращает расстояние по дуге большого круга между двумя точками в километрах (формула гаверсинусов).
// Координаты передаются в градусах. NaN на входе дает NaN на выходе.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	// У антиподов ошибка округления выводит a за 1, и Sqrt(1-a) дает NaN
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
