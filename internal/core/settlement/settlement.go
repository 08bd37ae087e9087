// Package settlement holds the pricing, gamification and week-numbering
// rules applied when a delivery is completed. Everything here is pure so the
// store can apply it inside one transaction.
package settlement

const (
	ClientRatePerKm  = 1.7
	CourierRatePerKm = 1.5

	// Flat fee charged once for deliveries with two or more stops.
	MultiStopSurcharge = 3.0

	PointsPerDelivery = 10
	XPPerDelivery     = 10
)

type Quote struct {
	ClientPrice    float64
	CourierPayout  float64
	PlatformMargin float64
}

func Surcharge(stops int) float64 {
	if stops >= 2 {
		return MultiStopSurcharge
	}
	return 0
}

// Price quotes a completed delivery. The margin is derived from the two
// prices, never computed independently, so the books always balance.
func Price(distanceKm float64, stops int) Quote {
	if distanceKm < 0 {
		distanceKm = 0
	}
	surcharge := Surcharge(stops)
	clientPrice := distanceKm*ClientRatePerKm + surcharge
	courierPayout := distanceKm*CourierRatePerKm + surcharge

	return Quote{
		ClientPrice:    clientPrice,
		CourierPayout:  courierPayout,
		PlatformMargin: clientPrice - courierPayout,
	}
}
