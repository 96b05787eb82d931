package amadeus

import (
	"strings"

	"bitbucket.org/crgw/accessibility-hub/internal/schema"
	"bitbucket.org/crgw/accessibility-hub/internal/tools/converting"
)

// ExtractFlightAccessibility probes the traveler-pricing fare details of an
// Amadeus flight offer for wheelchair, extra-legroom and special-meal
// indicators. Missing or unexpected nesting leaves the fields unset rather
// than failing.
//
// Special service codes are never derived here; they arrive through the
// booking request channel, not the offer payload.
func (s *Service) ExtractFlightAccessibility(offer map[string]any) schema.FlightAccessibility {
	flight := schema.FlightAccessibility{}

	for _, pricingEntry := range converting.SliceValue(offer, "travelerPricings") {
		pricing, ok := pricingEntry.(map[string]any)
		if !ok {
			continue
		}

		for _, detailEntry := range converting.SliceValue(pricing, "fareDetailsBySegment") {
			detail, ok := detailEntry.(map[string]any)
			if !ok {
				continue
			}

			for _, amenityEntry := range converting.SliceValue(detail, "amenities") {
				amenity, ok := amenityEntry.(map[string]any)
				if !ok {
					continue
				}

				applyAmenity(&flight, amenity)
			}
		}
	}

	return flight
}

func applyAmenity(flight *schema.FlightAccessibility, amenity map[string]any) {
	amenityType, _ := converting.StringValue(amenity, "amenityType")
	description, _ := converting.StringValue(amenity, "description")
	lowered := strings.ToLower(description)

	if strings.Contains(lowered, "wheelchair") {
		flight.WheelchairAvailable = converting.PointerToValue(true)
	}

	if strings.Contains(lowered, "legroom") {
		flight.ExtraLegroomAvailable = converting.PointerToValue(true)
	}

	if amenityType == "MEAL" || strings.Contains(lowered, "special meal") {
		flight.SpecialMealsAvailable = converting.PointerToValue(true)
	}
}
