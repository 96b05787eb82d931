package amadeus

import (
	"strings"

	"bitbucket.org/crgw/accessibility-hub/internal/schema"
	"bitbucket.org/crgw/accessibility-hub/internal/tools/converting"
)

var (
	parkingPhrases  = []string{"accessible parking", "handicap parking"}
	entrancePhrases = []string{"accessible entrance", "ramp"}
	elevatorPhrases = []string{"accessible elevator", "lift"}
	bathroomPhrases = []string{"roll-in shower", "grab bar"}
)

// ExtractHotelAccessibility matches facility descriptions against known
// accessibility phrases. Flags only ever move from unset to true, so the
// order facilities arrive in does not matter. Every description is also
// collected verbatim into the facility list.
//
// Matching is lower-cased substring containment, kept for compatibility
// with existing callers. A description like "not wheelchair accessible"
// still matches; callers that need negation handling must pre-filter.
func (s *Service) ExtractHotelAccessibility(listing map[string]any) schema.HotelAccessibility {
	hotel := schema.HotelAccessibility{}

	for _, entry := range converting.SliceValue(listing, "facilities") {
		facility, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		description, ok := converting.StringValue(facility, "description")
		if !ok {
			continue
		}

		hotel.FacilityList = append(hotel.FacilityList, description)

		lowered := strings.ToLower(description)

		if strings.Contains(lowered, "wheelchair accessible") {
			hotel.WheelchairAccessible = converting.PointerToValue(true)
		}

		if containsAny(lowered, parkingPhrases) {
			hotel.AccessibleParking = converting.PointerToValue(true)
		}

		if containsAny(lowered, entrancePhrases) {
			hotel.AccessibleEntrance = converting.PointerToValue(true)
		}

		if containsAny(lowered, elevatorPhrases) {
			hotel.AccessibleElevator = converting.PointerToValue(true)
		}

		for _, phrase := range bathroomPhrases {
			if strings.Contains(lowered, phrase) {
				hotel.AccessibleBathroomTypes = appendUnique(hotel.AccessibleBathroomTypes, phrase)
			}
		}

		if strings.Contains(lowered, "service animal") {
			hotel.ServiceAnimalsAllowed = converting.PointerToValue(true)
		}
	}

	return hotel
}

func containsAny(description string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(description, phrase) {
			return true
		}
	}

	return false
}

func appendUnique(types []string, value string) []string {
	for _, existing := range types {
		if existing == value {
			return types
		}
	}

	return append(types, value)
}
