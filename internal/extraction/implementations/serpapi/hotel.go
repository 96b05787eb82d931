package serpapi

import (
	"bitbucket.org/crgw/accessibility-hub/internal/schema"
	"bitbucket.org/crgw/accessibility-hub/internal/tools/converting"
)

// ExtractHotelAccessibility scans the property's amenity list for the
// wheelchair-accessible amenity id. When the amenity is absent the
// wheelchair fields stay unset: missing amenity data means unknown, not
// confirmed absent. Malformed entries are skipped.
func (s *Service) ExtractHotelAccessibility(listing map[string]any) schema.HotelAccessibility {
	hotel := schema.HotelAccessibility{}

	for _, entry := range converting.SliceValue(listing, "amenities") {
		amenity, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		id, ok := converting.IntValue(amenity, "id")
		if !ok || id != schema.WheelchairAmenityID {
			continue
		}

		hotel.WheelchairAccessible = converting.PointerToValue(true)
		hotel.AccessibleRoomAvailable = converting.PointerToValue(true)
		hotel.WheelchairAmenityID = converting.PointerToValue(schema.WheelchairAmenityID)
		break
	}

	return hotel
}
