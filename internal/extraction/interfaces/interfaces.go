package interfaces

import (
	"bitbucket.org/crgw/accessibility-hub/internal/schema"
)

// Extractors are best-effort over third-party payloads the caller does not
// control: they never fail, and any field they cannot determine stays unset.

type WithHotelExtraction interface {
	ExtractHotelAccessibility(listing map[string]any) schema.HotelAccessibility
}

type WithFlightExtraction interface {
	ExtractFlightAccessibility(offer map[string]any) schema.FlightAccessibility
}
