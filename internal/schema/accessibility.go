package schema

import (
	"bitbucket.org/crgw/accessibility-hub/internal/ssr"
	"bitbucket.org/crgw/accessibility-hub/internal/validation"
)

// All accessibility fields are optional. A nil pointer means the source gave
// no information, which is distinct from an explicit false.

// FlightAccessibility describes accessibility features of a flight offer.
type FlightAccessibility struct {
	WheelchairAvailable   *bool    `json:"wheelchair_available,omitempty"`
	WheelchairStowage     *bool    `json:"wheelchair_stowage,omitempty"`
	AccessibleLavatory    *bool    `json:"accessible_lavatory,omitempty"`
	ExtraLegroomAvailable *bool    `json:"extra_legroom_available,omitempty"`
	SpecialServiceCodes   []string `json:"special_service_codes,omitempty"`
	CompanionRequired     *bool    `json:"companion_required,omitempty"`
	SpecialMealsAvailable *bool    `json:"special_meals_available,omitempty"`
	Notes                 *string  `json:"notes,omitempty"`
}

// Validate checks every special service code against the SSR registry.
func (f FlightAccessibility) Validate() error {
	_, err := ssr.ValidateCodes(f.SpecialServiceCodes)
	return err
}

// HotelAccessibility describes accessibility features of a lodging property.
type HotelAccessibility struct {
	WheelchairAccessible    *bool         `json:"wheelchair_accessible,omitempty"`
	AccessibleRoomAvailable *bool         `json:"accessible_room_available,omitempty"`
	WheelchairAmenityID     *int          `json:"wheelchair_amenity_id,omitempty"`
	AccessibleBathroomTypes []string      `json:"accessible_bathroom_types,omitempty"`
	AccessibleParking       *bool         `json:"accessible_parking,omitempty"`
	AccessibleEntrance      *bool         `json:"accessible_entrance,omitempty"`
	AccessibleElevator      *bool         `json:"accessible_elevator,omitempty"`
	ServiceAnimalsAllowed   *bool         `json:"service_animals_allowed,omitempty"`
	LowestAccessiblePrice   *RoundedFloat `json:"lowest_accessible_price,omitempty"`
	FacilityList            []string      `json:"facility_list,omitempty"`
}

func (h HotelAccessibility) Validate() error {
	if h.LowestAccessiblePrice != nil && *h.LowestAccessiblePrice < 0 {
		return validation.Errors{
			validation.NewFieldError("lowest_accessible_price", "must not be negative, got %v", float64(*h.LowestAccessiblePrice)),
		}
	}

	return nil
}

// AccessibilityRequest describes a traveler's stated accessibility needs.
// The needs are not mutually exclusive; a request may express any
// combination of them.
type AccessibilityRequest struct {
	WheelchairUser      *bool   `json:"wheelchair_user,omitempty"`
	ReducedMobility     *bool   `json:"reduced_mobility,omitempty"`
	Deaf                *bool   `json:"deaf,omitempty"`
	Blind               *bool   `json:"blind,omitempty"`
	StretcherCase       *bool   `json:"stretcher_case,omitempty"`
	CompanionRequired   *bool   `json:"companion_required,omitempty"`
	SpecialRequirements *string `json:"special_requirements,omitempty"`
}

func (r AccessibilityRequest) Validate() error {
	return nil
}
