package schema

import (
	"encoding/json"

	"bitbucket.org/crgw/accessibility-hub/internal/ssr"
	"bitbucket.org/crgw/accessibility-hub/internal/validation"
)

// Record constructors accept partial field maps, the shape integration
// callers hold after decoding provider or user payloads. Absent fields stay
// nil; present fields must coerce to their declared type. Unknown keys are
// ignored.

func NewFlightAccessibility(fields map[string]any) (FlightAccessibility, error) {
	reader := newFieldReader(fields)

	flight := FlightAccessibility{
		WheelchairAvailable:   reader.boolField("wheelchair_available"),
		WheelchairStowage:     reader.boolField("wheelchair_stowage"),
		AccessibleLavatory:    reader.boolField("accessible_lavatory"),
		ExtraLegroomAvailable: reader.boolField("extra_legroom_available"),
		SpecialServiceCodes:   reader.stringsField("special_service_codes"),
		CompanionRequired:     reader.boolField("companion_required"),
		SpecialMealsAvailable: reader.boolField("special_meals_available"),
		Notes:                 reader.stringField("notes"),
	}

	for _, code := range flight.SpecialServiceCodes {
		if !ssr.IsValid(code) {
			reader.errors.AddError(ssr.NewInvalidCodeError(code))
		}
	}

	if err := reader.errors.Err(); err != nil {
		return FlightAccessibility{}, err
	}

	return flight, nil
}

func NewHotelAccessibility(fields map[string]any) (HotelAccessibility, error) {
	reader := newFieldReader(fields)

	hotel := HotelAccessibility{
		WheelchairAccessible:    reader.boolField("wheelchair_accessible"),
		AccessibleRoomAvailable: reader.boolField("accessible_room_available"),
		WheelchairAmenityID:     reader.intField("wheelchair_amenity_id"),
		AccessibleBathroomTypes: reader.stringsField("accessible_bathroom_types"),
		AccessibleParking:       reader.boolField("accessible_parking"),
		AccessibleEntrance:      reader.boolField("accessible_entrance"),
		AccessibleElevator:      reader.boolField("accessible_elevator"),
		ServiceAnimalsAllowed:   reader.boolField("service_animals_allowed"),
		LowestAccessiblePrice:   reader.priceField("lowest_accessible_price"),
		FacilityList:            reader.stringsField("facility_list"),
	}

	if err := reader.errors.Err(); err != nil {
		return HotelAccessibility{}, err
	}

	return hotel, nil
}

func NewAccessibilityRequest(fields map[string]any) (AccessibilityRequest, error) {
	reader := newFieldReader(fields)

	request := AccessibilityRequest{
		WheelchairUser:      reader.boolField("wheelchair_user"),
		ReducedMobility:     reader.boolField("reduced_mobility"),
		Deaf:                reader.boolField("deaf"),
		Blind:               reader.boolField("blind"),
		StretcherCase:       reader.boolField("stretcher_case"),
		CompanionRequired:   reader.boolField("companion_required"),
		SpecialRequirements: reader.stringField("special_requirements"),
	}

	if err := reader.errors.Err(); err != nil {
		return AccessibilityRequest{}, err
	}

	return request, nil
}

type fieldReader struct {
	fields map[string]any
	errors errorsCollector
}

type errorsCollector interface {
	AddError(err validation.Error)
	Err() error
}

func newFieldReader(fields map[string]any) *fieldReader {
	bucket := validation.NewErrorsBucket()

	return &fieldReader{
		fields: fields,
		errors: &bucket,
	}
}

func (r *fieldReader) boolField(name string) *bool {
	raw, present := r.fields[name]
	if !present || raw == nil {
		return nil
	}

	value, ok := raw.(bool)
	if !ok {
		r.errors.AddError(validation.NewFieldError(name, "expected a boolean, got %T", raw))
		return nil
	}

	return &value
}

func (r *fieldReader) stringField(name string) *string {
	raw, present := r.fields[name]
	if !present || raw == nil {
		return nil
	}

	value, ok := raw.(string)
	if !ok {
		r.errors.AddError(validation.NewFieldError(name, "expected a string, got %T", raw))
		return nil
	}

	return &value
}

func (r *fieldReader) stringsField(name string) []string {
	raw, present := r.fields[name]
	if !present || raw == nil {
		return nil
	}

	switch value := raw.(type) {
	case []string:
		return value
	case []any:
		strings := make([]string, 0, len(value))
		for _, entry := range value {
			str, ok := entry.(string)
			if !ok {
				r.errors.AddError(validation.NewFieldError(name, "expected a list of strings, found %T entry", entry))
				return nil
			}
			strings = append(strings, str)
		}
		return strings
	}

	r.errors.AddError(validation.NewFieldError(name, "expected a list of strings, got %T", raw))
	return nil
}

func (r *fieldReader) numberField(name string) *float64 {
	raw, present := r.fields[name]
	if !present || raw == nil {
		return nil
	}

	var value float64
	switch number := raw.(type) {
	case float64:
		value = number
	case float32:
		value = float64(number)
	case int:
		value = float64(number)
	case int64:
		value = float64(number)
	case json.Number:
		parsed, err := number.Float64()
		if err != nil {
			r.errors.AddError(validation.NewFieldError(name, "expected a number, got %q", number.String()))
			return nil
		}
		value = parsed
	default:
		r.errors.AddError(validation.NewFieldError(name, "expected a number, got %T", raw))
		return nil
	}

	return &value
}

func (r *fieldReader) intField(name string) *int {
	value := r.numberField(name)
	if value == nil {
		return nil
	}

	if *value != float64(int(*value)) {
		r.errors.AddError(validation.NewFieldError(name, "expected an integer, got %v", *value))
		return nil
	}

	whole := int(*value)
	return &whole
}

func (r *fieldReader) priceField(name string) *RoundedFloat {
	value := r.numberField(name)
	if value == nil {
		return nil
	}

	if *value < 0 {
		r.errors.AddError(validation.NewFieldError(name, "must not be negative, got %v", *value))
		return nil
	}

	price := RoundedFloat(*value)
	return &price
}
