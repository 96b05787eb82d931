package mcp

import (
	"context"
	"testing"

	"bitbucket.org/crgw/accessibility-hub/internal/tools/converting"
	"github.com/stretchr/testify/assert"
)

func TestTools(t *testing.T) {
	server := NewServer()
	ctx := context.Background()

	t.Run("should extract hotel accessibility from a serpapi property", func(t *testing.T) {
		input := HotelPropertyInput{
			Property: map[string]any{
				"amenities": []any{
					map[string]any{"id": float64(53), "name": "Wheelchair accessible"},
				},
			},
		}

		_, hotel, err := server.handleExtractHotel(ctx, nil, input)

		assert.Nil(t, err)
		assert.True(t, converting.Unwrap(hotel.WheelchairAccessible))
		assert.Equal(t, 53, converting.Unwrap(hotel.WheelchairAmenityID))
	})

	t.Run("should extract hotel accessibility from amadeus facilities", func(t *testing.T) {
		input := AmadeusHotelInput{
			Hotel: map[string]any{
				"facilities": []any{
					map[string]any{"description": "Accessible parking"},
				},
			},
		}

		_, hotel, err := server.handleExtractAmadeusHotel(ctx, nil, input)

		assert.Nil(t, err)
		assert.True(t, converting.Unwrap(hotel.AccessibleParking))
		assert.Equal(t, []string{"Accessible parking"}, hotel.FacilityList)
	})

	t.Run("should extract flight accessibility from an amadeus offer", func(t *testing.T) {
		input := FlightOfferInput{
			Offer: map[string]any{
				"travelerPricings": []any{
					map[string]any{
						"fareDetailsBySegment": []any{
							map[string]any{
								"amenities": []any{
									map[string]any{"description": "Wheelchair assistance", "amenityType": "TRAVEL_SERVICES"},
								},
							},
						},
					},
				},
			},
		}

		_, flight, err := server.handleExtractFlight(ctx, nil, input)

		assert.Nil(t, err)
		assert.True(t, converting.Unwrap(flight.WheelchairAvailable))
		assert.Nil(t, flight.SpecialServiceCodes)
	})

	t.Run("should validate SSR codes", func(t *testing.T) {
		_, output, err := server.handleValidateCodes(ctx, nil, CodesInput{Codes: []string{"WCHR", "BLND"}})

		assert.Nil(t, err)
		assert.Equal(t, []string{"WCHR", "BLND"}, output.Codes)
	})

	t.Run("should fail validation for unknown SSR codes", func(t *testing.T) {
		_, _, err := server.handleValidateCodes(ctx, nil, CodesInput{Codes: []string{"INVALID"}})

		assert.NotNil(t, err)
	})

	t.Run("should list the registry", func(t *testing.T) {
		_, output, err := server.handleGetCodes(ctx, nil, struct{}{})

		assert.Nil(t, err)
		assert.Equal(t, 6, len(output.Codes))
	})

	t.Run("should build an accessibility request from fields", func(t *testing.T) {
		input := RequestFieldsInput{
			Fields: map[string]any{
				"wheelchair_user": true,
				"blind":           true,
			},
		}

		_, request, err := server.handleBuildRequest(ctx, nil, input)

		assert.Nil(t, err)
		assert.True(t, converting.Unwrap(request.WheelchairUser))
		assert.True(t, converting.Unwrap(request.Blind))
		assert.Nil(t, request.Deaf)
	})

	t.Run("should reject uncoercible request fields", func(t *testing.T) {
		input := RequestFieldsInput{
			Fields: map[string]any{
				"wheelchair_user": "yes",
			},
		}

		_, _, err := server.handleBuildRequest(ctx, nil, input)

		assert.NotNil(t, err)
	})
}
