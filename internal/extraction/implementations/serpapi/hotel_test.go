package serpapi_test

import (
	"testing"

	"bitbucket.org/crgw/accessibility-hub/internal/extraction/implementations/serpapi"
	"bitbucket.org/crgw/accessibility-hub/internal/tools/converting"
	"github.com/stretchr/testify/assert"
)

func TestExtractHotelAccessibility(t *testing.T) {
	service := serpapi.New()

	t.Run("should flag the property when the wheelchair amenity is present", func(t *testing.T) {
		listing := map[string]any{
			"amenities": []any{
				map[string]any{"id": float64(1), "name": "WiFi"},
				map[string]any{"id": float64(53), "name": "Wheelchair accessible"},
			},
		}

		hotel := service.ExtractHotelAccessibility(listing)

		assert.True(t, converting.Unwrap(hotel.WheelchairAccessible))
		assert.True(t, converting.Unwrap(hotel.AccessibleRoomAvailable))
		assert.Equal(t, 53, converting.Unwrap(hotel.WheelchairAmenityID))
	})

	t.Run("should leave the fields unset when the amenity is absent", func(t *testing.T) {
		listing := map[string]any{
			"amenities": []any{
				map[string]any{"id": float64(1), "name": "WiFi"},
			},
		}

		hotel := service.ExtractHotelAccessibility(listing)

		assert.Nil(t, hotel.WheelchairAccessible)
		assert.Nil(t, hotel.AccessibleRoomAvailable)
		assert.Nil(t, hotel.WheelchairAmenityID)
	})

	t.Run("should tolerate malformed listings", func(t *testing.T) {
		tests := []struct {
			name    string
			listing map[string]any
		}{
			{"no amenities key", map[string]any{}},
			{"nil listing", nil},
			{"amenities not a list", map[string]any{"amenities": "spa"}},
			{"entries not objects", map[string]any{"amenities": []any{"WiFi", 53, nil}}},
			{"id not numeric", map[string]any{"amenities": []any{map[string]any{"id": "53"}}}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				hotel := service.ExtractHotelAccessibility(test.listing)

				assert.Nil(t, hotel.WheelchairAccessible)
				assert.Nil(t, hotel.AccessibleRoomAvailable)
				assert.Nil(t, hotel.WheelchairAmenityID)
			})
		}
	})

	t.Run("should be idempotent", func(t *testing.T) {
		listing := map[string]any{
			"amenities": []any{
				map[string]any{"id": float64(53), "name": "Wheelchair accessible"},
			},
		}

		first := service.ExtractHotelAccessibility(listing)
		second := service.ExtractHotelAccessibility(listing)

		assert.Equal(t, first, second)
	})
}
