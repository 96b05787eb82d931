// Package amadeus extracts accessibility attributes from Amadeus hotel and
// flight offer payloads. Amadeus exposes free-text facility descriptions and
// nested traveler-pricing amenity data, both treated as loosely typed input.
package amadeus

const ProviderName = "amadeus"

type Service struct{}

func New() *Service {
	return &Service{}
}
