// Package serpapi extracts accessibility attributes from SerpAPI hotel
// property payloads. SerpAPI marks amenities with numeric identifiers;
// id 53 is the wheelchair-accessible amenity.
package serpapi

const ProviderName = "serpapi"

type Service struct{}

func New() *Service {
	return &Service{}
}
