package factory

import (
	"bitbucket.org/crgw/accessibility-hub/internal/extraction/errors"
	"bitbucket.org/crgw/accessibility-hub/internal/extraction/implementations/amadeus"
	"bitbucket.org/crgw/accessibility-hub/internal/extraction/implementations/serpapi"
)

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) GetProvider(name string) (any, error) {
	switch name {
	case serpapi.ProviderName:
		return serpapi.New(), nil
	case amadeus.ProviderName:
		return amadeus.New(), nil
	}

	return nil, errors.ErrorUnknownProvider
}
