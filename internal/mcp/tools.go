package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bitbucket.org/crgw/accessibility-hub/internal/schema"
	"bitbucket.org/crgw/accessibility-hub/internal/ssr"
)

// HotelPropertyInput carries a SerpAPI hotel property payload.
type HotelPropertyInput struct {
	Property map[string]any `json:"property" jsonschema:"hotel property object from a SerpAPI response"`
}

// AmadeusHotelInput carries an Amadeus hotel offer payload.
type AmadeusHotelInput struct {
	Hotel map[string]any `json:"hotel" jsonschema:"hotel data object from an Amadeus API response"`
}

// FlightOfferInput carries an Amadeus flight offer payload.
type FlightOfferInput struct {
	Offer map[string]any `json:"offer" jsonschema:"flight offer object from an Amadeus API response"`
}

// CodesInput is a list of IATA SSR code tokens, uppercase.
type CodesInput struct {
	Codes []string `json:"codes" jsonschema:"IATA special service request codes to validate"`
}

// CodesOutput echoes validated codes back.
type CodesOutput struct {
	Codes []string `json:"codes"`
}

// RegistryOutput maps every registry code to its description.
type RegistryOutput struct {
	Codes map[string]string `json:"codes"`
}

// RequestFieldsInput carries traveler accessibility needs as a partial
// field map.
type RequestFieldsInput struct {
	Fields map[string]any `json:"fields" jsonschema:"accessibility request fields, e.g. wheelchair_user, deaf, special_requirements"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_hotel_accessibility",
		Description: "Extract accessibility attributes from a SerpAPI hotel property",
	}, s.handleExtractHotel)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_amadeus_hotel_accessibility",
		Description: "Extract accessibility attributes from an Amadeus hotel offer",
	}, s.handleExtractAmadeusHotel)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_flight_accessibility_from_amadeus",
		Description: "Extract accessibility attributes from an Amadeus flight offer",
	}, s.handleExtractFlight)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_ssr_codes",
		Description: "Validate IATA special service request codes against the registry",
	}, s.handleValidateCodes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_ssr_codes",
		Description: "List all IATA special service request codes with descriptions",
	}, s.handleGetCodes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_accessibility_request",
		Description: "Build a validated traveler accessibility request from partial fields",
	}, s.handleBuildRequest)
}

func (s *Server) handleExtractHotel(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input HotelPropertyInput,
) (*mcp.CallToolResult, schema.HotelAccessibility, error) {
	return nil, s.serpapi.ExtractHotelAccessibility(input.Property), nil
}

func (s *Server) handleExtractAmadeusHotel(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AmadeusHotelInput,
) (*mcp.CallToolResult, schema.HotelAccessibility, error) {
	return nil, s.amadeus.ExtractHotelAccessibility(input.Hotel), nil
}

func (s *Server) handleExtractFlight(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FlightOfferInput,
) (*mcp.CallToolResult, schema.FlightAccessibility, error) {
	return nil, s.amadeus.ExtractFlightAccessibility(input.Offer), nil
}

func (s *Server) handleValidateCodes(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CodesInput,
) (*mcp.CallToolResult, CodesOutput, error) {
	validated, err := ssr.ValidateCodes(input.Codes)
	if err != nil {
		return nil, CodesOutput{}, err
	}

	return nil, CodesOutput{Codes: validated}, nil
}

func (s *Server) handleGetCodes(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, RegistryOutput, error) {
	return nil, RegistryOutput{Codes: ssr.AllCodes()}, nil
}

func (s *Server) handleBuildRequest(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RequestFieldsInput,
) (*mcp.CallToolResult, schema.AccessibilityRequest, error) {
	request, err := schema.NewAccessibilityRequest(input.Fields)
	if err != nil {
		return nil, schema.AccessibilityRequest{}, err
	}

	return nil, request, nil
}
