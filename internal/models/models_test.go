// internal/models/models_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceInfo_Normalize(t *testing.T) {
	tests := []struct {
		name             string
		price            PriceInfo
		expectedOriginal float64
		expectedDiscount float64
	}{
		{
			name:             "original defaults to amount",
			price:            PriceInfo{Amount: 120, Currency: "USD"},
			expectedOriginal: 120,
			expectedDiscount: 0,
		},
		{
			name:             "discount derived from price drop",
			price:            PriceInfo{Amount: 80, Currency: "USD", OriginalAmount: 100},
			expectedOriginal: 100,
			expectedDiscount: 20.0,
		},
		{
			name:             "equal amounts yield no discount",
			price:            PriceInfo{Amount: 100, Currency: "USD", OriginalAmount: 100},
			expectedOriginal: 100,
			expectedDiscount: 0,
		},
		{
			name:             "explicit discount preserved",
			price:            PriceInfo{Amount: 90, OriginalAmount: 100, DiscountPercentage: 15},
			expectedOriginal: 100,
			expectedDiscount: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.price.Normalize()
			assert.Equal(t, tt.expectedOriginal, tt.price.OriginalAmount)
			assert.InDelta(t, tt.expectedDiscount, tt.price.DiscountPercentage, 0.001)
		})
	}
}

func TestTripRequest_ToInputs(t *testing.T) {
	req := DefaultTripRequest()
	inputs := req.ToInputs()

	expectedKeys := []string{
		"origin", "destination", "start_date", "end_date", "budget",
		"travelers", "trip_type", "accomodation", "flights",
		"user_preferences", "recipient_email", "locale",
	}
	assert.Len(t, inputs, len(expectedKeys))
	for _, key := range expectedKeys {
		assert.Contains(t, inputs, key)
	}

	assert.Equal(t, "Bogota, Colombia", inputs["origin"])
	assert.Equal(t, "Panama City, Panama", inputs["destination"])
	assert.Equal(t, "5", inputs["travelers"])
}

func TestTripRequest_Validate(t *testing.T) {
	valid := DefaultTripRequest()
	assert.NoError(t, valid.Validate())

	invalid := TripRequest{Destination: "Lisbon"}
	err := invalid.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "origin")
	assert.Contains(t, err.Error(), "start_date")
	assert.NotContains(t, err.Error(), "destination")
}

func TestTripRequest_AccommodationWireSpelling(t *testing.T) {
	var req TripRequest
	body := `{"origin":"A","destination":"B","accomodation":"Hostel"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "Hostel", req.Accommodation)
}

func TestEnsureDefaults_ListsNeverNil(t *testing.T) {
	var dest DestinationInvestigation
	require.NoError(t, json.Unmarshal([]byte(`{"overview":"Panama City"}`), &dest))
	dest.EnsureDefaults()
	assert.NotNil(t, dest.Weather)
	assert.NotNil(t, dest.SafetyTips)
	assert.NotNil(t, dest.RecentDevelopments)
	assert.Empty(t, dest.Weather)

	var flights FlightSearchResults
	require.NoError(t, json.Unmarshal([]byte(`{"flight_options":[{"airline":"Copa"}]}`), &flights))
	flights.EnsureDefaults()
	require.Len(t, flights.FlightOptions, 1)
	assert.NotNil(t, flights.FlightOptions[0].FlightNumbers)
	assert.NotNil(t, flights.BookingTips)

	var dining DiningSearchResults
	require.NoError(t, json.Unmarshal([]byte(`{"summary":"x","total_options_found":0}`), &dining))
	dining.EnsureDefaults()
	assert.NotNil(t, dining.DiningOptions)
	assert.NotNil(t, dining.Recommendations)

	var itinerary StructuredItinerary
	require.NoError(t, json.Unmarshal([]byte(`{"days":[{"date":"2025-11-01"}]}`), &itinerary))
	itinerary.EnsureDefaults()
	require.Len(t, itinerary.Days, 1)
	assert.NotNil(t, itinerary.Days[0].Activities)

	var budget FinalBudgetSummary
	budget.EnsureDefaults()
	assert.NotNil(t, budget.FixedCosts)
	assert.NotNil(t, budget.BudgetChartData)

	var report ItineraryValidationReport
	report.EnsureDefaults()
	assert.NotNil(t, report.ValidationMetrics)
	assert.NotNil(t, report.IssuesFound)

	var transport TransportationSearchResults
	transport.EnsureDefaults()
	assert.NotNil(t, transport.CarRentalOptions)
	assert.NotNil(t, transport.PracticalTips)

	var attractions AttractionSearchResults
	attractions.EnsureDefaults()
	assert.NotNil(t, attractions.MustSeeAttractions)
	assert.NotNil(t, attractions.HiddenGems)
}

func TestEnsureDefaults_RoundTripEmptyLists(t *testing.T) {
	var doc ComprehensiveTravelDocument
	require.NoError(t, json.Unmarshal([]byte(`{"trip_title":"Panama","content":"..."}`), &doc))
	doc.EnsureDefaults()

	encoded, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"resources":[]`)
}

func TestNormalizeTaskOutput(t *testing.T) {
	out, err := NormalizeTaskOutput(SchemaComprehensiveTravelDocument, []byte(`{"trip_title":"Panama","content":"..."}`))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"resources":[]`)

	out, err = NormalizeTaskOutput(SchemaFlightSearchResults, []byte(`{"search_summary":{"route":"PTY"}}`))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"flight_options":[]`)

	// Unknown schema names pass through untouched.
	out, err = NormalizeTaskOutput("free_text", []byte(`{"anything":true}`))
	require.NoError(t, err)
	assert.Equal(t, `{"anything":true}`, string(out))

	_, err = NormalizeTaskOutput(SchemaComprehensiveTravelDocument, []byte(`not json`))
	assert.Error(t, err)
}

func TestTravelEmailResponse_Defaults(t *testing.T) {
	var resp TravelEmailResponse
	require.NoError(t, json.Unmarshal([]byte(`{"subject":"Your trip","body":"...","language":"en"}`), &resp))
	resp.EnsureDefaults()
	assert.Equal(t, EmailStatusPending, resp.Status)

	resp.Status = EmailStatusSent
	resp.EnsureDefaults()
	assert.Equal(t, EmailStatusSent, resp.Status)
}

type schemaRecorder struct {
	names map[string]string
}

func (r *schemaRecorder) Register(name, schemaJSON string) error {
	r.names[name] = schemaJSON
	return nil
}

func TestRegisterSchemas_CoversEveryStructuredOutput(t *testing.T) {
	rec := &schemaRecorder{names: map[string]string{}}
	require.NoError(t, RegisterSchemas(rec))

	for _, name := range []string{
		SchemaDestinationInvestigation,
		SchemaFlightSearchResults,
		SchemaAccommodationSearchResults,
		SchemaTransportationSearchResults,
		SchemaAttractionSearchResults,
		SchemaDiningSearchResults,
		SchemaStructuredItinerary,
		SchemaFinalBudgetSummary,
		SchemaItineraryValidationReport,
		SchemaComprehensiveTravelDocument,
		SchemaTravelEmailResponse,
	} {
		schema, ok := rec.names[name]
		assert.True(t, ok, "schema %s not registered", name)

		var parsed map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(schema), &parsed), "schema %s is not valid JSON", name)
	}
}
