// internal/models/normalize.go
package models

import "encoding/json"

// defaulter is implemented by every task output record. EnsureDefaults
// backfills nil collections so downstream tasks and clients always see
// empty lists rather than JSON null or absent keys.
type defaulter interface {
	EnsureDefaults()
}

func newTaskOutputRecord(schemaName string) defaulter {
	switch schemaName {
	case SchemaDestinationInvestigation:
		return &DestinationInvestigation{}
	case SchemaFlightSearchResults:
		return &FlightSearchResults{}
	case SchemaAccommodationSearchResults:
		return &AccommodationSearchResults{}
	case SchemaTransportationSearchResults:
		return &TransportationSearchResults{}
	case SchemaAttractionSearchResults:
		return &AttractionSearchResults{}
	case SchemaDiningSearchResults:
		return &DiningSearchResults{}
	case SchemaStructuredItinerary:
		return &StructuredItinerary{}
	case SchemaFinalBudgetSummary:
		return &FinalBudgetSummary{}
	case SchemaItineraryValidationReport:
		return &ItineraryValidationReport{}
	case SchemaComprehensiveTravelDocument:
		return &ComprehensiveTravelDocument{}
	case SchemaTravelEmailResponse:
		return &TravelEmailResponse{}
	default:
		return nil
	}
}

// NormalizeTaskOutput decodes a schema-valid document into its typed record,
// applies the record's defaults and re-encodes it. Documents for unknown
// schema names are returned unchanged.
func NormalizeTaskOutput(schemaName string, doc []byte) ([]byte, error) {
	record := newTaskOutputRecord(schemaName)
	if record == nil {
		return doc, nil
	}
	if err := json.Unmarshal(doc, record); err != nil {
		return nil, err
	}
	record.EnsureDefaults()
	return json.Marshal(record)
}
