// internal/models/schemas.go
package models

// Schema names used to register and look up task output schemas.
const (
	SchemaDestinationInvestigation    = "destination_investigation"
	SchemaFlightSearchResults         = "flight_search_results"
	SchemaAccommodationSearchResults  = "accommodation_search_results"
	SchemaTransportationSearchResults = "transportation_search_results"
	SchemaAttractionSearchResults     = "attraction_search_results"
	SchemaDiningSearchResults         = "dining_search_results"
	SchemaStructuredItinerary         = "structured_itinerary"
	SchemaFinalBudgetSummary          = "final_budget_summary"
	SchemaItineraryValidationReport   = "itinerary_validation_report"
	SchemaComprehensiveTravelDocument = "comprehensive_travel_document"
	SchemaTravelEmailResponse         = "travel_email_response"
)

// Task output schemas. These check the envelope the pipeline depends on: the
// document must be an object and the fields the downstream tasks read must be
// present with the right JSON types. List fields are left optional since
// EnsureDefaults backfills them after decode.
var taskOutputSchemas = map[string]string{
	SchemaDestinationInvestigation: `{
		"type": "object",
		"properties": {
			"overview": {"type": "string"},
			"weather": {"type": "array", "items": {"type": "string"}},
			"events": {"type": "array", "items": {"type": "string"}},
			"entry_requirements": {"type": "array", "items": {"type": "string"}},
			"safety_tips": {"type": "array", "items": {"type": "string"}},
			"cultural_norms": {"type": "array", "items": {"type": "string"}},
			"insider_tips": {"type": "array", "items": {"type": "string"}},
			"recent_developments": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["overview"]
	}`,

	SchemaFlightSearchResults: `{
		"type": "object",
		"properties": {
			"search_summary": {"type": "object"},
			"flight_options": {"type": "array", "items": {"type": "object"}},
			"recommendations": {"type": "object"},
			"booking_tips": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["flight_options"]
	}`,

	SchemaAccommodationSearchResults: `{
		"type": "object",
		"properties": {
			"search_summary": {"type": "object"},
			"accommodation_options": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"name": {"type": "string"},
						"price_per_night": {"type": "number"},
						"rating": {"type": "number"}
					},
					"required": ["name"]
				}
			},
			"booking_tips": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["accommodation_options"]
	}`,

	SchemaTransportationSearchResults: `{
		"type": "object",
		"properties": {
			"search_summary": {"type": "object"},
			"public_transportation": {"type": "object"},
			"car_rental_options": {"type": "array", "items": {"type": "object"}},
			"ride_sharing_services": {"type": "array", "items": {"type": "object"}},
			"taxi_services": {"type": "array", "items": {"type": "object"}},
			"practical_tips": {"type": "array", "items": {"type": "string"}}
		}
	}`,

	SchemaAttractionSearchResults: `{
		"type": "object",
		"properties": {
			"search_summary": {"type": "object"},
			"cultural_historical_attractions": {"type": "array", "items": {"type": "object"}},
			"natural_outdoor_attractions": {"type": "array", "items": {"type": "object"}},
			"entertainment_recreation_attractions": {"type": "array", "items": {"type": "object"}},
			"local_experience_tours": {"type": "array", "items": {"type": "object"}},
			"must_see_attractions": {"type": "array", "items": {"type": "string"}}
		}
	}`,

	SchemaDiningSearchResults: `{
		"type": "object",
		"properties": {
			"summary": {"type": "string"},
			"total_options_found": {"type": "integer"},
			"dining_options": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"name": {"type": "string"},
						"type": {"type": "string"}
					},
					"required": ["name", "type"]
				}
			}
		},
		"required": ["summary", "total_options_found", "dining_options"]
	}`,

	SchemaStructuredItinerary: `{
		"type": "object",
		"properties": {
			"trip_title": {"type": "string"},
			"start_date": {"type": "string"},
			"end_date": {"type": "string"},
			"days": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"date": {"type": "string"},
						"activities": {
							"type": "array",
							"items": {
								"type": "object",
								"properties": {"name": {"type": "string"}},
								"required": ["name"]
							}
						}
					},
					"required": ["date", "activities"]
				}
			}
		},
		"required": ["days"]
	}`,

	SchemaFinalBudgetSummary: `{
		"type": "object",
		"properties": {
			"total_trip_cost": {"type": "number"},
			"budget_limit": {"type": "number"},
			"currency": {"type": "string"},
			"within_budget": {"type": "boolean"},
			"fixed_costs": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"category": {"type": "string"},
						"amount": {"type": "number"},
						"currency": {"type": "string"}
					},
					"required": ["category", "amount", "currency"]
				}
			},
			"variable_costs": {"type": "array", "items": {"type": "object"}}
		},
		"required": ["total_trip_cost", "budget_limit", "currency", "within_budget"]
	}`,

	SchemaItineraryValidationReport: `{
		"type": "object",
		"properties": {
			"overall_score": {"type": "number"},
			"validation_metrics": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"name": {"type": "string"},
						"score": {"type": "number"}
					},
					"required": ["name", "score"]
				}
			},
			"issues_found": {"type": "array", "items": {"type": "object"}},
			"recommendations": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["overall_score", "validation_metrics"]
	}`,

	SchemaComprehensiveTravelDocument: `{
		"type": "object",
		"properties": {
			"trip_title": {"type": "string"},
			"content": {"type": "string"},
			"resources": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["trip_title", "content"]
	}`,

	SchemaTravelEmailResponse: `{
		"type": "object",
		"properties": {
			"status": {"type": "string", "enum": ["sent", "failed", "pending"]},
			"subject": {"type": "string"},
			"body": {"type": "string"},
			"language": {"type": "string"},
			"message": {"type": "string"}
		},
		"required": ["subject", "body", "language"]
	}`,
}

// SchemaRegistrar accepts named JSON schema documents. Satisfied by
// validation.Validator without importing it here.
type SchemaRegistrar interface {
	Register(name, schemaJSON string) error
}

// RegisterSchemas loads every task output schema into the given registrar.
func RegisterSchemas(r SchemaRegistrar) error {
	for name, schema := range taskOutputSchemas {
		if err := r.Register(name, schema); err != nil {
			return err
		}
	}
	return nil
}
