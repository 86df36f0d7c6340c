// internal/pipeline/tasks.go
package pipeline

import (
	"trip-planner/internal/agents"
	"trip-planner/internal/models"
)

// Task names, in pipeline order.
const (
	TaskDestinationSearch      = "destination_search"
	TaskFlightSearch           = "flight_search"
	TaskAccommodationSearch    = "accommodation_search"
	TaskTransportationSearch   = "transportation_search"
	TaskAttractionSearch       = "attraction_search"
	TaskDiningSearch           = "dining_search"
	TaskBudgetAnalysis         = "budget_analysis"
	TaskCostOptimization       = "cost_optimization"
	TaskStructureItinerary     = "structure_itinerary"
	TaskOptimizeRoutes         = "optimize_routes"
	TaskIntegratePreferences   = "integrate_preferences"
	TaskCreateContingencyPlans = "create_contingency_plans"
	TaskValidateItinerary      = "validate_itinerary"
	TaskTestLogistics          = "test_logistics"
	TaskBudgetFinalCheck       = "budget_final_check"
	TaskCreateTravelDocument   = "create_travel_document"
	TaskSendItineraryEmail     = "send_itinerary_email"
)

// Tasks returns the fixed ordered pipeline definition. The order is the
// execution order; there is no branching, skipping or reordering.
func Tasks() []Task {
	return []Task{
		// Research phase
		{
			Name:      TaskDestinationSearch,
			AgentName: agents.NameTravelSearcher,
			Description: "Investigate {destination} as a travel destination for a {trip_type} trip " +
				"from {start_date} to {end_date}. Cover the destination overview, cultural insights, " +
				"weather patterns for the travel dates, seasonal highlights, local customs, safety tips " +
				"and any recent developments travelers should know about.",
			ExpectedOutput: "destination_info.md",
			OutputSchema:   models.SchemaDestinationInvestigation,
			UseWebSearch:   true,
		},
		{
			Name:      TaskFlightSearch,
			AgentName: agents.NameTravelSearcher,
			Description: "Search for {flights} flights from {origin} to {destination} departing " +
				"{start_date} and returning {end_date} for {travelers} travelers. Report concrete " +
				"flight options with airlines, times, stops, layovers, price breakdowns, cabin class " +
				"and amenities, plus booking tips, flexible-date alternatives and travel advisories.",
			ExpectedOutput: "flight_options.md",
			OutputSchema:   models.SchemaFlightSearchResults,
			UseWebSearch:   true,
		},
		{
			Name:      TaskAccommodationSearch,
			AgentName: agents.NameTravelSearcher,
			Description: "Find {accomodation} accommodation in {destination} for {travelers} travelers " +
				"from {start_date} to {end_date} within {budget}. Report options with nightly and total " +
				"prices, ratings, amenities, room types, cancellation policies, locations relative to " +
				"main attractions, plus a neighborhood guide and booking tips.",
			ExpectedOutput: "accommodation_options.md",
			OutputSchema:   models.SchemaAccommodationSearchResults,
			UseWebSearch:   true,
		},
		{
			Name:      TaskTransportationSearch,
			AgentName: agents.NameTravelSearcher,
			Description: "Research local transportation in {destination} for the stay from {start_date} " +
				"to {end_date}: public transit networks, car rental, ride-sharing, taxis, and alternative " +
				"and tourist-specific options, with costs, safety assessment, accessibility information " +
				"and practical tips.",
			ExpectedOutput: "transportation_options.md",
			OutputSchema:   models.SchemaTransportationSearchResults,
			UseWebSearch:   true,
		},
		{
			Name:      TaskAttractionSearch,
			AgentName: agents.NameTravelSearcher,
			Description: "Find attractions and activities in {destination} matching the preferences " +
				"({user_preferences}) for a {trip_type} trip: cultural and historical sites, natural and " +
				"outdoor attractions, entertainment, local experiences and tours, and seasonal events " +
				"during {start_date} to {end_date}. Highlight must-see attractions and hidden gems.",
			ExpectedOutput: "attraction_options.md",
			OutputSchema:   models.SchemaAttractionSearchResults,
			UseWebSearch:   true,
		},
		{
			Name:      TaskDiningSearch,
			AgentName: agents.NameTravelSearcher,
			Description: "Research dining in {destination} for {travelers} travelers: restaurants, cafes " +
				"and street food fitting {budget}, with cuisine, price ranges, ratings, locations, menu " +
				"highlights and reservation requirements. Flag the best-value options.",
			ExpectedOutput: "dining_options.md",
			OutputSchema:   models.SchemaDiningSearchResults,
			UseWebSearch:   true,
		},

		// Budget management phase
		{
			Name:      TaskBudgetAnalysis,
			AgentName: agents.NameBudgetManager,
			Description: "Analyze the costs found so far against the {budget} limit for {travelers} " +
				"travelers. Break the trip into fixed and variable costs, identify the main cost drivers " +
				"and estimate whether the current selections fit the budget.",
			ExpectedOutput: "budget_analysis.md",
		},
		{
			Name:      TaskCostOptimization,
			AgentName: agents.NameBudgetManager,
			Description: "Propose concrete cost optimizations that keep the trip within {budget} without " +
				"sacrificing the {trip_type} experience: cheaper alternatives, better-value swaps, timing " +
				"adjustments and bundling opportunities. Quantify each saving.",
			ExpectedOutput: "cost_optimization.md",
		},

		// Planning phase
		{
			Name:      TaskStructureItinerary,
			AgentName: agents.NameItineraryPlanner,
			Description: "Assemble the research and budget results into a day-by-day itinerary for " +
				"{destination} from {start_date} to {end_date}. Give each day dated activities with " +
				"times, locations, costs and any special instructions.",
			ExpectedOutput: "structured_itinerary.md",
			OutputSchema:   models.SchemaStructuredItinerary,
		},
		{
			Name:      TaskOptimizeRoutes,
			AgentName: agents.NameItineraryPlanner,
			Description: "Optimize the daily routes of the itinerary: group activities by geography, " +
				"minimize backtracking and transit time using the local transportation research, and " +
				"adjust timings for opening hours and peak crowds.",
			ExpectedOutput: "optimized_routes.md",
		},
		{
			Name:      TaskIntegratePreferences,
			AgentName: agents.NameRecommendationEngine,
			Description: "Personalize the itinerary to the travelers' stated preferences " +
				"({user_preferences}): swap in experiences that fit better, flag anything that clashes " +
				"with the requested {trip_type} style, and add tailored recommendations.",
			ExpectedOutput: "personalized_itinerary.md",
			UseWebSearch:   true,
		},
		{
			Name:      TaskCreateContingencyPlans,
			AgentName: agents.NameItineraryPlanner,
			Description: "Create contingency plans for the itinerary: wet-weather alternatives per day, " +
				"backup dining and activity options, and guidance for common disruptions (delays, " +
				"closures, illness).",
			ExpectedOutput: "contingency_plans.md",
		},

		// Quality assurance phase
		{
			Name:      TaskValidateItinerary,
			AgentName: agents.NameQualityAssurance,
			Description: "Validate the personalized itinerary for completeness, feasibility and fit with " +
				"the travelers' preferences. Score each quality dimension, report the travel style match " +
				"percentage and list any issues found with severity and recommendations.",
			ExpectedOutput: "validation_report.md",
			OutputSchema:   models.SchemaItineraryValidationReport,
		},
		{
			Name:      TaskTestLogistics,
			AgentName: agents.NameQualityAssurance,
			Description: "Walk through the itinerary's logistics hour by hour: verify that transfers are " +
				"realistic, connections leave enough buffer, attraction opening days match the planned " +
				"dates and reservations are accounted for. Report anything that does not hold up.",
			ExpectedOutput: "logistics_verification.md",
		},
		{
			Name:      TaskBudgetFinalCheck,
			AgentName: agents.NameBudgetManager,
			Description: "Produce the final budget summary for the validated itinerary: total trip cost " +
				"against the {budget} limit in the trip currency, fixed and variable cost breakdowns, a " +
				"cost comparison table and whether the trip stays within budget.",
			ExpectedOutput: "final_budget_summary.md",
			OutputSchema:   models.SchemaFinalBudgetSummary,
		},

		// Delivery phase
		{
			Name:      TaskCreateTravelDocument,
			AgentName: agents.NameUserInteraction,
			Description: "Compile everything into one comprehensive travel document for the trip from " +
				"{origin} to {destination}: titled, well structured, covering the itinerary, budget, " +
				"practical information and useful resources, written for the traveler in {locale}.",
			ExpectedOutput: "complete_travel_document.md",
			OutputSchema:   models.SchemaComprehensiveTravelDocument,
		},
		{
			Name:      TaskSendItineraryEmail,
			AgentName: agents.NameUserInteraction,
			Description: "Write the itinerary email for {recipient_email} in the traveler's language " +
				"({locale}): a clear subject line and a warm, well-structured body summarizing the " +
				"travel document. Report the language used.",
			ExpectedOutput: "itinerary_email.md",
			OutputSchema:   models.SchemaTravelEmailResponse,
			ContextTasks:   []string{TaskCreateTravelDocument},
		},
	}
}

// TaskByName resolves a task from the fixed definition.
func TaskByName(name string) (Task, bool) {
	for _, t := range Tasks() {
		if t.Name == name {
			return t, true
		}
	}
	return Task{}, false
}
