// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package plan

// Fragment types mirror the JSON shapes the generation prompts instruct the
// model to emit, one type per call site. Each type has a Default
// constructor returning the zeroed shape with lists allocated; the
// extraction layer substitutes it when a call fails or its response cannot
// be parsed, so downstream compilation never sees a missing key.

// Competitor is one entry of the market analysis competitive landscape.
type Competitor struct {
	Name        string `json:"name"`
	MarketShare string `json:"market_share"`
	Strengths   string `json:"strengths"`
	Positioning string `json:"positioning"`
}

// Demographics describes the target audience in census terms.
type Demographics struct {
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Income   string `json:"income"`
	Location string `json:"location"`
}

// Psychographics describes the target audience by lifestyle and values.
type Psychographics struct {
	Lifestyle string `json:"lifestyle"`
	Values    string `json:"values"`
	Interests string `json:"interests"`
}

// PESTAnalysis captures the external environment factors.
type PESTAnalysis struct {
	Political     string `json:"political"`
	Economic      string `json:"economic"`
	Social        string `json:"social"`
	Technological string `json:"technological"`
}

// MarketIntelligence is the market-analysis call result.
type MarketIntelligence struct {
	CurrentSituation     string         `json:"current_situation"`
	MarketSize           string         `json:"market_size"`
	GrowthRate           string         `json:"growth_rate"`
	Trends               []string       `json:"trends"`
	Competitors          []Competitor   `json:"competitors"`
	TargetDemographics   Demographics   `json:"target_demographics"`
	TargetPsychographics Psychographics `json:"target_psychographics"`
	PESTAnalysis         PESTAnalysis   `json:"pest_analysis"`
	MarketOpportunities  []string       `json:"market_opportunities"`
}

func DefaultMarketIntelligence() MarketIntelligence {
	return MarketIntelligence{
		Trends:              []string{},
		Competitors:         []Competitor{},
		MarketOpportunities: []string{},
	}
}

// SWOTStrength is an internal strength with its expected impact.
type SWOTStrength struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// SWOTWeakness is an internal weakness with a proposed mitigation.
type SWOTWeakness struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

// SWOTOpportunity is an external opportunity with its potential.
type SWOTOpportunity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Potential   string `json:"potential"`
}

// SWOTThreat is an external threat with its likelihood.
type SWOTThreat struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Likelihood  string `json:"likelihood"`
}

// SWOT is the SWOT-analysis call result.
type SWOT struct {
	Strengths     []SWOTStrength    `json:"strengths"`
	Weaknesses    []SWOTWeakness    `json:"weaknesses"`
	Opportunities []SWOTOpportunity `json:"opportunities"`
	Threats       []SWOTThreat      `json:"threats"`
}

func DefaultSWOT() SWOT {
	return SWOT{
		Strengths:     []SWOTStrength{},
		Weaknesses:    []SWOTWeakness{},
		Opportunities: []SWOTOpportunity{},
		Threats:       []SWOTThreat{},
	}
}

// OpportunityTitles lists the opportunity headlines, feeding the positioning
// prompt's research context.
func (s SWOT) OpportunityTitles() []string {
	out := make([]string, 0, len(s.Opportunities))
	for _, o := range s.Opportunities {
		if o.Title != "" {
			out = append(out, o.Title)
		}
	}
	return out
}

// ThreatTitles lists the threat headlines, feeding the risk-planning
// prompt's research context.
func (s SWOT) ThreatTitles() []string {
	out := make([]string, 0, len(s.Threats))
	for _, t := range s.Threats {
		if t.Title != "" {
			out = append(out, t.Title)
		}
	}
	return out
}

// BrandPersonality is the tone/values/characteristics block of positioning.
type BrandPersonality struct {
	Tone            string   `json:"tone"`
	Values          []string `json:"values"`
	Characteristics string   `json:"characteristics"`
}

// Positioning is the mission/vision/positioning call result.
type Positioning struct {
	Mission                  string           `json:"mission"`
	Vision                   string           `json:"vision"`
	ValueProposition         string           `json:"value_proposition"`
	UniqueSellingPoints      []string         `json:"unique_selling_points"`
	PositioningStatement     string           `json:"positioning_statement"`
	PositioningVsCompetitors string           `json:"positioning_vs_competitors"`
	Messaging                []string         `json:"messaging"`
	BrandPersonality         BrandPersonality `json:"brand_personality"`
}

func DefaultPositioning() Positioning {
	return Positioning{
		UniqueSellingPoints: []string{},
		Messaging:           []string{},
		BrandPersonality:    BrandPersonality{Values: []string{}},
	}
}

// Goal is one SMART marketing goal.
type Goal struct {
	Goal     string `json:"goal"`
	Target   string `json:"target"`
	Deadline string `json:"deadline"`
	SMART    bool   `json:"smart"`
}

// KPI is one key performance indicator with its target and measurement.
type KPI struct {
	Name        string `json:"name"`
	Target      string `json:"target"`
	Measurement string `json:"measurement"`
}

// GoalsKPIs groups the goals and KPI lists of the strategy aggregate.
type GoalsKPIs struct {
	Goals []Goal `json:"goals"`
	KPIs  []KPI  `json:"kpis"`
}

func DefaultGoalsKPIs() GoalsKPIs {
	return GoalsKPIs{Goals: []Goal{}, KPIs: []KPI{}}
}

// MixProduct through MixPhysicalEvidence are the seven Ps.
type MixProduct struct {
	Features  string `json:"features"`
	Quality   string `json:"quality"`
	Design    string `json:"design"`
	Branding  string `json:"branding"`
	Packaging string `json:"packaging"`
}

type MixPrice struct {
	Strategy    string `json:"strategy"`
	Positioning string `json:"positioning"`
	Tactics     string `json:"tactics"`
}

type MixPlace struct {
	Channels     []string `json:"channels"`
	Distribution string   `json:"distribution"`
	Logistics    string   `json:"logistics"`
}

type MixPromotion struct {
	Advertising string `json:"advertising"`
	PR          string `json:"pr"`
	Content     string `json:"content"`
	SocialMedia string `json:"social_media"`
	Influencers string `json:"influencers"`
}

type MixPeople struct {
	Staff           string `json:"staff"`
	CustomerService string `json:"customer_service"`
	Ambassadors     string `json:"ambassadors"`
}

type MixProcess struct {
	CustomerJourney string `json:"customer_journey"`
	PurchaseFlow    string `json:"purchase_flow"`
	Delivery        string `json:"delivery"`
}

type MixPhysicalEvidence struct {
	StoreDesign  string `json:"store_design"`
	WebsiteUX    string `json:"website_ux"`
	Testimonials string `json:"testimonials"`
}

// MarketingMix is the 7Ps strategy block.
type MarketingMix struct {
	Product          MixProduct          `json:"product"`
	Price            MixPrice            `json:"price"`
	Place            MixPlace            `json:"place"`
	Promotion        MixPromotion        `json:"promotion"`
	People           MixPeople           `json:"people"`
	Process          MixProcess          `json:"process"`
	PhysicalEvidence MixPhysicalEvidence `json:"physical_evidence"`
}

func DefaultMarketingMix() MarketingMix {
	return MarketingMix{Place: MixPlace{Channels: []string{}}}
}

// ActionPhase is one timeline phase of the action plan.
type ActionPhase struct {
	Activities    []string `json:"activities"`
	Timeline      string   `json:"timeline"`
	KeyMilestones []string `json:"key_milestones"`
}

// ActionPlan covers the pre-launch, launch, and post-launch phases.
type ActionPlan struct {
	PreLaunch  ActionPhase `json:"pre_launch"`
	Launch     ActionPhase `json:"launch"`
	PostLaunch ActionPhase `json:"post_launch"`
}

func DefaultActionPlan() ActionPlan {
	phase := ActionPhase{Activities: []string{}, KeyMilestones: []string{}}
	return ActionPlan{PreLaunch: phase, Launch: phase, PostLaunch: phase}
}

// ActivityCost itemizes the budget by activity.
type ActivityCost struct {
	Activity string `json:"activity"`
	Cost     string `json:"cost"`
}

// BudgetAllocation splits the budget across promotion channels.
type BudgetAllocation struct {
	SocialMedia string `json:"social_media"`
	PaidAds     string `json:"paid_ads"`
	PR          string `json:"pr"`
	Events      string `json:"events"`
	Content     string `json:"content"`
	Influencers string `json:"influencers"`
	Other       string `json:"other"`
}

// BudgetResources names the team, tools, and agencies the plan needs.
type BudgetResources struct {
	Team     []string `json:"team"`
	Tools    []string `json:"tools"`
	Agencies []string `json:"agencies"`
}

// Budget is the cost, allocation, and projection block.
type Budget struct {
	Total           string           `json:"total"`
	Allocation      BudgetAllocation `json:"allocation"`
	CostPerActivity []ActivityCost   `json:"cost_per_activity"`
	ROIProjection   string           `json:"roi_projection"`
	RevenueForecast string           `json:"revenue_forecast"`
	ResourcesNeeded BudgetResources  `json:"resources_needed"`
}

func DefaultBudget() Budget {
	return Budget{
		CostPerActivity: []ActivityCost{},
		ResourcesNeeded: BudgetResources{
			Team:     []string{},
			Tools:    []string{},
			Agencies: []string{},
		},
	}
}

// Monitoring describes how plan progress is measured and reviewed.
type Monitoring struct {
	MeasurementFrequency string   `json:"measurement_frequency"`
	EvaluationSchedule   []string `json:"evaluation_schedule"`
	DashboardMetrics     []string `json:"dashboard_metrics"`
	AdjustmentTriggers   []string `json:"adjustment_triggers"`
}

func DefaultMonitoring() Monitoring {
	return Monitoring{
		EvaluationSchedule: []string{},
		DashboardMetrics:   []string{},
		AdjustmentTriggers: []string{},
	}
}

// BudgetMonitoring pairs the budget and monitoring blocks in the strategy
// aggregate.
type BudgetMonitoring struct {
	Budget     Budget     `json:"budget"`
	Monitoring Monitoring `json:"monitoring"`
}

func DefaultBudgetMonitoring() BudgetMonitoring {
	return BudgetMonitoring{Budget: DefaultBudget(), Monitoring: DefaultMonitoring()}
}

// Risk is one identified launch risk with mitigation and contingency.
type Risk struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Likelihood  string `json:"likelihood"`
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
	Contingency string `json:"contingency"`
}

// AdoptionPhase is one segment of the adoption curve.
type AdoptionPhase struct {
	Strategy string `json:"strategy"`
	Timeline string `json:"timeline"`
}

// AdoptionPhases walks the adoption curve from innovators to late majority.
type AdoptionPhases struct {
	Innovators    AdoptionPhase `json:"innovators"`
	EarlyAdopters AdoptionPhase `json:"early_adopters"`
	EarlyMajority AdoptionPhase `json:"early_majority"`
	LateMajority  AdoptionPhase `json:"late_majority"`
}

// LaunchPhase is one rollout stage with its activities and exit criteria.
type LaunchPhase struct {
	Phase           string   `json:"phase"`
	Activities      []string `json:"activities"`
	SuccessCriteria string   `json:"success_criteria"`
}

// Milestone is one dated launch milestone.
type Milestone struct {
	Milestone string `json:"milestone"`
	Date      string `json:"date"`
	Criteria  string `json:"criteria"`
}

// LaunchStrategy is the product introduction plan.
type LaunchStrategy struct {
	Approach       string         `json:"approach"`
	TargetDate     string         `json:"target_date"`
	AdoptionPhases AdoptionPhases `json:"adoption_phases"`
	LaunchPhases   []LaunchPhase  `json:"launch_phases"`
	Milestones     []Milestone    `json:"milestones"`
}

func DefaultLaunchStrategy() LaunchStrategy {
	return LaunchStrategy{
		LaunchPhases: []LaunchPhase{},
		Milestones:   []Milestone{},
	}
}

// RisksLaunch pairs the risk register and launch strategy in the strategy
// aggregate.
type RisksLaunch struct {
	Risks          []Risk         `json:"risks"`
	LaunchStrategy LaunchStrategy `json:"launch_strategy"`
}

func DefaultRisksLaunch() RisksLaunch {
	return RisksLaunch{Risks: []Risk{}, LaunchStrategy: DefaultLaunchStrategy()}
}

// GoalsMarketingMix is the combined wire shape of the goals and marketing
// mix call; the orchestrator splits it into the strategy aggregate.
type GoalsMarketingMix struct {
	Goals        []Goal       `json:"goals"`
	KPIs         []KPI        `json:"kpis"`
	MarketingMix MarketingMix `json:"marketing_mix"`
}

func DefaultGoalsMarketingMix() GoalsMarketingMix {
	return GoalsMarketingMix{
		Goals:        []Goal{},
		KPIs:         []KPI{},
		MarketingMix: DefaultMarketingMix(),
	}
}

// ActionBudgetRisks is the combined wire shape of the action plan, budget,
// monitoring, risk, and launch call; the orchestrator splits it into the
// strategy aggregate.
type ActionBudgetRisks struct {
	ActionPlan     ActionPlan     `json:"action_plan"`
	Budget         Budget         `json:"budget"`
	Monitoring     Monitoring     `json:"monitoring"`
	Risks          []Risk         `json:"risks"`
	LaunchStrategy LaunchStrategy `json:"launch_strategy"`
}

func DefaultActionBudgetRisks() ActionBudgetRisks {
	return ActionBudgetRisks{
		ActionPlan:     DefaultActionPlan(),
		Budget:         DefaultBudget(),
		Monitoring:     DefaultMonitoring(),
		Risks:          []Risk{},
		LaunchStrategy: DefaultLaunchStrategy(),
	}
}

// Research aggregates the two research-phase fragments.
type Research struct {
	MarketIntelligence MarketIntelligence `json:"market_intelligence"`
	SWOT               SWOT               `json:"swot"`
}

// Strategy aggregates the six strategy-phase fragments.
type Strategy struct {
	Positioning      Positioning      `json:"positioning"`
	Goals            GoalsKPIs        `json:"goals"`
	MarketingMix     MarketingMix     `json:"marketing_mix"`
	ActionPlan       ActionPlan       `json:"action_plan"`
	BudgetMonitoring BudgetMonitoring `json:"budget_monitoring"`
	RisksLaunch      RisksLaunch      `json:"risks_launch"`
}
