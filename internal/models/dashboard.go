package models

import "time"

// StatCard is a presentation-ready dashboard tile
type StatCard struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// CallStats are counts over today's call logs (IST day window)
type CallStats struct {
	TodaysCalls     int `json:"todaysCalls"`
	ResponsiveCalls int `json:"responsiveCalls"`
	NoResponseCalls int `json:"noResponseCalls"`
	TodaysLeads     int `json:"todaysLeads"`
	ConvertedLeads  int `json:"convertedLeads"`
	PendingFollowup int `json:"pendingFollowups"`
}

// AdminStats are whole-collection totals for the admin dashboard
type AdminStats struct {
	TotalCases        int     `json:"totalCases"`
	PendingCases      int     `json:"pendingCases"`
	InProgressCases   int     `json:"inProgressCases"`
	SolvedCases       int     `json:"solvedCases"`
	TotalAgents       int     `json:"totalAgents"`
	TotalTelecallers  int     `json:"totalTelecallers"`
	TotalCollected    float64 `json:"totalCollected"`
	PendingSettlement float64 `json:"pendingSettlement"`
}

// AgentStats summarise one officer's workload
type AgentStats struct {
	AgentID         int     `json:"agentId"`
	AssignedCases   int     `json:"assignedCases"`
	InProgressCases int     `json:"inProgressCases"`
	SolvedCases     int     `json:"solvedCases"`
	AvgCibilGain    float64 `json:"avgCibilGain"`
	CollectedAmount float64 `json:"collectedAmount"`
}

// MarketingStats summarise one marketing user's field visits
type MarketingStats struct {
	MarketingID int `json:"marketingId"`
	TotalVisits int `json:"totalVisits"`
	TodayVisits int `json:"todayVisits"`
	WeekVisits  int `json:"weekVisits"`
}

// Activity is one row in the recent-activity feed
type Activity struct {
	Type    string    `json:"type"` // call or note
	Summary string    `json:"summary"`
	Actor   string    `json:"actor"`
	At      time.Time `json:"at"`
}

// WeeklyMetric is one day's counts for the metrics chart
type WeeklyMetric struct {
	Day   string `json:"day"` // 2006-01-02 in IST
	Calls int    `json:"calls"`
	Leads int    `json:"leads"`
	Cases int    `json:"cases"`
}
