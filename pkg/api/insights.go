package api

import "github.com/mmynk/garagedesk/internal/calculator"

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Dashboard calculator.Dashboard `json:"dashboard"`
}

type GetInsightsRequest struct{}

type GetInsightsResponse struct {
	Insights calculator.Insights `json:"insights"`
}
