package models

import "testing"

func TestIsValidCampaignType(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"seeding", true},
		{"promotion", true},
		{"sales", true},
		{"", false},
		{"Seeding", false},
		{"branding", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidCampaignType(tt.input); got != tt.expected {
				t.Errorf("IsValidCampaignType(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidCampaignStatus(t *testing.T) {
	for _, s := range AllCampaignStatuses {
		if !IsValidCampaignStatus(s) {
			t.Errorf("status %q should be valid", s)
		}
	}
	for _, s := range []string{"", "done", "ACTIVE", "archived"} {
		if IsValidCampaignStatus(s) {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestIsValidPlatform(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"instagram", true},
		{"youtube", true},
		{"tiktok", true},
		{"twitter", true},
		{"facebook", false},
		{"Instagram", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidPlatform(tt.input); got != tt.expected {
				t.Errorf("IsValidPlatform(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidSampleStatus(t *testing.T) {
	for _, s := range AllSampleStatuses {
		if !IsValidSampleStatus(s) {
			t.Errorf("status %q should be valid", s)
		}
	}
	if IsValidSampleStatus("pending") {
		t.Error("pending is not a sample status")
	}
}

func TestIsValidMetricType(t *testing.T) {
	for _, m := range AllMetricTypes {
		if !IsValidMetricType(m) {
			t.Errorf("metric type %q should be valid", m)
		}
	}
	if IsValidMetricType("impressions") {
		t.Error("impressions is not a metric type")
	}
}

func TestIsValidRecommendation(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"recommended", true},
		{"neutral", true},
		{"not_recommended", true},
		{"maybe", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidRecommendation(tt.input); got != tt.expected {
				t.Errorf("IsValidRecommendation(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
