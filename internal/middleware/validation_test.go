package middleware

import (
	"strings"
	"testing"

	"github.com/tubeboard/tubeboard-go/internal/model"
)

func TestValidateChannelID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"valid", "UC4", "UC4", false},
		{"valid with dash and underscore", "UC_x-1", "UC_x-1", false},
		{"trimmed", "  UC1  ", "UC1", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("a", MaxChannelIDLen+1), "", true},
		{"invalid characters", "UC4; DROP TABLE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, errMsg := ValidateChannelID(tt.input)
			if (errMsg != "") != tt.wantErr {
				t.Errorf("errMsg = %q, wantErr %v", errMsg, tt.wantErr)
			}
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestValidateVideoID(t *testing.T) {
	if _, errMsg := ValidateVideoID("dQw4w9WgXcQ"); errMsg != "" {
		t.Errorf("valid id rejected: %s", errMsg)
	}
	if _, errMsg := ValidateVideoID(""); errMsg == "" {
		t.Error("empty id accepted")
	}
	if _, errMsg := ValidateVideoID("bad id!"); errMsg == "" {
		t.Error("invalid characters accepted")
	}
}

func TestParseChannelSort(t *testing.T) {
	for _, valid := range []string{"", "subscribers", "views", "growth"} {
		if _, errMsg := ParseChannelSort(valid); errMsg != "" {
			t.Errorf("ParseChannelSort(%q) rejected: %s", valid, errMsg)
		}
	}
	if _, errMsg := ParseChannelSort("revenue"); errMsg == "" {
		t.Error("revenue is not a channel sort key")
	}
}

func TestParseVideoSort(t *testing.T) {
	for _, valid := range []string{"", "views", "likes", "revenue", "date"} {
		if _, errMsg := ParseVideoSort(valid); errMsg != "" {
			t.Errorf("ParseVideoSort(%q) rejected: %s", valid, errMsg)
		}
	}
	if _, errMsg := ParseVideoSort("subscribers"); errMsg == "" {
		t.Error("subscribers is not a video sort key")
	}
}

func TestParseRankingPeriod(t *testing.T) {
	// all-time only valid on the revenue board
	if p, errMsg := ParseRankingPeriod("all-time", true); errMsg != "" || p != model.PeriodAllTime {
		t.Errorf("all-time rejected on revenue board: %q %q", p, errMsg)
	}
	if _, errMsg := ParseRankingPeriod("all-time", false); errMsg == "" {
		t.Error("all-time accepted on growth board")
	}

	for _, valid := range []string{"", "daily", "weekly", "monthly"} {
		if _, errMsg := ParseRankingPeriod(valid, false); errMsg != "" {
			t.Errorf("ParseRankingPeriod(%q) rejected: %s", valid, errMsg)
		}
	}

	if _, errMsg := ParseRankingPeriod("yearly", true); errMsg == "" {
		t.Error("yearly accepted")
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"10", 10, false},
		{"1", 1, false},
		{"100", 100, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"101", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, errMsg := parseLimit(tt.input)
		if (errMsg != "") != tt.wantErr {
			t.Errorf("parseLimit(%q) errMsg = %q, wantErr %v", tt.input, errMsg, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseLimit(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/channels/UC4", "/api/channels/:id"},
		{"/api/channels/UC4/stats", "/api/channels/:id/stats"},
		{"/api/videos/dQw4w9WgXcQ", "/api/videos/:id"},
		{"/api/rankings/super-chat", "/api/rankings/super-chat"},
		{"/health/live", "/health/live"},
	}

	for _, tt := range tests {
		if got := sanitizePath(tt.path); got != tt.want {
			t.Errorf("sanitizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
