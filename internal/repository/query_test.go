package repository

import (
	"strings"
	"testing"

	"github.com/tubeboard/tubeboard-go/internal/model"
)

func TestBuildChannelListQuery_Defaults(t *testing.T) {
	query, args := BuildChannelListQuery(model.ChannelFilter{})

	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	if strings.Contains(query, "WHERE") {
		t.Error("unfiltered query should have no WHERE clause")
	}
	if !strings.Contains(query, "ORDER BY subscriber_count DESC, id ASC") {
		t.Error("default order should be subscriber count descending")
	}
	if strings.Contains(query, "LIMIT") {
		t.Error("query should be unlimited when no limit is set")
	}
}

func TestBuildChannelListQuery_SortByViews(t *testing.T) {
	query, _ := BuildChannelListQuery(model.ChannelFilter{SortBy: model.ChannelSortViews})

	if !strings.Contains(query, "ORDER BY view_count DESC, id ASC") {
		t.Errorf("views sort missing, query:\n%s", query)
	}
}

func TestBuildChannelListQuery_GrowthFallsBackToSubscribers(t *testing.T) {
	query, _ := BuildChannelListQuery(model.ChannelFilter{SortBy: model.ChannelSortGrowth})

	if !strings.Contains(query, "ORDER BY subscriber_count DESC, id ASC") {
		t.Errorf("growth sort should order by subscriber count, query:\n%s", query)
	}
}

func TestBuildChannelListQuery_Filters(t *testing.T) {
	query, args := BuildChannelListQuery(model.ChannelFilter{
		Category: "VTuber",
		Country:  "JP",
		Limit:    5,
	})

	if !strings.Contains(query, "category = $1") || !strings.Contains(query, "country = $2") {
		t.Errorf("filter placeholders wrong, query:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $3") {
		t.Errorf("limit placeholder wrong, query:\n%s", query)
	}
	want := []any{"VTuber", "JP", 5}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
}

func TestBuildChannelListQuery_CountryOnly(t *testing.T) {
	query, args := BuildChannelListQuery(model.ChannelFilter{Country: "US"})

	// Placeholder numbering restarts from $1 when category is absent.
	if !strings.Contains(query, "country = $1") {
		t.Errorf("country placeholder wrong, query:\n%s", query)
	}
	if len(args) != 1 || args[0] != "US" {
		t.Errorf("args = %v, want [US]", args)
	}
}

func TestBuildVideoListQuery_Defaults(t *testing.T) {
	query, args := BuildVideoListQuery(model.VideoFilter{})

	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	if !strings.Contains(query, "INNER JOIN channels c ON c.id = v.channel_id") {
		t.Error("list must inner-join channels")
	}
	if !strings.Contains(query, "ORDER BY v.published_at DESC NULLS LAST, v.id ASC") {
		t.Error("default order should be publish date descending")
	}
}

func TestBuildVideoListQuery_SortVariants(t *testing.T) {
	tests := []struct {
		sort model.VideoSort
		want string
	}{
		{model.VideoSortViews, "ORDER BY v.view_count DESC, v.id ASC"},
		{model.VideoSortLikes, "ORDER BY v.like_count DESC, v.id ASC"},
		{model.VideoSortRevenue, "ORDER BY v.super_chat_revenue DESC, v.id ASC"},
		{model.VideoSortDate, "ORDER BY v.published_at DESC NULLS LAST, v.id ASC"},
	}

	for _, tt := range tests {
		query, _ := BuildVideoListQuery(model.VideoFilter{SortBy: tt.sort})
		if !strings.Contains(query, tt.want) {
			t.Errorf("sort %q: missing %q in query:\n%s", tt.sort, tt.want, query)
		}
	}
}

func TestBuildVideoListQuery_Filters(t *testing.T) {
	live := true
	query, args := BuildVideoListQuery(model.VideoFilter{
		ChannelID: "UC4",
		IsLive:    &live,
		Limit:     3,
	})

	if !strings.Contains(query, "v.channel_id = $1") || !strings.Contains(query, "v.is_live = $2") {
		t.Errorf("filter placeholders wrong, query:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $3") {
		t.Errorf("limit placeholder wrong, query:\n%s", query)
	}
	if len(args) != 3 || args[0] != "UC4" || args[1] != true || args[2] != 3 {
		t.Errorf("args = %v, want [UC4 true 3]", args)
	}
}

func TestBuildVideoListQuery_IsLiveFalseIsNotIgnored(t *testing.T) {
	live := false
	query, args := BuildVideoListQuery(model.VideoFilter{IsLive: &live})

	if !strings.Contains(query, "v.is_live = $1") {
		t.Errorf("false filter dropped, query:\n%s", query)
	}
	if len(args) != 1 || args[0] != false {
		t.Errorf("args = %v, want [false]", args)
	}
}
