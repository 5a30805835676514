package service

import (
	"testing"
	"time"

	"github.com/tubeboard/tubeboard-go/internal/model"
)

func snap(channelID, date string, subs int) model.SubscriberSnapshot {
	t, _ := time.Parse(model.DateOnly, date)
	return model.SubscriberSnapshot{
		ChannelID:   channelID,
		Date:        model.StatDate{Time: t},
		Subscribers: subs,
	}
}

func TestComputeSubscriberDeltas_LatestMinusEarliest(t *testing.T) {
	snaps := []model.SubscriberSnapshot{
		snap("UC1", "2026-08-01", 1000),
		snap("UC1", "2026-08-05", 1200),
		snap("UC1", "2026-08-10", 1500),
		snap("UC2", "2026-08-01", 5000),
		snap("UC2", "2026-08-10", 5100),
	}

	deltas := ComputeSubscriberDeltas(snaps)

	if len(deltas) != 2 {
		t.Fatalf("deltas = %d, want 2", len(deltas))
	}
	if deltas[0].ChannelID != "UC1" || deltas[0].Gained != 500 {
		t.Errorf("first = %+v, want UC1 gained 500", deltas[0])
	}
	if deltas[1].ChannelID != "UC2" || deltas[1].Gained != 100 {
		t.Errorf("second = %+v, want UC2 gained 100", deltas[1])
	}
}

func TestComputeSubscriberDeltas_SortedDescending(t *testing.T) {
	snaps := []model.SubscriberSnapshot{
		snap("UC1", "2026-08-01", 100),
		snap("UC1", "2026-08-10", 110),
		snap("UC2", "2026-08-01", 100),
		snap("UC2", "2026-08-10", 400),
		snap("UC3", "2026-08-01", 100),
		snap("UC3", "2026-08-10", 200),
	}

	deltas := ComputeSubscriberDeltas(snaps)

	for i := 1; i < len(deltas); i++ {
		if deltas[i-1].Gained < deltas[i].Gained {
			t.Errorf("deltas not descending at %d: %d < %d", i, deltas[i-1].Gained, deltas[i].Gained)
		}
	}
	if deltas[0].ChannelID != "UC2" {
		t.Errorf("top = %s, want UC2", deltas[0].ChannelID)
	}
}

func TestComputeSubscriberDeltas_TieBreakByChannelID(t *testing.T) {
	snaps := []model.SubscriberSnapshot{
		snap("UCb", "2026-08-01", 100),
		snap("UCb", "2026-08-10", 200),
		snap("UCa", "2026-08-01", 300),
		snap("UCa", "2026-08-10", 400),
	}

	deltas := ComputeSubscriberDeltas(snaps)

	// Both gained 100; UCa wins the tie on id order.
	if deltas[0].ChannelID != "UCa" || deltas[1].ChannelID != "UCb" {
		t.Errorf("tie order = [%s %s], want [UCa UCb]", deltas[0].ChannelID, deltas[1].ChannelID)
	}
}

func TestComputeSubscriberDeltas_SingleSnapshotGainsZero(t *testing.T) {
	snaps := []model.SubscriberSnapshot{
		snap("UC1", "2026-08-10", 1000),
	}

	deltas := ComputeSubscriberDeltas(snaps)

	if len(deltas) != 1 || deltas[0].Gained != 0 {
		t.Errorf("deltas = %+v, want one entry with gain 0", deltas)
	}
}

func TestComputeSubscriberDeltas_Empty(t *testing.T) {
	if deltas := ComputeSubscriberDeltas(nil); len(deltas) != 0 {
		t.Errorf("deltas = %+v, want empty", deltas)
	}
}

func TestBuildRevenueBoard_DenseRanks(t *testing.T) {
	rows := []model.ChannelRevenue{
		{ChannelID: "UC4", Revenue: 1500000},
		{ChannelID: "UC5", Revenue: 800000},
		{ChannelID: "UC1", Revenue: 50000},
	}
	channels := map[string]model.Channel{
		"UC4": {ID: "UC4"},
		"UC5": {ID: "UC5"},
		"UC1": {ID: "UC1"},
	}

	board := BuildRevenueBoard(rows, channels)

	if len(board) != 3 {
		t.Fatalf("board = %d rows, want 3", len(board))
	}
	for i, r := range board {
		if r.Rank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, r.Rank, i+1)
		}
	}
	for i := 1; i < len(board); i++ {
		if board[i-1].Revenue < board[i].Revenue {
			t.Errorf("revenue not descending at %d", i)
		}
	}
}

func TestBuildRevenueBoard_DropsUnresolvedChannels(t *testing.T) {
	rows := []model.ChannelRevenue{
		{ChannelID: "UC4", Revenue: 1500000},
		{ChannelID: "ghost", Revenue: 900000},
		{ChannelID: "UC5", Revenue: 800000},
	}
	channels := map[string]model.Channel{
		"UC4": {ID: "UC4"},
		"UC5": {ID: "UC5"},
	}

	board := BuildRevenueBoard(rows, channels)

	if len(board) != 2 {
		t.Fatalf("board = %d rows, want 2 (ghost dropped)", len(board))
	}
	// Ranks stay gapless after the drop.
	if board[0].Rank != 1 || board[1].Rank != 2 {
		t.Errorf("ranks = [%d %d], want [1 2]", board[0].Rank, board[1].Rank)
	}
	if board[1].Channel.ID != "UC5" {
		t.Errorf("second = %s, want UC5", board[1].Channel.ID)
	}
}

func TestBuildRevenueBoard_Empty(t *testing.T) {
	board := BuildRevenueBoard(nil, nil)
	if board == nil || len(board) != 0 {
		t.Errorf("board = %v, want empty non-nil slice", board)
	}
}

func TestBuildGrowthBoard_DenseRanks(t *testing.T) {
	deltas := []SubscriberDelta{
		{ChannelID: "UC2", Gained: 300},
		{ChannelID: "UC3", Gained: 100},
		{ChannelID: "missing", Gained: 50},
		{ChannelID: "UC1", Gained: 10},
	}
	channels := map[string]model.Channel{
		"UC1": {ID: "UC1"},
		"UC2": {ID: "UC2"},
		"UC3": {ID: "UC3"},
	}

	board := BuildGrowthBoard(deltas, channels)

	if len(board) != 3 {
		t.Fatalf("board = %d rows, want 3", len(board))
	}
	want := []struct {
		rank   int
		id     string
		gained int
	}{
		{1, "UC2", 300},
		{2, "UC3", 100},
		{3, "UC1", 10},
	}
	for i, w := range want {
		if board[i].Rank != w.rank || board[i].Channel.ID != w.id || board[i].SubscribersGained != w.gained {
			t.Errorf("board[%d] = {%d %s %d}, want {%d %s %d}",
				i, board[i].Rank, board[i].Channel.ID, board[i].SubscribersGained, w.rank, w.id, w.gained)
		}
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period  model.RankingPeriod
		want    time.Time
		bounded bool
	}{
		{model.PeriodDaily, now.AddDate(0, 0, -1), true},
		{model.PeriodWeekly, now.AddDate(0, 0, -7), true},
		{model.PeriodMonthly, now.AddDate(0, 0, -30), true},
		{model.PeriodAllTime, time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		got, bounded := PeriodStart(tt.period, now)
		if bounded != tt.bounded {
			t.Errorf("PeriodStart(%q) bounded = %v, want %v", tt.period, bounded, tt.bounded)
		}
		if bounded && !got.Equal(tt.want) {
			t.Errorf("PeriodStart(%q) = %v, want %v", tt.period, got, tt.want)
		}
	}
}
