package services

import (
	"reflect"
	"testing"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
)

func TestStatsService_Summarize(t *testing.T) {
	assets := ToAssets([]domain.Item{
		{AssetImage: "a", TransitionType: domain.StringList{"Upsell", "Upsell"}, ProgramName: domain.StringList{"Gold"}},
		{AssetImage: "b", TransitionType: domain.StringList{"Renewal"}, ProgramName: domain.StringList{"Gold", "Silver"}},
		{AssetImage: "c", ProgramName: domain.StringList{"Silver"}},
		{AssetImage: "d"},
	}, testBase)

	summary := NewStatsService().Summarize(assets)

	if summary.Total != 4 {
		t.Errorf("expected total 4, got %d", summary.Total)
	}
	if summary.Untagged != 2 {
		t.Errorf("expected 2 untagged, got %d", summary.Untagged)
	}
	if summary.Unassigned != 1 {
		t.Errorf("expected 1 unassigned, got %d", summary.Unassigned)
	}

	wantPrograms := []Count{{"Gold", 2}, {"Silver", 2}}
	if !reflect.DeepEqual(summary.Programs, wantPrograms) {
		t.Errorf("Programs = %v, want %v", summary.Programs, wantPrograms)
	}

	// duplicate tags on one asset count once
	wantTags := []Count{{"Renewal", 1}, {"Upsell", 1}}
	if !reflect.DeepEqual(summary.Tags, wantTags) {
		t.Errorf("Tags = %v, want %v", summary.Tags, wantTags)
	}
}

func TestStatsService_Empty(t *testing.T) {
	summary := NewStatsService().Summarize(nil)
	if summary.Total != 0 || len(summary.Programs) != 0 || len(summary.Tags) != 0 {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}
