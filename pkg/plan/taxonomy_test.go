package plan

import "testing"

func TestSimpleRoomType(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"known", []string{"Kitchen"}, "Kitchen"},
		{"known with modifier", []string{"Bath", "Sauna"}, "Bath"},
		{"unknown", []string{"Vestibule"}, "Other"},
		{"untagged", nil, "Undefined"},
		{"literal undefined", []string{"Undefined"}, "Undefined"},
		{"outdoor", []string{"Outdoor"}, "Outdoor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := simpleRoomType(tt.tags); got != tt.want {
				t.Errorf("simpleRoomType(%v) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}

func TestSimpleFixtureType(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"plain", []string{"Sink"}, "Sink"},
		{"prefix stripped", []string{"CornerSink"}, "Sink"},
		{"suffix stripped", []string{"SinkLeft"}, "Sink"},
		{"double prefix name", []string{"DoubleSink"}, "Sink"},
		{"prefix and suffix", []string{"DoubleSinkRight"}, "Sink"},
		{"round suffix", []string{"SinkRoundLeft"}, "Sink"},
		{"numeric suffix", []string{"Toilet2"}, "Toilet"},
		{"gas stove", []string{"GasStove"}, "Stove"},
		{"integrated stove", []string{"IntegratedStove"}, "Stove"},
		{"sauna bench high", []string{"SaunaBenchHigh"}, "SaunaBench"},
		{"appliance defers to second tag", []string{"ElectricalAppliance", "Refrigerator"}, "Refrigerator"},
		{"appliance alone", []string{"ElectricalAppliance"}, "ElectricalAppliance"},
		{"unknown", []string{"Piano"}, "Other"},
		{"unknown after stripping", []string{"CornerPiano"}, "Other"},
		{"untagged", nil, "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := simpleFixtureType(tt.tags); got != tt.want {
				t.Errorf("simpleFixtureType(%v) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}
