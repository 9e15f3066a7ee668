package schedule

import "testing"

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		input string
		want  []RoomMention
	}{
		{"THH101", []RoomMention{{Code: "THH101", Prefix: "THH"}}},
		{"SCA214 SCAB105", []RoomMention{
			{Code: "SCA214", Prefix: "SCA"},
			{Code: "SCAB105", Prefix: "SCAB"},
		}},
		{"KAMB21/23", []RoomMention{{Code: "KAMB21", Prefix: "KAMB"}}},
		{"GFS106B", []RoomMention{{Code: "GFS106B", Prefix: "GFS"}}},
		{"ONLINE", nil},
		{"", nil},
	}

	for _, test := range tests {
		got := SplitLocation(test.input)
		if len(got) != len(test.want) {
			t.Errorf("SplitLocation(%q) = %v, want %v", test.input, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("SplitLocation(%q)[%d] = %v, want %v", test.input, i, got[i], test.want[i])
			}
		}
	}
}

func TestResolveBuildingPrefix(t *testing.T) {
	known := map[string]string{
		"THH": "Town Hall",
		"ABC": "Some Building",
		"SCA": "Cinema Arts",
	}

	tests := []struct {
		room  string
		want  string
		known bool
	}{
		{"THH101", "THH", true},
		{"ABC101", "ABC", true},
		{"THHLL101", "THH", true},  // LL annex marker stripped
		{"SCAB105", "SCA", true},   // B basement marker stripped
		{"THHG205", "THH", true},   // G marker stripped
		{"ZZZ999", "ZZZ", false},   // unresolved, kept under raw prefix
		{"not a room", "", false},
	}

	for _, test := range tests {
		got, ok := ResolveBuildingPrefix(test.room, known)
		if got != test.want || ok != test.known {
			t.Errorf("ResolveBuildingPrefix(%q) = (%q, %v), want (%q, %v)",
				test.room, got, ok, test.want, test.known)
		}
	}
}
