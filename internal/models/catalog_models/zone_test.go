package catalog_models

import "testing"

func TestCompatibleZones(t *testing.T) {
	tests := []struct {
		name  string
		zones []Zone
		want  []Zone
	}{
		{"central expands north", []Zone{ZoneCentral}, []Zone{ZoneCentral, ZoneNorth}},
		{"coast expands occidental", []Zone{ZoneCoast}, []Zone{ZoneCoast, ZoneOccidental}},
		{"healdsburg expands north", []Zone{ZoneHealdsburg}, []Zone{ZoneHealdsburg, ZoneNorth}},
		{"union of route zones", []Zone{ZoneCentral, ZoneSouth}, []Zone{ZoneCentral, ZoneNorth, ZoneSouth, ZoneOccidental}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompatibleZones(tt.zones)
			if len(got) != len(tt.want) {
				t.Fatalf("CompatibleZones(%v) = %v, want %v", tt.zones, got, tt.want)
			}
			for _, z := range tt.want {
				if !got[z] {
					t.Errorf("CompatibleZones(%v) missing %s", tt.zones, z)
				}
			}
		})
	}
}

func TestReturnZones(t *testing.T) {
	got := ReturnZones([]Zone{ZoneCoast})
	for _, z := range []Zone{ZoneCoast, ZoneOccidental, ZoneCentral} {
		if !got[z] {
			t.Errorf("ReturnZones(coast) missing %s", z)
		}
	}
	if got[ZoneHealdsburg] {
		t.Error("ReturnZones(coast) should not include healdsburg")
	}

	home := ReturnZones([]Zone{ZoneCentral})
	if len(home) != 1 || !home[ZoneCentral] {
		t.Errorf("ReturnZones(central) = %v, want only central", home)
	}
}

func TestEstimateDriveTime(t *testing.T) {
	if mins, ok := EstimateDriveTime(ZoneCentral, ZoneCoast); !ok || mins != 35 {
		t.Errorf("central->coast = %d, %v; want 35, true", mins, ok)
	}
	// Lookups are bidirectional.
	if mins, ok := EstimateDriveTime(ZoneCoast, ZoneCentral); !ok || mins != 35 {
		t.Errorf("coast->central = %d, %v; want 35, true", mins, ok)
	}
	if _, ok := EstimateDriveTime(ZoneCentral, ZoneCentral); ok {
		t.Error("same-zone legs should report no estimate")
	}
	if _, ok := EstimateDriveTime("", ZoneCoast); ok {
		t.Error("empty zone should report no estimate")
	}
}
