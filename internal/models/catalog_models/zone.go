package catalog_models

// Zone is one of the six geographic sub-regions around the lodge. Keeping a
// day inside compatible zones keeps the route a plausible driving loop.
type Zone string

const (
	ZoneCentral    Zone = "central"
	ZoneNorth      Zone = "north"
	ZoneSouth      Zone = "south"
	ZoneOccidental Zone = "occidental"
	ZoneHealdsburg Zone = "healdsburg"
	ZoneCoast      Zone = "coast"
)

// zoneCompatibility lists, per zone, the zones that may be combined with it
// on the same day's route.
var zoneCompatibility = map[Zone][]Zone{
	ZoneCentral:    {ZoneCentral, ZoneNorth},
	ZoneNorth:      {ZoneCentral, ZoneNorth},
	ZoneSouth:      {ZoneSouth, ZoneOccidental},
	ZoneOccidental: {ZoneSouth, ZoneOccidental},
	ZoneHealdsburg: {ZoneHealdsburg, ZoneNorth},
	ZoneCoast:      {ZoneCoast, ZoneOccidental},
}

// returnRouteZones lists, per zone, the zones considered "on the way back" to
// the lodge. Used only for dinner placement.
var returnRouteZones = map[Zone][]Zone{
	ZoneCoast:      {ZoneCoast, ZoneOccidental, ZoneCentral},
	ZoneSouth:      {ZoneSouth, ZoneOccidental, ZoneCentral},
	ZoneOccidental: {ZoneOccidental, ZoneCentral},
	ZoneNorth:      {ZoneNorth, ZoneCentral},
	ZoneHealdsburg: {ZoneHealdsburg, ZoneNorth, ZoneCentral},
	ZoneCentral:    {ZoneCentral},
}

// CompatibleZones expands a route's zone list by unioning each zone's
// compatible-zone list.
func CompatibleZones(zones []Zone) map[Zone]bool {
	out := make(map[Zone]bool)
	for _, z := range zones {
		for _, c := range zoneCompatibility[z] {
			out[c] = true
		}
	}
	return out
}

// ReturnZones expands a route's zone list into the set of zones plausible on
// the drive home.
func ReturnZones(zones []Zone) map[Zone]bool {
	out := make(map[Zone]bool)
	for _, z := range zones {
		for _, r := range returnRouteZones[z] {
			out[r] = true
		}
	}
	return out
}

// driveTimes holds approximate minutes between zone pairs. Lookup is
// bidirectional; same-zone legs have no entry.
var driveTimes = map[[2]Zone]int{
	{ZoneCentral, ZoneNorth}:      10,
	{ZoneCentral, ZoneSouth}:      25,
	{ZoneCentral, ZoneOccidental}: 20,
	{ZoneCentral, ZoneHealdsburg}: 25,
	{ZoneCentral, ZoneCoast}:      35,
	{ZoneNorth, ZoneSouth}:        30,
	{ZoneNorth, ZoneOccidental}:   25,
	{ZoneNorth, ZoneHealdsburg}:   15,
	{ZoneNorth, ZoneCoast}:        40,
	{ZoneSouth, ZoneOccidental}:   15,
	{ZoneSouth, ZoneHealdsburg}:   35,
	{ZoneSouth, ZoneCoast}:        40,
	{ZoneOccidental, ZoneHealdsburg}: 30,
	{ZoneOccidental, ZoneCoast}:      25,
	{ZoneHealdsburg, ZoneCoast}:      50,
}

// EstimateDriveTime returns the approximate minutes between two zones. The
// second return is false for same-zone or unknown pairs.
func EstimateDriveTime(from, to Zone) (int, bool) {
	if from == "" || to == "" || from == to {
		return 0, false
	}
	if m, ok := driveTimes[[2]Zone{from, to}]; ok {
		return m, true
	}
	if m, ok := driveTimes[[2]Zone{to, from}]; ok {
		return m, true
	}
	return 0, false
}
