package refdata

import "tribunal_hearings_go/models"

// rpcs is the regional processing center directory, keyed by the venue
// postcode areas each center serves
var rpcs = []models.RegionalProcessingCenter{
	{Name: "SSCS Birmingham", Postcode: "B16 6FR", EpimsID: "815833", HearingRoute: models.HearingRouteListAssist},
	{Name: "SSCS Leeds", Postcode: "LS1 2ED", EpimsID: "815834", HearingRoute: models.HearingRouteListAssist},
	{Name: "SSCS Liverpool", Postcode: "L2 5UZ", EpimsID: "815835", HearingRoute: models.HearingRouteListAssist},
	{Name: "SSCS Cardiff", Postcode: "CF24 0AB", EpimsID: "815836", HearingRoute: models.HearingRouteListAssist},
	{Name: "SSCS Sutton", Postcode: "SM1 1DA", EpimsID: "815837", HearingRoute: models.HearingRouteGaps},
	{Name: "IBCA Arnhem House", Postcode: "LE1 6NR", EpimsID: "815838", HearingRoute: models.HearingRouteListAssist},
}

// ibcRPCName is the single processing center handling infected blood
// compensation cases regardless of the appellant's postcode
const ibcRPCName = "IBCA Arnhem House"

// postcodeAreaToRPC routes a postcode's outward area to its center
var postcodeAreaToRPC = map[string]string{
	"B":  "SSCS Birmingham",
	"CV": "SSCS Birmingham",
	"LS": "SSCS Leeds",
	"BD": "SSCS Leeds",
	"CH": "SSCS Liverpool",
	"L":  "SSCS Liverpool",
	"CF": "SSCS Cardiff",
	"SM": "SSCS Sutton",
	"CR": "SSCS Sutton",
}
