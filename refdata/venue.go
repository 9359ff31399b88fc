package refdata

// VenueDetails is one tribunal venue in the location directory
type VenueDetails struct {
	VenueID    string `json:"venueId"`
	VenueName  string `json:"venueName"`
	EpimsID    string `json:"epimsId"`
	RPCEpimsID string `json:"rpcEpimsId"`
	Postcode   string `json:"postcode"`
	Active     bool   `json:"active"`
}

// venues is the seeded venue directory. Real deployments load this from the
// location reference data service; the seed covers the venues exercised in
// tests and local runs.
var venues = []VenueDetails{
	{VenueID: "1183", VenueName: "Birmingham", EpimsID: "231596", RPCEpimsID: "815833", Postcode: "B16 6FR", Active: true},
	{VenueID: "1234", VenueName: "Coventry", EpimsID: "787030", RPCEpimsID: "815833", Postcode: "CV1 2SN", Active: true},
	{VenueID: "1001", VenueName: "Leeds", EpimsID: "455368", RPCEpimsID: "815834", Postcode: "LS1 2ED", Active: true},
	{VenueID: "1002", VenueName: "Bradford", EpimsID: "698118", RPCEpimsID: "815834", Postcode: "BD1 1JA", Active: true},
	{VenueID: "1090", VenueName: "Chester", EpimsID: "226511", RPCEpimsID: "815835", Postcode: "CH1 2AN", Active: true},
	{VenueID: "1091", VenueName: "Liverpool", EpimsID: "196538", RPCEpimsID: "815835", Postcode: "L2 5UZ", Active: true},
	{VenueID: "1160", VenueName: "Cardiff", EpimsID: "366559", RPCEpimsID: "815836", Postcode: "CF24 0AB", Active: true},
	{VenueID: "1270", VenueName: "Sutton", EpimsID: "37792", RPCEpimsID: "815837", Postcode: "SM1 1DA", Active: true},
	{VenueID: "1271", VenueName: "Croydon", EpimsID: "28837", RPCEpimsID: "815837", Postcode: "CR0 2RF", Active: false},
}

// multiLocationGroups maps an epims id to the extra epims ids that should be
// offered alongside it when a hearing can be listed at more than one venue.
var multiLocationGroups = map[string][]string{
	"231596": {"787030"}, // Birmingham lists with Coventry
	"226511": {"196538"}, // Chester lists with Liverpool
}
