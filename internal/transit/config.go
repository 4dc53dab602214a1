package transit

// Config holds the Stræto feed locations. GtfsSource can be a URL or a
// local file path; RidershipPath points at the passenger-flow CSV.
type Config struct {
	GtfsSource    string
	RidershipPath string
	Verbose       bool
}
