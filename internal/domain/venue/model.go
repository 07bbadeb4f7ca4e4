package venue

// Venue is a stadium discovered opportunistically from team and roster
// documents; the feed has no dedicated venue endpoint.
type Venue struct {
	ID        string
	Name      *string
	City      *string
	State     *string
	Country   *string
	Zip       *string
	Address   *string
	Capacity  *int
	Surface   *string
	RoofType  *string
	Latitude  *float64
	Longitude *float64
}
