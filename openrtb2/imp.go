package openrtb2

// 3.2.2 Object: Imp
//
// This object describes an ad placement or impression being auctioned. A single
// bid request can include multiple Imp objects.
type Imp struct {
	// ID is unique within the context of the bid request.
	ID     *string
	Banner *Banner
	Video  *Video
	Native *Native
	PMP    *PMP

	DisplayManager    *string
	DisplayManagerVer *string

	// Instl is 1 if the ad is interstitial or full screen.
	Instl *int64
	TagID *string

	// BidFloor is the minimum bid for this impression, in CPM.
	BidFloor    *float64
	BidFloorCur *string

	// Secure flags whether the impression requires secure HTTPS URL creative assets
	// and markup. Absent means unknown, which is why there is no default.
	Secure       *int64
	IframeBuster []string

	// Exp is the advisory number of seconds that may elapse between the auction
	// and the actual impression.
	Exp *int64

	Extension
}
