package openrtb2

// 3.2.3 Object: Banner
//
// This object represents the most general type of impression. Although the term
// banner may have very specific meaning in other contexts, here it can be many
// things including a simple static image, an expandable ad unit, or even in-banner
// video. A Banner may also be used as a companion ad of a Video.
type Banner struct {
	W      *int64
	H      *int64
	Format []Format

	// WMax, HMax, WMin and HMin bound the size range. When a maximum is present, W
	// and H are advisory minimums.
	WMax *int64
	HMax *int64
	WMin *int64
	HMin *int64

	ID       *string
	BType    []BannerAdType
	BAttr    []CreativeAttribute
	Pos      *AdPosition
	MIMEs    []string
	TopFrame *int64
	ExpDir   []ExpandableDirection
	API      []APIFramework

	Extension
}

// 3.2.10 Object: Format
//
// This object represents an allowed size or Flex Ad parameters for a banner
// impression.
type Format struct {
	W      *int64
	H      *int64
	WRatio *int64
	HRatio *int64
	WMin   *int64

	Extension
}
