package openrtb2

// 3.2.4 Object: Video
//
// This object represents an in-stream video impression. Many of the fields are
// non-essential for minimally viable transactions, but are included to offer fine
// control when needed.
type Video struct {
	MIMEs []string

	MinDuration *int64
	MaxDuration *int64

	// Protocol is the single supported protocol. It is superseded by Protocols;
	// at least one of the two must be present.
	Protocol  *Protocol
	Protocols []Protocol

	W *int64
	H *int64

	StartDelay *StartDelay
	Linearity  *VideoLinearity
	Sequence   *int64

	BAttr []CreativeAttribute

	// MaxExtended is the maximum extended ad duration. Absent or 0 means extension
	// is not allowed, -1 means unlimited, and a positive value is the number of
	// seconds of extension beyond MaxDuration.
	MaxExtended *int64

	MinBitRate     *int64
	MaxBitRate     *int64
	BoxingAllowed  *int64
	PlaybackMethod []PlaybackMethod
	Delivery       []ContentDeliveryMethod
	Pos            *AdPosition
	CompanionAd    []Banner
	API            []APIFramework
	CompanionType  []CompanionType

	Extension
}
