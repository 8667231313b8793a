package openrtb2

// AuctionType is the auction type of a bid request or deal. Values of 500 and
// above are exchange specific.
type AuctionType int64

const (
	AuctionTypeFirstPrice  AuctionType = 1
	AuctionTypeSecondPrice AuctionType = 2
	AuctionTypeFixedPrice  AuctionType = 3 // deals only
)

// 5.2 Banner Ad Types
type BannerAdType int64

const (
	BannerAdTypeXHTMLTextAd   BannerAdType = 1
	BannerAdTypeXHTMLBannerAd BannerAdType = 2
	BannerAdTypeJavaScriptAd  BannerAdType = 3
	BannerAdTypeIframe        BannerAdType = 4
)

// 5.3 Creative Attributes
type CreativeAttribute int64

const (
	CreativeAttributeAudioAutoPlay         CreativeAttribute = 1
	CreativeAttributeAudioUserInitiated    CreativeAttribute = 2
	CreativeAttributeExpandableAutomatic   CreativeAttribute = 3
	CreativeAttributeExpandableClick       CreativeAttribute = 4
	CreativeAttributeExpandableRollover    CreativeAttribute = 5
	CreativeAttributeInBannerVideoAutoPlay CreativeAttribute = 6
	CreativeAttributeInBannerVideoUser     CreativeAttribute = 7
	CreativeAttributePop                   CreativeAttribute = 8
	CreativeAttributeProvocative           CreativeAttribute = 9
	CreativeAttributeAnnoying              CreativeAttribute = 10
	CreativeAttributeSurveys               CreativeAttribute = 11
	CreativeAttributeTextOnly              CreativeAttribute = 12
	CreativeAttributeUserInteractive       CreativeAttribute = 13
	CreativeAttributeWindowsDialog         CreativeAttribute = 14
	CreativeAttributeHasAudioOnOffButton   CreativeAttribute = 15
	CreativeAttributeAdCanBeSkipped        CreativeAttribute = 16
	CreativeAttributeFlash                 CreativeAttribute = 17
)

// 5.4 Ad Position
type AdPosition int64

const (
	AdPositionUnknown    AdPosition = 0
	AdPositionAboveFold  AdPosition = 1
	AdPositionDeprecated AdPosition = 2 // may or may not be initially visible
	AdPositionBelowFold  AdPosition = 3
	AdPositionHeader     AdPosition = 4
	AdPositionFooter     AdPosition = 5
	AdPositionSidebar    AdPosition = 6
	AdPositionFullScreen AdPosition = 7
)

// 5.5 Expandable Direction
type ExpandableDirection int64

const (
	ExpandableDirectionLeft       ExpandableDirection = 1
	ExpandableDirectionRight      ExpandableDirection = 2
	ExpandableDirectionUp         ExpandableDirection = 3
	ExpandableDirectionDown       ExpandableDirection = 4
	ExpandableDirectionFullScreen ExpandableDirection = 5
)

// 5.6 API Frameworks
//
// The known values are those of openrtb.APIFramework in github.com/mxmCherry/openrtb.
type APIFramework int64

// 5.8 Protocols
//
// The known values are those of openrtb.Protocol in github.com/mxmCherry/openrtb.
type Protocol int64

// 5.9 Video Linearity
type VideoLinearity int64

const (
	VideoLinearityLinear    VideoLinearity = 1 // in-stream
	VideoLinearityNonLinear VideoLinearity = 2 // overlay
)

// 5.10 Playback Methods
//
// The known values are those of openrtb.PlaybackMethod in github.com/mxmCherry/openrtb.
type PlaybackMethod int64

// 5.12 Start Delay. Positive values are a literal offset in seconds.
type StartDelay int64

const (
	StartDelayPreRoll         StartDelay = 0
	StartDelayGenericMidRoll  StartDelay = -1
	StartDelayGenericPostRoll StartDelay = -2
)

// 5.13 Video Quality
type VideoQuality int64

const (
	VideoQualityUnknown      VideoQuality = 0
	VideoQualityProfessional VideoQuality = 1
	VideoQualityProsumer     VideoQuality = 2
	VideoQualityUGC          VideoQuality = 3
)

// 5.14 Video Companion Types
type CompanionType int64

const (
	CompanionTypeStatic CompanionType = 1
	CompanionTypeHTML   CompanionType = 2
	CompanionTypeIframe CompanionType = 3
)

// 5.15 Content Delivery Methods
type ContentDeliveryMethod int64

const (
	ContentDeliveryMethodStreaming   ContentDeliveryMethod = 1
	ContentDeliveryMethodProgressive ContentDeliveryMethod = 2
	ContentDeliveryMethodDownload    ContentDeliveryMethod = 3
)

// 5.16 Content Context
type ContentContext int64

const (
	ContentContextVideo       ContentContext = 1
	ContentContextGame        ContentContext = 2
	ContentContextMusic       ContentContext = 3
	ContentContextApplication ContentContext = 4
	ContentContextText        ContentContext = 5
	ContentContextOther       ContentContext = 6
	ContentContextUnknown     ContentContext = 7
)

// 5.19 IQG Media Ratings
type QAGMediaRating int64

const (
	QAGMediaRatingAllAudiences    QAGMediaRating = 1
	QAGMediaRatingEveryoneOver12  QAGMediaRating = 2
	QAGMediaRatingMatureAudiences QAGMediaRating = 3
)

// 5.20 Location Type
type LocationType int64

const (
	LocationTypeGPS          LocationType = 1
	LocationTypeIP           LocationType = 2
	LocationTypeUserProvided LocationType = 3
)

// 5.17 Device Type
//
// The known values are those of openrtb.DeviceType in github.com/mxmCherry/openrtb.
type DeviceType int64

// 5.18 Connection Type
type ConnectionType int64

const (
	ConnectionTypeUnknown         ConnectionType = 0
	ConnectionTypeEthernet        ConnectionType = 1
	ConnectionTypeWIFI            ConnectionType = 2
	ConnectionTypeCellularUnknown ConnectionType = 3
	ConnectionTypeCellular2G      ConnectionType = 4
	ConnectionTypeCellular3G      ConnectionType = 5
	ConnectionTypeCellular4G      ConnectionType = 6
)

// 5.24 No-Bid Reason Codes
type NoBidReason int64

const (
	NoBidReasonUnknownError         NoBidReason = 0
	NoBidReasonTechnicalError       NoBidReason = 1
	NoBidReasonInvalidRequest       NoBidReason = 2
	NoBidReasonKnownWebSpider       NoBidReason = 3
	NoBidReasonSuspectedNonHuman    NoBidReason = 4
	NoBidReasonCloudDataCenterProxy NoBidReason = 5
	NoBidReasonUnsupportedDevice    NoBidReason = 6
	NoBidReasonBlockedPublisher     NoBidReason = 7
	NoBidReasonUnmatchedUser        NoBidReason = 8
)
