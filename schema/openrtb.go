package schema

import (
	"github.com/mxmCherry/openrtb"

	"github.com/prebid/openrtb-codec/openrtb2"
)

var (
	flag = OneOf(0, 1)

	auctionTypes = OneOf(Codes(openrtb2.AuctionTypeFirstPrice, openrtb2.AuctionTypeSecondPrice)...)
	dealAuctions = OneOf(Codes(openrtb2.AuctionTypeFirstPrice, openrtb2.AuctionTypeSecondPrice, openrtb2.AuctionTypeFixedPrice)...)

	bannerAdTypes        = Between(int64(openrtb2.BannerAdTypeXHTMLTextAd), int64(openrtb2.BannerAdTypeIframe))
	creativeAttributes   = Between(int64(openrtb2.CreativeAttributeAudioAutoPlay), int64(openrtb2.CreativeAttributeFlash))
	adPositions          = Between(int64(openrtb2.AdPositionUnknown), int64(openrtb2.AdPositionFullScreen))
	expandableDirections = Between(int64(openrtb2.ExpandableDirectionLeft), int64(openrtb2.ExpandableDirectionFullScreen))

	apiFrameworks = OneOf(Codes(
		openrtb.APIFrameworkVPAID10,
		openrtb.APIFrameworkVPAID20,
		openrtb.APIFrameworkMRAID1,
		openrtb.APIFrameworkORMMA,
		openrtb.APIFrameworkMRAID2,
		openrtb.APIFrameworkMRAID3,
	)...)
	protocols = OneOf(Codes(
		openrtb.ProtocolVAST10,
		openrtb.ProtocolVAST20,
		openrtb.ProtocolVAST30,
		openrtb.ProtocolVAST10Wrapper,
		openrtb.ProtocolVAST20Wrapper,
		openrtb.ProtocolVAST30Wrapper,
		openrtb.ProtocolVAST40,
		openrtb.ProtocolVAST40Wrapper,
		openrtb.ProtocolDAAST10,
		openrtb.ProtocolDAAST10Wrapper,
	)...)
	playbackMethods = OneOf(Codes(
		openrtb.PlaybackMethodPageLoadSoundOn,
		openrtb.PlaybackMethodPageLoadSoundOff,
		openrtb.PlaybackMethodClickSoundOn,
		openrtb.PlaybackMethodMouseOverSoundOn,
		openrtb.PlaybackMethodEnteringViewportSoundOn,
		openrtb.PlaybackMethodEnteringViewportSoundOff,
	)...)
	deviceTypes = OneOf(Codes(
		openrtb.DeviceTypeMobileTablet,
		openrtb.DeviceTypePersonalComputer,
		openrtb.DeviceTypeConnectedTV,
		openrtb.DeviceTypePhone,
		openrtb.DeviceTypeTablet,
		openrtb.DeviceTypeConnectedDevice,
		openrtb.DeviceTypeSetTopBox,
	)...)

	linearities     = OneOf(Codes(openrtb2.VideoLinearityLinear, openrtb2.VideoLinearityNonLinear)...)
	startDelays     = AtLeast(int64(openrtb2.StartDelayGenericPostRoll))
	maxExtended     = AtLeast(-1)
	companionTypes  = Between(int64(openrtb2.CompanionTypeStatic), int64(openrtb2.CompanionTypeIframe))
	deliveries      = Between(int64(openrtb2.ContentDeliveryMethodStreaming), int64(openrtb2.ContentDeliveryMethodDownload))
	videoQualities  = Between(int64(openrtb2.VideoQualityUnknown), int64(openrtb2.VideoQualityUGC))
	contexts        = Between(int64(openrtb2.ContentContextVideo), int64(openrtb2.ContentContextUnknown))
	qagRatings      = Between(int64(openrtb2.QAGMediaRatingAllAudiences), int64(openrtb2.QAGMediaRatingMatureAudiences))
	locationTypes   = Between(int64(openrtb2.LocationTypeGPS), int64(openrtb2.LocationTypeUserProvided))
	connectionTypes = Between(int64(openrtb2.ConnectionTypeUnknown), int64(openrtb2.ConnectionTypeCellular4G))
	noBidReasons    = Between(int64(openrtb2.NoBidReasonUnknownError), int64(openrtb2.NoBidReasonUnmatchedUser))
	genders         = OneOfStrings("M", "F", "O")
)

const defaultCurrency = "USD"

func openRTB() *Schema {
	s := &Schema{entities: make(map[EntityType]*Entity)}
	for _, e := range []*Entity{
		bidRequestEntity(),
		impEntity(),
		bannerEntity(),
		formatEntity(),
		videoEntity(),
		nativeEntity(),
		pmpEntity(),
		dealEntity(),
		siteEntity(),
		appEntity(),
		publisherEntity(),
		producerEntity(),
		contentEntity(),
		deviceEntity(),
		geoEntity(),
		userEntity(),
		dataEntity(),
		segmentEntity(),
		regsEntity(),
		bidResponseEntity(),
		seatBidEntity(),
		bidEntity(),
	} {
		s.entities[e.Type] = e
	}
	return s
}

func bidRequestEntity() *Entity {
	type T = openrtb2.BidRequest
	return newEntity(BidRequest, func() openrtb2.Extensible { return new(T) },
		String("id", Required, func(r *T) **string { return &r.ID }),
		Children("imp", Required, Imp, func(r *T) *[]openrtb2.Imp { return &r.Imp }, MinItems(1)),
		Child("site", Recommended, Site, func(r *T) **openrtb2.Site { return &r.Site }),
		Child("app", Recommended, App, func(r *T) **openrtb2.App { return &r.App }),
		Child("device", Recommended, Device, func(r *T) **openrtb2.Device { return &r.Device }),
		Child("user", Recommended, User, func(r *T) **openrtb2.User { return &r.User }),
		Enum("test", Optional, flag, func(r *T) **int64 { return &r.Test }, WithDefault(int64(0))),
		Enum("at", Optional, auctionTypes, func(r *T) **openrtb2.AuctionType { return &r.AT }, WithDefault(int64(openrtb2.AuctionTypeSecondPrice))),
		Int("tmax", Optional, func(r *T) **int64 { return &r.TMax }),
		Strings("wseat", Optional, func(r *T) *[]string { return &r.WSeat }),
		Strings("bseat", Optional, func(r *T) *[]string { return &r.BSeat }),
		Enum("allimps", Optional, flag, func(r *T) **int64 { return &r.AllImps }, WithDefault(int64(0))),
		Strings("cur", Optional, func(r *T) *[]string { return &r.Cur }),
		Strings("bcat", Optional, func(r *T) *[]string { return &r.BCat }),
		Strings("badv", Optional, func(r *T) *[]string { return &r.BAdv }),
		Strings("bapp", Optional, func(r *T) *[]string { return &r.BApp }),
		Child("regs", Optional, Regs, func(r *T) **openrtb2.Regs { return &r.Regs }),
	)
}

func impEntity() *Entity {
	type T = openrtb2.Imp
	return newEntity(Imp, func() openrtb2.Extensible { return new(T) },
		String("id", Required, func(i *T) **string { return &i.ID }),
		Child("banner", Optional, Banner, func(i *T) **openrtb2.Banner { return &i.Banner }),
		Child("video", Optional, Video, func(i *T) **openrtb2.Video { return &i.Video }),
		Child("native", Optional, Native, func(i *T) **openrtb2.Native { return &i.Native }),
		Child("pmp", Optional, PMP, func(i *T) **openrtb2.PMP { return &i.PMP }),
		String("displaymanager", Optional, func(i *T) **string { return &i.DisplayManager }),
		String("displaymanagerver", Optional, func(i *T) **string { return &i.DisplayManagerVer }),
		Enum("instl", Optional, flag, func(i *T) **int64 { return &i.Instl }, WithDefault(int64(0))),
		String("tagid", Optional, func(i *T) **string { return &i.TagID }),
		Float("bidfloor", Optional, func(i *T) **float64 { return &i.BidFloor }, WithDefault(float64(0))),
		String("bidfloorcur", Optional, func(i *T) **string { return &i.BidFloorCur }, WithDefault(defaultCurrency)),
		Enum("secure", Optional, flag, func(i *T) **int64 { return &i.Secure }),
		Strings("iframebuster", Optional, func(i *T) *[]string { return &i.IframeBuster }),
		Int("exp", Optional, func(i *T) **int64 { return &i.Exp }),
	)
}

func bannerEntity() *Entity {
	type T = openrtb2.Banner
	return newEntity(Banner, func() openrtb2.Extensible { return new(T) },
		Int("w", Recommended, func(b *T) **int64 { return &b.W }),
		Int("h", Recommended, func(b *T) **int64 { return &b.H }),
		Children("format", Optional, Format, func(b *T) *[]openrtb2.Format { return &b.Format }),
		Int("wmax", Optional, func(b *T) **int64 { return &b.WMax }),
		Int("hmax", Optional, func(b *T) **int64 { return &b.HMax }),
		Int("wmin", Optional, func(b *T) **int64 { return &b.WMin }),
		Int("hmin", Optional, func(b *T) **int64 { return &b.HMin }),
		String("id", Optional, func(b *T) **string { return &b.ID }),
		Enums("btype", Optional, bannerAdTypes, func(b *T) *[]openrtb2.BannerAdType { return &b.BType }),
		Enums("battr", Optional, creativeAttributes, func(b *T) *[]openrtb2.CreativeAttribute { return &b.BAttr }),
		Enum("pos", Optional, adPositions, func(b *T) **openrtb2.AdPosition { return &b.Pos }),
		Strings("mimes", Optional, func(b *T) *[]string { return &b.MIMEs }),
		Enum("topframe", Optional, flag, func(b *T) **int64 { return &b.TopFrame }, WithDefault(int64(1))),
		Enums("expdir", Optional, expandableDirections, func(b *T) *[]openrtb2.ExpandableDirection { return &b.ExpDir }),
		Enums("api", Optional, apiFrameworks, func(b *T) *[]openrtb2.APIFramework { return &b.API }),
	)
}

func formatEntity() *Entity {
	type T = openrtb2.Format
	return newEntity(Format, func() openrtb2.Extensible { return new(T) },
		Int("w", Optional, func(f *T) **int64 { return &f.W }),
		Int("h", Optional, func(f *T) **int64 { return &f.H }),
		Int("wratio", Optional, func(f *T) **int64 { return &f.WRatio }),
		Int("hratio", Optional, func(f *T) **int64 { return &f.HRatio }),
		Int("wmin", Optional, func(f *T) **int64 { return &f.WMin }),
	)
}

func videoEntity() *Entity {
	type T = openrtb2.Video
	return newEntity(Video, func() openrtb2.Extensible { return new(T) },
		Strings("mimes", Required, func(v *T) *[]string { return &v.MIMEs }, MinItems(1)),
		Int("minduration", Required, func(v *T) **int64 { return &v.MinDuration }),
		Int("maxduration", Required, func(v *T) **int64 { return &v.MaxDuration }),
		Enum("protocol", Optional, protocols, func(v *T) **openrtb2.Protocol { return &v.Protocol }),
		Enums("protocols", Optional, protocols, func(v *T) *[]openrtb2.Protocol { return &v.Protocols }),
		Int("w", Recommended, func(v *T) **int64 { return &v.W }),
		Int("h", Recommended, func(v *T) **int64 { return &v.H }),
		Enum("startdelay", Optional, startDelays, func(v *T) **openrtb2.StartDelay { return &v.StartDelay }),
		Enum("linearity", Optional, linearities, func(v *T) **openrtb2.VideoLinearity { return &v.Linearity }),
		Int("sequence", Optional, func(v *T) **int64 { return &v.Sequence }, WithDefault(int64(1))),
		Enums("battr", Optional, creativeAttributes, func(v *T) *[]openrtb2.CreativeAttribute { return &v.BAttr }),
		Enum("maxextended", Optional, maxExtended, func(v *T) **int64 { return &v.MaxExtended }),
		Int("minbitrate", Optional, func(v *T) **int64 { return &v.MinBitRate }),
		Int("maxbitrate", Optional, func(v *T) **int64 { return &v.MaxBitRate }),
		Enum("boxingallowed", Optional, flag, func(v *T) **int64 { return &v.BoxingAllowed }, WithDefault(int64(1))),
		Enums("playbackmethod", Optional, playbackMethods, func(v *T) *[]openrtb2.PlaybackMethod { return &v.PlaybackMethod }),
		Enums("delivery", Optional, deliveries, func(v *T) *[]openrtb2.ContentDeliveryMethod { return &v.Delivery }),
		Enum("pos", Optional, adPositions, func(v *T) **openrtb2.AdPosition { return &v.Pos }),
		Children("companionad", Optional, Banner, func(v *T) *[]openrtb2.Banner { return &v.CompanionAd }),
		Enums("api", Optional, apiFrameworks, func(v *T) *[]openrtb2.APIFramework { return &v.API }),
		Enums("companiontype", Optional, companionTypes, func(v *T) *[]openrtb2.CompanionType { return &v.CompanionType }),
	)
}

func nativeEntity() *Entity {
	type T = openrtb2.Native
	return newEntity(Native, func() openrtb2.Extensible { return new(T) },
		String("request", Required, func(n *T) **string { return &n.Request }),
		String("ver", Recommended, func(n *T) **string { return &n.Ver }),
		Enums("api", Optional, apiFrameworks, func(n *T) *[]openrtb2.APIFramework { return &n.API }),
		Enums("battr", Optional, creativeAttributes, func(n *T) *[]openrtb2.CreativeAttribute { return &n.BAttr }),
	)
}

func pmpEntity() *Entity {
	type T = openrtb2.PMP
	return newEntity(PMP, func() openrtb2.Extensible { return new(T) },
		Enum("private_auction", Optional, flag, func(p *T) **int64 { return &p.PrivateAuction }, WithDefault(int64(0))),
		Children("deals", Optional, Deal, func(p *T) *[]openrtb2.Deal { return &p.Deals }),
	)
}

func dealEntity() *Entity {
	type T = openrtb2.Deal
	return newEntity(Deal, func() openrtb2.Extensible { return new(T) },
		String("id", Required, func(d *T) **string { return &d.ID }),
		Float("bidfloor", Optional, func(d *T) **float64 { return &d.BidFloor }, WithDefault(float64(0))),
		String("bidfloorcur", Optional, func(d *T) **string { return &d.BidFloorCur }, WithDefault(defaultCurrency)),
		Enum("at", Optional, dealAuctions, func(d *T) **openrtb2.AuctionType { return &d.AT }),
		Strings("wseat", Optional, func(d *T) *[]string { return &d.WSeat }),
		Strings("wadomain", Optional, func(d *T) *[]string { return &d.WADomain }),
	)
}

func siteEntity() *Entity {
	type T = openrtb2.Site
	return newEntity(Site, func() openrtb2.Extensible { return new(T) },
		String("id", Recommended, func(s *T) **string { return &s.ID }),
		String("name", Optional, func(s *T) **string { return &s.Name }),
		String("domain", Optional, func(s *T) **string { return &s.Domain }),
		Strings("cat", Optional, func(s *T) *[]string { return &s.Cat }),
		Strings("sectioncat", Optional, func(s *T) *[]string { return &s.SectionCat }),
		Strings("pagecat", Optional, func(s *T) *[]string { return &s.PageCat }),
		String("page", Optional, func(s *T) **string { return &s.Page }),
		String("ref", Optional, func(s *T) **string { return &s.Ref }),
		String("search", Optional, func(s *T) **string { return &s.Search }),
		Enum("mobile", Optional, flag, func(s *T) **int64 { return &s.Mobile }),
		Enum("privacypolicy", Optional, flag, func(s *T) **int64 { return &s.PrivacyPolicy }),
		Child("publisher", Optional, Publisher, func(s *T) **openrtb2.Publisher { return &s.Publisher }),
		Child("content", Optional, Content, func(s *T) **openrtb2.Content { return &s.Content }),
		String("keywords", Optional, func(s *T) **string { return &s.Keywords }),
	)
}

func appEntity() *Entity {
	type T = openrtb2.App
	return newEntity(App, func() openrtb2.Extensible { return new(T) },
		String("id", Recommended, func(a *T) **string { return &a.ID }),
		String("name", Optional, func(a *T) **string { return &a.Name }),
		String("bundle", Optional, func(a *T) **string { return &a.Bundle }),
		String("domain", Optional, func(a *T) **string { return &a.Domain }),
		String("storeurl", Optional, func(a *T) **string { return &a.StoreURL }),
		Strings("cat", Optional, func(a *T) *[]string { return &a.Cat }),
		Strings("sectioncat", Optional, func(a *T) *[]string { return &a.SectionCat }),
		Strings("pagecat", Optional, func(a *T) *[]string { return &a.PageCat }),
		String("ver", Optional, func(a *T) **string { return &a.Ver }),
		Enum("privacypolicy", Optional, flag, func(a *T) **int64 { return &a.PrivacyPolicy }),
		Enum("paid", Optional, flag, func(a *T) **int64 { return &a.Paid }),
		Child("publisher", Optional, Publisher, func(a *T) **openrtb2.Publisher { return &a.Publisher }),
		Child("content", Optional, Content, func(a *T) **openrtb2.Content { return &a.Content }),
		String("keywords", Optional, func(a *T) **string { return &a.Keywords }),
	)
}

func publisherEntity() *Entity {
	type T = openrtb2.Publisher
	return newEntity(Publisher, func() openrtb2.Extensible { return new(T) },
		String("id", Optional, func(p *T) **string { return &p.ID }),
		String("name", Optional, func(p *T) **string { return &p.Name }),
		Strings("cat", Optional, func(p *T) *[]string { return &p.Cat }),
		String("domain", Optional, func(p *T) **string { return &p.Domain }),
	)
}

func producerEntity() *Entity {
	type T = openrtb2.Producer
	return newEntity(Producer, func() openrtb2.Extensible { return new(T) },
		String("id", Optional, func(p *T) **string { return &p.ID }),
		String("name", Optional, func(p *T) **string { return &p.Name }),
		Strings("cat", Optional, func(p *T) *[]string { return &p.Cat }),
		String("domain", Optional, func(p *T) **string { return &p.Domain }),
	)
}

func contentEntity() *Entity {
	type T = openrtb2.Content
	return newEntity(Content, func() openrtb2.Extensible { return new(T) },
		String("id", Optional, func(c *T) **string { return &c.ID }),
		Int("episode", Optional, func(c *T) **int64 { return &c.Episode }),
		String("title", Optional, func(c *T) **string { return &c.Title }),
		String("series", Optional, func(c *T) **string { return &c.Series }),
		String("season", Optional, func(c *T) **string { return &c.Season }),
		Child("producer", Optional, Producer, func(c *T) **openrtb2.Producer { return &c.Producer }),
		String("url", Optional, func(c *T) **string { return &c.URL }),
		Strings("cat", Optional, func(c *T) *[]string { return &c.Cat }),
		Enum("videoquality", Optional, videoQualities, func(c *T) **openrtb2.VideoQuality { return &c.VideoQuality }),
		Enum("context", Optional, contexts, func(c *T) **openrtb2.ContentContext { return &c.Context }),
		String("contentrating", Optional, func(c *T) **string { return &c.ContentRating }),
		String("userrating", Optional, func(c *T) **string { return &c.UserRating }),
		Enum("qagmediarating", Optional, qagRatings, func(c *T) **openrtb2.QAGMediaRating { return &c.QAGMediaRating }),
		String("keywords", Optional, func(c *T) **string { return &c.Keywords }),
		Enum("livestream", Optional, flag, func(c *T) **int64 { return &c.LiveStream }),
		Enum("sourcerelationship", Optional, flag, func(c *T) **int64 { return &c.SourceRelationship }),
		Int("len", Optional, func(c *T) **int64 { return &c.Len }),
		String("language", Optional, func(c *T) **string { return &c.Language }),
		Enum("embeddable", Optional, flag, func(c *T) **int64 { return &c.Embeddable }),
	)
}

func deviceEntity() *Entity {
	type T = openrtb2.Device
	return newEntity(Device, func() openrtb2.Extensible { return new(T) },
		String("ua", Recommended, func(d *T) **string { return &d.UA }),
		Child("geo", Recommended, Geo, func(d *T) **openrtb2.Geo { return &d.Geo }),
		Enum("dnt", Recommended, flag, func(d *T) **int64 { return &d.DNT }),
		Enum("lmt", Recommended, flag, func(d *T) **int64 { return &d.Lmt }),
		String("ip", Recommended, func(d *T) **string { return &d.IP }),
		String("ipv6", Optional, func(d *T) **string { return &d.IPv6 }),
		Enum("devicetype", Optional, deviceTypes, func(d *T) **openrtb2.DeviceType { return &d.DeviceType }),
		String("make", Optional, func(d *T) **string { return &d.Make }),
		String("model", Optional, func(d *T) **string { return &d.Model }),
		String("os", Optional, func(d *T) **string { return &d.OS }),
		String("osv", Optional, func(d *T) **string { return &d.OSV }),
		String("hwv", Optional, func(d *T) **string { return &d.HWV }),
		Int("h", Optional, func(d *T) **int64 { return &d.H }),
		Int("w", Optional, func(d *T) **int64 { return &d.W }),
		Int("ppi", Optional, func(d *T) **int64 { return &d.PPI }),
		Float("pxratio", Optional, func(d *T) **float64 { return &d.PxRatio }),
		Enum("js", Optional, flag, func(d *T) **int64 { return &d.JS }),
		String("flashver", Optional, func(d *T) **string { return &d.FlashVer }),
		String("language", Optional, func(d *T) **string { return &d.Language }),
		String("carrier", Optional, func(d *T) **string { return &d.Carrier }),
		Enum("connectiontype", Optional, connectionTypes, func(d *T) **openrtb2.ConnectionType { return &d.ConnectionType }),
		String("ifa", Optional, func(d *T) **string { return &d.IFA }),
		String("didsha1", Optional, func(d *T) **string { return &d.DIDSHA1 }),
		String("didmd5", Optional, func(d *T) **string { return &d.DIDMD5 }),
		String("dpidsha1", Optional, func(d *T) **string { return &d.DPIDSHA1 }),
		String("dpidmd5", Optional, func(d *T) **string { return &d.DPIDMD5 }),
		String("macsha1", Optional, func(d *T) **string { return &d.MACSHA1 }),
		String("macmd5", Optional, func(d *T) **string { return &d.MACMD5 }),
	)
}

func geoEntity() *Entity {
	type T = openrtb2.Geo
	return newEntity(Geo, func() openrtb2.Extensible { return new(T) },
		Float("lat", Optional, func(g *T) **float64 { return &g.Lat }),
		Float("lon", Optional, func(g *T) **float64 { return &g.Lon }),
		Enum("type", Optional, locationTypes, func(g *T) **openrtb2.LocationType { return &g.Type }),
		String("country", Optional, func(g *T) **string { return &g.Country }),
		String("region", Optional, func(g *T) **string { return &g.Region }),
		String("regionfips104", Optional, func(g *T) **string { return &g.RegionFIPS104 }),
		String("metro", Optional, func(g *T) **string { return &g.Metro }),
		String("city", Optional, func(g *T) **string { return &g.City }),
		String("zip", Optional, func(g *T) **string { return &g.ZIP }),
		Int("utcoffset", Optional, func(g *T) **int64 { return &g.UTCOffset }),
	)
}

func userEntity() *Entity {
	type T = openrtb2.User
	return newEntity(User, func() openrtb2.Extensible { return new(T) },
		String("id", Recommended, func(u *T) **string { return &u.ID }),
		String("buyeruid", Recommended, func(u *T) **string { return &u.BuyerUID }),
		Int("yob", Optional, func(u *T) **int64 { return &u.Yob }),
		StringEnum("gender", Optional, genders, func(u *T) **string { return &u.Gender }),
		String("keywords", Optional, func(u *T) **string { return &u.Keywords }),
		String("customdata", Optional, func(u *T) **string { return &u.CustomData }),
		Child("geo", Optional, Geo, func(u *T) **openrtb2.Geo { return &u.Geo }),
		Children("data", Optional, Data, func(u *T) *[]openrtb2.Data { return &u.Data }),
	)
}

func dataEntity() *Entity {
	type T = openrtb2.Data
	return newEntity(Data, func() openrtb2.Extensible { return new(T) },
		String("id", Optional, func(d *T) **string { return &d.ID }),
		String("name", Optional, func(d *T) **string { return &d.Name }),
		Children("segment", Optional, Segment, func(d *T) *[]openrtb2.Segment { return &d.Segment }),
	)
}

func segmentEntity() *Entity {
	type T = openrtb2.Segment
	return newEntity(Segment, func() openrtb2.Extensible { return new(T) },
		String("id", Optional, func(s *T) **string { return &s.ID }),
		String("name", Optional, func(s *T) **string { return &s.Name }),
		String("value", Optional, func(s *T) **string { return &s.Value }),
	)
}

func regsEntity() *Entity {
	type T = openrtb2.Regs
	return newEntity(Regs, func() openrtb2.Extensible { return new(T) },
		Enum("coppa", Optional, flag, func(r *T) **int64 { return &r.COPPA }),
	)
}

func bidResponseEntity() *Entity {
	type T = openrtb2.BidResponse
	return newEntity(BidResponse, func() openrtb2.Extensible { return new(T) },
		String("id", Required, func(r *T) **string { return &r.ID }),
		Children("seatbid", Optional, SeatBid, func(r *T) *[]openrtb2.SeatBid { return &r.SeatBid }),
		String("bidid", Optional, func(r *T) **string { return &r.BidID }),
		String("cur", Optional, func(r *T) **string { return &r.Cur }, WithDefault(defaultCurrency)),
		String("customdata", Optional, func(r *T) **string { return &r.CustomData }),
		Enum("nbr", Optional, noBidReasons, func(r *T) **openrtb2.NoBidReason { return &r.NBR }),
	)
}

func seatBidEntity() *Entity {
	type T = openrtb2.SeatBid
	return newEntity(SeatBid, func() openrtb2.Extensible { return new(T) },
		Children("bid", Required, Bid, func(s *T) *[]openrtb2.Bid { return &s.Bid }, MinItems(1)),
		String("seat", Optional, func(s *T) **string { return &s.Seat }),
		Enum("group", Optional, flag, func(s *T) **int64 { return &s.Group }, WithDefault(int64(0))),
	)
}

func bidEntity() *Entity {
	type T = openrtb2.Bid
	return newEntity(Bid, func() openrtb2.Extensible { return new(T) },
		String("id", Required, func(b *T) **string { return &b.ID }),
		String("impid", Required, func(b *T) **string { return &b.ImpID }),
		Float("price", Required, func(b *T) **float64 { return &b.Price }),
		String("adid", Optional, func(b *T) **string { return &b.AdID }),
		String("nurl", Optional, func(b *T) **string { return &b.NURL }),
		String("adm", Optional, func(b *T) **string { return &b.AdM }),
		Strings("adomain", Optional, func(b *T) *[]string { return &b.ADomain }),
		String("bundle", Optional, func(b *T) **string { return &b.Bundle }),
		String("iurl", Optional, func(b *T) **string { return &b.IURL }),
		String("cid", Optional, func(b *T) **string { return &b.CID }),
		String("crid", Optional, func(b *T) **string { return &b.CrID }),
		Strings("cat", Optional, func(b *T) *[]string { return &b.Cat }),
		Enums("attr", Optional, creativeAttributes, func(b *T) *[]openrtb2.CreativeAttribute { return &b.Attr }),
		String("dealid", Optional, func(b *T) **string { return &b.DealID }),
		Int("w", Optional, func(b *T) **int64 { return &b.W }),
		Int("h", Optional, func(b *T) **int64 { return &b.H }),
	)
}
