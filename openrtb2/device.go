package openrtb2

// 3.2.11 Object: Device
//
// This object provides information pertaining to the device through which the
// user is interacting.
type Device struct {
	UA             *string
	Geo            *Geo
	DNT            *int64
	Lmt            *int64
	IP             *string
	IPv6           *string
	DeviceType     *DeviceType
	Make           *string
	Model          *string
	OS             *string
	OSV            *string
	HWV            *string
	H              *int64
	W              *int64
	PPI            *int64
	PxRatio        *float64
	JS             *int64
	FlashVer       *string
	Language       *string
	Carrier        *string
	ConnectionType *ConnectionType
	IFA            *string
	DIDSHA1        *string
	DIDMD5         *string
	DPIDSHA1       *string
	DPIDMD5        *string
	MACSHA1        *string
	MACMD5         *string

	Extension
}

// 3.2.12 Object: Geo
//
// This object encapsulates various methods for specifying a geographic location.
type Geo struct {
	Lat           *float64
	Lon           *float64
	Type          *LocationType
	Country       *string
	Region        *string
	RegionFIPS104 *string
	Metro         *string
	City          *string
	ZIP           *string
	UTCOffset     *int64

	Extension
}
