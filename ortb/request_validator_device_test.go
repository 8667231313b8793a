package ortb

import (
	"testing"
	"time"

	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/util/ptrutil"
	"github.com/prebid/openrtb-codec/util/timeutil"
)

func TestValidateDevice(t *testing.T) {
	tests := []struct {
		name   string
		device *openrtb2.Device
		want   []string
	}{
		{
			name: "valid",
			device: &openrtb2.Device{
				IP:       ptrutil.ToPtr("192.168.0.1"),
				IPv6:     ptrutil.ToPtr("2001:db8::68"),
				Language: ptrutil.ToPtr("en"),
			},
		},
		{
			name: "swapped_addresses",
			device: &openrtb2.Device{
				IP:   ptrutil.ToPtr("2001:db8::68"),
				IPv6: ptrutil.ToPtr("192.168.0.1"),
			},
			want: []string{"device.ip", "device.ipv6"},
		},
		{
			name:   "bad_language",
			device: &openrtb2.Device{Language: ptrutil.ToPtr("english")},
			want:   []string{"device.language"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertViolations(t, test.want, Check("device", test.device))
		})
	}
}

func TestValidateGeo(t *testing.T) {
	tests := []struct {
		name string
		geo  *openrtb2.Geo
		want []string
	}{
		{
			name: "bounds",
			geo:  &openrtb2.Geo{Lat: ptrutil.ToPtr(-90.0), Lon: ptrutil.ToPtr(180.0)},
		},
		{
			name: "out_of_bounds",
			geo:  &openrtb2.Geo{Lat: ptrutil.ToPtr(90.5), Lon: ptrutil.ToPtr(-181.0)},
			want: []string{"device.geo.lat", "device.geo.lon"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertViolations(t, test.want, Check("device.geo", test.geo))
		})
	}
}

func TestValidateUser(t *testing.T) {
	defer func(c timeutil.Time) { clock = c }(clock)
	clock = timeutil.FixedClock{At: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name string
		yob  *int64
		want []string
	}{
		{name: "absent"},
		{name: "plausible", yob: ptrutil.ToPtr[int64](1984)},
		{name: "this_year", yob: ptrutil.ToPtr[int64](2024)},
		{name: "future", yob: ptrutil.ToPtr[int64](2025), want: []string{"user.yob"}},
		{name: "too_old", yob: ptrutil.ToPtr[int64](1899), want: []string{"user.yob"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertViolations(t, test.want, Check("user", &openrtb2.User{Yob: test.yob}))
		})
	}
}

func TestValidateContent(t *testing.T) {
	assertViolations(t, nil, Check("site.content", &openrtb2.Content{Language: ptrutil.ToPtr("fr")}))
	assertViolations(t, []string{"site.content.language"}, Check("site.content", &openrtb2.Content{Language: ptrutil.ToPtr("fra")}))
	assertViolations(t, []string{"site.content.language"}, Check("site.content", &openrtb2.Content{Language: ptrutil.ToPtr("qq")}))
}
