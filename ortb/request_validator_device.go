package ortb

import (
	"github.com/asaskevich/govalidator"
	"golang.org/x/text/language"

	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/util/timeutil"
)

// clock is swapped by tests that depend on the current year.
var clock timeutil.Time = timeutil.RealTime{}

const minBirthYear = 1900

func validateDevice(path string, d *openrtb2.Device) []*errortypes.Finding {
	var findings []*errortypes.Finding

	if d.IP != nil && !govalidator.IsIPv4(*d.IP) {
		findings = append(findings, violation(join(path, "ip"), "%q is not an IPv4 address", *d.IP))
	}
	if d.IPv6 != nil && !govalidator.IsIPv6(*d.IPv6) {
		findings = append(findings, violation(join(path, "ipv6"), "%q is not an IPv6 address", *d.IPv6))
	}
	if d.Language != nil && !validLanguage(*d.Language) {
		findings = append(findings, violation(join(path, "language"), "%q is not an ISO-639-1 language code", *d.Language))
	}

	return findings
}

func validateGeo(path string, g *openrtb2.Geo) []*errortypes.Finding {
	var findings []*errortypes.Finding

	if g.Lat != nil && (*g.Lat < -90 || *g.Lat > 90) {
		findings = append(findings, violation(join(path, "lat"), "lat %v is outside of [-90, 90]", *g.Lat))
	}
	if g.Lon != nil && (*g.Lon < -180 || *g.Lon > 180) {
		findings = append(findings, violation(join(path, "lon"), "lon %v is outside of [-180, 180]", *g.Lon))
	}

	return findings
}

func validateUser(path string, u *openrtb2.User) []*errortypes.Finding {
	if u.Yob == nil {
		return nil
	}
	if year := int64(clock.Now().Year()); *u.Yob > year || *u.Yob < minBirthYear {
		return []*errortypes.Finding{violation(join(path, "yob"), "yob %d is not a plausible year of birth", *u.Yob)}
	}
	return nil
}

func validateContent(path string, c *openrtb2.Content) []*errortypes.Finding {
	if c.Language != nil && !validLanguage(*c.Language) {
		return []*errortypes.Finding{violation(join(path, "language"), "%q is not an ISO-639-1 language code", *c.Language)}
	}
	return nil
}

// validLanguage reports whether code is a two letter ISO-639-1 code.
func validLanguage(code string) bool {
	if len(code) != 2 {
		return false
	}
	base, err := language.ParseBase(code)
	if err != nil {
		return false
	}
	iso3 := base.ISO3()
	return iso3 != "" && iso3 != "und"
}
