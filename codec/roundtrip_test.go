package codec

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"

	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/schema"
	"github.com/prebid/openrtb-codec/util/jsonutil"
	"github.com/prebid/openrtb-codec/util/ptrutil"
)

func fullRequest() *openrtb2.BidRequest {
	return &openrtb2.BidRequest{
		ID: pointer.String("req-1"),
		Imp: []openrtb2.Imp{
			{
				ID: pointer.String("1"),
				Banner: &openrtb2.Banner{
					W:      pointer.Int64(300),
					H:      pointer.Int64(250),
					Format: []openrtb2.Format{{W: pointer.Int64(300), H: pointer.Int64(250)}, {W: pointer.Int64(320), H: pointer.Int64(50)}},
					BType:  []openrtb2.BannerAdType{openrtb2.BannerAdTypeIframe},
					BAttr:  []openrtb2.CreativeAttribute{openrtb2.CreativeAttributePop, 99},
					Pos:    ptrutil.ToPtr(openrtb2.AdPositionAboveFold),
					MIMEs:  []string{"image/png"},
					ExpDir: []openrtb2.ExpandableDirection{openrtb2.ExpandableDirectionUp},
					API:    []openrtb2.APIFramework{3, 5},
					Extension: openrtb2.Extension{
						Ext: json.RawMessage(`{"vendor":{"sizes":[[1,2]]}}`),
					},
				},
				PMP: &openrtb2.PMP{
					PrivateAuction: pointer.Int64(1),
					Deals: []openrtb2.Deal{{
						ID:          pointer.String("deal-1"),
						BidFloor:    pointer.Float64(1.25),
						BidFloorCur: pointer.String("EUR"),
						AT:          ptrutil.ToPtr(openrtb2.AuctionTypeFixedPrice),
						WSeat:       []string{"seat-a"},
					}},
				},
				TagID:       pointer.String("tag \"one\""),
				BidFloor:    pointer.Float64(0.0000001),
				BidFloorCur: pointer.String("USD"),
				Secure:      pointer.Int64(1),
				Exp:         pointer.Int64(300),
				Extension: openrtb2.Extension{
					Unknown: map[string]json.RawMessage{"metric": json.RawMessage(`[{"type":"viewability","value":0.8}]`)},
				},
			},
			{
				ID: pointer.String("2"),
				Video: &openrtb2.Video{
					MIMEs:          []string{"video/mp4"},
					MinDuration:    pointer.Int64(5),
					MaxDuration:    pointer.Int64(30),
					Protocols:      []openrtb2.Protocol{2, 3},
					W:              pointer.Int64(640),
					H:              pointer.Int64(480),
					StartDelay:     ptrutil.ToPtr(openrtb2.StartDelay(-1)),
					Sequence:       pointer.Int64(1),
					MaxExtended:    pointer.Int64(-1),
					MinBitRate:     pointer.Int64(300),
					MaxBitRate:     pointer.Int64(1500),
					BoxingAllowed:  pointer.Int64(0),
					PlaybackMethod: []openrtb2.PlaybackMethod{1},
					Pos:            ptrutil.ToPtr(openrtb2.AdPositionFullScreen),
					CompanionAd:    []openrtb2.Banner{{ID: pointer.String("c1"), W: pointer.Int64(300), H: pointer.Int64(60)}},
				},
				Native: &openrtb2.Native{
					Request: pointer.String(`{"native":{"assets":[]}}`),
					Ver:     pointer.String("1.2"),
				},
			},
		},
		Site: &openrtb2.Site{
			ID:        pointer.String("site-1"),
			Domain:    pointer.String("example.com"),
			Cat:       []string{"IAB1"},
			Page:      pointer.String("https://example.com/a?b=c&d=e"),
			Mobile:    pointer.Int64(0),
			Publisher: &openrtb2.Publisher{ID: pointer.String("pub-1"), Extension: openrtb2.Extension{Ext: json.RawMessage(`{"tier":2}`)}},
			Content: &openrtb2.Content{
				Title:      pointer.String("Café ☕"),
				Producer:   &openrtb2.Producer{Name: pointer.String("studio")},
				LiveStream: pointer.Int64(1),
				Language:   pointer.String("fr"),
			},
		},
		Device: &openrtb2.Device{
			UA: pointer.String("Mozilla/5.0"),
			Geo: &openrtb2.Geo{
				Lat:       pointer.Float64(48.8566),
				Lon:       pointer.Float64(2.3522),
				Type:      ptrutil.ToPtr(openrtb2.LocationType(2)),
				Country:   pointer.String("FRA"),
				UTCOffset: pointer.Int64(60),
			},
			DNT:            pointer.Int64(0),
			IP:             pointer.String("192.0.2.1"),
			DeviceType:     ptrutil.ToPtr(openrtb2.DeviceType(4)),
			PxRatio:        pointer.Float64(2),
			Language:       pointer.String("fr"),
			ConnectionType: ptrutil.ToPtr(openrtb2.ConnectionType(2)),
		},
		User: &openrtb2.User{
			ID:     pointer.String("u-1"),
			Yob:    pointer.Int64(1984),
			Gender: pointer.String("O"),
			Data: []openrtb2.Data{{
				Name:    pointer.String("dmp"),
				Segment: []openrtb2.Segment{{ID: pointer.String("s1"), Value: pointer.String("x")}},
			}},
			Extension: openrtb2.Extension{Ext: json.RawMessage(`{"consent":"BOJ8RZsOJ8RZsABAB8AAAAAZ+A=="}`)},
		},
		Test:    pointer.Int64(1),
		AT:      ptrutil.ToPtr(openrtb2.AuctionType(501)),
		TMax:    pointer.Int64(120),
		WSeat:   []string{"seat-a", "seat-b"},
		AllImps: pointer.Int64(0),
		Cur:     []string{"USD", "EUR"},
		BCat:    []string{},
		BAdv:    []string{"blocked.example"},
		Regs:    &openrtb2.Regs{COPPA: pointer.Int64(1)},
		Extension: openrtb2.Extension{
			Ext: json.RawMessage(`{"prebid":{"debug":true}}`),
			Unknown: map[string]json.RawMessage{
				"source": json.RawMessage(`{"fd":1,"tid":"t"}`),
				"bapp":   json.RawMessage(`"not-an-array"`),
			},
		},
	}
}

func fullResponse() *openrtb2.BidResponse {
	return &openrtb2.BidResponse{
		ID: pointer.String("req-1"),
		SeatBid: []openrtb2.SeatBid{{
			Seat:  pointer.String("seat-a"),
			Group: pointer.Int64(0),
			Bid: []openrtb2.Bid{{
				ID:      pointer.String("b1"),
				ImpID:   pointer.String("1"),
				Price:   pointer.Float64(2.5),
				AdM:     pointer.String("<script>alert('x')</script> "),
				ADomain: []string{"advertiser.example"},
				Attr:    []openrtb2.CreativeAttribute{1},
				DealID:  pointer.String("deal-1"),
				W:       pointer.Int64(300),
				H:       pointer.Int64(250),
				Extension: openrtb2.Extension{
					Ext: json.RawMessage(`{"prebid":{"type":"banner"}}`),
				},
			}},
		}},
		Cur: pointer.String("EUR"),
		NBR: ptrutil.ToPtr(openrtb2.NoBidReason(0)),
	}
}

func TestRoundTripObjects(t *testing.T) {
	testCases := []struct {
		description string
		entity      schema.EntityType
		given       openrtb2.Extensible
	}{
		{description: "request", entity: schema.BidRequest, given: fullRequest()},
		{description: "response", entity: schema.BidResponse, given: fullResponse()},
		{description: "minimal bid", entity: schema.Bid, given: &openrtb2.Bid{ID: pointer.String("b1"), ImpID: pointer.String("1"), Price: pointer.Float64(2.5)}},
	}

	enc := NewEncoder()
	dec := NewDecoder(WithoutDefaults())
	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			data, err := enc.Encode(test.given)
			require.NoError(t, err)

			decoded, _, err := dec.Decode(test.entity, data)
			require.NoError(t, err)
			assert.Equal(t, test.given, decoded)

			again, err := enc.Encode(decoded)
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
		})
	}
}

func TestRoundTripDocuments(t *testing.T) {
	testCases := []struct {
		description string
		entity      schema.EntityType
		input       string
	}{
		{
			description: "extensions at every depth",
			entity:      schema.BidRequest,
			input: `{"id":"r","imp":[{"id":"1","banner":{"w":1,"h":1,"format":[{"w":1,"h":1,"ext":{"f":true}}],"ext":{"b":[1,{"c":null}]}},"ext":{"i":"x"}}],
				"device":{"geo":{"lat":1.5,"ext":{"g":1}},"ext":{"d":{}}},"user":{"data":[{"segment":[{"id":"s","ext":{"s":2}}]}]},"ext":{"r":1}}`,
		},
		{
			description: "unknown attributes at every depth",
			entity:      schema.BidRequest,
			input:       `{"id":"r","imp":[{"id":"1","native":{"request":"{}","x_native":[1]},"x_imp":"a"}],"source":{"ext":{"schain":{}}},"x_root":null}`,
		},
		{
			description: "values of the wrong type",
			entity:      schema.BidRequest,
			input:       `{"id":"r","imp":[{"id":"1","banner":{"w":"300","h":null,"format":{}}}],"tmax":true,"wseat":["a",1],"device":"phone"}`,
		},
		{
			description: "non-object array elements",
			entity:      schema.BidRequest,
			input:       `{"id":"r","imp":["x",{"id":"1","banner":{"w":1,"h":1}}],"user":{"data":[{"id":"d"},7]}}`,
		},
		{
			description: "unknown enum values",
			entity:      schema.BidRequest,
			input:       `{"id":"r","imp":[{"id":"1","banner":{"w":1,"h":1,"pos":42,"api":[1,600]}}],"at":501}`,
		},
		{
			description: "missing required attributes",
			entity:      schema.BidResponse,
			input:       `{"seatbid":[{"bid":[{"adm":"<b>&</b>"}]}],"cur":"USD"}`,
		},
		{
			description: "exponent numbers",
			entity:      schema.Geo,
			input:       `{"lat":1e-7,"lon":-1.5E2}`,
		},
	}

	enc := NewEncoder()
	dec := NewDecoder(WithoutDefaults())
	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			decoded, _, err := dec.Decode(test.entity, []byte(test.input))
			require.NoError(t, err)

			out, err := enc.Encode(decoded)
			require.NoError(t, err)

			if !jsonpatch.Equal([]byte(test.input), out) {
				diff, _ := jsonutil.Diff([]byte(test.input), out)
				t.Errorf("round trip changed the document:\n%s", diff)
			}
		})
	}
}

func TestRoundTripWithDefaults(t *testing.T) {
	req, findings, err := DecodeBidRequest([]byte(`{"id":"abc","imp":[{"id":"1","banner":{"w":300,"h":250}}]}`))
	require.NoError(t, err)
	require.Empty(t, findings)

	out, err := Encode(req)
	require.NoError(t, err)

	again, findings, err := DecodeBidRequest(out)
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.Equal(t, req, again)
}
