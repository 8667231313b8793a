package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"

	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/openrtb2"
)

func TestFindings(t *testing.T) {
	missing := errortypes.NewMissingRequired("id", "required BidRequest \"id\" is missing")
	enum := errortypes.NewUnknownEnumValue("at", "501 is not one of {1, 2}")
	mismatch := errortypes.NewTypeMismatch("imp[0].id", "expected string, got number 1", true)
	findings := Findings{missing, enum, mismatch}

	assert.True(t, findings.HasErrors())
	assert.Equal(t, Findings{missing, mismatch}, findings.Errors())
	assert.Equal(t, Findings{enum}, findings.Warnings())
	assert.Equal(t, Findings{mismatch}, findings.OfKind(errortypes.TypeMismatch))
	assert.Equal(t, []string{"id", "at", "imp[0].id"}, findings.Paths())

	err := findings.Err()
	var agg errortypes.AggregateErrors
	assert.True(t, errors.As(err, &agg))
	assert.Len(t, agg.Errors, 2)
	assert.ErrorIs(t, err, mismatch)
}

func TestFindingsWithoutErrors(t *testing.T) {
	findings := Findings{errortypes.NewSemanticViolation("", "site and app")}

	assert.False(t, findings.HasErrors())
	assert.Nil(t, findings.Errors())
	assert.NoError(t, findings.Err())

	var empty Findings
	assert.False(t, empty.HasErrors())
	assert.NoError(t, empty.Err())
	assert.Empty(t, empty.Paths())
}

func TestValidateResponse(t *testing.T) {
	req := &openrtb2.BidRequest{
		ID:  pointer.String("r"),
		Imp: []openrtb2.Imp{{ID: pointer.String("1")}},
	}

	testCases := []struct {
		description string
		resp        *openrtb2.BidResponse
		wantPaths   []string
	}{
		{
			description: "matching",
			resp: &openrtb2.BidResponse{
				ID:      pointer.String("r"),
				SeatBid: []openrtb2.SeatBid{{Bid: []openrtb2.Bid{{ID: pointer.String("b"), ImpID: pointer.String("1"), Price: pointer.Float64(1)}}}},
			},
		},
		{
			description: "unknown impression",
			resp: &openrtb2.BidResponse{
				ID:      pointer.String("r"),
				SeatBid: []openrtb2.SeatBid{{Bid: []openrtb2.Bid{{ID: pointer.String("b"), ImpID: pointer.String("9"), Price: pointer.Float64(1)}}}},
			},
			wantPaths: []string{"seatbid[0].bid[0].impid"},
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			findings := ValidateResponse(req, test.resp)
			assert.Equal(t, test.wantPaths, findings.Paths())
			for _, f := range findings {
				assert.Equal(t, errortypes.SemanticViolation, f.Kind)
			}
		})
	}
}
