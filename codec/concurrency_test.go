package codec

import (
	"fmt"
	"testing"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/openrtb-codec/metrics"
	"github.com/prebid/openrtb-codec/schema"
)

func TestSharedCodecAcrossGoroutines(t *testing.T) {
	engine := metrics.NewMetrics(gometrics.NewRegistry())
	dec := NewDecoder(WithMetrics(engine))
	enc := NewEncoder(WithMetrics(engine))

	input := []byte(`{"id":"r","imp":[{"id":"1","banner":{"w":300,"h":250,"ext":{"k":[1,2]}},"x":true}],"at":501,"cur":["USD"]}`)
	first, _, err := dec.Decode(schema.BidRequest, input)
	require.NoError(t, err)
	want, err := enc.Encode(first)
	require.NoError(t, err)

	const workers, rounds = 8, 50
	t.Run("workers", func(t *testing.T) {
		for w := 0; w < workers; w++ {
			t.Run(fmt.Sprintf("worker_%d", w), func(t *testing.T) {
				t.Parallel()
				for i := 0; i < rounds; i++ {
					decoded, findings, err := dec.Decode(schema.BidRequest, input)
					require.NoError(t, err)
					require.Len(t, findings, 1)

					out, err := enc.Encode(decoded)
					require.NoError(t, err)
					assert.Equal(t, string(want), string(out))
				}
			})
		}
	})

	decodes := engine.OperationMeter[metrics.OperationDecode][metrics.StatusOK].Count()
	assert.Equal(t, int64(workers*rounds+1), decodes)
}
