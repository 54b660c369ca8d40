package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(RotatorTicks)
	RotatorTicks.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(RotatorTicks))
}

func TestNewsletterSignups_TracksOutcomesSeparately(t *testing.T) {
	accepted := NewsletterSignups.WithLabelValues("accepted")
	duplicate := NewsletterSignups.WithLabelValues("duplicate")

	beforeAccepted := testutil.ToFloat64(accepted)
	beforeDuplicate := testutil.ToFloat64(duplicate)

	accepted.Inc()

	assert.Equal(t, beforeAccepted+1, testutil.ToFloat64(accepted))
	assert.Equal(t, beforeDuplicate, testutil.ToFloat64(duplicate))
}

func TestSlideFeedClients_GaugeMoves(t *testing.T) {
	before := testutil.ToFloat64(SlideFeedClients)
	SlideFeedClients.Inc()
	SlideFeedClients.Dec()
	assert.Equal(t, before, testutil.ToFloat64(SlideFeedClients))
}
