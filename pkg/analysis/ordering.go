package analysis

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"

	"github.com/beaconlabs/att-stats/pkg/slotdata"
)

// OrderingStats describes whether a block's per-attestation reward totals are
// monotonically non-increasing, a fingerprint for the implementation that
// built the block. The strict predicate requires each total >= the next; the
// lenient predicate additionally accepts any pair with a zero on either side,
// so zero-reward attestations are not disqualifying.
type OrderingStats struct {
	AllStrict  bool `csv:"all_strict"`
	NumStrict  int  `csv:"num_strict"`
	SeqStrict  int  `csv:"seq_strict"`
	AllLenient bool `csv:"all_lenient"`
	NumLenient int  `csv:"num_lenient"`
	SeqLenient int  `csv:"seq_lenient"`
}

// AttestationTotals sums each attestation's reward map, preserving block
// order.
func AttestationTotals(rewards []slotdata.RewardMap) []phase0.Gwei {
	totals := make([]phase0.Gwei, len(rewards))
	for i, m := range rewards {
		totals[i] = m.Sum()
	}
	return totals
}

// OrderingOf evaluates both ordering predicates over consecutive pairs of
// totals. Num counts satisfying pairs anywhere; Seq is the length of the
// ordered prefix starting at index 0.
func OrderingOf(totals []phase0.Gwei) OrderingStats {
	stats := OrderingStats{AllStrict: true, AllLenient: true}
	strictPrefix := true
	lenientPrefix := true
	for i := 0; i+1 < len(totals); i++ {
		strictOK := totals[i] >= totals[i+1]
		lenientOK := strictOK || totals[i] == 0 || totals[i+1] == 0

		if strictOK {
			stats.NumStrict++
		} else {
			stats.AllStrict = false
			strictPrefix = false
		}
		if strictPrefix {
			stats.SeqStrict++
		}

		if lenientOK {
			stats.NumLenient++
		} else {
			stats.AllLenient = false
			lenientPrefix = false
		}
		if lenientPrefix {
			stats.SeqLenient++
		}
	}
	return stats
}
