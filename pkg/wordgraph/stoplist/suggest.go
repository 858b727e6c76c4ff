package stoplist

import "sort"

// Reason explains why a word is suggested as a stopword
type Reason struct {
	HighShare bool    // large share of all content words
	LowAssoc  bool    // no strong association with any neighbour
	Spread    bool    // co-occurs with a large part of the vocabulary
	Share     float64 // percent of content-word occurrences
	AssocMax  float64 // maximum NPMI with any neighbour
	Coverage  float64 // fraction of other words it co-occurs with
}

// Stats holds per-word statistics for candidate evaluation
type Stats struct {
	Token        string
	Count        int
	SharePercent float64
	AssocMax     float64
	Spread       float64
}

// Candidate represents a suggested stopword
type Candidate struct {
	Token  string
	Reason Reason
	Score  float64 // confidence score
}

// Thresholds defines criteria for stopword identification
type Thresholds struct {
	SharePercent float64 // e.g., 2.0 - at least 2% of content words
	AssocMax     float64 // e.g., 0.3 - NPMI never above this
	Spread       float64 // e.g., 0.25 - touches a quarter of the vocabulary
	MinCount     int     // ignore words seen fewer times than this
}

// DefaultThresholds returns sensible defaults for a single text of a few
// hundred words or more.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SharePercent: 2.0,
		AssocMax:     0.3,
		Spread:       0.25,
		MinCount:     3,
	}
}

// Suggest ranks words from stats that are not yet in s. A word qualifies
// when it has a high share and at least one of low association or high
// spread. Candidates are ordered by score, then token.
func (s Set) Suggest(stats []Stats, th Thresholds) []Candidate {
	var candidates []Candidate

	for _, st := range stats {
		if s.Has(st.Token) || st.Count < th.MinCount {
			continue
		}

		reason := Reason{
			HighShare: st.SharePercent >= th.SharePercent,
			LowAssoc:  st.AssocMax <= th.AssocMax,
			Spread:    st.Spread >= th.Spread,
			Share:     st.SharePercent,
			AssocMax:  st.AssocMax,
			Coverage:  st.Spread,
		}
		if !reason.HighShare || !(reason.LowAssoc || reason.Spread) {
			continue
		}

		share := st.SharePercent / 100.0
		if share > 1 {
			share = 1
		}
		score := (share + (1.0 - st.AssocMax) + st.Spread) / 3.0
		candidates = append(candidates, Candidate{
			Token:  st.Token,
			Reason: reason,
			Score:  score,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score == candidates[j].Score {
			return candidates[i].Token < candidates[j].Token
		}
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
