package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-scorer/internal/types"
)

// rankConcurrency bounds parallel match computations during batch ranking.
const rankConcurrency = 4

// RankCandidates scores every candidate against jobDescription and returns
// them sorted by overall score, best first. The first failed computation
// cancels the remaining work and is returned.
func (m *Matcher) RankCandidates(ctx context.Context, candidates []types.CandidateRecord, jobDescription string) ([]types.RankedCandidate, error) {
	ranked := make([]types.RankedCandidate, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rankConcurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			match, err := m.ComputeMatch(ctx, candidate, jobDescription)
			if err != nil {
				return err
			}
			ranked[i] = types.RankedCandidate{Candidate: candidate, Match: match}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stable sort keeps ordering deterministic for tied scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Match.OverallScore > ranked[j].Match.OverallScore
	})

	return ranked, nil
}
