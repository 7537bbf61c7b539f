package core

import (
	"sort"

	"productpulse-backend-go/internal/models"
)

// rankProducts joins products to their votes, tallies per-product upvote
// and downvote counts, and returns the top products ordered by upvotes
// descending, truncated to limit.
//
// The join compares the product id's hex text against the vote's stored
// productId, because votes keep the reference as text. Products with no
// matching votes are kept with zero counts rather than dropped. Ordering
// is by raw upvotes, not net score; ties keep input order (the sort is
// stable), so callers wanting determinism should not rely on tie order.
func rankProducts(products []models.Product, votes []models.Vote, limit int) []models.RankedProduct {
	type tally struct {
		up, down int64
	}
	tallies := make(map[string]*tally, len(products))
	for _, v := range votes {
		t, ok := tallies[v.ProductID]
		if !ok {
			t = &tally{}
			tallies[v.ProductID] = t
		}
		switch v.Type {
		case models.VoteUp:
			t.up++
		case models.VoteDown:
			t.down++
		}
	}

	ranked := make([]models.RankedProduct, 0, len(products))
	for _, p := range products {
		r := models.RankedProduct{Product: p}
		if t, ok := tallies[p.ID.Hex()]; ok {
			r.Upvotes = t.up
			r.Downvotes = t.down
		}
		r.NetScore = r.Upvotes - r.Downvotes
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Upvotes > ranked[j].Upvotes
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
