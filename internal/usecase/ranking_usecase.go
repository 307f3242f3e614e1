package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// RankingUsecase answers top-N-by-total-reactions queries with a
// scatter-gather over the content registry and the aggregation engine.
type RankingUsecase struct {
	contentRepo contract.IContentRepository
	reactions   usecasecontract.IReactionUseCase
	logger      usecasecontract.IAppLogger
}

// NewRankingUsecase creates and returns a new RankingUsecase instance.
func NewRankingUsecase(contentRepo contract.IContentRepository, reactions usecasecontract.IReactionUseCase, logger usecasecontract.IAppLogger) *RankingUsecase {
	return &RankingUsecase{
		contentRepo: contentRepo,
		reactions:   reactions,
		logger:      logger,
	}
}

// TopByReactions returns up to limit published content items of the given
// type, ordered by total reactions descending with content id ascending as
// the tie-break. Candidates that cannot be counted or turn out to have zero
// reactions are skipped, so the result may be shorter than limit; it is
// never padded.
func (u *RankingUsecase) TopByReactions(ctx context.Context, contentType string, limit int) ([]entity.RankedContent, error) {
	if limit < 1 {
		return nil, ErrInvalidInput
	}

	// Oversample so candidates dropped below can still fill the result.
	candidateIDs, err := u.contentRepo.ListReactedContentIDs(ctx, contentType, limit*2)
	if err != nil {
		return nil, fmt.Errorf("fetching ranking candidates: %w", err)
	}
	if len(candidateIDs) == 0 {
		return []entity.RankedContent{}, nil
	}

	ranked := make([]entity.RankedContent, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		counts, err := u.reactions.Counts(ctx, id)
		if err != nil {
			u.logger.Warnf("skipping ranking candidate %s: %v", id, err)
			continue
		}
		total := counts.Total()
		if total == 0 {
			continue
		}
		ranked = append(ranked, entity.RankedContent{
			ContentID: id,
			Reactions: counts,
			Total:     total,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].ContentID < ranked[j].ContentID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	u.attachMetadata(ctx, ranked)
	return ranked, nil
}

// attachMetadata fills in title and URL for the final entries. A metadata
// fetch failure degrades to bare entries rather than failing the query.
func (u *RankingUsecase) attachMetadata(ctx context.Context, ranked []entity.RankedContent) {
	if len(ranked) == 0 {
		return
	}
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ContentID)
	}
	items, err := u.contentRepo.GetContentsByIDs(ctx, ids)
	if err != nil {
		u.logger.Warnf("ranking metadata fetch: %v", err)
		return
	}
	for i := range ranked {
		if item, ok := items[ranked[i].ContentID]; ok {
			ranked[i].Title = item.Title
			ranked[i].URL = item.URL
		}
	}
}

var _ usecasecontract.IRankingUseCase = (*RankingUsecase)(nil)
