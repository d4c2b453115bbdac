package worker

import (
	"context"

	"github.com/mcamargo/lexgym/internal/ai"
	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/repository"
)

// EnrichWordJob asks the AI backend for a word deep-dive and stores the
// result on the saved word. The word stays usable without it; a failed
// enrichment only means the deep-dive fields remain empty.
type EnrichWordJob struct {
	AI         ai.Service
	Vocabulary repository.VocabularyRepository
	Word       string
}

func (j *EnrichWordJob) Name() string { return "enrich_word" }

func (j *EnrichWordJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("word", j.Word)

	item, err := j.Vocabulary.Get(ctx, j.Word)
	if err != nil {
		return err
	}
	if item == nil {
		// Deleted between save and enrichment; nothing to do.
		log.Debug("word no longer saved, skipping enrichment")
		return nil
	}

	enrichment, err := j.AI.EnrichWord(ctx, item.Word)
	if err != nil {
		return err
	}
	return j.Vocabulary.UpdateEnrichment(ctx, j.Word, *enrichment)
}
