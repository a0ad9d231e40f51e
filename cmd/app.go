package main

import (
	"github.com/sells-group/vendormatch/internal/currency"
	"github.com/sells-group/vendormatch/internal/match"
	"github.com/sells-group/vendormatch/internal/pipeline"
	"github.com/sells-group/vendormatch/internal/relationship"
)

func newPipeline() *pipeline.Pipeline {
	return pipeline.New(matchConfig(), relationshipConfig())
}

func matchConfig() match.Config {
	return match.Config{
		FuzzyThreshold: cfg.Matching.FuzzyMatchThreshold,
		MinMatchLength: cfg.Matching.MinMatchLength,
		MaxCandidates:  cfg.Matching.MaxFuzzyCandidates,
		LegalSuffixes:  cfg.Matching.LegalSuffixes,
		Stopwords:      cfg.Matching.Stopwords,
	}
}

func relationshipConfig() relationship.Config {
	return relationship.Config{
		HighValueThreshold: cfg.Matching.HighValueThreshold,
		WatchedCurrencies:  cfg.Matching.WatchedCurrencies,
	}
}

func currencyConfig() currency.Config {
	return currency.Config{
		PrimaryURL: cfg.Currency.PrimaryURL,
		BackupURL:  cfg.Currency.BackupURL,
		CacheTTL:   cfg.Currency.CacheTTL,
		Timeout:    cfg.Currency.Timeout,
		RateLimit:  cfg.Currency.RateLimitRPS,
	}
}
