package service

import (
	"context"
	"encoding/json"
	"fmt"

	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/pkg/llm"
)

type IExplainerService interface {
	// Explain annotates an assembled record with a plain-language
	// summary. The summary is advisory text layered on top of the
	// record; it never alters the deterministic values.
	Explain(ctx context.Context, record *dto.ComplianceRecord) (string, error)
}

type explainerService struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewExplainerService(provider llm.LLMProvider, log logger.ILogger) IExplainerService {
	return &explainerService{
		provider: provider,
		log:      log,
	}
}

func (s *explainerService) Explain(ctx context.Context, record *dto.ComplianceRecord) (string, error) {
	payload, err := json.Marshal(record.DeterministicValues)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record for explanation: %w", err)
	}

	prompt := fmt.Sprintf(`Summarize the following trade compliance data for goods code %s (origin %s, destination %s) in plain English for a declarant. Only restate values that appear in the data; do not add rates, thresholds, or legal references of your own.

%s`,
		record.QueryParameters.GoodsCode,
		record.QueryParameters.Origin,
		record.QueryParameters.Destination,
		string(payload),
	)

	summary, err := s.provider.Generate(ctx, prompt, llm.WithTemperature(0.2))
	if err != nil {
		// The record stands on its own; a failed explanation degrades to
		// an empty annotation.
		s.log.Warn("explainer", "explanation generation failed", map[string]interface{}{
			"goods_code": record.QueryParameters.GoodsCode,
			"error":      err.Error(),
		})
		return "", nil
	}

	return summary, nil
}
