package service

import (
	"context"
	"encoding/json"
	"strings"

	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/pkg/llm"
)

const extractPrompt = `Extract the following fields from the trade question below and answer with a single JSON object, nothing else:
{"product_description": "...", "origin": "ISO2 country code or empty", "destination": "ISO2 country code or empty", "hs_prefix": "leading HS digits if the question names a code, else empty"}

Question: %QUESTION%`

type IExtractorService interface {
	// Extract parses a free-text trade question into classification
	// hints. The output steers retrieval only; it is never treated as a
	// legal or numeric fact.
	Extract(ctx context.Context, question string) (*dto.ExtractedSlots, error)
}

type extractorService struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewExtractorService(provider llm.LLMProvider, log logger.ILogger) IExtractorService {
	return &extractorService{
		provider: provider,
		log:      log,
	}
}

func (s *extractorService) Extract(ctx context.Context, question string) (*dto.ExtractedSlots, error) {
	prompt := strings.Replace(extractPrompt, "%QUESTION%", question, 1)

	raw, err := s.provider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		return nil, err
	}

	slots := parseSlots(raw)
	if slots == nil {
		// Unparseable model output: fall back to the raw question as the
		// product description rather than failing the request.
		s.log.Warn("extractor", "model returned unparseable slots", map[string]interface{}{
			"raw": raw,
		})
		return &dto.ExtractedSlots{ProductDescription: question}, nil
	}
	if slots.ProductDescription == "" {
		slots.ProductDescription = question
	}
	return slots, nil
}

func parseSlots(raw string) *dto.ExtractedSlots {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil
	}

	var slots dto.ExtractedSlots
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &slots); err != nil {
		return nil
	}
	return &slots
}
