package events

import "time"

const (
	TypeClassificationCommitted = "CLASSIFICATION_COMMITTED"
	TypeClassificationAbstained = "CLASSIFICATION_ABSTAINED"
	TypeClarificationResolved   = "CLARIFICATION_RESOLVED"
	TypeClarificationExpired    = "CLARIFICATION_EXPIRED"
	TypeNomenclatureUpdated     = "NOMENCLATURE_UPDATED"
)

func NewClassificationCommitted(goodsCode string, probability, margin float64) Event {
	return BaseEvent{
		Type: TypeClassificationCommitted,
		Data: map[string]interface{}{
			"goods_code":  goodsCode,
			"probability": probability,
			"margin":      margin,
		},
		OccurredAt: time.Now(),
	}
}

func NewClassificationAbstained(sessionId string, optionCount int) Event {
	return BaseEvent{
		Type: TypeClassificationAbstained,
		Data: map[string]interface{}{
			"session_id":   sessionId,
			"option_count": optionCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewClarificationResolved(sessionId, goodsCode string, round int) Event {
	return BaseEvent{
		Type: TypeClarificationResolved,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"goods_code": goodsCode,
			"round":      round,
		},
		OccurredAt: time.Now(),
	}
}

func NewClarificationExpired(sessionId string, round int) Event {
	return BaseEvent{
		Type: TypeClarificationExpired,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"round":      round,
		},
		OccurredAt: time.Now(),
	}
}

func NewNomenclatureUpdated(goodsCode string) Event {
	return BaseEvent{
		Type: TypeNomenclatureUpdated,
		Data: map[string]interface{}{
			"goods_code": goodsCode,
		},
		OccurredAt: time.Now(),
	}
}
