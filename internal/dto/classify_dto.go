package dto

type ClassifyRequest struct {
	Description string `json:"description" validate:"required"`
	HSPrefix    string `json:"hs_prefix,omitempty" validate:"omitempty,numeric,min=2,max=8"`
	Origin      string `json:"origin,omitempty" validate:"omitempty,len=2,alpha"`
	Destination string `json:"destination,omitempty" validate:"omitempty,len=2,alpha"`
}

type CandidateResponse struct {
	GoodsCode   string  `json:"goods_code"`
	Content     string  `json:"content"`
	Similarity  float64 `json:"similarity"`
	RerankScore float64 `json:"rerank_score"`
	Probability float64 `json:"probability"`
}

type CommittedResponse struct {
	GoodsCode   string  `json:"goods_code"`
	Probability float64 `json:"probability"`
	Margin      float64 `json:"margin"`
}

type ClarificationOptionResponse struct {
	GoodsCode string `json:"goods_code"`
	Label     string `json:"label"`
}

type ClarificationResponse struct {
	QuestionId string                        `json:"question_id,omitempty"`
	Options    []ClarificationOptionResponse `json:"options"`
	Round      int                           `json:"round"`
}

const (
	StatusCommitted          = "COMMITTED"
	StatusNeedsClarification = "NEEDS_CLARIFICATION"
	StatusResolved           = "RESOLVED"
	StatusReprompt           = "REPROMPT"
	StatusExpired            = "EXPIRED"
)

type ClassifyResponse struct {
	Status        string                 `json:"status"`
	Committed     *CommittedResponse     `json:"committed,omitempty"`
	Clarification *ClarificationResponse `json:"clarification,omitempty"`
	Candidates    []CandidateResponse    `json:"candidates,omitempty"`
}

type AnswerRequest struct {
	OptionCode string `json:"option_code" validate:"required"`
}

type AnswerResponse struct {
	Status    string                        `json:"status"`
	GoodsCode string                        `json:"goods_code,omitempty"`
	Options   []ClarificationOptionResponse `json:"options,omitempty"`
	Round     int                           `json:"round"`
}
