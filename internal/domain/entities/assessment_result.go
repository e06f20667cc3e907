package entities

import "gorm.io/datatypes"

// AssessmentResult é o resultado persistido de um questionário
type AssessmentResult struct {
	Base
	UserID        string                     `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	InstrumentKey string                     `json:"instrument_key" gorm:"column:instrument_key"`
	Answers       datatypes.JSONSlice[[]int] `json:"answers" gorm:"column:answers"`
	TotalScore    int                        `json:"total_score" gorm:"column:total_score"`
	Label         string                     `json:"label" gorm:"column:label"`
	Auxiliary     string                     `json:"auxiliary,omitempty" gorm:"column:auxiliary"`
}

func (AssessmentResult) TableName() string { return "assessment_results" }
