package model

// TriggerConditions selects which integration outcomes fire a bot trigger
type TriggerConditions struct {
	Status             int  `json:"status"`
	OnAnalyzerWarnings bool `json:"onAnalyzerWarnings"`
	OnBuildErrors      bool `json:"onBuildErrors"`
	OnFailingTests     bool `json:"onFailingTests"`
	OnInternalErrors   bool `json:"onInternalErrors"`
	OnSuccess          bool `json:"onSuccess"`
	OnWarnings         bool `json:"onWarnings"`
}
