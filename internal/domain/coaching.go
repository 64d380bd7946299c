package domain

// CoachingOutput contains the structured output from the LLM.
// @Description LLM-generated wellness coaching.
type CoachingOutput struct {
	// Summary of the day's wellness signals (2-3 sentences)
	Summary string `json:"summary" example:"You slept a solid seven hours but spent most of the afternoon sitting..."`
	// Observations about the signals (3-6 items)
	Observations []string `json:"observations" example:"[\"Sedentary time reached 4.5 hours\"]"`
	// Actionable, non-medical guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Stand up and walk for five minutes every hour\"]"`
}

// CoachingContext is the context object sent to the LLM.
type CoachingContext struct {
	WindowHours int             `json:"window_hours"`
	Readings    int             `json:"readings"`
	Burnout     BurnoutAnalysis `json:"burnout"`
	Live        *LiveWellness   `json:"live,omitempty"`
}

// CoachingResponse is the response for the coaching endpoint.
// @Description Wellness report with LLM coaching.
type CoachingResponse struct {
	Burnout  BurnoutAnalysis `json:"burnout"`
	Live     *LiveWellness   `json:"live,omitempty"`
	Coaching CoachingOutput  `json:"coaching"`
	// Trace ID for feedback (optional, only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// CoachingFeedbackRequest rates a coaching response.
type CoachingFeedbackRequest struct {
	TraceID string `json:"trace_id" validate:"required"`
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=1000"`
}
