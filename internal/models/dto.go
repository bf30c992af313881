package models

type CreateInterviewRequest struct {
	Type          string `json:"type"`
	CandidateName string `json:"candidateName"`
}

type AddMessageRequest struct {
	Content string `json:"content"`
}

type AnalyzeResumeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResumeResponse struct {
	Message     string `json:"message"`
	MatchedJobs []Job  `json:"matchedJobs"`
}

type ExtractResumeResponse struct {
	Text      string `json:"text"`
	PageCount int    `json:"pageCount"`
}

// ErrorResponse is the wire shape of every non-2xx body. Field is set for
// validation errors where the offending input field is known.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
