package services

import (
	"fmt"
	"strings"

	"interview-coach/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildTranscript flattens an ordered message list into the "role: content"
// block the evaluation prompt expects.
func (pb *PromptBuilder) BuildTranscript(messages []models.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}

// BuildFeedbackPrompt creates the end-of-interview evaluation prompt. The
// model scores 0-10; the service scales that to the stored 0-100 range.
func (pb *PromptBuilder) BuildFeedbackPrompt(transcript string) string {
	return fmt.Sprintf(`Analyze the following interview transcript and provide detailed feedback.
Return a JSON object with:
{
  "overallScore": number (0-10),
  "verdict": "Strong Hire" | "Hire" | "Hold" | "No Hire",
  "summary": "text",
  "categories": {
    "technical": { "score": number, "feedback": "text" },
    "communication": { "score": number, "feedback": "text" },
    "problem_solving": { "score": number, "feedback": "text" },
    "cultural_fit": { "score": number, "feedback": "text" },
    "confidence": { "score": number, "feedback": "text" }
  },
  "strengths": ["text"],
  "improvements": ["text"],
  "recommendation": "text"
}

INTERVIEW TRANSCRIPT:
%s`, transcript)
}

// BuildResumeMatchPrompt creates the resume analysis prompt.
func (pb *PromptBuilder) BuildResumeMatchPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert career coach and job market analyst.
Analyze the provided resume text.
1. Identify key skills and experience level.
2. Suggest 5 specific, relevant job titles and simulated job listings that would be a good fit.
3. For each job, provide a company name, location, and a brief description.
4. Provide a 'matchScore' (0-100) based on how well the resume fits.
5. Provide a list of 'requirements' for each job.

Return ONLY a JSON object with this structure:
{
  "message": "Analysis summary...",
  "matchedJobs": [
    {
      "title": "Job Title",
      "company": "Company Name",
      "location": "Location",
      "description": "Brief description...",
      "requirements": ["req1", "req2"],
      "matchScore": 85
    }
  ]
}

RESUME:
%s`, resumeText)
}

// BuildPersonaReplyPrompt creates the prompt for the next interviewer turn.
// alex drives technical questions, sam behavioral ones.
func (pb *PromptBuilder) BuildPersonaReplyPrompt(persona models.MessageRole, interviewType models.InterviewType, candidateName, transcript string) string {
	focus := "technical depth: algorithms, architecture, trade-offs, and concrete past work"
	if persona == models.RoleSam {
		focus = "behavioral signals: collaboration, conflict, ownership, and communication"
	}

	typeLabel := models.InterviewTypeLabels[interviewType]
	if typeLabel == "" {
		typeLabel = string(interviewType)
	}

	return fmt.Sprintf(`You are %s, an interviewer running a mock %s interview with candidate %s.
You focus on %s.
Continue the interview: react briefly to the candidate's last answer, then ask exactly one follow-up question.
Keep the reply under 80 words. Return plain text only, no JSON, no markdown.

TRANSCRIPT SO FAR:
%s`, persona, typeLabel, candidateName, focus, transcript)
}
