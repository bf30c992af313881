// Package contract declares the HTTP surface shared by the server router and
// the Go client, so the two cannot drift apart. The registry is built once and
// never mutated.
package contract

import (
	"fmt"
	"strings"
)

type Endpoint struct {
	Name   string
	Method string
	Path   string
}

// Registry is the full route table. Paths use fiber-style :param placeholders.
type Registry struct {
	InterviewsCreate     Endpoint
	InterviewsGet        Endpoint
	InterviewsList       Endpoint
	InterviewsAddMessage Endpoint
	InterviewsEnd        Endpoint
	ResumeAnalyze        Endpoint
	ResumeExtract        Endpoint
	JobsList             Endpoint
}

func NewRegistry() Registry {
	return Registry{
		InterviewsCreate:     Endpoint{Name: "interviews.create", Method: "POST", Path: "/api/interviews"},
		InterviewsGet:        Endpoint{Name: "interviews.get", Method: "GET", Path: "/api/interviews/:id"},
		InterviewsList:       Endpoint{Name: "interviews.list", Method: "GET", Path: "/api/interviews"},
		InterviewsAddMessage: Endpoint{Name: "interviews.addMessage", Method: "POST", Path: "/api/interviews/:id/messages"},
		InterviewsEnd:        Endpoint{Name: "interviews.end", Method: "POST", Path: "/api/interviews/:id/end"},
		ResumeAnalyze:        Endpoint{Name: "resume.analyze", Method: "POST", Path: "/api/resume/analyze"},
		ResumeExtract:        Endpoint{Name: "resume.extract", Method: "POST", Path: "/api/resume/extract"},
		JobsList:             Endpoint{Name: "jobs.list", Method: "GET", Path: "/api/jobs"},
	}
}

// All returns every endpoint in the registry.
func (r Registry) All() []Endpoint {
	return []Endpoint{
		r.InterviewsCreate,
		r.InterviewsGet,
		r.InterviewsList,
		r.InterviewsAddMessage,
		r.InterviewsEnd,
		r.ResumeAnalyze,
		r.ResumeExtract,
		r.JobsList,
	}
}

// BuildPath substitutes named parameters into a :param path template. A param
// with no matching placeholder is ignored; a placeholder with no supplied
// param is left intact so the caller can detect the mistake. Placeholders
// occupy whole path segments, so a param name that is merely a prefix of a
// placeholder never touches it.
func BuildPath(path string, params map[string]any) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		if value, ok := params[segment[1:]]; ok {
			segments[i] = fmt.Sprintf("%v", value)
		}
	}
	return strings.Join(segments, "/")
}
