// Package agents defines the four career-advice agent personas and the
// completion backend they run against.
package agents

import (
	"fmt"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// Agent is one LLM persona: a role, a goal, and a backstory that frame every
// task it executes. Personas are fixed; the resume context is spliced into the
// backstory at pipeline construction when a parsed resume is available.
type Agent struct {
	Name      string
	Role      string
	Goal      string
	Backstory string
}

// WithResumeContext returns a copy of the agent whose backstory carries the
// candidate's resume text verbatim. An empty resume returns the agent
// unchanged.
func (a Agent) WithResumeContext(resumeText string) Agent {
	if resumeText == "" {
		return a
	}
	a.Backstory = fmt.Sprintf("%s\n\nCandidate's Resume Content:\n%s", a.Backstory, resumeText)
	return a
}

// ForStage returns the persona that executes the given pipeline stage.
func ForStage(stage types.StageID) Agent {
	switch stage {
	case types.StageSearch:
		return Agent{
			Name: "job_searcher",
			Role: "Senior Job Search Specialist",
			Goal: "Find the most relevant job opportunities that match the candidate's profile and specified criteria",
			Backstory: "You are an expert job search specialist with extensive experience in " +
				"identifying high-quality job opportunities. You excel at understanding both job requirements " +
				"and candidate profiles to find the perfect matches.",
		}
	case types.StageSkillsGap:
		return Agent{
			Name: "skills_advisor",
			Role: "Personalized Skills Development Advisor",
			Goal: "Analyze job requirements against the candidate's current skills and provide targeted development recommendations",
			Backstory: "You are a seasoned career development expert who specializes in " +
				"identifying skill gaps by comparing job requirements with candidate backgrounds. " +
				"You create personalized learning paths based on individual experience and career goals.",
		}
	case types.StageInterviewPrep:
		return Agent{
			Name: "interview_coach",
			Role: "Personalized Interview Preparation Expert",
			Goal: "Prepare candidates for interviews by leveraging their specific background and experience",
			Backstory: "You are a professional interview coach who creates personalized interview " +
				"strategies. You help candidates highlight their unique strengths and address potential " +
				"weaknesses based on their specific background and target roles.",
		}
	case types.StageCareerStrategy:
		return Agent{
			Name: "career_advisor",
			Role: "Personalized Career Strategy Advisor",
			Goal: "Provide strategic career advice tailored to the candidate's specific background and goals",
			Backstory: "You are a senior career strategist who creates personalized career " +
				"advancement plans. You understand how to position candidates based on their unique " +
				"background, optimize their personal brand, and create targeted networking strategies.",
		}
	}
	return Agent{}
}
