package llm

import (
	"github.com/tmc/langchaingo/prompts"
)

var (
	subtopicsPrompt = prompts.NewPromptTemplate(
		"Break down the role of a {{.job_role}} into 6-8 key interview subtopics "+
			"for a {{.experience_level}} candidate. Return the result as a JSON object "+
			"with a 'subtopics' key containing a list of strings. Example: "+
			`{"subtopics": ["Data Structures", "System Design", "Databases"]}`,
		[]string{"job_role", "experience_level"},
	)

	validatePrompt = prompts.NewPromptTemplate(
		"Validate the following subtopics for a {{.job_role}} interview: {{.subtopics}}. "+
			"Are they relevant and logically grouped? Provide feedback or corrections.",
		[]string{"job_role", "subtopics"},
	)

	refinePrompt = prompts.NewPromptTemplate(
		`Based on the following feedback: "{{.feedback}}", `+
			"refine the subtopics for a {{.job_role}} interview. "+
			"The original subtopics were: {{.subtopics}}. "+
			"Return only a JSON object with a 'refined_subtopics' key containing a list of strings. "+
			`Example: {"refined_subtopics": ["Classroom Management", "Lesson Planning", "Student Engagement"]}`,
		[]string{"feedback", "job_role", "subtopics"},
	)

	categorizePrompt = prompts.NewPromptTemplate(
		"Categorize the following interview subtopics into one of these categories:\n"+
			"- Technical Skills\n"+
			"- Soft Skills\n"+
			"- Advanced Topics\n"+
			"- General Skills\n\n"+
			"Subtopics: {{.subtopics}}\n\n"+
			"Return the result as a JSON object with each category as a key and a list of subtopics as values.",
		[]string{"subtopics"},
	)

	questionsPrompt = prompts.NewPromptTemplate(
		"Generate 7 {{.question_type}} interview questions for a {{.experience_level}} "+
			"{{.job_role}} under the topic '{{.subtopic}}'. Each question should:\n"+
			"- Be answerable in 5-10 minutes\n"+
			"- Be open-ended but focused\n"+
			"Avoid take-home project-style prompts. Format the output as a numbered list. "+
			"**Return ONLY the 7 questions in a numbered list with no introduction, explanation.**",
		[]string{"question_type", "experience_level", "job_role", "subtopic"},
	)

	evaluatePrompt = prompts.NewPromptTemplate(
		"Here's the interview question:\n\n{{.question}}\n\nCandidate's answer:\n\n{{.answer}}\n\n"+
			"Please provide constructive feedback and a score out of 10.\n"+
			"**Don't include phrases like 'I'm happy to help' in your response**",
		[]string{"question", "answer"},
	)
)

// Category names offered to the model, in display order.
var defaultCategories = []string{"Technical Skills", "Soft Skills", "Advanced Topics", "General Skills"}
