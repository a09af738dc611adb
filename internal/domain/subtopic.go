package domain

// SubtopicSet is an ordered list of subtopic names. An empty set is valid
// but blocks every downstream stage.
type SubtopicSet []string

// Clone returns a copy that does not alias s.
func (s SubtopicSet) Clone() SubtopicSet {
	if s == nil {
		return nil
	}
	out := make(SubtopicSet, len(s))
	copy(out, s)
	return out
}

// Contains reports whether name is a member of s.
func (s SubtopicSet) Contains(name string) bool {
	for _, item := range s {
		if item == name {
			return true
		}
	}
	return false
}

// RefinedSubtopics is the output of the refine stage. Explanation describes
// what changed and may be empty.
type RefinedSubtopics struct {
	Subtopics   SubtopicSet `json:"refined_subtopics"`
	Explanation string      `json:"explanation"`
}

// Category is one named group of subtopics.
type Category struct {
	Name      string      `json:"name"`
	Subtopics SubtopicSet `json:"subtopics"`
}

// CategorizedSubtopics maps category name to subtopics. Categories keep the
// order in which they were added; names are unique.
type CategorizedSubtopics []Category

// Add appends a category, or replaces the subtopics of an existing one in place.
func (c CategorizedSubtopics) Add(name string, subtopics SubtopicSet) CategorizedSubtopics {
	for i := range c {
		if c[i].Name == name {
			c[i].Subtopics = subtopics
			return c
		}
	}
	return append(c, Category{Name: name, Subtopics: subtopics})
}

// Lookup returns the subtopics of the named category.
func (c CategorizedSubtopics) Lookup(name string) (SubtopicSet, bool) {
	for _, cat := range c {
		if cat.Name == name {
			return cat.Subtopics, true
		}
	}
	return nil, false
}

// Names returns category names in insertion order.
func (c CategorizedSubtopics) Names() []string {
	names := make([]string, 0, len(c))
	for _, cat := range c {
		names = append(names, cat.Name)
	}
	return names
}

func (c CategorizedSubtopics) Clone() CategorizedSubtopics {
	if c == nil {
		return nil
	}
	out := make(CategorizedSubtopics, len(c))
	for i, cat := range c {
		out[i] = Category{Name: cat.Name, Subtopics: cat.Subtopics.Clone()}
	}
	return out
}

// PipelineState aggregates everything the subtopic pipeline has produced for
// one session. It is owned by a single pipeline controller.
type PipelineState struct {
	JobRole            string               `json:"job_role"`
	ExperienceLevel    string               `json:"experience_level"`
	InterviewType      string               `json:"interview_type"`
	Subtopics          SubtopicSet          `json:"subtopics"`
	ValidationFeedback string               `json:"validation_feedback"`
	Refined            RefinedSubtopics     `json:"refined"`
	Categorized        CategorizedSubtopics `json:"categorized"`
}

// Clone returns a deep copy, safe to hand to another goroutine.
func (s PipelineState) Clone() PipelineState {
	out := s
	out.Subtopics = s.Subtopics.Clone()
	out.Refined.Subtopics = s.Refined.Subtopics.Clone()
	out.Categorized = s.Categorized.Clone()
	return out
}
