package ai

import (
	"context"
	"fmt"
)

// GenerateTagsInput describes a course for tag suggestion
type GenerateTagsInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GenerateTagsOutput struct {
	Tags []string `json:"tags"`
}

// GenerateTags suggests catalog tags for a course
func (c *Client) GenerateTags(ctx context.Context, input GenerateTagsInput) (*GenerateTagsOutput, error) {
	prompt := fmt.Sprintf(
		`Suggest 5 short lowercase catalog tags for this online course. Reply as JSON: {"tags": ["..."]}.
Title: %s
Description: %s`, input.Title, input.Description)

	var out GenerateTagsOutput
	if err := c.generate(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type GenerateQuizInput struct {
	CourseTitle  string `json:"course_title"`
	LessonText   string `json:"lesson_text"`
	NumQuestions int    `json:"num_questions"`
}

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"` // index into Options
}

type GenerateQuizOutput struct {
	Questions []QuizQuestion `json:"questions"`
}

// GenerateQuiz builds a multiple-choice quiz from lesson text
func (c *Client) GenerateQuiz(ctx context.Context, input GenerateQuizInput) (*GenerateQuizOutput, error) {
	n := input.NumQuestions
	if n <= 0 {
		n = 5
	}
	prompt := fmt.Sprintf(
		`Write %d multiple-choice questions testing the lesson below, each with 4 options and the index of the correct one. Reply as JSON: {"questions": [{"question": "...", "options": ["..."], "answer": 0}]}.
Course: %s
Lesson: %s`, n, input.CourseTitle, input.LessonText)

	var out GenerateQuizOutput
	if err := c.generate(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type GenerateFAQInput struct {
	CourseTitle string `json:"course_title"`
	Description string `json:"description"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GenerateFAQOutput struct {
	Items []FAQItem `json:"items"`
}

// GenerateFAQ drafts a FAQ section for a course landing page
func (c *Client) GenerateFAQ(ctx context.Context, input GenerateFAQInput) (*GenerateFAQOutput, error) {
	prompt := fmt.Sprintf(
		`Write 4 frequently asked questions with answers for the landing page of this online course. Reply as JSON: {"items": [{"question": "...", "answer": "..."}]}.
Title: %s
Description: %s`, input.CourseTitle, input.Description)

	var out GenerateFAQOutput
	if err := c.generate(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ModerateReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ModerateReviewOutput struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
}

// ModerateReview checks a course review for abuse or spam before publishing
func (c *Client) ModerateReview(ctx context.Context, input ModerateReviewInput) (*ModerateReviewOutput, error) {
	prompt := fmt.Sprintf(
		`You moderate course reviews. Reject reviews containing abuse, spam or personal data; approve honest feedback, positive or negative. Reply as JSON: {"approved": true, "reason": "..."}.
Rating: %d/5
Review: %s`, input.Rating, input.Comment)

	var out ModerateReviewOutput
	if err := c.generate(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
