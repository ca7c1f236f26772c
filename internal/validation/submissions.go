// Package validation checks submission payloads and reports per-field errors.
package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"haven/internal/models"
)

const (
	maxQuoteContentLength = 1000
	maxAuthorLength       = 100
	maxQuestionLength     = 500
	maxTitleLength        = 200
	maxBodyLength         = 10000
)

// FieldError describes a single invalid field in a submission.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the set of field errors for one submission. A nil or empty
// set means the submission is valid.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(parts, "; ")
}

func required(errs FieldErrors, field, value string) FieldErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, FieldError{Field: field, Message: "is required"})
	}
	return errs
}

func maxLength(errs FieldErrors, field, value string, limit int) FieldErrors {
	if utf8.RuneCountInString(value) > limit {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", limit)})
	}
	return errs
}

// ValidateQuote checks a quote submission.
func ValidateQuote(in models.InsertQuote) FieldErrors {
	var errs FieldErrors
	errs = required(errs, "content", in.Content)
	errs = maxLength(errs, "content", in.Content, maxQuoteContentLength)
	errs = maxLength(errs, "author", in.Author, maxAuthorLength)
	return errs
}

// ValidateFaqQuestion checks a submitted FAQ question. Only the question is
// user-supplied; the answer is filled in server-side.
func ValidateFaqQuestion(question string) FieldErrors {
	var errs FieldErrors
	errs = required(errs, "question", question)
	errs = maxLength(errs, "question", question, maxQuestionLength)
	return errs
}

// ValidateBlogPost checks a blog post submission.
func ValidateBlogPost(in models.InsertBlogPost) FieldErrors {
	var errs FieldErrors
	errs = required(errs, "title", in.Title)
	errs = maxLength(errs, "title", in.Title, maxTitleLength)
	errs = required(errs, "content", in.Content)
	errs = maxLength(errs, "content", in.Content, maxBodyLength)
	errs = maxLength(errs, "author", in.Author, maxAuthorLength)
	return errs
}

// ValidateVideo checks a video submission. The URL must be absolute http(s).
func ValidateVideo(in models.InsertVideo) FieldErrors {
	var errs FieldErrors
	errs = required(errs, "title", in.Title)
	errs = maxLength(errs, "title", in.Title, maxTitleLength)
	errs = required(errs, "url", in.URL)

	if strings.TrimSpace(in.URL) != "" {
		u, err := url.Parse(in.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, FieldError{Field: "url", Message: "must be an absolute http(s) URL"})
		}
	}

	errs = maxLength(errs, "description", in.Description, maxBodyLength)
	return errs
}
