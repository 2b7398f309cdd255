package utils

import (
	"unicode/utf8"

	"github.com/parley-dev/parley/internal/errors"
)

type TopicNameValidator struct{}

func (e *TopicNameValidator) Name(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 2 {
		return &errors.ErrorWithStatusCode{Message: "Topic name must be at least 2 characters", StatusCode: 400}
	}
	if n > 40 {
		return &errors.ErrorWithStatusCode{Message: "Topic name must be at most 40 characters", StatusCode: 400}
	}
	return nil
}

type PostValidator struct{}

func (e *PostValidator) Title(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 2 {
		return &errors.ErrorWithStatusCode{Message: "Post title must be at least 2 characters", StatusCode: 400}
	}
	if n > 30 {
		return &errors.ErrorWithStatusCode{Message: "Post title must be at most 30 characters", StatusCode: 400}
	}
	return nil
}

func (e *PostValidator) Content(content string) error {
	if len(content) == 0 {
		return &errors.ErrorWithStatusCode{Message: "Post must not be empty", StatusCode: 400}
	}
	if utf8.RuneCountInString(content) > 1024 {
		return &errors.ErrorWithStatusCode{Message: "Post exceeds the maximum length", StatusCode: 400}
	}
	return nil
}
