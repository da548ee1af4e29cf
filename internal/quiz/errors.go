package quiz

import "errors"

var errEmptyQuiz = errors.New("empty quiz")
