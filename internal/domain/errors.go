package domain

import "errors"

var (
	ErrEmptyMessage = errors.New("message must not be empty")
	ErrUnknownGenre = errors.New("unknown genre")
	ErrUpstreamLLM  = errors.New("upstream LLM failure")
)
