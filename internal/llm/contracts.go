// Package llm implements the model-based extractor family: field extractors
// that drive a question-answering model with candidate questions and keep the
// best-scoring answer.
package llm

import "context"

// Answer is one response from the question-answering capability.
type Answer struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// Model is the question-answering capability: given a question and the
// document text as context, it returns an answer with a score in [0,1].
type Model interface {
	Ask(ctx context.Context, question, docContext string) (Answer, error)
}

// Resolver turns a model name into a usable Model. Resolution happens once
// per field-extractor instance; repeated extractions reuse the handle.
type Resolver interface {
	Resolve(modelName string) (Model, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(modelName string) (Model, error)

func (f ResolverFunc) Resolve(modelName string) (Model, error) {
	return f(modelName)
}

// DefaultModelName is the baseline extractive-QA model used when a factory
// is constructed without an explicit model name.
const DefaultModelName = "distilbert-base-cased-distilled-squad"
