package service

import (
	"fmt"
	"genperm"
	"genperm/pkg"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// Returned when a validated query matched nothing in the catalog.
	emptyResultReply = "I checked our collection, but I couldn't find exactly that. Would you like to see our bestsellers?"
	// Returned for any failure inside the database branch.
	dbFailureReply = "I encountered an issue checking the database. Please try again."
)

type ChatService struct {
	logger zerolog.Logger
	model  pkg.TextGenerator
	db     pkg.QueryRunner
}

func NewChatService() *ChatService {
	return NewChatServiceWith(pkg.NewGeminiClient(), pkg.NewMysqlRunner())
}

func NewChatServiceWith(model pkg.TextGenerator, db pkg.QueryRunner) *ChatService {
	return &ChatService{
		logger: genperm.Logger,
		model:  model,
		db:     db,
	}
}

// IsDbRelatedQuestion asks the model whether the question needs a catalog
// lookup. Any response containing "yes" counts as true; the model is not
// guaranteed to answer with the single word it was asked for.
func (slf *ChatService) IsDbRelatedQuestion(question string) (bool, error) {
	response, err := slf.model.Generate(fmt.Sprintf(dbCheckPromptTemplate, question))
	if err != nil {
		return false, fmt.Errorf("intent classification failed: %w", err)
	}
	return strings.Contains(strings.ToLower(strings.TrimSpace(response)), "yes"), nil
}

// GenerateSQL asks the model for a single SELECT over the fixed schema,
// strips markdown fences and rejects anything outside the read-only shape.
func (slf *ChatService) GenerateSQL(question string) (string, error) {
	response, err := slf.model.Generate(fmt.Sprintf(sqlPromptTemplate, question))
	if err != nil {
		return "", fmt.Errorf("query generation failed: %w", err)
	}

	query := pkg.CleanSQL(response)
	if !pkg.IsSafeSelect(query) {
		return "", fmt.Errorf("unsafe or non-select statement: %s", query)
	}

	return query, nil
}

// SummarizeResult turns the raw rows into a natural-language answer. The
// "use only the SQL result" constraint lives in the prompt; nothing checks
// that the model actually honors it.
func (slf *ChatService) SummarizeResult(question string, result *pkg.QueryResult) (string, error) {
	prompt := fmt.Sprintf(answerPromptTemplate, question, fmt.Sprintf("%v", result.Rows))
	response, err := slf.model.Generate(prompt)
	if err != nil {
		return "", fmt.Errorf("result summarization failed: %w", err)
	}
	return strings.TrimSpace(response), nil
}

// HandleGeneralChat produces the persona reply for non-database questions.
func (slf *ChatService) HandleGeneralChat(question string) (string, error) {
	response, err := slf.model.Generate(fmt.Sprintf(generalChatPromptTemplate, question))
	if err != nil {
		return "", fmt.Errorf("general chat failed: %w", err)
	}
	return strings.TrimSpace(response), nil
}

// AnswerQuestion routes a question through classification, then either the
// persona responder or the generate-validate-execute-summarize pipeline.
// It returns the generated SQL (nil on the conversational or failed path)
// and the reply text. Failures inside the database branch are logged and
// collapsed into a fixed apology; classification and persona failures are
// returned to the caller.
func (slf *ChatService) AnswerQuestion(question string) (*string, string, error) {
	dbRelated, err := slf.IsDbRelatedQuestion(question)
	if err != nil {
		return nil, "", err
	}

	if !dbRelated {
		reply, err := slf.HandleGeneralChat(question)
		if err != nil {
			return nil, "", err
		}
		return nil, reply, nil
	}

	query, err := slf.GenerateSQL(question)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to generate query")
		return nil, dbFailureReply, nil
	}

	result, err := slf.db.RunQuery(query)
	if err != nil {
		slf.logger.Error().Err(err).Str("query", query).Msg("Failed to run generated query")
		return nil, dbFailureReply, nil
	}

	if len(result.Rows) == 0 {
		return pkg.ToPtr(query), emptyResultReply, nil
	}

	answer, err := slf.SummarizeResult(question, result)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to summarize query result")
		return nil, dbFailureReply, nil
	}

	return pkg.ToPtr(query), answer, nil
}
