package service

import (
	"fmt"
	"genperm"
	"genperm/pkg"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

const (
	labelGreeting    = "greeting"
	labelDbQuery     = "db_query"
	labelGeneralChat = "general_chat"
)

const (
	voiceEmptyInputReply = "I didn't hear anything. Please try again."
	voiceGreetingReply   = "Hello! How can I assist you with our products today?"
	voiceNoMatchReply    = "I checked the database, but I couldn't find anything matching your request."
)

// Exact matches short-circuit to greeting without a model call.
var greetings = []string{"hi", "hello", "hey", "hai", "good morning", "morning", "good evening"}

// Any of these as a substring routes straight to the database pipeline.
var productKeywords = []string{
	"product", "price", "cost", "cheap", "expensive", "gold",
	"diamond", "jewellery", "stock", "available", "top",
	"bestseller", "latest", "collection",
}

type VoiceService struct {
	logger zerolog.Logger
	model  pkg.TextGenerator
	chat   *ChatService
}

func NewVoiceService() *VoiceService {
	return NewVoiceServiceWith(pkg.NewGeminiClient(), NewChatService())
}

func NewVoiceServiceWith(model pkg.TextGenerator, chat *ChatService) *VoiceService {
	return &VoiceService{
		logger: genperm.Logger,
		model:  model,
		chat:   chat,
	}
}

// ClassifyQuery labels a transcribed message as greeting, db_query or
// general_chat. Rule matches never hit the model; the model fallback only
// counts when it answers with exactly one of the three labels, and any
// model failure defaults to general_chat.
func (slf *VoiceService) ClassifyQuery(message string) string {
	text := strings.ToLower(strings.TrimSpace(message))

	if slices.Contains(greetings, text) {
		return labelGreeting
	}

	for _, word := range productKeywords {
		if strings.Contains(text, word) {
			return labelDbQuery
		}
	}

	response, err := slf.model.Generate(fmt.Sprintf(voiceClassifyPromptTemplate, message))
	if err != nil {
		slf.logger.Warn().Err(err).Msg("Voice classification failed, defaulting to general chat")
		return labelGeneralChat
	}

	switch result := strings.ToLower(strings.TrimSpace(response)); result {
	case labelGreeting, labelDbQuery, labelGeneralChat:
		return result
	}

	return labelGeneralChat
}

// ProcessVoiceCommand handles one transcribed utterance. Greetings are
// answered without touching the model or the database; everything else is
// delegated to the shared chat pipeline.
func (slf *VoiceService) ProcessVoiceCommand(userText string) (string, error) {
	if userText == "" {
		return voiceEmptyInputReply, nil
	}

	switch slf.ClassifyQuery(userText) {
	case labelGreeting:
		return voiceGreetingReply, nil

	case labelDbQuery:
		_, answer, err := slf.chat.AnswerQuestion(userText)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return voiceNoMatchReply, nil
		}
		return answer, nil

	default:
		_, reply, err := slf.chat.AnswerQuestion(userText)
		if err != nil {
			return "", err
		}
		return reply, nil
	}
}
