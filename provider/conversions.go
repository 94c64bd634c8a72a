package provider

import (
	"strings"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"

	"siaga/model"
)

// ConvertToOpenAIMessages converts model.Message values to OpenAI chat params.
//
// Timestamp and Rendered are dropped; only Role and Content travel to the API.
// Unknown roles are sent as user messages.
func ConvertToOpenAIMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(messages))

	for i, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			result[i] = openai.SystemMessage(msg.Content)
		case model.RoleUser:
			result[i] = openai.UserMessage(msg.Content)
		case model.RoleAssistant:
			result[i] = openai.AssistantMessage(msg.Content)
		default:
			result[i] = openai.UserMessage(msg.Content)
		}
	}

	return result
}

// ConvertToGeminiContents converts model.Message values to Gemini contents.
//
// Gemini takes the system prompt out of band, so system messages are joined and
// returned separately as the system instruction (nil when there are none).
// Assistant turns map to the "model" role.
func ConvertToGeminiContents(messages []model.Message) ([]*genai.Content, *genai.Content) {
	var systemParts []string
	contents := make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			systemParts = append(systemParts, msg.Content)
		case model.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	if len(systemParts) == 0 {
		return contents, nil
	}
	// Gemini ignores the role of a system instruction; RoleUser matches the SDK examples.
	return contents, genai.NewContentFromText(strings.Join(systemParts, "\n\n"), genai.RoleUser)
}
