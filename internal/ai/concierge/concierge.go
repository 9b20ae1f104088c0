// Package concierge proxies the website chat widget to a hosted chat model.
package concierge

import (
	"context"
	"strings"

	"github.com/Abraxas-365/vatalique/pkg/logx"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// FallbackReply is returned to visitors whenever the model call fails
const FallbackReply = "I am experiencing a slight neural recalibration. Please try again in a moment."

const systemPrompt = `You are the official conversational representative of VATALIQUE.

IDENTITY:
- You are a knowledgeable Senior Consultant at Vatalique.
- Always use "we", never "I".

ABOUT VATALIQUE:
We are an AI systems agency. We design and deploy custom AI systems that automate work, replace manual effort, and help businesses scale.
We do not sell generic tools or basic chatbots. We build production-ready systems.

Core services:
1. AI Business Automation Systems (sales, support, ops automation)
2. AI Workflows & Process Systems (multi-step logic, handoffs)
3. Custom AI & Voice Agents (context-aware agents)
4. AI-Powered Websites & Applications (AI-native builds)
5. AI Strategy & System Architecture (roadmaps, consulting)

PRICING GUIDANCE (BALLPARK ONLY):
- Small automation systems: ₹50k – ₹2L
- Custom AI or voice agents: ₹1.5L – ₹5L+
- AI websites/apps: scope-dependent.
Always clarify that final pricing depends on scope and is usually finalized after a short strategy call.

TIMELINES:
- Simple: 1-2 weeks
- Medium: 2-4 weeks
- Large: 4-8 weeks+

BEHAVIOR:
1. Act like a consultant: ask about industry, goals, and whether the priority is saving time or increasing sales.
2. Qualify leads naturally. Do not interrogate.
3. Explain outcomes, not just tools.
4. Suggest a strategy call when the visitor asks about pricing, describes a real business problem, or asks whether we can build something.

TONE:
Professional, calm, confident and practical. No hype.`

const temperature = 0.7

// Turn is one earlier message in the conversation
type Turn struct {
	Role    string `json:"role"` // "user", or "model"/"assistant" for our replies
	Content string `json:"content"`
}

// Concierge answers visitor questions with the consultant persona
type Concierge struct {
	client *openai.Client
	model  string
}

// New creates a concierge. Extra options are passed to the OpenAI client.
func New(apiKey, model string, opts ...option.RequestOption) *Concierge {
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &Concierge{
		client: &client,
		model:  model,
	}
}

// Reply returns the consultant's answer to message. Failures are logged and
// answered with FallbackReply.
func (c *Concierge) Reply(ctx context.Context, message string, history []Turn) string {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    buildMessages(message, history),
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		logx.Errorf("concierge completion failed: %v", err)
		return FallbackReply
	}

	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		logx.Warn("concierge completion returned no content")
		return FallbackReply
	}

	return completion.Choices[0].Message.Content
}

func buildMessages(message string, history []Turn) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))

	for _, turn := range history {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		switch strings.ToLower(turn.Role) {
		case "model", "assistant":
			messages = append(messages, openai.AssistantMessage(turn.Content))
		case "user":
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}

	return append(messages, openai.UserMessage(message))
}
