package classifier

import (
	"fmt"
	"strings"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

// agentPrompt frames every diagnosis conversation.
const agentPrompt = "You are an AI Support Agent that assists engineers in diagnosing and resolving issues step by step. " +
	"You also understand the way enterprise software products work - both on-prem and SaaS. " +
	"You also know how the on-prem enterprise software support works. " +
	"This AI support agent is right now for the on-prem version of the products installed. " +
	"You retrieve relevant information from APIs and guide the engineer through Root Cause Analysis (RCA). " +
	"Always ask for confirmation before proceeding."

const categorizeInstruction = "Classify the reported issue into the predefined categories based on similarity. " +
	"Prioritize the most relevant match. Answer with a single JSON object and nothing else."

const refineInstruction = "You classify a message from an engineer who is narrowing down a support issue. " +
	"If the message adds new details about the problem, answer with exactly additional_info. " +
	"If the message rules out or rejects a suggested category or symptom, answer with exactly elimination. " +
	"Answer with one word only."

const matchInstruction = "You match a free-text symptom description to the closest known symptom. " +
	"Answer with a single JSON object and nothing else."

// RefineFurtherMessage is returned when every category was rejected.
const RefineFurtherMessage = "None of the remaining categories match. Please refine the issue description further with more details."

func categorizePrompt(description string, previous []string, categories []taxonomy.Category) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The user reported an issue: %q.\n", description)
	if len(previous) > 0 {
		b.WriteString("Earlier descriptions from the same conversation:\n")
		for _, p := range previous {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	b.WriteString("Available categories:\n")
	for _, c := range categories {
		if c.Description != "" {
			fmt.Fprintf(&b, "- %s: %s\n", c.Name, c.Description)
		} else {
			fmt.Fprintf(&b, "- %s\n", c.Name)
		}
	}

	b.WriteString(`
If one category clearly matches, respond with:
{"final_category": "<category name>", "explanation": "<why>"}
Otherwise respond with 2 to 3 ranked suggestions and one question that would tell them apart:
{"suggestions": [{"category": "<category name>", "explanation": "<why>"}], "follow_up_question": "<question>"}
Only use category names from the list above.`)

	return b.String()
}

func matchPrompt(description string, symptoms []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Symptom description: %q.\n", description)
	b.WriteString("Known symptoms:\n")
	for _, s := range symptoms {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString(`Pick the closest known symptom and respond with:
{"symptom": "<symptom name>"}`)
	return b.String()
}
