package generation

import (
	"bytes"
	"fmt"
	"text/template"
)

// systemPrompt is sent as the system message on every completion call.
const systemPrompt = "You output ONLY valid JSON. Never add any other text."

// primaryPromptText is the verbose first-attempt instruction template. It
// spells out the schema and the output rules the model tends to break.
const primaryPromptText = `Return ONLY strict JSON. No markdown. No commentary.

You are an expert academic coach.

Create a {{.SlideCount}}-slide revision deck for the topic: "{{.Topic}}".
Focus strongly on:
1) Active Recall
2) Structural Learning

STRICT RULES:
- Output MUST be valid JSON
- Must start with { and end with }
- No extra text before or after JSON
- "slides" MUST be a JSON ARRAY (list)
- EXACTLY {{.SlideCount}} slides
- Never return slides as an object/dict

Schema:
{
  "slides": [
    {
      "type": "overview|core_concepts|active_recall|examples|exam_tips",
      "title": "string",
      "content": "string"
    }
  ]
}

Slide requirements:
- Each slide should be rich: 8-12 bullet points OR detailed explanation
- Assume exam revision: include definitions, key concepts, common traps/mistakes
- Use \n for newlines in content
- Ensure JSON is complete (quotes closed etc.)

Now output ONLY the JSON.`

// retryPromptText is the terser second-attempt template, same schema.
const retryPromptText = `RETURN JSON ONLY.

Schema:
{
  "slides": [
    {
      "type": "overview|core_concepts|active_recall|examples|exam_tips",
      "title": "string",
      "content": "string"
    }
  ]
}

RULES:
- slides MUST be an array
- EXACTLY {{.SlideCount}} slides
- JSON only. Nothing else.
- Keep content clear and complete.
- Use \n between bullet points.

TOPIC: {{.Topic}}`

var (
	primaryPromptTemplate = template.Must(template.New("primary").Parse(primaryPromptText))
	retryPromptTemplate   = template.Must(template.New("retry").Parse(retryPromptText))
)

// promptData carries the values substituted into the prompt templates.
type promptData struct {
	Topic      string
	SlideCount int
}

// BuildPrompt renders the verbose first-attempt prompt for the given topic
// and slide count.
func BuildPrompt(topic string, slideCount int) (string, error) {
	return executePrompt(primaryPromptTemplate, topic, slideCount)
}

// BuildRetryPrompt renders the terser second-attempt prompt.
func BuildRetryPrompt(topic string, slideCount int) (string, error) {
	return executePrompt(retryPromptTemplate, topic, slideCount)
}

func executePrompt(tmpl *template.Template, topic string, slideCount int) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Topic: topic, SlideCount: slideCount}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %q: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
