package genai

import "github.com/sashabaranov/go-openai/jsonschema"

var daySchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"day":      {Type: jsonschema.Integer},
		"title":    {Type: jsonschema.String},
		"guidance": {Type: jsonschema.String},
		"activities": {
			Type:  jsonschema.Array,
			Items: &jsonschema.Definition{Type: jsonschema.String},
		},
	},
	Required: []string{"day", "title", "guidance", "activities"},
}

var planSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"days": {
			Type:  jsonschema.Array,
			Items: &daySchema,
		},
	},
	Required: []string{"days"},
}

var analysisSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"summary":          {Type: jsonschema.String},
		"consistencyScore": {Type: jsonschema.Number},
		"strengths": {
			Type:  jsonschema.Array,
			Items: &jsonschema.Definition{Type: jsonschema.String},
		},
		"weaknesses": {
			Type:  jsonschema.Array,
			Items: &jsonschema.Definition{Type: jsonschema.String},
		},
		"nextSteps": {Type: jsonschema.String},
	},
	Required: []string{"summary", "consistencyScore", "strengths", "weaknesses", "nextSteps"},
}
