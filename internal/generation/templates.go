package generation

import (
	"github.com/phrazzld/promptgen-api/internal/domain"
)

// Base instructional texts for each prompt type. Each entry emphasizes a
// different quality: clarity, imagery, technical precision, or visual
// composition.
const (
	generalTemplate = `You are an expert prompt engineer. Your task is to create clear, effective, and well-structured prompts based on the user's requirements.

Focus on:
- Clarity and specificity
- Proper structure and formatting
- Including relevant context and constraints
- Making the prompt actionable and results-oriented`

	creativeTemplate = `You are a creative prompt specialist. Your task is to generate imaginative and inspiring prompts that encourage creative thinking and artistic expression.

Focus on:
- Vivid imagery and descriptive language
- Emotional resonance and atmosphere
- Creative constraints that spark innovation
- Open-ended possibilities for exploration`

	technicalTemplate = `You are a technical prompt engineer specializing in programming, development, and technical documentation prompts.

Focus on:
- Technical accuracy and precision
- Clear specifications and requirements
- Best practices and standards
- Actionable technical instructions`

	imageTemplate = `You are an expert in creating prompts for AI image generation. Your task is to craft detailed, specific prompts that will produce high-quality visual results.

Focus on:
- Visual composition and style
- Lighting, color, and atmosphere
- Technical camera/art terminology
- Specific details about subjects and scenes`
)

// customInstructionsPrefix is appended between the base text and any
// caller-supplied custom instructions.
const customInstructionsPrefix = "\n\nAdditional instructions: "

// BaseTemplate returns the base instructional text for the given prompt
// type. The mapping is total: any value outside the four known types
// resolves to the general template rather than producing an error.
func BaseTemplate(promptType domain.PromptType) string {
	switch promptType {
	case domain.PromptTypeCreative:
		return creativeTemplate
	case domain.PromptTypeTechnical:
		return technicalTemplate
	case domain.PromptTypeImage:
		return imageTemplate
	case domain.PromptTypeGeneral:
		return generalTemplate
	default:
		// Unknown categories silently fall back to the general template.
		return generalTemplate
	}
}

// BuildSystemPrompt resolves the system text for a request: the base
// template for the prompt type, with custom instructions appended verbatim
// when present. No sanitization is applied to the custom text.
func BuildSystemPrompt(promptType domain.PromptType, customInstructions string) string {
	return AppendCustomInstructions(BaseTemplate(promptType), customInstructions)
}

// AppendCustomInstructions appends the custom instructions segment to a
// system text. Empty instructions leave the text unchanged.
func AppendCustomInstructions(systemPrompt, customInstructions string) string {
	if customInstructions == "" {
		return systemPrompt
	}
	return systemPrompt + customInstructionsPrefix + customInstructions
}
