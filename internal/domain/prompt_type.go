package domain

// PromptType selects which instructional template is used for a generation
// request.
type PromptType string

// Possible prompt type values
const (
	PromptTypeGeneral   PromptType = "general"
	PromptTypeCreative  PromptType = "creative"
	PromptTypeTechnical PromptType = "technical"
	PromptTypeImage     PromptType = "image"
)

// AllPromptTypes lists every known prompt type in display order.
var AllPromptTypes = []PromptType{
	PromptTypeGeneral,
	PromptTypeCreative,
	PromptTypeTechnical,
	PromptTypeImage,
}

// PromptTypeDescriptor pairs a prompt type value with its human-readable label.
// Used by the /prompt-types endpoint and the CLI type menu.
type PromptTypeDescriptor struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PromptTypeDescriptors returns the static descriptor list for all four
// prompt types.
func PromptTypeDescriptors() []PromptTypeDescriptor {
	return []PromptTypeDescriptor{
		{Value: string(PromptTypeGeneral), Label: "General Purpose"},
		{Value: string(PromptTypeCreative), Label: "Creative Writing"},
		{Value: string(PromptTypeTechnical), Label: "Technical/Programming"},
		{Value: string(PromptTypeImage), Label: "Image Generation"},
	}
}

// ParsePromptType maps an arbitrary string to a PromptType. Unknown values
// (including the empty string) resolve to PromptTypeGeneral so that callers
// never have to handle a parse failure; the second return value reports
// whether the input named a known type.
func ParsePromptType(s string) (PromptType, bool) {
	switch PromptType(s) {
	case PromptTypeGeneral, PromptTypeCreative, PromptTypeTechnical, PromptTypeImage:
		return PromptType(s), true
	default:
		return PromptTypeGeneral, false
	}
}

// IsValid reports whether the prompt type is one of the four known values.
func (p PromptType) IsValid() bool {
	_, ok := ParsePromptType(string(p))
	return ok
}

func (p PromptType) String() string {
	return string(p)
}
