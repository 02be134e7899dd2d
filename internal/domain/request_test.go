package domain

import "testing"

func TestNewGenerationRequest(t *testing.T) {
	t.Parallel() // Enable parallel execution

	req := NewGenerationRequest("a story about a lighthouse", "coastal setting", "creative", "keep it short")

	if req.UserInput != "a story about a lighthouse" {
		t.Errorf("Unexpected user input: %s", req.UserInput)
	}
	if req.Context != "coastal setting" {
		t.Errorf("Unexpected context: %s", req.Context)
	}
	if req.PromptType != PromptTypeCreative {
		t.Errorf("Expected prompt type %s, got %s", PromptTypeCreative, req.PromptType)
	}
	if req.CustomInstructions != "keep it short" {
		t.Errorf("Unexpected custom instructions: %s", req.CustomInstructions)
	}

	// Unknown prompt types fall back to general rather than failing.
	req = NewGenerationRequest("input", "", "haiku", "")
	if req.PromptType != PromptTypeGeneral {
		t.Errorf("Expected fallback to %s, got %s", PromptTypeGeneral, req.PromptType)
	}
}

func TestGenerationRequestValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	valid := GenerationRequest{UserInput: "something", PromptType: PromptTypeGeneral}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	empty := GenerationRequest{PromptType: PromptTypeGeneral}
	if err := empty.Validate(); err != ErrEmptyUserInput {
		t.Errorf("Expected %v, got %v", ErrEmptyUserInput, err)
	}
}

func TestGenerationResultVariants(t *testing.T) {
	t.Parallel() // Enable parallel execution

	tokens := 55
	success := NewSuccessResult("Write a story...", GenerationMetadata{
		Model:      "claude-3-5-sonnet-20241022",
		PromptType: "creative",
		TokensUsed: &tokens,
	})

	if !success.Success {
		t.Error("Expected success variant")
	}
	if success.Metadata == nil {
		t.Fatal("Expected metadata on success variant")
	}
	if success.ErrorMessage != "" {
		t.Errorf("Expected empty error message on success, got %q", success.ErrorMessage)
	}

	failure := NewFailureResult("provider unavailable")
	if failure.Success {
		t.Error("Expected failure variant")
	}
	if failure.Metadata != nil {
		t.Error("Expected nil metadata on failure variant")
	}
	if failure.ErrorMessage != "provider unavailable" {
		t.Errorf("Unexpected error message: %q", failure.ErrorMessage)
	}
}
