package lex

// ValidationResult is the verdict of one slot validation pass.
// ViolatedSlot and Message are empty/nil when IsValid is true.
type ValidationResult struct {
	IsValid      bool     `json:"isValid"`
	ViolatedSlot string   `json:"violatedSlot,omitempty"`
	Message      *Message `json:"message,omitempty"`
}

// BuildValidationResult builds a ValidationResult. An empty messageContent
// yields a result without a message.
func BuildValidationResult(isValid bool, violatedSlot, messageContent string) ValidationResult {
	result := ValidationResult{IsValid: isValid, ViolatedSlot: violatedSlot}
	if messageContent != "" {
		result.Message = PlainText(messageContent)
	}
	return result
}

// Valid is the passing ValidationResult.
func Valid() ValidationResult {
	return BuildValidationResult(true, "", "")
}
