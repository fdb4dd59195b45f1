package problemgen

import "github.com/abhisek/mathheroes/internal/catalog"

// Operator is the arithmetic operation a question asks for.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "×"
	OpDivide   Operator = "÷"
)

// Question is a generated arithmetic problem ready for display.
type Question struct {
	// Text is the prompt shown to the learner, e.g. "7 + 5" or "56 ÷ 8".
	Text string

	// Operand1 and Operand2 are the left and right operands as displayed.
	// For division Operand1 is the dividend and Operand2 the divisor.
	Operand1 int
	Operand2 int

	Op Operator

	// Answer is the exact integer result.
	Answer int

	// Topic is the level topic the question was generated for. For mixed
	// levels this stays TopicMixed while Op records the rule that was used.
	Topic catalog.Topic
}
