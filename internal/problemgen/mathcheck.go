package problemgen

import "fmt"

// Verify recomputes a question's answer from its operands and checks that
// the operands respect the ranges of the rule that produced it.
func Verify(q Question) error {
	a, b := q.Operand1, q.Operand2

	var want int
	switch q.Op {
	case OpAdd:
		if a < 0 || b < 0 || a+b > MaxSum {
			return fmt.Errorf("addition %q out of range", q.Text)
		}
		want = a + b
	case OpSubtract:
		if a < 0 || a > MaxSum || b < 0 || b > a {
			return fmt.Errorf("subtraction %q out of range", q.Text)
		}
		want = a - b
	case OpMultiply:
		if a < 0 || a > MaxFactor || b < 0 || b > MaxFactor {
			return fmt.Errorf("multiplication %q out of range", q.Text)
		}
		want = a * b
	case OpDivide:
		if b < MinDivisor || b > MaxDivisor {
			return fmt.Errorf("division %q has divisor out of range", q.Text)
		}
		if a%b != 0 {
			return fmt.Errorf("division %q leaves a remainder", q.Text)
		}
		want = a / b
		if want < 0 || want > MaxFactor {
			return fmt.Errorf("division %q has quotient out of range", q.Text)
		}
	default:
		return fmt.Errorf("unknown operator %q", q.Op)
	}

	if want != q.Answer {
		return fmt.Errorf("computed %d but question claims %d for %q", want, q.Answer, q.Text)
	}
	if q.Text != fmt.Sprintf("%d %s %d", a, q.Op, b) {
		return fmt.Errorf("text %q does not match operands", q.Text)
	}
	return nil
}
