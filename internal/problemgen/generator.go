package problemgen

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/abhisek/mathheroes/internal/catalog"
)

// Operand ranges, inclusive.
const (
	MaxSum        = 20 // addition and subtraction stay within 0..20
	MaxFactor     = 12 // multiplication operands and division quotients
	MinDivisor    = 1
	MaxDivisor    = 12
	mixedMultProb = 0.5
)

// Source produces questions for a topic. The round session depends on this
// interface so tests can script the question sequence.
type Source interface {
	Generate(topic catalog.Topic) Question
}

// Generator produces questions from uniform random draws.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

var _ Source = (*Generator)(nil)

// New creates a Generator with a fixed seed, for reproducible sequences.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom creates a Generator seeded from crypto/rand.
func NewRandom() (*Generator, error) {
	seed, err := newSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// Generate produces a question for the given topic.
// An unknown topic is a programming error and panics.
func (g *Generator) Generate(topic catalog.Topic) Question {
	var q Question
	switch topic {
	case catalog.TopicAddition:
		q = g.addition()
	case catalog.TopicSubtraction:
		q = g.subtraction()
	case catalog.TopicMultiplication:
		q = g.multiplication()
	case catalog.TopicDivision:
		q = g.division()
	case catalog.TopicMixed:
		if g.rng.Float64() < mixedMultProb {
			q = g.multiplication()
		} else {
			q = g.division()
		}
	default:
		panic(fmt.Sprintf("problemgen: invalid topic %s", topic))
	}
	q.Topic = topic
	return q
}

func (g *Generator) addition() Question {
	a := g.intn(0, MaxSum)
	b := g.intn(0, MaxSum-a)
	return newQuestion(a, OpAdd, b, a+b)
}

func (g *Generator) subtraction() Question {
	a := g.intn(0, MaxSum)
	b := g.intn(0, a)
	return newQuestion(a, OpSubtract, b, a-b)
}

func (g *Generator) multiplication() Question {
	a := g.intn(0, MaxFactor)
	b := g.intn(0, MaxFactor)
	return newQuestion(a, OpMultiply, b, a*b)
}

// division picks the quotient first so the dividend is always exact.
func (g *Generator) division() Question {
	divisor := g.intn(MinDivisor, MaxDivisor)
	quotient := g.intn(0, MaxFactor)
	return newQuestion(divisor*quotient, OpDivide, divisor, quotient)
}

// intn draws uniformly from [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func newQuestion(a int, op Operator, b int, answer int) Question {
	return Question{
		Text:     fmt.Sprintf("%d %s %d", a, op, b),
		Operand1: a,
		Operand2: b,
		Op:       op,
		Answer:   answer,
	}
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
