package catalog

import "fmt"

// Topic is the arithmetic operation family a level drills.
type Topic int

const (
	TopicAddition Topic = iota + 1
	TopicSubtraction
	TopicMultiplication
	TopicDivision
	TopicMixed // Multiplication and division, picked per question
)

// AllTopics returns every topic in catalog order.
func AllTopics() []Topic {
	return []Topic{
		TopicAddition,
		TopicSubtraction,
		TopicMultiplication,
		TopicDivision,
		TopicMixed,
	}
}

// String returns the catalog spelling of the topic.
func (t Topic) String() string {
	switch t {
	case TopicAddition:
		return "addition"
	case TopicSubtraction:
		return "subtraction"
	case TopicMultiplication:
		return "multiplication"
	case TopicDivision:
		return "division"
	case TopicMixed:
		return "mixed"
	default:
		return fmt.Sprintf("topic(%d)", int(t))
	}
}

// ParseTopic converts a catalog spelling back to a Topic.
func ParseTopic(s string) (Topic, error) {
	for _, t := range AllTopics() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown topic %q", s)
}

// Hero is a collectible reward granted by beating a level's boss round.
type Hero struct {
	ID       int
	Name     string
	ImageRef string
}

// Level is a named arithmetic topic with an ordinal unlock position.
type Level struct {
	ID          int
	Name        string
	Description string
	Topic       Topic
	RewardID    int // Hero.ID unlocked by the boss round
}
