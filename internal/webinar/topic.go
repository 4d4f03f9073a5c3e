package webinar

// Topic is the display category of a webinar.
type Topic int

const (
	TopicOther Topic = iota
	TopicNewbornCare
	TopicFeeding
	TopicSleep
	TopicNutrition
)

// DefaultTopicStyle is used for any label that is not a known topic.
const DefaultTopicStyle = "bg-gray-100 text-gray-800 border-gray-200"

// ParseTopic maps a label to a Topic. Matching is exact and case-sensitive;
// everything else is TopicOther.
func ParseTopic(label string) Topic {
	switch label {
	case "Newborn Care":
		return TopicNewbornCare
	case "Feeding":
		return TopicFeeding
	case "Sleep":
		return TopicSleep
	case "Nutrition":
		return TopicNutrition
	default:
		return TopicOther
	}
}

// String returns the canonical label, or "Other".
func (t Topic) String() string {
	switch t {
	case TopicNewbornCare:
		return "Newborn Care"
	case TopicFeeding:
		return "Feeding"
	case TopicSleep:
		return "Sleep"
	case TopicNutrition:
		return "Nutrition"
	default:
		return "Other"
	}
}

// Style returns the badge style tokens for the topic.
func (t Topic) Style() string {
	switch t {
	case TopicNewbornCare:
		return "bg-blue-100 text-blue-800 border-blue-200"
	case TopicFeeding:
		return "bg-green-100 text-green-800 border-green-200"
	case TopicSleep:
		return "bg-purple-100 text-purple-800 border-purple-200"
	case TopicNutrition:
		return "bg-orange-100 text-orange-800 border-orange-200"
	default:
		return DefaultTopicStyle
	}
}

// TopicColor resolves a raw topic label straight to its style tokens.
func TopicColor(label string) string {
	return ParseTopic(label).Style()
}
