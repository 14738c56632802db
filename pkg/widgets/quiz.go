package widgets

import (
	"fmt"
	"math"
	"net/url"
	"time"
)

const (
	// AdvanceDelay is the pause between picking an answer and the next step.
	AdvanceDelay = 300 * time.Millisecond
	// RevealTick is the time per point while the final score counts up.
	RevealTick = 20 * time.Millisecond
	// MaxScore caps the displayed score.
	MaxScore = 98
	// EliteThreshold is the score above which the elite verdict is shown.
	EliteThreshold = 85
)

// QuizState is the position of a visitor in the health-score quiz.
// Step 0 is the start screen, 1..Steps are questions.
type QuizState struct {
	Step  int
	Steps int
	Total int
	Final bool
}

// NewQuiz returns a quiz with the given number of question steps.
func NewQuiz(steps int) QuizState {
	return QuizState{Steps: max(steps, 0)}
}

// Event is something the visitor, or a timer, did to the quiz.
type Event interface {
	isQuizEvent()
}

// StartEvent is the click on the start button.
type StartEvent struct{}

// AnswerEvent is the click on an option worth Points.
type AnswerEvent struct {
	Points int
}

// AdvanceEvent fires AdvanceDelay after an answer.
type AdvanceEvent struct{}

func (StartEvent) isQuizEvent()   {}
func (AnswerEvent) isQuizEvent()  {}
func (AdvanceEvent) isQuizEvent() {}

// Effect tells the host what to do after a transition.
type Effect int

const (
	// EffectNone needs no follow-up.
	EffectNone Effect = iota
	// EffectScheduleAdvance asks for an AdvanceEvent after AdvanceDelay.
	EffectScheduleAdvance
	// EffectStartReveal asks the host to start the score reveal.
	EffectStartReveal
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectScheduleAdvance:
		return "schedule-advance"
	case EffectStartReveal:
		return "start-reveal"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// Transition returns the state after ev and the effect the host should
// carry out. Events that make no sense in the current state leave it
// unchanged; there are no backward transitions.
func Transition(s QuizState, ev Event) (QuizState, Effect) {
	if s.Final {
		return s, EffectNone
	}
	switch e := ev.(type) {
	case StartEvent:
		if s.Step != 0 {
			return s, EffectNone
		}
		s.Step = 1
		if s.Step > s.Steps {
			s.Final = true
			return s, EffectStartReveal
		}
		return s, EffectNone
	case AnswerEvent:
		if s.Step < 1 {
			return s, EffectNone
		}
		s.Total += e.Points
		return s, EffectScheduleAdvance
	case AdvanceEvent:
		if s.Step < 1 {
			return s, EffectNone
		}
		s.Step++
		if s.Step > s.Steps {
			s.Final = true
			return s, EffectStartReveal
		}
		return s, EffectNone
	default:
		return s, EffectNone
	}
}

// Score is the score shown for the state's running total.
func (s QuizState) Score() int {
	return TargetScore(s.Total)
}

// TargetScore caps a running total at MaxScore. Negative totals show as 0.
func TargetScore(total int) int {
	return max(0, min(MaxScore, total))
}

// Verdict is the qualitative label for a final score.
type Verdict struct {
	Elite   bool
	Title   string
	Message string
}

// VerdictFor returns the elite verdict for scores above EliteThreshold and
// the strong verdict otherwise.
func VerdictFor(score int) Verdict {
	if score > EliteThreshold {
		return Verdict{
			Elite:   true,
			Title:   "Elite Career Health",
			Message: "You're in the top tier. Your profile is primed for premium opportunities.",
		}
	}
	return Verdict{
		Title:   "Strong Foundation",
		Message: "You're on the right track. A few targeted moves will unlock your next level.",
	}
}

// ScoreReveal counts the displayed score up to Target one point per tick.
type ScoreReveal struct {
	Target  int
	Current int
}

// NewScoreReveal starts a reveal for the capped score of total.
func NewScoreReveal(total int) *ScoreReveal {
	return &ScoreReveal{Target: TargetScore(total)}
}

// Tick advances the display by one point and reports whether the target has
// been reached. Ticking a finished reveal is a no-op.
func (r *ScoreReveal) Tick() bool {
	if r.Current < r.Target {
		r.Current++
	}
	return r.Done()
}

// Done reports whether the display has reached the target.
func (r *ScoreReveal) Done() bool {
	return r.Current >= r.Target
}

// Duration is how long the whole reveal takes at RevealTick per point.
func (r *ScoreReveal) Duration() time.Duration {
	return time.Duration(r.Target) * RevealTick
}

// Dashoffset is the SVG stroke-dashoffset that fills a ring of the given
// circumference in proportion to the current score out of 100.
func (r *ScoreReveal) Dashoffset(circumference float64) float64 {
	return circumference - circumference*float64(r.Current)/100
}

// RingCircumference is the circumference of a score ring of radius r.
func RingCircumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// ShareLinks are the outbound share intents shown after the reveal.
type ShareLinks struct {
	Twitter  string
	LinkedIn string
}

// ShareText is the message embedded in share links.
func ShareText(score int) string {
	return fmt.Sprintf("I just scored %d/100 on my Career Health Score! Check yours:", score)
}

// BuildShareLinks returns the share URLs for score, pointing at pageURL.
func BuildShareLinks(score int, pageURL string) ShareLinks {
	tw := url.Values{}
	tw.Set("text", ShareText(score))
	tw.Set("url", pageURL)

	li := url.Values{}
	li.Set("url", pageURL)

	return ShareLinks{
		Twitter:  "https://twitter.com/intent/tweet?" + tw.Encode(),
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?" + li.Encode(),
	}
}
