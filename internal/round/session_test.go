package round

import (
	"errors"
	"testing"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/problemgen"
)

// fixedSource always returns the same question.
type fixedSource struct {
	q     problemgen.Question
	calls int
}

func (f *fixedSource) Generate(topic catalog.Topic) problemgen.Question {
	f.calls++
	q := f.q
	q.Topic = topic
	return q
}

func newFixedSource() *fixedSource {
	return &fixedSource{q: problemgen.Question{Text: "3 + 4", Operand1: 3, Operand2: 4, Op: problemgen.OpAdd, Answer: 7}}
}

func level1() catalog.Level {
	return catalog.Default().MustLevel(1)
}

func activeSession(t *testing.T, roundsSoFar int) (*Session, *fixedSource) {
	t.Helper()
	src := newFixedSource()
	s := Prepare(level1(), roundsSoFar, src)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s, src
}

func TestPrepare_FreshLearner(t *testing.T) {
	s := Prepare(level1(), 0, newFixedSource())

	if s.IsBoss() {
		t.Error("round 1 should not be a boss round")
	}
	if s.RequiredScore() != NormalPassScore {
		t.Errorf("RequiredScore = %d, want %d", s.RequiredScore(), NormalPassScore)
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, want 0", s.Score())
	}
	if s.Phase() != PhasePreparing {
		t.Errorf("Phase = %s, want preparing", s.Phase())
	}
	if s.RoundNumber() != 1 {
		t.Errorf("RoundNumber = %d, want 1", s.RoundNumber())
	}
}

func TestPrepare_BossDetection(t *testing.T) {
	for passed := 0; passed <= RoundsPerLevel; passed++ {
		s := Prepare(level1(), passed, newFixedSource())
		wantBoss := passed == RoundsPerLevel-1
		if s.IsBoss() != wantBoss {
			t.Errorf("passed=%d: IsBoss = %v, want %v", passed, s.IsBoss(), wantBoss)
		}
		wantReq := NormalPassScore
		if wantBoss {
			wantReq = BossPassScore
		}
		if s.RequiredScore() != wantReq {
			t.Errorf("passed=%d: RequiredScore = %d, want %d", passed, s.RequiredScore(), wantReq)
		}
	}
}

func TestStart_FromPreparingAndCountdown(t *testing.T) {
	src := newFixedSource()
	s := Prepare(level1(), 0, src)
	if err := s.BeginCountdown(); err != nil {
		t.Fatalf("BeginCountdown: %v", err)
	}
	if s.Phase() != PhaseCountingDown {
		t.Fatalf("Phase = %s, want counting-down", s.Phase())
	}
	if _, ok := s.Question(); ok {
		t.Error("no question should be pending before start")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.TimeRemaining() != RoundTimeSeconds {
		t.Errorf("TimeRemaining = %d, want %d", s.TimeRemaining(), RoundTimeSeconds)
	}
	q, ok := s.Question()
	if !ok || q.Text != "3 + 4" {
		t.Errorf("Question = %+v, %v", q, ok)
	}
	if src.calls != 1 {
		t.Errorf("generator calls = %d, want 1", src.calls)
	}
}

func TestStart_Twice(t *testing.T) {
	s, _ := activeSession(t, 0)
	if err := s.Start(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Start err = %v, want ErrInvalidState", err)
	}
	if err := s.BeginCountdown(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("BeginCountdown while active err = %v, want ErrInvalidState", err)
	}
}

func TestStart_BadQuestionPanics(t *testing.T) {
	src := &fixedSource{q: problemgen.Question{Text: "3 + 4", Operand1: 3, Operand2: 4, Op: problemgen.OpAdd, Answer: 8}}
	s := Prepare(level1(), 0, src)

	defer func() {
		if recover() == nil {
			t.Fatal("Start with a miscomputed question should panic")
		}
		if src.calls != 1 {
			t.Errorf("generator calls = %d, want 1", src.calls)
		}
	}()
	_ = s.Start()
}

func TestSubmit_CorrectAndIncorrect(t *testing.T) {
	s, src := activeSession(t, 0)

	res, err := s.Submit(8)
	if err != nil || res != Incorrect {
		t.Fatalf("Submit(8) = %v, %v", res, err)
	}
	if s.Score() != 0 || src.calls != 1 {
		t.Errorf("wrong answer changed state: score=%d calls=%d", s.Score(), src.calls)
	}

	res, err = s.Submit(7)
	if err != nil || res != Correct {
		t.Fatalf("Submit(7) = %v, %v", res, err)
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
	if src.calls != 2 {
		t.Errorf("correct answer should draw a new question, calls = %d", src.calls)
	}
}

func TestSubmit_BeforeStart(t *testing.T) {
	s := Prepare(level1(), 0, newFixedSource())
	if _, err := s.Submit(7); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
	if s.Score() != 0 {
		t.Error("score changed")
	}
}

func TestProgress_Normal(t *testing.T) {
	s, _ := activeSession(t, 0)
	if got := s.Progress(); got != 0 {
		t.Errorf("Progress at 0 = %v", got)
	}
	for i := 0; i < 3; i++ {
		s.Submit(7)
	}
	if got, want := s.Progress(), 3.0/15.0; got != want {
		t.Errorf("Progress = %v, want %v", got, want)
	}
	for i := 0; i < 20; i++ {
		s.Submit(7)
	}
	if got := s.Progress(); got != 1 {
		t.Errorf("Progress past required = %v, want 1", got)
	}
}

func TestProgress_BossHealth(t *testing.T) {
	s, _ := activeSession(t, RoundsPerLevel-1)
	if got := s.Progress(); got != 1 {
		t.Errorf("boss health at start = %v, want 1", got)
	}
	for i := 0; i < 19; i++ {
		s.Submit(7)
	}
	if s.Score() != 19 {
		t.Fatalf("Score = %d, want 19", s.Score())
	}

	res, _ := s.Submit(7)
	if res != Correct || s.Score() != 20 {
		t.Fatalf("Submit = %v, score = %d", res, s.Score())
	}
	if got := s.Progress(); got != 0 {
		t.Errorf("boss health = %v, want 0", got)
	}

	s.Submit(7)
	if got := s.Progress(); got != 0 {
		t.Errorf("boss health past zero = %v, want 0", got)
	}
}

func TestTick_FailsBelowRequired(t *testing.T) {
	s, _ := activeSession(t, 0)
	for i := 0; i < 10; i++ {
		s.Submit(7)
	}
	var out Outcome
	for i := 0; i < RoundTimeSeconds; i++ {
		var err error
		out, err = s.Tick()
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if i < RoundTimeSeconds-1 && out != OutcomeNone {
			t.Fatalf("round ended early at tick %d", i)
		}
	}
	if out != OutcomeFailed || s.Outcome() != OutcomeFailed {
		t.Errorf("outcome = %s, want failed", out)
	}
	if !s.Ended() || s.TimeRemaining() != 0 {
		t.Errorf("ended=%v timeRemaining=%d", s.Ended(), s.TimeRemaining())
	}
}

func TestTick_PassesAtExactlyRequired(t *testing.T) {
	s, _ := activeSession(t, 0)
	for i := 0; i < NormalPassScore; i++ {
		s.Submit(7)
	}
	for i := 0; i < RoundTimeSeconds; i++ {
		s.Tick()
	}
	if s.Outcome() != OutcomePassed {
		t.Errorf("outcome = %s, want passed", s.Outcome())
	}
}

func TestQuit_MidRoundIsTerminal(t *testing.T) {
	s, src := activeSession(t, 0)
	for i := 0; i < 8; i++ {
		s.Submit(7)
	}
	s.Tick()
	if err := s.Quit(); err != nil {
		t.Fatalf("Quit: %v", err)
	}
	if s.Outcome() != OutcomeQuit || !s.Ended() {
		t.Fatalf("outcome=%s ended=%v", s.Outcome(), s.Ended())
	}

	calls, remaining := src.calls, s.TimeRemaining()
	if _, err := s.Tick(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Tick after quit err = %v", err)
	}
	if _, err := s.Submit(7); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Submit after quit err = %v", err)
	}
	if err := s.Quit(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Quit err = %v", err)
	}
	if s.Score() != 8 || s.TimeRemaining() != remaining || src.calls != calls {
		t.Error("terminal session mutated")
	}
	if s.Outcome() != OutcomeQuit {
		t.Errorf("outcome changed to %s", s.Outcome())
	}
}

func TestQuit_BeforeStart(t *testing.T) {
	s := Prepare(level1(), 0, newFixedSource())
	s.BeginCountdown()
	if err := s.Quit(); err != nil {
		t.Fatalf("Quit: %v", err)
	}
	if s.Outcome() != OutcomeQuit {
		t.Errorf("outcome = %s", s.Outcome())
	}
	if err := s.Start(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Start after quit err = %v", err)
	}
}

func TestParseOutcome(t *testing.T) {
	for _, o := range []Outcome{OutcomePassed, OutcomeFailed, OutcomeQuit} {
		got, err := ParseOutcome(o.String())
		if err != nil || got != o {
			t.Errorf("ParseOutcome(%q) = %v, %v", o.String(), got, err)
		}
	}
	if _, err := ParseOutcome("bogus"); err == nil {
		t.Error("expected error for unknown outcome")
	}
}
