package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type RepoSuite struct {
	suite.Suite
	store    *Store
	progress ProgressRepo
	events   RoundEventRepo
	ctx      context.Context
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(RepoSuite))
}

func (s *RepoSuite) SetupTest() {
	name := strings.ReplaceAll(s.T().Name(), "/", "_")
	st, err := Open("file:" + name + "?mode=memory&cache=shared")
	s.Require().NoError(err)
	s.store = st
	s.progress = st.ProgressRepo()
	s.events = st.RoundEventRepo()
	s.ctx = context.Background()
}

func (s *RepoSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *RepoSuite) TestProgress_LoadMissing() {
	rec, err := s.progress.Load(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Assert().Nil(rec)
}

func (s *RepoSuite) TestProgress_SaveAndLoad() {
	err := s.progress.Save(s.ctx, &ProgressRecord{
		LearnerID:       "alice",
		UnlockedLevels:  []int{2, 1},
		UnlockedRewards: []int{1},
		RoundsPassed:    map[int]int{1: 5, 2: 1},
	})
	s.Require().NoError(err)

	rec, err := s.progress.Load(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(rec)
	s.Assert().Equal("alice", rec.LearnerID)
	s.Assert().Equal([]int{1, 2}, rec.UnlockedLevels)
	s.Assert().Equal([]int{1}, rec.UnlockedRewards)
	s.Assert().Equal(map[int]int{1: 5, 2: 1}, rec.RoundsPassed)
	s.Assert().False(rec.UpdatedAt.IsZero())
}

func (s *RepoSuite) TestProgress_SaveOverwrites() {
	s.Require().NoError(s.progress.Save(s.ctx, &ProgressRecord{LearnerID: "alice", UnlockedLevels: []int{1}, RoundsPassed: map[int]int{1: 1}}))
	s.Require().NoError(s.progress.Save(s.ctx, &ProgressRecord{LearnerID: "alice", UnlockedLevels: []int{1}, RoundsPassed: map[int]int{1: 2}}))

	rec, err := s.progress.Load(s.ctx, "alice")
	s.Require().NoError(err)
	s.Assert().Equal(2, rec.RoundsPassed[1])

	n, err := s.store.client.PlayerProgress.Query().Count(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(1, n)
}

func (s *RepoSuite) TestProgress_SaveRequiresLearner() {
	s.Assert().Error(s.progress.Save(s.ctx, &ProgressRecord{}))
}

func (s *RepoSuite) TestProgress_LearnersAndDelete() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.progress.Save(s.ctx, &ProgressRecord{LearnerID: "alice", UpdatedAt: base}))
	s.Require().NoError(s.progress.Save(s.ctx, &ProgressRecord{LearnerID: "bob", UpdatedAt: base.Add(time.Hour)}))

	ids, err := s.progress.Learners(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"bob", "alice"}, ids)

	s.Require().NoError(s.progress.Delete(s.ctx, "bob"))
	s.Require().NoError(s.progress.Delete(s.ctx, "bob"))

	rec, err := s.progress.Load(s.ctx, "bob")
	s.Require().NoError(err)
	s.Assert().Nil(rec)
}

func (s *RepoSuite) appendRounds(learner string, outcomes ...string) {
	for i, o := range outcomes {
		err := s.events.Append(s.ctx, &RoundEvent{
			RoundID:       fmt.Sprintf("%s-%d", learner, i),
			LearnerID:     learner,
			LevelID:       1 + i%2,
			IsBoss:        i == len(outcomes)-1,
			Outcome:       o,
			Score:         10 + i,
			RequiredScore: 15,
		})
		s.Require().NoError(err)
	}
}

func (s *RepoSuite) TestEvents_ListNewestFirst() {
	s.appendRounds("alice", "failed", "passed", "quit")
	s.appendRounds("bob", "passed")

	events, err := s.events.List(s.ctx, "alice", QueryOpts{})
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Assert().Equal("alice-2", events[0].RoundID)
	s.Assert().Equal("quit", events[0].Outcome)
	s.Assert().True(events[0].IsBoss)
	s.Assert().False(events[1].IsBoss)
	s.Assert().Equal("alice-0", events[2].RoundID)
	s.Assert().Greater(events[0].Sequence, events[1].Sequence)
}

func (s *RepoSuite) TestEvents_Filters() {
	s.appendRounds("alice", "failed", "passed", "passed", "quit")

	limited, err := s.events.List(s.ctx, "alice", QueryOpts{Limit: 2})
	s.Require().NoError(err)
	s.Assert().Len(limited, 2)

	level2, err := s.events.List(s.ctx, "alice", QueryOpts{LevelID: 2})
	s.Require().NoError(err)
	s.Assert().Len(level2, 2)
	for _, ev := range level2 {
		s.Assert().Equal(2, ev.LevelID)
	}

	passed, err := s.events.List(s.ctx, "alice", QueryOpts{Outcome: "passed"})
	s.Require().NoError(err)
	s.Assert().Len(passed, 2)
}

func (s *RepoSuite) TestEvents_DuplicateRoundID() {
	ev := &RoundEvent{RoundID: "dup", LearnerID: "alice", LevelID: 1, Outcome: "passed"}
	s.Require().NoError(s.events.Append(s.ctx, ev))
	s.Assert().NotZero(ev.Sequence)
	s.Assert().Error(s.events.Append(s.ctx, &RoundEvent{RoundID: "dup", LearnerID: "alice", LevelID: 1, Outcome: "failed"}))
}

func (s *RepoSuite) TestEvents_CountsAndDelete() {
	s.appendRounds("alice", "failed", "passed", "passed", "quit")
	s.appendRounds("bob", "failed")

	counts, err := s.events.Counts(s.ctx, "alice")
	s.Require().NoError(err)
	s.Assert().Equal(OutcomeCounts{"failed": 1, "passed": 2, "quit": 1}, counts)

	s.Require().NoError(s.events.DeleteLearner(s.ctx, "alice"))

	events, err := s.events.List(s.ctx, "alice", QueryOpts{})
	s.Require().NoError(err)
	s.Assert().Empty(events)

	bob, err := s.events.Counts(s.ctx, "bob")
	s.Require().NoError(err)
	s.Assert().Equal(1, bob["failed"])
}
