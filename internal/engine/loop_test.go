package engine_test

import (
	"errors"
	"testing"

	"cognitive-rogue/internal/config"
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/engine"
	enginemock "cognitive-rogue/internal/engine/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSession(t *testing.T) *engine.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	s, err := engine.NewSession(cfg)
	require.NoError(t, err)
	return s
}

func TestRun(t *testing.T) {
	errBroken := errors.New("terminal closed")

	tests := []struct {
		name      string
		prepare   func(s *engine.Session)
		setupMock func(m *enginemock.MockFrontend)
		wantErr   error
		wantTurn  int
		wantState engine.RunState
	}{
		{
			name: "quit right after the first frame",
			setupMock: func(m *enginemock.MockFrontend) {
				gomock.InOrder(
					m.EXPECT().Draw(gomock.Any()),
					m.EXPECT().NextCommand().Return(domain.QuitCommand(), nil),
				)
			},
			wantTurn:  1,
			wantState: engine.StatePaused,
		},
		{
			name: "wait advances one step",
			setupMock: func(m *enginemock.MockFrontend) {
				gomock.InOrder(
					m.EXPECT().Draw(gomock.Any()),
					m.EXPECT().NextCommand().Return(domain.WaitCommand(), nil),
					m.EXPECT().Draw(gomock.Any()),
					m.EXPECT().NextCommand().Return(domain.QuitCommand(), nil),
				)
			},
			wantTurn:  2,
			wantState: engine.StatePaused,
		},
		{
			name: "rejected command keeps the simulation paused",
			setupMock: func(m *enginemock.MockFrontend) {
				gomock.InOrder(
					m.EXPECT().Draw(gomock.Any()),
					m.EXPECT().NextCommand().Return(domain.MoveCommand(5, 5), nil),
					m.EXPECT().Draw(gomock.Any()),
					m.EXPECT().NextCommand().Return(domain.QuitCommand(), nil),
				)
			},
			wantTurn:  1,
			wantState: engine.StatePaused,
		},
		{
			name: "frontend error stops the loop",
			setupMock: func(m *enginemock.MockFrontend) {
				m.EXPECT().Draw(gomock.Any())
				m.EXPECT().NextCommand().Return(domain.Command{}, errBroken)
			},
			wantErr:   errBroken,
			wantTurn:  1,
			wantState: engine.StatePaused,
		},
		{
			name: "game over accepts only quit",
			prepare: func(s *engine.Session) {
				s.C.InflictDamage(s.Player(), 1000)
			},
			setupMock: func(m *enginemock.MockFrontend) {
				gomock.InOrder(
					m.EXPECT().Draw(gomock.Any()),
					m.EXPECT().NextCommand().Return(domain.WaitCommand(), nil),
					m.EXPECT().Draw(gomock.Any()),
					m.EXPECT().NextCommand().Return(domain.QuitCommand(), nil),
				)
			},
			wantTurn:  1,
			wantState: engine.StateGameOver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newSession(t)
			if tt.prepare != nil {
				tt.prepare(s)
			}
			front := enginemock.NewMockFrontend(ctrl)
			tt.setupMock(front)

			err := s.Run(front)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantTurn, s.Turn())
			assert.Equal(t, tt.wantState, s.State)
		})
	}
}

func TestSummary(t *testing.T) {
	s := newSession(t)
	s.Step()

	sum := s.Summary()
	assert.Equal(t, s.ID, sum.SessionID)
	assert.Equal(t, int64(42), sum.Seed)
	assert.Equal(t, 1, sum.Turns)
	assert.Equal(t, 30, sum.PlayerHP)
	assert.Equal(t, 30, sum.PlayerMaxHP)
	assert.Equal(t, len(s.Map.Rooms)-1, sum.MonstersAlive)
	assert.Positive(t, sum.Revealed)
}
