package usecase

import (
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/eduwars-backend/internal/engine"
	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
)

// MockgameEngine is a testify double of the campaign's engine dependency.
type MockgameEngine struct {
	mock.Mock
}

// NewMockgameEngine creates a mock and asserts its expectations when the test ends.
func NewMockgameEngine(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockgameEngine {
	m := &MockgameEngine{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockgameEngine) InitGame(count int, names []string) error {
	return _m.Called(count, names).Error(0)
}

func (_m *MockgameEngine) RestartCampaign() error {
	return _m.Called().Error(0)
}

func (_m *MockgameEngine) PlaceShip(playerIndex int, origin entity.Coordinate, vertical bool) (entity.Ship, error) {
	ret := _m.Called(playerIndex, origin, vertical)
	return ret.Get(0).(entity.Ship), ret.Error(1)
}

func (_m *MockgameEngine) CanPlace(playerIndex int, origin entity.Coordinate, vertical bool) bool {
	return _m.Called(playerIndex, origin, vertical).Bool(0)
}

func (_m *MockgameEngine) RemoveShipAt(playerIndex int, c entity.Coordinate) (bool, error) {
	ret := _m.Called(playerIndex, c)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockgameEngine) UndoLastPlacement(playerIndex int) (bool, error) {
	ret := _m.Called(playerIndex)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockgameEngine) ResetPlacement(playerIndex int) error {
	return _m.Called(playerIndex).Error(0)
}

func (_m *MockgameEngine) ConfirmFleet(playerIndex int) error {
	return _m.Called(playerIndex).Error(0)
}

func (_m *MockgameEngine) PassDeviceComplete() error {
	return _m.Called().Error(0)
}

func (_m *MockgameEngine) AnswerCorrect() error {
	return _m.Called().Error(0)
}

func (_m *MockgameEngine) AnswerWrong() error {
	return _m.Called().Error(0)
}

func (_m *MockgameEngine) Shoot(targetIndex int, c entity.Coordinate) (entity.ShotResult, error) {
	ret := _m.Called(targetIndex, c)
	return ret.Get(0).(entity.ShotResult), ret.Error(1)
}

func (_m *MockgameEngine) ContinueAfterResult(choice engine.Choice) error {
	return _m.Called(choice).Error(0)
}

func (_m *MockgameEngine) Snapshot() engine.Snapshot {
	return _m.Called().Get(0).(engine.Snapshot)
}
