package application_test

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// ports.Presenter
type mockPresenter struct {
	mock.Mock
}

func newMockedPresenter() *mockPresenter {
	m := &mockPresenter{}
	m.On("Welcome").Return()
	m.On("InputRequest", mock.Anything).Return()
	m.On("Success").Return()
	m.On("Mnemonic", mock.Anything).Return()
	m.On("Verified", mock.Anything).Return()
	m.On("Entropy", mock.Anything).Return()
	return m
}

func (m *mockPresenter) Welcome() {
	m.Called()
}

func (m *mockPresenter) InputRequest(msg string) {
	m.Called(msg)
}

func (m *mockPresenter) Success() {
	m.Called()
}

func (m *mockPresenter) Mnemonic(words []string) {
	m.Called(words)
}

func (m *mockPresenter) Verified(numOfWords int) {
	m.Called(numOfWords)
}

func (m *mockPresenter) Entropy(hexEntropy string) {
	m.Called(hexEntropy)
}

// ports.PipelineMetrics
type mockMetrics struct {
	mock.Mock
}

func newMockedMetrics() *mockMetrics {
	m := &mockMetrics{}
	m.On("StageCompleted", mock.Anything, mock.Anything).Return()
	m.On("StageFailed", mock.Anything).Return()
	m.On("RunCompleted", mock.Anything, mock.Anything).Return()
	return m
}

func (m *mockMetrics) StageCompleted(stage string, elapsed time.Duration) {
	m.Called(stage, elapsed)
}

func (m *mockMetrics) StageFailed(stage string) {
	m.Called(stage)
}

func (m *mockMetrics) RunCompleted(command string, err error) {
	m.Called(command, err)
}
