package application_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	"github.com/vulpemventures/seedgen/internal/core/application"
	"github.com/vulpemventures/seedgen/internal/infrastructure/input"
	"github.com/vulpemventures/seedgen/pkg/kdf"
	"github.com/vulpemventures/seedgen/pkg/secret"
)

func TestSessionGenerate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		presenter := newMockedPresenter()
		metrics := newMockedMetrics()
		session := newSession(regressionSeed+"\n"+regressionPassword+"\n", presenter, metrics)

		require.NoError(t, session.Generate())

		expected, err := bip39.NewMnemonic(mustHex(t, regressionEntropy))
		require.NoError(t, err)

		presenter.AssertCalled(t, "Welcome")
		presenter.AssertNumberOfCalls(t, "InputRequest", 2)
		presenter.AssertNumberOfCalls(t, "Success", 2)
		presenter.AssertCalled(t, "Mnemonic", strings.Fields(expected))
		metrics.AssertCalled(t, "RunCompleted", application.CommandGenerate, nil)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name          string
			input         string
			expectedErr   error
			expectedStage string
		}{
			{"no input", "", input.ErrReadingBuffer, application.StageReadSecret},
			{"missing hex prefix", regressionSeed[2:] + "\n" + regressionPassword + "\n", secret.ErrHexDecoding, application.StageReadSecret},
			{"short secret", "0x00\n" + regressionPassword + "\n", secret.ErrHexDecoding, application.StageReadSecret},
			{"missing password", regressionSeed + "\n", input.ErrReadingBuffer, application.StageReadPassword},
		}

		for _, tt := range tests {
			presenter := newMockedPresenter()
			metrics := newMockedMetrics()
			session := newSession(tt.input, presenter, metrics)

			err := session.Generate()
			require.ErrorIs(t, err, tt.expectedErr, tt.name)

			var stageErr *application.StageError
			require.ErrorAs(t, err, &stageErr)
			require.Equal(t, tt.expectedStage, stageErr.Stage, tt.name)

			presenter.AssertNotCalled(t, "Mnemonic", mock.Anything)
			metrics.AssertCalled(t, "StageFailed", tt.expectedStage)
			metrics.AssertCalled(t, "RunCompleted", application.CommandGenerate, err)
		}
	})
}

func TestSessionVerify(t *testing.T) {
	t.Parallel()

	phrase, err := bip39.NewMnemonic(mustHex(t, regressionEntropy))
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		presenter := newMockedPresenter()
		session := newSession(phrase+"\n", presenter, newMockedMetrics())
		require.NoError(t, session.Verify(false))
		presenter.AssertCalled(t, "Verified", 24)
		presenter.AssertNotCalled(t, "Entropy", mock.Anything)

		presenter = newMockedPresenter()
		session = newSession(phrase+"\n", presenter, newMockedMetrics())
		require.NoError(t, session.Verify(true))
		presenter.AssertCalled(t, "Entropy", regressionEntropy)
	})

	t.Run("valid 12 words", func(t *testing.T) {
		t.Parallel()

		short := strings.Repeat("abandon ", 11) + "about"
		presenter := newMockedPresenter()
		session := newSession(short+"\n", presenter, newMockedMetrics())
		require.NoError(t, session.Verify(true))
		presenter.AssertCalled(t, "Verified", 12)
		presenter.AssertCalled(t, "Entropy", strings.Repeat("00", 16))
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		presenter := newMockedPresenter()
		metrics := newMockedMetrics()
		session := newSession("", presenter, metrics)
		err := session.Verify(true)
		require.ErrorIs(t, err, input.ErrReadingBuffer)
		metrics.AssertCalled(t, "StageFailed", application.StageReadMnemonic)

		words := strings.Fields(phrase)
		session = newSession(strings.Join(words[:12], " ")+"\n", presenter, metrics)
		require.Error(t, session.Verify(true))

		presenter.AssertNotCalled(t, "Verified", mock.Anything)
		presenter.AssertNotCalled(t, "Entropy", mock.Anything)
	})
}

func newSession(
	in string, presenter *mockPresenter, metrics *mockMetrics,
) *application.Session {
	svc := application.NewGeneratorService(kdf.DefaultLabel, nil, metrics)
	return application.NewSession(svc, input.NewLineReader(strings.NewReader(in)), presenter)
}
