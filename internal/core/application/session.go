package application

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/seedgen/internal/core/ports"
	"github.com/vulpemventures/seedgen/pkg/mnemonic"
	"github.com/vulpemventures/seedgen/pkg/secret"
)

const (
	secretRequest   = "Input a hex secret key of 256 bit:"
	passwordRequest = "Input your Password:"
	mnemonicRequest = "Input the mnemonic phrase to verify:"
)

// Session drives a single interactive run: it reads inputs line by line,
// hands them to the generator and forwards results to the presenter. Any
// error aborts the run before anything is rendered for the failing stage.
type Session struct {
	generator *GeneratorService
	input     ports.LineReader
	presenter ports.Presenter
}

func NewSession(
	generator *GeneratorService, input ports.LineReader, presenter ports.Presenter,
) *Session {
	return &Session{generator, input, presenter}
}

// Generate reads a 0x prefixed hex secret and a password then renders the
// resulting mnemonic.
func (s *Session) Generate() (err error) {
	defer func() {
		s.generator.metrics.RunCompleted(CommandGenerate, err)
	}()

	s.presenter.Welcome()

	s.presenter.InputRequest(secretRequest)
	seed, err := s.readSecret()
	if err != nil {
		return err
	}
	s.presenter.Success()

	s.presenter.InputRequest(passwordRequest)
	password, err := s.readPassword()
	if err != nil {
		seed.Zero()
		return err
	}
	s.presenter.Success()

	m, err := s.generator.Generate(seed, password)
	if err != nil {
		return err
	}

	log.Debugf("session: generated %d-words mnemonic", m.Len())
	s.presenter.Mnemonic(m.Words())
	return nil
}

// Verify reads a mnemonic phrase and checks it. The encoded entropy is
// rendered only if showEntropy is true.
func (s *Session) Verify(showEntropy bool) (err error) {
	defer func() {
		s.generator.metrics.RunCompleted(CommandVerify, err)
	}()

	s.presenter.InputRequest(mnemonicRequest)
	start := time.Now()
	phrase, err := s.input.ReadLine()
	if err != nil {
		s.generator.metrics.StageFailed(StageReadMnemonic)
		return stageError(StageReadMnemonic, err)
	}
	s.generator.metrics.StageCompleted(StageReadMnemonic, time.Since(start))

	words := mnemonic.SplitPhrase(phrase)
	entropy, err := s.generator.verify(words)
	if err != nil {
		return err
	}
	defer entropy.Zero()

	s.presenter.Verified(len(words))
	if showEntropy {
		s.presenter.Entropy(entropy.Hex())
	}
	return nil
}

func (s *Session) readSecret() (*secret.Buffer, error) {
	start := time.Now()
	line, err := s.input.ReadLine()
	if err != nil {
		s.generator.metrics.StageFailed(StageReadSecret)
		return nil, stageError(StageReadSecret, err)
	}

	seed, err := secret.ParseHex(line, secret.SeedSize)
	if err != nil {
		s.generator.metrics.StageFailed(StageReadSecret)
		return nil, stageError(StageReadSecret, err)
	}

	s.generator.metrics.StageCompleted(StageReadSecret, time.Since(start))
	return seed, nil
}

func (s *Session) readPassword() ([]byte, error) {
	start := time.Now()
	line, err := s.input.ReadLine()
	if err != nil {
		s.generator.metrics.StageFailed(StageReadPassword)
		return nil, stageError(StageReadPassword, err)
	}

	s.generator.metrics.StageCompleted(StageReadPassword, time.Since(start))
	return []byte(line), nil
}
