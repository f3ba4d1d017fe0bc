package application

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/seedgen/internal/core/ports"
	"github.com/vulpemventures/seedgen/pkg/kdf"
	"github.com/vulpemventures/seedgen/pkg/mnemonic"
	"github.com/vulpemventures/seedgen/pkg/secret"
)

// GeneratorService turns a secret and a password into a mnemonic and
// verifies mnemonics back:
//   - Derive 256 bits of entropy from seed and password with HKDF-SHA256.
//   - Encode the entropy into a 24-words mnemonic.
//   - Decode a mnemonic into its entropy after checking its checksum.
//
// The service holds no mutable state, the same inputs always produce the
// same output.
type GeneratorService struct {
	label      []byte
	dictionary *mnemonic.Dictionary
	metrics    ports.PipelineMetrics
}

// NewGeneratorService returns a new service. The label is the HKDF info and
// changing it changes every generated mnemonic. A nil dictionary defaults to
// English, nil metrics disable stats collection.
func NewGeneratorService(
	label string, dictionary *mnemonic.Dictionary, metrics ports.PipelineMetrics,
) *GeneratorService {
	if dictionary == nil {
		dictionary = mnemonic.English
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &GeneratorService{[]byte(label), dictionary, metrics}
}

// Generate returns the mnemonic for the given seed and password. The service
// takes ownership of both: they are zeroed once the entropy is derived, no
// matter the outcome.
func (s *GeneratorService) Generate(
	seed *secret.Buffer, password []byte,
) (*mnemonic.Mnemonic, error) {
	entropy, err := s.derive(seed, password)
	if err != nil {
		return nil, err
	}
	defer entropy.Zero()

	return s.encode(entropy)
}

// Verify checks the given phrase and returns the entropy it encodes.
func (s *GeneratorService) Verify(phrase string) (*secret.Buffer, error) {
	return s.verify(mnemonic.SplitPhrase(phrase))
}

func (s *GeneratorService) verify(words []string) (*secret.Buffer, error) {
	start := time.Now()
	log.Debug("generator: decoding mnemonic")

	raw, err := mnemonic.Decode(mnemonic.DecodeArgs{
		Words:      words,
		Dictionary: s.dictionary,
	})
	if err != nil {
		s.metrics.StageFailed(StageDecode)
		return nil, stageError(StageDecode, err)
	}
	entropy, err := secret.FromBytes(raw, len(raw))
	zero(raw)
	if err != nil {
		s.metrics.StageFailed(StageDecode)
		return nil, stageError(StageDecode, err)
	}

	s.metrics.StageCompleted(StageDecode, time.Since(start))
	return entropy, nil
}

func (s *GeneratorService) derive(
	seed *secret.Buffer, password []byte,
) (*secret.Buffer, error) {
	defer func() {
		if seed != nil {
			seed.Zero()
		}
		zero(password)
	}()

	start := time.Now()
	log.Debug("generator: deriving entropy")

	entropy, err := kdf.Derive(kdf.DeriveArgs{
		Seed:     seed,
		Password: password,
		Label:    s.label,
		Length:   secret.EntropySize,
	})
	if err != nil {
		s.metrics.StageFailed(StageDerive)
		return nil, stageError(StageDerive, err)
	}

	s.metrics.StageCompleted(StageDerive, time.Since(start))
	return entropy, nil
}

func (s *GeneratorService) encode(
	entropy *secret.Buffer,
) (*mnemonic.Mnemonic, error) {
	start := time.Now()
	log.Debug("generator: encoding mnemonic")

	m, err := mnemonic.Encode(mnemonic.EncodeArgs{
		Entropy:    entropy.Bytes(),
		Dictionary: s.dictionary,
	})
	if err != nil {
		s.metrics.StageFailed(StageEncode)
		return nil, stageError(StageEncode, err)
	}

	s.metrics.StageCompleted(StageEncode, time.Since(start))
	return m, nil
}

type noopMetrics struct{}

func (noopMetrics) StageCompleted(string, time.Duration) {}
func (noopMetrics) StageFailed(string)                   {}
func (noopMetrics) RunCompleted(string, error)           {}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
