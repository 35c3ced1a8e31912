package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-vault/internal/codec"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/models"
)

// errCorruptedSalt marks a stored salt that is not base64 of SaltSize bytes,
// or a missing salt next to an existing envelope.
var errCorruptedSalt = errors.New("stored salt is corrupted")

// VaultSession is the single owner of the derived key and of the decrypted
// entries. The zero value is not usable; construct with NewVaultSession.
type VaultSession struct {
	store       store.KVStore
	kdf         crypto.KeyDerivation
	cipher      crypto.AuthenticatedCipher
	ids         IDGenerator
	saltKey     string
	envelopeKey string
	logger      *logger.Logger
	now         func() time.Time

	// opMu serializes Unlock, AddEntry, DeleteEntry and Lock.
	opMu sync.Mutex

	// stateMu guards the fields below; writers also hold opMu.
	stateMu      sync.RWMutex
	state        State
	key          *crypto.DerivedKey
	entries      []models.Entry
	lastActivity time.Time
}

// NewVaultSession returns a locked session that keeps its salt and envelope
// under cfg.SaltKey and cfg.EnvelopeKey in kv.
func NewVaultSession(
	kv store.KVStore,
	kdf crypto.KeyDerivation,
	cipher crypto.AuthenticatedCipher,
	ids IDGenerator,
	cfg config.Storage,
	log *logger.Logger,
) *VaultSession {
	return &VaultSession{
		store:       kv,
		kdf:         kdf,
		cipher:      cipher,
		ids:         ids,
		saltKey:     cfg.SaltKey,
		envelopeKey: cfg.EnvelopeKey,
		logger:      log,
		now:         time.Now,
		state:       StateLocked,
	}
}

// Unlock derives the key from password, loading the salt or creating it on
// first use, and opens the stored envelope. A vault without an envelope
// unlocks empty.
//
// Authentication and decoding failures are reported as ErrUnlockFailed and
// leave the session locked. Store failures are returned wrapped and also
// leave it locked.
func (s *VaultSession) Unlock(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.State() == StateUnlocked {
		return ErrAlreadyUnlocked
	}

	s.setState(StateUnlocking)
	ctx, log := s.operationLogger(ctx, "unlock")

	key, entries, err := s.open(ctx, password)
	if err != nil {
		s.setState(StateLocked)
		log.Warn().Err(err).Str("func", "*VaultSession.Unlock").Msg("unlock failed")
		return err
	}

	s.stateMu.Lock()
	s.key = key
	s.entries = entries
	s.state = StateUnlocked
	s.lastActivity = s.now()
	s.stateMu.Unlock()

	log.Info().Str("func", "*VaultSession.Unlock").Int("entries", len(entries)).Msg("vault unlocked")
	return nil
}

func (s *VaultSession) open(ctx context.Context, password string) (*crypto.DerivedKey, []models.Entry, error) {
	salt, err := s.loadOrCreateSalt(ctx)
	if err != nil {
		if errors.Is(err, errCorruptedSalt) {
			return nil, nil, fmt.Errorf("%w: %w", ErrUnlockFailed, err)
		}
		return nil, nil, err
	}

	key, err := s.kdf.DeriveKey(password, salt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}

	envelope, found, err := s.store.Get(ctx, s.envelopeKey)
	if err != nil {
		key.Destroy()
		return nil, nil, fmt.Errorf("load envelope: %w", err)
	}
	if !found {
		return key, []models.Entry{}, nil
	}

	plaintext, err := s.cipher.Open(key, envelope)
	if err != nil {
		key.Destroy()
		return nil, nil, fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}
	defer crypto.Zeroize(plaintext)

	entries, err := codec.Decode(plaintext)
	if err != nil {
		key.Destroy()
		return nil, nil, fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}

	return key, entries, nil
}

// loadOrCreateSalt never overwrites a stored salt, even an unreadable one.
func (s *VaultSession) loadOrCreateSalt(ctx context.Context) ([]byte, error) {
	encoded, found, err := s.store.Get(ctx, s.saltKey)
	if err != nil {
		return nil, fmt.Errorf("load salt: %w", err)
	}

	if found {
		salt, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil || len(salt) != crypto.SaltSize {
			return nil, errCorruptedSalt
		}
		return salt, nil
	}

	// an envelope without its salt can never be opened again
	_, envelopeFound, err := s.store.Get(ctx, s.envelopeKey)
	if err != nil {
		return nil, fmt.Errorf("load envelope: %w", err)
	}
	if envelopeFound {
		return nil, errCorruptedSalt
	}

	salt, err := s.kdf.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	if err := s.store.Set(ctx, s.saltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, fmt.Errorf("save salt: %w", err)
	}

	logger.FromContextOr(ctx, s.logger).Info().Str("func", "*VaultSession.loadOrCreateSalt").Msg("created new vault salt")
	return salt, nil
}

// AddEntry appends a new entry and rewrites the envelope. The in-memory
// entries only change once the envelope has been stored.
func (s *VaultSession) AddEntry(ctx context.Context, title, content string) (models.Entry, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.State() != StateUnlocked {
		return models.Entry{}, ErrLocked
	}
	if !validField(title) || !validField(content) {
		return models.Entry{}, ErrValidation
	}

	ctx, log := s.operationLogger(ctx, "add_entry")

	entry := models.Entry{
		ID:      s.ids.Generate(),
		Title:   title,
		Content: content,
	}
	next := append(slices.Clone(s.entries), entry)

	if err := s.persist(ctx, next); err != nil {
		log.Err(err).Str("func", "*VaultSession.AddEntry").Msg("error persisting vault")
		return models.Entry{}, err
	}

	s.commit(next)
	log.Debug().Str("func", "*VaultSession.AddEntry").Int("entries", len(next)).Msg("entry added")
	return entry, nil
}

// DeleteEntry removes the entry with id and rewrites the envelope. An unknown
// id is not an error and writes nothing.
func (s *VaultSession) DeleteEntry(ctx context.Context, id string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.State() != StateUnlocked {
		return ErrLocked
	}

	idx := slices.IndexFunc(s.entries, func(e models.Entry) bool { return e.ID == id })
	if idx < 0 {
		s.Touch()
		return nil
	}

	ctx, log := s.operationLogger(ctx, "delete_entry")
	next := slices.Delete(slices.Clone(s.entries), idx, idx+1)
	if err := s.persist(ctx, next); err != nil {
		log.Err(err).Str("func", "*VaultSession.DeleteEntry").Msg("error persisting vault")
		return err
	}

	s.commit(next)
	log.Debug().Str("func", "*VaultSession.DeleteEntry").Int("entries", len(next)).Msg("entry deleted")
	return nil
}

// validField rejects blank text and bytes that are not UTF-8; the codec
// would store the latter as U+FFFD and the entry would not read back as typed.
func validField(v string) bool {
	return utf8.ValidString(v) && strings.TrimSpace(v) != ""
}

func (s *VaultSession) persist(ctx context.Context, entries []models.Entry) error {
	payload, err := codec.Encode(entries)
	if err != nil {
		return err
	}
	defer crypto.Zeroize(payload)

	envelope, err := s.cipher.Seal(s.key, payload)
	if err != nil {
		return fmt.Errorf("seal vault: %w", err)
	}

	if err := s.store.Set(ctx, s.envelopeKey, envelope); err != nil {
		return fmt.Errorf("save envelope: %w", err)
	}
	return nil
}

// operationLogger derives a child logger tagged with op and attaches it to
// ctx, so store backends log under the same operation.
func (s *VaultSession) operationLogger(ctx context.Context, op string) (context.Context, *logger.Logger) {
	child := s.logger.GetChildLogger()
	child.Logger = child.With().Str("op", op).Logger()
	return child.WithContext(ctx), child
}

func (s *VaultSession) commit(entries []models.Entry) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.entries = entries
	s.lastActivity = s.now()
}

// Lock wipes the key and forgets the entries. Nothing is written. Calling
// Lock on a locked session does nothing.
func (s *VaultSession) Lock() {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if s.state == StateLocked {
		return
	}

	s.key.Destroy()
	s.key = nil
	s.entries = nil
	s.state = StateLocked

	s.logger.Info().Str("func", "*VaultSession.Lock").Msg("vault locked")
}

// State returns the current lifecycle phase.
func (s *VaultSession) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Entries returns a copy of the entries in insertion order, or nil when the
// session is not unlocked.
func (s *VaultSession) Entries() []models.Entry {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	if s.state != StateUnlocked {
		return nil
	}
	return slices.Clone(s.entries)
}

// Touch records user activity for the auto-lock timer.
func (s *VaultSession) Touch() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.lastActivity = s.now()
}

// IdleFor reports how long the session has gone without activity. It is zero
// for a session that is not unlocked.
func (s *VaultSession) IdleFor() time.Duration {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	if s.state != StateUnlocked {
		return 0
	}
	return s.now().Sub(s.lastActivity)
}

func (s *VaultSession) setState(state State) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state = state
}
