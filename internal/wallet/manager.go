package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
)

// Wallet types.
const (
	TypeWatchOnly = "watch-only"
	TypeSigning   = "signing"
)

// Errors.
var (
	ErrWalletNotFound = errors.New("wallet not found")
	ErrWalletExists   = errors.New("wallet already exists")
	ErrInvalidKey     = errors.New("invalid private key")
	ErrInvalidAddress = errors.New("invalid address")
)

// Wallet holds metadata for a single wallet. The private key of a signing
// wallet lives in the OS keychain, referenced by KeyRef — never here.
type Wallet struct {
	Name      string `json:"name"`
	Address   string `json:"address"` // base58 public key
	Type      string `json:"type"`
	KeyRef    string `json:"key_ref,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PublicKey parses the wallet address.
func (w *Wallet) PublicKey() (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(w.Address)
}

// Store is an interface for persisting wallets.
type Store interface {
	Load() ([]*Wallet, error)
	Save([]*Wallet) error
}

// Manager handles wallet CRUD.
type Manager struct {
	store   Store
	ks      KeyStorage
	wallets map[string]*Wallet
	loaded  bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore sets a custom wallet store.
func WithStore(s Store) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithKeystore sets a custom key storage (in-memory for tests).
func WithKeystore(ks KeyStorage) Option {
	return func(m *Manager) {
		m.ks = ks
	}
}

// NewManager creates a new wallet manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		wallets: make(map[string]*Wallet),
		store:   &memStore{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.ks == nil {
		m.ks = DefaultKeystore()
	}
	return m
}

// Add registers a watch-only wallet after validating its address.
func (m *Manager) Add(name string, w *Wallet) error {
	if err := m.load(); err != nil {
		return err
	}
	if _, exists := m.wallets[name]; exists {
		return ErrWalletExists
	}
	if _, err := solana.PublicKeyFromBase58(w.Address); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if w.CreatedAt == "" {
		w.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	m.wallets[name] = w
	return m.persist()
}

// AddWithKey derives the address from a base58 ed25519 private key and
// stores the wallet. The key itself goes to the keystore.
func (m *Manager) AddWithKey(name, base58Key string) error {
	if err := m.load(); err != nil {
		return err
	}
	if _, exists := m.wallets[name]; exists {
		return ErrWalletExists
	}

	privKey, err := solana.PrivateKeyFromBase58(base58Key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	ref, err := m.ks.Store(name, base58Key)
	if err != nil {
		return fmt.Errorf("storing key: %w", err)
	}

	m.wallets[name] = &Wallet{
		Name:      name,
		Address:   privKey.PublicKey().String(),
		Type:      TypeSigning,
		KeyRef:    ref,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return m.persist()
}

// Generate creates a brand-new keypair, stores the key, and returns the
// wallet plus the base58 private key for one-time display.
func (m *Manager) Generate(name string) (*Wallet, string, error) {
	if err := m.load(); err != nil {
		return nil, "", err
	}
	if _, exists := m.wallets[name]; exists {
		return nil, "", ErrWalletExists
	}

	privKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, "", fmt.Errorf("generating keypair: %w", err)
	}

	ref, err := m.ks.Store(name, privKey.String())
	if err != nil {
		return nil, "", fmt.Errorf("storing key: %w", err)
	}

	w := &Wallet{
		Name:      name,
		Address:   privKey.PublicKey().String(),
		Type:      TypeSigning,
		KeyRef:    ref,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	m.wallets[name] = w
	if err := m.persist(); err != nil {
		return nil, "", err
	}
	return w, privKey.String(), nil
}

// ExportKey retrieves the stored private key of a signing wallet.
func (m *Manager) ExportKey(name string) (string, error) {
	w, err := m.Get(name)
	if err != nil {
		return "", err
	}
	if w.Type != TypeSigning {
		return "", fmt.Errorf("wallet %q is watch-only and holds no key", name)
	}
	return m.ks.Retrieve(w.KeyRef)
}

// Get returns a wallet by name.
func (m *Manager) Get(name string) (*Wallet, error) {
	if err := m.load(); err != nil {
		return nil, err
	}
	w, ok := m.wallets[name]
	if !ok {
		return nil, ErrWalletNotFound
	}
	return w, nil
}

// Remove deletes a wallet and, for signing wallets, its stored key.
func (m *Manager) Remove(name string) error {
	if err := m.load(); err != nil {
		return err
	}
	w, ok := m.wallets[name]
	if !ok {
		return ErrWalletNotFound
	}
	if w.KeyRef != "" {
		m.ks.Delete(w.KeyRef) //nolint:errcheck
	}
	delete(m.wallets, name)
	return m.persist()
}

// List returns all wallets.
func (m *Manager) List() []*Wallet {
	m.load() //nolint:errcheck
	out := make([]*Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		out = append(out, w)
	}
	return out
}

// SetDefault marks a wallet as the default.
func (m *Manager) SetDefault(name string) error {
	if err := m.load(); err != nil {
		return err
	}
	if _, ok := m.wallets[name]; !ok {
		return ErrWalletNotFound
	}
	for _, w := range m.wallets {
		w.IsDefault = w.Name == name
	}
	return m.persist()
}

// Default returns the default wallet, or nil if none.
func (m *Manager) Default() *Wallet {
	m.load() //nolint:errcheck
	for _, w := range m.wallets {
		if w.IsDefault {
			return w
		}
	}
	// Fallback: return first wallet if only one exists.
	if len(m.wallets) == 1 {
		for _, w := range m.wallets {
			return w
		}
	}
	return nil
}

// Signer builds a Signer for a signing wallet.
func (m *Manager) Signer(name string) (*Signer, error) {
	w, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	if w.Type != TypeSigning {
		return nil, fmt.Errorf("wallet %q is watch-only and cannot sign", name)
	}
	return NewSigner(w, m.ks), nil
}

// --- internal ---

func (m *Manager) load() error {
	if m.loaded {
		return nil
	}
	wallets, err := m.store.Load()
	if err != nil {
		return err
	}
	for _, w := range wallets {
		m.wallets[w.Name] = w
	}
	m.loaded = true
	return nil
}

func (m *Manager) persist() error {
	wallets := make([]*Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		wallets = append(wallets, w)
	}
	return m.store.Save(wallets)
}

// --- in-memory store ---

type memStore struct {
	wallets []*Wallet
}

func (s *memStore) Load() ([]*Wallet, error) {
	return s.wallets, nil
}

func (s *memStore) Save(wallets []*Wallet) error {
	s.wallets = wallets
	return nil
}

// --- JSON file store ---

// JSONStore persists wallets to a JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSON-backed wallet store.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Load() ([]*Wallet, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var wallets []*Wallet
	if err := json.Unmarshal(data, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (s *JSONStore) Save(wallets []*Wallet) error {
	data, err := json.MarshalIndent(wallets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
