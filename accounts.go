package inkpress

import (
	"crypto/subtle"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Account is a registered user of the authoring client. Credentials are
// compared byte-for-byte; there is no hashing scheme in this design.
type Account struct {
	Name      string
	Email     string
	Password  string
	CreatedAt string
}

// AccountStore wraps a SQLite database holding registered accounts. It is
// the client-side identity store the login and registration flows write and
// the authoring pipeline reads a display name from.
type AccountStore struct {
	db *sql.DB
}

// NewAccountStore opens (or creates) the SQLite database at path, ensures
// the data directory exists, and bootstraps the schema.
func NewAccountStore(path string) (*AccountStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the session middleware read while a registration writes;
	// the busy timeout makes writers wait instead of failing immediately.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &AccountStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *AccountStore) Close() error {
	return s.db.Close()
}

func (s *AccountStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS accounts (
    email TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    password TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`)
	return err
}

// Register stores a new account. Registering an email that already exists
// fails with ErrDuplicateEmail.
func (s *AccountStore) Register(a Account) error {
	if _, err := s.Get(a.Email); err == nil {
		return ErrDuplicateEmail
	} else if err != sql.ErrNoRows {
		return err
	}
	if a.CreatedAt == "" {
		a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec(`INSERT INTO accounts (email, name, password, created_at) VALUES (?, ?, ?, ?)`,
		a.Email, a.Name, a.Password, a.CreatedAt)
	return err
}

// Get returns the account registered under email, or sql.ErrNoRows.
func (s *AccountStore) Get(email string) (Account, error) {
	var a Account
	err := s.db.QueryRow(`SELECT email, name, password, created_at FROM accounts WHERE email = ?`, email).
		Scan(&a.Email, &a.Name, &a.Password, &a.CreatedAt)
	if err != nil {
		return Account{}, err
	}
	return a, nil
}

// Authenticate checks credentials by equality against the stored account.
// Unknown emails and wrong passwords both fail with ErrInvalidLogin so the
// two cases are indistinguishable to a caller.
func (s *AccountStore) Authenticate(email, password string) (Account, error) {
	a, err := s.Get(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return Account{}, ErrInvalidLogin
		}
		return Account{}, err
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) != 1 {
		return Account{}, ErrInvalidLogin
	}
	return a, nil
}
