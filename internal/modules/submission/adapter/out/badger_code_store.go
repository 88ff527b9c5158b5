package out

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	submissionout "mpt/internal/modules/submission/port/out"
	apperrors "mpt/internal/platform/errors"
	"mpt/internal/platform/sanitize"
)

// BadgerCodeStore keeps submitted code blobs in a badger KV under the data
// directory, keyed by user and stripped answer hash. Submissions arrive in
// bursts around deadlines; a KV store avoids one-file-per-submission inode
// churn while the logs stay greppable text.
type BadgerCodeStore struct {
	db *badger.DB
}

func NewBadgerCodeStore(dir string) (*BadgerCodeStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open code store: %w", err)
	}
	return &BadgerCodeStore{db: db}, nil
}

var _ submissionout.CodeStore = (*BadgerCodeStore)(nil)

func (s *BadgerCodeStore) Put(_ context.Context, user, key, code string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blobKey(user, key), []byte(code))
	})
	if err != nil {
		return fmt.Errorf("store submitted code: %w", err)
	}
	return nil
}

func (s *BadgerCodeStore) Get(_ context.Context, user, key string) (string, error) {
	var code string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blobKey(user, key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			code = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", fmt.Errorf("submitted code %s/%s: %w", user, key, apperrors.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("load submitted code: %w", err)
	}
	return code, nil
}

func (s *BadgerCodeStore) Close() error {
	return s.db.Close()
}

func blobKey(user, key string) []byte {
	return []byte("code:" + sanitize.Filename(user) + "/" + key)
}
