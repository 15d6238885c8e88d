// Package bolt persists the appointment collection in a bbolt file: one
// bucket, one fixed key, whole collection per write.
package bolt

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	bucketName = "barbearia"
	slotKey    = "barbearia_appointments"
)

type Slot struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the bbolt file at path and ensures the
// slot bucket exists.
func Open(path string) (*Slot, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: ensure bucket: %w", err)
	}

	return &Slot{db: db}, nil
}

func Close(s *Slot) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Slot) Load(ctx context.Context) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(slotKey))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("bolt: load slot: %w", err)
	}
	return data, data != nil, nil
}

func (s *Slot) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(slotKey), data)
	})
	if err != nil {
		return fmt.Errorf("bolt: save slot: %w", err)
	}
	return nil
}
