package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const backupVersion = 1

// Backup is a portable copy of the persisted entries, independent of the
// backend they were read from.
type Backup struct {
	Version   int               `json:"version"`
	CreatedAt time.Time         `json:"createdAt"`
	Entries   map[string]string `json:"entries"`
}

// persistedKeys lists every key the adapter owns.
var persistedKeys = []string{KeyLists, KeySelectedListID}

// ExportBackup reads the persisted entries as stored, without decoding them.
func ExportBackup(ctx context.Context, kv KV) (Backup, error) {
	b := Backup{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC(),
		Entries:   map[string]string{},
	}
	for _, k := range persistedKeys {
		v, ok, err := kv.Get(ctx, k)
		if err != nil {
			return Backup{}, fmt.Errorf("backup: read %s: %w", k, err)
		}
		if ok {
			b.Entries[k] = v
		}
	}
	return b, nil
}

// RestoreBackup replaces the persisted entries with the backup's in one batch.
// Keys missing from the backup are deleted. A backup whose list data does not
// decode is refused before anything is written.
func RestoreBackup(ctx context.Context, kv KV, b Backup) error {
	if b.Version != backupVersion {
		return fmt.Errorf("backup: unsupported version %d", b.Version)
	}
	if raw, ok := b.Entries[KeyLists]; ok && strings.TrimSpace(raw) != "" {
		if _, issues := doctorLists(raw); (DoctorReport{Issues: issues}).HasErrors() {
			return fmt.Errorf("backup: %w: %s", ErrCorrupt, issues[0].Message)
		}
	}

	muts := make([]Mutation, 0, len(persistedKeys))
	for _, k := range persistedKeys {
		if v, ok := b.Entries[k]; ok {
			muts = append(muts, Put(k, v))
		} else {
			muts = append(muts, Del(k))
		}
	}
	if err := kv.Apply(ctx, muts...); err != nil {
		return fmt.Errorf("backup: restore: %w", err)
	}
	return nil
}

// WriteBackupFile writes b as indented JSON. An existing file is only replaced
// when overwrite is set.
func WriteBackupFile(path string, b Backup, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("backup: %s already exists (use --overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return atomicWriteFile(dir, ".backup-*.tmp", path, out, 0o644)
}

func ReadBackupFile(path string) (Backup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Backup{}, err
	}
	var b Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return Backup{}, fmt.Errorf("parse backup %s: %w", path, err)
	}
	if b.Entries == nil {
		b.Entries = map[string]string{}
	}
	return b, nil
}
